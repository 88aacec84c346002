// Package configuration reads the defaults of the application from
// dotenv-style configuration files.
package configuration

import (
	"fmt"
	"strconv"
)

const (
	// EnvConfigFile is the environment variable naming a configuration file.
	EnvConfigFile = "INODEINFO_CONFIG"

	// SettingFormat is the configuration key for the output encoding.
	SettingFormat = "INODEINFO_FORMAT"

	// SettingHuman is the configuration key for the human-readable mode.
	SettingHuman = "INODEINFO_HUMAN"

	// SettingRecursive is the configuration key for recursive traversal.
	SettingRecursive = "INODEINFO_RECURSIVE"

	// SettingColor is the configuration key for styled text labels.
	SettingColor = "INODEINFO_COLOR"

	// SettingLogFile is the configuration key for the operation log file.
	SettingLogFile = "INODEINFO_LOG_FILE"

	// SettingLogLevel is the configuration key for the diagnostic log level.
	SettingLogLevel = "INODEINFO_LOG_LEVEL"
)

type genericConfigProvider interface {
	Read(filenames ...string) (envMap map[string]string, err error)
}

// Settings are the application defaults as read from a configuration file.
// Settings missing from the file have their zero value.
type Settings struct {
	Format    string
	Human     bool
	Recursive bool
	Color     bool
	LogFile   string
	LogLevel  string
}

// Handler is the principal implementation for the configuration services.
type Handler struct {
	configProvider genericConfigProvider
}

// NewHandler returns a pointer to a new configuration [Handler].
func NewHandler(configProvider genericConfigProvider) *Handler {
	return &Handler{
		configProvider: configProvider,
	}
}

// ReadSettings reads the [Settings] from the given configuration files. With
// no files given, the zero [Settings] are returned.
func (c *Handler) ReadSettings(filenames ...string) (Settings, error) {
	if len(filenames) == 0 {
		return Settings{}, nil
	}

	envMap, err := c.configProvider.Read(filenames...)
	if err != nil {
		return Settings{}, fmt.Errorf("(config) failed to read: %w", err)
	}

	return Settings{
		Format:    c.MapKeyToString(envMap, SettingFormat),
		Human:     c.MapKeyToBool(envMap, SettingHuman),
		Recursive: c.MapKeyToBool(envMap, SettingRecursive),
		Color:     c.MapKeyToBool(envMap, SettingColor),
		LogFile:   c.MapKeyToString(envMap, SettingLogFile),
		LogLevel:  c.MapKeyToString(envMap, SettingLogLevel),
	}, nil
}

// MapKeyToString returns the value of a key, or an empty string if the key
// does not exist.
func (c *Handler) MapKeyToString(envMap map[string]string, key string) string {
	if value, exists := envMap[key]; exists {
		return value
	}

	return ""
}

// MapKeyToBool returns the boolean value of a key, or false if the key does
// not exist or does not hold a valid boolean.
func (c *Handler) MapKeyToBool(envMap map[string]string, key string) bool {
	value := c.MapKeyToString(envMap, key)
	if value == "" {
		return false
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return false
	}

	return boolValue
}
