package schema

import (
	"fmt"
	"strings"
)

// Encoding is the output encoding of a rendered [Metadata].
type Encoding int

const (
	EncodingText Encoding = iota
	EncodingJSON
	EncodingYAML
)

// ParseEncoding returns the [Encoding] for a given (case-insensitive) name.
func ParseEncoding(name string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "text":
		return EncodingText, nil
	case "json":
		return EncodingJSON, nil
	case "yaml", "yml":
		return EncodingYAML, nil
	default:
		return EncodingText, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
}

func (e Encoding) String() string {
	switch e {
	case EncodingJSON:
		return "json"
	case EncodingYAML:
		return "yaml"
	default:
		return "text"
	}
}

// IsStructured reports whether the [Encoding] emits structured documents.
func (e Encoding) IsStructured() bool {
	return e == EncodingJSON || e == EncodingYAML
}

// RenderOptions configures the output of the pipeline. It is passed by value
// and never modified once established.
type RenderOptions struct {
	Encoding      Encoding
	HumanReadable bool
	Recursive     bool
	Color         bool
}
