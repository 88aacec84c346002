package render

import (
	"io"

	"gopkg.in/yaml.v3"
)

const yamlIndent = 2

// encodeYAML writes the document with a leading separator, so that each unit
// is a standalone YAML document also within a stream of many.
func encodeYAML(w io.Writer, doc document) error {
	if _, err := io.WriteString(w, "---\n"); err != nil {
		return err //nolint:wrapcheck
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(yamlIndent)

	if err := enc.Encode(doc); err != nil {
		return err //nolint:wrapcheck
	}

	return enc.Close() //nolint:wrapcheck
}
