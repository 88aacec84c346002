package render

import (
	"encoding/json"
	"io"
)

func encodeJSON(w io.Writer, doc document) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	return enc.Encode(doc) //nolint:wrapcheck
}
