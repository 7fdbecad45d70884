package common

import (
	"encoding/json"
	"io"
)

// WriteJSON dumps v into w as indented json.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	return enc.Encode(v)
}
