// Package export writes rendered grids and view models to JSON, HTML and xlsx.
package export

import (
	"encoding/json"
)

// ToJSON serializes v, indented when pretty is set.
func ToJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
