// Package importer folds pasted key/value entries into grid rows.
package importer

import (
	"fmt"

	"github.com/tiendc/go-deepcopy"

	"github.com/ukaji3/gridfill-go/pkg/gridfill/models"
	"github.com/ukaji3/gridfill-go/pkg/gridfill/parser"
)

// Mutator writes a cleaned pasted value into a row.
type Mutator func(row *models.Row, value string)

// SetField returns a Mutator that stores the value under field.
// Numeric values are stored as float64, anything else as the raw string.
func SetField(field string) Mutator {
	return func(row *models.Row, value string) {
		row.Set(field, parser.TypedValue(value))
	}
}

// Result reports the outcome of an import.
type Result struct {
	// UpdatedRows is a copy of the input rows with matched rows mutated.
	UpdatedRows []models.Row
	// Inserted is the number of rows that received a value.
	Inserted int
	// Total is the number of distinct keys in the paste.
	Total int
	// Duplicates is the number of entries whose key appeared earlier in the paste.
	Duplicates int
}

// ApplyImportToRows matches entries to rows by matchField and applies mutate to each match.
// Rows are visited in table order and each key is consumed by the first row that matches it.
// When a key is pasted more than once the last value wins. The input rows are not modified.
func ApplyImportToRows(entries []models.ImportEntry, rows []models.Row, matchField string, mutate Mutator, loc parser.NumberLocale) (Result, error) {
	pending := make(map[string]string, len(entries))
	duplicates := 0
	for _, e := range entries {
		if _, seen := pending[e.Key]; seen {
			duplicates++
		}
		pending[e.Key] = e.Value
	}

	var updated []models.Row
	if err := deepcopy.Copy(&updated, rows); err != nil {
		return Result{}, fmt.Errorf("copy rows: %w", err)
	}

	res := Result{UpdatedRows: updated, Total: len(pending), Duplicates: duplicates}
	for i := range updated {
		if len(pending) == 0 {
			break
		}
		key, ok := MatchKey(updated[i], matchField)
		if !ok {
			continue
		}
		value, ok := pending[key]
		if !ok {
			continue
		}
		mutate(&updated[i], parser.CleanNumericValue(value, loc))
		delete(pending, key)
		res.Inserted++
	}

	return res, nil
}

// MatchKey renders the row's match field as a string key.
func MatchKey(row models.Row, field string) (string, bool) {
	v, ok := row.Field(field)
	if !ok {
		return "", false
	}
	switch k := v.(type) {
	case string:
		return k, k != ""
	case float64:
		if k == float64(int64(k)) {
			return fmt.Sprintf("%d", int64(k)), true
		}
		return fmt.Sprintf("%g", k), true
	default:
		return fmt.Sprint(k), true
	}
}
