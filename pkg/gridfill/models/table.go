// Package models defines data structures shared by the grid paste and aggregation code.
package models

// RawTable is a table exactly as a parser produced it. Rows may differ in length.
type RawTable [][]string

// CleanTable is a rectangular table with no blank rows or blank columns.
// Values are only built by parser.RemoveEmptyRowsAndColumns and parser.ReduceToKeyValueColumns.
type CleanTable struct {
	cells [][]string
	width int
}

// NewCleanTable wraps rows that are already known to be rectangular with the given width.
func NewCleanTable(cells [][]string, width int) CleanTable {
	return CleanTable{cells: cells, width: width}
}

// Rows returns the table rows. Every row has exactly Width() cells.
func (t CleanTable) Rows() [][]string {
	return t.cells
}

// Width returns the number of columns.
func (t CleanTable) Width() int {
	return t.width
}

// Height returns the number of rows.
func (t CleanTable) Height() int {
	return len(t.cells)
}

// ImportEntry is one key/value pair read from a pasted table.
type ImportEntry struct {
	// Key is the first column of the pasted row.
	Key string `json:"key"`
	// Value is the last column of the pasted row.
	Value string `json:"value"`
}
