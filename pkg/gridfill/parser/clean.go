package parser

import (
	"strings"

	"github.com/ukaji3/gridfill-go/pkg/gridfill/models"
)

func isBlank(cell string) bool {
	return strings.TrimSpace(cell) == ""
}

func allBlank(cells []string) bool {
	for _, c := range cells {
		if !isBlank(c) {
			return false
		}
	}
	return true
}

// RemoveEmptyRowsAndColumns drops rows and then columns whose cells are all blank.
// Short rows are padded first, so the result is rectangular.
func RemoveEmptyRowsAndColumns(raw models.RawTable) models.CleanTable {
	width := 0
	for _, row := range raw {
		if len(row) > width {
			width = len(row)
		}
	}

	var rows [][]string
	for _, row := range raw {
		if allBlank(row) {
			continue
		}
		padded := make([]string, width)
		copy(padded, row)
		rows = append(rows, padded)
	}

	var columns [][]string
	for _, col := range transpose(rows, width) {
		if !allBlank(col) {
			columns = append(columns, col)
		}
	}

	return models.NewCleanTable(transpose(columns, len(rows)), len(columns))
}

// transpose flips a rectangular table whose rows all have n cells.
func transpose(rows [][]string, n int) [][]string {
	if len(rows) == 0 {
		return nil
	}
	out := make([][]string, n)
	for i := range out {
		out[i] = make([]string, len(rows))
		for j, row := range rows {
			out[i][j] = row[i]
		}
	}
	return out
}

// ReduceToKeyValueColumns keeps the first and last column of every row.
func ReduceToKeyValueColumns(t models.CleanTable) models.CleanTable {
	if t.Width() <= 2 {
		return t
	}
	rows := make([][]string, 0, t.Height())
	for _, row := range t.Rows() {
		rows = append(rows, []string{row[0], row[len(row)-1]})
	}
	return models.NewCleanTable(rows, 2)
}

// ToImportEntries maps each row to an entry keyed by its first cell.
// Rows with an empty key are dropped.
func ToImportEntries(t models.CleanTable) []models.ImportEntry {
	entries := make([]models.ImportEntry, 0, t.Height())
	for _, row := range t.Rows() {
		if len(row) == 0 {
			continue
		}
		key := strings.TrimSpace(row[0])
		if key == "" {
			continue
		}
		entries = append(entries, models.ImportEntry{
			Key:   key,
			Value: strings.TrimSpace(row[len(row)-1]),
		})
	}
	return entries
}
