package parser

import (
	"github.com/ukaji3/gridfill-go/pkg/gridfill/models"
)

// TableDetectionParams holds parameters for locating the pasted region of a sheet.
type TableDetectionParams struct {
	DensityMin       float64
	MinNonemptyCells int
}

// DefaultTableParams returns default table detection parameters.
func DefaultTableParams() TableDetectionParams {
	return TableDetectionParams{
		DensityMin:       0.04,
		MinNonemptyCells: 2,
	}
}

// DetectRegion finds the bounding box of non-empty cells in rows and checks that it is
// dense enough to be a table. The returned area is 1-based and inclusive.
func DetectRegion(rows [][]string, params TableDetectionParams) (models.Area, bool) {
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return models.Area{}, false
	}

	totalCells := (maxRow - minRow + 1) * (maxCol - minCol + 1)
	nonEmptyCells := countNonEmptyCells(rows, minRow, maxRow, minCol, maxCol)
	if nonEmptyCells < params.MinNonemptyCells {
		return models.Area{}, false
	}

	density := float64(nonEmptyCells) / float64(totalCells)
	if density < params.DensityMin {
		return models.Area{}, false
	}

	return models.Area{R1: minRow + 1, C1: minCol + 1, R2: maxRow + 1, C2: maxCol + 1}, true
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if isBlank(cell) {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if maxRow < 0 || rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}

// countNonEmptyCells counts non-empty cells within bounds.
func countNonEmptyCells(rows [][]string, minRow, maxRow, minCol, maxCol int) int {
	count := 0
	for rowIdx := minRow; rowIdx <= maxRow && rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		for colIdx := minCol; colIdx <= maxCol && colIdx < len(row); colIdx++ {
			if !isBlank(row[colIdx]) {
				count++
			}
		}
	}
	return count
}

// cropRows returns the cells of rows inside area. Missing cells read as empty.
func cropRows(rows [][]string, area models.Area) models.RawTable {
	var out models.RawTable
	for r := area.R1; r <= area.R2; r++ {
		var src []string
		if r-1 < len(rows) {
			src = rows[r-1]
		}
		cells := make([]string, 0, area.C2-area.C1+1)
		for c := area.C1; c <= area.C2; c++ {
			if c-1 < len(src) {
				cells = append(cells, src[c-1])
			} else {
				cells = append(cells, "")
			}
		}
		out = append(out, cells)
	}
	return out
}
