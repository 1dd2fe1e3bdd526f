package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/gridfill-go/pkg/gridfill/models"
	"github.com/xuri/excelize/v2"
)

// ParseRange parses a range reference such as "B2:C20", "$A$1:$D$10" or
// "'Sheet 1'!A1:B5". The sheet name is returned when present.
func ParseRange(ref string) (string, models.Area, error) {
	ref = strings.TrimSpace(ref)

	var sheetName string
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		sheetName = strings.Trim(ref[:idx], "'")
		ref = ref[idx+1:]
	}

	ref = strings.ReplaceAll(ref, "$", "")
	parts := strings.Split(ref, ":")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return "", models.Area{}, fmt.Errorf("invalid range %q", ref)
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return "", models.Area{}, fmt.Errorf("invalid range start %q: %w", parts[0], err)
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return "", models.Area{}, fmt.Errorf("invalid range end %q: %w", parts[1], err)
	}

	if endRow < startRow {
		startRow, endRow = endRow, startRow
	}
	if endCol < startCol {
		startCol, endCol = endCol, startCol
	}

	return sheetName, models.Area{R1: startRow, C1: startCol, R2: endRow, C2: endCol}, nil
}
