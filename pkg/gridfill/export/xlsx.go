package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/gridfill-go/pkg/gridfill/models"
	"github.com/ukaji3/gridfill-go/pkg/gridfill/parser"
)

const maxSheetName = 31

// SheetName makes name usable as a worksheet name.
func SheetName(name string) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '_'
		}
		return r
	}, strings.TrimSpace(name))
	if name == "" {
		return "Sheet1"
	}
	if r := []rune(name); len(r) > maxSheetName {
		name = string(r[:maxSheetName])
	}
	return name
}

// Workbook builds an xlsx workbook holding view. Numeric cells are written as numbers
// and subtotal/total rows are bold.
func Workbook(view models.GridView) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := SheetName(view.Name)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		f.Close()
		return nil, err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, err
	}

	header := make([]interface{}, 0, len(view.Headers))
	for _, h := range view.Headers {
		header = append(header, h)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		f.Close()
		return nil, err
	}

	for i, row := range view.Rows {
		rowNum := i + 2
		values := make([]interface{}, 0, len(row.Cells))
		for _, c := range row.Cells {
			if v, ok := parser.ParseNumber(c); ok {
				values = append(values, v)
			} else {
				values = append(values, c)
			}
		}
		start, _ := excelize.CoordinatesToCellName(1, rowNum)
		if err := f.SetSheetRow(sheet, start, &values); err != nil {
			f.Close()
			return nil, err
		}

		if row.Type == models.RowTypeSubtotal || row.Type == models.RowTypeTotal {
			end, _ := excelize.CoordinatesToCellName(max(len(row.Cells), 1), rowNum)
			if err := f.SetCellStyle(sheet, start, end, bold); err != nil {
				f.Close()
				return nil, err
			}
		}
	}

	return f, nil
}

// XLSX writes view to an xlsx file at path.
func XLSX(view models.GridView, path string) error {
	f, err := Workbook(view)
	if err != nil {
		return fmt.Errorf("build workbook: %w", err)
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}
