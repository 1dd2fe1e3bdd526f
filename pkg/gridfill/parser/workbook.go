package parser

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/gridfill-go/pkg/gridfill/models"
)

// WorkbookOptions selects the part of a workbook treated as the pasted table.
type WorkbookOptions struct {
	// Sheet is the sheet name. The first sheet is used when empty.
	Sheet string
	// Range is an optional range reference. The densest data region is used when empty.
	Range string
	// Detection tunes region detection.
	Detection *TableDetectionParams
}

// ParseWorkbook reads an xlsx workbook and returns the selected region as a raw table.
func ParseWorkbook(r io.Reader, opts WorkbookOptions) (models.RawTable, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheetName := opts.Sheet
	var area *models.Area
	if opts.Range != "" {
		rangeSheet, a, err := ParseRange(opts.Range)
		if err != nil {
			return nil, err
		}
		if rangeSheet != "" {
			sheetName = rangeSheet
		}
		area = &a
	}
	if sheetName == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrSparseRegion
		}
		sheetName = sheets[0]
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheetName, err)
	}

	if area == nil {
		params := DefaultTableParams()
		if opts.Detection != nil {
			params = *opts.Detection
		}
		detected, ok := DetectRegion(rows, params)
		if !ok {
			return nil, ErrSparseRegion
		}
		area = &detected
	}

	return cropRows(rows, *area), nil
}
