package parser

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/gridfill-go/pkg/gridfill/models"
)

func newWorkbook(t *testing.T, cells map[string]interface{}) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for cell, value := range cells {
		if err := f.SetCellValue("Sheet1", cell, value); err != nil {
			t.Fatalf("Failed to set %s: %v", cell, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("Failed to write workbook: %v", err)
	}
	return buf
}

func TestParseWorkbookDetectsRegion(t *testing.T) {
	buf := newWorkbook(t, map[string]interface{}{
		"B2": "ID1",
		"C2": 100,
		"B3": "ID2",
		"C3": 200.5,
	})

	got, err := ParseWorkbook(buf, WorkbookOptions{})
	if err != nil {
		t.Fatalf("ParseWorkbook failed: %v", err)
	}

	expected := models.RawTable{{"ID1", "100"}, {"ID2", "200.5"}}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("ParseWorkbook = %q, expected %q", got, expected)
	}
}

func TestParseWorkbookWithRange(t *testing.T) {
	buf := newWorkbook(t, map[string]interface{}{
		"A1": "Header",
		"A2": "ID1",
		"B2": 5,
		"A3": "ID2",
	})

	got, err := ParseWorkbook(buf, WorkbookOptions{Range: "Sheet1!$A$2:$B$3"})
	if err != nil {
		t.Fatalf("ParseWorkbook failed: %v", err)
	}

	expected := models.RawTable{{"ID1", "5"}, {"ID2", ""}}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("ParseWorkbook = %q, expected %q", got, expected)
	}
}

func TestParseWorkbookEmptySheet(t *testing.T) {
	buf := newWorkbook(t, nil)
	if _, err := ParseWorkbook(buf, WorkbookOptions{}); !errors.Is(err, ErrSparseRegion) {
		t.Errorf("Expected ErrSparseRegion, got %v", err)
	}
}

func TestParseRange(t *testing.T) {
	tests := []struct {
		input string
		sheet string
		area  models.Area
	}{
		{"A1:D10", "", models.Area{R1: 1, C1: 1, R2: 10, C2: 4}},
		{"'Sheet 1'!$B$2:$C$5", "Sheet 1", models.Area{R1: 2, C1: 2, R2: 5, C2: 3}},
		{"C5:A1", "", models.Area{R1: 1, C1: 1, R2: 5, C2: 3}},
		{"B7", "", models.Area{R1: 7, C1: 2, R2: 7, C2: 2}},
	}

	for _, tt := range tests {
		sheet, area, err := ParseRange(tt.input)
		if err != nil {
			t.Errorf("ParseRange(%q) failed: %v", tt.input, err)
			continue
		}
		if sheet != tt.sheet || area != tt.area {
			t.Errorf("ParseRange(%q) = (%q, %+v), expected (%q, %+v)", tt.input, sheet, area, tt.sheet, tt.area)
		}
	}

	if _, _, err := ParseRange("A1:B2:C3"); err == nil {
		t.Error("Expected error for malformed range")
	}
}

func TestDetectRegion(t *testing.T) {
	rows := [][]string{
		{"", "", ""},
		{"", "a", "b"},
		{"", "c"},
	}
	area, ok := DetectRegion(rows, DefaultTableParams())
	if !ok {
		t.Fatal("Expected a region")
	}
	if area != (models.Area{R1: 2, C1: 2, R2: 3, C2: 3}) {
		t.Errorf("Unexpected area %+v", area)
	}

	if _, ok := DetectRegion([][]string{{"lonely"}}, DefaultTableParams()); ok {
		t.Error("Expected no region for a single cell")
	}
}
