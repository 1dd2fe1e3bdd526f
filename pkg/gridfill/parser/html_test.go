package parser

import (
	"errors"
	"reflect"
	"testing"

	"github.com/ukaji3/gridfill-go/pkg/gridfill/models"
)

func TestParseHTML(t *testing.T) {
	fragment := `<meta charset="utf-8"><google-sheets-html-origin>
<table><tbody>
<tr><td> 001 </td><td>Aerosol</td><td>12,5</td></tr>
<tr><th>002</th><td></td><td>3</td></tr>
</tbody></table>`

	got, err := ParseHTML(fragment)
	if err != nil {
		t.Fatalf("ParseHTML failed: %v", err)
	}

	expected := models.RawTable{
		{"001", "Aerosol", "12,5"},
		{"002", "", "3"},
	}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("ParseHTML = %q, expected %q", got, expected)
	}
}

func TestParseHTMLIgnoresNestedTables(t *testing.T) {
	fragment := `<table>
<tr><td>A</td><td><table><tr><td>inner</td></tr></table></td></tr>
<tr><td>B</td><td>2</td></tr>
</table>`

	got, err := ParseHTML(fragment)
	if err != nil {
		t.Fatalf("ParseHTML failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 rows, got %d: %q", len(got), got)
	}
	if got[1][0] != "B" || got[1][1] != "2" {
		t.Errorf("Unexpected second row %q", got[1])
	}
}

func TestParseHTMLWithoutTable(t *testing.T) {
	_, err := ParseHTML("<p>just text</p>")
	if !errors.Is(err, ErrNoTableFound) {
		t.Errorf("Expected ErrNoTableFound, got %v", err)
	}
}

func TestReadClipboardTablePrefersHTML(t *testing.T) {
	payload := models.Payload{
		models.MIMEHTML: "<table><tr><td>k</td><td>v</td></tr></table>",
		models.MIMEText: "ignored\tvalue\n",
	}
	got, err := ReadClipboardTable(payload)
	if err != nil {
		t.Fatalf("ReadClipboardTable failed: %v", err)
	}
	if !reflect.DeepEqual(got, models.RawTable{{"k", "v"}}) {
		t.Errorf("Unexpected table %q", got)
	}

	if _, err := ReadClipboardTable(models.Payload{}); !errors.Is(err, ErrUnsupportedPayload) {
		t.Errorf("Expected ErrUnsupportedPayload, got %v", err)
	}
}
