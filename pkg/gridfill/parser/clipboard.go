package parser

import (
	"strings"

	"github.com/ukaji3/gridfill-go/pkg/gridfill/models"
)

// ReadClipboardTable parses a clipboard payload into a raw table.
// HTML wins over a workbook, which wins over plain text.
func ReadClipboardTable(p models.Payload) (models.RawTable, error) {
	if html, ok := p.Get(models.MIMEHTML); ok && strings.TrimSpace(html) != "" {
		return ParseHTML(html)
	}
	if book, ok := p.Get(models.MIMEWorkbook); ok && book != "" {
		return ParseWorkbook(strings.NewReader(book), WorkbookOptions{})
	}
	if text, ok := p.Get(models.MIMEText); ok {
		return ParseText(text), nil
	}
	return nil, ErrUnsupportedPayload
}

// KeyValueTable cleans a raw table and reduces it to key and value columns.
func KeyValueTable(raw models.RawTable) (models.CleanTable, error) {
	clean := RemoveEmptyRowsAndColumns(raw)
	if clean.Height() == 0 || clean.Width() < 2 {
		return models.CleanTable{}, ErrNotKeyValueTable
	}
	return ReduceToKeyValueColumns(clean), nil
}
