package parser

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ukaji3/gridfill-go/pkg/gridfill/models"
)

// ParseHTML reads the first <table> of an HTML fragment.
// Each <tr> becomes a row and each direct td/th child a cell holding its trimmed text.
func ParseHTML(fragment string) (models.RawTable, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return nil, err
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, ErrNoTableFound
	}

	var rows models.RawTable
	table.Find("tr").Each(func(i int, tr *goquery.Selection) {
		// Rows of nested tables belong to their own table.
		if tr.Closest("table").Get(0) != table.Get(0) {
			return
		}
		var cells []string
		tr.ChildrenFiltered("td, th").Each(func(j int, cell *goquery.Selection) {
			cells = append(cells, strings.TrimSpace(cell.Text()))
		})
		rows = append(rows, cells)
	})

	return rows, nil
}
