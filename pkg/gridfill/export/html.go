package export

import (
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/ukaji3/gridfill-go/pkg/gridfill/models"
)

// HTML writes view as a <table>. Aggregate rows carry a row-<type> class.
// The output can be pasted back into a grid.
func HTML(w io.Writer, view models.GridView) error {
	table := element(atom.Table)
	if view.Name != "" {
		table.Attr = append(table.Attr, html.Attribute{Key: "data-name", Val: view.Name})
	}
	table.Attr = append(table.Attr, html.Attribute{Key: "data-unit", Val: string(view.Unit)})

	thead := element(atom.Thead)
	header := element(atom.Tr)
	for _, h := range view.Headers {
		header.AppendChild(cell(atom.Th, h))
	}
	thead.AppendChild(header)
	table.AppendChild(thead)

	tbody := element(atom.Tbody)
	for _, row := range view.Rows {
		tr := element(atom.Tr)
		if row.Type != models.RowTypeData {
			tr.Attr = append(tr.Attr, html.Attribute{Key: "class", Val: "row-" + string(row.Type)})
		}
		for _, c := range row.Cells {
			tr.AppendChild(cell(atom.Td, c))
		}
		tbody.AppendChild(tr)
	}
	table.AppendChild(tbody)

	return html.Render(w, table)
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}

func cell(a atom.Atom, text string) *html.Node {
	n := element(a)
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return n
}
