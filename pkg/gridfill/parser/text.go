package parser

import (
	"strings"

	"github.com/ukaji3/gridfill-go/pkg/gridfill/models"
)

// ParseText splits tab-separated clipboard text into rows and cells.
// Text without a trailing line terminator is a single cell and is not split.
func ParseText(text string) models.RawTable {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	if !strings.HasSuffix(text, "\n") {
		return models.RawTable{{text}}
	}

	lines := strings.Split(text, "\n")
	// Spreadsheet copies end with a line break, leaving one empty trailing line.
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	table := make(models.RawTable, 0, len(lines))
	for _, line := range lines {
		table = append(table, strings.Split(line, "\t"))
	}
	return table
}
