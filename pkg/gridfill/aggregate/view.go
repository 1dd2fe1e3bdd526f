package aggregate

import (
	"fmt"
	"strconv"

	"github.com/ukaji3/gridfill-go/pkg/gridfill/models"
	"github.com/ukaji3/gridfill-go/pkg/gridfill/parser"
)

// ViewOptions tunes Compute.
type ViewOptions struct {
	// Registry resolves column aggregations. NewRegistry() is used when nil.
	Registry *Registry
	// RefrigerationUsageIDs overrides DefaultRefrigerationUsageIDs.
	RefrigerationUsageIDs []int
	// Precision is the number of decimals shown; -1 prints the shortest exact form.
	Precision int
	// NullDisplay is the fallback for columns without their own setting.
	NullDisplay string
}

// DefaultViewOptions returns the options used by the CLI.
func DefaultViewOptions() ViewOptions {
	return ViewOptions{Precision: -1, NullDisplay: models.NullAsDash}
}

// Compute renders grid in unit. Aggregate rows are filled through the registry and
// always show a number. The grid is read only.
func Compute(grid models.Grid, unit models.Unit, opts ViewOptions) models.GridView {
	registry := opts.Registry
	if registry == nil {
		registry = NewRegistry()
	}
	refrigeration := opts.RefrigerationUsageIDs
	if refrigeration == nil {
		refrigeration = DefaultRefrigerationUsageIDs()
	}

	view := models.GridView{
		Name:    grid.Name,
		Unit:    unit,
		Headers: make([]string, 0, len(grid.Columns)),
		Rows:    make([]models.RowView, 0, len(grid.Rows)),
	}
	for _, col := range grid.Columns {
		view.Headers = append(view.Headers, col.Title())
	}

	for i, row := range grid.Rows {
		rv := models.RowView{Type: row.Kind(), Group: row.Group, Cells: make([]string, 0, len(grid.Columns))}
		for _, col := range grid.Columns {
			rv.Cells = append(rv.Cells, renderCell(grid.Rows, i, col, unit, registry, refrigeration, opts))
		}
		view.Rows = append(view.Rows, rv)
	}
	return view
}

func renderCell(rows []models.Row, index int, col models.Column, unit models.Unit, registry *Registry, refrigeration []int, opts ViewOptions) string {
	row := rows[index]
	null := col.NullDisplay
	if null == "" {
		null = opts.NullDisplay
	}

	switch row.Kind() {
	case models.RowTypeSubtotal, models.RowTypeTotal:
		if col.Aggregation == "" {
			return rawCell(row, col.Field, "")
		}
		fn, ok := registry.Lookup(col.Aggregation)
		if !ok {
			return null
		}
		return FormatNumber(fn(Input{
			Rows:                  rows,
			Index:                 index,
			Column:                col,
			Unit:                  unit,
			RefrigerationUsageIDs: refrigeration,
		}), opts.Precision)
	case models.RowTypeData:
		var v *float64
		switch {
		case col.UsageID != "":
			v = UsageValue(row, col.UsageID, unit, refrigeration)
		case col.UnitAware:
			gwp, odp := Multipliers(row)
			v = GetUnitAwareValue(row, col.Field, unit, gwp, odp)
		default:
			return rawCell(row, col.Field, null)
		}
		if v == nil {
			return null
		}
		return FormatNumber(*v, opts.Precision)
	default:
		return rawCell(row, col.Field, "")
	}
}

func rawCell(row models.Row, field, null string) string {
	raw, ok := row.Field(field)
	if !ok {
		return null
	}
	if s, ok := raw.(string); ok {
		return s
	}
	if f, ok := parser.ParseNumber(raw); ok {
		return FormatNumber(f, -1)
	}
	return fmt.Sprint(raw)
}

// FormatNumber prints f with precision decimals, or in shortest form when precision is negative.
func FormatNumber(f float64, precision int) string {
	if f == 0 {
		f = 0 // normalise negative zero
	}
	return strconv.FormatFloat(f, 'f', precision, 64)
}
