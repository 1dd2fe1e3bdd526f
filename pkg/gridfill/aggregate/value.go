// Package aggregate computes unit-aware cell values and subtotal/total rows for grids.
package aggregate

import (
	"github.com/ukaji3/gridfill-go/pkg/gridfill/models"
	"github.com/ukaji3/gridfill-go/pkg/gridfill/parser"
)

// FieldSource is anything that exposes raw values by field name.
// models.Row and models.RecordUsage both implement it.
type FieldSource interface {
	Field(name string) (any, bool)
}

// GetUnitAwareValue reads baseField from src in the requested unit.
//
// For mt the raw value is parsed. For gwp and odp a precomputed "<field>_gwp" or
// "<field>_odp" value wins; otherwise the raw value is scaled by the multiplier when one
// is supplied. Missing or malformed inputs yield nil.
func GetUnitAwareValue(src FieldSource, baseField string, unit models.Unit, gwp, odp *float64) *float64 {
	switch unit {
	case models.UnitMT:
		return number(src, baseField)
	case models.UnitGWP:
		return converted(src, baseField, models.SuffixGWP, gwp)
	case models.UnitODP:
		return converted(src, baseField, models.SuffixODP, odp)
	}
	return nil
}

func converted(src FieldSource, baseField, suffix string, multiplier *float64) *float64 {
	if _, ok := src.Field(baseField + suffix); ok {
		return number(src, baseField+suffix)
	}
	if multiplier == nil {
		return nil
	}
	base := number(src, baseField)
	if base == nil {
		return nil
	}
	v := *base * *multiplier
	return &v
}

func number(src FieldSource, field string) *float64 {
	raw, ok := src.Field(field)
	if !ok {
		return nil
	}
	f, ok := parser.ParseNumber(raw)
	if !ok {
		return nil
	}
	return &f
}

// Multipliers returns the substance conversion factors stored on a row.
func Multipliers(row models.Row) (gwp, odp *float64) {
	return number(row, models.FieldGWP), number(row, models.FieldODP)
}
