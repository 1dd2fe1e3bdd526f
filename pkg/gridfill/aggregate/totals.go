package aggregate

import (
	"strconv"

	"github.com/ukaji3/gridfill-go/pkg/gridfill/models"
)

// Usage selectors understood by SumTotalUsages besides a numeric usage id.
const (
	TotalUsages        = "total_usages"
	TotalRefrigeration = "total_refrigeration"
)

// Refrigeration usage categories: manufacturing and servicing.
const (
	UsageRefrigerationManufacturing = 5
	UsageRefrigerationServicing     = 6
)

// DefaultRefrigerationUsageIDs returns the usage ids summed by TotalRefrigeration.
func DefaultRefrigerationUsageIDs() []int {
	return []int{UsageRefrigerationManufacturing, UsageRefrigerationServicing}
}

// scope returns the data rows an aggregate row at index covers: rows of the same group
// for a subtotal, every data row for a total, nothing otherwise.
func scope(rows []models.Row, index int) []models.Row {
	if index < 0 || index >= len(rows) {
		return nil
	}
	target := rows[index]

	var out []models.Row
	switch target.Kind() {
	case models.RowTypeSubtotal:
		for _, r := range rows {
			if r.Kind() == models.RowTypeData && r.Group == target.Group {
				out = append(out, r)
			}
		}
	case models.RowTypeTotal:
		for _, r := range rows {
			if r.Kind() == models.RowTypeData {
				out = append(out, r)
			}
		}
	}
	return out
}

// SumTotal sums field over the rows covered by the aggregate row at index.
// Rows without a usable value are skipped; the result is 0 when none contributed.
func SumTotal(rows []models.Row, index int, field string, unit models.Unit) float64 {
	var acc Accumulator
	for _, r := range scope(rows, index) {
		gwp, odp := Multipliers(r)
		if v := GetUnitAwareValue(r, field, unit, gwp, odp); v != nil {
			acc.Add(*v)
		}
	}
	return acc.Sum()
}

// SumTotalUsages sums usage quantities over the rows covered by the aggregate row at index.
// See UsageValue for how usageID selects quantities.
func SumTotalUsages(rows []models.Row, index int, usageID string, unit models.Unit, refrigeration []int) float64 {
	var acc Accumulator
	for _, r := range scope(rows, index) {
		if v := UsageValue(r, usageID, unit, refrigeration); v != nil {
			acc.Add(*v)
		}
	}
	return acc.Sum()
}

// UsageValue returns one row's quantity for a usage selector.
// TotalUsages sums every usage, TotalRefrigeration sums the refrigeration ids, and a
// numeric id reads that usage unless it is excluded for the row.
func UsageValue(row models.Row, usageID string, unit models.Unit, refrigeration []int) *float64 {
	gwp, odp := Multipliers(row)

	switch usageID {
	case TotalUsages:
		return sumUsages(row, unit, gwp, odp, func(models.RecordUsage) bool { return true })
	case TotalRefrigeration:
		return sumUsages(row, unit, gwp, odp, func(u models.RecordUsage) bool {
			for _, id := range refrigeration {
				if u.UsageID == id {
					return true
				}
			}
			return false
		})
	}

	id, err := strconv.Atoi(usageID)
	if err != nil || row.IsUsageExcluded(id) {
		return nil
	}
	for _, u := range row.RecordUsages {
		if u.UsageID == id {
			return GetUnitAwareValue(u, "quantity", unit, gwp, odp)
		}
	}
	return nil
}

func sumUsages(row models.Row, unit models.Unit, gwp, odp *float64, keep func(models.RecordUsage) bool) *float64 {
	var acc Accumulator
	for _, u := range row.RecordUsages {
		if !keep(u) {
			continue
		}
		if v := GetUnitAwareValue(u, "quantity", unit, gwp, odp); v != nil {
			acc.Add(*v)
		}
	}
	if acc.Count() == 0 {
		return nil
	}
	total := acc.Sum()
	return &total
}
