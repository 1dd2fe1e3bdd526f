package models

// RowType is the discriminator that decides whether a row takes part in aggregation.
type RowType string

const (
	RowTypeData     RowType = "data"
	RowTypeGroup    RowType = "group"
	RowTypeSubtotal RowType = "subtotal"
	RowTypeTotal    RowType = "total"
	RowTypeControl  RowType = "control"
	RowTypeHashed   RowType = "hashed"
	RowTypeSkeleton RowType = "skeleton"
)

// Valid reports whether t is one of the known row types.
func (t RowType) Valid() bool {
	switch t {
	case RowTypeData, RowTypeGroup, RowTypeSubtotal, RowTypeTotal,
		RowTypeControl, RowTypeHashed, RowTypeSkeleton:
		return true
	}
	return false
}

// Field names for the substance conversion factors carried by a row.
const (
	FieldGWP = "gwp"
	FieldODP = "odp"
)

// Suffixes of precomputed per-field conversions, e.g. "amount_gwp".
const (
	SuffixGWP = "_gwp"
	SuffixODP = "_odp"
)

// Row is a single row of an editable grid.
type Row struct {
	// Type is the row type tag. An empty type is treated as data.
	Type RowType `json:"row_type,omitempty"`
	// Group is the group tag shared by a subtotal row and its data rows.
	Group string `json:"group,omitempty"`
	// Fields maps field name to raw value (number or string).
	Fields map[string]any `json:"fields"`
	// RecordUsages holds per-usage quantities for usage sub-tables.
	RecordUsages []RecordUsage `json:"record_usages,omitempty"`
	// ExcludedUsages lists usage ids that do not apply to this row.
	ExcludedUsages []int `json:"excluded_usages,omitempty"`
}

// Kind returns the row type, defaulting to data.
func (r Row) Kind() RowType {
	if r.Type == "" {
		return RowTypeData
	}
	return r.Type
}

// Field returns the raw value stored under name.
func (r Row) Field(name string) (any, bool) {
	if r.Fields == nil {
		return nil, false
	}
	v, ok := r.Fields[name]
	if ok && v == nil {
		return nil, false
	}
	return v, ok
}

// Set stores v under name, allocating the field map if needed.
func (r *Row) Set(name string, v any) {
	if r.Fields == nil {
		r.Fields = make(map[string]any)
	}
	r.Fields[name] = v
}

// IsUsageExcluded reports whether usageID is excluded for this row.
func (r Row) IsUsageExcluded(usageID int) bool {
	for _, id := range r.ExcludedUsages {
		if id == usageID {
			return true
		}
	}
	return false
}

// RecordUsage is the quantity of a substance reported for one usage category.
type RecordUsage struct {
	// UsageID identifies the usage category.
	UsageID int `json:"usage_id"`
	// Quantity is the raw quantity in metric tons (number or string).
	Quantity any `json:"quantity"`
	// QuantityGWP is the precomputed CO2-equivalent quantity, if known.
	QuantityGWP *float64 `json:"quantity_gwp,omitempty"`
	// QuantityODP is the precomputed ODP-tons quantity, if known.
	QuantityODP *float64 `json:"quantity_odp,omitempty"`
}

// Field exposes the usage quantity under the "quantity" base field name.
func (u RecordUsage) Field(name string) (any, bool) {
	switch name {
	case "quantity":
		return u.Quantity, u.Quantity != nil
	case "quantity" + SuffixGWP:
		return u.QuantityGWP, u.QuantityGWP != nil
	case "quantity" + SuffixODP:
		return u.QuantityODP, u.QuantityODP != nil
	}
	return nil, false
}
