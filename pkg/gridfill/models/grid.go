package models

// NullDisplay values for columns.
const (
	NullAsZero = "0"
	NullAsDash = "-"
)

// Column describes how one grid column is read and aggregated.
type Column struct {
	// Field is the base field name read from rows.
	Field string `json:"field" yaml:"field"`
	// Header is the column title; Field is used when empty.
	Header string `json:"header,omitempty" yaml:"header,omitempty"`
	// Aggregation names a registered aggregation function (empty for none).
	Aggregation string `json:"aggregation,omitempty" yaml:"aggregation,omitempty"`
	// UsageID selects the usage for usage aggregations ("total_usages", "total_refrigeration" or an id).
	UsageID string `json:"usage_id,omitempty" yaml:"usage_id,omitempty"`
	// UnitAware marks columns whose values change with the selected unit.
	UnitAware bool `json:"unit_aware,omitempty" yaml:"unit_aware,omitempty"`
	// NullDisplay is what a missing value renders as ("0" or "-").
	NullDisplay string `json:"null_display,omitempty" yaml:"null_display,omitempty"`
}

// Title returns the header or the field name.
func (c Column) Title() string {
	if c.Header != "" {
		return c.Header
	}
	return c.Field
}

// Grid is a table definition together with its rows.
type Grid struct {
	// Name is the table name, used as sheet name on export.
	Name string `json:"name,omitempty"`
	// Context selects the allowed units.
	Context UnitContext `json:"context,omitempty"`
	// Columns lists visible columns in order.
	Columns []Column `json:"columns"`
	// Rows lists rows in table order.
	Rows []Row `json:"rows"`
}

// GridView is a rendered grid: display strings for every visible cell.
type GridView struct {
	// Name is copied from the grid.
	Name string `json:"name,omitempty"`
	// Unit is the unit the values are expressed in.
	Unit Unit `json:"unit"`
	// Headers are the column titles.
	Headers []string `json:"headers"`
	// Rows holds one entry per grid row.
	Rows []RowView `json:"rows"`
}

// RowView is one rendered row.
type RowView struct {
	// Type is the row type tag.
	Type RowType `json:"row_type"`
	// Group is copied from the row.
	Group string `json:"group,omitempty"`
	// Cells holds display values, one per column.
	Cells []string `json:"cells"`
}
