package models

// Unit is a display unit for substance quantities.
type Unit string

const (
	// UnitMT is metric tons.
	UnitMT Unit = "mt"
	// UnitGWP is CO2-equivalent tons.
	UnitGWP Unit = "gwp"
	// UnitODP is ozone-depletion-potential tons.
	UnitODP Unit = "odp"
)

// UnitContext names a table context with its own set of allowed units.
type UnitContext string

const (
	// ContextDefault allows every unit.
	ContextDefault UnitContext = "default"
	// ContextSectionA is the section A table, which has no CO2-equivalent view.
	ContextSectionA UnitContext = "section_a"
)

// AllowedUnits returns the units selectable in the context, default first.
func (c UnitContext) AllowedUnits() []Unit {
	if c == ContextSectionA {
		return []Unit{UnitMT, UnitODP}
	}
	return []Unit{UnitMT, UnitGWP, UnitODP}
}

// Allows reports whether u can be selected in the context.
func (c UnitContext) Allows(u Unit) bool {
	for _, allowed := range c.AllowedUnits() {
		if allowed == u {
			return true
		}
	}
	return false
}
