package aggregate

import (
	"errors"
	"fmt"

	"github.com/ukaji3/gridfill-go/pkg/gridfill/models"
)

// ErrUnknownUnit indicates a unit name outside mt, gwp and odp.
var ErrUnknownUnit = errors.New("unknown unit")

// ErrUnitNotAllowed indicates a unit that the table context does not offer.
var ErrUnitNotAllowed = errors.New("unit not allowed in this context")

// ParseUnit resolves a unit name.
func ParseUnit(s string) (models.Unit, error) {
	switch u := models.Unit(s); u {
	case models.UnitMT, models.UnitGWP, models.UnitODP:
		return u, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownUnit, s)
}

// UnitSelection is the selected display unit of one table.
// Changing it never touches row data; callers recompute their view.
type UnitSelection struct {
	context models.UnitContext
	current models.Unit
}

// NewUnitSelection starts on the first unit the context allows.
func NewUnitSelection(ctx models.UnitContext) *UnitSelection {
	if ctx == "" {
		ctx = models.ContextDefault
	}
	return &UnitSelection{context: ctx, current: ctx.AllowedUnits()[0]}
}

// Current returns the selected unit.
func (s *UnitSelection) Current() models.Unit {
	return s.current
}

// Allowed returns the selectable units.
func (s *UnitSelection) Allowed() []models.Unit {
	return s.context.AllowedUnits()
}

// Select switches to u. The selection is unchanged on error.
func (s *UnitSelection) Select(u models.Unit) error {
	if _, err := ParseUnit(string(u)); err != nil {
		return err
	}
	if !s.context.Allows(u) {
		return fmt.Errorf("%w: %s in %s", ErrUnitNotAllowed, u, s.context)
	}
	s.current = u
	return nil
}
