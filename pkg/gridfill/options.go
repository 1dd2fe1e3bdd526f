// Package gridfill implements paste-to-fill for editable report grids.
package gridfill

import (
	"go.uber.org/zap"

	"github.com/ukaji3/gridfill-go/pkg/gridfill/importer"
	"github.com/ukaji3/gridfill-go/pkg/gridfill/parser"
)

// DefaultMatchField is the row field pasted keys are matched against.
const DefaultMatchField = "display_internal_id"

// Options configures paste-to-fill behavior.
type Options struct {
	// MatchField is the row field compared with pasted keys.
	MatchField string
	// Field is the row field written by the default mutator.
	Field string
	// Mutate overrides how a pasted value is written. If nil, importer.SetField(Field) is used.
	Mutate importer.Mutator
	// Locale gives the separators of pasted numbers.
	// If nil, English separators are assumed.
	Locale *parser.NumberLocale
	// Logger receives debug and error logs. If nil, logging is disabled.
	Logger *zap.Logger
}

// DefaultOptions returns default paste options writing into field.
func DefaultOptions(field string) Options {
	return Options{
		MatchField: DefaultMatchField,
		Field:      field,
	}
}

// MatchFieldOrDefault returns the field used to match rows.
func (o Options) MatchFieldOrDefault() string {
	if o.MatchField != "" {
		return o.MatchField
	}
	return DefaultMatchField
}

// Mutator returns the mutator applied to matched rows.
func (o Options) Mutator() importer.Mutator {
	if o.Mutate != nil {
		return o.Mutate
	}
	return importer.SetField(o.Field)
}

// NumberLocale returns the locale used to clean pasted numbers.
func (o Options) NumberLocale() parser.NumberLocale {
	if o.Locale != nil {
		return *o.Locale
	}
	return parser.LocaleEnglish
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}
