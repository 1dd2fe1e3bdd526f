// Package config loads gridfill settings from a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/ukaji3/gridfill-go/pkg/gridfill/models"
)

// Environment variables read by LoadEnv.
const (
	EnvConfig    = "GRIDFILL_CONFIG"
	EnvLocale    = "GRIDFILL_LOCALE"
	EnvUnit      = "GRIDFILL_UNIT"
	EnvPrecision = "GRIDFILL_PRECISION"
)

// Config holds settings shared by the CLI commands.
type Config struct {
	// Locale is the BCP 47 tag whose separators pasted numbers use.
	Locale string `yaml:"locale"`
	// MatchField is the row field pasted keys are matched against.
	MatchField string `yaml:"match_field"`
	// Field is the row field pasted values are written to.
	Field string `yaml:"field"`
	// Unit is the default display unit.
	Unit string `yaml:"unit"`
	// Precision is the number of decimals shown; nil prints the shortest form.
	Precision *int `yaml:"precision"`
	// NullDisplay is what missing values render as unless a column says otherwise.
	NullDisplay string `yaml:"null_display"`
	// RefrigerationUsageIDs are the usage ids summed by refrigeration totals.
	RefrigerationUsageIDs []int `yaml:"refrigeration_usage_ids"`
	// Columns overrides the null display per column field.
	Columns map[string]ColumnConfig `yaml:"columns"`
}

// ColumnConfig is the per-column display override.
type ColumnConfig struct {
	NullDisplay string `yaml:"null_display"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Locale:      "en",
		MatchField:  "display_internal_id",
		Unit:        string(models.UnitMT),
		NullDisplay: models.NullAsDash,
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadEnv loads .env files into the process environment. Missing files are ignored.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides settings from GRIDFILL_* environment variables.
func (c Config) ApplyEnv() (Config, error) {
	if v := os.Getenv(EnvLocale); v != "" {
		c.Locale = v
	}
	if v := os.Getenv(EnvUnit); v != "" {
		c.Unit = v
	}
	if v := os.Getenv(EnvPrecision); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("%s: %w", EnvPrecision, err)
		}
		c.Precision = &p
	}
	return c, c.Validate()
}

// Validate checks enumerated settings.
func (c Config) Validate() error {
	switch models.Unit(c.Unit) {
	case models.UnitMT, models.UnitGWP, models.UnitODP:
	default:
		return fmt.Errorf("invalid unit %q", c.Unit)
	}
	if err := validNull(c.NullDisplay); err != nil {
		return err
	}
	for field, col := range c.Columns {
		if col.NullDisplay == "" {
			continue
		}
		if err := validNull(col.NullDisplay); err != nil {
			return fmt.Errorf("column %s: %w", field, err)
		}
	}
	return nil
}

func validNull(s string) error {
	if s != models.NullAsZero && s != models.NullAsDash {
		return fmt.Errorf("invalid null_display %q (must be %q or %q)", s, models.NullAsZero, models.NullAsDash)
	}
	return nil
}

// ApplyColumns returns a copy of cols with configured null displays filled in.
// Settings already present on a column win.
func (c Config) ApplyColumns(cols []models.Column) []models.Column {
	out := make([]models.Column, len(cols))
	copy(out, cols)
	for i := range out {
		if out[i].NullDisplay != "" {
			continue
		}
		if col, ok := c.Columns[out[i].Field]; ok {
			out[i].NullDisplay = col.NullDisplay
		}
	}
	return out
}
