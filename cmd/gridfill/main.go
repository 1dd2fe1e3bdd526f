// Package main provides the CLI entry point for gridfill.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ukaji3/gridfill-go/pkg/gridfill/config"
	"github.com/ukaji3/gridfill-go/pkg/gridfill/models"
)

var (
	configPath string
	envFile    string
	locale     string
	verbose    bool

	cfg    config.Config
	logger *zap.Logger
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gridfill",
		Short: "Paste-to-fill and unit-aware totals for report grids",
		Long: `gridfill fills report grid rows from a pasted two column table
and renders grids with subtotals and totals in mt, ODP or CO2-equivalent tons.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file (default: $"+config.EnvConfig+")")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Environment file to load")
	rootCmd.PersistentFlags().StringVar(&locale, "locale", "", "Locale of pasted numbers, e.g. de-DE")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newPasteCmd(), newTotalsCmd(), newDashboardCmd())
	return rootCmd
}

func setup(cmd *cobra.Command, args []string) error {
	zapCfg := zap.NewProductionConfig()
	if verbose {
		zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	var err error
	logger, err = zapCfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := config.LoadEnv(envFile); err != nil {
		return err
	}

	path := configPath
	if path == "" {
		path = os.Getenv(config.EnvConfig)
	}
	cfg, err = config.Load(path)
	if err != nil {
		return err
	}
	cfg, err = cfg.ApplyEnv()
	if err != nil {
		return err
	}
	if locale != "" {
		cfg.Locale = locale
	}

	logger.Debug("Configuration loaded",
		zap.String("path", path),
		zap.String("locale", cfg.Locale),
		zap.String("unit", cfg.Unit))
	return nil
}

func readGrid(path string) (models.Grid, error) {
	var grid models.Grid
	data, err := os.ReadFile(path)
	if err != nil {
		return grid, fmt.Errorf("file not found: %s", path)
	}
	if err := json.Unmarshal(data, &grid); err != nil {
		return grid, fmt.Errorf("invalid grid %s: %w", path, err)
	}
	for i, row := range grid.Rows {
		if row.Type != "" && !row.Type.Valid() {
			return grid, fmt.Errorf("invalid grid %s: row %d has unknown row_type %q", path, i, row.Type)
		}
	}
	return grid, nil
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
