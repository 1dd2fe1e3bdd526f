package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ukaji3/gridfill-go/pkg/gridfill/aggregate"
	"github.com/ukaji3/gridfill-go/pkg/gridfill/export"
	"github.com/ukaji3/gridfill-go/pkg/gridfill/models"
)

func newTotalsCmd() *cobra.Command {
	var (
		gridPath   string
		unitName   string
		context    string
		format     string
		outputPath string
		pretty     bool
	)

	cmd := &cobra.Command{
		Use:   "totals",
		Short: "Render a grid with subtotals and totals in a unit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, err := readGrid(gridPath)
			if err != nil {
				return err
			}
			if context != "" {
				grid.Context = models.UnitContext(context)
			}

			if unitName == "" {
				unitName = cfg.Unit
			}
			unit, err := aggregate.ParseUnit(unitName)
			if err != nil {
				return err
			}
			selection := aggregate.NewUnitSelection(grid.Context)
			if err := selection.Select(unit); err != nil {
				return err
			}

			grid.Columns = cfg.ApplyColumns(grid.Columns)
			opts := aggregate.DefaultViewOptions()
			if cfg.Precision != nil {
				opts.Precision = *cfg.Precision
			}
			if cfg.NullDisplay != "" {
				opts.NullDisplay = cfg.NullDisplay
			}
			opts.RefrigerationUsageIDs = cfg.RefrigerationUsageIDs

			view := aggregate.Compute(grid, selection.Current(), opts)
			logger.Debug("Grid rendered",
				zap.String("grid", grid.Name),
				zap.String("unit", string(view.Unit)),
				zap.Int("rows", len(view.Rows)))

			switch format {
			case "json":
				data, err := export.ToJSON(view, pretty)
				if err != nil {
					return fmt.Errorf("serialization failed: %w", err)
				}
				return writeOutput(outputPath, data)
			case "html":
				var buf bytes.Buffer
				if err := export.HTML(&buf, view); err != nil {
					return fmt.Errorf("serialization failed: %w", err)
				}
				return writeOutput(outputPath, buf.Bytes())
			case "xlsx":
				if outputPath == "" {
					return fmt.Errorf("xlsx output needs --output")
				}
				return export.XLSX(view, outputPath)
			default:
				return fmt.Errorf("invalid format: %s (must be json, html or xlsx)", format)
			}
		},
	}

	cmd.Flags().StringVar(&gridPath, "grid", "", "Grid JSON file")
	cmd.Flags().StringVar(&unitName, "unit", "", "Display unit: mt, gwp or odp")
	cmd.Flags().StringVar(&context, "context", "", "Table context: default or section_a")
	cmd.Flags().StringVar(&format, "format", "json", "Output format: json, html or xlsx")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	_ = cmd.MarkFlagRequired("grid")

	return cmd
}
