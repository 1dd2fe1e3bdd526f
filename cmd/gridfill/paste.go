package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ukaji3/gridfill-go/pkg/gridfill"
	"github.com/ukaji3/gridfill-go/pkg/gridfill/clipboard"
	"github.com/ukaji3/gridfill-go/pkg/gridfill/export"
	"github.com/ukaji3/gridfill-go/pkg/gridfill/parser"
)

func newPasteCmd() *cobra.Command {
	var (
		gridPath   string
		fromPath   string
		fromStdin  bool
		mime       string
		matchField string
		field      string
		outputPath string
		pretty     bool
	)

	cmd := &cobra.Command{
		Use:   "paste",
		Short: "Fill grid rows from a pasted two column table",
		Long: `paste reads a table from the clipboard (or a file / stdin), matches its first
column against the grid's match field and writes its last column into the target field.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, err := readGrid(gridPath)
			if err != nil {
				return err
			}

			var reader clipboard.Reader
			switch {
			case fromPath != "":
				reader = clipboard.File{Path: fromPath, MIME: mime}
			case fromStdin:
				reader = clipboard.Stream{R: os.Stdin, MIME: mime}
			default:
				reader = clipboard.System{}
			}

			opts := gridfill.DefaultOptions(field)
			if opts.Field == "" {
				opts.Field = cfg.Field
			}
			if opts.Field == "" {
				return fmt.Errorf("no target field: use --field or set field in the config")
			}
			opts.MatchField = matchField
			if opts.MatchField == "" {
				opts.MatchField = cfg.MatchField
			}
			loc := parser.ParseLocale(cfg.Locale)
			opts.Locale = &loc
			opts.Logger = logger

			notify := func(message string, variant gridfill.Variant) {
				fmt.Fprintf(cmd.ErrOrStderr(), "[%s] %s\n", variant, message)
			}
			session := gridfill.NewSession(reader, grid.Rows, notify, opts)

			outcome, err := session.Paste(cmd.Context())
			if err != nil {
				if outcome.Variant == gridfill.VariantNone && errors.Is(err, clipboard.ErrPermissionDenied) {
					logger.Debug("Paste cancelled", zap.Error(err))
					return nil
				}
				return err
			}

			grid.Rows = session.Rows()
			data, err := export.ToJSON(grid, pretty)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}
			return writeOutput(outputPath, data)
		},
	}

	cmd.Flags().StringVar(&gridPath, "grid", "", "Grid JSON file")
	cmd.Flags().StringVar(&fromPath, "from", "", "Read the pasted table from a file (.html, .xlsx or text)")
	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "Read the pasted table from stdin")
	cmd.Flags().StringVar(&mime, "mime", "", "MIME type of --from/--stdin content (text/plain, text/html)")
	cmd.Flags().StringVar(&matchField, "match", "", "Row field matched against pasted keys")
	cmd.Flags().StringVar(&field, "field", "", "Row field receiving pasted values")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	_ = cmd.MarkFlagRequired("grid")
	cmd.MarkFlagsMutuallyExclusive("from", "stdin")

	return cmd
}
