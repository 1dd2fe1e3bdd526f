package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ukaji3/gridfill-go/pkg/gridfill/dashboard"
	"github.com/ukaji3/gridfill-go/pkg/gridfill/export"
)

func newDashboardCmd() *cobra.Command {
	var (
		outputPath string
		pretty     bool
	)

	cmd := &cobra.Command{
		Use:   "dashboard [payload.json]",
		Short: "Build replenishment dashboard figures from an API payload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("file not found: %s", args[0])
			}
			defer f.Close()

			payload, err := dashboard.Decode(f)
			if err != nil {
				return fmt.Errorf("invalid payload: %w", err)
			}

			data, err := export.ToJSON(dashboard.Build(payload), pretty)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}
			return writeOutput(outputPath, data)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	return cmd
}
