package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KTrigunayat/AI-Powered-Disaster-Relief-Supply-Demand-Forecast/pkg/pipeline"
	"github.com/KTrigunayat/AI-Powered-Disaster-Relief-Supply-Demand-Forecast/pkg/report"
)

// NewInspectCommand creates the inspect command.
func NewInspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show the shape, encoding and missing values of the input",
		Long: `Inspect reads the input file, parses its date columns and prints the kind and
missing-value count of every column, as the pipeline sees them before cleaning.
Nothing is written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg, err := getConfig(ctx)
			if err != nil {
				return err
			}

			rep, err := pipeline.New(cfg.Pipeline(getLogger(ctx))).Inspect(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "%s (%s): %d rows x %d columns\n", rep.Input, rep.Encoding, rep.Rows, rep.Columns)
			report.Profile(out, rep)
			return nil
		},
	}
	cmd.Flags().String("input", "", "Raw disaster event file")
	return cmd
}
