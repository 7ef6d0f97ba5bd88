package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KTrigunayat/AI-Powered-Disaster-Relief-Supply-Demand-Forecast/pkg/pipeline"
	"github.com/KTrigunayat/AI-Powered-Disaster-Relief-Supply-Demand-Forecast/pkg/report"
)

// NewRunCommand creates the run command.
func NewRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the full preprocessing pipeline",
		Long: `Run ingests the input file, cleans and transforms it, writes the processed table
to the output path and prints what each stage did together with the explained
variance of the PCA and truncated SVD projections.

Nothing is written when a stage fails.`,
		Example: `  disasterprep run --input Dataset.csv --output emdat_preprocessed.csv
  disasterprep run --components 3 --variance-chart variance.png`,
		Args: cobra.NoArgs,
		RunE: runPipeline,
	}

	cmd.Flags().String("input", "", "Raw disaster event file")
	cmd.Flags().String("output", "", "Path of the processed table")
	cmd.Flags().Int("components", 0, "Components kept by PCA and truncated SVD (0 disables reduction)")
	cmd.Flags().Int("ddof", 0, "Delta degrees of freedom of the scaler's standard deviation")
	cmd.Flags().String("variance-chart", "", "Write an explained-variance bar chart to this path")

	return cmd
}

func runPipeline(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg, err := getConfig(ctx)
	if err != nil {
		return err
	}
	logger := getLogger(ctx)
	out := cmd.OutOrStdout()

	rep, err := pipeline.New(cfg.Pipeline(logger)).Run(ctx)
	if err != nil {
		if rep != nil && len(rep.Outcomes) > 0 {
			report.Outcomes(out, rep)
		}
		return err
	}

	report.Summary(out, rep)
	report.Outcomes(out, rep)
	report.Fills(out, rep.Fills)
	report.Reduction(out, rep.PCA, rep.SVD)

	if path := cfg.Report.VarianceChart; path != "" {
		err := report.SaveVarianceChart(path, rep.PCA, rep.SVD)
		switch {
		case errors.Is(err, report.ErrNothingToPlot):
			logger.WarnContext(ctx, "variance chart requested but reduction was skipped", "path", path)
		case err != nil:
			return err
		default:
			_, _ = fmt.Fprintf(out, "Variance chart saved to %s\n", path)
		}
	}

	_, _ = fmt.Fprintf(out, "Preprocessed data saved to %s\n", rep.Output)
	return nil
}
