// Package pipeline runs the disaster-record preprocessing stages in order:
// ingest, date normalization, classification, imputation, deduplication, feature synthesis,
// one-hot encoding, scaling, dimensionality reduction and persistence.
package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/KTrigunayat/AI-Powered-Disaster-Relief-Supply-Demand-Forecast/pkg/data"
	"github.com/KTrigunayat/AI-Powered-Disaster-Relief-Supply-Demand-Forecast/pkg/dataprep"
)

// Pipeline chains the preprocessing stages for one configuration.
type Pipeline struct {
	cfg    Config
	steps  []Stage
	logger *slog.Logger
}

// New builds a pipeline from cfg.
func New(cfg Config) *Pipeline {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Pipeline{cfg: cfg, steps: Stages(cfg), logger: logger}
}

// Run loads cfg.Input, runs every stage and writes cfg.Output.
// On any fatal error nothing is written and the error is a *StageError.
func (p *Pipeline) Run(ctx context.Context) (*Report, error) {
	report := p.newReport()
	logger := p.logger.With("run_id", report.RunID)
	logger.InfoContext(ctx, "starting run", "input", p.cfg.Input, "output", p.cfg.Output)

	t, err := p.load(logger)
	if err != nil {
		logger.ErrorContext(ctx, "run failed", "stage", StageIngest, "error", err)
		return report, &StageError{Stage: StageIngest, Err: err}
	}
	report.Encoding = t.Encoding
	logger.InfoContext(ctx, "dataset loaded", "encoding", t.Encoding, "rows", t.Rows(), "columns", t.Names())

	t, err = p.process(ctx, logger, t, report)
	if err != nil {
		var se *StageError
		if errors.As(err, &se) {
			logger.ErrorContext(ctx, "run failed", "stage", se.Stage, "error", se.Err)
		}
		return report, err
	}
	for _, col := range report.Profile {
		logger.DebugContext(ctx, "missing values before cleaning", "column", col.Name, "kind", col.Kind.String(), "missing", col.Missing)
	}

	if err := data.Save(p.cfg.Output, t, p.cfg.Delimiter); err != nil {
		logger.ErrorContext(ctx, "run failed", "stage", StagePersist, "error", err)
		return report, &StageError{Stage: StagePersist, Err: err}
	}
	logger.InfoContext(ctx, "run completed", "output", p.cfg.Output, "rows", report.Rows, "columns", report.Columns)
	return report, nil
}

// Process runs every table stage over t, without ingesting or persisting.
// It takes ownership of t and returns the final table.
func (p *Pipeline) Process(ctx context.Context, t *data.Table) (*data.Table, *Report, error) {
	report := p.newReport()
	report.Encoding = t.Encoding
	t, err := p.process(ctx, p.logger.With("run_id", report.RunID), t, report)
	return t, report, err
}

// Inspect loads the input, normalizes dates and returns the column profile as the
// classification stage sees it. Nothing is imputed or written.
func (p *Pipeline) Inspect(ctx context.Context) (*Report, error) {
	report := p.newReport()
	logger := p.logger.With("run_id", report.RunID)

	t, err := p.load(logger)
	if err != nil {
		return report, &StageError{Stage: StageIngest, Err: err}
	}
	report.Encoding = t.Encoding
	// Stages() puts date normalization and classification first.
	for _, st := range p.steps[:2] {
		if t, err = p.apply(ctx, logger, st, t, report); err != nil {
			return report, err
		}
	}
	report.Rows, report.Columns = t.Rows(), t.Width()
	return report, nil
}

func (p *Pipeline) newReport() *Report {
	return &Report{
		RunID:            uuid.NewString(),
		Input:            p.cfg.Input,
		Output:           p.cfg.Output,
		SeverityMismatch: p.cfg.Severity.Inconsistency(),
	}
}

func (p *Pipeline) load(logger *slog.Logger) (*data.Table, error) {
	return data.Load(p.cfg.Input, data.LoadOptions{
		Encodings:     p.cfg.Encodings,
		Delimiter:     p.cfg.Delimiter,
		MissingTokens: p.cfg.MissingTokens,
		Logger:        logger,
	})
}

func (p *Pipeline) process(ctx context.Context, logger *slog.Logger, t *data.Table, report *Report) (*data.Table, error) {
	var err error
	for _, st := range p.steps {
		if err := ctx.Err(); err != nil {
			return nil, &StageError{Stage: st.Name(), Err: err}
		}
		if t, err = p.apply(ctx, logger, st, t, report); err != nil {
			return nil, err
		}
	}
	report.Rows, report.Columns = t.Rows(), t.Width()
	return t, nil
}

// apply checks the stage's requirement, runs it and records the outcome.
// A missing requirement or a *dataprep.SkipError gives a skipped outcome; any other error is fatal.
func (p *Pipeline) apply(ctx context.Context, logger *slog.Logger, st Stage, t *data.Table, report *Report) (*data.Table, error) {
	out := Outcome{Stage: st.Name(), RowsIn: t.Rows(), ColsIn: t.Width()}
	start := time.Now()

	missing, ok := st.Requires().check(t)
	out.Missing = missing
	if !ok {
		out.Status = StatusSkipped
		out.Reason = "required columns absent"
		out.RowsOut, out.ColsOut = out.RowsIn, out.ColsIn
		report.Outcomes = append(report.Outcomes, out)
		logger.InfoContext(ctx, "stage skipped", "stage", out.Stage, "missing", missing)
		return t, nil
	}

	logger.DebugContext(ctx, "stage started", "stage", out.Stage, "rows", out.RowsIn, "columns", out.ColsIn)
	next, err := st.Apply(t, report)
	out.Elapsed = time.Since(start)

	var skip *dataprep.SkipError
	switch {
	case errors.As(err, &skip):
		out.Status = StatusSkipped
		out.Missing = skip.Missing
		out.Reason = skip.Reason
		out.RowsOut, out.ColsOut = t.Rows(), t.Width()
		report.Outcomes = append(report.Outcomes, out)
		logger.InfoContext(ctx, "stage skipped", "stage", out.Stage, "reason", skip.Reason, "missing", skip.Missing)
		return t, nil
	case err != nil:
		return nil, &StageError{Stage: st.Name(), Err: err}
	}

	out.Status = StatusApplied
	out.RowsOut, out.ColsOut = next.Rows(), next.Width()
	report.Outcomes = append(report.Outcomes, out)
	logger.InfoContext(ctx, "stage applied", "stage", out.Stage,
		"rows", out.RowsOut, "columns", out.ColsOut, "elapsed", out.Elapsed)
	return next, nil
}
