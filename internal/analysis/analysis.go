// Package analysis runs the full pipeline: parse, interpret, aggregate,
// select and assemble.
package analysis

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/geniusdna/geniusdna/internal/interpret"
	"github.com/geniusdna/geniusdna/internal/parser"
	"github.com/geniusdna/geniusdna/internal/reference"
	"github.com/geniusdna/geniusdna/internal/report"
	"github.com/geniusdna/geniusdna/internal/risk"
)

// Analyzer turns raw genotype files into reports. It holds only
// read-only configuration and is safe for concurrent use.
type Analyzer struct {
	table     *reference.Table
	logger    *zap.Logger
	workers   int
	parseOpts parser.Options
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(a *Analyzer) { a.logger = l }
}

// WithWorkers sets the number of interpretation workers. 1 interprets
// sequentially; 0 means runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(a *Analyzer) { a.workers = n }
}

// WithParseOptions sets dialect options such as the VCF sample.
func WithParseOptions(opts parser.Options) Option {
	return func(a *Analyzer) { a.parseOpts = opts }
}

// New creates an analyzer over the given reference table.
func New(table *reference.Table, opts ...Option) *Analyzer {
	a := &Analyzer{
		table:   table,
		logger:  zap.NewNop(),
		workers: 1,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze runs the pipeline over raw file content. On error no report is
// returned.
func (a *Analyzer) Analyze(raw []byte, format parser.Format) (*report.Report, error) {
	start := time.Now()

	parsed, err := parser.Parse(raw, format, a.parseOpts)
	if err != nil {
		return nil, fmt.Errorf("parse input: %w", err)
	}
	for _, skipped := range parsed.Skipped {
		a.logger.Debug("skipped line", zap.Int("line", skipped.Line), zap.String("reason", skipped.Reason))
	}

	it := interpret.New(a.table)
	it.SetLogger(a.logger)
	it.SetWorkers(a.workers)
	interps := it.InterpretAll(parsed.Observations)

	rep := report.Assemble(risk.Aggregate(interps), risk.SelectPriority(interps), interps)
	rep.ID = uuid.NewString()
	rep.Source.Format = parsed.Format
	rep.Source.Sample = parsed.Sample
	for _, skipped := range parsed.Skipped {
		rep.Source.Skipped = append(rep.Source.Skipped, report.SkippedLine{Line: skipped.Line, Reason: skipped.Reason})
	}

	a.logger.Info("analysis complete",
		zap.String("report", rep.ID),
		zap.String("format", parsed.Format.String()),
		zap.Int("observations", rep.Source.Observations),
		zap.Int("matched", rep.Source.Matched),
		zap.Int("priority", len(rep.Priority)),
		zap.Int("skipped", len(rep.Source.Skipped)),
		zap.Duration("elapsed", time.Since(start)))

	return rep, nil
}

// AnalyzeSamples analyzes several samples of one VCF, one report per
// sample in the order given. No names means every sample in the header.
func (a *Analyzer) AnalyzeSamples(raw []byte, names []string) ([]*report.Report, error) {
	if len(names) == 0 {
		parsed, err := parser.Parse(raw, parser.FormatVCF, parser.Options{})
		if err != nil {
			return nil, fmt.Errorf("parse input: %w", err)
		}
		names = parsed.Samples
	}
	if len(names) == 0 {
		return nil, errors.New("VCF declares no samples")
	}

	reports := make([]*report.Report, 0, len(names))
	for _, name := range names {
		per := *a
		per.parseOpts = parser.Options{SampleName: name}
		rep, err := per.Analyze(raw, parser.FormatVCF)
		if err != nil {
			return nil, fmt.Errorf("sample %s: %w", name, err)
		}
		reports = append(reports, rep)
	}
	return reports, nil
}
