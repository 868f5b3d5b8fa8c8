package usecase

import (
	"context"
	"io"
	"log"
	"path/filepath"
	"time"

	"github.com/saleslens/pipeline/internal/domain"
	"github.com/saleslens/pipeline/internal/infrastructure/datafile"
)

// ReportRenderer renders an analysis as a human-readable report
type ReportRenderer interface {
	Render(w io.Writer, a *Analysis) error
}

// PipelineConfig holds the file locations and knobs the pipeline needs
type PipelineConfig struct {
	DataFile     string
	Delimiter    string
	OutputDir    string
	ReportFile   string
	EnrichedFile string
	Prefetch     bool
	Analytics    AnalyticsOptions
}

// Pipeline runs the full sequential flow:
// read -> parse -> filter -> enrich -> analyze -> write outputs
type Pipeline struct {
	config   PipelineConfig
	enricher *EnrichmentService
	renderer ReportRenderer
}

// RunResult summarizes a completed pipeline run
type RunResult struct {
	TotalLines   int
	ValidCount   int
	InvalidCount int
	Filter       FilterSummary
	Enrichment   domain.EnrichmentStat
	EnrichedPath string
	ReportPath   string
	Elapsed      time.Duration
}

// NewPipeline creates a pipeline with its dependencies
func NewPipeline(config PipelineConfig, enricher *EnrichmentService, renderer ReportRenderer) *Pipeline {
	return &Pipeline{
		config:   config,
		enricher: enricher,
		renderer: renderer,
	}
}

// Run executes the pipeline. Only file access failures abort the run;
// malformed records and catalog lookup failures are counted and logged.
func (p *Pipeline) Run(ctx context.Context, filters FilterOptions) (*RunResult, error) {
	start := time.Now()

	log.Printf("[pipeline] [1/8] reading sales data from %s", p.config.DataFile)
	lines, err := datafile.ReadLines(p.config.DataFile)
	if err != nil {
		return nil, err
	}
	log.Printf("[pipeline] read %d data lines", len(lines))

	log.Printf("[pipeline] [2/8] parsing and cleaning records")
	parsed := ParseLines(lines, p.config.Delimiter)
	log.Printf("[pipeline] parsed %d valid records, rejected %d", len(parsed.Transactions), parsed.Invalid)
	for reason, count := range parsed.Reasons {
		log.Printf("[pipeline]   rejected %d record(s): %s", count, reason)
	}

	log.Printf("[pipeline] [3/8] applying filters")
	txns, filterSummary := ApplyFilters(parsed.Transactions, filters)
	log.Printf("[pipeline] %d record(s) after filters (region: -%d, amount: -%d)",
		filterSummary.FinalCount, filterSummary.FilteredByRegion, filterSummary.FilteredByAmount)

	if len(txns) == 0 {
		return nil, domain.ErrNoTransactions
	}

	log.Printf("[pipeline] [4/8] loading product catalog")
	if p.config.Prefetch {
		if err := p.enricher.Prefetch(ctx); err != nil {
			log.Printf("[pipeline] warning: %v (falling back to per-record lookups)", err)
		}
	}

	log.Printf("[pipeline] [5/8] enriching sales data")
	enriched := p.enricher.Enrich(ctx, txns)
	enrichStat := EnrichmentSummary(enriched)
	log.Printf("[pipeline] enriched %d of %d records", enrichStat.Matched, enrichStat.Total)

	log.Printf("[pipeline] [6/8] writing enriched dataset")
	enrichedPath := filepath.Join(p.config.OutputDir, p.config.EnrichedFile)
	if err := datafile.WriteEnriched(enrichedPath, p.config.Delimiter, enriched); err != nil {
		return nil, err
	}

	log.Printf("[pipeline] [7/8] computing analytics")
	analysis := Analyze(txns, enriched, p.config.Analytics)

	log.Printf("[pipeline] [8/8] generating report")
	reportPath := filepath.Join(p.config.OutputDir, p.config.ReportFile)
	if err := datafile.WriteReport(reportPath, func(w io.Writer) error {
		return p.renderer.Render(w, analysis)
	}); err != nil {
		return nil, err
	}

	return &RunResult{
		TotalLines:   parsed.TotalLines,
		ValidCount:   len(txns),
		InvalidCount: parsed.Invalid,
		Filter:       filterSummary,
		Enrichment:   enrichStat,
		EnrichedPath: enrichedPath,
		ReportPath:   reportPath,
		Elapsed:      time.Since(start),
	}, nil
}
