package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/saleslens/pipeline/config"
	"github.com/saleslens/pipeline/internal/infrastructure/cache"
	"github.com/saleslens/pipeline/internal/infrastructure/catalog"
	"github.com/saleslens/pipeline/internal/report"
	"github.com/saleslens/pipeline/internal/usecase"
)

var (
	runRegion    string
	runMinAmount float64
	runMaxAmount float64
	runDataFile  string
	runOutputDir string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full sales analytics pipeline",
	Long: `The run command executes the sequential pipeline: read the sales data
file, parse and validate each record, apply the optional filters, enrich
valid records with catalog product metadata, and write the enriched dataset
and the analytics report to the output directory.

Malformed records and failed catalog lookups are logged and counted; only a
missing or unreadable data file aborts the run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPipeline(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&runRegion, "region", "", "only include transactions from this region")
	runCmd.Flags().Float64Var(&runMinAmount, "min-amount", 0, "only include transactions of at least this amount")
	runCmd.Flags().Float64Var(&runMaxAmount, "max-amount", 0, "only include transactions of at most this amount")
	runCmd.Flags().StringVar(&runDataFile, "data-file", "", "override the input data file path")
	runCmd.Flags().StringVar(&runOutputDir, "output-dir", "", "override the output directory")
}

func runPipeline(cmd *cobra.Command) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if runDataFile != "" {
		cfg.Input.DataFile = runDataFile
	}
	if runOutputDir != "" {
		cfg.Output.Dir = runOutputDir
	}

	log.Printf("Starting SalesLens pipeline v%s", Version)
	log.Printf("Data file: %s", cfg.Input.DataFile)
	log.Printf("Output dir: %s", cfg.Output.Dir)
	log.Printf("Catalog: %s (prefetch: %v)", cfg.Catalog.BaseURL, cfg.Catalog.Prefetch)

	memoryCache := cache.NewMemoryCache()

	catalogClient := catalog.NewClient(
		cfg.Catalog.BaseURL,
		cfg.Catalog.Timeout,
		cfg.Catalog.PageSize,
		cfg.Catalog.RateLimit,
	)
	if verbose {
		catalogClient.SetDebug(true)
		log.Printf("Catalog client debug mode enabled")
	}

	enricher := usecase.NewEnrichmentService(
		memoryCache,
		catalogClient,
		usecase.EnrichmentConfig{CacheTTL: cfg.Cache.TTL},
	)

	generator := report.NewGenerator(cfg.Report.Currency)

	pipeline := usecase.NewPipeline(usecase.PipelineConfig{
		DataFile:     cfg.Input.DataFile,
		Delimiter:    cfg.Input.Delimiter,
		OutputDir:    cfg.Output.Dir,
		ReportFile:   cfg.Output.ReportFile,
		EnrichedFile: cfg.Output.EnrichedFile,
		Prefetch:     cfg.Catalog.Prefetch,
		Analytics: usecase.AnalyticsOptions{
			TopProducts:          cfg.Report.TopProducts,
			TopCustomers:         cfg.Report.TopCustomers,
			LowQuantityThreshold: cfg.Report.LowQuantityThreshold,
		},
	}, enricher, generator)

	filters := usecase.FilterOptions{Region: runRegion}
	if cmd.Flags().Changed("min-amount") {
		filters.MinAmount = &runMinAmount
	}
	if cmd.Flags().Changed("max-amount") {
		filters.MaxAmount = &runMaxAmount
	}

	result, err := pipeline.Run(cmd.Context(), filters)
	if err != nil {
		return err
	}

	fmt.Println("\n=== Pipeline Complete ===")
	fmt.Printf("Input lines:       %d\n", result.TotalLines)
	fmt.Printf("Valid records:     %d\n", result.ValidCount)
	fmt.Printf("Invalid records:   %d\n", result.InvalidCount)
	fmt.Printf("Filtered (region): %d\n", result.Filter.FilteredByRegion)
	fmt.Printf("Filtered (amount): %d\n", result.Filter.FilteredByAmount)
	fmt.Printf("Enriched:          %d/%d\n", result.Enrichment.Matched, result.Enrichment.Total)
	fmt.Printf("Enriched data:     %s\n", result.EnrichedPath)
	fmt.Printf("Report:            %s\n", result.ReportPath)
	fmt.Printf("Time elapsed:      %s\n", result.Elapsed)

	return nil
}
