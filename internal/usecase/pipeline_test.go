package usecase_test

import (
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	httpDelivery "github.com/saleslens/pipeline/internal/delivery/http"
	"github.com/saleslens/pipeline/internal/domain"
	"github.com/saleslens/pipeline/internal/infrastructure/cache"
	"github.com/saleslens/pipeline/internal/infrastructure/catalog"
	"github.com/saleslens/pipeline/internal/report"
	"github.com/saleslens/pipeline/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testData = `TransactionID|Date|ProductID|ProductName|Quantity|UnitPrice|CustomerID|Region
T001|2024-01-01|P1|Widget|5|9.99|C001|North
T002|2024-01-01|P2|Gadget|2|25.00|C002|South
T003|2024-01-02|P1|Widget|3|9.99|C001|North
T004|2024-01-02|P999|Mystery|1|4.50|C003|East
T005|2024-01-03|P3|Gizmo|bad|4.50|C003|East
`

func newTestPipeline(t *testing.T, dataFile, outputDir string, prefetch bool) (*usecase.Pipeline, *httptest.Server) {
	t.Helper()

	// Serve a 10-product stub catalog; P999 is unknown to it
	stub := httptest.NewServer(httpDelivery.SetupRouter(httpDelivery.NewHandler(httpDelivery.FixtureProducts(10))))

	client := catalog.NewClient(stub.URL, 5*time.Second, 10, 100)
	enricher := usecase.NewEnrichmentService(cache.NewMemoryCache(), client, usecase.EnrichmentConfig{CacheTTL: time.Minute})

	pipeline := usecase.NewPipeline(usecase.PipelineConfig{
		DataFile:     dataFile,
		Delimiter:    "|",
		OutputDir:    outputDir,
		ReportFile:   "sales_report.txt",
		EnrichedFile: "enriched_sales_data.txt",
		Prefetch:     prefetch,
		Analytics: usecase.AnalyticsOptions{
			TopProducts:          5,
			TopCustomers:         5,
			LowQuantityThreshold: 10,
		},
	}, enricher, report.NewGenerator("₹"))

	return pipeline, stub
}

func TestPipelineRun_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	dataFile := filepath.Join(dir, "sales_data.txt")
	require.NoError(t, os.WriteFile(dataFile, []byte(testData), 0o644))

	outputDir := filepath.Join(dir, "output")
	pipeline, stub := newTestPipeline(t, dataFile, outputDir, true)
	defer stub.Close()

	result, err := pipeline.Run(context.Background(), usecase.FilterOptions{})
	require.NoError(t, err)

	assert.Equal(t, 5, result.TotalLines)
	assert.Equal(t, 4, result.ValidCount)
	assert.Equal(t, 1, result.InvalidCount)

	// P1 and P2 resolve against the stub catalog, P999 does not
	assert.Equal(t, 3, result.Enrichment.Matched)
	assert.Equal(t, 4, result.Enrichment.Total)
	assert.Equal(t, []string{"Mystery"}, result.Enrichment.Unmatched)

	enrichedData, err := os.ReadFile(result.EnrichedPath)
	require.NoError(t, err)
	assert.Contains(t, string(enrichedData), "T001|2024-01-01|P1|Widget|5|9.99|C001|North|")
	assert.Contains(t, string(enrichedData), "|false\n")

	reportData, err := os.ReadFile(result.ReportPath)
	require.NoError(t, err)
	// Report count equals the number of valid input records
	assert.Contains(t, string(reportData), "Records Processed: 4")
	assert.Contains(t, string(reportData), "Enriched Records: 3/4")
}

func TestPipelineRun_WithFilters(t *testing.T) {
	dir := t.TempDir()
	dataFile := filepath.Join(dir, "sales_data.txt")
	require.NoError(t, os.WriteFile(dataFile, []byte(testData), 0o644))

	pipeline, stub := newTestPipeline(t, dataFile, filepath.Join(dir, "output"), false)
	defer stub.Close()

	result, err := pipeline.Run(context.Background(), usecase.FilterOptions{Region: "north"})
	require.NoError(t, err)

	assert.Equal(t, 2, result.ValidCount)
	assert.Equal(t, 2, result.Filter.FilteredByRegion)
}

func TestPipelineRun_MissingDataFileIsFatal(t *testing.T) {
	dir := t.TempDir()
	pipeline, stub := newTestPipeline(t, filepath.Join(dir, "missing.txt"), filepath.Join(dir, "output"), false)
	defer stub.Close()

	result, err := pipeline.Run(context.Background(), usecase.FilterOptions{})

	assert.Nil(t, result)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPipelineRun_NoTransactionsAfterFilters(t *testing.T) {
	dir := t.TempDir()
	dataFile := filepath.Join(dir, "sales_data.txt")
	require.NoError(t, os.WriteFile(dataFile, []byte(testData), 0o644))

	pipeline, stub := newTestPipeline(t, dataFile, filepath.Join(dir, "output"), false)
	defer stub.Close()

	result, err := pipeline.Run(context.Background(), usecase.FilterOptions{Region: "nowhere"})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrNoTransactions)
}
