package domain

import "time"

// ReportSummary holds the headline figures for a pipeline run
type ReportSummary struct {
	RunID             string    `json:"runId"`
	GeneratedAt       time.Time `json:"generatedAt"`
	TotalRevenue      float64   `json:"totalRevenue"`
	TotalTransactions int       `json:"totalTransactions"`
	AvgOrderValue     float64   `json:"avgOrderValue"`
	FirstDate         string    `json:"firstDate"`
	LastDate          string    `json:"lastDate"`
}

// RegionStat aggregates sales for a single region
type RegionStat struct {
	Region     string  `json:"region"`
	Revenue    float64 `json:"revenue"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"` // share of total revenue, 0-100
}

// ProductStat aggregates sales for a single product name
type ProductStat struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// CustomerStat aggregates purchases for a single customer
type CustomerStat struct {
	CustomerID    string   `json:"customerId"`
	TotalSpent    float64  `json:"totalSpent"`
	Orders        int      `json:"orders"`
	AvgOrderValue float64  `json:"avgOrderValue"`
	Products      []string `json:"products"` // distinct product names, sorted
}

// DailyStat aggregates sales for a single date
type DailyStat struct {
	Date            string  `json:"date"`
	Revenue         float64 `json:"revenue"`
	Count           int     `json:"count"`
	UniqueCustomers int     `json:"uniqueCustomers"`
}

// EnrichmentStat summarizes the catalog enrichment outcome
type EnrichmentStat struct {
	Matched   int      `json:"matched"`
	Total     int      `json:"total"`
	Unmatched []string `json:"unmatched"` // distinct unmatched product names, sorted
}

// SuccessRate returns the enrichment success percentage (0-100)
func (e EnrichmentStat) SuccessRate() float64 {
	if e.Total == 0 {
		return 0
	}
	return float64(e.Matched) / float64(e.Total) * 100
}
