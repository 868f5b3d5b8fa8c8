package usecase

import (
	"sort"

	"github.com/saleslens/pipeline/internal/domain"
)

// AnalyticsOptions controls the shape of the computed analysis
type AnalyticsOptions struct {
	TopProducts          int
	TopCustomers         int
	LowQuantityThreshold int
}

// Analysis holds every aggregate the report renders
type Analysis struct {
	Summary       domain.ReportSummary
	Regions       []domain.RegionStat
	TopProducts   []domain.ProductStat
	TopCustomers  []domain.CustomerStat
	Daily         []domain.DailyStat
	PeakDay       *domain.DailyStat
	LowPerformers []domain.ProductStat
	Enrichment    domain.EnrichmentStat
}

// Analyze computes all summary statistics from the valid transactions and
// their enriched counterparts.
func Analyze(txns []domain.Transaction, enriched []domain.EnrichedTransaction, opts AnalyticsOptions) *Analysis {
	first, last := DateRange(txns)

	totalRevenue := TotalRevenue(txns)
	avgOrder := 0.0
	if len(txns) > 0 {
		avgOrder = totalRevenue / float64(len(txns))
	}

	daily := DailyTrend(txns)

	return &Analysis{
		Summary: domain.ReportSummary{
			TotalRevenue:      totalRevenue,
			TotalTransactions: len(txns),
			AvgOrderValue:     avgOrder,
			FirstDate:         first,
			LastDate:          last,
		},
		Regions:       RegionStats(txns),
		TopProducts:   TopProducts(txns, opts.TopProducts),
		TopCustomers:  TopCustomers(txns, opts.TopCustomers),
		Daily:         daily,
		PeakDay:       peakOf(daily),
		LowPerformers: LowPerformers(txns, opts.LowQuantityThreshold),
		Enrichment:    EnrichmentSummary(enriched),
	}
}

// TotalRevenue sums quantity * unit price across all transactions
func TotalRevenue(txns []domain.Transaction) float64 {
	var total float64
	for _, t := range txns {
		total += t.Amount()
	}
	return total
}

// DateRange returns the earliest and latest transaction dates.
// Dates are YYYY-MM-DD strings, so lexical order is chronological order.
func DateRange(txns []domain.Transaction) (first, last string) {
	for _, t := range txns {
		if first == "" || t.Date < first {
			first = t.Date
		}
		if t.Date > last {
			last = t.Date
		}
	}
	return first, last
}

// RegionStats aggregates revenue and transaction counts per region,
// sorted by revenue descending.
func RegionStats(txns []domain.Transaction) []domain.RegionStat {
	byRegion := make(map[string]*domain.RegionStat)
	var grandTotal float64

	for _, t := range txns {
		amount := t.Amount()
		grandTotal += amount

		stat, ok := byRegion[t.Region]
		if !ok {
			stat = &domain.RegionStat{Region: t.Region}
			byRegion[t.Region] = stat
		}
		stat.Revenue += amount
		stat.Count++
	}

	stats := make([]domain.RegionStat, 0, len(byRegion))
	for _, stat := range byRegion {
		if grandTotal > 0 {
			stat.Percentage = stat.Revenue / grandTotal * 100
		}
		stats = append(stats, *stat)
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Revenue != stats[j].Revenue {
			return stats[i].Revenue > stats[j].Revenue
		}
		return stats[i].Region < stats[j].Region
	})

	return stats
}

// productStats aggregates quantity and revenue per product name
func productStats(txns []domain.Transaction) map[string]*domain.ProductStat {
	byProduct := make(map[string]*domain.ProductStat)
	for _, t := range txns {
		stat, ok := byProduct[t.ProductName]
		if !ok {
			stat = &domain.ProductStat{Name: t.ProductName}
			byProduct[t.ProductName] = stat
		}
		stat.Quantity += t.Quantity
		stat.Revenue += t.Amount()
	}
	return byProduct
}

// TopProducts returns the n best selling products by total quantity
func TopProducts(txns []domain.Transaction, n int) []domain.ProductStat {
	stats := collectProducts(txns)

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Quantity != stats[j].Quantity {
			return stats[i].Quantity > stats[j].Quantity
		}
		return stats[i].Name < stats[j].Name
	})

	if n > 0 && len(stats) > n {
		stats = stats[:n]
	}
	return stats
}

// LowPerformers returns products whose total quantity sold is below the
// threshold, least sold first.
func LowPerformers(txns []domain.Transaction, threshold int) []domain.ProductStat {
	var low []domain.ProductStat
	for _, stat := range collectProducts(txns) {
		if stat.Quantity < threshold {
			low = append(low, stat)
		}
	}

	sort.Slice(low, func(i, j int) bool {
		if low[i].Quantity != low[j].Quantity {
			return low[i].Quantity < low[j].Quantity
		}
		return low[i].Name < low[j].Name
	})

	return low
}

func collectProducts(txns []domain.Transaction) []domain.ProductStat {
	byProduct := productStats(txns)
	stats := make([]domain.ProductStat, 0, len(byProduct))
	for _, stat := range byProduct {
		stats = append(stats, *stat)
	}
	return stats
}

// TopCustomers aggregates purchases per customer and returns the n biggest
// spenders.
func TopCustomers(txns []domain.Transaction, n int) []domain.CustomerStat {
	byCustomer := make(map[string]*domain.CustomerStat)
	products := make(map[string]map[string]struct{})

	for _, t := range txns {
		stat, ok := byCustomer[t.CustomerID]
		if !ok {
			stat = &domain.CustomerStat{CustomerID: t.CustomerID}
			byCustomer[t.CustomerID] = stat
			products[t.CustomerID] = make(map[string]struct{})
		}
		stat.TotalSpent += t.Amount()
		stat.Orders++
		products[t.CustomerID][t.ProductName] = struct{}{}
	}

	stats := make([]domain.CustomerStat, 0, len(byCustomer))
	for id, stat := range byCustomer {
		if stat.Orders > 0 {
			stat.AvgOrderValue = stat.TotalSpent / float64(stat.Orders)
		}
		for name := range products[id] {
			stat.Products = append(stat.Products, name)
		}
		sort.Strings(stat.Products)
		stats = append(stats, *stat)
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].TotalSpent != stats[j].TotalSpent {
			return stats[i].TotalSpent > stats[j].TotalSpent
		}
		return stats[i].CustomerID < stats[j].CustomerID
	})

	if n > 0 && len(stats) > n {
		stats = stats[:n]
	}
	return stats
}

// DailyTrend aggregates revenue, transaction counts and unique customers per
// date, in chronological order.
func DailyTrend(txns []domain.Transaction) []domain.DailyStat {
	byDate := make(map[string]*domain.DailyStat)
	customers := make(map[string]map[string]struct{})

	for _, t := range txns {
		stat, ok := byDate[t.Date]
		if !ok {
			stat = &domain.DailyStat{Date: t.Date}
			byDate[t.Date] = stat
			customers[t.Date] = make(map[string]struct{})
		}
		stat.Revenue += t.Amount()
		stat.Count++
		customers[t.Date][t.CustomerID] = struct{}{}
	}

	stats := make([]domain.DailyStat, 0, len(byDate))
	for date, stat := range byDate {
		stat.UniqueCustomers = len(customers[date])
		stats = append(stats, *stat)
	}

	sort.Slice(stats, func(i, j int) bool {
		return stats[i].Date < stats[j].Date
	})

	return stats
}

// peakOf returns the day with the highest revenue, or nil for an empty trend
func peakOf(daily []domain.DailyStat) *domain.DailyStat {
	var peak *domain.DailyStat
	for i := range daily {
		if peak == nil || daily[i].Revenue > peak.Revenue {
			peak = &daily[i]
		}
	}
	if peak == nil {
		return nil
	}
	p := *peak
	return &p
}

// EnrichmentSummary summarizes how many records the catalog matched
func EnrichmentSummary(enriched []domain.EnrichedTransaction) domain.EnrichmentStat {
	stat := domain.EnrichmentStat{Total: len(enriched)}

	unmatched := make(map[string]struct{})
	for _, e := range enriched {
		if e.Matched {
			stat.Matched++
		} else {
			unmatched[e.ProductName] = struct{}{}
		}
	}

	for name := range unmatched {
		stat.Unmatched = append(stat.Unmatched, name)
	}
	sort.Strings(stat.Unmatched)

	return stat
}
