package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
	"github.com/saleslens/pipeline/internal/usecase"
)

// Generator renders the sales analytics report as human-readable text
type Generator struct {
	currency string
	now      func() time.Time
	newRunID func() string
}

// NewGenerator creates a report generator. currency is the symbol prefixed
// to monetary amounts.
func NewGenerator(currency string) *Generator {
	return &Generator{
		currency: currency,
		now:      time.Now,
		newRunID: uuid.NewString,
	}
}

// Render writes the full analytics report for the given analysis
func (g *Generator) Render(w io.Writer, a *usecase.Analysis) error {
	summary := a.Summary
	summary.RunID = g.newRunID()
	summary.GeneratedAt = g.now()

	rule := strings.Repeat("=", 44)
	section := strings.Repeat("-", 44)

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "          SALES ANALYTICS REPORT")
	fmt.Fprintf(w, "  Run ID:    %s\n", summary.RunID)
	fmt.Fprintf(w, "  Generated: %s\n", summary.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "  Records Processed: %d\n", summary.TotalTransactions)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "OVERALL SUMMARY")
	fmt.Fprintln(w, section)
	fmt.Fprintf(w, "Total Revenue:        %s\n", g.money(summary.TotalRevenue))
	fmt.Fprintf(w, "Total Transactions:   %d\n", summary.TotalTransactions)
	fmt.Fprintf(w, "Average Order Value:  %s\n", g.money(summary.AvgOrderValue))
	fmt.Fprintf(w, "Date Range:           %s\n", dateRange(summary.FirstDate, summary.LastDate))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "REGION-WISE PERFORMANCE")
	fmt.Fprintln(w, section)
	regionTable := tablewriter.NewWriter(w)
	regionTable.SetHeader([]string{"Region", "Sales", "% Total", "Txn"})
	for _, r := range a.Regions {
		regionTable.Append([]string{
			r.Region,
			g.money(r.Revenue),
			fmt.Sprintf("%.2f%%", r.Percentage),
			strconv.Itoa(r.Count),
		})
	}
	regionTable.Render()
	fmt.Fprintln(w)

	fmt.Fprintf(w, "TOP %d PRODUCTS\n", len(a.TopProducts))
	fmt.Fprintln(w, section)
	productTable := tablewriter.NewWriter(w)
	productTable.SetHeader([]string{"Rank", "Product", "Qty", "Revenue"})
	for i, p := range a.TopProducts {
		productTable.Append([]string{
			strconv.Itoa(i + 1),
			p.Name,
			strconv.Itoa(p.Quantity),
			g.money(p.Revenue),
		})
	}
	productTable.Render()
	fmt.Fprintln(w)

	fmt.Fprintf(w, "TOP %d CUSTOMERS\n", len(a.TopCustomers))
	fmt.Fprintln(w, section)
	customerTable := tablewriter.NewWriter(w)
	customerTable.SetHeader([]string{"Rank", "Customer", "Spent", "Orders", "Avg Order"})
	for i, c := range a.TopCustomers {
		customerTable.Append([]string{
			strconv.Itoa(i + 1),
			c.CustomerID,
			g.money(c.TotalSpent),
			strconv.Itoa(c.Orders),
			g.money(c.AvgOrderValue),
		})
	}
	customerTable.Render()
	fmt.Fprintln(w)

	fmt.Fprintln(w, "DAILY SALES TREND")
	fmt.Fprintln(w, section)
	dailyTable := tablewriter.NewWriter(w)
	dailyTable.SetHeader([]string{"Date", "Revenue", "Txn", "Customers"})
	for _, d := range a.Daily {
		dailyTable.Append([]string{
			d.Date,
			g.money(d.Revenue),
			strconv.Itoa(d.Count),
			strconv.Itoa(d.UniqueCustomers),
		})
	}
	dailyTable.Render()
	fmt.Fprintln(w)

	fmt.Fprintln(w, "PRODUCT PERFORMANCE ANALYSIS")
	fmt.Fprintln(w, section)
	if a.PeakDay != nil {
		fmt.Fprintf(w, "Best Selling Day: %s (%s)\n", a.PeakDay.Date, g.money(a.PeakDay.Revenue))
	}
	fmt.Fprintln(w, "Low Performing Products:")
	if len(a.LowPerformers) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, p := range a.LowPerformers {
		fmt.Fprintf(w, "  - %s (Qty: %d, Revenue: %s)\n", p.Name, p.Quantity, g.money(p.Revenue))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "CATALOG ENRICHMENT SUMMARY")
	fmt.Fprintln(w, section)
	fmt.Fprintf(w, "Enriched Records: %d/%d\n", a.Enrichment.Matched, a.Enrichment.Total)
	fmt.Fprintf(w, "Success Rate: %.2f%%\n", a.Enrichment.SuccessRate())
	fmt.Fprintln(w, "Unmatched Products:")
	if len(a.Enrichment.Unmatched) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, name := range a.Enrichment.Unmatched {
		fmt.Fprintf(w, "  - %s\n", name)
	}

	return nil
}

func (g *Generator) money(amount float64) string {
	return fmt.Sprintf("%s%.2f", g.currency, amount)
}

func dateRange(first, last string) string {
	if first == "" {
		return "N/A"
	}
	return fmt.Sprintf("%s to %s", first, last)
}
