package usecase

import (
	"strings"

	"github.com/saleslens/pipeline/internal/domain"
)

// FilterOptions holds the optional transaction filters. Nil amount bounds
// mean "no bound"; an empty region means "all regions".
type FilterOptions struct {
	Region    string
	MinAmount *float64
	MaxAmount *float64
}

// FilterSummary records how many transactions each filter removed
type FilterSummary struct {
	TotalInput       int
	FilteredByRegion int
	FilteredByAmount int
	FinalCount       int
}

// ApplyFilters applies the optional region and amount filters to the valid
// transactions and reports what was removed.
func ApplyFilters(txns []domain.Transaction, opts FilterOptions) ([]domain.Transaction, FilterSummary) {
	summary := FilterSummary{TotalInput: len(txns)}

	filtered := txns

	if opts.Region != "" {
		region := strings.ToLower(opts.Region)
		before := len(filtered)
		kept := make([]domain.Transaction, 0, before)
		for _, t := range filtered {
			if strings.ToLower(t.Region) == region {
				kept = append(kept, t)
			}
		}
		filtered = kept
		summary.FilteredByRegion = before - len(filtered)
	}

	if opts.MinAmount != nil || opts.MaxAmount != nil {
		before := len(filtered)
		kept := make([]domain.Transaction, 0, before)
		for _, t := range filtered {
			amount := t.Amount()
			if opts.MinAmount != nil && amount < *opts.MinAmount {
				continue
			}
			if opts.MaxAmount != nil && amount > *opts.MaxAmount {
				continue
			}
			kept = append(kept, t)
		}
		filtered = kept
		summary.FilteredByAmount = before - len(filtered)
	}

	summary.FinalCount = len(filtered)
	return filtered, summary
}
