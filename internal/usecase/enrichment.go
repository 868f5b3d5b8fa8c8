package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/saleslens/pipeline/internal/domain"
)

// EnrichmentConfig holds configuration for the enrichment service
type EnrichmentConfig struct {
	CacheTTL time.Duration
}

// EnrichmentService attaches catalog product metadata to validated
// transactions, caching lookups so repeated product ids hit the API at most
// once per run.
type EnrichmentService struct {
	cache    domain.CacheRepository
	catalog  domain.CatalogClient
	cacheTTL time.Duration
}

// NewEnrichmentService creates a new enrichment service with dependencies
func NewEnrichmentService(
	cache domain.CacheRepository,
	catalog domain.CatalogClient,
	config EnrichmentConfig,
) *EnrichmentService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = time.Hour
	}

	return &EnrichmentService{
		cache:    cache,
		catalog:  catalog,
		cacheTTL: cacheTTL,
	}
}

// Prefetch bulk-loads the product catalog and primes the cache. A failure
// here is not fatal: per-record lookups still run afterwards.
func (s *EnrichmentService) Prefetch(ctx context.Context) error {
	products, err := s.catalog.ListProducts(ctx)
	if err != nil {
		return fmt.Errorf("catalog prefetch failed: %w", err)
	}

	for i := range products {
		p := products[i]
		if err := s.cache.Set(ctx, productCacheKey(p.ID), &p, s.cacheTTL); err != nil {
			log.Printf("[enrich] failed to cache product %d: %v", p.ID, err)
		}
	}

	log.Printf("[enrich] prefetched %d products into cache", len(products))
	return nil
}

// Enrich looks up catalog metadata for every transaction, in input order.
// Lookup failures and unknown products keep the record with default metadata
// and Matched=false; enrichment never drops a record and never fails the run.
func (s *EnrichmentService) Enrich(ctx context.Context, txns []domain.Transaction) []domain.EnrichedTransaction {
	enriched := make([]domain.EnrichedTransaction, 0, len(txns))

	for _, txn := range txns {
		record := domain.EnrichedTransaction{Transaction: txn}

		id, ok := numericProductID(txn.ProductID)
		if !ok {
			log.Printf("[enrich] %s: product id %q has no numeric catalog id", txn.TransactionID, txn.ProductID)
			enriched = append(enriched, record)
			continue
		}

		product, err := s.lookup(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrProductNotFound) {
				log.Printf("[enrich] %s: product %d not found in catalog", txn.TransactionID, id)
			} else {
				log.Printf("[enrich] %s: catalog lookup failed: %v", txn.TransactionID, err)
			}
			enriched = append(enriched, record)
			continue
		}

		record.Category = product.Category
		record.Brand = product.Brand
		record.Rating = product.Rating
		record.Matched = true
		enriched = append(enriched, record)
	}

	return enriched
}

// lookup fetches a product through the cache, falling back to the catalog
// API on a miss. A single API attempt per miss.
func (s *EnrichmentService) lookup(ctx context.Context, id int) (*domain.Product, error) {
	key := productCacheKey(id)

	if value, err := s.cache.Get(ctx, key); err == nil {
		if product, ok := value.(*domain.Product); ok {
			return product, nil
		}
	}

	product, err := s.catalog.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, product, s.cacheTTL); err != nil {
		log.Printf("[enrich] failed to cache product %d: %v", id, err)
	}

	return product, nil
}

// numericProductID derives the numeric catalog id from a ProductID like
// "P101" -> 101
func numericProductID(productID string) (int, bool) {
	if !strings.HasPrefix(productID, "P") {
		return 0, false
	}
	id, err := strconv.Atoi(productID[1:])
	if err != nil {
		return 0, false
	}
	return id, true
}

func productCacheKey(id int) string {
	return fmt.Sprintf("product:%d", id)
}
