package domain

import "errors"

var (
	// ErrProductNotFound is returned when a product id is unknown to the catalog API
	ErrProductNotFound = errors.New("product not found in catalog")

	// ErrCatalogUnavailable is returned when a catalog API request fails
	ErrCatalogUnavailable = errors.New("catalog API request failed")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrMalformedRecord is returned when an input line cannot be parsed into a Transaction
	ErrMalformedRecord = errors.New("malformed sales record")

	// ErrNoTransactions is returned when no valid transactions remain to report on
	ErrNoTransactions = errors.New("no transactions available")
)
