package domain

// Transaction represents a single validated sales record parsed from the
// input data file
type Transaction struct {
	TransactionID string  `json:"transactionId"`
	Date          string  `json:"date"` // YYYY-MM-DD
	ProductID     string  `json:"productId"`
	ProductName   string  `json:"productName"`
	Quantity      int     `json:"quantity"`
	UnitPrice     float64 `json:"unitPrice"`
	CustomerID    string  `json:"customerId"`
	Region        string  `json:"region"`
}

// Amount returns the total transaction value
func (t Transaction) Amount() float64 {
	return float64(t.Quantity) * t.UnitPrice
}

// EnrichedTransaction is a Transaction augmented with product metadata
// fetched from the catalog API. Matched is false when the lookup failed or
// the product was unknown; the metadata fields are then zero values.
type EnrichedTransaction struct {
	Transaction
	Category string  `json:"apiCategory"`
	Brand    string  `json:"apiBrand"`
	Rating   float64 `json:"apiRating"`
	Matched  bool    `json:"apiMatch"`
}
