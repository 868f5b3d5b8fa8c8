package domain

// Product represents product metadata from the catalog API
type Product struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Category string  `json:"category"`
	Brand    string  `json:"brand,omitempty"`
	Price    float64 `json:"price"`
	Rating   float64 `json:"rating"`
}
