package catalog

import "github.com/saleslens/pipeline/internal/domain"

// mapProduct converts a catalog API payload to the domain Product model
func mapProduct(p productPayload) domain.Product {
	return domain.Product{
		ID:       p.ID,
		Title:    p.Title,
		Category: p.Category,
		Brand:    p.Brand,
		Price:    p.Price,
		Rating:   p.Rating,
	}
}

// mapProducts converts a list of catalog API payloads to domain Products
func mapProducts(payloads []productPayload) []domain.Product {
	products := make([]domain.Product, 0, len(payloads))
	for _, p := range payloads {
		products = append(products, mapProduct(p))
	}
	return products
}
