package http

import (
	"fmt"

	"github.com/saleslens/pipeline/internal/domain"
)

var fixtureCategories = []string{
	"smartphones", "laptops", "fragrances", "skincare",
	"groceries", "home-decoration", "furniture", "tops",
}

var fixtureBrands = []string{
	"Apex", "Nimbus", "Orchid", "Vertex", "Solace", "Meridian",
}

// FixtureProducts generates a deterministic product set for the stub
// catalog. Ids run from 1 to n.
func FixtureProducts(n int) []domain.Product {
	products := make([]domain.Product, 0, n)
	for i := 1; i <= n; i++ {
		products = append(products, domain.Product{
			ID:       i,
			Title:    fmt.Sprintf("Product %03d", i),
			Category: fixtureCategories[(i-1)%len(fixtureCategories)],
			Brand:    fixtureBrands[(i-1)%len(fixtureBrands)],
			Price:    float64(5+(i*13)%200) + 0.99,
			Rating:   3.0 + float64((i*7)%20)/10,
		})
	}
	return products
}
