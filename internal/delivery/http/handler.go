package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/saleslens/pipeline/internal/domain"
)

// Handler serves a DummyJSON-compatible product catalog from a fixed
// in-memory product set, so the pipeline can run without internet access.
type Handler struct {
	products []domain.Product
	byID     map[int]domain.Product
}

// NewHandler creates a stub catalog handler over the given products
func NewHandler(products []domain.Product) *Handler {
	byID := make(map[int]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &Handler{
		products: products,
		byID:     byID,
	}
}

// HealthCheck returns the health status of the stub catalog
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"service":  "saleslens-stub-catalog",
		"products": len(h.products),
	})
}

// ListProducts handles GET /products?limit=N
func (h *Handler) ListProducts(c *gin.Context) {
	limit := len(h.products)
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid limit"})
			return
		}
		if parsed < limit {
			limit = parsed
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"products": h.products[:limit],
		"total":    len(h.products),
		"skip":     0,
		"limit":    limit,
	})
}

// GetProduct handles GET /products/:id
func (h *Handler) GetProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid product id"})
		return
	}

	product, ok := h.byID[id]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Product with id '" + c.Param("id") + "' not found",
		})
		return
	}

	c.JSON(http.StatusOK, product)
}
