package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/jamar2101/Back-End-Artalis/internal/apperr"
	"github.com/jamar2101/Back-End-Artalis/internal/models"
)

// ListEnvelope wraps paginated listings. Pagination fields are always
// present, including pages=0 for an empty result set.
type ListEnvelope struct {
	Success bool             `json:"success"`
	Data    []models.Product `json:"data"`
	Page    int              `json:"page"`
	Pages   int              `json:"pages"`
	Total   int64            `json:"total"`
	Message string           `json:"message"`
}

// FeaturedEnvelope's Total is the number of items in this response, not a
// collection count. The storefront renders it directly as the card count.
type FeaturedEnvelope struct {
	Success bool             `json:"success"`
	Data    []models.Product `json:"data"`
	Total   int              `json:"total"`
	Message string           `json:"message"`
}

type ItemEnvelope struct {
	Success bool            `json:"success"`
	Data    *models.Product `json:"data"`
	Message string          `json:"message"`
}

type CategoriesEnvelope struct {
	Success bool     `json:"success"`
	Data    []string `json:"data"`
	Message string   `json:"message"`
}

type MessageEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// respondError is the one place errors become HTTP responses.
func respondError(c *gin.Context, err error) {
	c.JSON(apperr.Status(err), MessageEnvelope{
		Success: false,
		Message: apperr.Message(err, "Terjadi kesalahan pada server"),
	})
}
