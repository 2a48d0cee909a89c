package dto

import (
	"time"

	"github.com/thariapp/thari_backend/internal/core/domain"
)

// CreateCategoryRequest defines the data needed to create a category.
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
	Icon string `json:"icon"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID string    `json:"categoryID"`
	Name       string    `json:"name"`
	Icon       string    `json:"icon"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ToCategoryResponse converts a domain.Category to its response DTO.
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID: c.CategoryID,
		Name:       c.Name,
		Icon:       string(c.Icon),
		CreatedAt:  c.CreatedAt,
	}
}
