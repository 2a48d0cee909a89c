package services

import (
	"context"

	"github.com/thariapp/thari_backend/internal/core/domain"
	"github.com/thariapp/thari_backend/internal/dto"
)

// CategorySvcFacade defines category operations. Deleting a category does
// not cascade: transactions keep their reference and render a fallback name.
type CategorySvcFacade interface {
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	DeleteCategory(ctx context.Context, categoryID string) error
}
