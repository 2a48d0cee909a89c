package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/thariapp/thari_backend/internal/apperrors"
	"github.com/thariapp/thari_backend/internal/core/domain"
	portssvc "github.com/thariapp/thari_backend/internal/core/ports/services"
	"github.com/thariapp/thari_backend/internal/dto"
)

// CategoryService provides business logic for transaction categories.
type CategoryService struct {
	BaseService
	store *StateStore
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(store *StateStore) *CategoryService {
	return &CategoryService{store: store}
}

var _ portssvc.CategorySvcFacade = (*CategoryService)(nil)

// CreateCategory persists a new category. Names are unique ignoring case;
// an unknown icon falls back to the generic one.
func (s *CategoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error) {
	icon := domain.CategoryIcon(strings.ToUpper(req.Icon))
	if !icon.Valid() {
		icon = domain.IconOther
	}

	category := domain.Category{
		CategoryID:  uuid.NewString(),
		Name:        req.Name,
		Icon:        icon,
		AuditFields: domain.NewAuditFields(time.Now()),
	}

	err := s.store.Update(ctx, func(state *domain.AppState) error {
		for i := range state.Categories {
			if strings.EqualFold(state.Categories[i].Name, req.Name) {
				return fmt.Errorf("%w: category '%s'", apperrors.ErrDuplicate, req.Name)
			}
		}
		state.Categories = append(state.Categories, category)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Category created", "category_id", category.CategoryID, "name", category.Name)
	return &category, nil
}

// ListCategories retrieves all categories.
func (s *CategoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	err := s.store.View(func(state *domain.AppState) error {
		categories = append([]domain.Category{}, state.Categories...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list categories in service: %w", err)
	}
	return categories, nil
}

// DeleteCategory removes a category. Transactions and budgets referencing it
// keep their ID and render the fallback name from then on.
func (s *CategoryService) DeleteCategory(ctx context.Context, categoryID string) error {
	err := s.store.Update(ctx, func(state *domain.AppState) error {
		for i := range state.Categories {
			if state.Categories[i].CategoryID == categoryID {
				state.Categories = append(state.Categories[:i], state.Categories[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("%w: category '%s'", apperrors.ErrNotFound, categoryID)
	})
	if err != nil {
		return err
	}

	s.LogInfo(ctx, "Category deleted", "category_id", categoryID)
	return nil
}
