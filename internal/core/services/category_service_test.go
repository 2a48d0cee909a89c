package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/thariapp/thari_backend/internal/apperrors"
	"github.com/thariapp/thari_backend/internal/core/domain"
	portssvc "github.com/thariapp/thari_backend/internal/core/ports/services"
	"github.com/thariapp/thari_backend/internal/core/services"
	"github.com/thariapp/thari_backend/internal/dto"
)

type CategoryServiceTestSuite struct {
	suite.Suite
	store   *services.StateStore
	service portssvc.CategorySvcFacade
}

func (suite *CategoryServiceTestSuite) SetupTest() {
	suite.store = newTestStore(suite.T())
	suite.service = services.NewCategoryService(suite.store)
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_UnknownIconFallsBack() {
	category, err := suite.service.CreateCategory(context.Background(), dto.CreateCategoryRequest{
		Name: "Pets",
		Icon: "DRAGON",
	})
	suite.Require().NoError(err)
	suite.Equal(domain.IconOther, category.Icon)
	suite.NotEmpty(category.CategoryID)
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_DuplicateNameIgnoresCase() {
	_, err := suite.service.CreateCategory(context.Background(), dto.CreateCategoryRequest{
		Name: "food & drink",
	})
	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrDuplicate))
}

func (suite *CategoryServiceTestSuite) TestListCategories_SeededDefaults() {
	categories, err := suite.service.ListCategories(context.Background())
	suite.Require().NoError(err)
	suite.Len(categories, 8)
}

func (suite *CategoryServiceTestSuite) TestDeleteCategory_DanglingReferencesRenderFallback() {
	ctx := context.Background()
	err := suite.store.Update(ctx, func(state *domain.AppState) error {
		t := txn("t1", "wallet-cash", "SAR", domain.Expense, 30)
		t.CategoryID = "cat-food"
		state.Transactions = append(state.Transactions, t)
		return nil
	})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.service.DeleteCategory(ctx, "cat-food"))

	err = suite.store.View(func(state *domain.AppState) error {
		suite.Len(state.Transactions, 1)
		suite.Equal(domain.FallbackCategoryName, state.CategoryName("cat-food"))
		return nil
	})
	suite.Require().NoError(err)

	err = suite.service.DeleteCategory(ctx, "cat-food")
	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrNotFound))
}

func TestCategoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}
