package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/thariapp/thari_backend/internal/core/domain"
	portsai "github.com/thariapp/thari_backend/internal/core/ports/ai"
	portssvc "github.com/thariapp/thari_backend/internal/core/ports/services"
	"github.com/thariapp/thari_backend/internal/dto"
)

// FallbackAdvice is returned whenever the advisor cannot produce advice.
const FallbackAdvice = "Keep tracking your spending and aim to save at least 20% of your income each month."

// adviceTimeout bounds how long a single advisor call may take.
const adviceTimeout = 15 * time.Second

// topCategoryCount limits how many spending lines the advisor sees.
const topCategoryCount = 5

// AdviceService condenses the document into an anonymous summary and asks
// the advisor for free-text advice. Advisor failures never propagate: the
// response degrades to a fixed fallback message instead.
type AdviceService struct {
	BaseService
	store   *StateStore
	advisor portsai.Advisor
}

// NewAdviceService creates a new AdviceService.
func NewAdviceService(store *StateStore, advisor portsai.Advisor) *AdviceService {
	return &AdviceService{store: store, advisor: advisor}
}

var _ portssvc.AdviceSvcFacade = (*AdviceService)(nil)

// Advise builds the summary and delegates to the advisor.
func (s *AdviceService) Advise(ctx context.Context) (*dto.AdviceResponse, error) {
	var summary domain.AdviceSummary
	err := s.store.View(func(state *domain.AppState) error {
		summary = buildSummary(state)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.advisor == nil {
		return &dto.AdviceResponse{Advice: FallbackAdvice, Fallback: true}, nil
	}

	callCtx, cancel := context.WithTimeout(ctx, adviceTimeout)
	defer cancel()

	advice, err := s.advisor.Advise(callCtx, summary)
	if err != nil || strings.TrimSpace(advice) == "" {
		if err != nil {
			s.LogWarn(ctx, "Advisor failed, using fallback", "error", err.Error())
		}
		return &dto.AdviceResponse{Advice: FallbackAdvice, Fallback: true}, nil
	}

	return &dto.AdviceResponse{Advice: strings.TrimSpace(advice), Fallback: false}, nil
}

// buildSummary aggregates display-currency income, expense and the top
// spending categories. No identifiers leave the process, only names and
// totals.
func buildSummary(state *domain.AppState) domain.AdviceSummary {
	display := state.Settings.DisplayCurrency
	symbol := display
	if c := state.FindCurrency(display); c != nil {
		symbol = c.Symbol
	}

	income := decimal.Zero
	expense := decimal.Zero
	spentByCategory := map[string]decimal.Decimal{}
	for _, txn := range state.Transactions {
		if txn.CurrencyCode != display {
			continue
		}
		switch txn.Type {
		case domain.Income:
			income = income.Add(txn.Amount)
		case domain.Expense:
			expense = expense.Add(txn.Amount)
			spentByCategory[txn.CategoryID] = spentByCategory[txn.CategoryID].Add(txn.Amount)
		}
	}

	top := make([]domain.CategorySpend, 0, len(spentByCategory))
	for id, spent := range spentByCategory {
		top = append(top, domain.CategorySpend{CategoryName: state.CategoryName(id), Spent: spent})
	}
	sort.Slice(top, func(i, j int) bool {
		if !top[i].Spent.Equal(top[j].Spent) {
			return top[i].Spent.GreaterThan(top[j].Spent)
		}
		return top[i].CategoryName < top[j].CategoryName
	})
	if len(top) > topCategoryCount {
		top = top[:topCategoryCount]
	}

	return domain.AdviceSummary{
		CurrencySymbol: symbol,
		TotalIncome:    income,
		TotalExpense:   expense,
		TopCategories:  top,
	}
}
