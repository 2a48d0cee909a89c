package services

import (
	portsai "github.com/thariapp/thari_backend/internal/core/ports/ai"
	portssvc "github.com/thariapp/thari_backend/internal/core/ports/services"
	"github.com/thariapp/thari_backend/internal/platform/config"
)

// NewServiceContainer wires every service around the shared state store.
func NewServiceContainer(store *StateStore, advisor portsai.Advisor, cfg *config.Config) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Currency:    NewCurrencyService(store),
		Wallet:      NewWalletService(store),
		Category:    NewCategoryService(store),
		Transaction: NewTransactionService(store),
		Balance:     NewBalanceService(store),
		Budget:      NewBudgetService(store),
		Debt:        NewDebtService(store),
		Planning:    NewPlanningService(store),
		Report:      NewReportService(store),
		Backup:      NewBackupService(store),
		Advice:      NewAdviceService(store, advisor),
		Auth:        NewAuthService(store, cfg),
	}
}
