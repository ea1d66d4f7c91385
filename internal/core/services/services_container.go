package services

import (
	portsrepo "github.com/lucasll37/myfinanceapp-backend/internal/core/ports/repositories"
	portssvc "github.com/lucasll37/myfinanceapp-backend/internal/core/ports/services"
	"github.com/lucasll37/myfinanceapp-backend/internal/platform/config"
)

// NewServiceContainer wires every service from the repository provider.
// The account service doubles as the authorizer for all account-scoped
// services.
func NewServiceContainer(repos portsrepo.RepositoryProvider, cfg *config.Config) *portssvc.ServiceContainer {
	notificationService := NewNotificationService(repos.NotificationRepo)
	accountService := NewAccountService(repos.AccountRepo, repos.UserRepo, notificationService)

	return &portssvc.ServiceContainer{
		User:         NewUserService(repos.UserRepo),
		Token:        NewTokenService(cfg),
		GoogleOAuth:  NewGoogleOAuthService(cfg),
		Account:      accountService,
		Category:     NewCategoryService(repos.CategoryRepo, accountService),
		Transaction:  NewTransactionService(repos.TransactionRepo, repos.CategoryRepo, accountService),
		Budget:       NewBudgetService(repos.BudgetRepo, repos.CategoryRepo, accountService),
		Goal:         NewGoalService(repos.GoalRepo, accountService),
		Investment:   NewInvestmentService(repos.InvestmentRepo, accountService),
		Notification: notificationService,
	}
}
