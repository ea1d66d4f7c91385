package repositories

// RepositoryProvider aggregates all repository implementations so the
// service container can be wired from a single value.
type RepositoryProvider struct {
	UserRepo         UserRepository
	AccountRepo      AccountRepository
	CategoryRepo     CategoryRepository
	TransactionRepo  TransactionRepository
	BudgetRepo       BudgetRepository
	GoalRepo         GoalRepository
	InvestmentRepo   InvestmentRepository
	NotificationRepo NotificationRepository
}
