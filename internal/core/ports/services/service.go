package services

// ServiceContainer aggregates all service facades for route registration.
type ServiceContainer struct {
	User         UserSvcFacade
	Token        TokenSvcFacade
	GoogleOAuth  GoogleOAuthSvcFacade
	Account      AccountSvcFacade
	Category     CategorySvcFacade
	Transaction  TransactionSvcFacade
	Budget       BudgetSvcFacade
	Goal         GoalSvcFacade
	Investment   InvestmentSvcFacade
	Notification NotificationSvcFacade
}
