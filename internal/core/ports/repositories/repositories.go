package repositories

// RepositoryProvider bundles the repository facades handed to the service
// container.
type RepositoryProvider struct {
	ElementRepo     ElementRepositoryFacade
	PlayerRepo      PlayerRepositoryFacade
	AccountRepo     AccountRepositoryFacade
	TransactionRepo TransactionRepositoryWithTx
}
