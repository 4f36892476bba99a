package services

import (
	portsrepo "github.com/openbooks/general_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/openbooks/general_ledger_app/internal/core/ports/services"
)

// NewServiceContainer wires the application services over the repository
// provider.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Element:     NewElementService(repos.ElementRepo),
		Player:      NewPlayerService(repos.PlayerRepo),
		Account:     NewAccountService(repos.AccountRepo, repos.ElementRepo, repos.PlayerRepo),
		Transaction: NewTransactionService(repos.TransactionRepo, repos.AccountRepo, repos.PlayerRepo),
	}
}
