package services

import (
	"github.com/redis/go-redis/v9"

	portsrepo "github.com/weberkan/mevatur-backend/internal/core/ports/repositories"
	portssvc "github.com/weberkan/mevatur-backend/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// cache may be nil when redis is not configured.
func NewServiceContainer(repos portsrepo.RepositoryProvider, fetcher RateFetcher, cache *redis.Client) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Rates first, the money-touching services snapshot through it.
	container.Rates = NewRatesService(fetcher, repos.RateHistoryRepo, cache)

	container.Group = NewGroupService(repos.GroupRepo)
	container.Participant = NewParticipantService(repos.ParticipantRepo, repos.GroupRepo, repos.RoomRepo)
	container.Room = NewRoomService(repos.RoomRepo, repos.GroupRepo)
	container.Payment = NewPaymentService(repos.PaymentRepo, repos.ParticipantRepo, container.Rates)
	container.Expense = NewExpenseService(repos.ExpenseRepo, repos.GroupRepo, container.Rates)
	container.CompanyEntry = NewCompanyEntryService(repos.CompanyEntryRepo, container.Rates)
	container.User = NewUserService(repos.UserRepo)
	container.Ledger = NewLedgerService(
		repos.GroupRepo,
		repos.ParticipantRepo,
		repos.PaymentRepo,
		repos.ExpenseRepo,
		repos.CompanyEntryRepo,
		container.Rates,
	)

	return container
}
