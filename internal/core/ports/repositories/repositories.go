package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	GroupRepo        GroupRepositoryFacade
	ParticipantRepo  ParticipantRepositoryFacade
	RoomRepo         RoomRepositoryFacade
	PaymentRepo      PaymentRepositoryFacade
	ExpenseRepo      ExpenseRepositoryFacade
	CompanyEntryRepo CompanyEntryRepositoryFacade
	RateHistoryRepo  RateHistoryRepositoryFacade
	UserRepo         UserRepositoryFacade
}
