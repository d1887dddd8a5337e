package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/weberkan/mevatur-backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		GroupRepo:        newPgxGroupRepository(dbPool),
		ParticipantRepo:  newPgxParticipantRepository(dbPool),
		RoomRepo:         newPgxRoomRepository(dbPool),
		PaymentRepo:      newPgxPaymentRepository(dbPool),
		ExpenseRepo:      newPgxExpenseRepository(dbPool),
		CompanyEntryRepo: newPgxCompanyEntryRepository(dbPool),
		RateHistoryRepo:  newPgxRateHistoryRepository(dbPool),
		UserRepo:         newPgxUserRepository(dbPool),
	}
}
