package repositories

import (
	"context"
	"time"

	"github.com/weberkan/mevatur-backend/internal/core/domain"
)

// PaymentReader defines read operations for payment data
type PaymentReader interface {
	// FindPaymentByID retrieves a specific payment by its ID.
	FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)

	// ListPaymentsByParticipant retrieves all payments of a participant,
	// ordered by date.
	ListPaymentsByParticipant(ctx context.Context, participantID string) ([]domain.Payment, error)

	// ListPaymentsByGroup retrieves all payments of a group's participants.
	ListPaymentsByGroup(ctx context.Context, groupID string) ([]domain.Payment, error)

	// ListPayments retrieves all payments, optionally limited to a date
	// range. Nil bounds are open-ended.
	ListPayments(ctx context.Context, from, to *time.Time) ([]domain.Payment, error)
}

// PaymentWriter defines write operations for payment data
type PaymentWriter interface {
	// SavePayment persists a new payment.
	SavePayment(ctx context.Context, payment domain.Payment) error

	// UpdatePayment updates an existing payment.
	UpdatePayment(ctx context.Context, payment domain.Payment) error

	// DeletePayment removes a payment.
	DeletePayment(ctx context.Context, paymentID string) error
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}
