package services

import (
	"context"

	"github.com/weberkan/mevatur-backend/internal/core/domain"
	"github.com/weberkan/mevatur-backend/internal/dto"
)

// PaymentReaderSvc defines read operations for payment data
type PaymentReaderSvc interface {
	// GetPaymentByID retrieves a specific payment by its ID.
	GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)

	// ListPaymentsByParticipant retrieves all payments of a participant.
	ListPaymentsByParticipant(ctx context.Context, participantID string) ([]domain.Payment, error)

	// ListPaymentsByGroup retrieves all payments of a group's participants.
	ListPaymentsByGroup(ctx context.Context, groupID string) ([]domain.Payment, error)
}

// PaymentWriterSvc defines write operations for payment data
type PaymentWriterSvc interface {
	// CreatePayment records a payment, snapshotting its TRY value with
	// the rates in effect right now.
	CreatePayment(ctx context.Context, req dto.CreatePaymentRequest, creatorUserID string) (*domain.Payment, error)

	// UpdatePayment updates a payment. When amount or currency change the
	// TRY snapshot is retaken with current rates.
	UpdatePayment(ctx context.Context, paymentID string, req dto.UpdatePaymentRequest, updaterUserID string) (*domain.Payment, error)

	// DeletePayment removes a payment.
	DeletePayment(ctx context.Context, paymentID string) error
}

// PaymentSvcFacade combines all payment-related service interfaces
type PaymentSvcFacade interface {
	PaymentReaderSvc
	PaymentWriterSvc
}
