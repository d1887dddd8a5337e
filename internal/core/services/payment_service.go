package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/weberkan/mevatur-backend/internal/apperrors"
	"github.com/weberkan/mevatur-backend/internal/core/domain"
	portsrepo "github.com/weberkan/mevatur-backend/internal/core/ports/repositories"
	portssvc "github.com/weberkan/mevatur-backend/internal/core/ports/services"
	"github.com/weberkan/mevatur-backend/internal/dto"
	"github.com/weberkan/mevatur-backend/internal/utils/ledger"
)

type paymentService struct {
	BaseService
	paymentRepo     portsrepo.PaymentRepositoryFacade
	participantRepo portsrepo.ParticipantRepositoryFacade
	ratesSvc        portssvc.RatesSvc
}

// NewPaymentService creates the payment management service.
func NewPaymentService(
	paymentRepo portsrepo.PaymentRepositoryFacade,
	participantRepo portsrepo.ParticipantRepositoryFacade,
	ratesSvc portssvc.RatesSvc,
) portssvc.PaymentSvcFacade {
	return &paymentService{
		paymentRepo:     paymentRepo,
		participantRepo: participantRepo,
		ratesSvc:        ratesSvc,
	}
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

func (s *paymentService) CreatePayment(ctx context.Context, req dto.CreatePaymentRequest, creatorUserID string) (*domain.Payment, error) {
	if _, err := s.participantRepo.FindParticipantByID(ctx, req.ParticipantID); err != nil {
		return nil, err
	}
	if !req.Amount.IsPositive() {
		return nil, apperrors.NewValidationError("amount must be positive")
	}

	// The TRY snapshot is taken once, with the rates in effect right now,
	// and never recomputed when rates move.
	rates := s.ratesSvc.Current(ctx)
	amountTRY := ledger.ConvertToTRY(req.Amount, req.Currency, rates)

	now := time.Now()
	payment := domain.Payment{
		PaymentID:     uuid.NewString(),
		ParticipantID: req.ParticipantID,
		Date:          req.Date,
		Amount:        req.Amount,
		Currency:      req.Currency,
		AmountTRY:     amountTRY,
		Method:        req.Method,
		Notes:         req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.paymentRepo.SavePayment(ctx, payment); err != nil {
		s.LogError(ctx, err, "Failed to create payment", slog.String("participant_id", req.ParticipantID))
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	s.LogInfo(ctx, "Payment recorded",
		slog.String("payment_id", payment.PaymentID),
		slog.String("currency", payment.Currency),
		slog.String("amount", payment.Amount.String()))
	return &payment, nil
}

func (s *paymentService) GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	return s.paymentRepo.FindPaymentByID(ctx, paymentID)
}

func (s *paymentService) ListPaymentsByParticipant(ctx context.Context, participantID string) ([]domain.Payment, error) {
	payments, err := s.paymentRepo.ListPaymentsByParticipant(ctx, participantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments", slog.String("participant_id", participantID))
		return nil, err
	}
	if payments == nil {
		return []domain.Payment{}, nil
	}
	return payments, nil
}

func (s *paymentService) ListPaymentsByGroup(ctx context.Context, groupID string) ([]domain.Payment, error) {
	payments, err := s.paymentRepo.ListPaymentsByGroup(ctx, groupID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list group payments", slog.String("group_id", groupID))
		return nil, err
	}
	if payments == nil {
		return []domain.Payment{}, nil
	}
	return payments, nil
}

func (s *paymentService) UpdatePayment(ctx context.Context, paymentID string, req dto.UpdatePaymentRequest, updaterUserID string) (*domain.Payment, error) {
	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	retakeSnapshot := false
	if req.Date != nil {
		payment.Date = *req.Date
	}
	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return nil, apperrors.NewValidationError("amount must be positive")
		}
		payment.Amount = *req.Amount
		retakeSnapshot = true
	}
	if req.Currency != nil {
		payment.Currency = *req.Currency
		retakeSnapshot = true
	}
	if req.Method != nil {
		payment.Method = *req.Method
	}
	if req.Notes != nil {
		payment.Notes = *req.Notes
	}

	if retakeSnapshot {
		rates := s.ratesSvc.Current(ctx)
		payment.AmountTRY = ledger.ConvertToTRY(payment.Amount, payment.Currency, rates)
	}

	payment.LastUpdatedAt = time.Now()
	payment.LastUpdatedBy = updaterUserID

	if err := s.paymentRepo.UpdatePayment(ctx, *payment); err != nil {
		s.LogError(ctx, err, "Failed to update payment", slog.String("payment_id", paymentID))
		return nil, err
	}
	return payment, nil
}

func (s *paymentService) DeletePayment(ctx context.Context, paymentID string) error {
	return s.paymentRepo.DeletePayment(ctx, paymentID)
}
