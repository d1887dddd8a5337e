package services

import (
	"context"
	"time"

	"github.com/weberkan/mevatur-backend/internal/core/domain"
)

// Company ledger bucketing choices.
const (
	LedgerBucketNone    = ""
	LedgerBucketMonthly = "monthly"
	LedgerBucketWeekly  = "weekly"
)

// LedgerSvc computes financial positions. It never writes anything.
type LedgerSvc interface {
	// ParticipantBalance computes one participant's fee, paid total and
	// outstanding balance in the group currency (live rates) and in TRY
	// (recorded snapshots).
	ParticipantBalance(ctx context.Context, participantID string) (*domain.ParticipantLedger, error)

	// GroupReport computes the full roster report for a group.
	GroupReport(ctx context.Context, groupID string) (*domain.GroupReport, error)

	// CompanyLedger combines manual entries with rows derived from
	// payments and expenses, totalled per currency and optionally
	// bucketed monthly or by ISO week.
	CompanyLedger(ctx context.Context, from, to *time.Time, bucket string) (*domain.CompanyLedger, error)
}
