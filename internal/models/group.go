package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FeeSet mirrors one room-occupancy fee row inside the fees_by_duration
// jsonb column.
type FeeSet struct {
	Room2 decimal.Decimal `json:"room2"`
	Room3 decimal.Decimal `json:"room3"`
	Room4 decimal.Decimal `json:"room4"`
}

// FeesByDuration mirrors the fees_by_duration jsonb column.
type FeesByDuration struct {
	D7  FeeSet `json:"d7"`
	D10 FeeSet `json:"d10"`
	D14 FeeSet `json:"d14"`
	D20 FeeSet `json:"d20"`
}

// Group represents a row of the groups table.
type Group struct {
	GroupID        string         `json:"groupID" db:"group_id"`
	Name           string         `json:"name" db:"name"`
	Type           string         `json:"type" db:"type"`
	StartDate      time.Time      `json:"startDate" db:"start_date"`
	EndDate        *time.Time     `json:"endDate" db:"end_date"`
	Capacity       int            `json:"capacity" db:"capacity"`
	Currency       string         `json:"currency" db:"currency"`
	FeesByDuration FeesByDuration `json:"feesByDuration" db:"fees_by_duration"`
	Notes          string         `json:"notes" db:"notes"`
	Status         string         `json:"status" db:"status"`
	ArchivedAt     *time.Time     `json:"archivedAt" db:"archived_at"`
	AuditFields
}
