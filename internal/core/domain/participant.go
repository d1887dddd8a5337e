package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Participant belongs to exactly one group. RoomType only selects the fee
// tier; the actual room assignment is RoomID and is independent of it.
type Participant struct {
	ParticipantID      string          `json:"participantID"`
	FullName           string          `json:"fullName"`
	Phone              string          `json:"phone,omitempty"`
	Email              string          `json:"email,omitempty"`
	IDNumber           string          `json:"idNumber,omitempty"`
	PassportNo         string          `json:"passportNo,omitempty"`
	PassportValidUntil *time.Time      `json:"passportValidUntil,omitempty"`
	BirthDate          *time.Time      `json:"birthDate,omitempty"`
	Gender             string          `json:"gender,omitempty"` // Mr, Mrs, Chd
	GroupID            string          `json:"groupID"`
	RoomType           string          `json:"roomType"` // "2", "3" or "4" (fee tier)
	DayCount           int             `json:"dayCount"` // 7, 10, 14 or 20
	Discount           decimal.Decimal `json:"discount"` // in the group's currency
	RoomID             *string         `json:"roomID,omitempty"`
	Reference          string          `json:"reference,omitempty"`
	AuditFields
}
