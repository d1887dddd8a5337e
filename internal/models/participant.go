package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Participant represents a row of the participants table.
type Participant struct {
	ParticipantID      string          `json:"participantID" db:"participant_id"`
	FullName           string          `json:"fullName" db:"full_name"`
	Phone              string          `json:"phone" db:"phone"`
	Email              string          `json:"email" db:"email"`
	IDNumber           string          `json:"idNumber" db:"id_number"`
	PassportNo         string          `json:"passportNo" db:"passport_no"`
	PassportValidUntil *time.Time      `json:"passportValidUntil" db:"passport_valid_until"`
	BirthDate          *time.Time      `json:"birthDate" db:"birth_date"`
	Gender             string          `json:"gender" db:"gender"`
	GroupID            string          `json:"groupID" db:"group_id"`
	RoomType           string          `json:"roomType" db:"room_type"`
	DayCount           int             `json:"dayCount" db:"day_count"`
	Discount           decimal.Decimal `json:"discount" db:"discount"`
	RoomID             *string         `json:"roomID" db:"room_id"`
	Reference          string          `json:"reference" db:"reference"`
	AuditFields
}
