package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/weberkan/mevatur-backend/internal/core/domain"
)

// CreateParticipantRequest defines the data needed to enroll a participant.
type CreateParticipantRequest struct {
	FullName           string          `json:"fullName" binding:"required"`
	Phone              string          `json:"phone"`
	Email              string          `json:"email" binding:"omitempty,email"`
	IDNumber           string          `json:"idNumber"`
	PassportNo         string          `json:"passportNo"`
	PassportValidUntil *time.Time      `json:"passportValidUntil"`
	BirthDate          *time.Time      `json:"birthDate"`
	Gender             string          `json:"gender"`
	GroupID            string          `json:"groupID" binding:"required"`
	RoomType           string          `json:"roomType" binding:"required,oneof=2 3 4"`
	DayCount           int             `json:"dayCount" binding:"required,oneof=7 10 14 20"`
	Discount           decimal.Decimal `json:"discount" binding:"omitempty,gte=0"`
	RoomID             *string         `json:"roomID"`
	Reference          string          `json:"reference"`
}

// UpdateParticipantRequest defines the data allowed for updating a participant.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateParticipantRequest struct {
	FullName           *string          `json:"fullName"`
	Phone              *string          `json:"phone"`
	Email              *string          `json:"email" binding:"omitempty,email"`
	IDNumber           *string          `json:"idNumber"`
	PassportNo         *string          `json:"passportNo"`
	PassportValidUntil *time.Time       `json:"passportValidUntil"`
	BirthDate          *time.Time       `json:"birthDate"`
	Gender             *string          `json:"gender"`
	RoomType           *string          `json:"roomType" binding:"omitempty,oneof=2 3 4"`
	DayCount           *int             `json:"dayCount" binding:"omitempty,oneof=7 10 14 20"`
	Discount           *decimal.Decimal `json:"discount" binding:"omitempty,gte=0"`
	RoomID             *string          `json:"roomID"`
	Reference          *string          `json:"reference"`
}

// ParticipantResponse defines the data returned for a participant.
type ParticipantResponse struct {
	ParticipantID      string          `json:"participantID"`
	FullName           string          `json:"fullName"`
	Phone              string          `json:"phone,omitempty"`
	Email              string          `json:"email,omitempty"`
	IDNumber           string          `json:"idNumber,omitempty"`
	PassportNo         string          `json:"passportNo,omitempty"`
	PassportValidUntil *time.Time      `json:"passportValidUntil,omitempty"`
	BirthDate          *time.Time      `json:"birthDate,omitempty"`
	Gender             string          `json:"gender,omitempty"`
	GroupID            string          `json:"groupID"`
	RoomType           string          `json:"roomType"`
	DayCount           int             `json:"dayCount"`
	Discount           decimal.Decimal `json:"discount"`
	RoomID             *string         `json:"roomID,omitempty"`
	Reference          string          `json:"reference,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
	CreatedBy          string          `json:"createdBy"`
	LastUpdatedAt      time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy      string          `json:"lastUpdatedBy"`
}

// ToParticipantResponse converts a domain.Participant to ParticipantResponse DTO
func ToParticipantResponse(p *domain.Participant) ParticipantResponse {
	return ParticipantResponse{
		ParticipantID:      p.ParticipantID,
		FullName:           p.FullName,
		Phone:              p.Phone,
		Email:              p.Email,
		IDNumber:           p.IDNumber,
		PassportNo:         p.PassportNo,
		PassportValidUntil: p.PassportValidUntil,
		BirthDate:          p.BirthDate,
		Gender:             p.Gender,
		GroupID:            p.GroupID,
		RoomType:           p.RoomType,
		DayCount:           p.DayCount,
		Discount:           p.Discount,
		RoomID:             p.RoomID,
		Reference:          p.Reference,
		CreatedAt:          p.CreatedAt,
		CreatedBy:          p.CreatedBy,
		LastUpdatedAt:      p.LastUpdatedAt,
		LastUpdatedBy:      p.LastUpdatedBy,
	}
}

// ToListParticipantResponse converts a slice of domain.Participant to DTOs
func ToListParticipantResponse(participants []domain.Participant) []ParticipantResponse {
	res := make([]ParticipantResponse, len(participants))
	for i := range participants {
		res[i] = ToParticipantResponse(&participants[i])
	}
	return res
}
