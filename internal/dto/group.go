package dto

import (
	"time"

	"github.com/weberkan/mevatur-backend/internal/core/domain"
)

// CreateGroupRequest defines the data needed to create a new group.
type CreateGroupRequest struct {
	Name           string                `json:"name" binding:"required"`
	Type           string                `json:"type" binding:"required,oneof=Hac Umre Gezi"`
	StartDate      time.Time             `json:"startDate" binding:"required"`
	EndDate        *time.Time            `json:"endDate"`
	Capacity       int                   `json:"capacity" binding:"required,gt=0"`
	Currency       string                `json:"currency" binding:"required,oneof=TRY USD SAR"`
	FeesByDuration domain.FeesByDuration `json:"feesByDuration"`
	Notes          string                `json:"notes"`
}

// UpdateGroupRequest defines the data allowed for updating a group.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateGroupRequest struct {
	Name           *string                `json:"name"`
	Type           *string                `json:"type" binding:"omitempty,oneof=Hac Umre Gezi"`
	StartDate      *time.Time             `json:"startDate"`
	EndDate        *time.Time             `json:"endDate"`
	Capacity       *int                   `json:"capacity" binding:"omitempty,gt=0"`
	Currency       *string                `json:"currency" binding:"omitempty,oneof=TRY USD SAR"`
	FeesByDuration *domain.FeesByDuration `json:"feesByDuration"`
	Notes          *string                `json:"notes"`
}

// GroupResponse defines the data returned for a group.
type GroupResponse struct {
	GroupID        string                `json:"groupID"`
	Name           string                `json:"name"`
	Type           string                `json:"type"`
	StartDate      time.Time             `json:"startDate"`
	EndDate        *time.Time            `json:"endDate,omitempty"`
	Capacity       int                   `json:"capacity"`
	Currency       string                `json:"currency"`
	FeesByDuration domain.FeesByDuration `json:"feesByDuration"`
	Notes          string                `json:"notes,omitempty"`
	Status         string                `json:"status"`
	ArchivedAt     *time.Time            `json:"archivedAt,omitempty"`
	CreatedAt      time.Time             `json:"createdAt"`
	CreatedBy      string                `json:"createdBy"`
	LastUpdatedAt  time.Time             `json:"lastUpdatedAt"`
	LastUpdatedBy  string                `json:"lastUpdatedBy"`
}

// ToGroupResponse converts a domain.Group to GroupResponse DTO
func ToGroupResponse(g *domain.Group) GroupResponse {
	return GroupResponse{
		GroupID:        g.GroupID,
		Name:           g.Name,
		Type:           string(g.Type),
		StartDate:      g.StartDate,
		EndDate:        g.EndDate,
		Capacity:       g.Capacity,
		Currency:       g.Currency,
		FeesByDuration: g.FeesByDuration,
		Notes:          g.Notes,
		Status:         string(g.Status),
		ArchivedAt:     g.ArchivedAt,
		CreatedAt:      g.CreatedAt,
		CreatedBy:      g.CreatedBy,
		LastUpdatedAt:  g.LastUpdatedAt,
		LastUpdatedBy:  g.LastUpdatedBy,
	}
}

// ToListGroupResponse converts a slice of domain.Group to GroupResponse DTOs
func ToListGroupResponse(groups []domain.Group) []GroupResponse {
	res := make([]GroupResponse, len(groups))
	for i := range groups {
		res[i] = ToGroupResponse(&groups[i])
	}
	return res
}
