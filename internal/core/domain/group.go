package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GroupType classifies a tour group.
type GroupType string

const (
	GroupTypeHac  GroupType = "Hac"
	GroupTypeUmre GroupType = "Umre"
	GroupTypeGezi GroupType = "Gezi"
)

// IsValid reports whether t is a known group type.
func (t GroupType) IsValid() bool {
	switch t {
	case GroupTypeHac, GroupTypeUmre, GroupTypeGezi:
		return true
	}
	return false
}

// GroupStatus marks whether a group is still operated or archived.
type GroupStatus string

const (
	GroupStatusActive   GroupStatus = "active"
	GroupStatusArchived GroupStatus = "archived"
)

// FeeSet holds the price per person for 2/3/4-person room occupancy,
// denominated in the group's currency. A zero value means "no fee defined"
// for that occupancy, which resolves to a fee of 0, never an error.
type FeeSet struct {
	Room2 decimal.Decimal `json:"room2"`
	Room3 decimal.Decimal `json:"room3"`
	Room4 decimal.Decimal `json:"room4"`
}

// ForRoomType returns the price for the given room type ("2", "3" or "4").
// Unknown room types resolve to 0.
func (f FeeSet) ForRoomType(roomType string) decimal.Decimal {
	switch roomType {
	case "2":
		return f.Room2
	case "3":
		return f.Room3
	case "4":
		return f.Room4
	}
	return decimal.Zero
}

// FeesByDuration maps the supported stay durations (7, 10, 14 and 20 days)
// to their fee sets. Exactly one fee exists per (duration, room-type) pair.
type FeesByDuration struct {
	D7  FeeSet `json:"d7"`
	D10 FeeSet `json:"d10"`
	D14 FeeSet `json:"d14"`
	D20 FeeSet `json:"d20"`
}

// ForDuration returns the fee set for the given stay length. Unsupported
// durations resolve to an empty set, so the fee lookup yields 0.
func (f FeesByDuration) ForDuration(dayCount int) FeeSet {
	switch dayCount {
	case 7:
		return f.D7
	case 10:
		return f.D10
	case 14:
		return f.D14
	case 20:
		return f.D20
	}
	return FeeSet{}
}

// SupportedDayCounts are the stay durations a fee can be defined for.
var SupportedDayCounts = []int{7, 10, 14, 20}

// IsSupportedDayCount reports whether n is a supported stay duration.
func IsSupportedDayCount(n int) bool {
	for _, d := range SupportedDayCounts {
		if d == n {
			return true
		}
	}
	return false
}

// Group is a Hajj/Umrah/tour group with its per-duration fee schedule.
type Group struct {
	GroupID        string         `json:"groupID"`
	Name           string         `json:"name"`
	Type           GroupType      `json:"type"`
	StartDate      time.Time      `json:"startDate"`
	EndDate        *time.Time     `json:"endDate,omitempty"`
	Capacity       int            `json:"capacity"`
	Currency       string         `json:"currency"`
	FeesByDuration FeesByDuration `json:"feesByDuration"`
	Notes          string         `json:"notes,omitempty"`
	Status         GroupStatus    `json:"status"`
	ArchivedAt     *time.Time     `json:"archivedAt,omitempty"`
	AuditFields
}
