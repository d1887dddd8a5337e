package domain

// Room belongs to a group. Type is a capacity label ("2".."5") used for
// display only; the occupant count is never enforced against it.
type Room struct {
	RoomID  string `json:"roomID"`
	GroupID string `json:"groupID"`
	Name    string `json:"name"` // e.g. 201-A
	Type    string `json:"type"`
	AuditFields
}
