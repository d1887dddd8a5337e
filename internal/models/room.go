package models

// Room represents a row of the rooms table.
type Room struct {
	RoomID  string `json:"roomID" db:"room_id"`
	GroupID string `json:"groupID" db:"group_id"`
	Name    string `json:"name" db:"name"`
	Type    string `json:"type" db:"type"`
	AuditFields
}
