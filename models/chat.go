package models

import "time"

// ChatMessage is a support-chat message. Either Text or ImageURL must be
// present; that rule is enforced before insert, not by the schema.
type ChatMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"index;not null" json:"user_id"`
	FromAdmin bool      `json:"from_admin"`
	Text      string    `json:"text"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
}
