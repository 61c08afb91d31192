package models

import (
	"time"
)

// Note is a free-standing annotation attached to a session. The client id
// is stored redundantly so notes can be listed without joining through
// sessions.
type Note struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	SessionID string `gorm:"not null;index" json:"session_id"`
	ClientID  string `gorm:"not null;index" json:"client_id"`
	Type      string `gorm:"index" json:"type"` // observation, intervention, homework, ...
	Content   string `json:"content"`
}
