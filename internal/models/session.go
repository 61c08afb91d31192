package models

import (
	"time"
)

// Session statuses
const (
	SessionActive    = "active"
	SessionCompleted = "completed"
)

// Session represents one timed coaching encounter
type Session struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ClientID  string     `gorm:"not null;index" json:"client_id"`
	Date      time.Time  `gorm:"index" json:"date"`
	Status    string     `gorm:"default:active;index" json:"status"` // active, completed
	StartTime time.Time  `gorm:"not null" json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
	Duration  *int       `json:"duration"` // minutes, set once when the session ends
	Summary   string     `json:"summary"`
	Notes     string     `json:"notes"`

	// Relationships
	Client      Client       `gorm:"constraint:OnUpdate:CASCADE;" json:"client,omitempty"`
	AIResponses []AIResponse `gorm:"foreignKey:SessionID" json:"ai_responses"`
	Transcripts []Transcript `gorm:"foreignKey:SessionID" json:"transcripts"`
}

// AIResponse is one entry of a session's ordered AI response log
type AIResponse struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	SessionID string `gorm:"not null;index" json:"session_id"`
	Seq       int    `gorm:"not null" json:"seq"`
	Prompt    string `json:"prompt"`
	Response  string `json:"response"`
}

// Transcript is one entry of a session's ordered voice transcript log
type Transcript struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	SessionID string `gorm:"not null;index" json:"session_id"`
	Seq       int    `gorm:"not null" json:"seq"`
	Text      string `json:"text"`
	Source    string `json:"source"` // microphone, upload
}
