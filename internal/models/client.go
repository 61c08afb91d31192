package models

import (
	"time"
)

// Client represents a coaching client record.
// Erasure is a hard delete (GDPR right to be forgotten), so there is no
// soft-delete column; the consent log is the durable trace.
type Client struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name       string `gorm:"not null;index" json:"name"`
	Email      string `gorm:"index" json:"email"`
	Phone      string `gorm:"index" json:"phone"`
	Age        int    `json:"age"`
	Profession string `json:"profession"`
	Situation  string `json:"situation"`
	Goals      string `json:"goals"`
	Notes      string `json:"notes"`

	Status       string    `gorm:"default:active;index" json:"status"` // active, pending_erasure
	ConsentGiven bool      `json:"consent_given"`
	ConsentDate  time.Time `json:"consent_date"`

	// Derived counters, recomputed from completed sessions. Never a
	// source of truth; rebuild with RecomputeClientStats at any time.
	TotalSessions   int        `json:"total_sessions"`
	LastSessionDate *time.Time `json:"last_session_date"`

	// Relationships
	Topics   []Topic   `gorm:"many2many:client_topics;" json:"topics"`
	Sessions []Session `gorm:"foreignKey:ClientID" json:"sessions,omitempty"`
}

// Topic represents a coaching topic tag (Leadership, Stressmanagement, ...)
type Topic struct {
	ID   uint   `gorm:"primarykey" json:"id"`
	Name string `gorm:"unique;not null" json:"name"`

	// Relationships
	Clients []Client `gorm:"many2many:client_topics;" json:"-"`
}

// ClientTopic is the join table for the many-to-many relationship
type ClientTopic struct {
	ClientID string `gorm:"primaryKey"`
	TopicID  uint   `gorm:"primaryKey"`
}
