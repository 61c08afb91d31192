package models

import (
	"time"
)

// Consent event types
const (
	ConsentInitial      = "initial_consent"
	ConsentDataExport   = "data_export"
	ConsentDataDeletion = "data_deletion"
)

// ConsentRecord is an append-only audit entry documenting a
// data-protection-relevant event for a client. Records are never deleted;
// they survive erasure of the client they reference as the legal audit
// trail.
type ConsentRecord struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	ClientID  string    `gorm:"not null;index" json:"client_id"`
	Type      string    `gorm:"not null;index" json:"type"`
	Timestamp time.Time `gorm:"not null" json:"timestamp"`
	Agent     string    `json:"agent"` // identifying string of the acting agent
	Reason    string    `json:"reason"`
	Metadata  string    `json:"metadata"`
}
