package db

import (
	"time"

	"gorm.io/gorm"

	"github.com/allensfl/coach-mission-control/internal/models"
)

// ClientExport is the data-portability bundle for one client.
type ClientExport struct {
	Client         *models.Client         `json:"client"`
	Sessions       []models.Session       `json:"sessions"`
	Notes          []models.Note          `json:"notes"`
	ConsentRecords []models.ConsentRecord `json:"consent_records"`
	ExportDate     time.Time              `json:"export_date"`
	ExportReason   string                 `json:"export_reason"`
}

// Backup is a snapshot of all record collections.
type Backup struct {
	Version       string           `json:"version"`
	Created       time.Time        `json:"created"`
	Clients       []models.Client  `json:"clients"`
	Sessions      []models.Session `json:"sessions"`
	Notes         []models.Note    `json:"notes"`
	TotalClients  int              `json:"total_clients"`
	TotalSessions int              `json:"total_sessions"`
}

// ExportClientData gathers everything stored about one client. The bundle
// reflects the collections at the moment of the export; the data_export
// audit entry is appended in the same transaction, so a failed audit write
// aborts the export.
func (s *Store) ExportClientData(clientID string) (*ClientExport, error) {
	client, err := s.GetClient(clientID)
	if err != nil {
		return nil, err
	}

	export := ClientExport{
		Client:       client,
		ExportDate:   time.Now(),
		ExportReason: "client_request",
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Preload("AIResponses", func(db *gorm.DB) *gorm.DB { return db.Order("seq ASC") }).
			Preload("Transcripts", func(db *gorm.DB) *gorm.DB { return db.Order("seq ASC") }).
			Where("client_id = ?", clientID).Order("date DESC").
			Find(&export.Sessions).Error; err != nil {
			return err
		}
		if err := tx.Where("client_id = ?", clientID).Order("created_at ASC").
			Find(&export.Notes).Error; err != nil {
			return err
		}
		if err := tx.Where("client_id = ?", clientID).Order("timestamp ASC").
			Find(&export.ConsentRecords).Error; err != nil {
			return err
		}
		return recordConsent(tx, clientID, models.ConsentDataExport, "client_request", "")
	})
	if err != nil {
		return nil, storageErr("export client data", err)
	}

	return &export, nil
}

// GetClientConsentRecords returns the audit trail for a client, oldest
// first. The trail outlives the client record itself.
func (s *Store) GetClientConsentRecords(clientID string) ([]models.ConsentRecord, error) {
	var records []models.ConsentRecord
	err := s.db.Where("client_id = ?", clientID).Order("timestamp ASC").Find(&records).Error
	if err != nil {
		return nil, storageErr("list consent records", err)
	}
	return records, nil
}

// CreateBackup snapshots all clients, sessions and notes. Read-only; no
// audit entry is written because a backup is not a data-subject event.
func (s *Store) CreateBackup() (*Backup, error) {
	backup := Backup{
		Version: "1.0",
		Created: time.Now(),
	}

	if err := s.db.Preload("Topics").Order("created_at ASC").Find(&backup.Clients).Error; err != nil {
		return nil, storageErr("backup clients", err)
	}
	if err := s.db.
		Preload("AIResponses", func(db *gorm.DB) *gorm.DB { return db.Order("seq ASC") }).
		Preload("Transcripts", func(db *gorm.DB) *gorm.DB { return db.Order("seq ASC") }).
		Order("date ASC").Find(&backup.Sessions).Error; err != nil {
		return nil, storageErr("backup sessions", err)
	}
	if err := s.db.Order("created_at ASC").Find(&backup.Notes).Error; err != nil {
		return nil, storageErr("backup notes", err)
	}

	backup.TotalClients = len(backup.Clients)
	backup.TotalSessions = len(backup.Sessions)
	return &backup, nil
}
