package db

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/allensfl/coach-mission-control/internal/models"
)

// SessionOverrides lets seeding and tests override the defaults of a new
// session. Nil fields keep the defaults.
type SessionOverrides struct {
	Date      *time.Time
	StartTime *time.Time
	EndTime   *time.Time
	Status    *string
	Duration  *int
	Summary   *string
	Notes     *string
}

// CreateSession starts a new coaching session for an existing client.
func (s *Store) CreateSession(clientID string, overrides *SessionOverrides) (*models.Session, error) {
	if _, err := s.GetClient(clientID); err != nil {
		return nil, err
	}

	now := time.Now()
	session := models.Session{
		ID:        uuid.NewString(),
		ClientID:  clientID,
		Date:      now,
		Status:    models.SessionActive,
		StartTime: now,
	}

	if overrides != nil {
		if overrides.Date != nil {
			session.Date = *overrides.Date
		}
		if overrides.StartTime != nil {
			session.StartTime = *overrides.StartTime
		}
		if overrides.EndTime != nil {
			session.EndTime = overrides.EndTime
		}
		if overrides.Status != nil {
			session.Status = *overrides.Status
		}
		if overrides.Duration != nil {
			session.Duration = overrides.Duration
		}
		if overrides.Summary != nil {
			session.Summary = *overrides.Summary
		}
		if overrides.Notes != nil {
			session.Notes = *overrides.Notes
		}
	}

	if err := s.db.Create(&session).Error; err != nil {
		return nil, storageErr("create session", err)
	}

	if err := s.RecomputeClientStats(clientID); err != nil {
		return nil, err
	}

	return &session, nil
}

// EndSession completes an active session, computing its duration in
// minutes. Ending a completed session is rejected with a ConflictError;
// duration and end time are written exactly once.
func (s *Store) EndSession(sessionID, summary, notes string) (*models.Session, error) {
	session, err := s.GetSession(sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status == models.SessionCompleted {
		return nil, &ConflictError{Entity: "session", ID: sessionID, Reason: "already completed"}
	}

	now := time.Now()
	duration := int(math.Round(now.Sub(session.StartTime).Seconds() / 60))
	if duration < 0 {
		duration = 0
	}

	err = s.db.Model(&models.Session{}).Where("id = ?", sessionID).
		Updates(map[string]any{
			"status":   models.SessionCompleted,
			"end_time": now,
			"duration": duration,
			"summary":  summary,
			"notes":    notes,
		}).Error
	if err != nil {
		return nil, storageErr("end session", err)
	}

	session.Status = models.SessionCompleted
	session.EndTime = &now
	session.Duration = &duration
	session.Summary = summary
	session.Notes = notes

	if err := s.RecomputeClientStats(session.ClientID); err != nil {
		return nil, err
	}

	return session, nil
}

// GetSession retrieves a session with its ordered logs.
func (s *Store) GetSession(id string) (*models.Session, error) {
	var session models.Session
	err := s.db.
		Preload("AIResponses", func(db *gorm.DB) *gorm.DB { return db.Order("seq ASC") }).
		Preload("Transcripts", func(db *gorm.DB) *gorm.DB { return db.Order("seq ASC") }).
		First(&session, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "session", ID: id}
		}
		return nil, storageErr("get session", err)
	}
	return &session, nil
}

// GetActiveSession returns the currently running session, if any.
func (s *Store) GetActiveSession() (*models.Session, error) {
	var session models.Session
	err := s.db.Where("status = ?", models.SessionActive).
		Order("start_time DESC").First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // No active session is not an error
		}
		return nil, storageErr("get active session", err)
	}
	return &session, nil
}

// GetClientSessions returns all sessions owned by a client, newest first.
func (s *Store) GetClientSessions(clientID string) ([]models.Session, error) {
	var sessions []models.Session
	err := s.db.Where("client_id = ?", clientID).Order("date DESC").Find(&sessions).Error
	if err != nil {
		return nil, storageErr("list sessions", err)
	}
	return sessions, nil
}

// GetSessionsInRange returns completed sessions that started within the
// given range, oldest first. Used for the weekly report.
func (s *Store) GetSessionsInRange(start, end time.Time) ([]models.Session, error) {
	var sessions []models.Session
	err := s.db.
		Where("start_time >= ? AND start_time <= ? AND status = ?", start, end, models.SessionCompleted).
		Order("start_time ASC").
		Find(&sessions).Error
	if err != nil {
		return nil, storageErr("list sessions in range", err)
	}
	return sessions, nil
}

// AppendAIResponse appends an entry to the session's ordered AI log.
func (s *Store) AppendAIResponse(sessionID, prompt, response string) (*models.AIResponse, error) {
	session, err := s.GetSession(sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status == models.SessionCompleted {
		return nil, &ConflictError{Entity: "session", ID: sessionID, Reason: "already completed"}
	}

	entry := models.AIResponse{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Seq:       len(session.AIResponses) + 1,
		Prompt:    prompt,
		Response:  response,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, storageErr("append ai response", err)
	}
	return &entry, nil
}

// AppendTranscript appends an entry to the session's ordered voice
// transcript log.
func (s *Store) AppendTranscript(sessionID, text, source string) (*models.Transcript, error) {
	session, err := s.GetSession(sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status == models.SessionCompleted {
		return nil, &ConflictError{Entity: "session", ID: sessionID, Reason: "already completed"}
	}

	entry := models.Transcript{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Seq:       len(session.Transcripts) + 1,
		Text:      text,
		Source:    source,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, storageErr("append transcript", err)
	}
	return &entry, nil
}

// AddNote attaches a typed note to a session. The client id is derived
// from the session, never taken from the caller.
func (s *Store) AddNote(sessionID, noteType, content string) (*models.Note, error) {
	session, err := s.GetSession(sessionID)
	if err != nil {
		return nil, err
	}

	note := models.Note{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		ClientID:  session.ClientID,
		Type:      noteType,
		Content:   content,
	}
	if err := s.db.Create(&note).Error; err != nil {
		return nil, storageErr("add note", err)
	}
	return &note, nil
}

// GetClientNotes returns all notes for a client across its sessions.
func (s *Store) GetClientNotes(clientID string) ([]models.Note, error) {
	var notes []models.Note
	err := s.db.Where("client_id = ?", clientID).Order("created_at ASC").Find(&notes).Error
	if err != nil {
		return nil, storageErr("list notes", err)
	}
	return notes, nil
}

// GetSessionNotes returns the notes attached to one session.
func (s *Store) GetSessionNotes(sessionID string) ([]models.Note, error) {
	var notes []models.Note
	err := s.db.Where("session_id = ?", sessionID).Order("created_at ASC").Find(&notes).Error
	if err != nil {
		return nil, storageErr("list notes", err)
	}
	return notes, nil
}

// RecomputeClientStats rebuilds the client's denormalized counters from
// its session collection. The counters are a cache; this is a pure
// aggregation, idempotent and callable at any time.
func (s *Store) RecomputeClientStats(clientID string) error {
	sessions, err := s.GetClientSessions(clientID)
	if err != nil {
		return err
	}

	total, last := sessionStats(sessions)

	err = s.db.Model(&models.Client{}).Where("id = ?", clientID).
		Updates(map[string]any{
			"total_sessions":    total,
			"last_session_date": last,
		}).Error
	if err != nil {
		return storageErr("recompute client stats", err)
	}

	// Refresh the cache entry from storage.
	var client models.Client
	if err := s.db.Preload("Topics").First(&client, "id = ?", clientID).Error; err == nil {
		s.cachePut(&client)
	}
	return nil
}

// sessionStats aggregates completed sessions: their count, and the date of
// the most recently dated one (latest date wins, not insertion order).
func sessionStats(sessions []models.Session) (int, *time.Time) {
	total := 0
	var last *time.Time
	for i := range sessions {
		if sessions[i].Status != models.SessionCompleted {
			continue
		}
		total++
		d := sessions[i].Date
		if last == nil || d.After(*last) {
			last = &d
		}
	}
	return total, last
}
