package db

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/allensfl/coach-mission-control/internal/models"
)

// CreateClientRequest holds the data needed to create a new client
type CreateClientRequest struct {
	Name       string
	Email      string
	Phone      string
	Age        int
	Profession string
	Situation  string
	Goals      string
	Notes      string
	Topics     []string
}

// ClientUpdate is a typed partial update. Only the fields listed here can
// be changed; nil pointers leave the stored value untouched. The derived
// counters and consent fields are deliberately absent.
type ClientUpdate struct {
	Name       *string
	Email      *string
	Phone      *string
	Age        *int
	Profession *string
	Situation  *string
	Goals      *string
	Notes      *string
	Topics     *[]string
}

// AddClient validates and persists a new client and documents the initial
// consent in the same transaction.
func (s *Store) AddClient(req CreateClientRequest) (*models.Client, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	if name == "" {
		return nil, &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if email == "" {
		return nil, &ValidationError{Field: "email", Reason: "must not be empty"}
	}

	now := time.Now()
	client := models.Client{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		Phone:        strings.TrimSpace(req.Phone),
		Age:          req.Age,
		Profession:   req.Profession,
		Situation:    req.Situation,
		Goals:        req.Goals,
		Notes:        req.Notes,
		Status:       "active",
		ConsentGiven: true,
		ConsentDate:  now,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if len(req.Topics) > 0 {
			topics, err := findOrCreateTopics(tx, req.Topics)
			if err != nil {
				return err
			}
			client.Topics = topics
		}
		if err := tx.Create(&client).Error; err != nil {
			return err
		}
		return recordConsent(tx, client.ID, models.ConsentInitial, "", "")
	})
	if err != nil {
		return nil, storageErr("add client", err)
	}

	s.cachePut(&client)
	return &client, nil
}

// GetClient returns a client by id, served from the cache when warm.
func (s *Store) GetClient(id string) (*models.Client, error) {
	if c, ok := s.cacheGet(id); ok {
		return c, nil
	}

	var client models.Client
	err := s.db.Preload("Topics").First(&client, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "client", ID: id}
		}
		return nil, storageErr("get client", err)
	}

	s.cachePut(&client)
	return &client, nil
}

// GetClients retrieves all clients, newest first
func (s *Store) GetClients() ([]models.Client, error) {
	var clients []models.Client
	err := s.db.Preload("Topics").Order("created_at DESC").Find(&clients).Error
	if err != nil {
		return nil, storageErr("list clients", err)
	}
	return clients, nil
}

// ClientQueryOptions narrows SearchClients results
type ClientQueryOptions struct {
	Status  string
	Topic   string
	OrderBy string
	Limit   int
}

// SearchClients performs a case-insensitive substring search across name,
// email, phone, profession, situation, goals and topic names.
func (s *Store) SearchClients(query string, opts ClientQueryOptions) ([]models.Client, error) {
	q := s.db.Preload("Topics")

	// Both the substring search and the topic filter need the topics
	// tables; join them once.
	joined := false
	if query != "" || opts.Topic != "" {
		q = q.Joins("LEFT JOIN client_topics ON client_topics.client_id = clients.id").
			Joins("LEFT JOIN topics ON topics.id = client_topics.topic_id").
			Distinct("clients.*")
		joined = true
	}

	if query != "" {
		like := "%" + strings.ToLower(query) + "%"
		q = q.Where(
			"lower(clients.name) LIKE ? OR lower(clients.email) LIKE ? OR lower(clients.phone) LIKE ? OR lower(clients.profession) LIKE ? OR lower(clients.situation) LIKE ? OR lower(clients.goals) LIKE ? OR lower(topics.name) LIKE ?",
			like, like, like, like, like, like, like,
		)
	}
	if opts.Status != "" {
		q = q.Where("clients.status = ?", opts.Status)
	}
	if opts.Topic != "" && joined {
		q = q.Where("topics.name = ?", opts.Topic)
	}
	if opts.OrderBy != "" {
		q = q.Order(opts.OrderBy)
	} else {
		q = q.Order("clients.created_at DESC")
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	var clients []models.Client
	if err := q.Find(&clients).Error; err != nil {
		return nil, storageErr("search clients", err)
	}
	return clients, nil
}

// UpdateClient applies a partial update and refreshes UpdatedAt.
func (s *Store) UpdateClient(id string, update ClientUpdate) (*models.Client, error) {
	var client models.Client
	err := s.db.Preload("Topics").First(&client, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "client", ID: id}
		}
		return nil, storageErr("update client", err)
	}

	if update.Name != nil {
		client.Name = strings.TrimSpace(*update.Name)
	}
	if update.Email != nil {
		client.Email = strings.TrimSpace(*update.Email)
	}
	if update.Phone != nil {
		client.Phone = strings.TrimSpace(*update.Phone)
	}
	if update.Age != nil {
		client.Age = *update.Age
	}
	if update.Profession != nil {
		client.Profession = *update.Profession
	}
	if update.Situation != nil {
		client.Situation = *update.Situation
	}
	if update.Goals != nil {
		client.Goals = *update.Goals
	}
	if update.Notes != nil {
		client.Notes = *update.Notes
	}
	if client.Name == "" {
		return nil, &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if client.Email == "" {
		return nil, &ValidationError{Field: "email", Reason: "must not be empty"}
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if update.Topics != nil {
			topics, err := findOrCreateTopics(tx, *update.Topics)
			if err != nil {
				return err
			}
			if err := tx.Model(&client).Association("Topics").Replace(topics); err != nil {
				return err
			}
			client.Topics = topics
		}
		// Topics were replaced above; keep Save away from associations.
		return tx.Omit("Topics").Save(&client).Error
	})
	if err != nil {
		return nil, storageErr("update client", err)
	}

	s.cachePut(&client)
	return &client, nil
}

// DeleteClient erases a client and all owned sessions and notes. The
// data_deletion consent entry is written inside the same transaction,
// before the deletes: if the audit write fails nothing is erased. Consent
// records themselves are never touched.
func (s *Store) DeleteClient(id, reason string) error {
	if _, err := s.GetClient(id); err != nil {
		return err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := recordConsent(tx, id, models.ConsentDataDeletion, reason, ""); err != nil {
			return err
		}

		// Collect owned sessions first to avoid racing the index while
		// deleting their child logs.
		var sessionIDs []string
		if err := tx.Model(&models.Session{}).Where("client_id = ?", id).Pluck("id", &sessionIDs).Error; err != nil {
			return err
		}
		if len(sessionIDs) > 0 {
			if err := tx.Where("session_id IN ?", sessionIDs).Delete(&models.AIResponse{}).Error; err != nil {
				return err
			}
			if err := tx.Where("session_id IN ?", sessionIDs).Delete(&models.Transcript{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("client_id = ?", id).Delete(&models.Note{}).Error; err != nil {
			return err
		}
		if err := tx.Where("client_id = ?", id).Delete(&models.Session{}).Error; err != nil {
			return err
		}
		if err := tx.Where("client_id = ?", id).Delete(&models.ClientTopic{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Client{}, "id = ?", id).Error
	})
	if err != nil {
		return storageErr("delete client", err)
	}

	s.cacheEvict(id)
	return nil
}

// findOrCreateTopics finds existing topics or creates new ones
func findOrCreateTopics(tx *gorm.DB, names []string) ([]models.Topic, error) {
	var topics []models.Topic

	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		var topic models.Topic
		err := tx.Where("name = ?", name).First(&topic).Error
		if err != nil {
			// Topic doesn't exist, create it
			topic = models.Topic{Name: name}
			if err := tx.Create(&topic).Error; err != nil {
				return nil, err
			}
		}

		topics = append(topics, topic)
	}

	return topics, nil
}

// recordConsent appends an audit entry inside the given transaction.
func recordConsent(tx *gorm.DB, clientID, consentType, reason, metadata string) error {
	record := models.ConsentRecord{
		ID:        uuid.NewString(),
		ClientID:  clientID,
		Type:      consentType,
		Timestamp: time.Now(),
		Agent:     agent,
		Reason:    reason,
		Metadata:  metadata,
	}
	return tx.Create(&record).Error
}
