package db

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/allensfl/coach-mission-control/internal/models"
)

// agent identifies the acting party on consent audit entries.
const agent = "coach-mission-control/cli"

// Store owns the four record collections (clients, sessions, notes,
// consent log) plus the settings table. It is constructed once at startup
// and passed by reference to every consumer; a successful Open is the
// readiness signal.
type Store struct {
	db *gorm.DB

	// Client cache, mutated only after a successful commit so readers
	// see either the pre- or post-operation state.
	mu      sync.RWMutex
	clients map[string]*models.Client
}

// Open sets up the database connection, runs migrations and warms the
// client cache.
func Open() (*Store, error) {
	dbPath, err := databasePath()
	if err != nil {
		return nil, fmt.Errorf("failed to get database path: %w", err)
	}

	// Ensure the directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return open(dbPath)
}

// OpenMemory opens a throwaway in-memory store, used by tests.
func OpenMemory() (*Store, error) {
	return open(":memory:")
}

func open(dsn string) (*Store, error) {
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	s := &Store{
		db:      gdb,
		clients: make(map[string]*models.Client),
	}

	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	if err := s.loadClients(); err != nil {
		return nil, fmt.Errorf("failed to warm client cache: %w", err)
	}

	return s, nil
}

// databasePath returns the path to the SQLite database file
func databasePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".coach-mission-control", "coach.db"), nil
}

// migrate creates/updates the database schema. AutoMigrate is idempotent,
// safe to run on every open.
func (s *Store) migrate() error {
	return s.db.AutoMigrate(
		&models.Client{},
		&models.Topic{},
		&models.ClientTopic{},
		&models.Session{},
		&models.AIResponse{},
		&models.Transcript{},
		&models.Note{},
		&models.ConsentRecord{},
		&models.Setting{},
	)
}

// loadClients fills the in-memory cache from the clients collection.
func (s *Store) loadClients() error {
	var clients []models.Client
	if err := s.db.Preload("Topics").Find(&clients).Error; err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients = make(map[string]*models.Client, len(clients))
	for i := range clients {
		c := clients[i]
		s.clients[c.ID] = &c
	}
	return nil
}

// Close closes the database connection
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// GetSetting returns the value for key, or "" when unset.
func (s *Store) GetSetting(key string) (string, error) {
	var setting models.Setting
	err := s.db.First(&setting, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", storageErr("get setting", err)
	}
	return setting.Value, nil
}

// PutSetting stores key=value, overwriting any previous value.
func (s *Store) PutSetting(key, value string) error {
	setting := models.Setting{Key: key, Value: value}
	if err := s.db.Save(&setting).Error; err != nil {
		return storageErr("put setting", err)
	}
	return nil
}

func (s *Store) cachePut(c *models.Client) {
	s.mu.Lock()
	s.clients[c.ID] = c
	s.mu.Unlock()
}

func (s *Store) cacheGet(id string) (*models.Client, bool) {
	s.mu.RLock()
	c, ok := s.clients[id]
	s.mu.RUnlock()
	return c, ok
}

func (s *Store) cacheEvict(id string) {
	s.mu.Lock()
	delete(s.clients, id)
	s.mu.Unlock()
}
