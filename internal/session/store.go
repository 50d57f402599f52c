package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"gorm.io/gorm"

	"packsight/internal/models"
)

var ErrNotFound = errors.New("session not found")

// Store persists session records. The gorm implementation backs production;
// the memory one serves tests and DATABASE_URL-less runs.
type Store interface {
	Create(ctx context.Context, s models.Session) error
	Get(ctx context.Context, sid string) (models.Session, error)
	Delete(ctx context.Context, sid string) error
}

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore { return &GormStore{db: db} }

func (g *GormStore) Create(ctx context.Context, s models.Session) error {
	return g.db.WithContext(ctx).Create(&s).Error
}

func (g *GormStore) Get(ctx context.Context, sid string) (models.Session, error) {
	var s models.Session
	if err := g.db.WithContext(ctx).First(&s, "sid = ?", sid).Error; err != nil {
		return models.Session{}, ErrNotFound
	}
	if time.Now().After(s.ExpiresAt) {
		_ = g.db.WithContext(ctx).Delete(&models.Session{}, "sid = ?", sid).Error
		return models.Session{}, ErrNotFound
	}
	return s, nil
}

func (g *GormStore) Delete(ctx context.Context, sid string) error {
	return g.db.WithContext(ctx).Delete(&models.Session{}, "sid = ?", sid).Error
}

type MemStore struct {
	mu       sync.Mutex
	sessions map[string]models.Session
}

func NewMemStore() *MemStore {
	return &MemStore{sessions: make(map[string]models.Session)}
}

func (m *MemStore) Create(_ context.Context, s models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.SID] = s
	return nil
}

func (m *MemStore) Get(_ context.Context, sid string) (models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[sid]
	if !ok || time.Now().After(s.ExpiresAt) {
		delete(m.sessions, sid)
		return models.Session{}, ErrNotFound
	}
	return s, nil
}

func (m *MemStore) Delete(_ context.Context, sid string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sid)
	return nil
}
