package records

import (
	"context"
	"sort"
	"strings"
	"sync"

	"gorm.io/gorm"

	"packsight/internal/models"
)

// Store keeps the local log of completed submissions shown on the
// inspections page.
type Store interface {
	Create(ctx context.Context, rec models.InspectionRecord) error
	List(ctx context.Context, search string, limit int) ([]models.InspectionRecord, error)
}

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore { return &GormStore{db: db} }

func (g *GormStore) Create(ctx context.Context, rec models.InspectionRecord) error {
	return g.db.WithContext(ctx).Create(&rec).Error
}

func (g *GormStore) List(ctx context.Context, search string, limit int) ([]models.InspectionRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	q := g.db.WithContext(ctx).Order("created_at desc").Limit(limit)
	if s := strings.TrimSpace(search); s != "" {
		q = q.Where("tracking_number ILIKE ?", "%"+s+"%")
	}
	var recs []models.InspectionRecord
	err := q.Find(&recs).Error
	return recs, err
}

type MemStore struct {
	mu   sync.Mutex
	recs []models.InspectionRecord
}

func NewMemStore() *MemStore { return &MemStore{} }

func (m *MemStore) Create(_ context.Context, rec models.InspectionRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recs = append(m.recs, rec)
	return nil
}

func (m *MemStore) List(_ context.Context, search string, limit int) ([]models.InspectionRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	search = strings.ToLower(strings.TrimSpace(search))
	var out []models.InspectionRecord
	for _, r := range m.recs {
		if search != "" && !strings.Contains(strings.ToLower(r.TrackingNumber), search) {
			continue
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
