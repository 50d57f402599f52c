package wizard

import (
	"sync"

	"packsight/internal/capture"
)

// Manager tracks at most one draft per session.
type Manager struct {
	mu     sync.Mutex
	drafts map[string]*Draft
}

func NewManager() *Manager {
	return &Manager{drafts: make(map[string]*Draft)}
}

// Get returns the session's draft, creating a fresh one on first use.
func (m *Manager) Get(sid string) *Draft {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.drafts[sid]
	if !ok {
		d = NewDraft()
		m.drafts[sid] = d
	}
	return d
}

// Drop tears the session's draft down, releasing every preview it still
// holds. Called after submit and on logout.
func (m *Manager) Drop(sid string, reg *capture.Registry) {
	m.mu.Lock()
	d, ok := m.drafts[sid]
	if ok {
		delete(m.drafts, sid)
	}
	m.mu.Unlock()
	if ok {
		// A handler that fetched the draft earlier may still be running.
		d.Lock()
		d.Set.ReleaseAll(reg)
		d.Unlock()
	}
}
