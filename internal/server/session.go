// internal/server/session.go
package server

import (
	"sync"

	"github.com/google/uuid"

	"pageant-wizard/internal/common/metrics"
	"pageant-wizard/internal/wizard"
)

// SessionManager owns the in-memory wizard sessions. Each session is one
// controller keyed by a uuid; sessions do not survive a restart and are
// never shared between applicants.
type SessionManager struct {
	mu            sync.RWMutex
	sessions      map[string]*wizard.Controller
	newController func() *wizard.Controller
}

func NewSessionManager(factory func() *wizard.Controller) *SessionManager {
	return &SessionManager{
		sessions:      make(map[string]*wizard.Controller),
		newController: factory,
	}
}

// Create starts a fresh wizard session and returns its id.
func (m *SessionManager) Create() (string, *wizard.Controller) {
	id := uuid.NewString()
	ctrl := m.newController()

	m.mu.Lock()
	m.sessions[id] = ctrl
	m.mu.Unlock()

	metrics.ActiveSessions.Inc()
	return id, ctrl
}

// Get returns the session's controller, or false when the id is unknown.
func (m *SessionManager) Get(id string) (*wizard.Controller, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ctrl, ok := m.sessions[id]
	return ctrl, ok
}

// Delete discards an abandoned session.
func (m *SessionManager) Delete(id string) {
	m.mu.Lock()
	_, existed := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if existed {
		metrics.ActiveSessions.Dec()
	}
}

// Count returns the number of live sessions.
func (m *SessionManager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
