package session

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"crave-delivery/internal/catalog"
	"crave-delivery/internal/checkout"
)

var ErrSessionNotFound = errors.New("session not found")

// Manager hands out sessions keyed by opaque ids. Sessions live for the
// process lifetime; there is no persistence.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	store    *catalog.Store
	payments *checkout.Processor
}

func NewManager(store *catalog.Store, payments *checkout.Processor) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		store:    store,
		payments: payments,
	}
}

// Create starts a fresh session on the home screen.
func (m *Manager) Create() *Session {
	s := newSession(uuid.NewString(), m.store, m.payments)

	m.mu.Lock()
	m.sessions[s.ID()] = s
	m.mu.Unlock()
	return s
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}
