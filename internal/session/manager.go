package session

import (
	"context"
	"sync"

	"hrnexus_backend/internal/logger"
	"hrnexus_backend/internal/models"
	"hrnexus_backend/internal/recordstore"
	"hrnexus_backend/internal/repositories"
)

// Manager holds the single active session. The session survives
// restarts through the record store, mirroring how the portal kept the
// signed-in user in browser storage.
type Manager struct {
	mu      sync.RWMutex
	store   recordstore.Store
	users   repositories.UserRepository
	current *models.User
}

// NewManager creates a session manager.
func NewManager(store recordstore.Store, users repositories.UserRepository) *Manager {
	return &Manager{
		store: store,
		users: users,
	}
}

// Restore loads the persisted session and re-validates it against the
// user collection. A session pointing at a user that no longer exists
// is cleared rather than trusted.
func (m *Manager) Restore(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var stored models.User
	if err := m.store.Read(ctx, recordstore.KeySession, &stored); err != nil {
		return err
	}
	if stored.ID == "" {
		return nil
	}

	user, err := m.users.GetByID(ctx, stored.ID)
	if err != nil {
		return err
	}
	if user == nil {
		logger.Warn("persisted session points at unknown user, clearing", "user_id", stored.ID)
		return m.store.Delete(ctx, recordstore.KeySession)
	}

	m.current = user
	logger.Info("session restored", "user_id", user.ID, "role", user.Role)
	return nil
}

// Login makes user the active session and persists it.
func (m *Manager) Login(ctx context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.Write(ctx, recordstore.KeySession, user); err != nil {
		return err
	}

	u := *user
	m.current = &u
	return nil
}

// Logout clears the active session. Logging out with no session is
// not an error.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.Delete(ctx, recordstore.KeySession); err != nil {
		return err
	}

	m.current = nil
	return nil
}

// Current returns a copy of the signed-in user, or nil.
func (m *Manager) Current() *models.User {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.current == nil {
		return nil
	}
	u := *m.current
	return &u
}
