package session

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aretw0/lineviz"
	"github.com/aretw0/lineviz/internal/logging"
	"github.com/aretw0/lineviz/pkg/domain"
)

// Factory builds the workbench of a new session.
type Factory func() *lineviz.Workbench

// Info describes a registered session.
type Info struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	LastUsed  time.Time `json:"last_used"`
}

// lockEntry holds the mutex and the reference count.
type lockEntry struct {
	mu   sync.Mutex
	refs int
}

type record struct {
	wb   *lineviz.Workbench
	info Info
}

// Manager orchestrates session access, ensuring safe concurrent operations.
// It uses Reference Counting to garbage collect unused locks.
type Manager struct {
	factory Factory

	mu       sync.Mutex            // Global lock for both maps
	locks    map[string]*lockEntry // Map of active locks
	sessions map[string]*record

	logger *slog.Logger
	now    func() time.Time
}

// Option configures the Manager.
type Option func(*Manager)

// WithLogger configures a logger for the Manager.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithClock overrides the time source used for session metadata.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// NewManager creates a Session Manager. A nil factory means lineviz.New().
func NewManager(factory Factory, opts ...Option) *Manager {
	if factory == nil {
		factory = func() *lineviz.Workbench { return lineviz.New() }
	}
	m := &Manager{
		factory:  factory,
		locks:    make(map[string]*lockEntry),
		sessions: make(map[string]*record),
		logger:   logging.NewNop(), // Default to no-op
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// acquire gets or creates a lock entry and increments its reference count.
// The caller MUST Lock the entry.mu, and then call release(sessionID) after unlocking.
func (m *Manager) acquire(sessionID string) *lockEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[sessionID]
	if !exists {
		entry = &lockEntry{}
		m.locks[sessionID] = entry
	}
	entry.refs++
	return entry
}

// release decrements the reference count and deletes the entry if it reaches zero.
func (m *Manager) release(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[sessionID]
	if !exists {
		return // Should not happen if paired correctly
	}

	entry.refs--
	if entry.refs <= 0 {
		delete(m.locks, sessionID)
	}
}

// Create registers a new session under a random ID.
func (m *Manager) Create(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	id := uuid.NewString()
	m.register(id)
	m.logger.Info("Session Created", "session_id", id)
	return id, nil
}

// GetOrCreate registers sessionID if it is unknown. It reports whether it was created.
func (m *Manager) GetOrCreate(ctx context.Context, sessionID string) (bool, error) {
	if sessionID == "" {
		return false, fmt.Errorf("%w: empty session id", domain.ErrSessionNotFound)
	}
	created := false
	err := m.WithLock(ctx, sessionID, func(ctx context.Context) error {
		if m.lookup(sessionID) == nil {
			m.register(sessionID)
			created = true
		}
		return nil
	})
	if created {
		m.logger.Info("Session Created", "session_id", sessionID)
	}
	return created, err
}

// WithWorkbench runs fn on the workbench of sessionID while holding its lock.
func (m *Manager) WithWorkbench(ctx context.Context, sessionID string, fn func(context.Context, *lineviz.Workbench) error) error {
	return m.WithLock(ctx, sessionID, func(ctx context.Context) error {
		rec := m.lookup(sessionID)
		if rec == nil {
			return fmt.Errorf("%w: %s", domain.ErrSessionNotFound, sessionID)
		}
		m.touch(rec)
		return fn(ctx, rec.wb)
	})
}

// Execute runs req on the workbench of sessionID.
func (m *Manager) Execute(ctx context.Context, sessionID string, req lineviz.Request) (*lineviz.Response, error) {
	var resp *lineviz.Response
	err := m.WithWorkbench(ctx, sessionID, func(ctx context.Context, wb *lineviz.Workbench) error {
		var err error
		resp, err = wb.Execute(ctx, req)
		return err
	})
	return resp, err
}

// Snapshot returns the full view of sessionID.
func (m *Manager) Snapshot(ctx context.Context, sessionID string) (lineviz.Snapshot, error) {
	var snap lineviz.Snapshot
	err := m.WithWorkbench(ctx, sessionID, func(_ context.Context, wb *lineviz.Workbench) error {
		snap = wb.Snapshot()
		return nil
	})
	return snap, err
}

// Delete removes the session.
func (m *Manager) Delete(ctx context.Context, sessionID string) error {
	return m.WithLock(ctx, sessionID, func(ctx context.Context) error {
		m.mu.Lock()
		defer m.mu.Unlock()
		if _, ok := m.sessions[sessionID]; !ok {
			return fmt.Errorf("%w: %s", domain.ErrSessionNotFound, sessionID)
		}
		delete(m.sessions, sessionID)
		m.logger.Info("Session Deleted", "session_id", sessionID)
		return nil
	})
}

// List returns the registered sessions, oldest first.
func (m *Manager) List(ctx context.Context) ([]Info, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Info, 0, len(m.sessions))
	for _, rec := range m.sessions {
		out = append(out, rec.info)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// WithLock executes a function while holding the lock for the session.
func (m *Manager) WithLock(ctx context.Context, sessionID string, fn func(context.Context) error) error {
	entry := m.acquire(sessionID)
	entry.mu.Lock()
	defer func() {
		entry.mu.Unlock()
		m.release(sessionID)
	}()

	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(ctx)
}

func (m *Manager) register(id string) {
	now := m.now()
	rec := &record{
		wb:   m.factory(),
		info: Info{ID: id, CreatedAt: now, LastUsed: now},
	}
	m.mu.Lock()
	m.sessions[id] = rec
	m.mu.Unlock()
}

func (m *Manager) lookup(id string) *record {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessions[id]
}

func (m *Manager) touch(rec *record) {
	now := m.now()
	m.mu.Lock()
	rec.info.LastUsed = now
	m.mu.Unlock()
}

func (m *Manager) activeLocks() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.locks)
}
