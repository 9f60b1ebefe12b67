package repositories

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/yigit/schedulocity/internal/app/models"
	"github.com/yigit/schedulocity/internal/pkg/apperrors"
)

// SessionRepository persists per-client session state
type SessionRepository interface {
	Get(ctx context.Context, id string) (*models.SessionState, error)
	Save(ctx context.Context, state *models.SessionState) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	Ping(ctx context.Context) error
}

type memorySession struct {
	state     models.SessionState
	expiresAt time.Time
}

// MemorySessionRepository keeps sessions in process memory with a sliding TTL
type MemorySessionRepository struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]memorySession
	now      func() time.Time
}

// NewMemorySessionRepository creates an in-process session store.
// A zero ttl keeps sessions until they are deleted.
func NewMemorySessionRepository(ttl time.Duration) *MemorySessionRepository {
	return &MemorySessionRepository{
		ttl:      ttl,
		sessions: make(map[string]memorySession),
		now:      time.Now,
	}
}

// Get returns the session if it exists and has not expired
func (r *MemorySessionRepository) Get(ctx context.Context, id string) (*models.SessionState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok || r.expired(s) {
		delete(r.sessions, id)
		return nil, fmt.Errorf("%w: %s", apperrors.ErrSessionNotFound, id)
	}
	state := s.state
	return &state, nil
}

// Save stores the session and refreshes its expiry
func (r *MemorySessionRepository) Save(ctx context.Context, state *models.SessionState) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if state == nil || state.ID == "" {
		return fmt.Errorf("%w: session id is required", apperrors.ErrBadRequest)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	entry := memorySession{state: *state}
	if r.ttl > 0 {
		entry.expiresAt = r.now().Add(r.ttl)
	}
	r.sessions[state.ID] = entry
	return nil
}

// Delete removes the session. Deleting a missing session is not an error.
func (r *MemorySessionRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}

// Count returns the number of live sessions, pruning expired ones
func (r *MemorySessionRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, s := range r.sessions {
		if r.expired(s) {
			delete(r.sessions, id)
		}
	}
	return len(r.sessions), nil
}

// Ping always succeeds for the in-process store
func (r *MemorySessionRepository) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (r *MemorySessionRepository) expired(s memorySession) bool {
	return !s.expiresAt.IsZero() && !r.now().Before(s.expiresAt)
}
