package builder

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"kids-burger-backend/internal/pricing"
)

var ErrTooManySessions = errors.New("too many open builds, try again later")

// Registry holds live build sessions keyed by id. Sessions untouched for
// longer than the TTL are dropped by Sweep. A positive limit caps how many
// sessions may be open at once.
type Registry struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	lookup   pricing.Lookup
	ttl      time.Duration
	limit    int
	clock    func() time.Time
}

func NewRegistry(lookup pricing.Lookup, ttl time.Duration) *Registry {
	return &Registry{
		sessions: make(map[uuid.UUID]*Session),
		lookup:   lookup,
		ttl:      ttl,
		clock:    time.Now,
	}
}

// WithLimit caps the number of open sessions. Zero means unlimited.
func (r *Registry) WithLimit(n int) *Registry {
	r.limit = n
	return r
}

// Create opens a new session. When the registry is full, expired sessions
// are swept first; ErrTooManySessions is returned if it is still full.
func (r *Registry) Create(target Rect) (*Session, error) {
	if r.full() {
		r.Sweep()
	}

	s := newSession(uuid.New(), r.lookup, target, r.clock)
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.limit > 0 && len(r.sessions) >= r.limit {
		return nil, ErrTooManySessions
	}
	r.sessions[s.id] = s
	return s, nil
}

func (r *Registry) full() bool {
	if r.limit <= 0 {
		return false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions) >= r.limit
}

func (r *Registry) Get(id string) (*Session, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	r.mu.RLock()
	s, ok := r.sessions[parsed]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return s, nil
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Sweep removes expired sessions and returns how many were removed. A
// session with a submission in flight never expires.
func (r *Registry) Sweep() int {
	if r.ttl <= 0 {
		return 0
	}
	now := r.clock()

	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, s := range r.sessions {
		if s.idleSince(now) > r.ttl {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

// Run sweeps on every tick until ctx is done.
func (r *Registry) Run(ctx context.Context, interval time.Duration, onSweep func(removed int)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(); n > 0 && onSweep != nil {
				onSweep(n)
			}
		}
	}
}
