// internal/store/memory.go
//
// In-memory implementation of the session Store interface.
// A session is one player's working guess history. Histories are
// deliberately ephemeral: they live for the process lifetime only and are
// lost on restart.
//
// Characteristics:
//   - Stores *Session objects keyed by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Errors are returned for missing session IDs on Get().

package store

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"sync"
	"time"

	"github.com/lettergrid/wordle-helper/internal/solver"
)

// ErrNotFound is returned by Get for unknown session IDs.
var ErrNotFound = errors.New("session not found")

// Session holds one player's growing guess history.
type Session struct {
	ID        string         // random hex identifier
	Owner     string         // user ID or anonymous cookie ID
	Guesses   []solver.Guess // entry order, append-only except RemoveLast
	CreatedAt time.Time
}

// NewSession constructs an empty session for the given owner.
func NewSession(owner string) *Session {
	return &Session{
		ID:        randomID(),
		Owner:     owner,
		Guesses:   []solver.Guess{},
		CreatedAt: time.Now().UTC(),
	}
}

// Add appends a finalized guess to the history.
func (s *Session) Add(g solver.Guess) {
	s.Guesses = append(s.Guesses, g)
}

// RemoveLast drops the most recent guess.
// Reports whether there was a guess to remove.
func (s *Session) RemoveLast() bool {
	if len(s.Guesses) == 0 {
		return false
	}
	s.Guesses = s.Guesses[:len(s.Guesses)-1]
	return true
}

// History returns a copy of the guess list, safe to hand to the filter
// while the session keeps changing.
func (s *Session) History() []solver.Guess {
	out := make([]solver.Guess, len(s.Guesses))
	copy(out, s.Guesses)
	return out
}

// Store defines the persistence interface for helper sessions.
// Implementations may be backed by memory (this package), Redis, SQL, etc.
type Store interface {
	// Save persists or updates a session.
	Save(ctx context.Context, s *Session) error

	// Get retrieves a session by ID.
	// Returns ErrNotFound if the session does not exist.
	Get(ctx context.Context, id string) (*Session, error)
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu       sync.RWMutex // guards sessions map
	sessions map[string]*Session
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]*Session)}
}

// Save adds or updates the session in the map.
func (m *memory) Save(ctx context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return nil
}

// Get looks up a session by ID.
func (m *memory) Get(ctx context.Context, id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, ErrNotFound
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
