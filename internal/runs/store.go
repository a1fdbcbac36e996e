package runs

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"

	"github.com/Naveenbadarla/Flex-revenue-simulator/internal/model"
	"github.com/Naveenbadarla/Flex-revenue-simulator/internal/valuation"
)

// DefaultTTL keeps a finished run available for re-export for the length of
// an interactive session without the store growing without bound.
const DefaultTTL = 1 * time.Hour

// Entry pairs a stored result with the input that produced it.
type Entry struct {
	ID        string
	Input     model.SimulationInput
	Result    *valuation.Result
	CreatedAt time.Time

	expiresAt time.Time
}

// Store holds finished runs in memory so the dashboard can re-download the
// CSV of the run it is currently displaying. Entries expire after the TTL;
// nothing survives a restart.
type Store struct {
	mu    sync.RWMutex
	store map[string]*Entry
	ttl   time.Duration
}

// NewStore creates a run store and starts its background sweep.
// A non-positive ttl falls back to DefaultTTL.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	s := &Store{
		store: make(map[string]*Entry),
		ttl:   ttl,
	}
	go s.cleanup()
	return s
}

// Put stores a finished run and returns its id.
func (s *Store) Put(in model.SimulationInput, res *valuation.Result) string {
	id := newRunID()
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.store[id] = &Entry{
		ID:        id,
		Input:     in,
		Result:    res,
		CreatedAt: now,
		expiresAt: now.Add(s.ttl),
	}
	return id
}

// Get returns the stored run, or false when the id is unknown or the entry
// has expired. Expiry is checked here as well, so a stale entry is never
// served between sweeps.
func (s *Store) Get(id string) (*Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, exists := s.store[id]
	if !exists {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return entry, true
}

// Len reports the number of stored entries, including not-yet-swept expired ones.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.store)
}

// Clear removes all entries from the store.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store = make(map[string]*Entry)
}

// cleanup periodically removes expired entries.
func (s *Store) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		s.mu.Lock()
		now := time.Now()
		for id, entry := range s.store {
			if now.After(entry.expiresAt) {
				delete(s.store, id)
			}
		}
		s.mu.Unlock()
	}
}

func newRunID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b[:])
}
