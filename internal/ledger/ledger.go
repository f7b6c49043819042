// Package ledger keeps the per-article up/down vote tally and persists it as a
// single JSON blob in a key-value store.
package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vijay-prabhu/newsfeed/internal/logging"
)

// StorageKey is the blob name the ledger is persisted under.
const StorageKey = "feedback"

// ErrInvalidDirection is returned for a vote that is neither up nor down.
var ErrInvalidDirection = errors.New("direction must be 'up' or 'down'")

// Direction is the sense of a vote.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// ParseDirection validates a user-supplied direction.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case Up, Down:
		return Direction(s), nil
	}
	return "", fmt.Errorf("%w, got %q", ErrInvalidDirection, s)
}

// Entry is the tally for one article. Counters only ever grow.
type Entry struct {
	Up   int `json:"up"`
	Down int `json:"down"`
}

// Net is up minus down.
func (e Entry) Net() int {
	return e.Up - e.Down
}

// Store is the key-value persistence the ledger needs.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Put(ctx context.Context, key, value string) error
}

// Ledger is the in-memory vote tally, written through to Store on every change.
type Ledger struct {
	mu      sync.Mutex
	store   Store
	log     logging.Logger
	entries map[string]Entry
}

// Open hydrates a ledger from store. A missing or unreadable blob yields an empty
// ledger; it never fails.
func Open(ctx context.Context, store Store, log logging.Logger) *Ledger {
	if log == nil {
		log = logging.NewNop()
	}
	l := &Ledger{store: store, log: log, entries: make(map[string]Entry)}

	raw, ok, err := store.Get(ctx, StorageKey)
	if err != nil {
		log.Debug("feedback ledger unreadable, starting empty", logging.Err(err))
		return l
	}
	if !ok {
		return l
	}

	var loaded map[string]Entry
	if err := json.Unmarshal([]byte(raw), &loaded); err != nil {
		log.Debug("feedback ledger corrupt, starting empty", logging.Err(err))
		return l
	}
	for k, e := range loaded {
		if e.Up < 0 || e.Down < 0 {
			continue
		}
		l.entries[k] = e
	}
	return l
}

// Record applies one vote and persists the whole ledger. The updated entry is
// returned even when persisting fails.
func (l *Ledger) Record(ctx context.Context, key string, dir Direction) (Entry, error) {
	if dir != Up && dir != Down {
		return Entry{}, fmt.Errorf("%w, got %q", ErrInvalidDirection, dir)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	e := l.entries[key]
	if dir == Up {
		e.Up++
	} else {
		e.Down++
	}
	l.entries[key] = e

	data, err := json.Marshal(l.entries)
	if err != nil {
		return e, fmt.Errorf("failed to encode feedback: %w", err)
	}
	if err := l.store.Put(ctx, StorageKey, string(data)); err != nil {
		return e, fmt.Errorf("failed to persist feedback: %w", err)
	}
	return e, nil
}

// Entry returns the tally for key.
func (l *Ledger) Entry(key string) (Entry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, ok := l.entries[key]
	return e, ok
}

// Snapshot returns a copy of every entry, safe to read while the ledger changes.
func (l *Ledger) Snapshot() map[string]Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make(map[string]Entry, len(l.entries))
	for k, e := range l.entries {
		out[k] = e
	}
	return out
}

// Len is the number of articles with at least one vote.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Record pairs a key with its tally for listings.
type Record struct {
	Key   string `json:"key"`
	Entry Entry  `json:"entry"`
}

// Records lists all entries ordered by net score, highest first, then by key.
func (l *Ledger) Records() []Record {
	snap := l.Snapshot()
	records := make([]Record, 0, len(snap))
	for k, e := range snap {
		records = append(records, Record{Key: k, Entry: e})
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].Entry.Net() != records[j].Entry.Net() {
			return records[i].Entry.Net() > records[j].Entry.Net()
		}
		return records[i].Key < records[j].Key
	})
	return records
}
