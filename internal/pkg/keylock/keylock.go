// Package keylock provides per-key mutual exclusion with idle eviction.
//
// The dispatcher locks on Discord channel IDs. Entries are created on first
// use and removed by Prune once nobody holds or waits on them and they have
// been idle for the configured TTL, so the table does not grow with every
// channel the bot has ever seen.
package keylock

import (
	"context"
	"sync"
	"time"

	"github.com/SogeMoge/xwsbot/internal/errors"
	"github.com/SogeMoge/xwsbot/internal/pkg/clock"
)

// DefaultIdleTTL is how long an unused entry survives before Prune drops it
const DefaultIdleTTL = 30 * time.Minute

// Config configures a Table
type Config struct {
	// IdleTTL for unused entries (optional, defaults to DefaultIdleTTL)
	IdleTTL time.Duration
	// Clock (optional, defaults to the real clock)
	Clock clock.Clock
}

type entry struct {
	// sem has capacity 1: a successful send means the lock is held
	sem      chan struct{}
	refs     int
	lastUsed time.Time
}

// Table is a set of keyed locks
type Table struct {
	mu      sync.Mutex
	entries map[string]*entry
	idleTTL time.Duration
	clock   clock.Clock
}

// New creates a lock table
func New(cfg *Config) *Table {
	if cfg == nil {
		cfg = &Config{}
	}
	t := &Table{
		entries: make(map[string]*entry),
		idleTTL: cfg.IdleTTL,
		clock:   cfg.Clock,
	}
	if t.idleTTL <= 0 {
		t.idleTTL = DefaultIdleTTL
	}
	if t.clock == nil {
		t.clock = clock.New()
	}
	return t
}

// Lock blocks until the lock for key is held or ctx is done. The returned
// unlock function is safe to call more than once.
func (t *Table) Lock(ctx context.Context, key string) (func(), error) {
	t.mu.Lock()
	e, ok := t.entries[key]
	if !ok {
		e = &entry{sem: make(chan struct{}, 1)}
		t.entries[key] = e
	}
	e.refs++
	t.mu.Unlock()

	select {
	case e.sem <- struct{}{}:
	case <-ctx.Done():
		t.release(e)
		return nil, errors.WrapWithCodef(ctx.Err(), errors.CodeCanceled, "gave up waiting for lock %s", key)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-e.sem
			t.release(e)
		})
	}, nil
}

func (t *Table) release(e *entry) {
	t.mu.Lock()
	e.refs--
	e.lastUsed = t.clock.Now()
	t.mu.Unlock()
}

// Prune drops entries that are unused and idle for at least the TTL and
// returns how many were removed.
func (t *Table) Prune() int {
	now := t.clock.Now()

	t.mu.Lock()
	defer t.mu.Unlock()

	removed := 0
	for key, e := range t.entries {
		if e.refs == 0 && now.Sub(e.lastUsed) >= t.idleTTL {
			delete(t.entries, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked keys
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

// RunJanitor calls Prune every interval until ctx is done
func (t *Table) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.Prune()
		}
	}
}
