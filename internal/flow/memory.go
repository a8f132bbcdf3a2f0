// Package flow stores short-lived signup and password reset state.
package flow

import (
	"context"
	"sync"
	"time"

	"github.com/dtroode/aethercure-server/internal/model"
)

var _ model.FlowStore = (*Memory)(nil)

type entry struct {
	record   model.FlowRecord
	deadline time.Time
	timer    *time.Timer
	gen      uint64
}

// Memory is a process-local FlowStore. State does not survive a restart.
type Memory struct {
	mu      sync.Mutex
	entries map[string]*entry
	gen     uint64
	now     func() time.Time
}

// NewMemory creates an empty in-memory store. A nil now defaults to time.Now.
func NewMemory(now func() time.Time) *Memory {
	if now == nil {
		now = time.Now
	}
	return &Memory{
		entries: make(map[string]*entry),
		now:     now,
	}
}

// Put stores record under record.ID, replacing any previous entry, and
// schedules its removal after ttl.
func (m *Memory) Put(_ context.Context, record model.FlowRecord, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = model.FlowTTL
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if old, ok := m.entries[record.ID]; ok {
		old.timer.Stop()
	}

	m.gen++
	gen := m.gen
	id := record.ID
	m.entries[id] = &entry{
		record:   record,
		deadline: m.now().Add(ttl),
		gen:      gen,
		timer:    time.AfterFunc(ttl, func() { m.expire(id, gen) }),
	}
	return nil
}

// Get returns the live record for id without removing it.
func (m *Memory) Get(_ context.Context, id string) (model.FlowRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.live(id)
	if !ok {
		return model.FlowRecord{}, model.ErrNotFound
	}
	return e.record, nil
}

// Consume removes and returns the live record for id. Exactly one of any
// number of concurrent callers succeeds.
func (m *Memory) Consume(_ context.Context, id string) (model.FlowRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.live(id)
	if !ok {
		return model.FlowRecord{}, model.ErrNotFound
	}
	e.timer.Stop()
	delete(m.entries, id)
	return e.record, nil
}

// Delete removes id if present.
func (m *Memory) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if e, ok := m.entries[id]; ok {
		e.timer.Stop()
		delete(m.entries, id)
	}
	return nil
}

// Len returns the number of stored entries, including ones past their
// deadline whose timer has not fired yet.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// Close stops all pending expiry timers and drops every entry.
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, e := range m.entries {
		e.timer.Stop()
		delete(m.entries, id)
	}
	return nil
}

// live must be called with mu held. Entries past their deadline are dropped.
func (m *Memory) live(id string) (*entry, bool) {
	e, ok := m.entries[id]
	if !ok {
		return nil, false
	}
	if !m.now().Before(e.deadline) {
		e.timer.Stop()
		delete(m.entries, id)
		return nil, false
	}
	return e, true
}

func (m *Memory) expire(id string, gen uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if e, ok := m.entries[id]; ok && e.gen == gen {
		delete(m.entries, id)
	}
}
