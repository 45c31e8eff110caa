package runs

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

// MemoryStore keeps run records in memory. It is safe for concurrent use.
type MemoryStore struct {
	records map[string]*Record
	seq     map[string]int
	next    int
	mu      sync.RWMutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]*Record),
		seq:     make(map[string]int),
	}
}

func (m *MemoryStore) Save(_ context.Context, record Record) error {
	if record.ID() == "" {
		return fmt.Errorf("save run: empty run id")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}
	record.Path = append([]string(nil), record.Path...)
	if _, exists := m.seq[record.ID()]; !exists {
		m.seq[record.ID()] = m.next
		m.next++
	}
	m.records[record.ID()] = &record
	return nil
}

func (m *MemoryStore) Load(_ context.Context, runID string) (*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, exists := m.records[runID]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, runID)
	}
	cp := *rec
	cp.Path = append([]string(nil), rec.Path...)
	return &cp, nil
}

// List returns every record in the order it was first saved
func (m *MemoryStore) List(_ context.Context) ([]Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Record, 0, len(m.records))
	for _, rec := range m.records {
		cp := *rec
		cp.Path = append([]string(nil), rec.Path...)
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool {
		return m.seq[out[i].ID()] < m.seq[out[j].ID()]
	})
	return out, nil
}

func (m *MemoryStore) Delete(_ context.Context, runID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.records, runID)
	delete(m.seq, runID)
	return nil
}
