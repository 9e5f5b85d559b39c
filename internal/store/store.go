// Package store persists generated takeoffs. The engine never holds a
// store itself; the pipeline and CLI receive one by injection.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/ppiankov/planreader/internal/model"
)

// ErrNotFound is returned when no takeoff has the requested ID
var ErrNotFound = errors.New("takeoff not found")

// Store is a key-value store of takeoffs keyed by ID
type Store interface {
	Save(ctx context.Context, t *model.Takeoff) error
	Get(ctx context.Context, id string) (*model.Takeoff, error)
	List(ctx context.Context) ([]Record, error)
	Delete(ctx context.Context, id string) error
	Close() error
}

// Record is a listing entry
type Record struct {
	ID        string    `json:"id"`
	Filename  string    `json:"filename"`
	CreatedAt time.Time `json:"created_at"`
	LineItems int       `json:"line_items"`
}

func recordOf(t *model.Takeoff) Record {
	return Record{
		ID:        t.ID,
		Filename:  t.Project.Filename,
		CreatedAt: t.CreatedAt,
		LineItems: len(t.Materials),
	}
}

// Open returns a SQLite store at path, or a memory store when path is empty
func Open(path string) (Store, error) {
	if path == "" {
		return NewMemory(), nil
	}
	return OpenSQLite(path)
}

// Memory keeps takeoffs in process memory
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
	recs map[string]Record
}

// NewMemory creates an empty memory store
func NewMemory() *Memory {
	return &Memory{
		data: make(map[string][]byte),
		recs: make(map[string]Record),
	}
}

// Save stores a copy of t, replacing any takeoff with the same ID
func (m *Memory) Save(_ context.Context, t *model.Takeoff) error {
	if t == nil || t.ID == "" {
		return fmt.Errorf("save: takeoff ID is required")
	}
	body, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("marshal takeoff: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[t.ID] = body
	m.recs[t.ID] = recordOf(t)
	return nil
}

// Get returns a copy of the takeoff
func (m *Memory) Get(_ context.Context, id string) (*model.Takeoff, error) {
	m.mu.RLock()
	body, ok := m.data[id]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%s: %w", id, ErrNotFound)
	}

	var t model.Takeoff
	if err := json.Unmarshal(body, &t); err != nil {
		return nil, fmt.Errorf("unmarshal takeoff: %w", err)
	}
	return &t, nil
}

// List returns records newest first
func (m *Memory) List(_ context.Context) ([]Record, error) {
	m.mu.RLock()
	out := make([]Record, 0, len(m.recs))
	for _, r := range m.recs {
		out = append(out, r)
	}
	m.mu.RUnlock()

	sortRecords(out)
	return out, nil
}

// Delete removes a takeoff
func (m *Memory) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.data[id]; !ok {
		return fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	delete(m.data, id)
	delete(m.recs, id)
	return nil
}

// Close is a no-op
func (m *Memory) Close() error { return nil }

func sortRecords(recs []Record) {
	sort.Slice(recs, func(i, j int) bool {
		if !recs[i].CreatedAt.Equal(recs[j].CreatedAt) {
			return recs[i].CreatedAt.After(recs[j].CreatedAt)
		}
		return recs[i].ID < recs[j].ID
	})
}
