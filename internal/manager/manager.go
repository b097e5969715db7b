// Package manager keeps record lists in memory and mirrors them to a key-value store.
package manager

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/runoshun/locrec/internal/domain"
)

// Log categories.
const (
	categoryLoad = "load"
	categorySave = "save"
	categoryForm = "form"
)

// FormState describes the create/edit modal for the view.
// Fields are ordered to minimize memory padding.
type FormState[R domain.Record] struct {
	Target  *R   // Record being edited; nil when creating
	Visible bool // Modal is shown
	Editing bool // Submission replaces Target instead of creating
}

// Manager holds one record list stored under a single key.
// Every mutation persists the whole list before the in-memory copy changes.
// Fields are ordered to minimize memory padding.
type Manager[R domain.Record] struct {
	store   domain.KVStore
	logger  domain.Logger
	target  *R
	key     string
	records []R
	mu      sync.RWMutex
	visible bool
	editing bool
}

// New creates a Manager for the list stored under key.
func New[R domain.Record](store domain.KVStore, key string, logger domain.Logger) *Manager[R] {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &Manager[R]{
		store:   store,
		key:     key,
		logger:  logger,
		records: []R{},
	}
}

// Key returns the storage key of the list.
func (m *Manager[R]) Key() string {
	return m.key
}

// Load reads the list from the store.
// A missing or malformed value yields an empty list; only store errors are returned.
func (m *Manager[R]) Load(ctx context.Context) error {
	value, ok, err := m.store.GetItem(ctx, m.key)
	if err != nil {
		return fmt.Errorf("load %s: %w", m.key, err)
	}

	records := []R{}
	if ok {
		var decoded []R
		if err := json.Unmarshal([]byte(value), &decoded); err != nil {
			m.logger.Warn(m.key, categoryLoad, fmt.Sprintf("discarding malformed value: %v", err))
		} else if decoded != nil {
			records = decoded
		}
	}

	m.mu.Lock()
	m.records = records
	m.mu.Unlock()

	m.logger.Debug(m.key, categoryLoad, fmt.Sprintf("loaded %d records", len(records)))
	return nil
}

// Records returns a copy of the list in display order.
func (m *Manager[R]) Records() []R {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.records)
}

// Len returns the number of records.
func (m *Manager[R]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}

// Get returns the record with the given id.
func (m *Manager[R]) Get(id string) (R, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if i := m.indexLocked(id); i >= 0 {
		return m.records[i], nil
	}
	var zero R
	return zero, fmt.Errorf("%w: %s", domain.ErrRecordNotFound, id)
}

// Resolve returns the record whose id equals or uniquely starts with prefix.
func (m *Manager[R]) Resolve(prefix string) (R, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var zero R
	if prefix == "" {
		return zero, fmt.Errorf("%w: empty id", domain.ErrRecordNotFound)
	}
	if i := m.indexLocked(prefix); i >= 0 {
		return m.records[i], nil
	}

	found := -1
	for i, r := range m.records {
		if !strings.HasPrefix(r.RecordID(), prefix) {
			continue
		}
		if found >= 0 {
			return zero, fmt.Errorf("%w: %s", domain.ErrAmbiguousID, prefix)
		}
		found = i
	}
	if found < 0 {
		return zero, fmt.Errorf("%w: %s", domain.ErrRecordNotFound, prefix)
	}
	return m.records[found], nil
}

// OpenCreate shows the modal for a new record.
func (m *Manager[R]) OpenCreate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.visible = true
	m.editing = false
	m.target = nil
}

// OpenEdit shows the modal pre-filled with the record with the given id.
func (m *Manager[R]) OpenEdit(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexLocked(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", domain.ErrRecordNotFound, id)
	}
	target := m.records[i]
	m.visible = true
	m.editing = true
	m.target = &target
	return nil
}

// Close hides the modal and resets the edit target.
func (m *Manager[R]) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closeLocked()
}

// State returns the current modal state.
func (m *Manager[R]) State() FormState[R] {
	m.mu.RLock()
	defer m.mu.RUnlock()

	state := FormState[R]{Visible: m.visible, Editing: m.editing}
	if m.target != nil {
		target := *m.target
		state.Target = &target
	}
	return state
}

// Remove deletes the record with the given id and persists the list.
func (m *Manager[R]) Remove(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexLocked(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", domain.ErrRecordNotFound, id)
	}

	next := slices.Delete(slices.Clone(m.records), i, i+1)
	if err := m.persistLocked(ctx, next); err != nil {
		return err
	}
	m.logger.Info(m.key, categorySave, "removed "+id)
	return nil
}

// submit creates or replaces a record depending on the modal state.
// build receives the record being edited, or nil when creating.
// The modal closes only after the list has been persisted.
func (m *Manager[R]) submit(ctx context.Context, build func(prev *R) (R, error)) (R, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var zero R
	if m.editing && m.target != nil {
		id := (*m.target).RecordID()
		i := m.indexLocked(id)
		if i < 0 {
			return zero, fmt.Errorf("%w: %s", domain.ErrRecordNotFound, id)
		}
		prev := m.records[i]
		rec, err := build(&prev)
		if err != nil {
			return zero, err
		}
		next := slices.Clone(m.records)
		next[i] = rec
		if err := m.persistLocked(ctx, next); err != nil {
			return zero, err
		}
		m.closeLocked()
		m.logger.Info(m.key, categorySave, "updated "+id)
		return rec, nil
	}

	rec, err := build(nil)
	if err != nil {
		return zero, err
	}
	next := make([]R, 0, len(m.records)+1)
	next = append(next, rec)
	next = append(next, m.records...)
	if err := m.persistLocked(ctx, next); err != nil {
		return zero, err
	}
	m.closeLocked()
	m.logger.Info(m.key, categorySave, "created "+rec.RecordID())
	return rec, nil
}

// persistLocked writes next to the store and adopts it on success.
func (m *Manager[R]) persistLocked(ctx context.Context, next []R) error {
	if next == nil {
		next = []R{}
	}
	content, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", m.key, err)
	}
	if err := m.store.SetItem(ctx, m.key, string(content)); err != nil {
		m.logger.Error(m.key, categorySave, fmt.Sprintf("write failed: %v", err))
		return fmt.Errorf("save %s: %w", m.key, err)
	}
	m.records = next
	return nil
}

func (m *Manager[R]) closeLocked() {
	m.visible = false
	m.editing = false
	m.target = nil
}

func (m *Manager[R]) indexLocked(id string) int {
	return slices.IndexFunc(m.records, func(r R) bool { return r.RecordID() == id })
}
