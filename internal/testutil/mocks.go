// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/runoshun/locrec/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// Advance moves the clock forward by d.
func (m *MockClock) Advance(d time.Duration) {
	m.NowTime = m.NowTime.Add(d)
}

// MockKVStore is an in-memory test double for domain.KVStore.
// Fields are ordered to minimize memory padding.
type MockKVStore struct {
	Items     map[string]string
	GetErr    error
	SetErr    error
	RemoveErr error
	SetCalls  int
	mu        sync.Mutex
}

// NewMockKVStore creates a new MockKVStore with an initialized map.
func NewMockKVStore() *MockKVStore {
	return &MockKVStore{Items: make(map[string]string)}
}

// Ensure MockKVStore implements domain.KVStore interface.
var _ domain.KVStore = (*MockKVStore)(nil)

// GetItem returns the stored value or the configured error.
func (m *MockKVStore) GetItem(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetErr != nil {
		return "", false, m.GetErr
	}
	v, ok := m.Items[key]
	return v, ok, nil
}

// SetItem stores the value unless an error is configured.
func (m *MockKVStore) SetItem(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SetCalls++
	if m.SetErr != nil {
		return m.SetErr
	}
	m.Items[key] = value
	return nil
}

// RemoveItem deletes the key unless an error is configured.
func (m *MockKVStore) RemoveItem(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.RemoveErr != nil {
		return m.RemoveErr
	}
	delete(m.Items, key)
	return nil
}

// Value returns the stored value for key ("" if absent).
func (m *MockKVStore) Value(key string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Items[key]
}

// SequentialIDs is a deterministic domain.IDGenerator.
type SequentialIDs struct {
	Prefix string
	n      int
}

// Ensure SequentialIDs implements domain.IDGenerator interface.
var _ domain.IDGenerator = (*SequentialIDs)(nil)

// NewID returns Prefix followed by a running number starting at 1.
func (s *SequentialIDs) NewID() string {
	s.n++
	prefix := s.Prefix
	if prefix == "" {
		prefix = "id-"
	}
	return fmt.Sprintf("%s%d", prefix, s.n)
}

// LogEntry is one entry captured by RecordingLogger.
type LogEntry struct {
	Level    string
	List     string
	Category string
	Msg      string
}

// RecordingLogger is a domain.Logger that keeps every entry in memory.
type RecordingLogger struct {
	Entries []LogEntry
	mu      sync.Mutex
}

// Ensure RecordingLogger implements domain.Logger interface.
var _ domain.Logger = (*RecordingLogger)(nil)

func (l *RecordingLogger) Debug(list, category, msg string) { l.add("DEBUG", list, category, msg) }
func (l *RecordingLogger) Info(list, category, msg string)  { l.add("INFO", list, category, msg) }
func (l *RecordingLogger) Warn(list, category, msg string)  { l.add("WARN", list, category, msg) }
func (l *RecordingLogger) Error(list, category, msg string) { l.add("ERROR", list, category, msg) }

// ByLevel returns the entries logged at level.
func (l *RecordingLogger) ByLevel(level string) []LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []LogEntry
	for _, e := range l.Entries {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}

func (l *RecordingLogger) add(level, list, category, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Entries = append(l.Entries, LogEntry{Level: level, List: list, Category: category, Msg: msg})
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config  *domain.Config
	LoadErr error
}

// NewMockConfigLoader creates a new MockConfigLoader with default config.
func NewMockConfigLoader() *MockConfigLoader {
	return &MockConfigLoader{
		Config: domain.NewDefaultConfig(),
	}
}

// Ensure MockConfigLoader implements domain.ConfigLoader interface.
var _ domain.ConfigLoader = (*MockConfigLoader)(nil)

// Load returns the configured config or error.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Config, nil
}

// MockConfigManager is a test double for domain.ConfigManager.
// Fields are ordered to minimize memory padding.
type MockConfigManager struct {
	InitErr          error
	InitConfig       *domain.Config
	DataConfigInfo   domain.ConfigInfo
	GlobalConfigInfo domain.ConfigInfo
	InitCalled       bool
}

// NewMockConfigManager creates a new MockConfigManager.
func NewMockConfigManager() *MockConfigManager {
	return &MockConfigManager{
		DataConfigInfo: domain.ConfigInfo{
			Path:   "/test/data/locrec/config.toml",
			Exists: false,
		},
		GlobalConfigInfo: domain.ConfigInfo{
			Path:   "/home/test/.config/locrec/config.toml",
			Exists: false,
		},
	}
}

// Ensure MockConfigManager implements domain.ConfigManager interface.
var _ domain.ConfigManager = (*MockConfigManager)(nil)

// GetDataConfigInfo returns the configured data dir config info.
func (m *MockConfigManager) GetDataConfigInfo() domain.ConfigInfo {
	return m.DataConfigInfo
}

// GetGlobalConfigInfo returns the configured global config info.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo {
	return m.GlobalConfigInfo
}

// InitDataConfig records the call and returns the path or configured error.
func (m *MockConfigManager) InitDataConfig(cfg *domain.Config) (string, error) {
	m.InitCalled = true
	m.InitConfig = cfg
	if m.InitErr != nil {
		return "", m.InitErr
	}
	return m.DataConfigInfo.Path, nil
}

// MockHistoryStore is a MockKVStore that also reports revisions.
// Fields are ordered to minimize memory padding.
type MockHistoryStore struct {
	*MockKVStore
	HistoryErr error
	Revisions  map[string][]domain.Revision // Revisions per key, newest first
	Values     map[string]string            // Revision id -> value
}

// NewMockHistoryStore creates a new MockHistoryStore.
func NewMockHistoryStore() *MockHistoryStore {
	return &MockHistoryStore{
		MockKVStore: NewMockKVStore(),
		Revisions:   make(map[string][]domain.Revision),
		Values:      make(map[string]string),
	}
}

// Ensure MockHistoryStore implements domain.HistoryStore interface.
var _ domain.HistoryStore = (*MockHistoryStore)(nil)

// History returns the configured revisions of key.
func (m *MockHistoryStore) History(_ context.Context, key string, limit int) ([]domain.Revision, error) {
	if m.HistoryErr != nil {
		return nil, m.HistoryErr
	}
	revs := m.Revisions[key]
	if limit > 0 && len(revs) > limit {
		revs = revs[:limit]
	}
	return revs, nil
}

// Revision returns the configured value of a revision.
func (m *MockHistoryStore) Revision(_ context.Context, id string) (string, error) {
	if m.HistoryErr != nil {
		return "", m.HistoryErr
	}
	v, ok := m.Values[id]
	if !ok {
		return "", domain.ErrRecordNotFound
	}
	return v, nil
}
