// Package sqlstore provides a SQLite implementation of domain.KVStore backed by GORM.
package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/runoshun/locrec/internal/domain"
)

// entry is one row of the kv_entries table.
type entry struct {
	UpdatedAt time.Time
	Key       string `gorm:"primaryKey;size:255"`
	Value     string `gorm:"type:text;not null"`
}

// TableName pins the table name.
func (entry) TableName() string {
	return "kv_entries"
}

// Store implements domain.KVStore using a SQLite table.
type Store struct {
	db    *gorm.DB
	clock domain.Clock
}

// Ensure Store implements domain.KVStore.
var _ domain.KVStore = (*Store)(nil)

// Open opens (or creates) the SQLite database at path and migrates the schema.
func Open(path string, clock domain.Clock) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// PRAGMAs
	db.Exec("PRAGMA journal_mode=WAL;")
	db.Exec("PRAGMA synchronous=NORMAL;")
	db.Exec("PRAGMA busy_timeout=5000;")

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetConnMaxIdleTime(5 * time.Minute)
	}

	return NewWithDB(db, clock)
}

// NewWithDB wraps an existing connection and migrates the schema.
func NewWithDB(db *gorm.DB, clock domain.Clock) (*Store, error) {
	if clock == nil {
		clock = domain.RealClock{}
	}
	if err := db.AutoMigrate(&entry{}); err != nil {
		return nil, fmt.Errorf("migrate kv_entries: %w", err)
	}
	return &Store{db: db, clock: clock}, nil
}

// GetItem returns the value stored under key.
func (s *Store) GetItem(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, domain.ErrEmptyStorageKey
	}
	var e entry
	err := s.db.WithContext(ctx).Where(map[string]any{"key": key}).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %s: %w", key, err)
	}
	return e.Value, true, nil
}

// SetItem overwrites the value stored under key.
func (s *Store) SetItem(ctx context.Context, key, value string) error {
	if key == "" {
		return domain.ErrEmptyStorageKey
	}
	e := entry{Key: key, Value: value, UpdatedAt: s.clock.Now().UTC()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&e).Error
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// RemoveItem deletes key.
func (s *Store) RemoveItem(ctx context.Context, key string) error {
	if key == "" {
		return domain.ErrEmptyStorageKey
	}
	if err := s.db.WithContext(ctx).Where(map[string]any{"key": key}).Delete(&entry{}).Error; err != nil {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}

// Close closes the underlying connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
