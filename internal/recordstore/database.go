package recordstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Record is one stored collection: the key and its JSON text. The table
// mirrors the key-value contract of the store rather than normalizing
// entities into relational rows.
type Record struct {
	Key       string         `gorm:"primaryKey;size:191"`
	Value     datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
}

func (Record) TableName() string {
	return "records"
}

// DatabaseStore persists collections as keyed rows in postgres or mysql.
type DatabaseStore struct {
	db *gorm.DB
}

// NewDatabaseStore connects using cfg.DSN (dialect picked by the DSN
// scheme) and ensures the records table exists.
func NewDatabaseStore(cfg Config) (*DatabaseStore, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("database store requires a DSN")
	}

	var dialector gorm.Dialector
	if strings.HasPrefix(cfg.DSN, "postgres://") || strings.HasPrefix(cfg.DSN, "postgresql://") {
		dialector = postgres.Open(cfg.DSN)
	} else {
		dialector = mysql.Open(cfg.DSN)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, fmt.Errorf("failed to migrate records table: %w", err)
	}

	return &DatabaseStore{db: db}, nil
}

// Read decodes the row stored under key into out.
func (s *DatabaseStore) Read(ctx context.Context, key string, out interface{}) error {
	var rec Record
	err := s.db.WithContext(ctx).First(&rec, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to read collection %s: %w", key, err)
	}

	if err := json.Unmarshal(rec.Value, out); err != nil {
		return fmt.Errorf("corrupt collection %s: %w", key, err)
	}

	return nil
}

// Write upserts the row for key with the encoded collection.
func (s *DatabaseStore) Write(ctx context.Context, key string, records interface{}) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", key, err)
	}

	rec := Record{Key: key, Value: datatypes.JSON(data)}
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("failed to write collection %s: %w", key, err)
	}

	return nil
}

// Delete removes the row for key.
func (s *DatabaseStore) Delete(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Delete(&Record{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("failed to delete collection %s: %w", key, err)
	}
	return nil
}
