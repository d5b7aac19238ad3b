package database

import (
	"errors"
	"fmt"
	"time"

	"github.com/yeremiapane/fundraiser-shop/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore persists each key as one row of kv_records.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) Get(key string) ([]byte, bool, error) {
	var rec models.KVRecord
	err := s.DB.Where("record_key = ?", key).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load %s: %w", key, err)
	}
	return []byte(rec.Value), true, nil
}

// Set upserts the row.
func (s *GormStore) Set(key string, value []byte) error {
	rec := models.KVRecord{
		Key:       key,
		Value:     string(value),
		UpdatedAt: time.Now(),
	}
	if err := s.DB.Clauses(clause.OnConflict{UpdateAll: true}).Create(&rec).Error; err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
