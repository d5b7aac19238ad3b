package models

import (
	"time"
)

// KVRecord is one persisted key of the storefront state (orders, cart, cartId, ...).
// The value is the JSON document for that key.
type KVRecord struct {
	Key       string    `gorm:"column:record_key;type:varchar(64);primaryKey"`
	Value     string    `gorm:"type:longtext;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (KVRecord) TableName() string {
	return "kv_records"
}
