package database

import (
	"github.com/yeremiapane/fundraiser-shop/models"
	"github.com/yeremiapane/fundraiser-shop/utils"
	"gorm.io/gorm"
)

// AutoMigrate creates the kv_records table.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.KVRecord{}); err != nil {
		return err
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
	return nil
}
