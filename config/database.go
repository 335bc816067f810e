package config

import (
	"fmt"

	"github.com/bnbcollege/feeportal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB opens the database file and runs the startup migration.
// Migration is a one-time, idempotent step: tables are created if absent
// and existing data is left untouched.
func InitDB() {
	config, err := LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	dbPath := config.DBPath
	if dbPath == "" {
		dbPath = "database.db"
	}

	dsn := dbPath + "?_journal_mode=WAL&_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to database: %v", err))
	}

	DB = db

	if err := MigrateDB(DB); err != nil {
		panic(fmt.Sprintf("Failed to migrate database: %v", err))
	}
}

// MigrateDB runs the schema migration on the given connection
func MigrateDB(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Student{},
		&models.Department{},
		&models.Payment{},
	)
}
