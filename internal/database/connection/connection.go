package db_connection

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	models "github.com/ballotsync/ballotsync/internal/database/models"
)

var modelsToMigrate = []any{
	&models.ElectionDB{},
	&models.CandidateDB{},
}

var GlobalDB *gorm.DB = nil

func InitializeGlobalDB(dbFile string) error {
	if GlobalDB != nil {
		return nil
	}

	var err error
	GlobalDB, err = GetDatabaseConnection(dbFile)

	return err
}

func GetDatabaseConnection(dbFile string) (*gorm.DB, error) {
	if dbFile != ":memory:" {
		dir := filepath.Dir(dbFile)
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			if err := os.MkdirAll(dir, os.ModePerm); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
			log.Printf("Created directory '%s'", dir)
		}
	}

	db, err := gorm.Open(sqlite.Open(dbFile), &gorm.Config{})

	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(modelsToMigrate...)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func ResetDatabase(db *gorm.DB) error {
	err := db.Migrator().DropTable(modelsToMigrate...)

	if err != nil {
		return err
	}

	return db.AutoMigrate(modelsToMigrate...)
}
