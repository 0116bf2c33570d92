package config

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/urboijano/MassageHaven/models"
)

// ConnectDB opens a Postgres connection and migrates the schema.
func ConnectDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Staff{},
		&models.Booking{},
		&models.Settings{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
