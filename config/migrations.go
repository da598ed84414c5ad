package config

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	"p9e.in/sheets/models"
)

func Migrations(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "20250812_create_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.Sheet{}, &models.Store{},
					&models.Competitor{}, &models.Item{}, &models.Color{})
			},
		},
	})
	return m.Migrate()
}
