package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Item is a catalog product. Its image lives in blob storage; entries that
// pick the item copy the image pair as a snapshot at that moment.
type Item struct {
	ID          uuid.UUID                 `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string                    `gorm:"not null" json:"name"`
	Description string                    `json:"description"`
	Category    string                    `json:"category"`
	Price       float64                   `gorm:"not null" json:"price"`
	Stock       int                       `json:"stock"`
	Image       datatypes.JSONType[Image] `gorm:"type:jsonb" json:"image"`
}

func (i *Item) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
