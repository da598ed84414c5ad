package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Contact is one named contact person, used by both competitors and stores.
type Contact struct {
	PersonName string `json:"personName"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Website    string `json:"website,omitempty"`
}

// Competitor is a directory record referenced by sheet entries. Deleting a
// competitor does not touch entries that point at it; stale references
// resolve to null on read (see CascadeNullOnDelete).
type Competitor struct {
	ID       uuid.UUID                    `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name     string                       `gorm:"not null" json:"name"`
	Address  string                       `gorm:"not null" json:"address"`
	Contacts datatypes.JSONSlice[Contact] `gorm:"type:jsonb;not null" json:"contacts"`
	Website  string                       `json:"website"`
	Notes    string                       `json:"notes"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (c *Competitor) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.Contacts == nil {
		c.Contacts = datatypes.JSONSlice[Contact]{}
	}
	return nil
}
