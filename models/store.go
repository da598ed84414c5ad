package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// staffPlaceholder is the throwaway name the intake form inserts for unnamed
// personnel; it is filtered out before a store is saved.
const staffPlaceholder = "Staff"

// Store is a standalone directory record of a retail location. Nothing on a
// sheet references stores yet; entries carry their store name as free text.
type Store struct {
	ID        uuid.UUID                    `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	StoreName string                       `gorm:"not null" json:"storeName"`
	Address1  string                       `gorm:"not null" json:"address1"`
	Address2  string                       `json:"address2"`
	Personnel datatypes.JSONSlice[string]  `gorm:"type:jsonb;not null" json:"personnel"`
	Contacts  datatypes.JSONSlice[Contact] `gorm:"type:jsonb;not null" json:"contacts"`
	Building  string                       `json:"building"`
	City      string                       `json:"city"`
	State     string                       `json:"state"`
	Zip       string                       `json:"zip"`
	Country   string                       `json:"country"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (s *Store) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.Personnel == nil {
		s.Personnel = datatypes.JSONSlice[string]{}
	}
	if s.Contacts == nil {
		s.Contacts = datatypes.JSONSlice[Contact]{}
	}
	return nil
}

// FilterPersonnel drops empty names and the "Staff" placeholder, keeping
// everything else in order.
func FilterPersonnel(personnel []string) []string {
	out := make([]string, 0, len(personnel))
	for _, p := range personnel {
		if p == "" || p == staffPlaceholder {
			continue
		}
		out = append(out, p)
	}
	return out
}
