package models

import (
	"regexp"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// hexCodeRe accepts #RGB and #RRGGBB, case-insensitive.
var hexCodeRe = regexp.MustCompile(`^#([0-9A-Fa-f]{3}){1,2}$`)

// Color is a named swatch entries can reference. Unlike competitors and
// items, deleting a color nulls the reference in every entry that used it.
type Color struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string    `gorm:"not null;uniqueIndex" json:"name"`
	HexCode   string    `gorm:"not null" json:"hexCode"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (c *Color) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// ValidHexCode reports whether s is a #RGB or #RRGGBB color code.
func ValidHexCode(s string) bool {
	return hexCodeRe.MatchString(s)
}
