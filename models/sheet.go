package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DefaultHours is the opening-hours text a sheet gets when none is supplied.
const DefaultHours = "9:00 AM - 7:00 PM"

// Sheet is a named sales-summary report. The store-visit entries live inside
// the sheet row as a JSONB array, so every entry mutation rewrites the whole
// aggregate in one statement.
type Sheet struct {
	ID    uuid.UUID                  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name  string                     `gorm:"not null" json:"name"`
	Date  time.Time                  `gorm:"not null" json:"date"`
	Hours string                     `gorm:"not null" json:"hours"`
	Data  datatypes.JSONSlice[Entry] `gorm:"type:jsonb;not null" json:"data"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Entry is one store visit recorded on a sheet. Entries only exist embedded
// in a sheet's Data column and carry a 1-based Order matching their position.
type Entry struct {
	ID                 uuid.UUID          `json:"id"`
	Order              int                `json:"order"`
	StoreName          string             `json:"storeName"`
	Address            string             `json:"address"`
	Personnel          string             `json:"personnel"`
	Insight            string             `json:"insight"`
	CompetitorAnalysis CompetitorAnalysis `json:"competitorAnalysis"`
	Validation         string             `json:"validation"`
	Files              []FileRef          `json:"files"`
	ValidationNotes    string             `json:"validationNotes"`
}

// CompetitorAnalysis holds the entry's weak references to the dropdown
// entities plus an image snapshot copied from the item when it was picked.
// The snapshot is not kept in sync with the item afterwards.
type CompetitorAnalysis struct {
	Competitor *uuid.UUID `json:"competitor"`
	Item       *uuid.UUID `json:"item"`
	Image      Image      `json:"image"`
	Name       string     `json:"name"`
	Color      *uuid.UUID `json:"color"`
}

// Image is a stored blob reference: the public URL plus the identifier the
// blob store knows the object by.
type Image struct {
	URL       string `json:"url"`
	StorageID string `json:"storage_id"`
}

// FileRef describes one file attached to an entry.
type FileRef struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Size int64  `json:"size"`
	Type string `json:"type"`
}

func (s *Sheet) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.Date.IsZero() {
		s.Date = time.Now()
	}
	if s.Hours == "" {
		s.Hours = DefaultHours
	}
	if s.Data == nil {
		s.Data = datatypes.JSONSlice[Entry]{}
	}
	return nil
}

// FindEntry returns a pointer into the sheet's entry slice, or nil when the
// id is not present. The pointer is invalidated by AppendEntry/RemoveEntry.
func (s *Sheet) FindEntry(id uuid.UUID) *Entry {
	for i := range s.Data {
		if s.Data[i].ID == id {
			return &s.Data[i]
		}
	}
	return nil
}

// AppendEntry assigns the entry an id if it has none, numbers it after the
// current last entry and appends it. Returns the entry as stored.
func (s *Sheet) AppendEntry(e Entry) Entry {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	e.Order = len(s.Data) + 1
	e.Files = NormalizeFiles(e.Files)
	s.Data = append(s.Data, e)
	return e
}

// RemoveEntry deletes the entry with the given id and renumbers the rest.
// Returns false when no entry has that id.
func (s *Sheet) RemoveEntry(id uuid.UUID) bool {
	for i := range s.Data {
		if s.Data[i].ID == id {
			s.Data = append(s.Data[:i], s.Data[i+1:]...)
			s.Renumber()
			return true
		}
	}
	return false
}

// Renumber restores the order invariant: every entry's Order becomes its
// 1-based position in Data.
func (s *Sheet) Renumber() {
	for i := range s.Data {
		s.Data[i].Order = i + 1
	}
}

// NormalizeFiles copies the attached-file list, turning a nil list into an
// empty one so the column always stores a JSON array. Absent descriptor
// fields already decode to their zero values.
func NormalizeFiles(files []FileRef) []FileRef {
	out := make([]FileRef, len(files))
	copy(out, files)
	return out
}
