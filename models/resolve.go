package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Resolved view types: what the API returns for sheets and entries, with the
// weak references expanded into display data. A reference that is nil or no
// longer resolves comes back as JSON null, never as an error.

type SheetView struct {
	ID    uuid.UUID   `json:"id"`
	Name  string      `json:"name"`
	Date  time.Time   `json:"date"`
	Hours string      `json:"hours"`
	Data  []EntryView `json:"data"`
}

type EntryView struct {
	ID                 uuid.UUID    `json:"id"`
	Order              int          `json:"order"`
	StoreName          string       `json:"storeName"`
	Address            string       `json:"address"`
	Personnel          string       `json:"personnel"`
	Insight            string       `json:"insight"`
	CompetitorAnalysis AnalysisView `json:"competitorAnalysis"`
	Validation         string       `json:"validation"`
	Files              []FileRef    `json:"files"`
	ValidationNotes    string       `json:"validationNotes"`
}

type AnalysisView struct {
	Competitor *CompetitorRef `json:"competitor"`
	Item       *ItemRef       `json:"item"`
	Image      Image          `json:"image"`
	Name       string         `json:"name"`
	Color      *ColorRef      `json:"color"`
}

type CompetitorRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type ItemRef struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Image Image     `json:"image"`
}

type ColorRef struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	HexCode string    `json:"hexCode"`
}

// refSet collects the reference rows a batch of sheets points at, fetched
// with one query per entity type.
type refSet struct {
	competitors map[uuid.UUID]Competitor
	items       map[uuid.UUID]Item
	colors      map[uuid.UUID]Color
}

// Resolver expands entry references against the reference tables.
type Resolver struct {
	db *gorm.DB
}

func NewResolver(db *gorm.DB) *Resolver {
	return &Resolver{db: db}
}

// ResolveSheets returns display views for the given sheets, batch-loading
// every referenced competitor, item and color once.
func (r *Resolver) ResolveSheets(sheets []Sheet) ([]SheetView, error) {
	refs, err := r.load(sheets)
	if err != nil {
		return nil, err
	}
	views := make([]SheetView, len(sheets))
	for i := range sheets {
		views[i] = assembleSheet(&sheets[i], refs)
	}
	return views, nil
}

// ResolveEntry returns the display view of one entry of a sheet.
func (r *Resolver) ResolveEntry(s *Sheet, entryID uuid.UUID) (*EntryView, error) {
	refs, err := r.load([]Sheet{*s})
	if err != nil {
		return nil, err
	}
	e := s.FindEntry(entryID)
	if e == nil {
		return nil, gorm.ErrRecordNotFound
	}
	view := assembleEntry(*e, refs)
	return &view, nil
}

func (r *Resolver) load(sheets []Sheet) (refSet, error) {
	var compIDs, itemIDs, colorIDs []uuid.UUID
	for i := range sheets {
		for _, e := range sheets[i].Data {
			if e.CompetitorAnalysis.Competitor != nil {
				compIDs = append(compIDs, *e.CompetitorAnalysis.Competitor)
			}
			if e.CompetitorAnalysis.Item != nil {
				itemIDs = append(itemIDs, *e.CompetitorAnalysis.Item)
			}
			if e.CompetitorAnalysis.Color != nil {
				colorIDs = append(colorIDs, *e.CompetitorAnalysis.Color)
			}
		}
	}

	refs := refSet{
		competitors: map[uuid.UUID]Competitor{},
		items:       map[uuid.UUID]Item{},
		colors:      map[uuid.UUID]Color{},
	}
	if len(compIDs) > 0 {
		var rows []Competitor
		if err := r.db.Where("id IN ?", compIDs).Find(&rows).Error; err != nil {
			return refs, err
		}
		for _, row := range rows {
			refs.competitors[row.ID] = row
		}
	}
	if len(itemIDs) > 0 {
		var rows []Item
		if err := r.db.Where("id IN ?", itemIDs).Find(&rows).Error; err != nil {
			return refs, err
		}
		for _, row := range rows {
			refs.items[row.ID] = row
		}
	}
	if len(colorIDs) > 0 {
		var rows []Color
		if err := r.db.Where("id IN ?", colorIDs).Find(&rows).Error; err != nil {
			return refs, err
		}
		for _, row := range rows {
			refs.colors[row.ID] = row
		}
	}
	return refs, nil
}

func assembleSheet(s *Sheet, refs refSet) SheetView {
	view := SheetView{
		ID:    s.ID,
		Name:  s.Name,
		Date:  s.Date,
		Hours: s.Hours,
		Data:  make([]EntryView, len(s.Data)),
	}
	for i, e := range s.Data {
		view.Data[i] = assembleEntry(e, refs)
	}
	return view
}

func assembleEntry(e Entry, refs refSet) EntryView {
	view := EntryView{
		ID:              e.ID,
		Order:           e.Order,
		StoreName:       e.StoreName,
		Address:         e.Address,
		Personnel:       e.Personnel,
		Insight:         e.Insight,
		Validation:      e.Validation,
		Files:           NormalizeFiles(e.Files),
		ValidationNotes: e.ValidationNotes,
		CompetitorAnalysis: AnalysisView{
			Image: e.CompetitorAnalysis.Image,
			Name:  e.CompetitorAnalysis.Name,
		},
	}
	if id := e.CompetitorAnalysis.Competitor; id != nil {
		if c, ok := refs.competitors[*id]; ok {
			view.CompetitorAnalysis.Competitor = &CompetitorRef{ID: c.ID, Name: c.Name}
		}
	}
	if id := e.CompetitorAnalysis.Item; id != nil {
		if it, ok := refs.items[*id]; ok {
			view.CompetitorAnalysis.Item = &ItemRef{ID: it.ID, Name: it.Name, Image: it.Image.Data()}
		}
	}
	if id := e.CompetitorAnalysis.Color; id != nil {
		if c, ok := refs.colors[*id]; ok {
			view.CompetitorAnalysis.Color = &ColorRef{ID: c.ID, Name: c.Name, HexCode: c.HexCode}
		}
	}
	return view
}
