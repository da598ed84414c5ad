package models

import "github.com/google/uuid"

// EntryPatch is the field set a caller may supply when appending or updating
// an entry. Plain text fields arrive as empty strings when the caller omitted
// them; Files and Analysis are nil when omitted so merge rules can tell the
// difference.
type EntryPatch struct {
	StoreName       string
	Address         string
	Personnel       string
	Insight         string
	Validation      string
	ValidationNotes string
	Analysis        *AnalysisPatch
	Files           *[]FileRef
}

// AnalysisPatch is the competitor-analysis portion of an EntryPatch.
type AnalysisPatch struct {
	Competitor *uuid.UUID
	Item       *uuid.UUID
	Color      *uuid.UUID
	Name       string
}

// ImageLookup resolves an item id to its current image. A lookup that finds
// nothing returns a zero Image; it never fails the mutation.
type ImageLookup func(itemID uuid.UUID) Image

// NewEntry builds a fresh entry from a patch. When the patch references an
// item, the item's current image is copied in as the snapshot; an item that
// does not resolve leaves the snapshot empty.
func NewEntry(p EntryPatch, lookup ImageLookup) Entry {
	e := Entry{
		StoreName:       p.StoreName,
		Address:         p.Address,
		Personnel:       p.Personnel,
		Insight:         p.Insight,
		Validation:      p.Validation,
		ValidationNotes: p.ValidationNotes,
		Files:           []FileRef{},
	}
	if p.Files != nil {
		e.Files = NormalizeFiles(*p.Files)
	}
	if p.Analysis != nil {
		e.CompetitorAnalysis = CompetitorAnalysis{
			Competitor: p.Analysis.Competitor,
			Item:       p.Analysis.Item,
			Name:       p.Analysis.Name,
			Color:      p.Analysis.Color,
		}
		if p.Analysis.Item != nil && lookup != nil {
			e.CompetitorAnalysis.Image = lookup(*p.Analysis.Item)
		}
	}
	return e
}

// ApplyPatch rewrites an existing entry from a patch.
//
// The field policy is deliberately uneven and matches what callers depend on
// today: address, personnel, insight, validation and validationNotes take the
// supplied value as-is, so omitting one resets it to empty rather than keeping
// the stored text. The analysis references and override name fall back to the
// stored value when the patch leaves them blank, and the file list is replaced
// only when one was supplied.
//
// The image snapshot is refreshed from the item only when the patch names a
// different item than the entry currently holds; resubmitting the same item
// keeps the snapshot taken at assignment time.
func (e *Entry) ApplyPatch(p EntryPatch, lookup ImageLookup) {
	e.StoreName = p.StoreName
	e.Address = p.Address
	e.Personnel = p.Personnel
	e.Insight = p.Insight
	e.Validation = p.Validation
	e.ValidationNotes = p.ValidationNotes

	if p.Analysis != nil {
		prev := e.CompetitorAnalysis
		next := CompetitorAnalysis{
			Competitor: prev.Competitor,
			Item:       prev.Item,
			Image:      prev.Image,
			Name:       prev.Name,
			Color:      prev.Color,
		}
		if p.Analysis.Competitor != nil {
			next.Competitor = p.Analysis.Competitor
		}
		if p.Analysis.Color != nil {
			next.Color = p.Analysis.Color
		}
		if p.Analysis.Name != "" {
			next.Name = p.Analysis.Name
		}
		if p.Analysis.Item != nil {
			next.Item = p.Analysis.Item
			if (prev.Item == nil || *prev.Item != *p.Analysis.Item) && lookup != nil {
				next.Image = lookup(*p.Analysis.Item)
			}
		}
		e.CompetitorAnalysis = next
	}

	if p.Files != nil {
		e.Files = NormalizeFiles(*p.Files)
	}
}
