package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Reference names for the weak refs an entry's competitor analysis can hold.
const (
	RefCompetitor = "competitor"
	RefItem       = "item"
	RefColor      = "color"
)

// CascadeNullOnDelete records, per reference type, whether deleting the
// referenced row also nulls the reference across every sheet entry. Only
// colors cascade today; deleting a competitor or item leaves dangling
// references behind, which resolve to null on read. The asymmetry is
// long-standing observed behavior, kept until product says otherwise.
var CascadeNullOnDelete = map[string]bool{
	RefCompetitor: false,
	RefItem:       false,
	RefColor:      true,
}

// NullEntryRefs clears the named reference from every entry of every sheet
// that points at the deleted id. Each sheet row is saved on its own; there is
// no transaction spanning rows, so a crash partway leaves later sheets with a
// stale reference. That reference resolves to null on read, so the damage is
// cosmetic, but it is real and deliberate.
func NullEntryRefs(db *gorm.DB, ref string, id uuid.UUID) error {
	var sheets []Sheet
	if err := db.Find(&sheets).Error; err != nil {
		return err
	}
	for i := range sheets {
		changed := false
		for j := range sheets[i].Data {
			ca := &sheets[i].Data[j].CompetitorAnalysis
			var target **uuid.UUID
			switch ref {
			case RefCompetitor:
				target = &ca.Competitor
			case RefItem:
				target = &ca.Item
			case RefColor:
				target = &ca.Color
			default:
				continue
			}
			if *target != nil && **target == id {
				*target = nil
				changed = true
			}
		}
		if !changed {
			continue
		}
		if err := db.Model(&sheets[i]).Update("data", sheets[i].Data).Error; err != nil {
			return err
		}
	}
	return nil
}
