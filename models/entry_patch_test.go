package models

import (
	"testing"

	"github.com/google/uuid"
)

func lookupFor(known uuid.UUID, image Image) ImageLookup {
	return func(id uuid.UUID) Image {
		if id == known {
			return image
		}
		return Image{}
	}
}

func TestNewEntrySnapshotsItemImage(t *testing.T) {
	itemID := uuid.New()
	image := Image{URL: "https://cdn/item.png", StorageID: "items/abc"}

	e := NewEntry(EntryPatch{
		StoreName: "Acme",
		Analysis:  &AnalysisPatch{Item: &itemID},
	}, lookupFor(itemID, image))

	if e.CompetitorAnalysis.Image != image {
		t.Fatalf("expected item image snapshot %v, got %v", image, e.CompetitorAnalysis.Image)
	}
	if e.CompetitorAnalysis.Item == nil || *e.CompetitorAnalysis.Item != itemID {
		t.Fatal("item reference must be stored")
	}
}

func TestNewEntryDanglingItemLeavesSnapshotEmpty(t *testing.T) {
	missing := uuid.New()
	e := NewEntry(EntryPatch{
		StoreName: "Acme",
		Analysis:  &AnalysisPatch{Item: &missing},
	}, lookupFor(uuid.New(), Image{URL: "x"}))

	if e.CompetitorAnalysis.Image != (Image{}) {
		t.Fatalf("unresolvable item must leave an empty snapshot, got %v", e.CompetitorAnalysis.Image)
	}
	if e.CompetitorAnalysis.Item == nil || *e.CompetitorAnalysis.Item != missing {
		t.Fatal("the dangling reference itself is kept")
	}
}

func TestNewEntryDefaults(t *testing.T) {
	e := NewEntry(EntryPatch{StoreName: "Acme"}, nil)
	if e.Address != "" || e.Personnel != "" || e.Insight != "" ||
		e.Validation != "" || e.ValidationNotes != "" {
		t.Fatalf("omitted text fields must default to empty, got %+v", e)
	}
	if e.Files == nil || len(e.Files) != 0 {
		t.Fatalf("omitted files must default to an empty list, got %v", e.Files)
	}
	if e.CompetitorAnalysis.Competitor != nil || e.CompetitorAnalysis.Item != nil ||
		e.CompetitorAnalysis.Color != nil {
		t.Fatal("omitted analysis must leave references nil")
	}
}

func TestApplyPatchResetsOmittedTextFields(t *testing.T) {
	e := Entry{
		StoreName:       "Acme",
		Address:         "1 Main St",
		Personnel:       "Pat",
		Insight:         "busy",
		Validation:      "checked",
		ValidationNotes: "notes",
	}

	// Only storeName supplied; the other text fields reset to empty rather
	// than keeping their stored values.
	e.ApplyPatch(EntryPatch{StoreName: "Acme"}, nil)

	if e.Address != "" || e.Personnel != "" || e.Insight != "" ||
		e.Validation != "" || e.ValidationNotes != "" {
		t.Fatalf("omitted text fields must reset to empty, got %+v", e)
	}
	if e.StoreName != "Acme" {
		t.Fatalf("store name must be kept, got %q", e.StoreName)
	}
}

func TestApplyPatchPreservesAnalysisWhenOmitted(t *testing.T) {
	compID := uuid.New()
	e := Entry{
		StoreName: "Acme",
		CompetitorAnalysis: CompetitorAnalysis{
			Competitor: &compID,
			Image:      Image{URL: "snap"},
			Name:       "override",
		},
	}

	e.ApplyPatch(EntryPatch{StoreName: "Acme"}, nil)

	if e.CompetitorAnalysis.Competitor == nil || *e.CompetitorAnalysis.Competitor != compID {
		t.Fatal("analysis must survive a patch without one")
	}
	if e.CompetitorAnalysis.Image.URL != "snap" || e.CompetitorAnalysis.Name != "override" {
		t.Fatalf("snapshot and override name must survive, got %+v", e.CompetitorAnalysis)
	}
}

func TestApplyPatchSameItemKeepsSnapshot(t *testing.T) {
	itemID := uuid.New()
	fresh := Image{URL: "https://cdn/new.png", StorageID: "items/new"}
	e := Entry{
		StoreName: "Acme",
		CompetitorAnalysis: CompetitorAnalysis{
			Item:  &itemID,
			Image: Image{URL: "https://cdn/old.png", StorageID: "items/old"},
		},
	}

	e.ApplyPatch(EntryPatch{
		StoreName: "Acme",
		Analysis:  &AnalysisPatch{Item: &itemID},
	}, lookupFor(itemID, fresh))

	if e.CompetitorAnalysis.Image.URL != "https://cdn/old.png" {
		t.Fatalf("resubmitting the same item must keep the original snapshot, got %v",
			e.CompetitorAnalysis.Image)
	}
}

func TestApplyPatchDifferentItemRefreshesSnapshot(t *testing.T) {
	oldItem := uuid.New()
	newItem := uuid.New()
	fresh := Image{URL: "https://cdn/new.png", StorageID: "items/new"}
	e := Entry{
		StoreName: "Acme",
		CompetitorAnalysis: CompetitorAnalysis{
			Item:  &oldItem,
			Image: Image{URL: "https://cdn/old.png"},
		},
	}

	e.ApplyPatch(EntryPatch{
		StoreName: "Acme",
		Analysis:  &AnalysisPatch{Item: &newItem},
	}, lookupFor(newItem, fresh))

	if e.CompetitorAnalysis.Image != fresh {
		t.Fatalf("a different item must refresh the snapshot, got %v", e.CompetitorAnalysis.Image)
	}
	if *e.CompetitorAnalysis.Item != newItem {
		t.Fatal("item reference must move to the new item")
	}
}

func TestApplyPatchFiles(t *testing.T) {
	e := Entry{
		StoreName: "Acme",
		Files:     []FileRef{{Name: "keep.pdf"}},
	}

	e.ApplyPatch(EntryPatch{StoreName: "Acme"}, nil)
	if len(e.Files) != 1 || e.Files[0].Name != "keep.pdf" {
		t.Fatalf("omitted files must keep the stored list, got %v", e.Files)
	}

	replacement := []FileRef{{Name: "a.png"}, {Name: "b.png"}}
	e.ApplyPatch(EntryPatch{StoreName: "Acme", Files: &replacement}, nil)
	if len(e.Files) != 2 || e.Files[0].Name != "a.png" {
		t.Fatalf("supplied files must replace the stored list, got %v", e.Files)
	}

	empty := []FileRef{}
	e.ApplyPatch(EntryPatch{StoreName: "Acme", Files: &empty}, nil)
	if e.Files == nil || len(e.Files) != 0 {
		t.Fatalf("an explicit empty list must clear the files, got %v", e.Files)
	}
}
