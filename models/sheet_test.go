package models

import (
	"testing"

	"github.com/google/uuid"
)

func orders(s *Sheet) []int {
	out := make([]int, len(s.Data))
	for i, e := range s.Data {
		out[i] = e.Order
	}
	return out
}

func assertContiguous(t *testing.T, s *Sheet) {
	t.Helper()
	for i, e := range s.Data {
		if e.Order != i+1 {
			t.Fatalf("order invariant broken: position %d has order %d (all orders: %v)", i, e.Order, orders(s))
		}
	}
}

func TestAppendEntryAssignsNextOrder(t *testing.T) {
	s := &Sheet{}
	first := s.AppendEntry(Entry{StoreName: "Acme"})
	second := s.AppendEntry(Entry{StoreName: "Beta"})

	if first.Order != 1 || second.Order != 2 {
		t.Fatalf("expected orders 1 and 2, got %d and %d", first.Order, second.Order)
	}
	if first.ID == uuid.Nil || second.ID == uuid.Nil {
		t.Fatal("appended entries must get ids")
	}
	if first.ID == second.ID {
		t.Fatal("entry ids must be unique within the sheet")
	}
	if first.Files == nil {
		t.Fatal("appended entry must have a non-nil file list")
	}
	assertContiguous(t, s)
}

func TestRemoveEntryRenumbers(t *testing.T) {
	// create Q1 -> append Acme -> append Beta -> remove Acme: Beta must
	// become order 1.
	s := &Sheet{Name: "Q1"}
	acme := s.AppendEntry(Entry{StoreName: "Acme"})
	s.AppendEntry(Entry{StoreName: "Beta"})

	if !s.RemoveEntry(acme.ID) {
		t.Fatal("expected removal of existing entry to succeed")
	}
	if len(s.Data) != 1 {
		t.Fatalf("expected one remaining entry, got %d", len(s.Data))
	}
	if s.Data[0].StoreName != "Beta" || s.Data[0].Order != 1 {
		t.Fatalf("expected remaining entry Beta with order 1, got %q with order %d",
			s.Data[0].StoreName, s.Data[0].Order)
	}
	assertContiguous(t, s)
}

func TestRemoveEntryMiddleClosesGap(t *testing.T) {
	s := &Sheet{}
	s.AppendEntry(Entry{StoreName: "A"})
	b := s.AppendEntry(Entry{StoreName: "B"})
	s.AppendEntry(Entry{StoreName: "C"})

	if !s.RemoveEntry(b.ID) {
		t.Fatal("expected removal to succeed")
	}
	got := orders(s)
	if got[0] != 1 || got[1] != 2 {
		t.Fatalf("expected orders [1 2] after removing the middle entry, got %v", got)
	}
	assertContiguous(t, s)
}

func TestRemoveEntryMissing(t *testing.T) {
	s := &Sheet{}
	s.AppendEntry(Entry{StoreName: "A"})
	if s.RemoveEntry(uuid.New()) {
		t.Fatal("removing an unknown entry id must report false")
	}
	if len(s.Data) != 1 {
		t.Fatal("failed removal must not change the sheet")
	}
}

func TestFindEntry(t *testing.T) {
	s := &Sheet{}
	e := s.AppendEntry(Entry{StoreName: "Acme"})

	if got := s.FindEntry(e.ID); got == nil || got.StoreName != "Acme" {
		t.Fatalf("expected to find entry %v, got %v", e.ID, got)
	}
	if got := s.FindEntry(uuid.New()); got != nil {
		t.Fatalf("expected nil for unknown id, got %v", got)
	}
}

func TestNormalizeFiles(t *testing.T) {
	if got := NormalizeFiles(nil); got == nil || len(got) != 0 {
		t.Fatalf("nil file list must normalize to an empty slice, got %v", got)
	}

	in := []FileRef{{Name: "a.pdf", Size: 12}}
	got := NormalizeFiles(in)
	if len(got) != 1 || got[0] != in[0] {
		t.Fatalf("file list content must be preserved, got %v", got)
	}
}
