package handlers

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"p9e.in/sheets/models"
)

func TestBuildSheetCSVEmptySheet(t *testing.T) {
	csv := buildSheetCSV(models.SheetView{
		Name:  "Q1 Visits",
		Hours: models.DefaultHours,
		Data:  []models.EntryView{},
	})

	lines := strings.Split(csv, "\n")
	if len(lines) != 4 {
		t.Fatalf("empty sheet must export header block only (4 lines), got %d:\n%s", len(lines), csv)
	}
	if lines[0] != "Report: Q1 Visits" {
		t.Errorf("line 1 = %q", lines[0])
	}
	if lines[1] != "Hours: "+models.DefaultHours {
		t.Errorf("line 2 = %q", lines[1])
	}
	if lines[2] != "" {
		t.Errorf("line 3 must be blank, got %q", lines[2])
	}
	if !strings.HasPrefix(lines[3], "Order,Store Name,") {
		t.Errorf("header row = %q", lines[3])
	}
}

func TestBuildSheetCSVRow(t *testing.T) {
	compID := uuid.New()
	csv := buildSheetCSV(models.SheetView{
		Name:  "Q1",
		Hours: "9-5",
		Data: []models.EntryView{{
			Order:     1,
			StoreName: "Acme",
			Address:   "1 Main St",
			Personnel: "Pat",
			Insight:   "busy",
			CompetitorAnalysis: models.AnalysisView{
				Competitor: &models.CompetitorRef{ID: compID, Name: "Rival Co"},
				Color:      &models.ColorRef{Name: "Crimson", HexCode: "#DC143C"},
				Image:      models.Image{URL: "https://cdn/snap.png"},
				Name:       "override",
			},
			Validation: "ok",
			Files: []models.FileRef{
				{Name: "front.png"},
				{Name: "shelf.png"},
			},
			ValidationNotes: "fine",
		}},
	})

	lines := strings.Split(csv, "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d:\n%s", len(lines), csv)
	}
	want := `"1","Acme","1 Main St","Pat","busy","Rival Co","","https://cdn/snap.png","override","Crimson (#DC143C)","ok","front.png;shelf.png","fine"`
	if lines[4] != want {
		t.Errorf("data row mismatch:\n got: %s\nwant: %s", lines[4], want)
	}
}

func TestBuildSheetCSVUnresolvedReferencesBlank(t *testing.T) {
	csv := buildSheetCSV(models.SheetView{
		Name:  "Q1",
		Hours: "9-5",
		Data: []models.EntryView{{
			Order:     1,
			StoreName: "Acme",
		}},
	})

	lines := strings.Split(csv, "\n")
	want := `"1","Acme","","","","","","","","","","",""`
	if lines[4] != want {
		t.Errorf("data row mismatch:\n got: %s\nwant: %s", lines[4], want)
	}
}

func TestSanitizeTabName(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{"plain", "Q1 Visits", "Q1 Visits"},
		{"strips forbidden characters", "Q1/Q2? *[Draft]", "Q1Q2 Draft"},
		{"truncates to 31", strings.Repeat("a", 40), strings.Repeat("a", 31)},
		{"truncates before stripping", strings.Repeat("a", 30) + "/b", strings.Repeat("a", 30)},
		{"empty stays empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeTabName(tt.in); got != tt.expected {
				t.Errorf("sanitizeTabName(%q) = %q, expected %q", tt.in, got, tt.expected)
			}
		})
	}
}

func TestBuildWorkbookLayout(t *testing.T) {
	f, err := buildWorkbook([]models.SheetView{
		{
			Name:  "Q1",
			Hours: "9-5",
			Data: []models.EntryView{
				{Order: 1, StoreName: "Acme"},
			},
		},
		{Name: "Q2", Hours: "9-5", Data: []models.EntryView{}},
	})
	if err != nil {
		t.Fatalf("buildWorkbook: %v", err)
	}

	tabs := f.GetSheetList()
	if len(tabs) != 2 || tabs[0] != "Q1" || tabs[1] != "Q2" {
		t.Fatalf("expected tabs [Q1 Q2], got %v", tabs)
	}

	if got, _ := f.GetCellValue("Q1", "A1"); got != "Report: Q1" {
		t.Errorf("A1 = %q", got)
	}
	if got, _ := f.GetCellValue("Q1", "A2"); got != "Hours: 9-5" {
		t.Errorf("A2 = %q", got)
	}
	if got, _ := f.GetCellValue("Q1", "A3"); got != "" {
		t.Errorf("A3 must be blank, got %q", got)
	}
	if got, _ := f.GetCellValue("Q1", "A4"); got != "Order" {
		t.Errorf("A4 = %q", got)
	}
	if got, _ := f.GetCellValue("Q1", "B5"); got != "Acme" {
		t.Errorf("B5 = %q", got)
	}
	// The empty Q2 sheet still carries its header block.
	if got, _ := f.GetCellValue("Q2", "A4"); got != "Order" {
		t.Errorf("Q2 A4 = %q", got)
	}
	if got, _ := f.GetCellValue("Q2", "A5"); got != "" {
		t.Errorf("Q2 must have no data rows, got A5=%q", got)
	}
}
