package handlers

import (
	"testing"

	"github.com/google/uuid"
)

func TestEntryPayloadPatchValidatesIDs(t *testing.T) {
	valid := uuid.NewString()
	tests := []struct {
		name    string
		payload entryPayload
		wantMsg string
	}{
		{"no analysis", entryPayload{StoreName: "Acme"}, ""},
		{
			"valid ids",
			entryPayload{StoreName: "Acme", CompetitorAnalysis: &analysisPayload{
				Competitor: valid, Item: valid, Color: valid,
			}},
			"",
		},
		{
			"bad competitor",
			entryPayload{StoreName: "Acme", CompetitorAnalysis: &analysisPayload{Competitor: "nope"}},
			"Invalid competitor ID",
		},
		{
			"bad item",
			entryPayload{StoreName: "Acme", CompetitorAnalysis: &analysisPayload{Item: "123"}},
			"Invalid item ID",
		},
		{
			"bad color",
			entryPayload{StoreName: "Acme", CompetitorAnalysis: &analysisPayload{Color: "#fff"}},
			"Invalid color ID",
		},
		{
			"empty ids are simply absent",
			entryPayload{StoreName: "Acme", CompetitorAnalysis: &analysisPayload{Name: "override"}},
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			patch, msg := tt.payload.patch()
			if msg != tt.wantMsg {
				t.Fatalf("patch() message = %q, expected %q", msg, tt.wantMsg)
			}
			if tt.wantMsg != "" {
				return
			}
			if tt.payload.CompetitorAnalysis == nil {
				if patch.Analysis != nil {
					t.Fatal("no analysis payload must produce a nil analysis patch")
				}
				return
			}
			if patch.Analysis == nil {
				t.Fatal("analysis payload must produce an analysis patch")
			}
			if tt.payload.CompetitorAnalysis.Competitor == "" && patch.Analysis.Competitor != nil {
				t.Fatal("empty competitor id must stay nil")
			}
		})
	}
}
