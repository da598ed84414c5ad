package models

import "testing"

func TestValidHexCode(t *testing.T) {
	tests := []struct {
		name  string
		code  string
		valid bool
	}{
		{"short form upper", "#FFF", true},
		{"long form lower", "#ffffff", true},
		{"mixed case", "#123abc", true},
		{"mixed case upper", "#123ABC", true},
		{"no hash", "zzz", false},
		{"hash with junk", "#zzz", false},
		{"too short", "#ff", false},
		{"four digits", "#ffff", false},
		{"too long", "#fffffff", false},
		{"empty", "", false},
		{"bare hash", "#", false},
		{"trailing space", "#fff ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidHexCode(tt.code); got != tt.valid {
				t.Errorf("ValidHexCode(%q) = %v, expected %v", tt.code, got, tt.valid)
			}
		})
	}
}
