package handlers

import "testing"

func TestAllowedUploadType(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		contentType string
		allowed     bool
	}{
		{"jpeg", "photo.jpeg", "image/jpeg", true},
		{"jpg", "photo.jpg", "image/jpeg", true},
		{"png", "shelf.png", "image/png", true},
		{"pdf", "report.pdf", "application/pdf", true},
		{"uppercase extension", "PHOTO.JPG", "image/jpeg", true},
		{"gif rejected", "anim.gif", "image/gif", false},
		{"extension spoofed", "script.exe", "image/png", false},
		{"mime spoofed", "photo.png", "application/octet-stream", false},
		{"no extension", "photo", "image/png", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := allowedUploadType(tt.filename, tt.contentType); got != tt.allowed {
				t.Errorf("allowedUploadType(%q, %q) = %v, expected %v",
					tt.filename, tt.contentType, got, tt.allowed)
			}
		})
	}
}
