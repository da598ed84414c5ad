// Package blob stores uploaded media. Production runs against Google Cloud
// Storage; development falls back to a local uploads directory, selected the
// same way the process detects it is on GCP.
package blob

import (
	"context"
	"io"
	"os"
)

// Object is what callers persist after an upload: the public URL plus the
// identifier the store knows the object by.
type Object struct {
	URL       string `json:"url"`
	StorageID string `json:"storage_id"`
}

// Uploader writes one blob and returns its stored identity.
type Uploader interface {
	Upload(ctx context.Context, name, contentType string, r io.Reader) (Object, error)
}

// UseGCS reports whether uploads should go to Google Cloud Storage. Cloud Run
// sets K_SERVICE; GOOGLE_APPLICATION_CREDENTIALS covers everything else, and
// USE_GCS forces it either way.
func UseGCS() bool {
	return os.Getenv("USE_GCS") == "true" ||
		os.Getenv("GOOGLE_APPLICATION_CREDENTIALS") != "" ||
		os.Getenv("K_SERVICE") != ""
}

// FromEnv builds the uploader the environment calls for.
func FromEnv(ctx context.Context) (Uploader, error) {
	if UseGCS() {
		return NewGCS(ctx, os.Getenv("GCS_BUCKET"), os.Getenv("UPLOAD_FOLDER"))
	}
	return NewLocal("./uploads"), nil
}
