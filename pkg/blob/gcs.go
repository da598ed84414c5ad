package blob

import (
	"context"
	"fmt"
	"io"
	"path"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
)

// defaultFolder namespaces this app's objects inside a shared bucket.
const defaultFolder = "sales_summary"

// GCS uploads into a Google Cloud Storage bucket under a folder prefix.
type GCS struct {
	client *storage.Client
	bucket string
	folder string
}

func NewGCS(ctx context.Context, bucket, folder string) (*GCS, error) {
	if bucket == "" {
		return nil, fmt.Errorf("blob: GCS_BUCKET is not set")
	}
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("blob: create storage client: %w", err)
	}
	if folder == "" {
		folder = defaultFolder
	}
	return &GCS{client: client, bucket: bucket, folder: folder}, nil
}

func (g *GCS) Upload(ctx context.Context, name, contentType string, r io.Reader) (Object, error) {
	// Random object names avoid collisions between same-named uploads.
	objectName := path.Join(g.folder, uuid.NewString()+path.Ext(name))

	wr := g.client.Bucket(g.bucket).Object(objectName).NewWriter(ctx)
	wr.ContentType = contentType
	if _, err := io.Copy(wr, r); err != nil {
		wr.Close()
		return Object{}, fmt.Errorf("blob: write object: %w", err)
	}
	if err := wr.Close(); err != nil {
		return Object{}, fmt.Errorf("blob: finalize object: %w", err)
	}

	return Object{
		URL:       fmt.Sprintf("https://storage.googleapis.com/%s/%s", g.bucket, objectName),
		StorageID: objectName,
	}, nil
}
