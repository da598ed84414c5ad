package blob

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Local writes uploads to a directory on disk and serves them back under
// /uploads/. Development only.
type Local struct {
	dir string
}

func NewLocal(dir string) *Local {
	return &Local{dir: dir}
}

func (l *Local) Upload(ctx context.Context, name, contentType string, r io.Reader) (Object, error) {
	if err := os.MkdirAll(l.dir, 0755); err != nil {
		return Object{}, fmt.Errorf("blob: create upload directory: %w", err)
	}

	// Timestamp prefix keeps same-named uploads from colliding.
	filename := fmt.Sprintf("%s-%s", time.Now().Format("20060102-150405"), filepath.Base(name))
	dst, err := os.Create(filepath.Join(l.dir, filename))
	if err != nil {
		return Object{}, fmt.Errorf("blob: create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return Object{}, fmt.Errorf("blob: save file: %w", err)
	}

	return Object{
		URL:       "/uploads/" + filename,
		StorageID: filename,
	}, nil
}
