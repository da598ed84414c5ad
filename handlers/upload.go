package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"p9e.in/sheets/pkg/blob"
)

// maxUploadSize caps generic media uploads at 10MB.
const maxUploadSize = 10 << 20

var uploader blob.Uploader

// InitUploader wires the blob-storage collaborator the upload endpoints use.
func InitUploader(u blob.Uploader) {
	uploader = u
}

// allowedUploadType accepts jpeg, png and pdf by extension and MIME type.
func allowedUploadType(filename, contentType string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpeg", ".jpg", ".png", ".pdf":
	default:
		return false
	}
	switch {
	case strings.Contains(contentType, "jpeg"),
		strings.Contains(contentType, "jpg"),
		strings.Contains(contentType, "png"),
		strings.Contains(contentType, "pdf"):
		return true
	}
	return false
}

// UploadFile stores one multipart "file" in blob storage and returns its
// address. Only JPEG, PNG and PDF up to 10MB are accepted.
func UploadFile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+1024)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, http.StatusBadRequest, "File too large or malformed form", err)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "No file uploaded", err)
		return
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		respondError(w, http.StatusBadRequest, "File exceeds the 10MB limit", nil)
		return
	}
	contentType := header.Header.Get("Content-Type")
	if !allowedUploadType(header.Filename, contentType) {
		respondError(w, http.StatusBadRequest, "Only JPEG, PNG, and PDF files are allowed!", nil)
		return
	}

	obj, err := uploader.Upload(r.Context(), header.Filename, contentType, file)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "File upload failed", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"url":        obj.URL,
		"storage_id": obj.StorageID,
		"format":     strings.TrimPrefix(strings.ToLower(filepath.Ext(header.Filename)), "."),
	})
}

// saveFormImage uploads the optional "image" file of an item form. The bool
// reports whether a file was present.
func saveFormImage(r *http.Request) (blob.Object, bool, error) {
	file, header, err := r.FormFile("image")
	if err == http.ErrMissingFile {
		return blob.Object{}, false, nil
	}
	if err != nil {
		// No multipart body at all means no image was sent.
		if strings.Contains(err.Error(), "no multipart") {
			return blob.Object{}, false, nil
		}
		return blob.Object{}, false, err
	}
	defer file.Close()

	obj, err := uploader.Upload(r.Context(), header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		return blob.Object{}, false, fmt.Errorf("upload image: %w", err)
	}
	return obj, true, nil
}
