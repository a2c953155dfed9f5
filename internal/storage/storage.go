package storage

import (
	"context"
	"errors"
	"time"
)

// Default expiry duration for presigned URLs
const DefaultPresignedURLExpiry = 15 * time.Minute

var ErrEmptyObject = errors.New("refusing to upload an empty object")

// ReportStorage stores generated client reports in object storage.
type ReportStorage interface {
	// Upload writes content under objectKey, replacing any existing object.
	Upload(ctx context.Context, objectKey, contentType string, content []byte) error

	// GeneratePresignedDownloadURL creates a temporary URL that allows GET requests
	// for downloading an object directly from the storage provider.
	GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error)

	// DeleteObject removes an object from the storage provider.
	DeleteObject(ctx context.Context, objectKey string) error
}
