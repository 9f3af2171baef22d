package imagehost

import (
	"context"
	"errors"
	"fmt"
	"io"

	"hostel-listing-portal/internal/config"
)

// ErrNotConfigured is returned when the selected backend is missing required
// credentials. Handlers surface this as a server configuration error, not a
// not-found.
var ErrNotConfigured = errors.New("image host is not configured")

// UploadOptions hint where and under what name the binary should land.
type UploadOptions struct {
	Folder      string
	Filename    string
	ContentType string
}

// UploadResult is what the provider gives back: a public URL for the stored
// binary and whatever reference is later needed to delete it.
type UploadResult struct {
	URL          string `json:"url"`
	DeleteHandle string `json:"delete_handle"`
}

// Host abstracts the external image-hosting provider. Implementations must
// return *HostError for any upstream failure so callers can surface the
// provider's status and detail.
type Host interface {
	Upload(ctx context.Context, r io.Reader, size int64, opts UploadOptions) (*UploadResult, error)
	Delete(ctx context.Context, ref string) error
}

// HostError carries the upstream provider's status code and response detail.
type HostError struct {
	Status int
	Detail interface{}
}

func (e *HostError) Error() string {
	return fmt.Sprintf("image host returned status %d", e.Status)
}

// FromConfig builds the backend selected by configuration. An empty provider
// returns (nil, nil): the server runs, and upload endpoints fail at point of
// use with a configuration error.
func FromConfig(cfg config.ImageHostConfig) (Host, error) {
	switch cfg.Provider {
	case "":
		return nil, nil
	case "imghippo":
		return NewImgHippo(cfg.ImgHippo), nil
	case "s3", "minio":
		return NewS3Host(cfg.S3)
	default:
		return nil, fmt.Errorf("unknown image host provider %q", cfg.Provider)
	}
}
