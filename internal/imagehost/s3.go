package imagehost

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"time"

	"hostel-listing-portal/internal/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// S3Host stores images in an S3-compatible bucket via a streaming SDK upload.
// The delete handle is the object key.
type S3Host struct {
	client        *minio.Client
	bucket        string
	publicBaseURL string
}

// NewS3Host connects to the object store and ensures the bucket exists.
func NewS3Host(cfg config.S3Config) (*S3Host, error) {
	if cfg.Endpoint == "" || cfg.AccessKey == "" || cfg.SecretKey == "" || cfg.Bucket == "" {
		return nil, ErrNotConfigured
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("init s3 client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
	}

	base := cfg.PublicBaseURL
	if base == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		base = fmt.Sprintf("%s://%s/%s", scheme, cfg.Endpoint, cfg.Bucket)
	}

	return &S3Host{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimSuffix(base, "/"),
	}, nil
}

func (s *S3Host) Upload(ctx context.Context, r io.Reader, size int64, opts UploadOptions) (*UploadResult, error) {
	key := uuid.NewString() + strings.ToLower(path.Ext(opts.Filename))
	if opts.Folder != "" {
		key = opts.Folder + "/" + key
	}

	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: opts.ContentType,
	})
	if err != nil {
		return nil, s.wrap(err)
	}

	return &UploadResult{
		URL:          s.publicBaseURL + "/" + key,
		DeleteHandle: key,
	}, nil
}

// Delete accepts either an object key or a full public URL from a previous
// upload. Removing an already-absent object is a success.
func (s *S3Host) Delete(ctx context.Context, ref string) error {
	key := strings.TrimPrefix(ref, s.publicBaseURL+"/")
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return s.wrap(err)
	}
	return nil
}

func (s *S3Host) wrap(err error) error {
	resp := minio.ToErrorResponse(err)
	status := resp.StatusCode
	if status == 0 {
		status = http.StatusBadGateway
	}
	return &HostError{Status: status, Detail: err.Error()}
}
