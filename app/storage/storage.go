package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path/filepath"
	"time"

	"colegio-api/app/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Store keeps task and submission attachments in a MinIO bucket. The
// API only ever hands out object names and presigned URLs; file
// contents are opaque to the rest of the system.
type Store struct {
	client *minio.Client
	bucket string
	urlTTL time.Duration
}

func Init(ctx context.Context, cfg config.MinioConfig) (*Store, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &Store{client: client, bucket: cfg.Bucket, urlTTL: cfg.URLExpiry}, nil
}

// Upload stores the file under a fresh object name inside prefix and
// returns that name. The original filename survives as the extension
// plus the download disposition.
func (s *Store) Upload(ctx context.Context, prefix, filename string, r io.Reader, size int64, contentType string) (string, error) {
	objectName := fmt.Sprintf("%s/%s%s", prefix, uuid.New().String(), filepath.Ext(filename))

	_, err := s.client.PutObject(ctx, s.bucket, objectName, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}
	return objectName, nil
}

// PresignedURL generates a short-lived download URL for an object.
func (s *Store) PresignedURL(ctx context.Context, objectName string) (string, error) {
	reqParams := make(url.Values)
	reqParams.Set("response-content-disposition",
		fmt.Sprintf("attachment; filename=%q", filepath.Base(objectName)))

	u, err := s.client.PresignedGetObject(ctx, s.bucket, objectName, s.urlTTL, reqParams)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned url: %w", err)
	}
	return u.String(), nil
}

// Remove deletes an object. Used when replacing a task attachment.
func (s *Store) Remove(ctx context.Context, objectName string) error {
	return s.client.RemoveObject(ctx, s.bucket, objectName, minio.RemoveObjectOptions{})
}
