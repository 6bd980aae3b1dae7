package scan

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"bagusgo_backend/platform/config"
	"bagusgo_backend/platform/logger"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Storage retains scanned photos in object storage so OCR quality issues can
// be replayed later. A nil *Storage disables retention entirely.
type Storage struct {
	client *minio.Client
	bucket string
	log    *logger.Logger
}

// NewStorage builds the MinIO-backed photo store, or returns nil when scan
// storage is disabled in config.
func NewStorage(cfg config.ScanConfig, log *logger.Logger) (*Storage, error) {
	if !cfg.GetScanStorageEnabled() {
		return nil, nil
	}

	client, err := minio.New(cfg.GetMinIOEndpoint(), &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.GetMinIOAccessKey(), cfg.GetMinIOSecretKey(), ""),
		Secure: cfg.GetMinIOUseSSL(),
	})
	if err != nil {
		return nil, fmt.Errorf("init minio client: %w", err)
	}

	return &Storage{client: client, bucket: cfg.GetScanBucket(), log: log}, nil
}

// EnsureBucket creates the scan bucket if it does not exist yet.
func (s *Storage) EnsureBucket(ctx context.Context) error {
	if s == nil {
		return nil
	}

	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{})
}

// SavePhoto stores the raw image and returns the object name. Failures are
// logged and swallowed; photo retention must never break the scan itself.
func (s *Storage) SavePhoto(ctx context.Context, image []byte, contentType string) string {
	if s == nil {
		return ""
	}

	objectName := fmt.Sprintf("%s/%s", time.Now().UTC().Format("2006-01-02"), uuid.NewString())
	_, err := s.client.PutObject(ctx, s.bucket, objectName, bytes.NewReader(image), int64(len(image)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		s.log.Error("failed to store scan photo", "error", err, "object", objectName)
		return ""
	}

	return objectName
}
