package sharedstore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"lp-publisher/internal/config/configs"
	"lp-publisher/internal/core/domain"
	"lp-publisher/internal/core/port"
)

// MinIOStore implements port.SharedStore on a MinIO bucket.
type MinIOStore struct {
	client *minio.Client
	bucket string
	codec  codec
}

// NewMinIOStore connects to the MinIO endpoint from cfg.
func NewMinIOStore(cfg configs.SharedStore) (*MinIOStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.Secure,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}
	return &MinIOStore{client: client, bucket: cfg.Bucket, codec: codec{gzip: cfg.Gzip}}, nil
}

// Write replaces the object under key with the encoded value.
func (m *MinIOStore) Write(ctx context.Context, key string, value any) error {
	data, err := m.codec.encode(value)
	if err != nil {
		return err
	}
	objectKey := m.codec.objectKey(key)
	_, err = m.client.PutObject(ctx, m.bucket, objectKey, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: m.codec.contentType(),
	})
	if err != nil {
		return fmt.Errorf("%w: minio put %s: %w", domain.ErrStorageUnavailable, objectKey, err)
	}
	return nil
}

// Read decodes the object under key into dst. A missing object yields
// port.ErrObjectNotFound.
func (m *MinIOStore) Read(ctx context.Context, key string, dst any) error {
	objectKey := m.codec.objectKey(key)
	obj, err := m.client.GetObject(ctx, m.bucket, objectKey, minio.GetObjectOptions{})
	if err != nil {
		return m.readError(objectKey, err)
	}
	defer obj.Close()

	// GetObject is lazy: a missing key only surfaces on the first read.
	data, err := io.ReadAll(obj)
	if err != nil {
		return m.readError(objectKey, err)
	}
	return m.codec.decode(data, dst)
}

func (m *MinIOStore) readError(objectKey string, err error) error {
	resp := minio.ToErrorResponse(err)
	if resp.Code == "NoSuchKey" || resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("minio get %s: %w", objectKey, port.ErrObjectNotFound)
	}
	return fmt.Errorf("%w: minio get %s: %w", domain.ErrStorageUnavailable, objectKey, err)
}
