package sharedstore

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lp-publisher/internal/config/configs"
	"lp-publisher/internal/core/domain"
	"lp-publisher/internal/core/port"
)

func TestMinIOReadErrorMapping(t *testing.T) {
	m := &MinIOStore{bucket: "lp-publisher"}

	err := m.readError("campaign-status-2024-03-09", minio.ErrorResponse{Code: "NoSuchKey", StatusCode: http.StatusNotFound})
	assert.ErrorIs(t, err, port.ErrObjectNotFound)
	assert.NotErrorIs(t, err, domain.ErrStorageUnavailable)

	err = m.readError("campaign-status-2024-03-09", minio.ErrorResponse{Code: "AccessDenied", StatusCode: http.StatusForbidden})
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)

	err = m.readError("campaign-status-2024-03-09", errors.New("dial tcp: connection refused"))
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
}

func TestNewSelectsDriver(t *testing.T) {
	cfg := configs.SharedStore{
		Driver:   "minio",
		Bucket:   "lp-publisher",
		Region:   "us-east-1",
		Endpoint: "localhost:9000",
		Gzip:     true,
	}
	store, err := New(context.Background(), cfg)
	require.NoError(t, err)
	m, ok := store.(*MinIOStore)
	require.True(t, ok)
	assert.Equal(t, "campaign-order-2024-03-10.gz", m.codec.objectKey("campaign-order-2024-03-10"))

	cfg.Driver = "ftp"
	_, err = New(context.Background(), cfg)
	assert.Error(t, err)
}
