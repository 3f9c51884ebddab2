package storage

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/acme/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testStorageConfig() *config.StorageConfig {
	return &config.StorageConfig{
		Bucket:            "test-bucket",
		AccessKey:         "test-key",
		SecretKey:         "test-secret",
		Endpoint:          "http://localhost:9000",
		UsePathStyle:      true,
		PresignExpiration: 15 * time.Minute,
	}
}

func TestNewS3ObjectStorage_Validation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.StorageConfig
		wantErr string
	}{
		{"nil config", nil, "configuration is required"},
		{"missing bucket", &config.StorageConfig{AccessKey: "k", SecretKey: "s"}, "bucket is required"},
		{"missing access key", &config.StorageConfig{Bucket: "b", SecretKey: "s"}, "access key is required"},
		{"missing secret key", &config.StorageConfig{Bucket: "b", AccessKey: "k"}, "secret key is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewS3ObjectStorage(tt.cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	t.Run("valid config creates storage", func(t *testing.T) {
		s, err := NewS3ObjectStorage(testStorageConfig())
		require.NoError(t, err)
		assert.Equal(t, "test-bucket", s.Bucket())
		assert.Equal(t, 15*time.Minute, s.presignExpiration)
	})

	t.Run("defaults the presign expiration", func(t *testing.T) {
		cfg := testStorageConfig()
		cfg.PresignExpiration = 0
		s, err := NewS3ObjectStorage(cfg)
		require.NoError(t, err)
		assert.Equal(t, 15*time.Minute, s.presignExpiration)
	})
}

func TestS3ObjectStorageOptions(t *testing.T) {
	logger := zap.NewNop()
	s, err := NewS3ObjectStorage(testStorageConfig(), WithLogger(logger), WithPresignExpiration(time.Hour))
	require.NoError(t, err)

	assert.Same(t, logger, s.logger)
	assert.Equal(t, time.Hour, s.presignExpiration)
}

func TestS3ObjectStorage_ObjectKey(t *testing.T) {
	cfg := testStorageConfig()
	cfg.KeyPrefix = "/documents/"
	s, err := NewS3ObjectStorage(cfg)
	require.NoError(t, err)

	assert.Equal(t, "documents/invoices/a/IN-2024-0001-v1.pdf", s.objectKey("invoices/a/IN-2024-0001-v1.pdf"))

	s.keyPrefix = ""
	assert.Equal(t, "invoices/a.pdf", s.objectKey("invoices/a.pdf"))
}

func TestS3ObjectStorage_GenerateDownloadURL(t *testing.T) {
	s, err := NewS3ObjectStorage(testStorageConfig())
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("empty storage key returns error", func(t *testing.T) {
		u, _, err := s.GenerateDownloadURL(ctx, "", time.Minute)
		assert.ErrorIs(t, err, ErrStorageKeyRequired)
		assert.Empty(t, u)
	})

	t.Run("presigns against the configured endpoint", func(t *testing.T) {
		u, expiresAt, err := s.GenerateDownloadURL(ctx, "invoices/x.pdf", time.Hour)
		require.NoError(t, err)
		assert.True(t, strings.Contains(u, "localhost:9000"))
		assert.True(t, strings.Contains(u, "test-bucket"))
		assert.True(t, expiresAt.After(time.Now().Add(59*time.Minute)))
	})

	t.Run("uses default expiration when not provided", func(t *testing.T) {
		_, expiresAt, err := s.GenerateDownloadURL(ctx, "invoices/x.pdf", 0)
		require.NoError(t, err)
		assert.True(t, expiresAt.Before(time.Now().Add(16*time.Minute)))
	})
}

func TestS3ObjectStorage_KeyValidation(t *testing.T) {
	s, err := NewS3ObjectStorage(testStorageConfig())
	require.NoError(t, err)
	ctx := context.Background()

	assert.True(t, errors.Is(s.Upload(ctx, "", []byte("x"), "text/plain"), ErrStorageKeyRequired))
	assert.True(t, errors.Is(s.DeleteObject(ctx, ""), ErrStorageKeyRequired))
	exists, err := s.ObjectExists(ctx, "")
	assert.ErrorIs(t, err, ErrStorageKeyRequired)
	assert.False(t, exists)
}

// Set STORAGE_INTEGRATION=1 with MinIO or RustFS listening on localhost:9000
func TestIntegration_UploadAndDownload(t *testing.T) {
	if os.Getenv("STORAGE_INTEGRATION") == "" {
		t.Skip("set STORAGE_INTEGRATION=1 to run against a local S3 endpoint")
	}

	cfg := testStorageConfig()
	cfg.Bucket = "acme-integration"
	cfg.AccessKey = "minioadmin"
	cfg.SecretKey = "minioadmin"
	s, err := NewS3ObjectStorage(cfg)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, s.EnsureBucket(ctx))

	key := "integration/upload.pdf"
	require.NoError(t, s.Upload(ctx, key, []byte("%PDF-1.7"), "application/pdf"))

	exists, err := s.ObjectExists(ctx, key)
	require.NoError(t, err)
	assert.True(t, exists)

	u, _, err := s.GenerateDownloadURL(ctx, key, time.Minute)
	require.NoError(t, err)
	assert.NotEmpty(t, u)

	require.NoError(t, s.DeleteObject(ctx, key))
	exists, err = s.ObjectExists(ctx, key)
	require.NoError(t, err)
	assert.False(t, exists)
}
