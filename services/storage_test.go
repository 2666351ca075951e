package services

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"zerotosite/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLocalStorage(t *testing.T) {
	tempDir := t.TempDir()
	storage := NewLocalStorage(tempDir)
	ctx := context.Background()
	key := "portfolio/postgame-ai.png"
	content := []byte("\x89PNG fake")

	t.Run("UploadBytes creates file", func(t *testing.T) {
		result, err := storage.UploadBytes(ctx, content, key, "image/png")
		require.NoError(t, err)
		assert.Equal(t, key, result.Key)
		assert.Equal(t, int64(len(content)), result.FileSize)
		assert.Equal(t, "/"+filepath.ToSlash(filepath.Join(tempDir, key)), result.URL)

		_, err = os.Stat(filepath.Join(tempDir, key))
		assert.NoError(t, err)
	})

	t.Run("Get retrieves file content", func(t *testing.T) {
		reader, contentType, err := storage.Get(ctx, key)
		require.NoError(t, err)
		defer reader.Close()

		got, _ := io.ReadAll(reader)
		assert.Equal(t, content, got)
		assert.Equal(t, "image/png", contentType)
	})

	t.Run("Delete removes file", func(t *testing.T) {
		assert.NoError(t, storage.Delete(ctx, key))
		_, err := os.Stat(filepath.Join(tempDir, key))
		assert.True(t, os.IsNotExist(err))

		// deleting twice is fine
		assert.NoError(t, storage.Delete(ctx, key))
	})

	t.Run("Get missing file", func(t *testing.T) {
		_, _, err := storage.Get(ctx, "missing.png")
		assert.Error(t, err)
	})
}

func TestNewStorage(t *testing.T) {
	t.Run("Local when R2 is not configured", func(t *testing.T) {
		cfg := &config.Config{PreviewDir: "static/previews"}
		storage := NewStorage(cfg, zap.NewNop())
		_, ok := storage.(*LocalStorage)
		assert.True(t, ok)
		assert.True(t, storage.IsConfigured())
	})
}

func TestR2StoragePublicURL(t *testing.T) {
	r2, err := NewR2Storage(&config.Config{
		R2AccountID:       "acct",
		R2AccessKeyID:     "id",
		R2SecretAccessKey: "secret",
		R2BucketName:      "previews",
		R2PublicURL:       "https://cdn.zerotosite.app/",
	})
	require.NoError(t, err)

	assert.True(t, r2.IsConfigured())
	assert.Equal(t, "https://cdn.zerotosite.app/portfolio/a.png", r2.GetPublicURL("portfolio/a.png"))

	r2.publicURL = ""
	assert.Equal(t, "", r2.GetPublicURL("portfolio/a.png"))
}
