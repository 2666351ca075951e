package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"zerotosite/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPreviewKey(t *testing.T) {
	item := models.PortfolioItem{Name: "The Hyper Chamber", Image: "https://images.unsplash.com/x.jpg"}
	assert.Equal(t, "portfolio/the-hyper-chamber.png", PreviewKey(item))
}

func TestPreviewImageURL(t *testing.T) {
	item := models.PortfolioItem{Name: "Arro Jet", Image: "https://images.unsplash.com/jet.jpg"}

	assert.Equal(t, "https://images.unsplash.com/jet.jpg", PreviewImageURL("", item))
	assert.Equal(t, "https://cdn.zerotosite.app/portfolio/arro-jet.png", PreviewImageURL("https://cdn.zerotosite.app", item))
}

func TestCapturePreview(t *testing.T) {
	chromePath := os.Getenv("CHROME_PATH")
	if chromePath == "" {
		t.Skip("CHROME_PATH not set; skipping headless Chrome capture")
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body><h1>Preview</h1></body></html>"))
	}))
	defer server.Close()

	opts := DefaultPreviewOptions()
	opts.ChromePath = chromePath
	opts.SettleTime = 100 * time.Millisecond

	png, err := CapturePreview(context.Background(), server.URL, opts)
	require.NoError(t, err)
	assert.Equal(t, "\x89PNG", string(png[:4]))
}

func TestCapturePortfolio(t *testing.T) {
	dir := t.TempDir()
	storage := NewLocalStorage(dir)

	items := []models.PortfolioItem{
		{Name: "Arro Jet", URL: "https://arro-jet.example/"},
		{Name: "Broken Site", URL: "https://broken.example/"},
		{Name: "Local Page", URL: "/local"},
	}

	capture := func(ctx context.Context, url string, options PreviewOptions) ([]byte, error) {
		if url == "https://broken.example/" {
			return nil, errors.New("navigation failed")
		}
		return []byte("\x89PNG fake"), nil
	}

	results := CapturePortfolio(context.Background(), items, storage, capture, DefaultPreviewOptions(), zap.NewNop())
	require.Len(t, results, 3)

	assert.NoError(t, results[0].Err)
	assert.Equal(t, "portfolio/arro-jet.png", results[0].Key)
	data, err := os.ReadFile(filepath.Join(dir, "portfolio", "arro-jet.png"))
	require.NoError(t, err)
	assert.Equal(t, "\x89PNG fake", string(data))

	assert.EqualError(t, results[1].Err, "navigation failed")
	assert.Error(t, results[2].Err)
	_, err = os.Stat(filepath.Join(dir, "portfolio", "local-page.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestCapturePortfolioCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	capture := func(ctx context.Context, url string, options PreviewOptions) ([]byte, error) {
		called = true
		return nil, nil
	}

	results := CapturePortfolio(ctx, []models.PortfolioItem{{Name: "A", URL: "https://a.example"}}, NewLocalStorage(t.TempDir()), capture, DefaultPreviewOptions(), zap.NewNop())
	require.Len(t, results, 1)
	assert.ErrorIs(t, results[0].Err, context.Canceled)
	assert.False(t, called)
}
