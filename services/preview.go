package services

import (
	"context"
	"fmt"
	"time"

	"zerotosite/models"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

// PreviewOptions controls how portfolio screenshots are taken
type PreviewOptions struct {
	Width      int64         // viewport width in CSS pixels
	Height     int64         // viewport height in CSS pixels
	SettleTime time.Duration // wait after load before capturing
	Timeout    time.Duration
	ChromePath string
}

// DefaultPreviewOptions returns desktop-sized capture settings
func DefaultPreviewOptions() PreviewOptions {
	return PreviewOptions{
		Width:      1280,
		Height:     800,
		SettleTime: 2 * time.Second,
		Timeout:    45 * time.Second,
	}
}

// PreviewKey is the storage key of a portfolio item's screenshot
func PreviewKey(item models.PortfolioItem) string {
	return "portfolio/" + item.Slug() + ".png"
}

// PreviewImageURL returns the screenshot URL under baseURL, or the stock image when no base is set
func PreviewImageURL(baseURL string, item models.PortfolioItem) string {
	if baseURL == "" {
		return item.Image
	}
	return baseURL + "/" + PreviewKey(item)
}

// CapturePreview renders url in headless Chrome and returns a PNG of the viewport
func CapturePreview(ctx context.Context, url string, options PreviewOptions) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
		chromedp.DisableGPU,
		chromedp.WindowSize(int(options.Width), int(options.Height)),
	)

	// Check for custom Chrome path (for headless-shell in Docker)
	if options.ChromePath != "" {
		opts = append(opts, chromedp.ExecPath(options.ChromePath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	if options.Timeout > 0 {
		var timeoutCancel context.CancelFunc
		browserCtx, timeoutCancel = context.WithTimeout(browserCtx, options.Timeout)
		defer timeoutCancel()
	}

	var buf []byte
	err := chromedp.Run(browserCtx,
		emulation.SetDeviceMetricsOverride(options.Width, options.Height, 1, false),
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(options.SettleTime),
		chromedp.CaptureScreenshot(&buf),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to capture preview of %s: %w", url, err)
	}

	return buf, nil
}

// CaptureFunc takes a screenshot of url
type CaptureFunc func(ctx context.Context, url string, options PreviewOptions) ([]byte, error)

// PreviewResult reports the outcome for one portfolio item
type PreviewResult struct {
	Item models.PortfolioItem
	Key  string
	URL  string
	Err  error
}

// CapturePortfolio screenshots every item with an absolute URL and stores the
// PNG under PreviewKey. A failed item does not stop the others.
func CapturePortfolio(ctx context.Context, items []models.PortfolioItem, storage StorageProvider, capture CaptureFunc, options PreviewOptions, logger *zap.Logger) []PreviewResult {
	results := make([]PreviewResult, 0, len(items))
	for _, item := range items {
		if err := ctx.Err(); err != nil {
			results = append(results, PreviewResult{Item: item, Key: PreviewKey(item), Err: err})
			continue
		}

		result := PreviewResult{Item: item, Key: PreviewKey(item)}
		if !item.IsExternal() {
			result.Err = fmt.Errorf("portfolio item %q has no absolute URL", item.Name)
			results = append(results, result)
			continue
		}

		png, err := capture(ctx, item.URL, options)
		if err != nil {
			logger.Warn("preview capture failed", zap.String("project", item.Name), zap.Error(err))
			result.Err = err
			results = append(results, result)
			continue
		}

		stored, err := storage.UploadBytes(ctx, png, result.Key, "image/png")
		if err != nil {
			logger.Warn("preview upload failed", zap.String("project", item.Name), zap.Error(err))
			result.Err = err
			results = append(results, result)
			continue
		}

		result.URL = stored.URL
		logger.Info("preview stored", zap.String("project", item.Name), zap.String("key", result.Key), zap.Int64("bytes", stored.FileSize))
		results = append(results, result)
	}
	return results
}
