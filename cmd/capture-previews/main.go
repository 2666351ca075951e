// Capture-previews screenshots every portfolio project listed in the site
// content and stores the images where the landing page can serve them.
//
// Usage:
//
//	capture-previews [flags]
//
// Images go to Cloudflare R2 when the R2_* variables are set, otherwise to
// PREVIEW_DIR. Point PREVIEW_BASE_URL at the result to use them on the page.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"zerotosite/config"
	"zerotosite/content"
	"zerotosite/models"
	"zerotosite/services"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var (
	only       []string
	width      int64
	height     int64
	settle     time.Duration
	timeout    time.Duration
	chromePath string
	dryRun     bool
)

var rootCmd = &cobra.Command{
	Use:   "capture-previews",
	Short: "Capture portfolio screenshots",
	Long: `Render each portfolio project in headless Chrome and store a PNG of the
first viewport under portfolio/<slug>.png.`,
	Example: `  # Capture every project into PREVIEW_DIR or R2
  capture-previews

  # Only re-capture one project at a mobile size
  capture-previews --only arro-jet --width 390 --height 844

  # List what would be captured
  capture-previews --dry-run`,
	SilenceUsage: true,
	RunE:         runCapture,
}

func init() {
	defaults := services.DefaultPreviewOptions()
	rootCmd.Flags().StringSliceVar(&only, "only", nil, "Project slugs to capture (default: all)")
	rootCmd.Flags().Int64Var(&width, "width", defaults.Width, "Viewport width in CSS pixels")
	rootCmd.Flags().Int64Var(&height, "height", defaults.Height, "Viewport height in CSS pixels")
	rootCmd.Flags().DurationVar(&settle, "settle", defaults.SettleTime, "Wait after page load before capturing")
	rootCmd.Flags().DurationVar(&timeout, "timeout", defaults.Timeout, "Per-page capture timeout")
	rootCmd.Flags().StringVar(&chromePath, "chrome", "", "Chrome executable (default: CHROME_PATH or auto-detect)")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "List the projects and keys without capturing")
}

// selectItems keeps the items whose slug is listed, or all of them when slugs is empty
func selectItems(items []models.PortfolioItem, slugs []string) ([]models.PortfolioItem, error) {
	if len(slugs) == 0 {
		return items, nil
	}

	bySlug := make(map[string]models.PortfolioItem, len(items))
	for _, item := range items {
		bySlug[item.Slug()] = item
	}

	selected := make([]models.PortfolioItem, 0, len(slugs))
	for _, slug := range slugs {
		item, ok := bySlug[slug]
		if !ok {
			return nil, fmt.Errorf("unknown project %q", slug)
		}
		selected = append(selected, item)
	}
	return selected, nil
}

func runCapture(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	logger, err := config.NewLogger(cfg.Environment)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	site, err := content.Load()
	if err != nil {
		return err
	}

	items, err := selectItems(site.Portfolio, only)
	if err != nil {
		return err
	}

	if dryRun {
		for _, item := range items {
			fmt.Fprintf(cmd.OutOrStdout(), "%-28s %s -> %s\n", item.Name, item.URL, services.PreviewKey(item))
		}
		return nil
	}

	options := services.PreviewOptions{
		Width:      width,
		Height:     height,
		SettleTime: settle,
		Timeout:    timeout,
		ChromePath: chromePath,
	}
	if options.ChromePath == "" {
		options.ChromePath = cfg.ChromePath
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storage := services.NewStorage(cfg, logger)
	results := services.CapturePortfolio(ctx, items, storage, services.CapturePreview, options, logger)

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(cmd.ErrOrStderr(), "FAIL %s: %v\n", r.Item.Name, r.Err)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "ok   %s -> %s\n", r.Item.Name, r.URL)
	}

	logger.Info("preview capture finished", zap.Int("captured", len(results)-failed), zap.Int("failed", failed))
	if failed > 0 {
		return fmt.Errorf("%d of %d previews failed", failed, len(results))
	}
	return nil
}
