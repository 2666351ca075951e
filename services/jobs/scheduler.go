package jobs

import (
	"fmt"

	"zerotosite/services/contact"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultSweepSchedule is how often idle visitor forms are dropped
const DefaultSweepSchedule = "@every 10m"

// Sweeper is the part of the visitor store the scheduler drives
type Sweeper interface {
	Sweep() int
	Len() int
}

// StartScheduler runs the visitor form sweep on schedule. The caller stops
// the returned cron when shutting down.
func StartScheduler(store Sweeper, schedule string, logger *zap.Logger) (*cron.Cron, error) {
	if schedule == "" {
		schedule = DefaultSweepSchedule
	}

	c := cron.New()
	if _, err := c.AddFunc(schedule, func() { SweepVisitorForms(store, logger) }); err != nil {
		return nil, fmt.Errorf("invalid sweep schedule %q: %w", schedule, err)
	}

	c.Start()
	logger.Info("scheduler started", zap.String("sweep", schedule))
	return c, nil
}

// SweepVisitorForms drops idle visitor forms and logs how many went
func SweepVisitorForms(store Sweeper, logger *zap.Logger) {
	removed := store.Sweep()
	if removed > 0 {
		logger.Info("swept idle visitor forms", zap.Int("removed", removed), zap.Int("active", store.Len()))
	}
}

var _ Sweeper = (*contact.Store)(nil)
