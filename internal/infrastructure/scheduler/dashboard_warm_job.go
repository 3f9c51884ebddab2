package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// DashboardWarmJobName is the registered name of the dashboard warm-up job
const DashboardWarmJobName = "dashboard_warm"

// DashboardWarmer recomputes every sponsor's dashboard
type DashboardWarmer interface {
	WarmAll(ctx context.Context) (int, error)
}

// WarmRecorder receives the outcome of each warm-up run
type WarmRecorder interface {
	RecordDashboardWarm(ctx context.Context, warmed int, elapsed time.Duration, err error)
}

// NewDashboardWarmJob returns a Job that refreshes cached sponsor dashboards.
// recorder may be nil.
func NewDashboardWarmJob(warmer DashboardWarmer, recorder WarmRecorder, logger *zap.Logger) Job {
	return func(ctx context.Context) error {
		start := time.Now()
		warmed, err := warmer.WarmAll(ctx)
		if recorder != nil {
			recorder.RecordDashboardWarm(ctx, warmed, time.Since(start), err)
		}
		logger.Info("Sponsor dashboards warmed", zap.Int("count", warmed))
		return err
	}
}
