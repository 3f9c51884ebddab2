// Package scheduler runs periodic background jobs on cron schedules.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Job is one unit of scheduled work. The context carries the job timeout.
type Job func(ctx context.Context) error

// Config holds scheduler settings
type Config struct {
	JobTimeout time.Duration
	Location   *time.Location
}

// DefaultConfig returns the default scheduler configuration
func DefaultConfig() Config {
	return Config{
		JobTimeout: 5 * time.Minute,
		Location:   time.UTC,
	}
}

// RunStatus describes the most recent run of a job
type RunStatus struct {
	Name      string        `json:"name"`
	Schedule  string        `json:"schedule"`
	LastRunAt time.Time     `json:"last_run_at,omitempty"`
	LastError string        `json:"last_error,omitempty"`
	Duration  time.Duration `json:"duration"`
	Runs      int64         `json:"runs"`
	NextRunAt time.Time     `json:"next_run_at,omitempty"`
}

type registeredJob struct {
	name     string
	schedule string
	entryID  cron.EntryID
	job      Job

	mu     sync.Mutex
	status RunStatus
}

// Scheduler wraps a cron runner. Overlapping runs of the same job are
// skipped and panics are recovered.
type Scheduler struct {
	config Config
	logger *zap.Logger
	cron   *cron.Cron

	mu        sync.Mutex
	jobs      map[string]*registeredJob
	ctx       context.Context
	cancel    context.CancelFunc
	isRunning bool
}

// NewScheduler creates a stopped scheduler
func NewScheduler(config Config, logger *zap.Logger) *Scheduler {
	if config.JobTimeout <= 0 {
		config.JobTimeout = DefaultConfig().JobTimeout
	}
	if config.Location == nil {
		config.Location = time.UTC
	}
	cl := cronLogger{logger: logger}
	return &Scheduler{
		config: config,
		logger: logger,
		cron: cron.New(
			cron.WithLocation(config.Location),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		jobs: make(map[string]*registeredJob),
	}
}

// Register adds a named job on a standard five-field cron spec or a
// descriptor such as "@every 10m"
func (s *Scheduler) Register(name, spec string, job Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.jobs[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateJob, name)
	}

	rj := &registeredJob{name: name, schedule: spec, job: job}
	rj.status = RunStatus{Name: name, Schedule: spec}
	id, err := s.cron.AddFunc(spec, func() { s.execute(rj) })
	if err != nil {
		return fmt.Errorf("%w %q: %v", ErrInvalidSchedule, spec, err)
	}
	rj.entryID = id
	s.jobs[name] = rj

	s.logger.Info("Scheduled job registered", zap.String("job", name), zap.String("schedule", spec))
	return nil
}

// Start begins running jobs on their schedules
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.isRunning {
		return nil
	}
	s.ctx, s.cancel = context.WithCancel(ctx)
	s.isRunning = true
	s.cron.Start()

	s.logger.Info("Scheduler started", zap.Int("jobs", len(s.jobs)))
	return nil
}

// Stop stops scheduling and waits for running jobs until ctx is done
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return nil
	}
	s.isRunning = false
	s.mu.Unlock()

	done := s.cron.Stop()
	select {
	case <-done.Done():
		s.cancel()
		s.logger.Info("Scheduler stopped")
		return nil
	case <-ctx.Done():
		s.cancel()
		return ctx.Err()
	}
}

// RunNow executes the named job synchronously, outside its schedule
func (s *Scheduler) RunNow(name string) error {
	s.mu.Lock()
	rj, ok := s.jobs[name]
	running := s.isRunning
	s.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrJobNotFound, name)
	}
	if !running {
		return ErrSchedulerNotRunning
	}
	return s.execute(rj)
}

// Status returns the run status of every job, soonest next run first
func (s *Scheduler) Status() []RunStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]RunStatus, 0, len(s.jobs))
	for _, entry := range s.cron.Entries() {
		for _, rj := range s.jobs {
			if rj.entryID != entry.ID {
				continue
			}
			rj.mu.Lock()
			st := rj.status
			rj.mu.Unlock()
			st.NextRunAt = entry.Next
			out = append(out, st)
		}
	}
	return out
}

func (s *Scheduler) execute(rj *registeredJob) error {
	s.mu.Lock()
	parent := s.ctx
	s.mu.Unlock()
	if parent == nil {
		parent = context.Background()
	}

	ctx, cancel := context.WithTimeout(parent, s.config.JobTimeout)
	defer cancel()

	start := time.Now()
	err := rj.job(ctx)
	elapsed := time.Since(start)

	rj.mu.Lock()
	rj.status.LastRunAt = start
	rj.status.Duration = elapsed
	rj.status.Runs++
	rj.status.LastError = ""
	if err != nil {
		rj.status.LastError = err.Error()
	}
	rj.mu.Unlock()

	if err != nil {
		s.logger.Error("Scheduled job failed",
			zap.String("job", rj.name),
			zap.Duration("duration", elapsed),
			zap.Error(err),
		)
		return err
	}
	s.logger.Info("Scheduled job completed", zap.String("job", rj.name), zap.Duration("duration", elapsed))
	return nil
}

// cronLogger adapts zap to cron.Logger
type cronLogger struct {
	logger *zap.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Sugar().Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Sugar().Errorw(msg, append(keysAndValues, "error", err)...)
}
