package scheduler

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/catalogsync/backend/internal/application/backup"
)

// BackupRunner executes one backup run
type BackupRunner interface {
	RunBackup(ctx context.Context) (*backup.BackupResult, error)
}

// BackupSchedulerConfig holds configuration for the backup scheduler
type BackupSchedulerConfig struct {
	// Enabled determines if the scheduler is active
	Enabled bool

	// TriggerTimes are the wall-clock times ("HH:MM", 24h) at which a backup
	// run starts, interpreted in Location
	TriggerTimes []string

	// Location is the timezone the trigger times refer to
	Location *time.Location

	// RunTimeout is the maximum time for a single backup run
	RunTimeout time.Duration
}

// DefaultBackupSchedulerConfig returns default configuration
func DefaultBackupSchedulerConfig() BackupSchedulerConfig {
	return BackupSchedulerConfig{
		Enabled:      true,
		TriggerTimes: []string{"09:41", "23:43"},
		Location:     time.UTC,
		RunTimeout:   15 * time.Minute,
	}
}

// triggerTime is a parsed HH:MM trigger
type triggerTime struct {
	hour   int
	minute int
}

// parseTriggerTimes parses and sorts the configured trigger times
func parseTriggerTimes(times []string) ([]triggerTime, error) {
	if len(times) == 0 {
		return nil, fmt.Errorf("%w: no trigger times configured", ErrInvalidTriggerTime)
	}

	parsed := make([]triggerTime, 0, len(times))
	for _, raw := range times {
		t, err := time.Parse("15:04", raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTriggerTime, raw)
		}
		parsed = append(parsed, triggerTime{hour: t.Hour(), minute: t.Minute()})
	}

	sort.Slice(parsed, func(i, j int) bool {
		if parsed[i].hour != parsed[j].hour {
			return parsed[i].hour < parsed[j].hour
		}
		return parsed[i].minute < parsed[j].minute
	})

	return parsed, nil
}

// BackupScheduler runs backup snapshots at fixed wall-clock times
type BackupScheduler struct {
	runner   BackupRunner
	logger   *zap.Logger
	config   BackupSchedulerConfig
	triggers []triggerTime

	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.Mutex
	isRunning bool
}

// NewBackupScheduler creates a new backup scheduler
func NewBackupScheduler(
	runner BackupRunner,
	logger *zap.Logger,
	config BackupSchedulerConfig,
) (*BackupScheduler, error) {
	triggers, err := parseTriggerTimes(config.TriggerTimes)
	if err != nil {
		return nil, err
	}
	if config.Location == nil {
		config.Location = time.UTC
	}

	return &BackupScheduler{
		runner:   runner,
		logger:   logger,
		config:   config,
		triggers: triggers,
	}, nil
}

// Start starts the backup scheduler
func (s *BackupScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return nil
	}
	if !s.config.Enabled {
		s.mu.Unlock()
		s.logger.Info("Backup scheduler is disabled")
		return nil
	}
	s.isRunning = true
	s.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.wg.Add(1)
	go s.runLoop(ctx)

	s.logger.Info("Backup scheduler started",
		zap.Strings("trigger_times", s.config.TriggerTimes),
		zap.String("timezone", s.config.Location.String()),
	)

	return nil
}

// Stop gracefully stops the scheduler
func (s *BackupScheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return nil
	}
	s.isRunning = false
	s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}

	// Wait for goroutines to finish with timeout
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("Backup scheduler stopped gracefully")
		return nil
	case <-ctx.Done():
		s.logger.Warn("Backup scheduler stop timed out")
		return ctx.Err()
	}
}

// runLoop sleeps until the next trigger time and executes a backup run.
// Missed triggers are not replayed: after a long sleep or clock jump the
// loop simply waits for the next upcoming trigger.
func (s *BackupScheduler) runLoop(ctx context.Context) {
	defer s.wg.Done()

	for {
		now := time.Now().In(s.config.Location)
		nextRun := s.nextTriggerAfter(now)
		delay := nextRun.Sub(now)

		s.logger.Info("Backup run scheduled",
			zap.Time("next_run", nextRun),
			zap.Duration("delay", delay),
		)

		select {
		case <-ctx.Done():
			s.logger.Debug("Backup scheduler loop stopping")
			return
		case <-time.After(delay):
			s.executeBackup(ctx)
		}
	}
}

// nextTriggerAfter returns the earliest trigger time strictly after now
func (s *BackupScheduler) nextTriggerAfter(now time.Time) time.Time {
	for _, trigger := range s.triggers {
		candidate := time.Date(now.Year(), now.Month(), now.Day(), trigger.hour, trigger.minute, 0, 0, s.config.Location)
		if candidate.After(now) {
			return candidate
		}
	}

	// All of today's triggers have passed, take the first one tomorrow
	first := s.triggers[0]
	tomorrow := now.AddDate(0, 0, 1)
	return time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), first.hour, first.minute, 0, 0, s.config.Location)
}

// executeBackup executes a single backup run under the configured run timeout
func (s *BackupScheduler) executeBackup(ctx context.Context) (*backup.BackupResult, error) {
	runCtx, cancel := context.WithTimeout(ctx, s.config.RunTimeout)
	defer cancel()

	startTime := time.Now()
	result, err := s.runner.RunBackup(runCtx)
	duration := time.Since(startTime)

	if err != nil {
		s.logger.Error("Backup run failed",
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("Backup run completed",
		zap.Duration("duration", duration),
		zap.Int("snapshot_count", result.SnapshotCount),
		zap.Int("failure_count", result.FailureCount),
	)
	return result, nil
}

// TriggerImmediateBackup runs one backup outside the schedule, under the
// same run timeout as scheduled runs. It works whether or not the trigger
// loop is running, so manual runs stay available when scheduled backups are
// disabled.
func (s *BackupScheduler) TriggerImmediateBackup(ctx context.Context) (*backup.BackupResult, error) {
	s.wg.Add(1)
	defer s.wg.Done()

	s.logger.Info("Running manual backup")
	return s.executeBackup(ctx)
}

// IsRunning returns whether the scheduler is running
func (s *BackupScheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isRunning
}
