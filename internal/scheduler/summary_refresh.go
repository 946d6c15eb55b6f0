package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/melsayed/sales-analyst-api/infrastructure/repository"
	"github.com/melsayed/sales-analyst-api/internal/config"
)

// SummaryRefreshConfig is the scheduling configuration of the summary rebuild.
type SummaryRefreshConfig struct {
	CronSchedule string
	Enabled      bool
}

// SummaryRefreshService rebuilds the sales and target summary tables on a
// schedule so the analytics surfaces keep reading pre-aggregated data after
// reseeds and bulk loads.
type SummaryRefreshService struct {
	scheduler           *gocron.Scheduler
	config              SummaryRefreshConfig
	summaryRepo         repository.SummaryRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewSummaryRefreshService creates the summary refresh scheduler.
func NewSummaryRefreshService(
	summaryRepo repository.SummaryRepository,
	appConfig *config.Config,
) *SummaryRefreshService {
	refreshConfig := SummaryRefreshConfig{
		CronSchedule: appConfig.SummaryRefresh.CronSchedule,
		Enabled:      appConfig.SummaryRefresh.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"enabled":       refreshConfig.Enabled,
	}).Info("Summary refresh scheduler configured")

	return &SummaryRefreshService{
		scheduler:   scheduler,
		config:      refreshConfig,
		summaryRepo: summaryRepo,
		syncRunning: false,
	}
}

// Start schedules the refresh and stops the scheduler when the context ends.
func (s *SummaryRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Summary refresh disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Starting summary refresh scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refreshSummaries(context.Background())
	})
	if err != nil {
		return fmt.Errorf("scheduling summary refresh: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Stopping summary refresh scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// refreshSummaries runs one rebuild. A rebuild already in flight wins; the
// new request is dropped.
func (s *SummaryRefreshService) refreshSummaries(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Summary refresh already running, skipping")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Starting summary rebuild")

	salesRows, targetRows, err := s.summaryRepo.Refresh(ctx)
	if err != nil {
		logrus.WithError(err).Error("Summary rebuild failed")
		return
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":    duration.String(),
		"sales_rows":  salesRows,
		"target_rows": targetRows,
	}).Info("Summary rebuild completed")

	s.lastSyncCompletedAt = time.Now()
}

// TriggerManualSync runs one refresh outside the schedule.
func (s *SummaryRefreshService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Summary refresh already running, ignoring manual trigger")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Starting manual summary refresh")
	go s.refreshSummaries(context.Background())
}

// GetStatus reports the current scheduler state.
func (s *SummaryRefreshService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.Enabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
