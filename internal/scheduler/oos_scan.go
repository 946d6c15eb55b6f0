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
	"github.com/melsayed/sales-analyst-api/internal/domain"
	"github.com/melsayed/sales-analyst-api/internal/usecases/analyzing"
)

// OOSScanConfig is the scheduling configuration of the out-of-stock sweep.
type OOSScanConfig struct {
	CronSchedule       string
	DaysThreshold      int
	MinHistoricalSales float64
	Enabled            bool
}

// OOSScanService sweeps every brand for items whose recent sales fell below
// the historical run-rate and logs the high-risk ones, an early warning that
// runs without anyone asking.
type OOSScanService struct {
	scheduler           *gocron.Scheduler
	config              OOSScanConfig
	salesRepo           repository.SalesRepository
	analyzer            analyzing.AnalyzingService
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewOOSScanService creates the out-of-stock scan scheduler.
func NewOOSScanService(
	salesRepo repository.SalesRepository,
	analyzer analyzing.AnalyzingService,
	appConfig *config.Config,
) *OOSScanService {
	scanConfig := OOSScanConfig{
		CronSchedule:       appConfig.OOSScan.CronSchedule,
		DaysThreshold:      appConfig.OOSScan.DaysThreshold,
		MinHistoricalSales: appConfig.OOSScan.MinHistoricalSales,
		Enabled:            appConfig.OOSScan.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":        scanConfig.CronSchedule,
		"days_threshold":       scanConfig.DaysThreshold,
		"min_historical_sales": scanConfig.MinHistoricalSales,
		"enabled":              scanConfig.Enabled,
	}).Info("OOS scan scheduler configured")

	return &OOSScanService{
		scheduler:   scheduler,
		config:      scanConfig,
		salesRepo:   salesRepo,
		analyzer:    analyzer,
		syncRunning: false,
	}
}

// Start schedules the scan and stops the scheduler when the context ends.
func (s *OOSScanService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("OOS scan disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Starting OOS scan scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.scanAllBrands()
	})
	if err != nil {
		return fmt.Errorf("scheduling OOS scan: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Stopping OOS scan scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// scanAllBrands runs one sweep across the whole catalog.
func (s *OOSScanService) scanAllBrands() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("OOS scan already running, skipping")
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

	logrus.Info("Starting OOS scan for all brands")

	brands, err := s.getBrands()
	if err != nil {
		logrus.WithError(err).Error("Listing brands for OOS scan failed")
		return
	}

	if len(brands) == 0 {
		logrus.Info("No brands found for OOS scan")
		return
	}

	flagged, highRisk := s.scanBrands(brands)

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":  duration.String(),
		"brands":    len(brands),
		"flagged":   flagged,
		"high_risk": highRisk,
	}).Info("OOS scan completed")

	s.lastSyncCompletedAt = time.Now()
}

// getBrands reads the brand catalog to sweep.
func (s *OOSScanService) getBrands() ([]string, error) {
	brands, err := s.salesRepo.ListBrands()
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"brands": len(brands),
	}).Info("Brands found for OOS scan")

	return brands, nil
}

// scanBrands runs the OOS detection brand by brand and returns how many items
// were flagged and how many of those carry high risk. Per-brand failures are
// logged and the sweep continues.
func (s *OOSScanService) scanBrands(brands []string) (int, int) {
	flagged := 0
	highRisk := 0

	for _, brand := range brands {
		items, err := s.analyzer.DetectOOS(
			domain.BrandFilter{Brand: brand},
			s.config.DaysThreshold,
			s.config.MinHistoricalSales,
		)
		if err != nil {
			logrus.WithError(err).WithField("brand", brand).Error("OOS scan failed for brand")
			continue
		}

		brandHigh := 0
		for _, item := range items {
			if item.RiskLevel != domain.OOSRiskHigh {
				continue
			}
			brandHigh++

			logrus.WithFields(logrus.Fields{
				"brand":             brand,
				"item_code":         item.ItemCode,
				"days_since_sale":   item.DaysSinceSale,
				"avg_monthly_sales": item.AvgMonthlySales,
			}).Warn("High OOS risk item detected")
		}

		flagged += len(items)
		highRisk += brandHigh

		logrus.WithFields(logrus.Fields{
			"brand":     brand,
			"flagged":   len(items),
			"high_risk": brandHigh,
		}).Info("Brand OOS scan completed")
	}

	return flagged, highRisk
}

// TriggerManualSync runs one scan outside the schedule.
func (s *OOSScanService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("OOS scan already running, ignoring manual trigger")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Starting manual OOS scan")
	go s.scanAllBrands()
}

// GetStatus reports the current scheduler state.
func (s *OOSScanService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.Enabled,
		"days_threshold":         s.config.DaysThreshold,
		"min_historical_sales":   s.config.MinHistoricalSales,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
