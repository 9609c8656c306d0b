package jobs

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/kizunaworks/backoffice/ent/syncrun"
	"github.com/kizunaworks/backoffice/pkg/cache"
	"github.com/kizunaworks/backoffice/pkg/callsync"
	"github.com/kizunaworks/backoffice/pkg/email"
	"github.com/kizunaworks/backoffice/pkg/metrics"
	"github.com/kizunaworks/backoffice/pkg/models"
	"github.com/robfig/cron/v3"
)

// How far back each scheduled run reaches. Runs overlap on purpose: the
// merge is idempotent, so re-reading a window only refreshes rows.
const syncWindow = 2 * time.Hour

// CronManager manages scheduled jobs
type CronManager struct {
	cron       *cron.Cron
	sync       *callsync.Service
	cache      *cache.Client
	metrics    *metrics.Metrics
	email      *email.Service
	alertEmail string
	interval   int
	logger     *log.Logger
}

// NewCronManager creates a new cron manager. cache, metrics and email may
// be nil; alerting and caching are then skipped.
func NewCronManager(syncService *callsync.Service, cacheClient *cache.Client, m *metrics.Metrics, emailService *email.Service, alertEmail string, intervalMinutes int, logger *log.Logger) *CronManager {
	if logger == nil {
		logger = log.Default()
	}
	if intervalMinutes <= 0 {
		intervalMinutes = 30
	}

	return &CronManager{
		cron:       cron.New(),
		sync:       syncService,
		cache:      cacheClient,
		metrics:    m,
		email:      emailService,
		alertEmail: alertEmail,
		interval:   intervalMinutes,
		logger:     logger,
	}
}

// SetupJobs configures all scheduled jobs
func (cm *CronManager) SetupJobs() error {
	cm.logger.Println("Setting up cron jobs...")

	spec := fmt.Sprintf("@every %dm", cm.interval)
	_, err := cm.cron.AddFunc(spec, func() {
		cm.logger.Println("🕐 Running scheduled call log sync...")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()

		if err := cm.RunScheduledSync(ctx); err != nil {
			if errors.Is(err, callsync.ErrSyncInProgress) {
				cm.logger.Println("⏭  Previous sync still running, skipping this tick")
				return
			}
			cm.logger.Printf("❌ Scheduled sync failed: %v", err)
			return
		}

		cm.logger.Println("✅ Scheduled call log sync completed")
	})
	if err != nil {
		return err
	}

	cm.logger.Println("✅ Cron jobs configured successfully")
	cm.logger.Printf("  - Every %d minutes: call log sync (window: last %s)", cm.interval, syncWindow)

	return nil
}

// RunScheduledSync executes one sync pass over the trailing window, records
// the run, and fans the outcome out to metrics, cache and alerting.
func (cm *CronManager) RunScheduledSync(ctx context.Context) error {
	until := time.Now()
	since := until.Add(-syncWindow)
	startedAt := until

	result, runErr := cm.sync.Sync(ctx, since, until)
	if errors.Is(runErr, callsync.ErrSyncInProgress) {
		if cm.metrics != nil {
			cm.metrics.RecordSyncRun("scheduled", "busy")
		}
		return runErr
	}

	run, recErr := cm.sync.RecordRun(ctx, syncrun.TriggerScheduled, since, until, startedAt, result, runErr)
	if recErr != nil {
		cm.logger.Printf("⚠️ Failed to record sync run: %v", recErr)
	}

	if cm.metrics != nil {
		status := "completed"
		if runErr != nil {
			status = "failed"
		}
		cm.metrics.RecordSyncRun("scheduled", status)
		if result != nil {
			cm.metrics.RecordSyncOutcome(result.Inserted, result.Updated, result.Skipped)
		}
	}

	if cm.cache != nil && run != nil {
		summary := models.SyncRunResponse{
			Trigger:    string(run.Trigger),
			StartDate:  run.StartDate,
			EndDate:    run.EndDate,
			Inserted:   run.Inserted,
			Updated:    run.Updated,
			Skipped:    run.Skipped,
			Status:     string(run.Status),
			Error:      run.Error,
			StartedAt:  run.StartedAt,
			FinishedAt: run.FinishedAt,
		}
		if run.SkipReasons != nil {
			summary.SkipReasons = run.SkipReasons
		}
		if err := cm.cache.SetLastSyncRun(ctx, summary, 24*time.Hour); err != nil {
			cm.logger.Printf("⚠️ Failed to cache sync run summary: %v", err)
		}
	}

	if runErr != nil && cm.email != nil && cm.alertEmail != "" {
		inserted, updated, skipped := 0, 0, 0
		if result != nil {
			inserted, updated, skipped = result.Inserted, result.Updated, result.Skipped
		}
		if err := cm.email.SendSyncFailureAlert(
			cm.alertEmail, "Operations",
			since.Format("2006-01-02"), until.Format("2006-01-02"),
			inserted, updated, skipped, runErr,
		); err != nil {
			cm.logger.Printf("⚠️ Failed to send failure alert: %v", err)
		}
	}

	return runErr
}

// Start starts the cron scheduler
func (cm *CronManager) Start() {
	cm.logger.Println("🚀 Starting cron scheduler...")
	cm.cron.Start()
}

// Stop stops the cron scheduler
func (cm *CronManager) Stop() {
	cm.logger.Println("🛑 Stopping cron scheduler...")
	cm.cron.Stop()
}
