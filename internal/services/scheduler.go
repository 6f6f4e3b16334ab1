package services

import (
	"context"
	"log/slog"
	"time"

	"expenseease/internal/config"
	"expenseease/internal/models"
	"expenseease/internal/repositories"
)

const (
	schedulerUserPageSize = 200

	notificationPurgeInterval = 24 * time.Hour
	notificationRetention     = 30 * 24 * time.Hour
)

// Scheduler drives the periodic jobs: feed reconciliation, the weekly budget
// top-up, dynamic budget regeneration, and notification retention. Each job
// runs on its own ticker so a slow sync cannot starve the budget jobs.
type Scheduler struct {
	cfg              config.SchedulerConfig
	syncService      SyncServiceInterface
	budgetService    BudgetServiceInterface
	userRepo         repositories.UserRepositoryInterface
	notificationRepo repositories.NotificationRepositoryInterface
	metrics          MetricsRecorderInterface
	logger           *slog.Logger
}

// NewScheduler creates a new scheduler
func NewScheduler(
	cfg config.SchedulerConfig,
	syncService SyncServiceInterface,
	budgetService BudgetServiceInterface,
	userRepo repositories.UserRepositoryInterface,
	notificationRepo repositories.NotificationRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) *Scheduler {
	return &Scheduler{
		cfg:              cfg,
		syncService:      syncService,
		budgetService:    budgetService,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		metrics:          metrics,
		logger:           logger,
	}
}

// Start launches the job loops. They run until ctx is canceled.
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("starting scheduler",
		slog.Duration("sync_interval", s.cfg.SyncInterval),
		slog.Duration("auto_budget_interval", s.cfg.AutoBudgetInterval),
		slog.Duration("dynamic_budget_interval", s.cfg.DynamicBudgetInterval))

	go s.runLoop(ctx, s.cfg.SyncInterval, "sync", s.runSync)
	go s.runLoop(ctx, s.cfg.AutoBudgetInterval, "auto_budget", s.runAutoBudgets)
	go s.runLoop(ctx, s.cfg.DynamicBudgetInterval, "dynamic_budget", s.runDynamicBudgets)
	go s.runLoop(ctx, notificationPurgeInterval, "notification_purge", s.runNotificationPurge)
}

func (s *Scheduler) runLoop(ctx context.Context, interval time.Duration, name string, job func(context.Context)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler job stopped", slog.String("job", name))
			return
		case <-ticker.C:
			start := time.Now()
			job(ctx)
			s.metrics.RecordProcessingTime("scheduler."+name, time.Since(start))
		}
	}
}

func (s *Scheduler) runSync(ctx context.Context) {
	if err := s.syncService.SyncAll(ctx); err != nil && ctx.Err() == nil {
		s.logger.Error("scheduled sync failed", "error", err)
	}
}

func (s *Scheduler) runAutoBudgets(ctx context.Context) {
	s.forEachUser(ctx, func(user *models.User) {
		if _, err := s.budgetService.AutoCreateBudgets(user.ID); err != nil {
			s.logger.Error("auto budget creation failed",
				"error", err,
				"owner_id", user.ID)
		}
	})
}

func (s *Scheduler) runDynamicBudgets(ctx context.Context) {
	s.forEachUser(ctx, func(user *models.User) {
		for _, period := range []string{models.BudgetPeriodMonthly, models.BudgetPeriodWeekly} {
			if _, err := s.budgetService.GenerateDynamicBudgets(user.ID, period); err != nil {
				s.logger.Error("dynamic budget generation failed",
					"error", err,
					"owner_id", user.ID,
					"period", period)
			}
		}
	})
}

func (s *Scheduler) runNotificationPurge(ctx context.Context) {
	deleted, err := s.notificationRepo.DeleteReadOlderThan(notificationRetention)
	if err != nil {
		s.logger.Error("notification purge failed", "error", err)
		return
	}
	if deleted > 0 {
		s.logger.Info("purged read notifications", slog.Int64("deleted", deleted))
	}
}

// forEachUser pages through all users, stopping between pages on
// cancellation
func (s *Scheduler) forEachUser(ctx context.Context, fn func(*models.User)) {
	offset := 0
	for {
		if ctx.Err() != nil {
			return
		}

		users, _, err := s.userRepo.List(offset, schedulerUserPageSize)
		if err != nil {
			s.logger.Error("failed to list users for scheduled job", "error", err)
			return
		}
		if len(users) == 0 {
			return
		}

		for i := range users {
			fn(&users[i])
		}

		offset += len(users)
	}
}
