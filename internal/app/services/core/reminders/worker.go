package reminders

import (
	"carelink-service/internal/app/config"
	"carelink-service/internal/app/contracts"
	"carelink-service/internal/pkg/constvars"
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const defaultLeaderLockTTL = 10 * time.Minute

// Worker sends the daily reminders on a cron schedule. Only the instance
// holding the leader lock sends.
type Worker struct {
	log      *zap.Logger
	cfg      *config.InternalConfig
	locker   contracts.LockerService
	reminder contracts.ReminderUsecase
	now      func() time.Time
	cron     *cron.Cron
	runCtx   context.Context
	cancel   context.CancelFunc
}

func NewWorker(log *zap.Logger, cfg *config.InternalConfig, locker contracts.LockerService, reminder contracts.ReminderUsecase) *Worker {
	return &Worker{log: log, cfg: cfg, locker: locker, reminder: reminder, now: time.Now}
}

// Start schedules RunOnce with the configured cron spec.
func (w *Worker) Start(ctx context.Context) error {
	w.runCtx, w.cancel = context.WithCancel(ctx)

	c := cron.New()
	_, err := c.AddFunc(w.cfg.Reminder.CronSpec, func() { w.RunOnce(w.runCtx) })
	if err != nil {
		w.cancel()
		return err
	}
	c.Start()
	w.cron = c

	w.log.Info("reminders.worker started", zap.String(constvars.LoggingCronSpecKey, w.cfg.Reminder.CronSpec))
	return nil
}

// Stop cancels an in-flight run and waits for it to return.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		<-w.cron.Stop().Done()
	}
}

func (w *Worker) RunOnce(ctx context.Context) {
	ttl := time.Duration(w.cfg.Reminder.LeaderLockTTLInMin) * time.Minute
	if ttl <= 0 {
		ttl = defaultLeaderLockTTL
	}

	acquired, token, err := w.locker.TryLock(ctx, constvars.RedisKeyReminderLeaderLock, ttl)
	if err != nil {
		w.log.Warn("reminders.worker leader lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		w.log.Info("reminders.worker leader lock held by another instance")
		return
	}
	defer func() {
		if err := w.locker.Unlock(context.WithoutCancel(ctx), constvars.RedisKeyReminderLeaderLock, token); err != nil {
			w.log.Warn("reminders.worker failed to release leader lock", zap.Error(err))
		}
	}()

	refreshCtx, cancelRefresh := context.WithCancel(ctx)
	defer cancelRefresh()
	go w.keepLock(refreshCtx, token, ttl)

	result, err := w.reminder.SendDailyReminders(ctx, w.now())
	if err != nil {
		w.log.Error("reminders.worker run failed", zap.Error(err))
		return
	}
	w.log.Info("reminders.worker run finished",
		zap.Int("found", result.Found),
		zap.Int("sent", result.Sent),
		zap.Int("failed", result.Failed),
	)
}

// keepLock refreshes the leader lock at half its TTL until ctx is done.
func (w *Worker) keepLock(ctx context.Context, token string, ttl time.Duration) {
	tick := time.NewTicker(ttl / 2)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			if err := w.locker.Refresh(ctx, constvars.RedisKeyReminderLeaderLock, token, ttl); err != nil {
				w.log.Warn("reminders.worker failed to refresh leader lock", zap.Error(err))
			}
		}
	}
}
