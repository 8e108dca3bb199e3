package contracts

import (
	"context"
	"time"
)

type ReminderResult struct {
	Found  int
	Sent   int
	Failed int
}

type ReminderUsecase interface {
	// SendDailyReminders notifies every patient holding a reservation on the day of now.
	SendDailyReminders(ctx context.Context, now time.Time) (*ReminderResult, error)
}
