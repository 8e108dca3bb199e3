package reminders

import (
	"carelink-service/internal/app/config"
	"carelink-service/internal/app/contracts"
	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/dto/requests"
	"carelink-service/internal/pkg/utils"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type reminderUsecase struct {
	ReservationRepository contracts.ReservationRepository
	MailerService         contracts.MailerService
	Limiter               *rate.Limiter
	Location              *time.Location
	Log                   *zap.Logger
}

func NewReminderUsecase(
	reservationRepository contracts.ReservationRepository,
	mailerService contracts.MailerService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) (contracts.ReminderUsecase, error) {
	location := time.UTC
	if internalConfig.App.Timezone != "" {
		loaded, err := time.LoadLocation(internalConfig.App.Timezone)
		if err != nil {
			return nil, err
		}
		location = loaded
	}

	limit := rate.Inf
	if internalConfig.Reminder.MaxSendsPerSecond > 0 {
		limit = rate.Limit(internalConfig.Reminder.MaxSendsPerSecond)
	}

	return &reminderUsecase{
		ReservationRepository: reservationRepository,
		MailerService:         mailerService,
		Limiter:               rate.NewLimiter(limit, 1),
		Location:              location,
		Log:                   logger,
	}, nil
}

// SendDailyReminders mails every patient holding a reservation on the day of
// now. A failed send is counted and logged; the batch keeps going.
func (uc *reminderUsecase) SendDailyReminders(ctx context.Context, now time.Time) (*contracts.ReminderResult, error) {
	from, to := utils.DayWindow(now, uc.Location)
	uc.Log.Info("reminderUsecase.SendDailyReminders called",
		zap.Time("from", from),
		zap.Time("to", to),
	)

	reservations, err := uc.ReservationRepository.FindBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	result := &contracts.ReminderResult{Found: len(reservations)}
	for _, reservation := range reservations {
		if reservation.PatientEmail == "" {
			result.Failed++
			uc.Log.Warn("reminderUsecase.SendDailyReminders reservation without patient email",
				zap.String(constvars.LoggingPatientIDKey, reservation.PatientID),
			)
			continue
		}

		err := uc.Limiter.Wait(ctx)
		if err != nil {
			return result, err
		}

		payload := &requests.EmailPayload{
			To:      []string{reservation.PatientEmail},
			Subject: constvars.EmailSubjectAppointmentReminder,
			Body: fmt.Sprintf(constvars.EmailBodyAppointmentReminder,
				reservation.PatientName,
				reservation.PractitionerName,
				reservation.Date.In(uc.Location).Format(constvars.EmailReminderDateLayout),
			),
		}
		err = uc.MailerService.SendEmail(ctx, payload)
		if err != nil {
			result.Failed++
			uc.Log.Error("reminderUsecase.SendDailyReminders failed to send reminder",
				zap.String(constvars.LoggingPatientIDKey, reservation.PatientID),
				zap.String(constvars.LoggingEmailKey, reservation.PatientEmail),
				zap.Error(err),
			)
			continue
		}
		result.Sent++
	}

	uc.Log.Info("reminderUsecase.SendDailyReminders finished",
		zap.Int("found", result.Found),
		zap.Int("sent", result.Sent),
		zap.Int("failed", result.Failed),
	)
	return result, nil
}
