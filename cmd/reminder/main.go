package main

import (
	"carelink-service/internal/app/config"
	"carelink-service/internal/app/contracts"
	"carelink-service/internal/app/drivers/database"
	"carelink-service/internal/app/drivers/logger"
	smtpDriver "carelink-service/internal/app/drivers/mailer"
	"carelink-service/internal/app/drivers/messaging"
	"carelink-service/internal/app/services/core/reminders"
	"carelink-service/internal/app/services/core/reservations"
	"carelink-service/internal/app/services/shared/locker"
	"carelink-service/internal/app/services/shared/mailer"
	"carelink-service/internal/app/services/shared/redis"
	"carelink-service/internal/pkg/constvars"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	bootstrap := &config.Bootstrap{
		MongoDB:        database.NewMongoDB(driverConfig),
		Redis:          database.NewRedisClient(driverConfig),
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	mailerService, err := newMailerService(bootstrap)
	if err != nil {
		log.Fatal("Failed to set up reminder delivery", zap.Error(err))
	}

	reservationMongoRepository := reservations.NewReservationMongoRepository(bootstrap.MongoDB, driverConfig.MongoDB.DbName)
	reminderUsecase, err := reminders.NewReminderUsecase(reservationMongoRepository, mailerService, internalConfig, log)
	if err != nil {
		log.Fatal("Failed to create reminder usecase", zap.Error(err))
	}

	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockService := locker.NewLockService(redisRepository, log)

	worker := reminders.NewWorker(log, internalConfig, lockService, reminderUsecase)
	err = worker.Start(context.Background())
	if err != nil {
		log.Fatal("Failed to start reminder worker", zap.Error(err))
	}
	bootstrap.WorkerStop = worker.Stop

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Failed to release resources", zap.Error(err))
	}
	log.Info("Reminder worker exiting")
}

func newMailerService(bootstrap *config.Bootstrap) (contracts.MailerService, error) {
	switch bootstrap.InternalConfig.Reminder.Delivery {
	case constvars.ReminderDeliverySMTP:
		client := smtpDriver.NewSMTPClient(bootstrap.DriverConfig)
		return mailer.NewSMTPMailerService(client, bootstrap.InternalConfig.Mailer.EmailSender), nil
	case constvars.ReminderDeliveryQueue:
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(bootstrap.DriverConfig)
		channel := messaging.DeclareQueue(bootstrap.RabbitMQ, bootstrap.InternalConfig.RabbitMQ.MailerQueue)
		return mailer.NewQueueMailerService(channel, bootstrap.InternalConfig.RabbitMQ.MailerQueue), nil
	default:
		return nil, fmt.Errorf("unknown reminder delivery %q", bootstrap.InternalConfig.Reminder.Delivery)
	}
}
