package config

import (
	"carelink-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:       utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:       utils.GetEnvString("MONGODB_HOST", "localhost"),
			Username:   utils.GetEnvString("MONGODB_USERNAME", ""),
			Password:   utils.GetEnvString("MONGODB_PASSWORD", ""),
			DbName:     utils.GetEnvString("MONGODB_DB_NAME", "carelink"),
			ReplicaSet: utils.GetEnvString("MONGODB_REPLICA_SET", ""),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		SMTP: SMTP{
			Host:     utils.GetEnvString("SMTP_HOST", "localhost"),
			Port:     utils.GetEnvInt("SMTP_PORT", 2525),
			Username: utils.GetEnvString("SMTP_USERNAME", ""),
			Password: utils.GetEnvString("SMTP_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", ""),
			Password: utils.GetEnvString("MINIO_PASSWORD", ""),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", "8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "UTC"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			AllowedOrigins:             utils.GetEnvString("APP_ALLOWED_ORIGINS", "*"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUESTS", 20),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 10),
			SuperadminAPIKey:           utils.GetEnvString("APP_SUPERADMIN_API_KEY", ""),
			SuperadminAPIKeyRateLimit:  utils.GetEnvInt("APP_SUPERADMIN_API_KEY_RATE_LIMIT", 100),
			SigninMaxAttempts:          utils.GetEnvInt("APP_SIGNIN_MAX_ATTEMPTS", 10),
			SigninWindowInSeconds:      utils.GetEnvInt("APP_SIGNIN_WINDOW_IN_SECONDS", 300),
		},
		JWT: AppJWT{
			Secret:        utils.GetEnvString("JWT_SECRET", ""),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 1),
		},
		Minio: AppMinio{
			BucketName:               utils.GetEnvString("APP_MINIO_BUCKET_NAME", "histories"),
			MaxUploadSizeInMegabyte:  utils.GetEnvInt("APP_MINIO_MAX_UPLOAD_SIZE_IN_MEGABYTE", 10),
			PublicBaseUrl:            utils.GetEnvString("APP_MINIO_PUBLIC_BASE_URL", ""),
			PresignedUrlExpiryInHour: utils.GetEnvInt("APP_MINIO_PRESIGNED_URL_EXPIRY_IN_HOUR", 24),
		},
		Mailer: AppMailer{
			EmailSender: utils.GetEnvString("APP_MAILER_EMAIL_SENDER", "noreply@carelink.local"),
		},
		RabbitMQ: AppRabbitMQ{
			MailerQueue: utils.GetEnvString("APP_RABBITMQ_MAILER_QUEUE", "mailer"),
		},
		Reminder: AppReminder{
			CronSpec:           utils.GetEnvString("REMINDER_CRON_SPEC", "0 8 * * *"),
			Delivery:           utils.GetEnvString("REMINDER_DELIVERY", "smtp"),
			MaxSendsPerSecond:  utils.GetEnvInt("REMINDER_MAX_SENDS_PER_SECOND", 5),
			LeaderLockTTLInMin: utils.GetEnvInt("REMINDER_LEADER_LOCK_TTL_IN_MINUTES", 10),
		},
	}
}
