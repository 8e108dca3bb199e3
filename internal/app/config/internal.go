package config

type InternalConfig struct {
	App      App
	JWT      AppJWT
	Minio    AppMinio
	Mailer   AppMailer
	RabbitMQ AppRabbitMQ
	Reminder AppReminder
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Address                    string
	Timezone                   string
	EndpointPrefix             string
	AllowedOrigins             string
	MaxRequests                int
	ShutdownTimeoutInSeconds   int
	RequestBodyLimitInMegabyte int
	SuperadminAPIKey           string
	SuperadminAPIKeyRateLimit  int
	// SigninMaxAttempts is the number of sign-in attempts per email allowed in one window
	SigninMaxAttempts     int
	SigninWindowInSeconds int
}

type AppJWT struct {
	Secret        string
	ExpTimeInHour int
}

type AppMinio struct {
	BucketName              string
	MaxUploadSizeInMegabyte int
	// PublicBaseUrl, when set, is used to build media URLs instead of presigned ones
	PublicBaseUrl            string
	PresignedUrlExpiryInHour int
}

type AppMailer struct {
	EmailSender string
}

type AppRabbitMQ struct {
	MailerQueue string
}

type AppReminder struct {
	CronSpec           string
	Delivery           string
	MaxSendsPerSecond  int
	LeaderLockTTLInMin int
}
