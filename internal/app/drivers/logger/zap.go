package logger

import (
	"carelink-service/internal/app/config"
	"carelink-service/internal/pkg/constvars"
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func NewZapLogger(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) *zap.Logger {
	cfg := zap.Config{
		Level:         zap.NewAtomicLevelAt(ParseLevel(driverConfig.Logger.Level)),
		Development:   internalConfig.App.Env == constvars.AppDevelopmentEnvironment,
		Encoding:      "json",
		EncoderConfig: encoderConfig(),
		InitialFields: map[string]interface{}{
			"service": "carelink-service",
			"version": internalConfig.App.Version,
		},
	}
	cfg.OutputPaths, cfg.ErrorOutputPaths = outputPaths(driverConfig, internalConfig.App.Env)

	zapLogger, err := cfg.Build()
	if err != nil {
		log.Fatalf("Error while initializing zap logger: %v", err)
	}
	return zapLogger
}

func ParseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zap.DebugLevel
	case "info":
		return zap.InfoLevel
	case "warn":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

func outputPaths(driverConfig *config.DriverConfig, env string) ([]string, []string) {
	if env == constvars.AppProductionEnvironment {
		return []string{"stdout", driverConfig.Logger.OutputFileName},
			[]string{"stderr", driverConfig.Logger.OutputErrorFileName}
	}
	return []string{"stdout"}, []string{"stderr"}
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}
