package ratelimiter

import (
	"carelink-service/internal/app/contracts"
	"carelink-service/internal/pkg/constvars"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

const defaultWindowSec = 60

// ResourceLimiter is a fixed-window counter stored in Redis. The counter key
// expires with its window.
type ResourceLimiter struct {
	redis contracts.RedisRepository
	log   *zap.Logger
}

func NewResourceLimiter(redis contracts.RedisRepository, log *zap.Logger) *ResourceLimiter {
	return &ResourceLimiter{redis: redis, log: log}
}

type ApplyResourceLimiterInput struct {
	// ResourceName is the limited entity, e.g. a sign-in email.
	ResourceName string
	// LimiterGroupName namespaces the key, e.g. SIGNIN.
	LimiterGroupName  string
	WindowDurationSec int
	// MaxQuota of zero or less disables the limiter.
	MaxQuota int
	// NowUTC defaults to time.Now().UTC().
	NowUTC time.Time
}

type ApplyResourceLimiterOutput struct {
	Allowed        bool
	RetryAfterSecs int
}

func (l *ResourceLimiter) ApplyResourceLimiter(ctx context.Context, in *ApplyResourceLimiterInput) (*ApplyResourceLimiterOutput, error) {
	if in == nil {
		return &ApplyResourceLimiterOutput{Allowed: false}, errors.New("nil limiter input")
	}

	resource, group, windowSec, now := normalizeInput(in)
	if in.MaxQuota <= 0 {
		return &ApplyResourceLimiterOutput{Allowed: true}, nil
	}
	if resource == "" || group == "" {
		return &ApplyResourceLimiterOutput{Allowed: false, RetryAfterSecs: windowSec}, nil
	}

	windowID := now.Unix() / int64(windowSec)
	key := WindowKey(group, resource, windowID)

	ttl := time.Duration(windowSec)*time.Second + time.Second
	count, err := l.redis.IncrementWithTTL(ctx, key, ttl)
	if err != nil {
		l.log.Error("ResourceLimiter.ApplyResourceLimiter increment failed",
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return &ApplyResourceLimiterOutput{Allowed: false}, err
	}

	if count > in.MaxQuota {
		nextWindowStart := (windowID + 1) * int64(windowSec)
		return &ApplyResourceLimiterOutput{
			Allowed:        false,
			RetryAfterSecs: int(nextWindowStart-now.Unix()) + 1,
		}, nil
	}
	return &ApplyResourceLimiterOutput{Allowed: true}, nil
}

// ResetResourceLimiter clears the counter of the window that in.NowUTC falls
// in.
func (l *ResourceLimiter) ResetResourceLimiter(ctx context.Context, in *ApplyResourceLimiterInput) error {
	if in == nil {
		return errors.New("nil limiter input")
	}

	resource, group, windowSec, now := normalizeInput(in)
	if in.MaxQuota <= 0 || resource == "" || group == "" {
		return nil
	}

	key := WindowKey(group, resource, now.Unix()/int64(windowSec))
	if err := l.redis.Delete(ctx, key); err != nil {
		l.log.Error("ResourceLimiter.ResetResourceLimiter delete failed",
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func normalizeInput(in *ApplyResourceLimiterInput) (resource, group string, windowSec int, now time.Time) {
	resource = strings.ToLower(strings.TrimSpace(in.ResourceName))
	group = strings.ToUpper(strings.TrimSpace(in.LimiterGroupName))
	windowSec = in.WindowDurationSec
	if windowSec <= 0 {
		windowSec = defaultWindowSec
	}
	now = in.NowUTC
	if now.IsZero() {
		now = time.Now().UTC()
	}
	return resource, group, windowSec, now
}

func WindowKey(group, resource string, windowID int64) string {
	return fmt.Sprintf("%s:%s:%d", group, resource, windowID)
}
