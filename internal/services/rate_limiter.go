package services

import (
	"context"
	"strconv"
	"time"

	"github.com/icb-gaia/app-cadastro/internal/logging"
	"github.com/icb-gaia/app-cadastro/internal/redisclient"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// SubmissionLimiter throttles public submissions per source IP using an
// expiring Redis marker. The marker stores the unix-milli timestamp of the
// last accepted submission; a submission inside the cooldown window is
// rejected with the remaining wait time. An unavailable Redis degrades to
// allow: the cooldown is an abuse brake, not a security control.
type SubmissionLimiter struct {
	redis     *redisclient.Client
	cooldown  time.Duration
	markerTTL time.Duration
}

// NewSubmissionLimiter creates a new submission limiter
func NewSubmissionLimiter(client *redisclient.Client, cooldown, markerTTL time.Duration) *SubmissionLimiter {
	return &SubmissionLimiter{
		redis:     client,
		cooldown:  cooldown,
		markerTTL: markerTTL,
	}
}

// Check reports whether a submission from ip is allowed and, when it is not,
// how many seconds the caller should wait before retrying
func (l *SubmissionLimiter) Check(ctx context.Context, ip string) (bool, int) {
	if l.redis == nil {
		return true, 0
	}

	val, err := l.redis.Get(ctx, rateLimitKey(ip)).Result()
	if err == redis.Nil {
		return true, 0
	}
	if err != nil {
		logging.Logger.Warn("rate limit check unavailable, allowing submission",
			zap.String("ip", ip),
			zap.Error(err))
		return true, 0
	}

	millis, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return true, 0
	}

	retryAfter := retryAfterSeconds(time.UnixMilli(millis), time.Now(), l.cooldown)
	if retryAfter > 0 {
		return false, retryAfter
	}
	return true, 0
}

// Remember refreshes the marker for ip after an accepted submission
func (l *SubmissionLimiter) Remember(ctx context.Context, ip string) {
	if l.redis == nil {
		return
	}

	now := time.Now().UnixMilli()
	if err := l.redis.Set(ctx, rateLimitKey(ip), strconv.FormatInt(now, 10), l.markerTTL).Err(); err != nil {
		logging.Logger.Warn("failed to store rate limit marker",
			zap.String("ip", ip),
			zap.Error(err))
	}
}

func rateLimitKey(ip string) string {
	return "cadastro:rate_limit:" + ip
}

// retryAfterSeconds returns the whole seconds remaining in the cooldown
// window, rounded up, or zero when the window has elapsed
func retryAfterSeconds(last, now time.Time, cooldown time.Duration) int {
	remaining := cooldown - now.Sub(last)
	if remaining <= 0 {
		return 0
	}
	return int((remaining + time.Second - 1) / time.Second)
}
