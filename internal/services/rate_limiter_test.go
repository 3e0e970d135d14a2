package services

import (
	"context"
	"testing"
	"time"

	"github.com/icb-gaia/app-cadastro/internal/logging"
)

func init() {
	logging.InitLogger()
}

func TestRetryAfterSeconds(t *testing.T) {
	now := time.Now()
	cooldown := 30 * time.Second

	tests := []struct {
		name string
		last time.Time
		want int
	}{
		{"Just submitted", now, 30},
		{"Ten seconds ago", now.Add(-10 * time.Second), 20},
		{"Partial second rounds up", now.Add(-10500 * time.Millisecond), 20},
		{"Window just elapsed", now.Add(-30 * time.Second), 0},
		{"Long ago", now.Add(-5 * time.Minute), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := retryAfterSeconds(tt.last, now, cooldown); got != tt.want {
				t.Errorf("retryAfterSeconds() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSubmissionLimiter_NilRedisAllows(t *testing.T) {
	limiter := NewSubmissionLimiter(nil, 30*time.Second, 5*time.Minute)

	allowed, retryAfter := limiter.Check(context.Background(), "203.0.113.7")
	if !allowed {
		t.Error("Check() without Redis should allow the submission")
	}
	if retryAfter != 0 {
		t.Errorf("Check() without Redis retryAfter = %d, want 0", retryAfter)
	}

	// Must not panic
	limiter.Remember(context.Background(), "203.0.113.7")
}

func TestRateLimitKey(t *testing.T) {
	if got := rateLimitKey("203.0.113.7"); got != "cadastro:rate_limit:203.0.113.7" {
		t.Errorf("rateLimitKey() = %q", got)
	}
}
