package ratelimiter

import (
	"aesthetics-service/internal/app/contracts"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ResourceLimiter is a fixed-window counter limiter keyed by group and
// resource. Counters live in a CounterStore with a TTL of one window.
type ResourceLimiter struct {
	store contracts.CounterStore
	log   *zap.Logger
}

func NewResourceLimiter(store contracts.CounterStore, log *zap.Logger) *ResourceLimiter {
	return &ResourceLimiter{store: store, log: log}
}

type ApplyResourceLimiterInput struct {
	// ResourceName is the entity being limited, e.g. a provider ID.
	ResourceName string
	// LimiterGroupName namespaces the key, e.g. scan-upload.
	LimiterGroupName string
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

// ApplyResourceLimiter counts one hit for the resource in the current window.
// Once the quota is spent it reports the seconds left until the next window.
func (l *ResourceLimiter) ApplyResourceLimiter(ctx context.Context, in *ApplyResourceLimiterInput) (*ApplyResourceLimiterOutput, error) {
	if in == nil {
		return &ApplyResourceLimiterOutput{Allowed: false}, errors.New("nil limiter input")
	}

	resource := strings.ToLower(strings.TrimSpace(in.ResourceName))
	group := strings.ToUpper(strings.TrimSpace(in.LimiterGroupName))
	windowSec := in.WindowDurationSec
	if windowSec <= 0 {
		windowSec = 60
	}
	if in.MaxQuota <= 0 {
		return &ApplyResourceLimiterOutput{Allowed: true}, nil
	}
	if resource == "" || group == "" {
		return &ApplyResourceLimiterOutput{Allowed: false, RetryAfterSecs: windowSec}, nil
	}

	now := in.NowUTC
	if now.IsZero() {
		now = time.Now().UTC()
	}

	windowID := now.Unix() / int64(windowSec)
	key := fmt.Sprintf("%s:%s:%d", group, resource, windowID)

	ttl := time.Duration(windowSec)*time.Second + time.Second
	count, err := l.store.IncrementWithTTL(ctx, key, ttl)
	if err != nil {
		l.log.Error("ResourceLimiter.ApplyResourceLimiter increment failed",
			zap.String("key", key),
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
