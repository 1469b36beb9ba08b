package ebay

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"

	domain "github.com/donaldgifford/closette/pkg/types"
)

// ErrQuotaExhausted is returned once the daily Finding API allowance is
// used up. The provider then contributes no results until the window rolls.
var ErrQuotaExhausted = errors.New("eBay daily call quota exhausted")

const (
	defaultCallsPerSecond = 5
	defaultBurst          = 5
	defaultDailyCalls     = domain.EbayDailyCalls
)

// Quota paces Finding API calls with a token bucket and caps them per
// rolling 24-hour window. The window starts at the first call after the
// previous one expired.
type Quota struct {
	limiter *rate.Limiter
	daily   int

	mu      sync.Mutex
	used    int
	resetAt time.Time
	now     func() time.Time
}

// QuotaOption configures the Quota.
type QuotaOption func(*Quota)

// WithQuotaClock overrides the time source.
func WithQuotaClock(now func() time.Time) QuotaOption {
	return func(q *Quota) {
		q.now = now
	}
}

// NewQuota creates a Quota. Non-positive arguments fall back to the
// Finding API defaults.
func NewQuota(perSecond float64, burst, daily int, opts ...QuotaOption) *Quota {
	if perSecond <= 0 {
		perSecond = defaultCallsPerSecond
	}
	if burst <= 0 {
		burst = defaultBurst
	}
	if daily <= 0 {
		daily = defaultDailyCalls
	}

	q := &Quota{
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
		daily:   daily,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Acquire reserves one call. It waits for a token and fails fast with
// ErrQuotaExhausted when the daily allowance is spent.
func (q *Quota) Acquire(ctx context.Context) error {
	q.mu.Lock()
	now := q.now()
	if q.resetAt.IsZero() || now.After(q.resetAt) {
		q.used = 0
		q.resetAt = now.Add(24 * time.Hour)
	}
	if q.used >= q.daily {
		used := q.used
		q.mu.Unlock()
		return fmt.Errorf("%w (%d/%d)", ErrQuotaExhausted, used, q.daily)
	}
	q.used++
	q.mu.Unlock()

	if err := q.limiter.Wait(ctx); err != nil {
		q.mu.Lock()
		q.used--
		q.mu.Unlock()
		return fmt.Errorf("waiting for rate limiter: %w", err)
	}
	return nil
}

// Remaining returns the calls left in the current window.
func (q *Quota) Remaining() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	if !q.resetAt.IsZero() && q.now().After(q.resetAt) {
		return q.daily
	}
	return q.daily - q.used
}

// ResetAt returns when the current window ends; zero before the first call.
func (q *Quota) ResetAt() time.Time {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.resetAt
}
