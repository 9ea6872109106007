package scheduler

import (
	"context"
	"errors"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"

	"github.com/umputun/secwatch/pkg/domain"
)

// errEmptyResult marks a successful fetch without items, counted as a failed attempt
var errEmptyResult = errors.New("no items returned")

// RetryPolicy defines how many times a source is fetched and the pause between attempts
type RetryPolicy struct {
	Attempts int
	Backoff  time.Duration
}

// DefaultRetryPolicy is 3 attempts with 2s between them
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{Attempts: 3, Backoff: 2 * time.Second}
}

// FetchWithRetry fetches src until a non-empty result or attempts are exhausted.
// On exhaustion it returns an empty slice and a *domain.FetchError with the last failure.
func FetchWithRetry(ctx context.Context, provider Provider, src domain.Source, policy RetryPolicy) ([]domain.Item, error) {
	if policy.Attempts < 1 {
		policy.Attempts = 1
	}

	var items []domain.Item
	attempt := 0
	err := repeater.NewFixed(policy.Attempts, policy.Backoff).Do(ctx, func() error {
		attempt++
		res, err := provider.Fetch(ctx, src)
		if err != nil {
			lgr.Printf("[DEBUG] fetch %s, attempt %d/%d failed: %v", src.Name(), attempt, policy.Attempts, err)
			return err
		}
		if len(res) == 0 {
			lgr.Printf("[DEBUG] fetch %s, attempt %d/%d returned no items", src.Name(), attempt, policy.Attempts)
			return errEmptyResult
		}
		items = res
		return nil
	})
	if err != nil {
		lgr.Printf("[WARN] failed to fetch %s after %d attempts: %v", src.Name(), attempt, err)
		var fe *domain.FetchError
		if errors.As(err, &fe) {
			return []domain.Item{}, fe
		}
		return []domain.Item{}, &domain.FetchError{Source: src, Err: err}
	}
	return items, nil
}
