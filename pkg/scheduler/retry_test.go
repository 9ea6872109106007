package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/secwatch/pkg/domain"
	"github.com/umputun/secwatch/pkg/scheduler/mocks"
)

func TestFetchWithRetry(t *testing.T) {
	policy := RetryPolicy{Attempts: 3, Backoff: 0}
	good := []domain.Item{{Title: "t", Link: "https://x/1", Source: domain.SourceWired}}

	t.Run("succeeds on third attempt", func(t *testing.T) {
		calls := 0
		p := &mocks.ProviderMock{FetchFunc: func(context.Context, domain.Source) ([]domain.Item, error) {
			calls++
			switch calls {
			case 1:
				return nil, errors.New("timeout")
			case 2:
				return []domain.Item{}, nil
			default:
				return good, nil
			}
		}}
		items, err := FetchWithRetry(context.Background(), p, domain.SourceWired, policy)
		require.NoError(t, err)
		assert.Equal(t, good, items)
		assert.Len(t, p.FetchCalls(), 3)
	})

	t.Run("all attempts fail", func(t *testing.T) {
		p := &mocks.ProviderMock{FetchFunc: func(context.Context, domain.Source) ([]domain.Item, error) {
			return nil, errors.New("503")
		}}
		items, err := FetchWithRetry(context.Background(), p, domain.SourceKrebs, policy)
		require.Error(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
		assert.Len(t, p.FetchCalls(), 3)

		var fe *domain.FetchError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, domain.SourceKrebs, fe.Source)
		assert.Contains(t, err.Error(), "503")
	})

	t.Run("empty results count as failures", func(t *testing.T) {
		p := &mocks.ProviderMock{FetchFunc: func(context.Context, domain.Source) ([]domain.Item, error) {
			return nil, nil
		}}
		items, err := FetchWithRetry(context.Background(), p, domain.SourceArsTechnica, policy)
		require.Error(t, err)
		assert.Empty(t, items)
		assert.Len(t, p.FetchCalls(), 3)
		assert.ErrorIs(t, err, errEmptyResult)
	})

	t.Run("first attempt succeeds", func(t *testing.T) {
		p := &mocks.ProviderMock{FetchFunc: func(context.Context, domain.Source) ([]domain.Item, error) {
			return good, nil
		}}
		items, err := FetchWithRetry(context.Background(), p, domain.SourceWired, policy)
		require.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Len(t, p.FetchCalls(), 1)
	})

	t.Run("provider fetch error is kept", func(t *testing.T) {
		p := &mocks.ProviderMock{FetchFunc: func(_ context.Context, src domain.Source) ([]domain.Item, error) {
			return nil, &domain.FetchError{Source: src, Err: errors.New("parse html")}
		}}
		_, err := FetchWithRetry(context.Background(), p, domain.SourceWired, RetryPolicy{Attempts: 2})
		var fe *domain.FetchError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, "fetch WIRED: parse html", fe.Error())
		assert.Len(t, p.FetchCalls(), 2)
	})

	t.Run("backoff between attempts", func(t *testing.T) {
		p := &mocks.ProviderMock{FetchFunc: func(context.Context, domain.Source) ([]domain.Item, error) {
			return nil, errors.New("fail")
		}}
		st := time.Now()
		_, err := FetchWithRetry(context.Background(), p, domain.SourceWired, RetryPolicy{Attempts: 3, Backoff: 20 * time.Millisecond})
		require.Error(t, err)
		assert.GreaterOrEqual(t, time.Since(st), 40*time.Millisecond)
	})

	t.Run("canceled context stops retries", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		p := &mocks.ProviderMock{FetchFunc: func(context.Context, domain.Source) ([]domain.Item, error) {
			cancel()
			return nil, errors.New("fail")
		}}
		_, err := FetchWithRetry(ctx, p, domain.SourceWired, RetryPolicy{Attempts: 3, Backoff: time.Second})
		require.Error(t, err)
		assert.Len(t, p.FetchCalls(), 1)
	})
}

func TestDefaultRetryPolicy(t *testing.T) {
	p := DefaultRetryPolicy()
	assert.Equal(t, 3, p.Attempts)
	assert.Equal(t, 2*time.Second, p.Backoff)
}
