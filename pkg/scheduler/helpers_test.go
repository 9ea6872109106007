package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/require"

	"github.com/umputun/secwatch/pkg/domain"
	"github.com/umputun/secwatch/pkg/scheduler/mocks"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

type testEnv struct {
	sched    *Scheduler
	store    *mocks.SettingsStoreMock
	provider *mocks.ProviderMock
	notifier *mocks.NotifierMock
	clock    *fakeClock
	loc      *time.Location

	mu    sync.Mutex
	saved *domain.Settings
	items map[domain.Source][]domain.Item
	errs  map[domain.Source]error
}

func chicago(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Chicago")
	require.NoError(t, err)
	return loc
}

func newTestEnv(t *testing.T, initial *domain.Settings) *testEnv {
	t.Helper()
	if initial == nil {
		initial = domain.DefaultSettings()
	}
	env := &testEnv{
		loc:   chicago(t),
		items: map[domain.Source][]domain.Item{},
		errs:  map[domain.Source]error{},
	}
	env.clock = &fakeClock{now: time.Date(2024, 3, 11, 7, 0, 0, 0, env.loc)}
	env.store = &mocks.SettingsStoreMock{
		LoadFunc: func(context.Context) (*domain.Settings, error) {
			return initial.Clone(), nil
		},
		SaveFunc: func(_ context.Context, s *domain.Settings) error {
			env.mu.Lock()
			defer env.mu.Unlock()
			env.saved = s.Clone()
			return nil
		},
	}
	env.provider = &mocks.ProviderMock{
		FetchFunc: func(_ context.Context, src domain.Source) ([]domain.Item, error) {
			env.mu.Lock()
			defer env.mu.Unlock()
			if err := env.errs[src]; err != nil {
				return nil, err
			}
			return env.items[src], nil
		},
	}
	env.notifier = &mocks.NotifierMock{
		SendFunc: func(context.Context, domain.ChannelRef, domain.Message) error { return nil },
	}

	sched, err := NewScheduler(context.Background(), Params{
		Store:           env.store,
		Provider:        env.provider,
		Notifier:        env.notifier,
		Clock:           env.clock,
		Channels:        []domain.ChannelRef{"news", "podcasts", "general"},
		Location:        env.loc,
		EpisodeInterval: 6 * time.Hour,
		PollInterval:    time.Minute,
		WeeklyDay:       time.Sunday,
		WeeklyTime:      domain.ClockTime{Hour: 10, Minute: 0},
		DedupWindow:     24 * time.Hour,
		Retry:           RetryPolicy{Attempts: 3, Backoff: 0},
	})
	require.NoError(t, err)
	env.sched = sched
	return env
}

func (e *testEnv) setItems(src domain.Source, items ...domain.Item) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.items[src] = items
}

func (e *testEnv) setErr(src domain.Source, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.errs[src] = err
}

func (e *testEnv) lastSaved() *domain.Settings {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.saved
}

// tick sets the clock and runs timers at local wall-clock time
func (e *testEnv) tick(t time.Time) {
	e.clock.Set(t)
	e.sched.Tick(context.Background(), t)
}

// messages returns contents of sent messages, embeds are rendered as "embed:<title>"
func (e *testEnv) messages() []string {
	var res []string
	for _, c := range e.notifier.SendCalls() {
		switch {
		case c.Msg.Embed != nil:
			res = append(res, "embed:"+c.Msg.Embed.Title)
		default:
			res = append(res, c.Msg.Content)
		}
	}
	return res
}

func (e *testEnv) fetchCount(src domain.Source) int {
	n := 0
	for _, c := range e.provider.FetchCalls() {
		if c.Src == src {
			n++
		}
	}
	return n
}

func channelPtr(c domain.ChannelRef) *domain.ChannelRef { return &c }

func strPtr(s string) *string { return &s }

func newsItem(src domain.Source, title, link string) domain.Item {
	return domain.Item{Title: title, Link: link, Description: title + " description", Source: src}
}

func fakeNow() time.Time {
	return time.Date(2024, 3, 11, 12, 0, 0, 0, time.UTC)
}
