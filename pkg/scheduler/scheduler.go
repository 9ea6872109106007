// Package scheduler runs the digest, episode watch and weekly summary timers and
// executes user commands. All of them share one settings aggregate guarded by a mutex.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/secwatch/pkg/dedup"
	"github.com/umputun/secwatch/pkg/domain"
)

//go:generate moq -out mocks/provider.go -pkg mocks -skip-ensure -fmt goimports . Provider
//go:generate moq -out mocks/notifier.go -pkg mocks -skip-ensure -fmt goimports . Notifier
//go:generate moq -out mocks/settings_store.go -pkg mocks -skip-ensure -fmt goimports . SettingsStore

// saveTimeout limits a single settings write, it is not tied to the caller context
// so a shutdown can't interrupt the last save
const saveTimeout = 10 * time.Second

// Provider returns normalized items of a source
type Provider interface {
	Fetch(ctx context.Context, src domain.Source) ([]domain.Item, error)
}

// Notifier delivers a rendered message to a channel
type Notifier interface {
	Send(ctx context.Context, channel domain.ChannelRef, msg domain.Message) error
}

// SettingsStore loads and saves the whole settings aggregate
type SettingsStore interface {
	Load(ctx context.Context) (*domain.Settings, error)
	Save(ctx context.Context, s *domain.Settings) error
}

// Params of the scheduler
type Params struct {
	Store    SettingsStore
	Provider Provider
	Notifier Notifier
	Clock    Clock // defaults to wall clock

	// channels commands may target, nil accepts any name
	Channels []domain.ChannelRef

	Location        *time.Location // zone of digest and weekly times
	EpisodeInterval time.Duration
	PollInterval    time.Duration
	WeeklyDay       time.Weekday
	WeeklyTime      domain.ClockTime
	DedupWindow     time.Duration
	Retry           RetryPolicy
}

// Scheduler owns the settings aggregate and runs timers and commands against it
type Scheduler struct {
	store    SettingsStore
	provider Provider
	notifier Notifier
	clock    Clock
	channels map[domain.ChannelRef]bool // nil accepts any

	loc          *time.Location
	pollInterval time.Duration
	weeklyDay    time.Weekday
	weeklyTime   domain.ClockTime
	retry        RetryPolicy

	mu         sync.Mutex // guards settings, dedup and lastDigest, never held while sending
	settings   *domain.Settings
	dedup      *dedup.Store
	lastDigest time.Time

	tickMu       sync.Mutex // serializes Tick, guards triggers
	episodeTimer intervalTrigger
	digestTimer  minuteTrigger
	weeklyTimer  minuteTrigger

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

type fetchResult struct {
	items []domain.Item
	err   error
}

// NewScheduler loads settings from the store and makes a scheduler
func NewScheduler(ctx context.Context, params Params) (*Scheduler, error) {
	if params.Clock == nil {
		params.Clock = realClock{}
	}
	if params.Location == nil {
		params.Location = time.UTC
	}
	if params.EpisodeInterval <= 0 {
		params.EpisodeInterval = 6 * time.Hour
	}
	if params.PollInterval <= 0 {
		params.PollInterval = time.Minute
	}
	if params.Retry.Attempts == 0 {
		params.Retry = DefaultRetryPolicy()
	}

	settings, err := params.Store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	settings.Normalize()

	s := &Scheduler{
		store:        params.Store,
		provider:     params.Provider,
		notifier:     params.Notifier,
		clock:        params.Clock,
		loc:          params.Location,
		pollInterval: params.PollInterval,
		weeklyDay:    params.WeeklyDay,
		weeklyTime:   params.WeeklyTime,
		retry:        params.Retry,
		settings:     settings,
		episodeTimer: intervalTrigger{name: "episode-watch", interval: params.EpisodeInterval},
		digestTimer:  minuteTrigger{name: "digest"},
		weeklyTimer:  minuteTrigger{name: "weekly"},
	}
	if params.Channels != nil {
		s.channels = make(map[domain.ChannelRef]bool, len(params.Channels))
		for _, ch := range params.Channels {
			s.channels[ch] = true
		}
	}
	s.dedup = dedup.New(settings.SentItems, params.DedupWindow, s.saveSettings)
	settings.SentItems = s.dedup.Records()

	lgr.Printf("[DEBUG] settings loaded, %d tracked links, %d weekly items, times %v",
		s.dedup.Len(), len(settings.WeeklyAccumulator), settings.NotificationTimes)
	return s, nil
}

// Start runs the timer loop until Stop is called or ctx is canceled
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.loop(ctx)

	lgr.Printf("[INFO] scheduler started with poll interval %v, episode interval %v, timezone %s",
		s.pollInterval, s.episodeTimer.interval, s.loc)
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

func (s *Scheduler) loop(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	// run immediately on start
	s.Tick(ctx, s.clock.Now())

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Tick(ctx, s.clock.Now())
		}
	}
}

// Tick evaluates all timers for the instant now and runs the due ones.
// Digest and weekly times are matched in the scheduler's location.
func (s *Scheduler) Tick(ctx context.Context, now time.Time) {
	s.tickMu.Lock()
	defer s.tickMu.Unlock()

	if ctx.Err() != nil {
		return
	}

	if s.episodeTimer.check(now) {
		s.episodeTimer.fire(now, func() { s.checkEpisodes(ctx) })
	}

	local := now.In(s.loc)
	s.mu.Lock()
	times := append([]string{}, s.settings.NotificationTimes...)
	s.mu.Unlock()

	if s.digestTimer.check(local, matchesAny(times, local)) {
		s.digestTimer.fire(func() {
			lgr.Printf("[INFO] digest due at %s", local.Format(minuteKeyFormat))
			if _, err := s.runDigest(ctx); err != nil {
				lgr.Printf("[DEBUG] digest skipped: %v", err)
			}
		})
	}

	weeklyDue := local.Weekday() == s.weeklyDay && s.weeklyTime.Matches(local)
	if s.weeklyTimer.check(local, weeklyDue) {
		s.weeklyTimer.fire(func() {
			lgr.Printf("[INFO] weekly summary due at %s", local.Format(minuteKeyFormat))
			s.runWeekly(ctx)
		})
	}
}

// matchesAny reports whether t falls into one of the HH:MM times
func matchesAny(times []string, t time.Time) bool {
	for _, v := range times {
		ct, err := domain.ParseClockTime(v)
		if err != nil {
			lgr.Printf("[WARN] ignoring invalid notification time %q", v)
			continue
		}
		if ct.Matches(t) {
			return true
		}
	}
	return false
}

// fetchAll fetches sources concurrently, results are in the order of srcs
func (s *Scheduler) fetchAll(ctx context.Context, srcs []domain.Source) []fetchResult {
	res := make([]fetchResult, len(srcs))
	var g errgroup.Group
	for i, src := range srcs {
		g.Go(func() error {
			items, err := FetchWithRetry(ctx, s.provider, src, s.retry)
			res[i] = fetchResult{items: items, err: err}
			return nil
		})
	}
	_ = g.Wait()
	return res
}

// saveSettings writes the settings aggregate. Must be called with mu held.
func (s *Scheduler) saveSettings() error {
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()
	return s.store.Save(ctx, s.settings)
}

// persist saves settings and logs a failure. The in-memory state stays as is,
// the prior durable record is kept by the store.
func (s *Scheduler) persist() {
	if err := s.saveSettings(); err != nil {
		lgr.Printf("[ERROR] failed to save settings: %v", err)
	}
}

// sendAll delivers msgs in order and logs delivery failures, they are never retried.
// Must be called without mu held, a rate limited notifier may block for a while.
func (s *Scheduler) sendAll(ctx context.Context, channel domain.ChannelRef, msgs []domain.Message) {
	for _, msg := range msgs {
		if err := s.notifier.Send(ctx, channel, msg); err != nil {
			lgr.Printf("[WARN] %v", err)
		}
	}
}
