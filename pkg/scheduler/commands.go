package scheduler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/secwatch/pkg/domain"
	"github.com/umputun/secwatch/pkg/filter"
)

// Status is a snapshot of the scheduler state
type Status struct {
	DigestChannel     string        `json:"digest_channel,omitempty"`
	EpisodeChannel    string        `json:"episode_channel,omitempty"`
	WatchedEpisode    string        `json:"watched_episode,omitempty"`
	Keywords          []string      `json:"keywords"`
	NotificationTimes []string      `json:"notification_times"`
	Timezone          string        `json:"timezone"`
	TagUserOnNotify   bool          `json:"tag_user_on_notify"`
	TrackedLinks      int           `json:"tracked_links"`
	WeeklyItems       int           `json:"weekly_items"`
	WeeklyCounts      []SourceCount `json:"weekly_counts"`
	LastDigest        *time.Time    `json:"last_digest,omitempty"`
}

// Status returns current state, expired dedup records are purged first
func (s *Scheduler) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dedup.Purge(s.clock.Now())
	st := Status{
		Keywords:          append([]string{}, s.settings.Keywords...),
		NotificationTimes: append([]string{}, s.settings.NotificationTimes...),
		Timezone:          s.loc.String(),
		TagUserOnNotify:   s.settings.TagUserOnNotify,
		TrackedLinks:      s.dedup.Len(),
		WeeklyItems:       len(s.settings.WeeklyAccumulator),
		WeeklyCounts:      WeeklyCounts(s.settings.WeeklyAccumulator),
	}
	if s.settings.DigestChannel != nil {
		st.DigestChannel = string(*s.settings.DigestChannel)
	}
	if s.settings.DarknetChannel != nil {
		st.EpisodeChannel = string(*s.settings.DarknetChannel)
	}
	if s.settings.WatchedEpisodeTitle != nil {
		st.WatchedEpisode = *s.settings.WatchedEpisodeTitle
	}
	if !s.lastDigest.IsZero() {
		ts := s.lastDigest
		st.LastDigest = &ts
	}
	return st
}

// WeeklyItems returns a copy of items delivered since the last weekly summary
func (s *Scheduler) WeeklyItems() []domain.AccumulatedItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.AccumulatedItem{}, s.settings.WeeklyAccumulator...)
}

// EnableDigest sets the channel receiving scheduled digests
func (s *Scheduler) EnableDigest(_ context.Context, channel domain.ChannelRef) (string, error) {
	if err := s.validChannel(channel); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings.DigestChannel = &channel
	s.persist()
	lgr.Printf("[INFO] digest enabled for %s", channel)

	var sb strings.Builder
	sb.WriteString("Daily news digest enabled!\nYou'll receive 1 article from each source at:")
	for _, t := range s.settings.NotificationTimes {
		sb.WriteString("\n• " + t)
	}
	fmt.Fprintf(&sb, "\n(%s)", s.loc)
	return sb.String(), nil
}

// DisableDigest turns scheduled digests and weekly summaries off
func (s *Scheduler) DisableDigest(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.DigestChannel = nil
	s.persist()
	lgr.Printf("[INFO] digest disabled")
	return "Daily news digest disabled.", nil
}

// EnableEpisodeWatch sets the channel alerted on new episodes and records the current newest title
func (s *Scheduler) EnableEpisodeWatch(ctx context.Context, channel domain.ChannelRef) (string, error) {
	if err := s.validChannel(channel); err != nil {
		return "", err
	}
	items, _ := FetchWithRetry(ctx, s.provider, domain.SourceDarknetDiaries, s.retry)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.DarknetChannel = &channel
	reply := "Watching enabled, but couldn't fetch current episode."
	if len(items) > 0 {
		title := items[0].Title
		s.settings.WatchedEpisodeTitle = &title
		reply = fmt.Sprintf("I will notify this channel when new %s episodes are released!\nLatest episode: %s",
			domain.SourceDarknetDiaries.Name(), title)
	}
	s.persist()
	lgr.Printf("[INFO] episode watch enabled for %s", channel)
	return reply, nil
}

// DisableEpisodeWatch turns new episode alerts off
func (s *Scheduler) DisableEpisodeWatch(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.DarknetChannel = nil
	s.persist()
	lgr.Printf("[INFO] episode watch disabled")
	return domain.SourceDarknetDiaries.Name() + " notifications disabled.", nil
}

// SetKeywords replaces the keyword filter
func (s *Scheduler) SetKeywords(_ context.Context, keywords []string) (string, error) {
	kw := filter.NormalizeKeywords(keywords)
	if len(kw) == 0 {
		return "", &domain.ConfigError{Msg: "at least one keyword is required"}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.Keywords = kw
	s.persist()
	return "Keyword filter set: " + strings.Join(kw, ", "), nil
}

// ClearKeywords removes the keyword filter, every article matches
func (s *Scheduler) ClearKeywords(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.Keywords = []string{}
	s.persist()
	return "Keyword filter cleared, all articles match.", nil
}

// SetNotificationTimes replaces digest times. Invalid input is a *domain.ConfigError
// and leaves the schedule unchanged.
func (s *Scheduler) SetNotificationTimes(_ context.Context, times []string) (string, error) {
	parsed, err := domain.ParseNotificationTimes(times)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.NotificationTimes = parsed
	s.persist()
	lgr.Printf("[INFO] digest times set to %v", parsed)
	return fmt.Sprintf("Digest times set: %s (%s)", strings.Join(parsed, ", "), s.loc), nil
}

// ToggleMention flips user mention on digests and episode alerts
func (s *Scheduler) ToggleMention(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.TagUserOnNotify = !s.settings.TagUserOnNotify
	s.persist()
	if s.settings.TagUserOnNotify {
		return "User mention enabled.", nil
	}
	return "User mention disabled.", nil
}

// Stats renders the status as text
func (s *Scheduler) Stats(_ context.Context) (string, error) {
	st := s.Status()
	orNone := func(v string) string {
		if v == "" {
			return "disabled"
		}
		return v
	}
	kw := "all articles"
	if len(st.Keywords) > 0 {
		kw = strings.Join(st.Keywords, ", ")
	}

	var sb strings.Builder
	sb.WriteString("**Bot stats**")
	fmt.Fprintf(&sb, "\nDigest channel: %s", orNone(st.DigestChannel))
	fmt.Fprintf(&sb, "\nDigest times: %s (%s)", strings.Join(st.NotificationTimes, ", "), st.Timezone)
	fmt.Fprintf(&sb, "\nEpisode watch channel: %s", orNone(st.EpisodeChannel))
	if st.WatchedEpisode != "" {
		fmt.Fprintf(&sb, "\nLatest known episode: %s", st.WatchedEpisode)
	}
	fmt.Fprintf(&sb, "\nKeywords: %s", kw)
	fmt.Fprintf(&sb, "\nUser mention: %t", st.TagUserOnNotify)
	fmt.Fprintf(&sb, "\nLinks sent in the last 24h: %d", st.TrackedLinks)
	fmt.Fprintf(&sb, "\nArticles this week: %d", st.WeeklyItems)
	return sb.String(), nil
}

// FetchNow sends every fetched article of one news source, or of all of them, to channel.
// Dedup and keyword filter are not applied.
func (s *Scheduler) FetchNow(ctx context.Context, source string, channel domain.ChannelRef) (string, error) {
	if err := s.validChannel(channel); err != nil {
		return "", err
	}
	var sources []domain.Source
	if strings.EqualFold(strings.TrimSpace(source), "all") || strings.TrimSpace(source) == "" {
		sources = domain.NewsSources()
	} else {
		src, err := domain.ParseSource(source)
		if err != nil || src == domain.SourceDarknetDiaries {
			return "", &domain.ConfigError{Msg: "Invalid source! Use: all, bleeping, wired, ars, or krebs"}
		}
		sources = []domain.Source{src}
	}

	results := s.fetchAll(ctx, sources)

	var msgs []domain.Message
	for _, res := range results {
		for _, item := range res.items {
			msgs = append(msgs, domain.Message{Embed: domain.ItemEmbed(item)})
		}
	}
	if len(msgs) == 0 {
		return "Couldn't fetch news right now. Try again later!", nil
	}
	s.sendAll(ctx, channel, msgs)
	return fmt.Sprintf("Found %d articles!", len(msgs)), nil
}

// LatestEpisodes sends the latest fetched episodes to channel
func (s *Scheduler) LatestEpisodes(ctx context.Context, channel domain.ChannelRef) (string, error) {
	if err := s.validChannel(channel); err != nil {
		return "", err
	}
	items, _ := FetchWithRetry(ctx, s.provider, domain.SourceDarknetDiaries, s.retry)
	if len(items) == 0 {
		return "Couldn't fetch episodes right now. Try again later!", nil
	}
	msgs := make([]domain.Message, 0, len(items))
	for _, item := range items {
		msgs = append(msgs, domain.Message{Embed: domain.ItemEmbed(item)})
	}
	s.sendAll(ctx, channel, msgs)
	return fmt.Sprintf("Found %d episodes!", len(items)), nil
}

// RunDigestNow runs the digest immediately, outside of the schedule
func (s *Scheduler) RunDigestNow(ctx context.Context) (string, error) {
	delivered, err := s.runDigest(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Digest delivered: %d articles.", delivered), nil
}

// validChannel rejects blank names and channels missing from the configured set
func (s *Scheduler) validChannel(channel domain.ChannelRef) error {
	if strings.TrimSpace(string(channel)) == "" {
		return &domain.ConfigError{Msg: "channel is required"}
	}
	if s.channels != nil && !s.channels[channel] {
		return &domain.ConfigError{Msg: fmt.Sprintf("unknown channel %q", channel)}
	}
	return nil
}
