package scheduler

import (
	"context"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/secwatch/pkg/domain"
)

// checkEpisodes compares the newest episode with the last seen title and alerts
// the watch channel on change. The first observation only records the title.
func (s *Scheduler) checkEpisodes(ctx context.Context) {
	s.mu.Lock()
	enabled := s.settings.DarknetChannel != nil
	s.mu.Unlock()
	if !enabled {
		lgr.Printf("[DEBUG] episode watch disabled, skip check")
		return
	}

	lgr.Printf("[DEBUG] checking for new %s episodes", domain.SourceDarknetDiaries.Name())
	items, err := FetchWithRetry(ctx, s.provider, domain.SourceDarknetDiaries, s.retry)
	if len(items) == 0 {
		lgr.Printf("[DEBUG] no episodes fetched: %v", err)
		return
	}
	s.observeEpisode(ctx, items[0])
}

// observeEpisode applies the newest fetched episode to the watch state and
// alerts the watch channel on a new title
func (s *Scheduler) observeEpisode(ctx context.Context, latest domain.Item) {
	channel, msg, ok := s.updateWatchedEpisode(latest)
	if ok {
		s.sendAll(ctx, channel, []domain.Message{msg})
	}
}

// updateWatchedEpisode records the title and returns the alert to send, if any
func (s *Scheduler) updateWatchedEpisode(latest domain.Item) (domain.ChannelRef, domain.Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.settings.DarknetChannel == nil {
		return "", domain.Message{}, false
	}
	title := latest.Title

	if s.settings.WatchedEpisodeTitle == nil {
		s.settings.WatchedEpisodeTitle = &title
		s.persist()
		lgr.Printf("[INFO] recorded current episode %q", title)
		return "", domain.Message{}, false
	}

	if *s.settings.WatchedEpisodeTitle == title {
		return "", domain.Message{}, false
	}

	lgr.Printf("[INFO] new episode detected: %s", title)
	s.settings.WatchedEpisodeTitle = &title
	s.persist()
	return *s.settings.DarknetChannel, domain.Message{
		Embed:   domain.NewEpisodeEmbed(latest),
		Mention: s.settings.TagUserOnNotify,
	}, true
}
