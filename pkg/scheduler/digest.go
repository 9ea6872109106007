package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/secwatch/pkg/domain"
	"github.com/umputun/secwatch/pkg/filter"
)

const digestHeader = "**Here is your Daily Cybersecurity News Digest**"

// errDigestDisabled returned when the digest runs without a digest channel
var errDigestDisabled = &domain.ConfigError{Msg: "daily news digest is not enabled"}

// runDigest delivers one new article per news source to the digest channel and
// returns the number of delivered articles. Fetches run concurrently before the lock is taken.
func (s *Scheduler) runDigest(ctx context.Context) (int, error) {
	s.mu.Lock()
	enabled := s.settings.DigestChannel != nil
	s.mu.Unlock()
	if !enabled {
		return 0, errDigestDisabled
	}

	st := time.Now()
	sources := domain.NewsSources()
	results := s.fetchAll(ctx, sources)

	channel, msgs, delivered, err := s.selectDigest(results, sources)
	if err != nil {
		return 0, err
	}

	// state is committed before delivery, failed sends don't roll it back
	s.sendAll(ctx, channel, msgs)
	lgr.Printf("[INFO] digest delivered %d articles to %s in %v", delivered, channel, time.Since(st).Truncate(time.Millisecond))
	return delivered, nil
}

// selectDigest picks the first new article of every source, records it in the weekly
// accumulator and persists settings. Returns the channel and messages to deliver.
func (s *Scheduler) selectDigest(results []fetchResult, sources []domain.Source) (domain.ChannelRef, []domain.Message, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.settings.DigestChannel == nil {
		return "", nil, 0, errDigestDisabled // disabled while fetching
	}
	channel := *s.settings.DigestChannel
	now := s.clock.Now()

	msgs := []domain.Message{{Content: digestHeader, Mention: s.settings.TagUserOnNotify}}
	delivered := 0
	for i, src := range sources {
		res := results[i]
		if len(res.items) == 0 {
			msgs = append(msgs, domain.Message{Content: "Could not fetch from " + src.Name()})
			continue
		}

		item, ok := s.firstNew(res.items, now)
		if !ok {
			msgs = append(msgs, domain.Message{Content: "No new articles from " + src.Name()})
			continue
		}

		s.settings.WeeklyAccumulator = append(s.settings.WeeklyAccumulator, domain.AccumulatedItem{Item: item, AddedAt: now})
		msgs = append(msgs, domain.Message{Embed: domain.ItemEmbed(item)})
		delivered++
	}

	s.lastDigest = now
	s.persist()
	msgs = append(msgs, domain.Message{Content: fmt.Sprintf("Daily digest complete! %d articles delivered.", delivered)})
	return channel, msgs, delivered, nil
}

// firstNew walks items in order through dedup, then the keyword filter, and returns
// the first one passing both. Items after it are not looked at. Must be called with mu held.
func (s *Scheduler) firstNew(items []domain.Item, now time.Time) (domain.Item, bool) {
	for _, item := range items {
		if !s.dedup.IsNewAndRecord(item.Link, now) {
			lgr.Printf("[DEBUG] skip already sent %s", item.Link)
			continue
		}
		if !filter.Matches(item, s.settings.Keywords) {
			lgr.Printf("[DEBUG] skip %q, no keyword match", item.Title)
			continue
		}
		return item, true
	}
	return domain.Item{}, false
}
