package scheduler

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/secwatch/pkg/domain"
)

// SourceCount is the number of weekly items of a source
type SourceCount struct {
	Source domain.Source `json:"source"`
	Count  int           `json:"count"`
}

// WeeklyCounts counts accumulated items per source. Known sources come first in
// digest order, unknown ones follow in order of appearance.
func WeeklyCounts(items []domain.AccumulatedItem) []SourceCount {
	counts := map[domain.Source]int{}
	var extra []domain.Source
	for _, it := range items {
		if counts[it.Item.Source] == 0 && !it.Item.Source.Valid() {
			extra = append(extra, it.Item.Source)
		}
		counts[it.Item.Source]++
	}

	res := []SourceCount{}
	for _, src := range append(domain.AllSources(), extra...) {
		if n := counts[src]; n > 0 {
			res = append(res, SourceCount{Source: src, Count: n})
		}
	}
	return res
}

// weeklySummary renders the weekly breakdown message
func weeklySummary(counts []SourceCount, total int) string {
	var sb strings.Builder
	sb.WriteString("**Weekly Cybersecurity Summary**\n")
	fmt.Fprintf(&sb, "%d articles delivered this week:", total)
	for _, c := range counts {
		fmt.Fprintf(&sb, "\n• %s: %d", c.Source.Name(), c.Count)
	}
	return sb.String()
}

// runWeekly sends the per-source summary of the week and clears the accumulator
func (s *Scheduler) runWeekly(ctx context.Context) {
	channel, msg, ok := s.flushWeekly()
	if ok {
		s.sendAll(ctx, channel, []domain.Message{msg})
	}
}

// flushWeekly builds the summary and clears the accumulator, returns false when nothing is due
func (s *Scheduler) flushWeekly() (domain.ChannelRef, domain.Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.settings.DigestChannel == nil {
		lgr.Printf("[DEBUG] weekly summary skipped, digest disabled")
		return "", domain.Message{}, false
	}
	acc := s.settings.WeeklyAccumulator
	if len(acc) == 0 {
		lgr.Printf("[DEBUG] weekly summary skipped, nothing accumulated")
		return "", domain.Message{}, false
	}

	msg := domain.Message{Content: weeklySummary(WeeklyCounts(acc), len(acc))}
	s.settings.WeeklyAccumulator = []domain.AccumulatedItem{}
	s.persist()
	lgr.Printf("[INFO] weekly summary sent, %d items cleared", len(acc))
	return *s.settings.DigestChannel, msg, true
}
