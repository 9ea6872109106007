package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ChannelRef names a notification destination
type ChannelRef string

// DefaultNotificationTimes are the digest times used when nothing is stored
var DefaultNotificationTimes = []string{"08:00", "15:15"}

// Settings is the single durable aggregate of the service state.
// It is owned by the scheduler and written back as a whole on every change.
type Settings struct {
	WatchedEpisodeTitle *string              `json:"watched_episode_title"`
	DarknetChannel      *ChannelRef          `json:"darknet_channel"`
	DigestChannel       *ChannelRef          `json:"digest_channel"`
	Keywords            []string             `json:"keywords"`
	SentItems           map[string]time.Time `json:"sent_items"`
	NotificationTimes   []string             `json:"notification_times"`
	WeeklyAccumulator   []AccumulatedItem    `json:"weekly_accumulator"`
	TagUserOnNotify     bool                 `json:"tag_user_on_notify"`
}

// DefaultSettings returns settings used when no durable record exists
func DefaultSettings() *Settings {
	return &Settings{
		Keywords:          []string{},
		SentItems:         map[string]time.Time{},
		NotificationTimes: append([]string{}, DefaultNotificationTimes...),
		WeeklyAccumulator: []AccumulatedItem{},
		TagUserOnNotify:   true,
	}
}

// Normalize fills nil collections and restores default times if none set
func (s *Settings) Normalize() {
	if s.Keywords == nil {
		s.Keywords = []string{}
	}
	if s.SentItems == nil {
		s.SentItems = map[string]time.Time{}
	}
	if len(s.NotificationTimes) == 0 {
		s.NotificationTimes = append([]string{}, DefaultNotificationTimes...)
	}
	if s.WeeklyAccumulator == nil {
		s.WeeklyAccumulator = []AccumulatedItem{}
	}
}

// Clone returns a deep copy
func (s *Settings) Clone() *Settings {
	res := &Settings{
		Keywords:          append([]string{}, s.Keywords...),
		SentItems:         make(map[string]time.Time, len(s.SentItems)),
		NotificationTimes: append([]string{}, s.NotificationTimes...),
		WeeklyAccumulator: append([]AccumulatedItem{}, s.WeeklyAccumulator...),
		TagUserOnNotify:   s.TagUserOnNotify,
	}
	for k, v := range s.SentItems {
		res.SentItems[k] = v
	}
	if s.WatchedEpisodeTitle != nil {
		v := *s.WatchedEpisodeTitle
		res.WatchedEpisodeTitle = &v
	}
	if s.DarknetChannel != nil {
		v := *s.DarknetChannel
		res.DarknetChannel = &v
	}
	if s.DigestChannel != nil {
		v := *s.DigestChannel
		res.DigestChannel = &v
	}
	return res
}

// ClockTime is a parsed "HH:MM" wall-clock time
type ClockTime struct {
	Hour   int
	Minute int
}

// String formats as HH:MM
func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Matches reports whether t falls into this minute
func (c ClockTime) Matches(t time.Time) bool {
	return t.Hour() == c.Hour && t.Minute() == c.Minute
}

// ParseClockTime parses "HH:MM" in 24h format
func ParseClockTime(v string) (ClockTime, error) {
	v = strings.TrimSpace(v)
	parts := strings.Split(v, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return ClockTime{}, &ConfigError{Msg: fmt.Sprintf("invalid time %q, expected HH:MM", v)}
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return ClockTime{}, &ConfigError{Msg: fmt.Sprintf("invalid hour in %q", v)}
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return ClockTime{}, &ConfigError{Msg: fmt.Sprintf("invalid minute in %q", v)}
	}
	return ClockTime{Hour: h, Minute: m}, nil
}

// ParseNotificationTimes validates user supplied digest times.
// One or two distinct entries are allowed, result is sorted.
func ParseNotificationTimes(values []string) ([]string, error) {
	if len(values) == 0 || len(values) > 2 {
		return nil, &ConfigError{Msg: "one or two notification times are required"}
	}
	seen := map[string]bool{}
	res := make([]string, 0, len(values))
	for _, v := range values {
		ct, err := ParseClockTime(v)
		if err != nil {
			return nil, err
		}
		if seen[ct.String()] {
			continue
		}
		seen[ct.String()] = true
		res = append(res, ct.String())
	}
	sort.Strings(res)
	return res, nil
}
