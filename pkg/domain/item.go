package domain

import (
	"errors"
	"strings"
	"time"
)

// description limits for news and episodes
const (
	NewsDescriptionLimit    = 200
	EpisodeDescriptionLimit = 250
)

// Item represents a normalized article or episode
type Item struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Description string `json:"description"`
	Source      Source `json:"source"`
	Date        string `json:"date,omitempty"` // free-form release date, episodes only
}

// Validate checks the item can be used as a dedup key
func (i Item) Validate() error {
	if strings.TrimSpace(i.Link) == "" {
		return errors.New("item link is empty")
	}
	return nil
}

// AccumulatedItem is an item delivered by digest and kept for the weekly summary
type AccumulatedItem struct {
	Item    Item      `json:"item"`
	AddedAt time.Time `json:"added_at"`
}

// Truncate cuts s to at most limit runes
func Truncate(s string, limit int) string {
	s = strings.TrimSpace(s)
	if limit <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit])
}
