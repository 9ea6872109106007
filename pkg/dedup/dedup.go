// Package dedup tracks which links were delivered within a trailing time window.
package dedup

import (
	"time"

	"github.com/go-pkgz/lgr"
)

// DefaultWindow is the period a delivered link stays suppressed
const DefaultWindow = 24 * time.Hour

// Store keeps link -> delivered-at records. It works on the map owned by the
// settings aggregate and calls persist after each insert. Not thread-safe,
// the caller serializes access.
type Store struct {
	sent    map[string]time.Time
	window  time.Duration
	persist func() error
}

// New makes a store over sent records. A nil map is replaced with an empty one,
// check Records for the map actually used.
func New(sent map[string]time.Time, window time.Duration, persist func() error) *Store {
	if sent == nil {
		sent = map[string]time.Time{}
	}
	if window <= 0 {
		window = DefaultWindow
	}
	if persist == nil {
		persist = func() error { return nil }
	}
	return &Store{sent: sent, window: window, persist: persist}
}

// IsNewAndRecord reports whether link was not delivered within the window
// ending at now, and records it as delivered at now if so.
func (s *Store) IsNewAndRecord(link string, now time.Time) bool {
	s.Purge(now)
	if _, ok := s.sent[link]; ok {
		return false
	}
	s.sent[link] = now
	if err := s.persist(); err != nil {
		lgr.Printf("[ERROR] failed to persist dedup record for %s: %v", link, err)
	}
	return true
}

// Purge removes records older than now - window and returns how many were dropped
func (s *Store) Purge(now time.Time) int {
	cutoff := now.Add(-s.window)
	removed := 0
	for link, ts := range s.sent {
		if !ts.After(cutoff) {
			delete(s.sent, link)
			removed++
		}
	}
	return removed
}

// Len returns number of tracked links
func (s *Store) Len() int {
	return len(s.sent)
}

// Records returns the underlying map
func (s *Store) Records() map[string]time.Time {
	return s.sent
}
