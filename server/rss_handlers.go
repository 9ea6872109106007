package server

import (
	"net/http"
	"time"

	"github.com/go-pkgz/lgr"
)

// weeklyRSSHandler serves articles delivered since the last weekly summary
func (s *Server) weeklyRSSHandler(w http.ResponseWriter, _ *http.Request) {
	rss, err := s.generator.GenerateRSS(s.commander.WeeklyItems(), time.Now())
	if err != nil {
		lgr.Printf("[ERROR] failed to generate RSS feed: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	if _, err := w.Write([]byte(rss)); err != nil {
		lgr.Printf("[ERROR] failed to write RSS response: %v", err)
	}
}
