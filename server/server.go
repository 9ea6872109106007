// Package server exposes bot commands and the weekly feed over HTTP
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/secwatch/pkg/domain"
	"github.com/umputun/secwatch/pkg/feed"
	"github.com/umputun/secwatch/pkg/scheduler"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/commander.go -pkg mocks -skip-ensure -fmt goimports . Commander

// Server represents HTTP server instance
type Server struct {
	config    ConfigProvider
	commander Commander
	generator *feed.Generator
	version   string
	debug     bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Commander executes bot commands, implemented by scheduler.Scheduler
type Commander interface {
	Status() scheduler.Status
	WeeklyItems() []domain.AccumulatedItem
	Stats(ctx context.Context) (string, error)
	EnableDigest(ctx context.Context, channel domain.ChannelRef) (string, error)
	DisableDigest(ctx context.Context) (string, error)
	EnableEpisodeWatch(ctx context.Context, channel domain.ChannelRef) (string, error)
	DisableEpisodeWatch(ctx context.Context) (string, error)
	SetKeywords(ctx context.Context, keywords []string) (string, error)
	ClearKeywords(ctx context.Context) (string, error)
	SetNotificationTimes(ctx context.Context, times []string) (string, error)
	ToggleMention(ctx context.Context) (string, error)
	FetchNow(ctx context.Context, source string, channel domain.ChannelRef) (string, error)
	LatestEpisodes(ctx context.Context, channel domain.ChannelRef) (string, error)
	RunDigestNow(ctx context.Context) (string, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetBaseURL() string
}

// New initializes a new server instance
func New(cfg ConfigProvider, commander Commander, version string, debug bool) *Server {
	s := &Server{
		config:    cfg,
		commander: commander,
		generator: feed.NewGenerator(cfg.GetBaseURL()),
		version:   version,
		debug:     debug,
		router:    routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	lgr.Printf("[INFO] starting server on %s", listen)

	// commands may wait for fetches with retries, so writes get extra time
	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: timeout,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout + commandTimeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		s.lock.Lock()
		defer s.lock.Unlock()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("secwatch", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(64 * 1024))
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /stats", s.statsHandler)

		r.HandleFunc("POST /digest", s.enableDigestHandler)
		r.HandleFunc("DELETE /digest", s.disableDigestHandler)
		r.HandleFunc("POST /digest/run", s.runDigestHandler)

		r.HandleFunc("POST /watch", s.enableWatchHandler)
		r.HandleFunc("DELETE /watch", s.disableWatchHandler)

		r.HandleFunc("PUT /keywords", s.setKeywordsHandler)
		r.HandleFunc("DELETE /keywords", s.clearKeywordsHandler)

		r.HandleFunc("PUT /schedule", s.setScheduleHandler)
		r.HandleFunc("POST /mention/toggle", s.toggleMentionHandler)

		r.HandleFunc("POST /fetch/{source}", s.fetchNowHandler)
		r.HandleFunc("POST /episodes", s.latestEpisodesHandler)
	})

	s.router.HandleFunc("GET /rss/weekly", s.weeklyRSSHandler)
}
