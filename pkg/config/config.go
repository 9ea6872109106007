package config

import (
	"fmt"
	"os"
	"strings"
	"time"
	_ "time/tzdata" // timezone is resolved by name, host may lack zoneinfo

	"gopkg.in/yaml.v3"

	"github.com/umputun/secwatch/pkg/domain"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// source kinds
const (
	KindHTML = "html"
	KindRSS  = "rss"
)

// Config holds the application configuration
type Config struct {
	Timezone string `yaml:"timezone" json:"timezone" jsonschema:"default=America/Chicago,description=Time zone for digest and weekly schedule"`

	Server struct {
		Disabled bool          `yaml:"disabled" json:"disabled" jsonschema:"default=false,description=Disable HTTP command API"`
		Listen   string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout  time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
		BaseURL  string        `yaml:"base_url" json:"base_url" jsonschema:"default=http://localhost:8080,description=Public URL used in the weekly RSS feed"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN          string `yaml:"dsn" json:"dsn" jsonschema:"default=file:secwatch.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=1,description=Maximum number of open connections"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Schedule ScheduleConfig `yaml:"schedule" json:"schedule" jsonschema:"description=Scheduler configuration"`

	Fetch FetchConfig `yaml:"fetch" json:"fetch" jsonschema:"description=Source fetching configuration"`

	Notify NotifyConfig `yaml:"notify" json:"notify" jsonschema:"description=Notification configuration"`

	Sources map[domain.Source]SourceConfig `yaml:"sources" json:"sources" jsonschema:"description=Per-source adapter settings"`
}

// ScheduleConfig holds timer settings
type ScheduleConfig struct {
	EpisodeInterval time.Duration `yaml:"episode_interval" json:"episode_interval" jsonschema:"default=6h,description=Episode feed check interval"`
	PollInterval    time.Duration `yaml:"poll_interval" json:"poll_interval" jsonschema:"default=1m,description=Granularity of digest and weekly checks"`
	WeeklyDay       string        `yaml:"weekly_day" json:"weekly_day" jsonschema:"default=sunday,description=Day of week for the weekly summary"`
	WeeklyTime      string        `yaml:"weekly_time" json:"weekly_time" jsonschema:"default=10:00,description=Time of day (HH:MM) for the weekly summary"`
	DedupWindow     time.Duration `yaml:"dedup_window" json:"dedup_window" jsonschema:"default=24h,description=Period a delivered link stays suppressed"`
}

// FetchConfig holds source fetching settings
type FetchConfig struct {
	Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=Timeout of a single fetch"`
	Attempts  int           `yaml:"attempts" json:"attempts" jsonschema:"default=3,minimum=1,description=Maximum fetch attempts"`
	Backoff   time.Duration `yaml:"backoff" json:"backoff" jsonschema:"default=2s,description=Delay between fetch attempts"`
	UserAgent string        `yaml:"user_agent" json:"user_agent" jsonschema:"description=User agent for HTTP requests"`
}

// NotifyConfig holds notifier settings
type NotifyConfig struct {
	Mention   string                       `yaml:"mention" json:"mention" jsonschema:"default=@everyone,description=Mention prefix used when tagging is on"`
	RateLimit time.Duration                `yaml:"rate_limit" json:"rate_limit" jsonschema:"default=500ms,description=Minimum delay between webhook posts"`
	Timeout   time.Duration                `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=Webhook request timeout"`
	Channels  map[domain.ChannelRef]string `yaml:"channels" json:"channels" jsonschema:"description=Channel name to Discord webhook URL"`
}

// SourceConfig describes how a source is fetched
type SourceConfig struct {
	Kind  string `yaml:"kind" json:"kind" jsonschema:"enum=html,enum=rss,default=html,description=Adapter kind"`
	URL   string `yaml:"url" json:"url" jsonschema:"description=Page or feed URL"`
	Limit int    `yaml:"limit" json:"limit" jsonschema:"description=Maximum items returned"`
}

// DefaultSources are the pages scraped when config doesn't override them
func DefaultSources() map[domain.Source]SourceConfig {
	return map[domain.Source]SourceConfig{
		domain.SourceBleepingComputer: {Kind: KindHTML, URL: "https://www.bleepingcomputer.com/", Limit: 5},
		domain.SourceWired:            {Kind: KindHTML, URL: "https://www.wired.com/tag/security/", Limit: 5},
		domain.SourceArsTechnica:      {Kind: KindHTML, URL: "https://arstechnica.com/security/", Limit: 5},
		domain.SourceKrebs:            {Kind: KindHTML, URL: "https://krebsonsecurity.com/", Limit: 5},
		domain.SourceDarknetDiaries:   {Kind: KindHTML, URL: "https://darknetdiaries.com/episode/", Limit: 3},
	}
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration, expands env variables and applies defaults
func Parse(data []byte) (*Config, error) {
	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

// Default returns configuration with all defaults applied
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

func (c *Config) setDefaults() {
	if c.Timezone == "" {
		c.Timezone = "America/Chicago"
	}

	// set defaults for server
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}
	if c.Server.BaseURL == "" {
		c.Server.BaseURL = "http://localhost:8080"
	}

	// set defaults for database
	if c.Database.DSN == "" {
		c.Database.DSN = "file:secwatch.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 1
	}

	// set defaults for schedule
	if c.Schedule.EpisodeInterval == 0 {
		c.Schedule.EpisodeInterval = 6 * time.Hour
	}
	if c.Schedule.PollInterval == 0 {
		c.Schedule.PollInterval = time.Minute
	}
	if c.Schedule.WeeklyDay == "" {
		c.Schedule.WeeklyDay = "sunday"
	}
	if c.Schedule.WeeklyTime == "" {
		c.Schedule.WeeklyTime = "10:00"
	}
	if c.Schedule.DedupWindow == 0 {
		c.Schedule.DedupWindow = 24 * time.Hour
	}

	// set defaults for fetch
	if c.Fetch.Timeout == 0 {
		c.Fetch.Timeout = 10 * time.Second
	}
	if c.Fetch.Attempts == 0 {
		c.Fetch.Attempts = 3
	}
	if c.Fetch.Backoff == 0 {
		c.Fetch.Backoff = 2 * time.Second
	}
	if c.Fetch.UserAgent == "" {
		c.Fetch.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	}

	// set defaults for notify
	if c.Notify.Mention == "" {
		c.Notify.Mention = "@everyone"
	}
	if c.Notify.RateLimit == 0 {
		c.Notify.RateLimit = 500 * time.Millisecond
	}
	if c.Notify.Timeout == 0 {
		c.Notify.Timeout = 10 * time.Second
	}

	// merge sources with defaults, per-field
	defaults := DefaultSources()
	if c.Sources == nil {
		c.Sources = map[domain.Source]SourceConfig{}
	}
	for src, def := range defaults {
		sc := c.Sources[src]
		if sc.Kind == "" {
			sc.Kind = def.Kind
		}
		if sc.URL == "" {
			sc.URL = def.URL
		}
		if sc.Limit == 0 {
			sc.Limit = def.Limit
		}
		c.Sources[src] = sc
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
	}
	if _, err := cfg.WeeklyDay(); err != nil {
		return err
	}
	if _, err := domain.ParseClockTime(cfg.Schedule.WeeklyTime); err != nil {
		return fmt.Errorf("schedule.weekly_time: %w", err)
	}
	if cfg.Schedule.PollInterval > time.Minute {
		return fmt.Errorf("schedule.poll_interval must not exceed 1m, got %v", cfg.Schedule.PollInterval)
	}
	if cfg.Fetch.Attempts < 1 {
		return fmt.Errorf("fetch.attempts must be at least 1")
	}
	if cfg.Fetch.Timeout < time.Second {
		return fmt.Errorf("fetch.timeout must be at least 1 second")
	}
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}
	for src, sc := range cfg.Sources {
		if !src.Valid() {
			return fmt.Errorf("unknown source %q", src)
		}
		if sc.Kind != KindHTML && sc.Kind != KindRSS {
			return fmt.Errorf("source %s: unknown kind %q", src, sc.Kind)
		}
	}
	for name, url := range cfg.Notify.Channels {
		if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
			return fmt.Errorf("notify.channels.%s: webhook url must be http(s)", name)
		}
	}
	return nil
}

// Location returns the configured time zone
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// WeeklyDay returns the configured weekly summary day
func (c *Config) WeeklyDay() (time.Weekday, error) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(d.String(), strings.TrimSpace(c.Schedule.WeeklyDay)) {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("schedule.weekly_day: invalid day %q", c.Schedule.WeeklyDay)
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetBaseURL returns public URL of the server
func (c *Config) GetBaseURL() string {
	return c.Server.BaseURL
}

// Secrets returns values that must be masked in logs
func (c *Config) Secrets() []string {
	res := make([]string, 0, len(c.Notify.Channels))
	for _, url := range c.Notify.Channels {
		res = append(res, url)
	}
	return res
}
