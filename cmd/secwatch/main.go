package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"

	"github.com/umputun/secwatch/pkg/config"
	"github.com/umputun/secwatch/pkg/domain"
	"github.com/umputun/secwatch/pkg/feed"
	"github.com/umputun/secwatch/pkg/notify"
	"github.com/umputun/secwatch/pkg/repository"
	"github.com/umputun/secwatch/pkg/scheduler"
	"github.com/umputun/secwatch/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" description:"configuration file, defaults are used if not set"`
	DB     string `long:"db" env:"DB" description:"database DSN, overrides config"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`
	DryRun bool   `long:"dry-run" env:"DRY_RUN" description:"log notifications instead of sending them"`

	// common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	// .env sets variables for options and ${VAR} expansion in config
	envErr := godotenv.Load()

	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	setupLog(opts.Debug, opts.NoColor)
	if envErr != nil && !errors.Is(envErr, fs.ErrNotExist) {
		lgr.Printf("[WARN] can't load .env: %v", envErr)
	}

	lgr.Printf("[INFO] starting secwatch version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		lgr.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()

	if err != nil {
		lgr.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	lgr.Print("[INFO] shutdown complete")
}

// run wires components and blocks until ctx is canceled or the server fails
func run(ctx context.Context, opts Opts) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	setupLog(opts.Debug, opts.NoColor, cfg.Secrets()...)

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:          cfg.Database.DSN,
		MaxOpenConns: cfg.Database.MaxOpenConns,
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			lgr.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	provider, err := feed.NewManager(cfg.Sources, feed.NewHTTPFetcher(cfg.Fetch.Timeout, cfg.Fetch.UserAgent))
	if err != nil {
		return fmt.Errorf("failed to make sources: %w", err)
	}

	weekday, err := cfg.WeeklyDay()
	if err != nil {
		return err
	}
	weeklyTime, err := domain.ParseClockTime(cfg.Schedule.WeeklyTime)
	if err != nil {
		return err
	}

	sched, err := scheduler.NewScheduler(ctx, scheduler.Params{
		Store:           repos.Setting,
		Provider:        provider,
		Notifier:        makeNotifier(cfg, opts.DryRun),
		Channels:        knownChannels(cfg, opts.DryRun),
		Location:        cfg.Location(),
		EpisodeInterval: cfg.Schedule.EpisodeInterval,
		PollInterval:    cfg.Schedule.PollInterval,
		WeeklyDay:       weekday,
		WeeklyTime:      weeklyTime,
		DedupWindow:     cfg.Schedule.DedupWindow,
		Retry:           scheduler.RetryPolicy{Attempts: cfg.Fetch.Attempts, Backoff: cfg.Fetch.Backoff},
	})
	if err != nil {
		return fmt.Errorf("failed to make scheduler: %w", err)
	}
	sched.Start(ctx)
	defer sched.Stop()

	if cfg.Server.Disabled {
		lgr.Printf("[INFO] http server disabled")
		<-ctx.Done()
		return nil
	}

	srv := server.New(cfg, sched, revision, opts.Debug)
	return srv.Run(ctx)
}

// loadConfig reads config file or uses defaults and applies command line overrides
func loadConfig(opts Opts) (*config.Config, error) {
	cfg := config.Default()
	if opts.Config != "" {
		var err error
		if cfg, err = config.Load(opts.Config); err != nil {
			return nil, err
		}
	}
	if opts.DB != "" {
		cfg.Database.DSN = opts.DB
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	return cfg, nil
}

func makeNotifier(cfg *config.Config, dryRun bool) scheduler.Notifier {
	if dryRun {
		lgr.Printf("[INFO] dry run, notifications are logged only")
		return &notify.Log{Mention: cfg.Notify.Mention}
	}
	if len(cfg.Notify.Channels) == 0 {
		lgr.Printf("[WARN] no notification channels configured")
	}
	return notify.NewDiscord(notify.DiscordParams{
		Webhooks:  cfg.Notify.Channels,
		Mention:   cfg.Notify.Mention,
		Timeout:   cfg.Notify.Timeout,
		RateLimit: cfg.Notify.RateLimit,
	})
}

// knownChannels returns channel names commands may target. Dry run logs every
// message, so any channel name is accepted there.
func knownChannels(cfg *config.Config, dryRun bool) []domain.ChannelRef {
	if dryRun {
		return nil
	}
	res := make([]domain.ChannelRef, 0, len(cfg.Notify.Channels))
	for name := range cfg.Notify.Channels {
		res = append(res, name)
	}
	return res
}

func setupLog(dbg, noColor bool, secs ...string) {
	logOpts := []lgr.Option{lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	if noColor {
		color.NoColor = true
	} else {
		colorizer := lgr.Mapper{
			ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
			WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
			InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
			DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
			CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
			TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
		}
		logOpts = append(logOpts, lgr.Map(colorizer))
	}
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
