package main

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/secwatch/pkg/config"
	"github.com/umputun/secwatch/pkg/domain"
	"github.com/umputun/secwatch/pkg/notify"
)

func TestRun_MissingConfig(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: "non-existent-config.yml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestRun_InvalidConfig(t *testing.T) {
	cfgFile := filepath.Join(t.TempDir(), "invalid.yml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("invalid: yaml: content: ["), 0o600))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: cfgFile})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestRun_ServerStartStop(t *testing.T) {
	port := freePort(t)
	t.Setenv("DB_PATH", t.TempDir())
	t.Setenv("SECWATCH_TEST_PORT", fmt.Sprintf("%d", port))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- run(ctx, Opts{Config: "testdata/test_config.yml", DryRun: true})
	}()

	url := fmt.Sprintf("http://127.0.0.1:%d/ping", port)
	require.Eventually(t, func() bool {
		resp, err := http.Get(url) //nolint:gosec,noctx // test url
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return resp.StatusCode == http.StatusOK && string(body) == "pong"
	}, 5*time.Second, 50*time.Millisecond)

	resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/api/v1/status", port)) //nolint:gosec,noctx // test url
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "secwatch", resp.Header.Get("App-Name"))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server shutdown timeout")
	}
}

func TestRun_ServerDisabled(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("server:\n  disabled: true\n"), 0o600))

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	opts := Opts{Config: cfgFile, DB: "file:" + filepath.Join(dir, "test.db") + "?cache=shared&mode=rwc", DryRun: true}
	st := time.Now()
	require.NoError(t, run(ctx, opts))
	assert.GreaterOrEqual(t, time.Since(st), 250*time.Millisecond, "run blocks until context is done")
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults without file", func(t *testing.T) {
		cfg, err := loadConfig(Opts{})
		require.NoError(t, err)
		assert.Equal(t, ":8080", cfg.Server.Listen)
		assert.Equal(t, "America/Chicago", cfg.Timezone)
	})

	t.Run("overrides", func(t *testing.T) {
		cfg, err := loadConfig(Opts{DB: "file:other.db", Listen: "127.0.0.1:9999"})
		require.NoError(t, err)
		assert.Equal(t, "file:other.db", cfg.Database.DSN)
		assert.Equal(t, "127.0.0.1:9999", cfg.Server.Listen)
	})
}

func TestMakeNotifier(t *testing.T) {
	cfg := config.Default()

	n := makeNotifier(cfg, true)
	logNotifier, ok := n.(*notify.Log)
	require.True(t, ok)
	assert.Equal(t, "@everyone", logNotifier.Mention)

	_, ok = makeNotifier(cfg, false).(*notify.Discord)
	assert.True(t, ok)
}

func TestKnownChannels(t *testing.T) {
	cfg := config.Default()
	cfg.Notify.Channels = map[domain.ChannelRef]string{"news": "https://discord.example.com/api/webhooks/1/a"}

	assert.Equal(t, []domain.ChannelRef{"news"}, knownChannels(cfg, false))
	assert.Nil(t, knownChannels(cfg, true))

	cfg.Notify.Channels = nil
	chans := knownChannels(cfg, false)
	assert.NotNil(t, chans, "no configured channels rejects every name")
	assert.Empty(t, chans)
}

func TestSetupLog(t *testing.T) {
	t.Run("debug mode enabled", func(t *testing.T) {
		setupLog(true, false)
	})

	t.Run("debug mode disabled", func(t *testing.T) {
		setupLog(false, false)
	})

	t.Run("with secrets", func(t *testing.T) {
		setupLog(true, false, "secret1", "secret2")
	})

	t.Run("no color mode", func(t *testing.T) {
		setupLog(false, true)
	})
}

func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())
	return port
}
