package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/secwatch/pkg/domain"
	"github.com/umputun/secwatch/pkg/scheduler/mocks"
)

func TestScheduler_DigestCommands(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, nil)

	reply, err := env.sched.EnableDigest(ctx, "news")
	require.NoError(t, err)
	assert.Equal(t, "Daily news digest enabled!\nYou'll receive 1 article from each source at:\n• 08:00\n• 15:15\n(America/Chicago)", reply)
	require.NotNil(t, env.lastSaved().DigestChannel)
	assert.Equal(t, domain.ChannelRef("news"), *env.lastSaved().DigestChannel)

	_, err = env.sched.EnableDigest(ctx, " ")
	var ce *domain.ConfigError
	require.ErrorAs(t, err, &ce)

	reply, err = env.sched.DisableDigest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Daily news digest disabled.", reply)
	assert.Nil(t, env.lastSaved().DigestChannel)

	_, err = env.sched.RunDigestNow(ctx)
	require.ErrorAs(t, err, &ce)
	assert.Empty(t, env.provider.FetchCalls())
}

func TestScheduler_UnknownChannel(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, nil)
	env.setItems(domain.SourceDarknetDiaries,
		domain.Item{Title: "Ep100", Link: "https://dd/100", Source: domain.SourceDarknetDiaries})

	cmds := map[string]func() (string, error){
		"enable digest": func() (string, error) { return env.sched.EnableDigest(ctx, "no-such-channel") },
		"enable watch":  func() (string, error) { return env.sched.EnableEpisodeWatch(ctx, "no-such-channel") },
		"fetch now":     func() (string, error) { return env.sched.FetchNow(ctx, "all", "no-such-channel") },
		"episodes":      func() (string, error) { return env.sched.LatestEpisodes(ctx, "no-such-channel") },
	}
	for name, cmd := range cmds {
		t.Run(name, func(t *testing.T) {
			reply, err := cmd()
			var ce *domain.ConfigError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, `unknown channel "no-such-channel"`, ce.Msg)
			assert.Empty(t, reply)
		})
	}

	assert.Nil(t, env.lastSaved(), "nothing persisted")
	assert.Empty(t, env.provider.FetchCalls())
	assert.Empty(t, env.notifier.SendCalls())
	st := env.sched.Status()
	assert.Empty(t, st.DigestChannel)
	assert.Empty(t, st.EpisodeChannel)
}

func TestScheduler_AnyChannelWithoutRegistry(t *testing.T) {
	store := &mocks.SettingsStoreMock{
		LoadFunc: func(context.Context) (*domain.Settings, error) { return domain.DefaultSettings(), nil },
		SaveFunc: func(context.Context, *domain.Settings) error { return nil },
	}
	sched, err := NewScheduler(context.Background(), Params{Store: store, Clock: &fakeClock{now: fakeNow()}})
	require.NoError(t, err)

	_, err = sched.EnableDigest(context.Background(), "whatever")
	require.NoError(t, err)
	assert.Equal(t, "whatever", sched.Status().DigestChannel)
}

func TestScheduler_EpisodeWatchCommands(t *testing.T) {
	ctx := context.Background()

	t.Run("records current episode", func(t *testing.T) {
		env := newTestEnv(t, nil)
		env.setItems(domain.SourceDarknetDiaries,
			domain.Item{Title: "EP 150: Mini-Stories", Link: "https://dd/150", Source: domain.SourceDarknetDiaries})

		reply, err := env.sched.EnableEpisodeWatch(ctx, "podcasts")
		require.NoError(t, err)
		assert.Equal(t, "I will notify this channel when new Darknet Diaries episodes are released!\nLatest episode: EP 150: Mini-Stories", reply)
		saved := env.lastSaved()
		require.NotNil(t, saved.WatchedEpisodeTitle)
		assert.Equal(t, "EP 150: Mini-Stories", *saved.WatchedEpisodeTitle)
		assert.Equal(t, domain.ChannelRef("podcasts"), *saved.DarknetChannel)
		assert.Empty(t, env.notifier.SendCalls())

		reply, err = env.sched.DisableEpisodeWatch(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Darknet Diaries notifications disabled.", reply)
		assert.Nil(t, env.lastSaved().DarknetChannel)
		assert.NotNil(t, env.lastSaved().WatchedEpisodeTitle, "known title kept")
	})

	t.Run("fetch failure still enables", func(t *testing.T) {
		env := newTestEnv(t, nil)
		env.setErr(domain.SourceDarknetDiaries, errors.New("down"))
		reply, err := env.sched.EnableEpisodeWatch(ctx, "podcasts")
		require.NoError(t, err)
		assert.Equal(t, "Watching enabled, but couldn't fetch current episode.", reply)
		assert.Equal(t, "podcasts", env.sched.Status().EpisodeChannel)
		assert.Nil(t, env.lastSaved().WatchedEpisodeTitle)
	})
}

func TestScheduler_KeywordCommands(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, nil)

	reply, err := env.sched.SetKeywords(ctx, []string{" Ransomware", "CVE", "ransomware", ""})
	require.NoError(t, err)
	assert.Equal(t, "Keyword filter set: cve, ransomware", reply)
	assert.Equal(t, []string{"cve", "ransomware"}, env.lastSaved().Keywords)

	_, err = env.sched.SetKeywords(ctx, []string{" ", ""})
	var ce *domain.ConfigError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, []string{"cve", "ransomware"}, env.sched.Status().Keywords)

	reply, err = env.sched.ClearKeywords(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Keyword filter cleared, all articles match.", reply)
	assert.Empty(t, env.lastSaved().Keywords)
}

func TestScheduler_SetNotificationTimes(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, nil)

	reply, err := env.sched.SetNotificationTimes(ctx, []string{"18:30", "07:05"})
	require.NoError(t, err)
	assert.Equal(t, "Digest times set: 07:05, 18:30 (America/Chicago)", reply)
	assert.Equal(t, []string{"07:05", "18:30"}, env.lastSaved().NotificationTimes)
	saves := len(env.store.SaveCalls())

	tests := [][]string{
		{"25:00"},
		{"8:00"},
		{"08:60"},
		{"noon"},
		{},
		{"01:00", "02:00", "03:00"},
	}
	for _, tc := range tests {
		_, err := env.sched.SetNotificationTimes(ctx, tc)
		var ce *domain.ConfigError
		require.ErrorAs(t, err, &ce, "input %v", tc)
	}
	assert.Equal(t, []string{"07:05", "18:30"}, env.sched.Status().NotificationTimes)
	assert.Len(t, env.store.SaveCalls(), saves, "rejected input is not saved")
}

func TestScheduler_ToggleMention(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, nil)

	reply, err := env.sched.ToggleMention(ctx)
	require.NoError(t, err)
	assert.Equal(t, "User mention disabled.", reply)
	assert.False(t, env.lastSaved().TagUserOnNotify)

	reply, err = env.sched.ToggleMention(ctx)
	require.NoError(t, err)
	assert.Equal(t, "User mention enabled.", reply)
	assert.True(t, env.lastSaved().TagUserOnNotify)
}

func TestScheduler_Stats(t *testing.T) {
	initial := digestSettings()
	initial.Keywords = []string{"cve"}
	initial.WatchedEpisodeTitle = strPtr("Ep100")
	initial.WeeklyAccumulator = []domain.AccumulatedItem{{Item: newsItem(domain.SourceWired, "a", "https://w/a")}}
	initial.SentItems["https://w/a"] = fakeNow()
	env := newTestEnv(t, initial)
	env.clock.Set(fakeNow())

	text, err := env.sched.Stats(context.Background())
	require.NoError(t, err)
	assert.Contains(t, text, "Digest channel: news")
	assert.Contains(t, text, "Digest times: 08:00 (America/Chicago)")
	assert.Contains(t, text, "Episode watch channel: disabled")
	assert.Contains(t, text, "Latest known episode: Ep100")
	assert.Contains(t, text, "Keywords: cve")
	assert.Contains(t, text, "User mention: false")
	assert.Contains(t, text, "Links sent in the last 24h: 1")
	assert.Contains(t, text, "Articles this week: 1")

	st := env.sched.Status()
	assert.Equal(t, []SourceCount{{Source: domain.SourceWired, Count: 1}}, st.WeeklyCounts)
	assert.Nil(t, st.LastDigest)
}

func TestScheduler_FetchNow(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, nil)
	env.setItems(domain.SourceWired,
		newsItem(domain.SourceWired, "w1", "https://w/1"), newsItem(domain.SourceWired, "w2", "https://w/2"))
	env.setItems(domain.SourceKrebs, newsItem(domain.SourceKrebs, "k1", "https://k/1"))

	t.Run("single source", func(t *testing.T) {
		reply, err := env.sched.FetchNow(ctx, "wired", "general")
		require.NoError(t, err)
		assert.Equal(t, "Found 2 articles!", reply)
		calls := env.notifier.SendCalls()
		require.Len(t, calls, 2)
		assert.Equal(t, domain.ChannelRef("general"), calls[0].Channel)
		assert.Equal(t, "Source: WIRED", calls[0].Msg.Embed.Footer)
	})

	t.Run("all sources, no dedup", func(t *testing.T) {
		reply, err := env.sched.FetchNow(ctx, "all", "general")
		require.NoError(t, err)
		assert.Equal(t, "Found 3 articles!", reply)
		assert.Len(t, env.notifier.SendCalls(), 5)
		assert.Empty(t, env.sched.Status().WeeklyItems)
	})

	t.Run("nothing fetched", func(t *testing.T) {
		reply, err := env.sched.FetchNow(ctx, "ars", "general")
		require.NoError(t, err)
		assert.Equal(t, "Couldn't fetch news right now. Try again later!", reply)
	})

	t.Run("invalid source", func(t *testing.T) {
		for _, src := range []string{"reddit", "darknet"} {
			_, err := env.sched.FetchNow(ctx, src, "general")
			var ce *domain.ConfigError
			require.ErrorAs(t, err, &ce, src)
		}
	})
}

func TestScheduler_LatestEpisodes(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, nil)

	reply, err := env.sched.LatestEpisodes(ctx, "podcasts")
	require.NoError(t, err)
	assert.Equal(t, "Couldn't fetch episodes right now. Try again later!", reply)

	env.setItems(domain.SourceDarknetDiaries,
		domain.Item{Title: "Ep101", Link: "https://dd/101", Source: domain.SourceDarknetDiaries, Date: "Mar 5, 2024"},
		domain.Item{Title: "Ep100", Link: "https://dd/100", Source: domain.SourceDarknetDiaries})
	reply, err = env.sched.LatestEpisodes(ctx, "podcasts")
	require.NoError(t, err)
	assert.Equal(t, "Found 2 episodes!", reply)
	calls := env.notifier.SendCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, "🎙️ Ep101", calls[0].Msg.Embed.Title)
	assert.Equal(t, "Released", calls[0].Msg.Embed.Fields[0].Name)
}
