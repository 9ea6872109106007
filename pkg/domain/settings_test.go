package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	assert.Nil(t, s.WatchedEpisodeTitle)
	assert.Nil(t, s.DigestChannel)
	assert.Nil(t, s.DarknetChannel)
	assert.Empty(t, s.Keywords)
	assert.NotNil(t, s.SentItems)
	assert.Equal(t, []string{"08:00", "15:15"}, s.NotificationTimes)
	assert.True(t, s.TagUserOnNotify)

	// defaults must not share the package level slice
	s.NotificationTimes[0] = "09:00"
	assert.Equal(t, "08:00", DefaultNotificationTimes[0])
}

func TestSettings_Clone(t *testing.T) {
	title := "Ep100"
	ch := ChannelRef("news")
	s := DefaultSettings()
	s.WatchedEpisodeTitle = &title
	s.DigestChannel = &ch
	s.Keywords = []string{"ransomware"}
	s.SentItems["https://example.com/1"] = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	c := s.Clone()
	require.Equal(t, s, c)

	*c.WatchedEpisodeTitle = "Ep101"
	*c.DigestChannel = "other"
	c.Keywords[0] = "phishing"
	c.SentItems["https://example.com/2"] = time.Now()

	assert.Equal(t, "Ep100", *s.WatchedEpisodeTitle)
	assert.Equal(t, ChannelRef("news"), *s.DigestChannel)
	assert.Equal(t, []string{"ransomware"}, s.Keywords)
	assert.Len(t, s.SentItems, 1)
}

func TestSettings_Normalize(t *testing.T) {
	s := &Settings{}
	s.Normalize()
	assert.NotNil(t, s.Keywords)
	assert.NotNil(t, s.SentItems)
	assert.NotNil(t, s.WeeklyAccumulator)
	assert.Equal(t, DefaultNotificationTimes, s.NotificationTimes)
}

func TestParseNotificationTimes(t *testing.T) {
	tbl := []struct {
		name    string
		in      []string
		want    []string
		wantErr bool
	}{
		{name: "single", in: []string{"08:00"}, want: []string{"08:00"}},
		{name: "two sorted", in: []string{"15:15", "08:00"}, want: []string{"08:00", "15:15"}},
		{name: "duplicates collapsed", in: []string{"08:00", "08:00"}, want: []string{"08:00"}},
		{name: "empty", in: nil, wantErr: true},
		{name: "too many", in: []string{"01:00", "02:00", "03:00"}, wantErr: true},
		{name: "bad hour", in: []string{"24:00"}, wantErr: true},
		{name: "bad minute", in: []string{"10:60"}, wantErr: true},
		{name: "no padding", in: []string{"8:00"}, wantErr: true},
		{name: "garbage", in: []string{"noon"}, wantErr: true},
	}

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseNotificationTimes(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				var cfgErr *ConfigError
				assert.True(t, errors.As(err, &cfgErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClockTime_Matches(t *testing.T) {
	ct, err := ParseClockTime("08:00")
	require.NoError(t, err)
	assert.True(t, ct.Matches(time.Date(2024, 5, 1, 8, 0, 59, 0, time.UTC)))
	assert.False(t, ct.Matches(time.Date(2024, 5, 1, 8, 1, 0, 0, time.UTC)))
	assert.False(t, ct.Matches(time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC)))
}
