package feed

import (
	"encoding/xml"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/secwatch/pkg/domain"
)

func TestGenerator_GenerateRSS(t *testing.T) {
	generator := NewGenerator("https://example.com/")
	now := time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC)

	items := []domain.AccumulatedItem{
		{Item: domain.Item{Title: "Ransomware hits hospital", Link: "https://bc.example/1",
			Description: "Systems offline", Source: domain.SourceBleepingComputer}, AddedAt: now.Add(-48 * time.Hour)},
		{Item: domain.Item{Title: "Patch Tuesday & more", Link: "https://krebs.example/2",
			Description: "Updates <critical>", Source: domain.SourceKrebs}, AddedAt: now.Add(-24 * time.Hour)},
	}

	t.Run("basic structure", func(t *testing.T) {
		rss, err := generator.GenerateRSS(items, now)
		require.NoError(t, err)

		assert.Contains(t, rss, `<?xml version="1.0" encoding="UTF-8"?>`)
		assert.Contains(t, rss, `<rss version="2.0" xmlns:atom="http://www.w3.org/2005/Atom">`)
		assert.Contains(t, rss, `<title>secwatch - weekly digest</title>`)
		assert.Contains(t, rss, `<link>https://example.com/</link>`)
		assert.Contains(t, rss, `href="https://example.com/rss/weekly"`)
		assert.Contains(t, rss, `<category>Krebs on Security</category>`)
		assert.Contains(t, rss, `<category>Bleeping Computer</category>`)
		// special characters are escaped
		assert.Contains(t, rss, `Patch Tuesday &amp; more`)
		assert.Contains(t, rss, `Updates &lt;critical&gt;`)
	})

	t.Run("newest first", func(t *testing.T) {
		rss, err := generator.GenerateRSS(items, now)
		require.NoError(t, err)

		var parsed RSS
		require.NoError(t, xml.Unmarshal([]byte(rss), &parsed))
		require.Len(t, parsed.Channel.Items, 2)
		assert.Equal(t, "https://krebs.example/2", parsed.Channel.Items[0].Link)
		assert.Equal(t, "https://bc.example/1", parsed.Channel.Items[1].Link)
		assert.Equal(t, now.Add(-24*time.Hour).Format(time.RFC1123Z), parsed.Channel.Items[0].PubDate)
		assert.Equal(t, now.Format(time.RFC1123Z), parsed.Channel.LastBuildDate)
	})

	t.Run("empty accumulator", func(t *testing.T) {
		rss, err := generator.GenerateRSS(nil, now)
		require.NoError(t, err)
		assert.Contains(t, rss, `<channel>`)
		assert.NotContains(t, rss, `<item>`)
	})
}
