package feed

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/umputun/secwatch/pkg/domain"
)

// Generator renders delivered digest items as an RSS feed
type Generator struct {
	baseURL string
}

// NewGenerator creates a new feed generator
func NewGenerator(baseURL string) *Generator {
	return &Generator{
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// GenerateRSS creates an RSS 2.0 feed of items delivered this week, newest first
func (g *Generator) GenerateRSS(items []domain.AccumulatedItem, now time.Time) (string, error) {
	rssItems := make([]*RSSItem, 0, len(items))
	for i := len(items) - 1; i >= 0; i-- {
		it := items[i]
		rssItems = append(rssItems, &RSSItem{
			Title:       it.Item.Title,
			Link:        it.Item.Link,
			GUID:        it.Item.Link,
			Description: it.Item.Description,
			PubDate:     it.AddedAt.Format(time.RFC1123Z),
			Category:    it.Item.Source.Name(),
		})
	}

	feed := &RSS{
		Version: "2.0",
		Atom:    "http://www.w3.org/2005/Atom",
		Channel: &RSSChannel{
			Title:         "secwatch - weekly digest",
			Link:          g.baseURL + "/",
			Description:   "Security news delivered by the digest this week",
			AtomLink:      &AtomLink{Href: g.baseURL + "/rss/weekly", Rel: "self", Type: "application/rss+xml"},
			LastBuildDate: now.Format(time.RFC1123Z),
			Items:         rssItems,
		},
	}

	output, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal RSS: %w", err)
	}
	return xml.Header + string(output), nil
}
