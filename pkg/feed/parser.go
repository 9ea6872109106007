package feed

import (
	"context"
	"fmt"

	"github.com/mmcdole/gofeed"

	"github.com/umputun/secwatch/pkg/domain"
)

// RSSParser reads items from an RSS/Atom feed
type RSSParser struct {
	fetcher *HTTPFetcher
	source  domain.Source
	feedURL string
	limit   int
}

// NewRSSParser creates a parser for the feed of source
func NewRSSParser(fetcher *HTTPFetcher, source domain.Source, feedURL string, limit int) *RSSParser {
	return &RSSParser{fetcher: fetcher, source: source, feedURL: feedURL, limit: limit}
}

// Fetch retrieves and parses the feed, items are returned in feed order
func (p *RSSParser) Fetch(ctx context.Context) ([]domain.Item, error) {
	body, err := p.fetcher.Get(ctx, p.feedURL, acceptFeed)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	feed, err := gofeed.NewParser().Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	descLimit := domain.NewsDescriptionLimit
	if p.source == domain.SourceDarknetDiaries {
		descLimit = domain.EpisodeDescriptionLimit
	}

	items := make([]domain.Item, 0, len(feed.Items))
	for _, fi := range feed.Items {
		if p.limit > 0 && len(items) >= p.limit {
			break
		}
		link := fi.Link
		if link == "" {
			link = fi.GUID
		}
		if link == "" {
			continue
		}

		desc := cleanText(fi.Description)
		if desc == "" {
			desc = cleanText(fi.Content)
		}
		if desc == "" {
			desc = noDescription
		}

		item := domain.Item{
			Title:       cleanText(fi.Title),
			Link:        link,
			Description: domain.Truncate(desc, descLimit),
			Source:      p.source,
		}
		if p.source == domain.SourceDarknetDiaries && fi.PublishedParsed != nil {
			item.Date = fi.PublishedParsed.Format("Jan 2, 2006")
		}
		items = append(items, item)
	}
	return items, nil
}
