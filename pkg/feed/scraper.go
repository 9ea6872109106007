package feed

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"

	"github.com/umputun/secwatch/pkg/domain"
)

const noDescription = "No description"

// siteRule describes where listing entries live on a page
type siteRule struct {
	container string // entry block, only the first limit blocks are considered
	link      string // anchor holding title and href, relative to container
	desc      string // description element, relative to container or to the link's parent block
	date      string // optional release date element
	descLimit int
	descNear  bool // description and date are searched in the parent of the matched link block
}

// siteRules are selectors per source for the default listing pages
var siteRules = map[domain.Source]siteRule{
	domain.SourceBleepingComputer: {container: "div.bc_latest_news_text", link: "a", desc: "p", descLimit: domain.NewsDescriptionLimit},
	domain.SourceWired:            {container: "div.summary-item", link: "h3 a", desc: "p.summary-item__dek", descLimit: domain.NewsDescriptionLimit},
	domain.SourceArsTechnica:      {container: "article", link: "h2 a", desc: "p.excerpt", descLimit: domain.NewsDescriptionLimit},
	domain.SourceKrebs:            {container: "article.post", link: "h2.entry-title a", desc: "div.entry-content p", descLimit: domain.NewsDescriptionLimit},
	domain.SourceDarknetDiaries: {container: "h2", link: "a", desc: "p", date: "time",
		descLimit: domain.EpisodeDescriptionLimit, descNear: true},
}

// HTMLScraper extracts items from a listing page using per-site selectors
type HTMLScraper struct {
	fetcher *HTTPFetcher
	source  domain.Source
	pageURL string
	limit   int
	rule    siteRule
}

// NewHTMLScraper makes a scraper for source, returns error if no selectors are known for it
func NewHTMLScraper(fetcher *HTTPFetcher, source domain.Source, pageURL string, limit int) (*HTMLScraper, error) {
	rule, ok := siteRules[source]
	if !ok {
		return nil, fmt.Errorf("no html rules for source %s", source)
	}
	return &HTMLScraper{fetcher: fetcher, source: source, pageURL: pageURL, limit: limit, rule: rule}, nil
}

// Fetch downloads the page and returns items in page order
func (s *HTMLScraper) Fetch(ctx context.Context) ([]domain.Item, error) {
	body, err := s.fetcher.Get(ctx, s.pageURL, acceptHTML)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	// pages may declare a non-utf8 charset in meta tags
	utf8Body, err := charset.NewReader(body, "")
	if err != nil {
		return nil, fmt.Errorf("detect charset: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(utf8Body)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return s.extract(doc)
}

func (s *HTMLScraper) extract(doc *goquery.Document) ([]domain.Item, error) {
	base, err := url.Parse(s.pageURL)
	if err != nil {
		return nil, fmt.Errorf("parse page url: %w", err)
	}

	blocks := doc.Find(s.rule.container)
	if s.limit > 0 && blocks.Length() > s.limit {
		blocks = blocks.Slice(0, s.limit)
	}

	items := make([]domain.Item, 0, blocks.Length())
	blocks.Each(func(_ int, block *goquery.Selection) {
		a := block.Find(s.rule.link).First()
		href, ok := a.Attr("href")
		title := cleanText(a.Text())
		if !ok || strings.TrimSpace(href) == "" || title == "" {
			return
		}

		scope := block
		if s.rule.descNear {
			scope = block.Parent()
		}

		desc := noDescription
		if d := cleanText(scope.Find(s.rule.desc).First().Text()); d != "" {
			desc = d
		}

		item := domain.Item{
			Title:       title,
			Link:        resolveLink(base, href),
			Description: domain.Truncate(desc, s.rule.descLimit),
			Source:      s.source,
		}
		if s.rule.date != "" {
			item.Date = cleanText(scope.Find(s.rule.date).First().Text())
		}
		items = append(items, item)
	})
	return items, nil
}

// resolveLink turns relative hrefs into absolute links against the page url
func resolveLink(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
