package feed

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/secwatch/pkg/config"
	"github.com/umputun/secwatch/pkg/domain"
)

// Adapter fetches items of a single source
type Adapter interface {
	Fetch(ctx context.Context) ([]domain.Item, error)
}

// Manager maps sources to adapters and implements the source provider used by the scheduler
type Manager struct {
	adapters map[domain.Source]Adapter
}

// NewManager builds adapters for every configured source
func NewManager(sources map[domain.Source]config.SourceConfig, fetcher *HTTPFetcher) (*Manager, error) {
	m := &Manager{adapters: make(map[domain.Source]Adapter, len(sources))}
	for src, sc := range sources {
		switch sc.Kind {
		case config.KindRSS:
			m.adapters[src] = NewRSSParser(fetcher, src, sc.URL, sc.Limit)
		case config.KindHTML, "":
			scraper, err := NewHTMLScraper(fetcher, src, sc.URL, sc.Limit)
			if err != nil {
				return nil, err
			}
			m.adapters[src] = scraper
		default:
			return nil, fmt.Errorf("source %s: unknown kind %q", src, sc.Kind)
		}
	}
	return m, nil
}

// NewManagerWithAdapters makes a manager over prepared adapters
func NewManagerWithAdapters(adapters map[domain.Source]Adapter) *Manager {
	return &Manager{adapters: adapters}
}

// Fetch returns normalized items of the source. Any failure is a *domain.FetchError.
func (m *Manager) Fetch(ctx context.Context, src domain.Source) ([]domain.Item, error) {
	adapter, ok := m.adapters[src]
	if !ok {
		return nil, &domain.FetchError{Source: src, Err: fmt.Errorf("source not configured")}
	}

	st := time.Now()
	items, err := adapter.Fetch(ctx)
	if err != nil {
		return nil, &domain.FetchError{Source: src, Err: err}
	}

	res := make([]domain.Item, 0, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			lgr.Printf("[DEBUG] skip item %q from %s: %v", item.Title, src.Name(), err)
			continue
		}
		res = append(res, item)
	}
	lgr.Printf("[DEBUG] fetched %d items from %s in %v", len(res), src.Name(), time.Since(st).Truncate(time.Millisecond))
	return res, nil
}
