// Package notify delivers rendered messages to chat channels
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/time/rate"

	"github.com/umputun/secwatch/pkg/domain"
)

// DiscordParams configures the webhook notifier
type DiscordParams struct {
	Webhooks  map[domain.ChannelRef]string // channel name to webhook url
	Mention   string                       // prepended to content of messages with Mention set
	Timeout   time.Duration
	RateLimit time.Duration // minimal interval between posts
}

// Discord posts messages to channel webhooks
type Discord struct {
	webhooks map[domain.ChannelRef]string
	mention  string
	client   *http.Client
	limiter  *rate.Limiter
}

type webhookPayload struct {
	Content string         `json:"content,omitempty"`
	Embeds  []webhookEmbed `json:"embeds,omitempty"`
}

type webhookEmbed struct {
	Title       string              `json:"title,omitempty"`
	URL         string              `json:"url,omitempty"`
	Description string              `json:"description,omitempty"`
	Color       int                 `json:"color"`
	Fields      []domain.EmbedField `json:"fields,omitempty"`
	Footer      *webhookFooter      `json:"footer,omitempty"`
}

type webhookFooter struct {
	Text string `json:"text"`
}

// NewDiscord makes a webhook notifier
func NewDiscord(params DiscordParams) *Discord {
	if params.Timeout <= 0 {
		params.Timeout = 10 * time.Second
	}
	limit := rate.Inf
	if params.RateLimit > 0 {
		limit = rate.Every(params.RateLimit)
	}
	for name, url := range params.Webhooks {
		lgr.Printf("[DEBUG] webhook for channel %s: %s", name, url)
	}
	return &Discord{
		webhooks: params.Webhooks,
		mention:  params.Mention,
		client:   &http.Client{Timeout: params.Timeout},
		limiter:  rate.NewLimiter(limit, 1),
	}
}

// Send posts msg to the webhook of channel. Any failure is a *domain.DeliveryError.
func (d *Discord) Send(ctx context.Context, channel domain.ChannelRef, msg domain.Message) error {
	url, ok := d.webhooks[channel]
	if !ok {
		return &domain.DeliveryError{Channel: channel, Err: fmt.Errorf("no webhook configured")}
	}

	body, err := json.Marshal(d.payload(msg))
	if err != nil {
		return &domain.DeliveryError{Channel: channel, Err: fmt.Errorf("marshal payload: %w", err)}
	}

	if err := d.limiter.Wait(ctx); err != nil {
		return &domain.DeliveryError{Channel: channel, Err: fmt.Errorf("rate limiter: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return &domain.DeliveryError{Channel: channel, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return &domain.DeliveryError{Channel: channel, Err: fmt.Errorf("post webhook: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &domain.DeliveryError{Channel: channel,
			Err: fmt.Errorf("webhook status %d: %s", resp.StatusCode, bytes.TrimSpace(respBody))}
	}
	return nil
}

func (d *Discord) payload(msg domain.Message) webhookPayload {
	p := webhookPayload{Content: msg.Content}
	if msg.Mention && d.mention != "" {
		if p.Content == "" {
			p.Content = d.mention
		} else {
			p.Content = d.mention + " " + p.Content
		}
	}
	if e := msg.Embed; e != nil {
		we := webhookEmbed{Title: e.Title, URL: e.URL, Description: e.Description, Color: e.Color, Fields: e.Fields}
		if e.Footer != "" {
			we.Footer = &webhookFooter{Text: e.Footer}
		}
		p.Embeds = []webhookEmbed{we}
	}
	return p
}
