package notify

import (
	"context"
	"strings"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/secwatch/pkg/domain"
)

// Log writes messages to the log instead of delivering them, used for dry runs
type Log struct {
	Mention string
}

// Send logs msg, never fails
func (l *Log) Send(_ context.Context, channel domain.ChannelRef, msg domain.Message) error {
	var sb strings.Builder
	if msg.Mention && l.Mention != "" {
		sb.WriteString(l.Mention + " ")
	}
	sb.WriteString(msg.Content)
	if e := msg.Embed; e != nil {
		if sb.Len() > 0 {
			sb.WriteString(" | ")
		}
		sb.WriteString(e.Title)
		if e.URL != "" {
			sb.WriteString(" <" + e.URL + ">")
		}
	}
	lgr.Printf("[INFO] #%s: %s", channel, sb.String())
	return nil
}
