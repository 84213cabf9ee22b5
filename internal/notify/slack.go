package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/slack-go/slack"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/sales-calendar/internal/domain/appointment"
	"github.com/BruksfildServices01/sales-calendar/internal/stats"
)

// Poster is the part of *slack.Client the notifier needs.
type Poster interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

type SlackNotifier struct {
	api     Poster
	channel string
	log     *zap.Logger
}

// NewSlackNotifier returns a notifier that does nothing unless both a
// client and a channel are given.
func NewSlackNotifier(api Poster, channel string, log *zap.Logger) *SlackNotifier {
	if log == nil {
		log = zap.NewNop()
	}
	return &SlackNotifier{api: api, channel: channel, log: log}
}

// NewSlackClient returns nil for an empty token.
func NewSlackClient(token string) *slack.Client {
	if token == "" {
		return nil
	}
	return slack.New(token)
}

// FromToken builds a notifier posting with a bot token. An empty token or
// channel gives a disabled notifier.
func FromToken(token, channel string, log *zap.Logger) *SlackNotifier {
	var api Poster
	if c := NewSlackClient(token); c != nil {
		api = c
	}
	return NewSlackNotifier(api, channel, log)
}

func (n *SlackNotifier) Enabled() bool {
	return n != nil && n.api != nil && n.channel != ""
}

func (n *SlackNotifier) SendDailySummary(ctx context.Context, d *stats.Dashboard) error {
	if !n.Enabled() {
		return nil
	}

	text := FormatSummary(d)
	_, ts, err := n.api.PostMessageContext(ctx, n.channel,
		slack.MsgOptionText(text, false),
		slack.MsgOptionDisableLinkUnfurl(),
	)
	if err != nil {
		return fmt.Errorf("notify: post summary: %w", err)
	}

	n.log.Info("daily summary posted",
		zap.String("channel", n.channel),
		zap.String("date", d.Date),
		zap.String("ts", ts),
	)
	return nil
}

// FormatSummary renders the headline figures as Slack mrkdwn.
func FormatSummary(d *stats.Dashboard) string {
	s := d.Summary
	var b strings.Builder

	fmt.Fprintf(&b, "*Sales summary for %s*\n", d.Date)
	fmt.Fprintf(&b, "Booked: %d / %d slots (available %d, unavailable %d)\n",
		s.Booked, s.TotalSlots, s.Available, s.Unavailable)
	fmt.Fprintf(&b, "Show-up: %d  No-show: %d  Rescheduled: %d\n",
		s.ShowUp, s.NoShow, s.Rescheduled)
	fmt.Fprintf(&b, "Pitched: 10K %d  20K %d\n", s.Pitched10K, s.Pitched20K)
	fmt.Fprintf(&b, "Paid: %d (%s%%)\n", s.Paid, s.ConversionRate)
	fmt.Fprintf(&b, "Revenue: ₹%d (10K ₹%d, 20K ₹%d)",
		s.TotalRevenue,
		s.RevenueByTrack[domain.Track10K],
		s.RevenueByTrack[domain.Track20K],
	)
	if n := s.Unclassified.Total(); n > 0 {
		fmt.Fprintf(&b, "\n_%d record(s) carry unknown values and are left out of the buckets_", n)
	}
	return b.String()
}
