// Package email sends transactional notifications through Resend.
//
// The notifier is fire-and-forget by contract: Send never returns an error,
// and callers must not let a notification failure fail the operation that
// triggered it.
package email

import (
	"context"
	"io"
	"log/slog"

	"github.com/resend/resend-go/v2"
)

// Options describes a single outgoing notification.
type Options struct {
	To       []string
	Subject  string
	Template string
	Data     map[string]any
}

type Notifier struct {
	client *resend.Client
	from   string
	logger *slog.Logger
}

// NewNotifier builds a notifier. An empty API key yields a disabled
// notifier: Send logs and reports false without attempting delivery.
func NewNotifier(apiKey, from string, logger *slog.Logger) *Notifier {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	n := &Notifier{from: from, logger: logger}
	if apiKey != "" {
		n.client = resend.NewClient(apiKey)
	}
	return n
}

// Send renders the named template and delivers the message. The return
// value reports delivery only; it is safe to ignore.
func (n *Notifier) Send(ctx context.Context, opts Options) bool {
	if n.client == nil {
		n.logger.Warn("email notifier not configured, dropping message", "template", opts.Template, "to", opts.To)
		return false
	}
	if len(opts.To) == 0 {
		n.logger.Warn("email without recipients dropped", "template", opts.Template)
		return false
	}

	html, text := Render(opts.Template, opts.Data)

	_, err := n.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    n.from,
		To:      opts.To,
		Subject: opts.Subject,
		Html:    html,
		Text:    text,
	})
	if err != nil {
		n.logger.Error("email send failed", "template", opts.Template, "to", opts.To, "err", err)
		return false
	}

	n.logger.Info("email sent", "template", opts.Template, "to", opts.To)
	return true
}
