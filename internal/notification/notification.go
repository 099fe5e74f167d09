// Package notification handles sending notifications to external services.
package notification

import (
	"fmt"
	"strings"

	"github.com/containrrr/shoutrrr"
	"github.com/zorak1103/datecalc/internal/config"
)

// SendFunc delivers a message to a Shoutrrr URL.
type SendFunc func(url, message string) error

// Notifier handles sending notifications via Shoutrrr
type Notifier struct {
	enabled     bool
	shoutrrrURL string
	send        SendFunc
}

// NewNotifier initializes a Shoutrrr-based notification client from config.
func NewNotifier(cfg *config.Config) (*Notifier, error) {
	if !cfg.Notification.Enabled {
		return &Notifier{enabled: false}, nil
	}

	url := strings.TrimSpace(cfg.Notification.ShoutrrURL)
	if url == "" {
		return &Notifier{enabled: false}, fmt.Errorf("notification enabled but shoutrrr_url not configured: provide URL in format 'service://credentials' (e.g., slack://token@channel, discord://token@webhookid)")
	}

	return &Notifier{
		enabled:     true,
		shoutrrrURL: url,
		send:        func(url, message string) error { return shoutrrr.Send(url, message) },
	}, nil
}

// WithSender replaces the delivery function, mainly for tests.
func (n *Notifier) WithSender(send SendFunc) *Notifier {
	n.send = send
	return n
}

// SendResult delivers a computed result line via the configured notification channel.
// clamped adds a hint that the numbers were computed on boundary dates.
func (n *Notifier) SendResult(resultLine string, clamped bool) error {
	if !n.enabled {
		return nil // Notifications disabled
	}

	var sb strings.Builder
	sb.WriteString("📅 datecalc result\n")
	sb.WriteString(resultLine)
	if clamped {
		sb.WriteString("\n⚠️  Input clamped to the supported range 1901-01-01 to 2999-12-31")
	}

	if err := n.send(n.shoutrrrURL, sb.String()); err != nil {
		return fmt.Errorf("notification failed to send via %s: %w", ServiceType(n.shoutrrrURL), err)
	}

	return nil
}

// IsEnabled reports whether notifications are configured and active.
func (n *Notifier) IsEnabled() bool {
	return n.enabled
}

// ServiceType extracts the service name from a Shoutrrr URL (e.g., "slack://..." -> "slack").
func ServiceType(url string) string {
	if idx := strings.Index(url, "://"); idx > 0 {
		return url[:idx]
	}
	return "unknown"
}
