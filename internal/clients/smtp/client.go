// Package smtp wraps the outbound mail submission endpoint behind a small
// send primitive: one message, one attempt, one error.
package smtp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/wneessen/go-mail"
)

// DefaultTimeout bounds dialing and submission of a single message.
const DefaultTimeout = 10 * time.Second

// Config carries the SMTP relay settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Timeout  time.Duration
}

// Client submits mail over SMTP. There is no queue and no retry; a failed
// send is reported once to the caller.
type Client struct {
	cfg Config
}

// NewClient validates the relay settings and returns a client.
func NewClient(cfg Config) (*Client, error) {
	cfg.Host = strings.TrimSpace(cfg.Host)
	cfg.From = strings.TrimSpace(cfg.From)
	if cfg.Host == "" {
		return nil, errors.New("smtp host is required")
	}
	if cfg.From == "" {
		return nil, errors.New("smtp sender address is required")
	}
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Client{cfg: cfg}, nil
}

// Send delivers one HTML message and returns its message id.
func (c *Client) Send(ctx context.Context, to, subject, htmlBody string) (string, error) {
	if c == nil {
		return "", errors.New("smtp client not configured")
	}
	to = strings.TrimSpace(to)
	if to == "" {
		return "", errors.New("recipient address is required")
	}

	msg := mail.NewMsg()
	if err := msg.From(c.cfg.From); err != nil {
		return "", fmt.Errorf("set sender: %w", err)
	}
	if err := msg.To(to); err != nil {
		return "", fmt.Errorf("set recipient: %w", err)
	}
	msg.Subject(subject)
	msg.SetMessageID()
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	opts := []mail.Option{
		mail.WithPort(c.cfg.Port),
		mail.WithTimeout(c.cfg.Timeout),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	}
	if c.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(c.cfg.Username),
			mail.WithPassword(c.cfg.Password),
		)
	}
	client, err := mail.NewClient(c.cfg.Host, opts...)
	if err != nil {
		return "", fmt.Errorf("build smtp client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return "", fmt.Errorf("send mail: %w", err)
	}
	return msg.GetMessageID(), nil
}
