package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/scry-flashgen/internal/config"
	"github.com/phrazzld/scry-flashgen/internal/redact"
	"github.com/sethvargo/go-retry"
	"github.com/wneessen/go-mail"
)

// DefaultRetryBase is the first backoff interval between delivery attempts.
const DefaultRetryBase = time.Second

const implicitTLSPort = 465

// MailSender delivers composed messages. *mail.Client satisfies it.
type MailSender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// EmailNotifier sends notifications over SMTP.
type EmailNotifier struct {
	sender     MailSender
	from       string
	to         string
	maxRetries int
	retryBase  time.Duration
	logger     *slog.Logger
}

// EmailOption customizes an EmailNotifier.
type EmailOption func(*EmailNotifier)

// WithSender replaces the SMTP client, typically with a test double.
func WithSender(sender MailSender) EmailOption {
	return func(n *EmailNotifier) {
		n.sender = sender
	}
}

// WithRetryBase sets the initial backoff between attempts.
func WithRetryBase(d time.Duration) EmailOption {
	return func(n *EmailNotifier) {
		n.retryBase = d
	}
}

// NewEmailNotifier creates an EmailNotifier from cfg. Port 465 uses implicit
// TLS; any other port requires STARTTLS.
func NewEmailNotifier(cfg config.NotifyConfig, logger *slog.Logger, opts ...EmailOption) (*EmailNotifier, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.Sender == "" || cfg.Receiver == "" {
		return nil, fmt.Errorf("%w: sender and receiver are required", ErrInvalidMessage)
	}

	n := &EmailNotifier{
		from:       cfg.Sender,
		to:         cfg.Receiver,
		maxRetries: cfg.MaxRetries,
		retryBase:  DefaultRetryBase,
		logger:     logger.With("component", "email_notifier"),
	}
	for _, opt := range opts {
		opt(n)
	}

	if n.sender == nil {
		client, err := newMailClient(cfg)
		if err != nil {
			return nil, err
		}
		n.sender = client
	}

	return n, nil
}

func newMailClient(cfg config.NotifyConfig) (*mail.Client, error) {
	port := cfg.SMTPPort
	if port == 0 {
		port = implicitTLSPort
	}

	clientOpts := []mail.Option{
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Sender),
		mail.WithPassword(cfg.AppPassword),
	}
	if port == implicitTLSPort {
		clientOpts = append(clientOpts, mail.WithSSL())
	} else {
		clientOpts = append(clientOpts, mail.WithTLSPolicy(mail.TLSMandatory))
	}
	if cfg.Timeout > 0 {
		clientOpts = append(clientOpts, mail.WithTimeout(cfg.Timeout))
	}

	client, err := mail.NewClient(cfg.SMTPHost, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create SMTP client: %w", err)
	}
	return client, nil
}

// Notify implements Notifier. Transient failures are retried with
// exponential backoff up to the configured number of retries.
func (n *EmailNotifier) Notify(ctx context.Context, excerpt, questions string) error {
	msg, err := n.compose(excerpt, questions)
	if err != nil {
		return err
	}

	backoff := retry.WithMaxRetries(uint64(max(n.maxRetries, 0)), retry.NewExponential(n.retryBase))

	attempt := 0
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		if err := n.sender.DialAndSendWithContext(ctx, msg); err != nil {
			n.logger.WarnContext(ctx, "Notification attempt failed",
				"attempt", attempt,
				"error", redact.Error(err))
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w after %d attempts: %w", ErrDeliveryFailed, attempt, err)
	}

	n.logger.InfoContext(ctx, "Notification sent", "attempts", attempt)
	return nil
}

func (n *EmailNotifier) compose(excerpt, questions string) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(n.from); err != nil {
		return nil, fmt.Errorf("%w: sender: %v", ErrInvalidMessage, err)
	}
	if err := msg.To(n.to); err != nil {
		return nil, fmt.Errorf("%w: receiver: %v", ErrInvalidMessage, err)
	}
	msg.Subject(Subject)
	msg.SetDate()
	msg.SetBodyString(mail.TypeTextPlain, FormatBody(excerpt, questions))
	return msg, nil
}
