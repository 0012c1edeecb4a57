package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/heavymart/backend/internal/config"
	"github.com/heavymart/backend/internal/logger"
)

// httpMailer delivers messages through a JSON-over-HTTP mail provider. One
// POST per recipient; the provider endpoint is <base>/send.
type httpMailer struct {
	client *resty.Client
	logger *logger.Logger
}

// NewHTTPMailer constructs a [Mailer] against the provider described by cfg.
// The API key, when set, rides along as a bearer token.
//
// Returns an error if cfg.ProviderURL is empty or cannot be parsed as a valid
// URL.
func NewHTTPMailer(cfg config.Mail, logger *logger.Logger) (Mailer, error) {
	baseURL, err := normalizeBaseURL(cfg.ProviderURL)
	if err != nil {
		return nil, fmt.Errorf("invalid mail provider url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Content-Type", "application/json")
	if cfg.APIKey != "" {
		client.SetAuthToken(cfg.APIKey)
	}

	return &httpMailer{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Send implements [Mailer]. It POSTs the message to <base>/send and treats
// any non-2xx status as a per-recipient failure.
func (m *httpMailer) Send(ctx context.Context, msg Message) error {
	resp, err := m.client.R().
		SetContext(ctx).
		SetBody(msg).
		Post("/send")
	if err != nil {
		m.logger.Err(err).Str("to", msg.To).Msg("mail provider request failed")
		return fmt.Errorf("%w: %w", ErrProviderRequest, err)
	}

	if resp.IsError() {
		m.logger.Error().
			Str("to", msg.To).
			Int("status", resp.StatusCode()).
			Msg("mail provider rejected message")
		return fmt.Errorf("%w: status %d", ErrProviderRejected, resp.StatusCode())
	}

	return nil
}
