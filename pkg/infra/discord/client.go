package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/yumechi/make-something-webhook/pkg/domain/model"
)

const (
	defaultUserAgent = "Yumechi WebHook/1.0"
	defaultTimeout   = 10 * time.Second

	// responses beyond this are clipped in logs
	maxLoggedBody = 1024
)

// Client posts canonical messages to a Discord webhook endpoint
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// Option is a functional option for Client configuration
type Option func(*Client)

// WithHTTPClient overrides the HTTP client used for delivery
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithUserAgent overrides the User-Agent header sent on delivery
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// New creates a new Discord webhook client
func New(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		userAgent:  defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Post sends one canonical message to the webhook URL. Delivery is
// best-effort: a rejected response (non-2xx/3xx) is logged and swallowed,
// never retried. Only transport-level failures are returned.
func (c *Client) Post(ctx context.Context, webhookURL string, msg *model.Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return goerr.Wrap(err, "failed to encode message")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(body))
	if err != nil {
		return goerr.Wrap(err, "failed to create webhook request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "failed to post webhook message")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxLoggedBody))
		ctxlog.From(ctx).Warn("discord rejected webhook message",
			"status", resp.StatusCode,
			"response", string(respBody),
			"username", msg.Username,
			"content", msg.Content,
		)
	}

	return nil
}
