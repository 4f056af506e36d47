package client

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/fragpit/dockerhost-ip/internal/model"
)

const clientTimeout = 30 * time.Second

// Client asks a hostip server for the Docker host address.
type Client struct {
	l         *slog.Logger
	serverURL string
	client    *resty.Client
}

type Option func(*Client)

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.l = l
	}
}

// WithRetries configures resty's retry on transport errors and 5xx.
func WithRetries(count int, wait, maxWait time.Duration) Option {
	return func(c *Client) {
		c.client.
			SetRetryCount(count).
			SetRetryWaitTime(wait).
			SetRetryMaxWaitTime(maxWait)
	}
}

func New(serverURL string, opts ...Option) *Client {
	c := &Client{
		l:         slog.Default(),
		serverURL: strings.TrimRight(serverURL, "/"),
		client:    resty.New(),
	}

	c.client.
		SetTimeout(clientTimeout).
		SetRetryCount(3).
		SetRetryWaitTime(1*time.Second).
		SetRetryMaxWaitTime(5*time.Second).
		SetHeader("Accept", "application/json").
		AddRetryCondition(func(r *resty.Response, err error) bool {
			if err != nil {
				return true
			}
			// 503 means the server could not determine the host; asking
			// again gives the same answer.
			return r.StatusCode() >= http.StatusInternalServerError &&
				r.StatusCode() != http.StatusServiceUnavailable
		})

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Host returns the full server answer for GET /host.
func (c *Client) Host(ctx context.Context) (*model.HostResponse, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		Get(c.serverURL + "/host")
	if err != nil {
		c.l.Error("error requesting docker host", slog.Any("error", err))
		return nil, fmt.Errorf("error requesting docker host: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		var e model.ErrorResponse
		if err := json.Unmarshal(resp.Body(), &e); err == nil && e.Error != "" {
			return nil, fmt.Errorf("server error (%d): %s", resp.StatusCode(), e.Error)
		}
		return nil, fmt.Errorf("non-ok status code: %d", resp.StatusCode())
	}

	var out model.HostResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("error decoding response: %w", err)
	}

	return &out, nil
}

func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.client.R().
		SetContext(ctx).
		Get(c.serverURL + "/ping")
	if err != nil {
		return fmt.Errorf("error pinging server: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("non-ok status code: %d", resp.StatusCode())
	}

	return nil
}
