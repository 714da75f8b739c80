package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// RSVPClient submits event RSVPs to the live API. It is used by the outbox
// drain worker to flush queued registrations.
type RSVPClient struct {
	base   string
	tokens TokenSource
	client *http.Client
}

// NewRSVPClient creates an RSVP client against the API base URL.
func NewRSVPClient(cfg HTTPConfig, tokens TokenSource) *RSVPClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &RSVPClient{
		base:   strings.TrimRight(cfg.BaseURL, "/"),
		tokens: tokens,
		client: &http.Client{Timeout: timeout},
	}
}

func (c *RSVPClient) do(ctx context.Context, method, eventID, token string) error {
	url := fmt.Sprintf("%s/events/%s/rsvp", c.base, eventID)
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(nil))
	if err != nil {
		return networkError(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token == "" && c.tokens != nil {
		token = c.tokens()
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return networkError(err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return networkError(fmt.Errorf("decode response: %w", err))
	}
	if !env.Success {
		return apiErrorFrom(env.Error)
	}
	return nil
}

// Register submits an RSVP for the event. An empty token falls back to the
// client's TokenSource; the drain worker passes per-user tokens since the
// API reads the acting user from the claims.
func (c *RSVPClient) Register(ctx context.Context, eventID, token string) error {
	return c.do(ctx, http.MethodPost, eventID, token)
}

// Cancel withdraws an RSVP for the event.
func (c *RSVPClient) Cancel(ctx context.Context, eventID, token string) error {
	return c.do(ctx, http.MethodDelete, eventID, token)
}
