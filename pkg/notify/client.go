package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Request is the payload the contact-email relay expects. Optionals travel as
// explicit nulls, mirroring what was stored.
type Request struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Subject     *string `json:"subject"`
	Message     string  `json:"message"`
	ServiceType *string `json:"service_type"`
}

// Client invokes the notification relay over HTTP. One attempt per call,
// no retries: the caller decides what a failure means.
type Client struct {
	relayURL string
	http     *http.Client
}

func NewClient(relayURL string) *Client {
	return &Client{
		relayURL: relayURL,
		http:     &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) Notify(ctx context.Context, req Request) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("notify: encode payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.relayURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("notify: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("notify: call relay: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("notify: relay returned %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
	return nil
}
