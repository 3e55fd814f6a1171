// Package sheets talks to the spreadsheet-backed tournament API. Every
// operation is a POST of {"action": ..., ...fields} to one endpoint; the
// action name, not the URL, selects the backend codepath.
package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

const defaultRetries = 2

// The backend is slow and occasionally flaky, so transport failures come
// back to callers as a regular failure body instead of an error. Every
// caller decodes one shape regardless of what went wrong.
var networkFailure = []byte(`{"success":false,"message":"Network Error: Check API URL and Permissions"}`)

type Client struct {
	Endpoint string
	HTTP     *http.Client

	// Retries is the number of extra attempts after the first; RetryWait is
	// the fixed pause between them. Backend latency varies too much for
	// exponential backoff to buy anything here.
	Retries   int
	RetryWait time.Duration
}

func New(endpoint string) *Client {
	return &Client{
		Endpoint:  endpoint,
		HTTP:      &http.Client{Timeout: 30 * time.Second},
		Retries:   defaultRetries,
		RetryWait: time.Second,
	}
}

type payload map[string]any

// Status is the generic mutation response. Success false covers both a
// backend rejection and transport exhaustion; callers treat them the same.
type Status struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// send serializes the tagged request, posts it, and retries transport
// failures with a fixed wait. It always returns a valid JSON body: on
// exhaustion, a synthetic failure.
func (c *Client) send(ctx context.Context, action string, fields payload) []byte {
	body := make(payload, len(fields)+1)
	for k, v := range fields {
		body[k] = v
	}
	body["action"] = action

	buf, err := json.Marshal(body)
	if err != nil {
		log.Printf("sheets: marshal %s: %v", action, err)
		return networkFailure
	}

	for attempt := 0; ; attempt++ {
		raw, err := c.post(ctx, buf)
		if err == nil {
			return raw
		}
		if attempt >= c.Retries {
			log.Printf("sheets: %s failed after %d attempts: %v", action, attempt+1, err)
			return networkFailure
		}
		log.Printf("sheets: retrying %s (%d attempts left): %v", action, c.Retries-attempt, err)
		select {
		case <-time.After(c.RetryWait):
		case <-ctx.Done():
			log.Printf("sheets: %s gave up waiting: %v", action, ctx.Err())
			return networkFailure
		}
	}
}

// post is a single attempt. A non-2xx status and a body that is not JSON
// both count as transport failures so they go through the retry path.
func (c *Client) post(ctx context.Context, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	// text/plain avoids the CORS preflight the Apps Script endpoint rejects
	req.Header.Set("Content-Type", "text/plain;charset=utf-8")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("http %d", resp.StatusCode)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if !json.Valid(raw) {
		return nil, fmt.Errorf("non-JSON response (%d bytes)", len(raw))
	}
	return raw, nil
}

// status decodes a mutation response body.
func status(raw []byte) Status {
	var s Status
	if err := json.Unmarshal(raw, &s); err != nil {
		return Status{Message: "Backend returned an unreadable response"}
	}
	return s
}
