package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Client talks to the backend data service. A client is immutable:
// endpoint and credential are fixed at construction, so attaching a
// token to one client never changes the credential of another. One
// client per request is the intended unit of use.
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
}

// Endpoint returns the resolved backend endpoint URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Authenticated reports whether the client carries a credential.
func (c *Client) Authenticated() bool {
	return c.token != ""
}

// Query executes a named backend operation with the given arguments
// and decodes the JSON result into out. When the client carries a
// token it is presented as a bearer credential on every call. Non-2xx
// responses become ErrBackendFailure; response bodies of failed calls
// are discarded, not surfaced.
func (c *Client) Query(ctx context.Context, operation string, args any, out any) error {
	body, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("backend: encode %s args: %w", operation, err)
	}

	url := strings.TrimSuffix(c.endpoint, "/") + "/operations/" + operation
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("backend: build %s request: %w", operation, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Join(ErrBackendFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused; the payload of a
		// failed call is backend-internal and must not leak upward.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		return errors.Join(ErrBackendFailure, fmt.Errorf("operation %s: status %d", operation, resp.StatusCode))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Join(ErrBackendFailure, fmt.Errorf("operation %s: decode result: %w", operation, err))
	}
	return nil
}
