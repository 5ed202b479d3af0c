package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/tigerater/chronoctl/kernel/model"
)

// Error is an application-level failure: the backend answered, but with a
// status outside the call's documented success code. Message is taken from
// the response body's message field when present.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

// Client is the typed HTTP client for the backend REST API.
type Client struct {
	BaseURL    string
	Token      string
	OrgID      string
	HTTPClient *http.Client
}

func NewClient(endpoint *model.EndpointConfig) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(endpoint.URL, "/"),
		Token:      endpoint.Token,
		OrgID:      endpoint.OrgID,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// do issues a single request and enforces the response contract. Transport
// failures and non-success statuses surface the same way to callers: as an
// error, the latter as *Error carrying the body's message field or a generic
// fallback.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, expect int, out any) error {
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "failed to encode request body")
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return errors.Wrapf(err, "failed to build %s %s", method, path)
	}
	req.Header.Set("Authorization", "Token "+c.Token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "request failed: %s %s", method, path)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "failed to read response body for %s %s", method, path)
	}

	if resp.StatusCode != expect {
		return &Error{StatusCode: resp.StatusCode, Message: extractMessage(data, resp.StatusCode)}
	}
	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return errors.Wrapf(err, "failed to decode response for %s %s", method, path)
		}
	}
	return nil
}

func extractMessage(data []byte, status int) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return fmt.Sprintf("request failed with status %d", status)
}

func (c *Client) orgQuery() url.Values {
	values := url.Values{}
	if c.OrgID != "" {
		values.Set("orgID", c.OrgID)
	}
	return values
}
