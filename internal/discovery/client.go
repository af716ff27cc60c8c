package discovery

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// ErrUnexpectedStatusCode indicates an HTTP response with unexpected status.
var ErrUnexpectedStatusCode = errors.New("unexpected status code")

const userAgent = "steamcollection/1.0"

// Response is the outcome of a successful discovery fetch.
type Response struct {
	StatusCode int
	Document   *Document
	Raw        []byte
	Duration   time.Duration
}

// StatusError carries the status code of a non-200 response.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%v: %d", ErrUnexpectedStatusCode, e.StatusCode)
}

// Is lets errors.Is match ErrUnexpectedStatusCode.
func (e *StatusError) Is(target error) bool {
	return target == ErrUnexpectedStatusCode
}

// Client fetches the discovery document. It issues exactly one request per
// call and never retries.
type Client struct {
	httpClient *http.Client
	endpoint   string
}

// NewClient creates a client for the given discovery endpoint. A zero timeout
// leaves the request unbounded.
func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   endpoint,
	}
}

// NewClientWithHTTP creates a client around an existing http.Client.
func NewClientWithHTTP(endpoint string, httpClient *http.Client) *Client {
	return &Client{
		httpClient: httpClient,
		endpoint:   endpoint,
	}
}

// Endpoint returns the configured discovery URL without credentials.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// RequestURL returns the discovery URL with the key query parameter attached.
func (c *Client) RequestURL(apiKey string) (string, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return "", fmt.Errorf("invalid discovery endpoint: %w", err)
	}

	q := u.Query()
	q.Set("key", apiKey)
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// Fetch retrieves and decodes the discovery document.
func (c *Client) Fetch(ctx context.Context, apiKey string) (*Response, error) {
	target, err := c.RequestURL(apiKey)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	startTime := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", redact(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)

		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	doc, err := Decode(body)
	if err != nil {
		return nil, err
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Document:   doc,
		Raw:        body,
		Duration:   time.Since(startTime),
	}, nil
}

// redact strips the request URL (which embeds the key) from transport errors.
func redact(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s: %w", urlErr.Op, urlErr.Err)
	}

	return err
}
