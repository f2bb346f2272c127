package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/magicaleks/aicaps-agent/internal/domain"
)

const (
	apiKeyHeader    = "X-API-Key"
	applicationJSON = "application/json"
)

// Client talks to the inventory service that aggregates capability reports
// across hosts. Transient failures are retried with backoff.
type Client struct {
	baseURL string
	apiKey  string
	http    *retryablehttp.Client
}

func NewClient(baseURL, apiKey string) *Client {
	client := retryablehttp.NewClient()
	client.RetryMax = 3
	client.Logger = nil

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    client,
	}
}

func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodGet, "/ping", nil)
	if err != nil {
		return err
	}
	drainAndClose(resp)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("inventory ping: unexpected status %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) PublishReport(ctx context.Context, report domain.HostReport) error {
	resp, err := c.do(ctx, http.MethodPost, "/hosts/report", report)
	if err != nil {
		return err
	}
	drainAndClose(resp)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return fmt.Errorf("publish report: unexpected status %d", resp.StatusCode)
	}
	return nil
}

// drainAndClose empties the body so the transport can reuse the connection.
func drainAndClose(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}

func (c *Client) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		payload = data
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set(apiKeyHeader, c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", applicationJSON)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	return resp, nil
}
