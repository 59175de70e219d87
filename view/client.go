package view

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// Client fetches the property documents endpoint and decodes the
// response into view-model records.
type Client struct {
	baseURL string
	http    *retryablehttp.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryWaitMin = 100 * time.Millisecond
	rc.RetryWaitMax = 900 * time.Millisecond
	rc.RetryMax = 3
	rc.Logger = nil
	// Retry transport failures only. A 500 carries the server's error
	// message, which must reach the error banner for the manual retry.
	rc.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if err != nil {
			return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
		}
		return false, nil
	}
	if timeout <= 0 {
		timeout = 6 * time.Second
	}
	rc.HTTPClient.Timeout = timeout

	return &Client{baseURL: baseURL, http: rc}
}

func (c *Client) FetchListings(ctx context.Context) ([]Record, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/properties", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var body struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&body)
		if body.Error != "" {
			return nil, fmt.Errorf("server error %d: %s", resp.StatusCode, body.Error)
		}
		return nil, fmt.Errorf("server error %d", resp.StatusCode)
	}

	// Decode loosely: depending on the server variant, fields may arrive
	// plain or boxed, so normalization happens per record.
	var body struct {
		Documents []map[string]any `json:"documents"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	records := make([]Record, 0, len(body.Documents))
	for _, doc := range body.Documents {
		records = append(records, NewRecord(doc))
	}
	return records, nil
}
