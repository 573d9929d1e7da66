// Package warehouse fetches the star-schema tables (dealership and product
// dimensions, current-inventory facts) from the upstream GraphQL endpoint.
// Fetch failures are returned to the caller as errors; retry and backoff are
// deliberately not handled here.
package warehouse

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Client talks to the warehouse GraphQL API.
type Client struct {
	Endpoint   string
	Token      string
	PageSize   int
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// NewClient creates a warehouse client. pageSize bounds each bulk inventory
// page; the upstream caps result sets, so large snapshots are fetched in
// price-ordered pages.
func NewClient(endpoint, token string, pageSize int, logger *zap.Logger) *Client {
	return &Client{
		Endpoint:   endpoint,
		Token:      token,
		PageSize:   pageSize,
		HTTPClient: &http.Client{Timeout: 120 * time.Second},
		Logger:     logger,
	}
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors"`
}

// Execute posts one GraphQL query and returns the raw data payload. A
// non-200 status or an errors array in the envelope is an error.
func (c *Client) Execute(ctx context.Context, query string, variables map[string]any) (json.RawMessage, error) {
	body, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return nil, fmt.Errorf("failed to encode query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Logger.Error("Warehouse query failed", zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		c.Logger.Error("Warehouse query returned non-OK status",
			zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("warehouse query failed: %d %s", resp.StatusCode, string(respBody))
	}

	var envelope graphQLResponse
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode warehouse response: %w", err)
	}
	if len(envelope.Errors) > 0 {
		c.Logger.Error("Warehouse query returned errors",
			zap.String("message", envelope.Errors[0].Message),
			zap.Int("error_count", len(envelope.Errors)))
		return nil, fmt.Errorf("warehouse query errors: %s", envelope.Errors[0].Message)
	}
	return envelope.Data, nil
}
