package blink

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/roivaz/jupiter-dao-unstake/internal/logging"
)

const (
	DefaultBaseURL = "https://jupiter.dial.to"
	DefaultTimeout = 30 * time.Second

	clientKeyHeader = "X-Blink-Client-Key"
)

// Config describes how to reach the Blink API. A zero Timeout means DefaultTimeout.
type Config struct {
	BaseURL   string
	ClientKey string
	Timeout   time.Duration
	// HTTPClient overrides the client built from Timeout.
	HTTPClient *http.Client
	Logger     logging.Logger
}

// Client posts Blink actions. It is safe for concurrent use; the only shared
// state is the underlying *http.Client.
type Client struct {
	baseURL    string
	clientKey  string
	httpClient *http.Client
	log        logging.Logger
}

// NewClient builds a Client from cfg. A blank BaseURL means DefaultBaseURL.
func NewClient(cfg Config) *Client {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL:    baseURL,
		clientKey:  cfg.ClientKey,
		httpClient: httpClient,
		log:        cfg.Logger,
	}
}

// PostAction sends body as JSON to the action at path and returns the decoded
// JSON object from a 2xx response. Any failure is returned as *Error.
func (c *Client) PostAction(ctx context.Context, path string, query url.Values, body any) (map[string]any, error) {
	if c.clientKey == "" {
		return nil, newConfigurationError(MissingClientKeyMessage)
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, newUnexpectedError("encode request body: %w", err)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, newUnexpectedError("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(clientKeyHeader, c.clientKey)

	start := time.Now()
	c.log.Debug("posting blink action", "path", path, "query", query.Encode())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error(err, "blink request failed", "path", path, "elapsed", time.Since(start).String())
		return nil, newTransportError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Error(err, "reading blink response failed", "path", path, "status", resp.StatusCode)
		return nil, newTransportError(err)
	}

	c.log.Info("blink action completed", "path", path, "status", resp.StatusCode, "elapsed", time.Since(start).String())

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, newRemoteAPIError(resp.StatusCode, remoteErrorMessage(raw))
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var result map[string]any
	if err := dec.Decode(&result); err != nil {
		return nil, newUnexpectedError("decode response body: %w", err)
	}
	if result == nil {
		return nil, newUnexpectedError("decode response body: expected a JSON object")
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, newUnexpectedError("decode response body: unexpected data after JSON object")
	}
	return result, nil
}

// remoteErrorMessage prefers the "error" field of a JSON object body and
// falls back to the raw body text for anything else.
func remoteErrorMessage(body []byte) string {
	if gjson.ValidBytes(body) {
		parsed := gjson.ParseBytes(body)
		if parsed.IsObject() {
			if field := parsed.Get("error"); field.Exists() {
				if field.Type == gjson.Null {
					return field.Raw
				}
				return field.String()
			}
		}
	}
	return string(body)
}
