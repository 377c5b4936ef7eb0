package iris

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/kapu/namevibes-bot/internal/util"
	"github.com/kapu/namevibes-bot/pkg/errors"
	"go.uber.org/zap"
)

const (
	defaultAttempts   = 3
	defaultRetryDelay = 300 * time.Millisecond
)

// Client talks to the Iris HTTP API. Transport failures and 5xx replies are
// retried; 4xx replies are returned at once.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger

	attempts   int
	retryDelay time.Duration
}

func NewClient(baseURL string, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger:     util.OrNop(logger),
		attempts:   defaultAttempts,
		retryDelay: defaultRetryDelay,
	}
}

func (c *Client) GetConfig(ctx context.Context) (*Config, error) {
	var config Config
	if err := c.doRequest(ctx, http.MethodGet, "/config", nil, &config); err != nil {
		c.logger.Error("Failed to get Iris config", zap.Error(err))
		return nil, err
	}
	return &config, nil
}

// SendMessage posts a text reply to room.
func (c *Client) SendMessage(ctx context.Context, room, message string) error {
	req := ReplyRequest{
		Type: "text",
		Room: room,
		Data: message,
	}

	if err := c.doRequest(ctx, http.MethodPost, "/reply", req, nil); err != nil {
		c.logger.Error("Failed to send message",
			zap.Error(err),
			zap.String("room", room),
		)
		return err
	}

	return nil
}

// Check reports whether Iris answers its config endpoint.
func (c *Client) Check(ctx context.Context) error {
	return c.doRequest(ctx, http.MethodGet, "/config", nil, nil)
}

func (c *Client) doRequest(ctx context.Context, method, path string, reqBody, respBody any) error {
	url := c.baseURL + path

	var payload []byte
	if reqBody != nil {
		jsonData, err := json.Marshal(reqBody)
		if err != nil {
			return errors.NewAPIError("failed to marshal request", http.StatusBadRequest, map[string]any{
				"url": url,
			}).WithCause(err)
		}
		payload = jsonData
	}

	var lastErr error
	for attempt := 1; attempt <= c.attempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return lastErr
			case <-time.After(c.retryDelay * time.Duration(attempt-1)):
			}
			c.logger.Debug("Retrying Iris request",
				zap.String("path", path),
				zap.Int("attempt", attempt),
			)
		}

		apiErr, retry := c.send(ctx, method, url, payload, respBody)
		if apiErr == nil {
			return nil
		}
		lastErr = apiErr
		if !retry || ctx.Err() != nil {
			return lastErr
		}
	}
	return lastErr
}

// send performs one round trip. retry is true for transport failures and 5xx replies.
func (c *Client) send(ctx context.Context, method, url string, payload []byte, respBody any) (apiErr *errors.APIError, retry bool) {
	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return errors.NewAPIError("failed to create request", http.StatusInternalServerError, map[string]any{
			"url": url,
		}).WithCause(err), false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.NewAPIError("request failed", http.StatusBadGateway, map[string]any{
			"url": url,
		}).WithCause(err), true
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return errors.NewAPIError(
			fmt.Sprintf("Iris API error: %s", resp.Status),
			resp.StatusCode,
			map[string]any{
				"url":  url,
				"body": string(bodyBytes),
			},
		), resp.StatusCode >= http.StatusInternalServerError
	}

	if respBody != nil {
		if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
			return errors.NewAPIError("failed to decode response", http.StatusBadGateway, map[string]any{
				"url": url,
			}).WithCause(err), false
		}
	}

	return nil, false
}
