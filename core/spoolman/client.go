package spoolman

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const apiPrefix = "/api/v1"

// APIError is returned when Spoolman answers with a non-2xx status.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("spoolman: status %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is a 404 from Spoolman.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 404
}

// Client talks to the Spoolman REST API.
type Client struct {
	http   *resty.Client
	logger *zap.Logger
}

// NewClient creates a new Spoolman client.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 10
	}
	retries := cfg.RetryCount
	if retries < 0 {
		retries = 0
	}

	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(cfg.URL, "/")+apiPrefix).
		SetTimeout(time.Duration(timeout)*time.Second).
		SetRetryCount(retries).
		SetRetryWaitTime(500*time.Millisecond).
		SetRetryMaxWaitTime(3*time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	httpClient.AddRetryCondition(retryable)

	return &Client{http: httpClient, logger: logger}
}

// retryable retries transport errors and 5xx answers of idempotent requests.
// A failed POST may already have created the record, so it is never resent.
// 4xx responses are final.
func retryable(r *resty.Response, err error) bool {
	if r == nil || r.Request == nil {
		return false
	}
	switch r.Request.Method {
	case resty.MethodGet, resty.MethodPatch:
	default:
		return false
	}
	return err != nil || r.StatusCode() >= 500
}

// GetSpools returns every spool in the inventory, in the order Spoolman
// lists them.
func (c *Client) GetSpools(ctx context.Context) ([]Spool, error) {
	var spools []Spool
	if err := c.do(ctx, resty.MethodGet, "/spool", nil, &spools); err != nil {
		return nil, fmt.Errorf("failed to list spools: %w", err)
	}
	return spools, nil
}

// CreateSpool creates a new spool and returns it with its assigned ID.
func (c *Client) CreateSpool(ctx context.Context, req SpoolCreate) (*Spool, error) {
	var spool Spool
	if err := c.do(ctx, resty.MethodPost, "/spool", req, &spool); err != nil {
		return nil, fmt.Errorf("failed to create spool: %w", err)
	}
	c.logger.Debug("Created spool", zap.Int("spool_id", spool.ID), zap.Int("filament_id", req.FilamentID))
	return &spool, nil
}

// UpdateSpool applies a partial update to the spool with the given ID.
func (c *Client) UpdateSpool(ctx context.Context, id int, update SpoolUpdate) (*Spool, error) {
	var spool Spool
	if err := c.do(ctx, resty.MethodPatch, fmt.Sprintf("/spool/%d", id), update, &spool); err != nil {
		return nil, fmt.Errorf("failed to update spool %d: %w", id, err)
	}
	return &spool, nil
}

// GetFilaments returns every filament definition.
func (c *Client) GetFilaments(ctx context.Context) ([]Filament, error) {
	var filaments []Filament
	if err := c.do(ctx, resty.MethodGet, "/filament", nil, &filaments); err != nil {
		return nil, fmt.Errorf("failed to list filaments: %w", err)
	}
	return filaments, nil
}

// CreateFilament creates a new filament definition.
func (c *Client) CreateFilament(ctx context.Context, req FilamentCreate) (*Filament, error) {
	var filament Filament
	if err := c.do(ctx, resty.MethodPost, "/filament", req, &filament); err != nil {
		return nil, fmt.Errorf("failed to create filament: %w", err)
	}
	c.logger.Info("Created filament",
		zap.Int("filament_id", filament.ID),
		zap.String("name", filament.Name),
		zap.String("material", filament.Material),
	)
	return &filament, nil
}

// GetVendors returns every vendor.
func (c *Client) GetVendors(ctx context.Context) ([]Vendor, error) {
	var vendors []Vendor
	if err := c.do(ctx, resty.MethodGet, "/vendor", nil, &vendors); err != nil {
		return nil, fmt.Errorf("failed to list vendors: %w", err)
	}
	return vendors, nil
}

// CreateVendor creates a new vendor.
func (c *Client) CreateVendor(ctx context.Context, req VendorCreate) (*Vendor, error) {
	var vendor Vendor
	if err := c.do(ctx, resty.MethodPost, "/vendor", req, &vendor); err != nil {
		return nil, fmt.Errorf("failed to create vendor: %w", err)
	}
	return &vendor, nil
}

// Health checks that Spoolman is reachable.
func (c *Client) Health(ctx context.Context) error {
	if err := c.do(ctx, resty.MethodGet, "/health", nil, nil); err != nil {
		return fmt.Errorf("spoolman health check failed: %w", err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}
	if result != nil {
		// Spoolman responses are always JSON.
		req.SetResult(result).ForceContentType("application/json")
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return err
	}
	if resp.IsError() {
		msg := strings.TrimSpace(resp.String())
		if msg == "" {
			msg = resp.Status()
		}
		c.logger.Warn("Spoolman request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status_code", resp.StatusCode()),
		)
		return &APIError{StatusCode: resp.StatusCode(), Message: msg}
	}
	return nil
}
