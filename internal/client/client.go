package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/osse101/Despensa_Go/internal/domain"
	"github.com/osse101/Despensa_Go/internal/handler"
	"github.com/osse101/Despensa_Go/internal/pantry"
	"github.com/osse101/Despensa_Go/internal/prepare"
)

// Defaults for the API client
const (
	DefaultBaseURL   = "http://localhost:8080"
	DefaultTimeout   = 10 * time.Second
	DefaultRetries   = 3
	DefaultRetryWait = 500 * time.Millisecond

	apiPrefix = "/api/v1"
)

// Options configures how the client reaches and authenticates to the API.
// Token wins over APIKey when both are set.
type Options struct {
	BaseURL   string
	Token     string
	APIKey    string
	UserID    string
	Timeout   time.Duration
	Retries   int
	RetryWait time.Duration
}

// APIError is a non-2xx answer from the API
type APIError struct {
	StatusCode int
	Message    string
	Fields     map[string]string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("API returned status: %d", e.StatusCode)
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

// IsConflict reports whether err is a 409 from the API
func IsConflict(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusConflict
}

// Client talks to the Despensa HTTP API
type Client struct {
	http *resty.Client
}

// New creates an API client. Server errors are retried with backoff.
func New(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Retries < 0 {
		opts.Retries = 0
	}
	if opts.RetryWait <= 0 {
		opts.RetryWait = DefaultRetryWait
	}

	rc := resty.New().
		SetBaseURL(opts.BaseURL).
		SetTimeout(opts.Timeout).
		SetRetryCount(opts.Retries).
		SetRetryWaitTime(opts.RetryWait).
		SetHeader("Accept", "application/json").
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			return err != nil || resp.StatusCode() >= http.StatusInternalServerError
		}).
		OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			req.SetHeader("X-Request-ID", uuid.NewString())
			return nil
		})

	switch {
	case opts.Token != "":
		rc.SetAuthToken(opts.Token)
	case opts.APIKey != "":
		rc.SetHeader("X-API-Key", opts.APIKey)
		if opts.UserID != "" {
			rc.SetHeader("X-User-ID", opts.UserID)
		}
	}

	return &Client{http: rc}
}

// Prepare runs or previews a menu preparation
func (c *Client) Prepare(ctx context.Context, menuID string, req prepare.Request) (*prepare.Result, error) {
	var result prepare.Result
	resp, err := c.request(ctx).
		SetBody(req).
		SetResult(&result).
		SetPathParam("id", menuID).
		Post(apiPrefix + "/menus/{id}/prepare")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetMenu fetches one menu
func (c *Client) GetMenu(ctx context.Context, menuID string) (*domain.Menu, error) {
	var m domain.Menu
	resp, err := c.request(ctx).
		SetResult(&m).
		SetPathParam("id", menuID).
		Get(apiPrefix + "/menus/{id}")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &m, nil
}

// ListMenus fetches one page of menus, newest first
func (c *Client) ListMenus(ctx context.Context, limit int, cursor string) (*domain.MenuPage, error) {
	var page domain.MenuPage
	req := c.request(ctx).SetResult(&page)
	setPaging(req, limit, cursor)
	resp, err := req.Get(apiPrefix + "/menus")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &page, nil
}

// PantryQuery selects a page of pantry items
type PantryQuery struct {
	Search   string
	Category string
	Limit    int
	Cursor   string
}

// ListPantry fetches one page of pantry items
func (c *Client) ListPantry(ctx context.Context, q PantryQuery) (*domain.PantryPage, error) {
	var page domain.PantryPage
	req := c.request(ctx).SetResult(&page)
	if q.Search != "" {
		req.SetQueryParam("search", q.Search)
	}
	if q.Category != "" {
		req.SetQueryParam("category", q.Category)
	}
	setPaging(req, q.Limit, q.Cursor)

	resp, err := req.Get(apiPrefix + "/pantry")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &page, nil
}

// AddPantryItems creates pantry items. A non-empty idempotency key makes
// retries of the same call safe.
func (c *Client) AddPantryItems(ctx context.Context, items []pantry.NewItem, idempotencyKey string) ([]domain.PantryItem, error) {
	var out handler.PantryItemsResponse
	req := c.request(ctx).
		SetBody(handler.CreatePantryRequest{Items: items}).
		SetResult(&out)
	if idempotencyKey != "" {
		req.SetHeader(handler.HeaderIdempotencyKey, idempotencyKey)
	}

	resp, err := req.Post(apiPrefix + "/pantry")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// ListUnits fetches the canonical units with their aliases
func (c *Client) ListUnits(ctx context.Context) ([]handler.UnitInfo, error) {
	var out handler.UnitsResponse
	resp, err := c.request(ctx).SetResult(&out).Get(apiPrefix + "/units")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return out.Units, nil
}

func (c *Client) request(ctx context.Context) *resty.Request {
	return c.http.R().
		SetContext(ctx).
		SetError(&handler.ValidationErrorResponse{})
}

func setPaging(req *resty.Request, limit int, cursor string) {
	if limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(limit))
	}
	if cursor != "" {
		req.SetQueryParam("cursor", cursor)
	}
}

func check(resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("failed to reach API: %w", err)
	}
	if !resp.IsError() {
		return nil
	}

	apiErr := &APIError{StatusCode: resp.StatusCode()}
	if body, ok := resp.Error().(*handler.ValidationErrorResponse); ok && body != nil {
		apiErr.Message = body.Error
		apiErr.Fields = body.Fields
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode())
	}
	return apiErr
}
