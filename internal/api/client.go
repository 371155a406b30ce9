package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"meridastore.com/app/internal/shared/apperr"
)

// Client talks to the backend REST API. It holds no state beyond the
// base URL; the bearer token is passed per call because it belongs to
// the request's session, not to the process.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	var out []Product
	if err := c.do(ctx, http.MethodGet, "/api/products", "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateProduct(ctx context.Context, token string, in ProductInput) (*Product, error) {
	var out Product
	if err := c.do(ctx, http.MethodPost, "/api/products", token, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProduct(ctx context.Context, token, id string, in ProductInput) (*Product, error) {
	var out Product
	if err := c.do(ctx, http.MethodPut, "/api/products/"+url.PathEscape(id), token, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteProduct(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/products/"+url.PathEscape(id), token, nil, nil)
}

func (c *Client) ListOrders(ctx context.Context, token string) ([]Order, error) {
	var out []Order
	if err := c.do(ctx, http.MethodGet, "/api/orders", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SetOrderPaid updates a single order's paid flag.
func (c *Client) SetOrderPaid(ctx context.Context, token, id string, isPaid bool) (*Order, error) {
	body := map[string]bool{"isPaid": isPaid}
	var out Order
	if err := c.do(ctx, http.MethodPut, "/api/orders/"+url.PathEscape(id), token, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateOrder(ctx context.Context, token string, in OrderInput) (*Order, error) {
	var out Order
	if err := c.do(ctx, http.MethodPost, "/api/orders", token, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	var out LoginResult
	if err := c.do(ctx, http.MethodPost, "/api/users/login", "", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// errorBody is the backend's error envelope.
type errorBody struct {
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal %s %s: %w", method, path, err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return fmt.Errorf("new request %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("api %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.logger.LogAttrs(ctx, slog.LevelDebug, "api_call",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Backend hata mesajı varsa kullanıcıya taşınır.
		var eb errorBody
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
		_ = json.Unmarshal(raw, &eb)
		err := fmt.Errorf("api %s %s: status %d", method, path, resp.StatusCode)
		if eb.Message != "" {
			return apperr.UpstreamErr(eb.Message, err)
		}
		return err
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode %s %s: %w", method, path, err)
		}
	}
	return nil
}
