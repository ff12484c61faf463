// Package catalog talks to the upstream product catalog over HTTP.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MikeMC777/catalog-gateway/internal/product"
	"github.com/MikeMC777/catalog-gateway/pkg/logger"
)

const (
	DefaultBaseURL = "https://dummyjson.com/products/"
	DefaultTimeout = 5 * time.Second
)

// RequestError reports a failed upstream call: transport failure, timeout or
// a non-2xx status. Status is 0 when no response was received.
type RequestError struct {
	Method string
	URL    string
	Status int
	Err    error
}

func (e *RequestError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s resulted in a %d %s response", e.Method, e.URL, e.Status, http.StatusText(e.Status))
	}
	return e.Err.Error()
}

func (e *RequestError) Unwrap() error { return e.Err }

// Client is safe for concurrent use and must not be mutated after construction.
type Client struct {
	HTTP    *http.Client
	BaseURL string
}

var _ product.Repository = (*Client)(nil)

func New(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		HTTP:    &http.Client{Timeout: timeout},
		BaseURL: strings.TrimRight(baseURL, "/") + "/",
	}
}

// List fetches one page of the collection: GET base?limit=&skip=.
func (c *Client) List(ctx context.Context, q product.Query) (*product.Page, error) {
	v := url.Values{}
	v.Set("limit", strconv.Itoa(q.Limit))
	v.Set("skip", strconv.Itoa(q.Skip))

	var body map[string]any
	if err := c.get(ctx, c.BaseURL+"?"+v.Encode(), &body); err != nil {
		return nil, err
	}
	return pageFrom(body)
}

// GetByID fetches a single record: GET base/{id}.
func (c *Client) GetByID(ctx context.Context, id string) (product.Raw, error) {
	var body map[string]any
	if err := c.get(ctx, c.BaseURL+url.PathEscape(id), &body); err != nil {
		return nil, err
	}
	if body == nil {
		return nil, product.ErrInvalidResponse
	}
	return product.Raw(body), nil
}

// Search runs a text query: GET base/search?q=&limit=&skip=.
func (c *Client) Search(ctx context.Context, q product.Query) (*product.Page, error) {
	v := url.Values{}
	v.Set("q", q.Q)
	v.Set("limit", strconv.Itoa(q.Limit))
	v.Set("skip", strconv.Itoa(q.Skip))

	var body map[string]any
	if err := c.get(ctx, c.BaseURL+"search?"+v.Encode(), &body); err != nil {
		return nil, err
	}
	return pageFrom(body)
}

func (c *Client) get(ctx context.Context, target string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return &RequestError{Method: http.MethodGet, URL: target, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	res, err := c.HTTP.Do(req)
	if err != nil {
		return &RequestError{Method: http.MethodGet, URL: target, Err: err}
	}
	defer res.Body.Close()

	logger.Debug(ctx).
		Str("url", target).
		Int("status", res.StatusCode).
		Dur("dur", time.Since(start)).
		Msg("upstream request")

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return &RequestError{Method: http.MethodGet, URL: target, Status: res.StatusCode}
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", product.ErrInvalidResponse, err)
	}
	return nil
}

// totalFrom accepts a JSON number or a numeric string.
func totalFrom(v any) (int, bool) {
	switch t := v.(type) {
	case float64:
		return int(t), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		return int(f), true
	}
	return 0, false
}

// pageFrom keeps key presence so the caller can reject incomplete payloads.
// A products value that is not a list of objects counts as absent.
func pageFrom(body map[string]any) (*product.Page, error) {
	p := &product.Page{}
	if items, ok := body["products"].([]any); ok {
		p.HasProducts = true
		p.Products = make([]product.Raw, 0, len(items))
		for _, it := range items {
			m, ok := it.(map[string]any)
			if !ok {
				p.HasProducts = false
				p.Products = nil
				break
			}
			p.Products = append(p.Products, product.Raw(m))
		}
	}
	if total, ok := totalFrom(body["total"]); ok {
		p.HasTotal = true
		p.Total = total
	}
	return p, nil
}
