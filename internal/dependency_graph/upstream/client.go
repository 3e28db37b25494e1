// Package upstream is a class-info provider backed by a remote HTTP service
// exposing /base-classes, /class-info/{name} and /child-classes/{name}.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/knitviz/di-graph-backend/internal/dependency_graph/domain"
	"github.com/knitviz/di-graph-backend/internal/logger"
)

const (
	DefaultTimeout = 10 * time.Second
	DefaultRate    = 20
	DefaultBurst   = 40
)

type Options struct {
	Timeout time.Duration
	Rate    float64 // requests per second; <=0 disables limiting
	Burst   int
}

type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

var _ domain.Provider = (*Client)(nil)

func NewClient(baseURL string, opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Burst <= 0 {
		opts.Burst = DefaultBurst
	}
	limit := rate.Inf
	if opts.Rate > 0 {
		limit = rate.Limit(opts.Rate)
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: opts.Timeout},
		limiter: rate.NewLimiter(limit, opts.Burst),
	}
}

func (c *Client) BaseClasses(ctx context.Context) (domain.BaseClasses, error) {
	var out domain.BaseClasses
	if err := c.getJSON(ctx, "base_classes", "/base-classes", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ClassInfo(ctx context.Context, name string) (*domain.ClassInfo, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.ErrInvalidClassName
	}
	var out domain.ClassInfo
	if err := c.getJSON(ctx, "class_info", "/class-info/"+escapePath(name), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ChildClasses(ctx context.Context, name string) (*domain.ChildClasses, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.ErrInvalidClassName
	}
	var out domain.ChildClasses
	if err := c.getJSON(ctx, "child_classes", "/child-classes/"+escapePath(name), &out); err != nil {
		return nil, err
	}
	if out.ChildClasses == nil {
		out.ChildClasses = []domain.ClassRef{}
	}
	return &out, nil
}

// escapePath keeps the slashes of a class name so the server can match it
// against a path wildcard.
func escapePath(name string) string {
	parts := strings.Split(strings.TrimSpace(name), "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}

func (c *Client) getJSON(ctx context.Context, op, path string, dst any) (err error) {
	log := logger.New(ctx)
	start := time.Now()
	defer func() { recordProviderCall(op, time.Since(start), err) }()

	if err = c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		log.LogError(op, err)
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if rid := logger.RequestID(ctx); rid != "" {
		req.Header.Set("X-Request-Id", rid)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.LogError(op, err)
		return fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%w: %s", domain.ErrClassNotFound, path)
	case resp.StatusCode >= 400:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		log.LogWarnf(op, "upstream returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
		return fmt.Errorf("upstream %s returned status %d", path, resp.StatusCode)
	}

	if err = json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
