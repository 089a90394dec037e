package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"bookshare-backend/internal/config"
	"bookshare-backend/internal/domains/book/model"
	"bookshare-backend/internal/infrastructure/metrics"
)

const (
	bookPath   = "/institutions/bibs.json"
	searchPath = "/networks/bibs.json"

	// response bodies above this are truncated; a bibs page is a few KB
	maxBodyBytes = 4 << 20
)

// Source is the read-only catalog contract used by the domains
type Source interface {
	GetBook(ctx context.Context, id string) (*model.Book, error)
	Search(ctx context.Context, q SearchQuery) ([]model.Book, error)
}

// Client is a rate-limited, circuit-broken client for the catalog API.
// One attempt per call; a non-2xx answer is an error for that call only.
type Client struct {
	http       *http.Client
	baseURL    string
	formOfWork string
	userAgent  string
	timeout    time.Duration
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker[[]byte]
}

var _ Source = (*Client)(nil)

// NewClient creates a catalog client from configuration
func NewClient(cfg config.CatalogConfig) *Client {
	return &Client{
		http: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:    cfg.BaseURL,
		formOfWork: cfg.FormOfWork,
		userAgent:  cfg.UserAgent,
		timeout:    cfg.Timeout,
		limiter:    rate.NewLimiter(rate.Limit(cfg.RPS), cfg.Burst),
		breaker:    newBreaker("catalog-api"),
	}
}

// newBreaker opens after >= 60% failures over at least 10 calls in a minute.
// Not-found answers are healthy responses and never count as failures.
func newBreaker(name string) *gobreaker.CircuitBreaker[[]byte] {
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)

	return gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			return ratio >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("[CIRCUIT BREAKER] State transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(float64(to))
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrNotFound) || errors.Is(err, context.Canceled)
		},
	})
}

// GetBook fetches a single record by id from institutions/bibs.json.
// An empty bibs array is reported as ErrNotFound.
func (c *Client) GetBook(ctx context.Context, id string) (*model.Book, error) {
	normalized := model.NormalizeID(id)

	query := url.Values{}
	query.Set("id", normalized)

	var res bibsResponse
	if err := c.get(ctx, "getBook", bookPath, query, &res); err != nil {
		return nil, wrapError("getBook", normalized, err)
	}
	if len(res.Bibs) == 0 {
		return nil, wrapError("getBook", normalized, ErrNotFound)
	}

	book := res.Bibs[0].toBook()
	if book.ID == model.NormalizeID("") {
		book.ID = normalized
	}
	return &book, nil
}

// Search runs one category query against networks/bibs.json, restricted to the
// configured form of work.
func (c *Client) Search(ctx context.Context, q SearchQuery) ([]model.Book, error) {
	query := q.values()
	query.Set("formOfWork", c.formOfWork)

	var res bibsResponse
	if err := c.get(ctx, "search", searchPath, query, &res); err != nil {
		return nil, wrapError("search", q.Key(), err)
	}

	books := make([]model.Book, 0, len(res.Bibs))
	for _, raw := range res.Bibs {
		books = append(books, raw.toBook())
	}
	return books, nil
}

// get executes one GET with rate limiting, the circuit breaker and the
// per-call timeout, then decodes the JSON body into target.
func (c *Client) get(ctx context.Context, op, path string, query url.Values, target interface{}) error {
	start := time.Now()
	defer func() {
		metrics.CatalogRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	}()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.limiter.Wait(ctx); err != nil {
		observe(op, err)
		return fmt.Errorf("rate limit wait: %w", err)
	}

	body, err := c.breaker.Execute(func() ([]byte, error) {
		return c.doRequest(ctx, path, query)
	})
	if err != nil {
		observe(op, err)
		return err
	}

	if err := json.Unmarshal(body, target); err != nil {
		observe(op, err)
		return fmt.Errorf("decode response: %w", err)
	}

	observe(op, nil)
	return nil
}

func (c *Client) doRequest(ctx context.Context, path string, query url.Values) ([]byte, error) {
	u := c.baseURL + path + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	log.Debug().Str("path", path).Str("query", query.Encode()).Msg("catalog request")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return body, nil
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, ErrRateLimited
	case resp.StatusCode >= 500:
		return nil, ErrServer
	default:
		return nil, fmt.Errorf("%w %d", ErrUnexpectedStatus, resp.StatusCode)
	}
}

func observe(op string, err error) {
	outcome := "ok"
	switch {
	case err == nil:
	case errors.Is(err, ErrNotFound):
		outcome = "not_found"
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		outcome = "rejected"
	default:
		outcome = "error"
	}
	metrics.CatalogRequestsTotal.WithLabelValues(op, outcome).Inc()
}
