package news

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// Client searches the World News API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	language   string
	number     int
	breaker    BreakerSettings
	log        *zap.Logger

	cb *gobreaker.CircuitBreaker
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithAPIKey sets the key sent in the x-api-key header.
func WithAPIKey(key string) Option {
	return func(c *Client) {
		c.apiKey = key
	}
}

// WithLanguage sets the language filter of every search.
func WithLanguage(lang string) Option {
	return func(c *Client) {
		c.language = lang
	}
}

// WithNumber sets how many articles a search asks for.
func WithNumber(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.number = n
		}
	}
}

// WithBreaker overrides the circuit breaker tuning.
func WithBreaker(s BreakerSettings) Option {
	return func(c *Client) {
		c.breaker = s
	}
}

// WithLogger sets the logger for breaker state changes and failed calls.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// NewClient creates a news API client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    defaultBaseURL,
		language:   defaultLanguage,
		number:     defaultNumber,
		breaker:    DefaultBreakerSettings(),
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.cb = c.newBreaker()

	return c
}

func (c *Client) newBreaker() *gobreaker.CircuitBreaker {
	s := c.breaker

	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "news-api",
		MaxRequests: s.MaxRequests,
		Interval:    s.Interval,
		Timeout:     s.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < s.MinRequests {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			return ratio >= s.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.log.Warn("circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
		// a caller giving up is not an upstream failure
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	})
}

// Search returns the articles matching topic. Titles are normalized with
// CleanTitle and articles without a title are dropped.
func (c *Client) Search(ctx context.Context, topic string) ([]Article, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, ErrEmptyTopic
	}

	out, err := c.cb.Execute(func() (interface{}, error) {
		return c.search(ctx, topic)
	})
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return nil, fmt.Errorf("%w: %v", ErrCircuitOpen, err)
	case err != nil:
		c.log.Debug("news search failed", zap.String("topic", topic), zap.Error(err))
		return nil, err
	}

	return out.([]Article), nil
}

func (c *Client) search(ctx context.Context, topic string) ([]Article, error) {
	q := url.Values{}
	q.Set("text", topic)
	q.Set("language", c.language)
	q.Set("number", strconv.Itoa(c.number))
	endpoint := c.baseURL + searchPath + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch news %q: %w", topic, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("%w: HTTP %d: %s", ErrStatus, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	articles := make([]Article, 0, len(sr.News))
	for _, a := range sr.News {
		a.Title = CleanTitle(a.Title)
		if a.Title == "" {
			continue
		}
		if a.Source == "" {
			a.Source = unknownSource
		}
		articles = append(articles, a)
	}

	return articles, nil
}
