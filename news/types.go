package news

import (
	"errors"
	"time"
)

var (
	// ErrEmptyTopic is returned when a search names no topic.
	ErrEmptyTopic = errors.New("news: topic is empty")

	// ErrStatus wraps any non-200 reply from the news API.
	ErrStatus = errors.New("news: unexpected status")

	// ErrCircuitOpen is returned when the breaker rejects a request
	// without calling the API.
	ErrCircuitOpen = errors.New("news: circuit open")
)

const (
	defaultBaseURL  = "https://api.worldnewsapi.com"
	searchPath      = "/search-news"
	defaultLanguage = "en"
	defaultNumber   = 5
	defaultTimeout  = 10 * time.Second

	// unknownSource names articles the API returned without a source.
	unknownSource = "Unknown"

	// maxErrorBody bounds how much of an error reply is kept in the error.
	maxErrorBody = 512
)

// Article is one headline returned by a search.
type Article struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Source      string `json:"source"`
	Author      string `json:"author"`
	URL         string `json:"url"`
	PublishDate string `json:"publish_date"`
}

type searchResponse struct {
	Offset    int       `json:"offset"`
	Number    int       `json:"number"`
	Available int       `json:"available"`
	News      []Article `json:"news"`
}

// BreakerSettings tunes the circuit breaker around API calls.
type BreakerSettings struct {
	// MaxRequests is the number of trial requests allowed while half-open.
	MaxRequests uint32

	// Interval is the cyclic period for clearing counts while closed.
	// Zero never clears.
	Interval time.Duration

	// Timeout is how long the breaker stays open before probing again.
	Timeout time.Duration

	// FailureThreshold is the failure ratio that trips the breaker.
	FailureThreshold float64

	// MinRequests is the number of requests needed before tripping.
	MinRequests uint32
}

// DefaultBreakerSettings returns the breaker tuning used by NewClient.
func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          30 * time.Second,
		FailureThreshold: 0.6,
		MinRequests:      3,
	}
}
