package news_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socialnet/network"
	"github.com/katalvlaran/socialnet/news"
)

func newsHandler(t *testing.T, articles ...map[string]any) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"offset":    0,
			"number":    len(articles),
			"available": len(articles),
			"news":      articles,
		})
	}
}

func TestSearch_Request(t *testing.T) {
	reqs := make(chan *http.Request, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqs <- r.Clone(context.Background())
		newsHandler(t)(w, r)
	}))
	defer server.Close()

	client := news.NewClient(
		news.WithBaseURL(server.URL+"/"),
		news.WithAPIKey("secret"),
		news.WithLanguage("de"),
		news.WithNumber(3),
		news.WithTimeout(5*time.Second),
	)
	articles, err := client.Search(context.Background(), "  space travel ")
	require.NoError(t, err)
	assert.Empty(t, articles)

	got := <-reqs
	assert.Equal(t, "/search-news", got.URL.Path)
	assert.Equal(t, "space travel", got.URL.Query().Get("text"))
	assert.Equal(t, "de", got.URL.Query().Get("language"))
	assert.Equal(t, "3", got.URL.Query().Get("number"))
	assert.Equal(t, "secret", got.Header.Get("x-api-key"))
	assert.Equal(t, "application/json", got.Header.Get("Accept"))
}

func TestSearch_Decode(t *testing.T) {
	server := httptest.NewServer(newsHandler(t,
		map[string]any{"id": 1, "title": "Rates  rise\n again", "source": "Reuters via Yahoo", "url": "https://x/1"},
		map[string]any{"id": 2, "title": "", "source": "CNN"},
		map[string]any{"id": 3, "title": "“Quoted” – headline…"},
	))
	defer server.Close()

	client := news.NewClient(news.WithBaseURL(server.URL))
	articles, err := client.Search(context.Background(), "economy")
	require.NoError(t, err)
	require.Len(t, articles, 2)

	assert.Equal(t, int64(1), articles[0].ID)
	assert.Equal(t, "Rates rise again", articles[0].Title)
	assert.Equal(t, "Reuters via Yahoo", articles[0].Source)
	assert.Equal(t, "https://x/1", articles[0].URL)
	assert.Equal(t, `"Quoted" - headline...`, articles[1].Title)
	assert.Equal(t, "Unknown", articles[1].Source)
}

func TestSearch_MissingSourcePostsAsUnknown(t *testing.T) {
	server := httptest.NewServer(newsHandler(t,
		map[string]any{"title": "No byline"},
		map[string]any{"title": "Null byline", "source": nil},
		map[string]any{"title": "Wire copy", "source": "AP via MSN"},
	))
	defer server.Close()

	n := network.New()
	client := news.NewClient(news.WithBaseURL(server.URL))
	posts, err := news.NewIngester(client, n, nil, nil).Ingest(context.Background(), "world")
	require.NoError(t, err)
	require.Len(t, posts, 3)

	assert.Equal(t, "Unknown", posts[0].Author)
	assert.Equal(t, "Unknown", posts[1].Author)
	assert.Equal(t, "AP News", posts[2].Author)
	assert.Len(t, n.Posts("Unknown"), 2)
	_, ok := n.User("WorldNews")
	assert.False(t, ok)
}

func TestSearch_EmptyTopic(t *testing.T) {
	client := news.NewClient(news.WithBaseURL("http://127.0.0.1:0"))
	_, err := client.Search(context.Background(), "   ")
	assert.ErrorIs(t, err, news.ErrEmptyTopic)
}

func TestSearch_Status(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"invalid api key"}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	client := news.NewClient(news.WithBaseURL(server.URL))
	_, err := client.Search(context.Background(), "tech")
	require.ErrorIs(t, err, news.ErrStatus)
	assert.Contains(t, err.Error(), "HTTP 401")
	assert.Contains(t, err.Error(), "invalid api key")
}

func TestSearch_BadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"news": [`))
	}))
	defer server.Close()

	client := news.NewClient(news.WithBaseURL(server.URL))
	_, err := client.Search(context.Background(), "tech")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")
}

func TestSearch_BreakerOpens(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := news.NewClient(
		news.WithBaseURL(server.URL),
		news.WithBreaker(news.BreakerSettings{
			MaxRequests:      1,
			Timeout:          time.Hour,
			FailureThreshold: 0.5,
			MinRequests:      2,
		}),
	)

	for i := 0; i < 2; i++ {
		_, err := client.Search(context.Background(), "tech")
		require.ErrorIs(t, err, news.ErrStatus)
	}
	_, err := client.Search(context.Background(), "tech")
	require.ErrorIs(t, err, news.ErrCircuitOpen)
	assert.Equal(t, int32(2), hits.Load())
}

func TestSearch_CanceledContextDoesNotTrip(t *testing.T) {
	server := httptest.NewServer(newsHandler(t, map[string]any{"title": "ok"}))
	defer server.Close()

	client := news.NewClient(
		news.WithBaseURL(server.URL),
		news.WithBreaker(news.BreakerSettings{MaxRequests: 1, Timeout: time.Hour, FailureThreshold: 0.1, MinRequests: 1}),
	)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := client.Search(ctx, "tech")
	require.ErrorIs(t, err, context.Canceled)

	articles, err := client.Search(context.Background(), "tech")
	require.NoError(t, err)
	assert.Len(t, articles, 1)
}
