package news_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socialnet/metrics"
	"github.com/katalvlaran/socialnet/network"
	"github.com/katalvlaran/socialnet/news"
)

type stubSearcher struct {
	articles []news.Article
	err      error
	topics   []string
}

func (s *stubSearcher) Search(_ context.Context, topic string) ([]news.Article, error) {
	s.topics = append(s.topics, topic)
	return s.articles, s.err
}

type failingPoster struct {
	after int
	calls int
}

func (p *failingPoster) AddPost(userID, content string) (network.Post, error) {
	p.calls++
	if p.calls > p.after {
		return network.Post{}, network.ErrEmptyUserID
	}
	return network.Post{Author: userID, Content: content}, nil
}

func TestIngest_PostsUnderCleanSource(t *testing.T) {
	s := &stubSearcher{articles: []news.Article{
		{Title: "Markets rally", Source: "Reuters via Yahoo"},
		{Title: "Storm warning", Source: "BBC News"},
		{Title: "Anonymous scoop"},
	}}
	n := network.New()
	m := metrics.NewCollector("sn")

	posts, err := news.NewIngester(s, n, m, nil).Ingest(context.Background(), "world")
	require.NoError(t, err)
	require.Len(t, posts, 3)

	assert.Equal(t, []string{"world"}, s.topics)
	assert.Equal(t, "Reuters", posts[0].Author)
	assert.Equal(t, "Markets rally", posts[0].Content)
	assert.Equal(t, "BBC", posts[1].Author)
	assert.Equal(t, "WorldNews", posts[2].Author)

	require.Len(t, n.Posts("Reuters"), 1)
	assert.Equal(t, 3, n.UserCount())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.NewsFetches.WithLabelValues(metrics.FetchOK)))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.NewsArticles))
}

func TestIngest_SearchError(t *testing.T) {
	m := metrics.NewCollector("sn")
	n := network.New()
	boom := errors.New("boom")

	_, err := news.NewIngester(&stubSearcher{err: boom}, n, m, nil).Ingest(context.Background(), "x")
	require.ErrorIs(t, err, boom)

	_, err = news.NewIngester(&stubSearcher{err: news.ErrCircuitOpen}, n, m, nil).Ingest(context.Background(), "x")
	require.ErrorIs(t, err, news.ErrCircuitOpen)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.NewsFetches.WithLabelValues(metrics.FetchError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.NewsFetches.WithLabelValues(metrics.FetchRejected)))
	assert.Zero(t, n.UserCount())
}

func TestIngest_PostFailureKeepsEarlierPosts(t *testing.T) {
	s := &stubSearcher{articles: []news.Article{{Title: "a"}, {Title: "b"}, {Title: "c"}}}
	p := &failingPoster{after: 1}

	posts, err := news.NewIngester(s, p, nil, nil).Ingest(context.Background(), "x")
	require.ErrorIs(t, err, network.ErrEmptyUserID)
	require.Len(t, posts, 1)
	assert.Equal(t, "a", posts[0].Content)
	assert.Equal(t, 2, p.calls)
}
