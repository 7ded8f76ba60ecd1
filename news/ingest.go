package news

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/socialnet/metrics"
	"github.com/katalvlaran/socialnet/network"
)

// Searcher looks up articles for a topic.
type Searcher interface {
	Search(ctx context.Context, topic string) ([]Article, error)
}

// Poster stores one post. *network.Network implements it.
type Poster interface {
	AddPost(userID, content string) (network.Post, error)
}

// Ingester posts search results into a network.
type Ingester struct {
	searcher Searcher
	poster   Poster
	metrics  *metrics.Collector
	log      *zap.Logger
}

// NewIngester wires s to p. m and log may be nil.
func NewIngester(s Searcher, p Poster, m *metrics.Collector, log *zap.Logger) *Ingester {
	if log == nil {
		log = zap.NewNop()
	}

	return &Ingester{searcher: s, poster: p, metrics: m, log: log}
}

// Ingest searches topic and posts every article under its cleaned source
// name, in the order the API returned them. It returns the created posts.
// A failed post stops the run; posts made before it are kept and returned.
func (in *Ingester) Ingest(ctx context.Context, topic string) ([]network.Post, error) {
	articles, err := in.searcher.Search(ctx, topic)
	if err != nil {
		status := metrics.FetchError
		if errors.Is(err, ErrCircuitOpen) {
			status = metrics.FetchRejected
		}
		in.metrics.NewsFetched(status, 0)
		in.log.Warn("news fetch failed", zap.String("topic", topic), zap.String("status", status), zap.Error(err))

		return nil, err
	}

	posts := make([]network.Post, 0, len(articles))
	for _, a := range articles {
		p, err := in.poster.AddPost(CleanSource(a.Source), a.Title)
		if err != nil {
			in.metrics.NewsFetched(metrics.FetchError, len(posts))
			return posts, err
		}
		posts = append(posts, p)
	}
	in.metrics.NewsFetched(metrics.FetchOK, len(posts))
	in.log.Info("news ingested", zap.String("topic", topic), zap.Int("articles", len(posts)))

	return posts, nil
}
