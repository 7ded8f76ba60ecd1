// Package metrics holds the Prometheus counters shared by the social
// network engine and the news ingester.
//
// Each Collector owns a private registry, so independent networks (and
// tests) never collide on registration. All recording methods are safe to
// call on a nil *Collector, which turns them into no-ops.
package metrics

import (
	"fmt"
	"sort"

	"github.com/prometheus/client_golang/prometheus"
)

// Fetch outcomes used as the "status" label of news_fetch_total.
const (
	FetchOK       = "ok"
	FetchError    = "error"
	FetchRejected = "rejected"
)

// Collector holds all counters for one network instance.
type Collector struct {
	registry *prometheus.Registry

	UsersCreated prometheus.Counter
	Friendships  prometheus.Counter
	Posts        prometheus.Counter

	NewsFetches  *prometheus.CounterVec
	NewsArticles prometheus.Counter
}

// NewCollector creates counters under namespace and registers them on a
// fresh registry.
func NewCollector(namespace string) *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		UsersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "users_created_total",
			Help:      "Total number of users created",
		}),
		Friendships: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "friendships_total",
			Help:      "Total number of friendship edges added, parallel edges included",
		}),
		Posts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "posts_total",
			Help:      "Total number of posts created",
		}),
		NewsFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "news_fetch_total",
			Help:      "News API fetches by outcome",
		}, []string{"status"}),
		NewsArticles: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "news_articles_total",
			Help:      "Total number of news headlines posted",
		}),
	}
	c.registry.MustRegister(c.UsersCreated, c.Friendships, c.Posts, c.NewsFetches, c.NewsArticles)

	return c
}

// Registry exposes the collector's registry.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// UserCreated records a new user.
func (c *Collector) UserCreated() {
	if c != nil {
		c.UsersCreated.Inc()
	}
}

// FriendshipAdded records one friendship edge.
func (c *Collector) FriendshipAdded() {
	if c != nil {
		c.Friendships.Inc()
	}
}

// PostAdded records one post.
func (c *Collector) PostAdded() {
	if c != nil {
		c.Posts.Inc()
	}
}

// NewsFetched records a fetch outcome and the number of articles it posted.
func (c *Collector) NewsFetched(status string, articles int) {
	if c == nil {
		return
	}
	c.NewsFetches.WithLabelValues(status).Inc()
	c.NewsArticles.Add(float64(articles))
}

// Sample is one gathered counter value.
type Sample struct {
	Name  string
	Label string
	Value float64
}

// Snapshot gathers every counter, sorted by name then label.
func (c *Collector) Snapshot() ([]Sample, error) {
	families, err := c.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("metrics: gather: %w", err)
	}

	var out []Sample
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			s := Sample{Name: mf.GetName(), Value: m.GetCounter().GetValue()}
			for _, lp := range m.GetLabel() {
				s.Label = lp.GetName() + "=" + lp.GetValue()
			}
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Label < out[j].Label
	})

	return out, nil
}
