package network

import (
	"cmp"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/socialnet/avl"
	"github.com/katalvlaran/socialnet/core"
	"github.com/katalvlaran/socialnet/metrics"
)

var (
	// ErrEmptyUserID is returned when a mutation names the empty user ID.
	ErrEmptyUserID = errors.New("network: user ID is empty")

	// ErrUserNotFound is returned by queries that fail on an unknown user.
	ErrUserNotFound = errors.New("network: user not found")

	// ErrPostNotFound is returned when no post matches an ID.
	ErrPostNotFound = errors.New("network: post not found")

	// ErrAmbiguousPostID is returned when an ID prefix matches several posts.
	ErrAmbiguousPostID = errors.New("network: post ID prefix is ambiguous")
)

const (
	// friendshipWeight is the edge weight of every friendship.
	friendshipWeight = 1

	// shortIDLen is the number of leading hex digits ShortID keeps.
	shortIDLen = 8
)

// Post is an immutable message authored by one user.
type Post struct {
	// ID is a random external identifier.
	ID uuid.UUID

	// Author is the author's user ID.
	Author string

	// Content is the message text.
	Content string

	// CreatedAt is the creation time.
	CreatedAt time.Time

	// Seq is the network-wide creation sequence number.
	Seq uint64
}

// ShortID returns the first eight hex digits of the post ID.
func (p Post) ShortID() string { return p.ID.String()[:shortIDLen] }

// Reach is a user found by a bounded friendship walk.
type Reach struct {
	ID   string
	Hops int
}

// comparePosts orders posts newest first, breaking timestamp ties by
// ascending sequence number. No two posts of one network compare equal.
func comparePosts(a, b Post) int {
	if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
		return c
	}

	return cmp.Compare(a.Seq, b.Seq)
}

// User is a read-only snapshot of a user record.
type User struct {
	// ID is the unique user identifier.
	ID string

	// Friends holds the IDs of the user's friends, sorted.
	Friends []string

	// PostCount is the number of posts the user has written.
	PostCount int
}

// FriendCount returns the number of distinct friends.
func (u User) FriendCount() int { return len(u.Friends) }

// user is the live record owned by the Network. friends holds IDs only:
// membership, never ownership.
type user struct {
	id        string
	postCount int
	posts     *avl.Tree[Post]
	friends   map[string]struct{}
}

func newUser(id string) *user {
	return &user{
		id:      id,
		posts:   avl.New[Post](comparePosts),
		friends: make(map[string]struct{}),
	}
}

// Network is the social graph engine.
type Network struct {
	mu sync.RWMutex

	users   map[string]*user
	graph   *core.Graph[string]
	posts   map[uuid.UUID]Post
	nextSeq uint64

	log     *zap.Logger
	metrics *metrics.Collector
	now     func() time.Time
}

// Option configures a Network at construction.
type Option func(*Network)

// WithLogger sets the logger used for debug tracing of mutations.
func WithLogger(l *zap.Logger) Option {
	return func(n *Network) {
		if l != nil {
			n.log = l
		}
	}
}

// WithMetrics records users, friendships and posts on c.
func WithMetrics(c *metrics.Collector) Option {
	return func(n *Network) { n.metrics = c }
}

// WithClock overrides the time source used to stamp posts.
func WithClock(now func() time.Time) Option {
	return func(n *Network) {
		if now != nil {
			n.now = now
		}
	}
}

// New creates an empty Network.
// By default it logs nothing, records no metrics and stamps posts with time.Now.
func New(opts ...Option) *Network {
	n := &Network{
		users: make(map[string]*user),
		graph: core.NewGraph[string](),
		posts: make(map[uuid.UUID]Post),
		log:   zap.NewNop(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(n)
	}

	return n
}
