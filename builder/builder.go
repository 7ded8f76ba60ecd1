package builder

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"

	"github.com/katalvlaran/socialnet/network"
)

var (
	// ErrTooFewVertices indicates a size parameter below the allowed minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor ran without an RNG.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrConstructFailed indicates that construction could not proceed.
	ErrConstructFailed = errors.New("builder: construction failed")
)

// Target is the mutation surface builders write to. *network.Network
// implements it.
type Target interface {
	AddUser(id string) (network.User, error)
	AddFriendship(a, b string) error
	AddPost(userID, content string) (network.Post, error)
}

// Constructor applies one deterministic mutation to t.
type Constructor func(t Target, cfg config) error

type config struct {
	idFn IDFn
	rng  *rand.Rand
}

// Option customizes ID generation and randomness.
type Option func(*config)

// IDFn maps a vertex index to a user ID.
type IDFn func(idx int) string

// DefaultIDFn returns decimal IDs: "0", "1", ...
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// PrefixIDFn returns IDs of the form prefix+index, e.g. "u0", "u1".
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}

// WithIDScheme sets the vertex ID generator. Panics on nil.
func WithIDScheme(fn IDFn) Option {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *config) { c.idFn = fn }
}

// WithSeed creates a new seeded RNG for stochastic constructors.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// Build resolves opts and applies cons to t in order. The first constructor
// error is returned wrapped; mutations made before it are kept.
func Build(t Target, opts []Option, cons ...Constructor) error {
	cfg := config{idFn: DefaultIDFn}
	for _, opt := range opts {
		opt(&cfg)
	}

	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(t, cfg); err != nil {
			return fmt.Errorf("Build: %w", err)
		}
	}

	return nil
}

func addUsers(t Target, cfg config, method string, from, to int) error {
	for i := from; i < to; i++ {
		id := cfg.idFn(i)
		if _, err := t.AddUser(id); err != nil {
			return fmt.Errorf("%s: AddUser(%s): %w", method, id, err)
		}
	}

	return nil
}

func befriend(t Target, cfg config, method string, i, j int) error {
	a, b := cfg.idFn(i), cfg.idFn(j)
	if err := t.AddFriendship(a, b); err != nil {
		return fmt.Errorf("%s: AddFriendship(%s, %s): %w", method, a, b, err)
	}

	return nil
}
