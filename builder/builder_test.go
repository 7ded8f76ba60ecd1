package builder_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socialnet/builder"
	"github.com/katalvlaran/socialnet/network"
)

func build(t *testing.T, opts []builder.Option, cons ...builder.Constructor) *network.Network {
	t.Helper()
	n := network.New()
	require.NoError(t, builder.Build(n, opts, cons...))
	return n
}

func edgeCount(n *network.Network) int {
	total := 0
	for _, friends := range n.Snapshot() {
		total += len(friends)
	}
	return total / 2
}

func TestTopologies(t *testing.T) {
	tests := []struct {
		name      string
		con       builder.Constructor
		users     int
		edges     int
		cycle     bool
		maxDegree int
	}{
		{"Path1", builder.Path(1), 1, 0, false, 0},
		{"Path5", builder.Path(5), 5, 4, false, 2},
		{"Cycle3", builder.Cycle(3), 3, 3, true, 2},
		{"Cycle6", builder.Cycle(6), 6, 6, true, 2},
		{"Star5", builder.Star(5), 5, 4, false, 4},
		{"Complete4", builder.Complete(4), 4, 6, true, 3},
		{"Wheel5", builder.Wheel(5), 5, 8, true, 4},
		{"RandomFull", builder.RandomSparse(4, 1), 4, 6, true, 3},
		{"RandomEmpty", builder.RandomSparse(4, 0), 4, 0, false, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n := build(t, nil, tc.con)
			assert.Equal(t, tc.users, n.UserCount())
			assert.Equal(t, tc.edges, edgeCount(n))
			assert.Equal(t, tc.cycle, n.HasFriendshipCycle())
			assert.Equal(t, tc.maxDegree, n.UsersRankedByFollowers()[0].FriendCount())
		})
	}
}

func TestPath_ShortestPath(t *testing.T) {
	n := build(t, []builder.Option{builder.WithIDScheme(builder.PrefixIDFn("u"))}, builder.Path(4))
	assert.Equal(t, []string{"u0", "u1", "u2", "u3"}, n.ShortestPath("u0", "u3"))
	assert.Equal(t, map[string]int64{"u1": 1, "u2": 2, "u3": 3}, n.ClosenessRankings("u0"))
}

func TestStar_Hub(t *testing.T) {
	n := build(t, nil, builder.Star(4))
	ranked := n.UsersRankedByFollowers()
	assert.Equal(t, "0", ranked[0].ID)
	assert.Equal(t, []string{"1", "2", "3"}, n.Friends("0"))
}

func TestRandomSparse_Deterministic(t *testing.T) {
	a := build(t, []builder.Option{builder.WithSeed(7)}, builder.RandomSparse(30, 0.2))
	b := build(t, []builder.Option{builder.WithSeed(7)}, builder.RandomSparse(30, 0.2))
	c := build(t, []builder.Option{builder.WithRand(rand.New(rand.NewSource(7)))}, builder.RandomSparse(30, 0.2))

	assert.Equal(t, a.Snapshot(), b.Snapshot())
	assert.Equal(t, a.Snapshot(), c.Snapshot())
	assert.Equal(t, 30, a.UserCount())
}

func TestPosts(t *testing.T) {
	n := network.New(network.WithClock(func() time.Time { return time.Unix(0, 0) }))
	require.NoError(t, builder.Build(n, nil, builder.Star(3), builder.Posts(3, 2)))

	ranked := n.UsersRankedByActivity(0)
	require.Len(t, ranked, 3)
	for _, u := range ranked {
		assert.Equal(t, 2, u.PostCount)
	}
	posts := n.Posts("1")
	require.Len(t, posts, 2)
	assert.Equal(t, "post 1 by 1", posts[0].Content)
	assert.Equal(t, posts[0].Seq+3, posts[1].Seq)
}

func TestBuild_Composition(t *testing.T) {
	n := build(t, nil, builder.Path(3), builder.Star(3))

	assert.Equal(t, 3, n.UserCount())
	assert.Equal(t, []string{"1", "2"}, n.Friends("0"))
	assert.True(t, n.HasFriendshipCycle())
	assert.Equal(t, []string{"1", "1"}, n.Neighbors("0")[:2])
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name string
		con  builder.Constructor
		want error
	}{
		{"PathZero", builder.Path(0), builder.ErrTooFewVertices},
		{"CycleTwo", builder.Cycle(2), builder.ErrTooFewVertices},
		{"StarOne", builder.Star(1), builder.ErrTooFewVertices},
		{"CompleteZero", builder.Complete(0), builder.ErrTooFewVertices},
		{"WheelThree", builder.Wheel(3), builder.ErrTooFewVertices},
		{"RandomNegP", builder.RandomSparse(3, -0.1), builder.ErrInvalidProbability},
		{"RandomBigP", builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"RandomNoRNG", builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"PostsNegative", builder.Posts(3, -1), builder.ErrTooFewVertices},
		{"Nil", nil, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n := network.New()
			err := builder.Build(n, nil, tc.con)
			assert.ErrorIs(t, err, tc.want)
			assert.Zero(t, n.UserCount())
		})
	}
}

func TestBuild_TargetError(t *testing.T) {
	n := network.New()
	empty := func(int) string { return "" }
	err := builder.Build(n, []builder.Option{builder.WithIDScheme(empty)}, builder.Path(2))
	assert.ErrorIs(t, err, network.ErrEmptyUserID)
}

func TestOptions_PanicOnNil(t *testing.T) {
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
}
