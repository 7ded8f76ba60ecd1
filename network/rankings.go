package network

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/socialnet/bfs"
	"github.com/katalvlaran/socialnet/dfs"
	"github.com/katalvlaran/socialnet/dijkstra"
	"github.com/katalvlaran/socialnet/heapsort"
)

var (
	byFollowers = heapsort.Descending(User.FriendCount)
	byActivity  = heapsort.Descending(func(u User) int { return u.PostCount })
)

// UsersRankedByFollowers returns every user ordered by descending friend
// count. Users with equal counts come back in no particular order.
func (n *Network) UsersRankedByFollowers() []User {
	n.mu.RLock()
	users := n.snapshotUsers()
	n.mu.RUnlock()

	heapsort.Sort(users, byFollowers)

	return users
}

// UsersRankedByActivity returns users ordered by descending post count,
// truncated to limit entries. A limit <= 0 returns every user.
func (n *Network) UsersRankedByActivity(limit int) []User {
	n.mu.RLock()
	users := n.snapshotUsers()
	n.mu.RUnlock()

	heapsort.Sort(users, byActivity)
	if limit > 0 && limit < len(users) {
		users = users[:limit]
	}

	return users
}

// ClosenessRankings maps every user reachable from start to its weighted
// friendship distance. start itself is excluded; an unknown start yields an
// empty map.
func (n *Network) ClosenessRankings(start string) map[string]int64 {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return dijkstra.Distances(n.graph, start)
}

// ShortestPath returns a fewest-hop friendship path from a to b, both ends
// included, or nil if either user is unknown or b is unreachable.
func (n *Network) ShortestPath(a, b string) []string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return bfs.ShortestPath(n.graph, a, b)
}

// FriendsWithin lists the users reachable from id through at most hops
// friendships, ordered by hop count then ID. id itself is excluded. A hops
// value <= 0 walks the whole component. The walk ends with ctx's error once
// ctx is done.
func (n *Network) FriendsWithin(ctx context.Context, id string, hops int) ([]Reach, error) {
	hops = max(hops, 0)

	n.mu.RLock()
	defer n.mu.RUnlock()

	if !n.graph.HasVertex(id) {
		return nil, fmt.Errorf("%w: %s", ErrUserNotFound, id)
	}

	var out []Reach
	_, err := bfs.BFS(n.graph, id,
		bfs.WithContext[string](ctx),
		bfs.WithMaxDepth[string](hops),
		bfs.WithOnVisit(func(v string, depth int) error {
			if depth > 0 {
				out = append(out, Reach{ID: v, Hops: depth})
			}
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(out, func(a, b Reach) int {
		return cmp.Or(cmp.Compare(a.Hops, b.Hops), strings.Compare(a.ID, b.ID))
	})

	return out, nil
}

// HasFriendshipCycle reports whether the friendship graph contains a cycle
// in any of its components.
func (n *Network) HasFriendshipCycle() bool {
	_, _, ok := n.FindCycle()

	return ok
}

// FindCycle returns the first back-edge found by a depth-first walk over the
// friend sets. from is the vertex being explored and to is the already
// visited non-parent friend that closes the cycle.
//
// Users are walked in creation order and friends in ID order, so the result
// is deterministic for a given history.
func (n *Network) FindCycle() (from, to string, ok bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	edge, found := dfs.FindCycle(n.graph.Vertices(), func(id string) []string {
		return n.users[id].sortedFriends()
	})
	if !found {
		return "", "", false
	}
	n.log.Debug("cycle detected", zap.String("user", edge.From), zap.String("neighbor", edge.To))

	return edge.From, edge.To, true
}
