package network

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/katalvlaran/socialnet/avl"
)

// User returns a snapshot of the user with the given ID.
func (n *Network) User(id string) (User, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	u, ok := n.users[id]
	if !ok {
		return User{}, false
	}

	return u.snapshot(), true
}

// Users returns snapshots of every user, ordered by ID.
func (n *Network) Users() []User {
	n.mu.RLock()
	defer n.mu.RUnlock()

	out := n.snapshotUsers()
	slices.SortFunc(out, func(a, b User) int { return strings.Compare(a.ID, b.ID) })

	return out
}

// UserCount returns the number of known users.
func (n *Network) UserCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.users)
}

// Friends returns the sorted friend IDs of id, or nil if id is unknown.
func (n *Network) Friends(id string) []string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	u, ok := n.users[id]
	if !ok {
		return nil
	}

	return u.sortedFriends()
}

// MutualFriends returns the sorted IDs that are friends of both a and b.
func (n *Network) MutualFriends(a, b string) []string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	ua, okA := n.users[a]
	ub, okB := n.users[b]
	if !okA || !okB {
		return nil
	}

	var out []string
	for id := range ua.friends {
		if _, ok := ub.friends[id]; ok {
			out = append(out, id)
		}
	}
	slices.Sort(out)

	return out
}

// Posts returns the posts of id, newest first.
func (n *Network) Posts(id string) []Post {
	n.mu.RLock()
	defer n.mu.RUnlock()

	u, ok := n.users[id]
	if !ok {
		return nil
	}

	return u.posts.InOrder()
}

// Post looks up a post by ID. ref is either a full UUID or a prefix of its
// canonical text form, such as the one printed by ShortID. Returns
// ErrPostNotFound when nothing matches and ErrAmbiguousPostID when a prefix
// matches more than one post.
func (n *Network) Post(ref string) (Post, error) {
	ref = strings.ToLower(strings.TrimSpace(ref))
	if ref == "" {
		return Post{}, ErrPostNotFound
	}

	n.mu.RLock()
	defer n.mu.RUnlock()

	if id, err := uuid.Parse(ref); err == nil {
		if p, ok := n.posts[id]; ok {
			return p, nil
		}
		return Post{}, fmt.Errorf("%w: %s", ErrPostNotFound, ref)
	}

	var (
		found   Post
		matches int
	)
	for id, p := range n.posts {
		if strings.HasPrefix(id.String(), ref) {
			found = p
			matches++
		}
	}
	switch matches {
	case 0:
		return Post{}, fmt.Errorf("%w: %s", ErrPostNotFound, ref)
	case 1:
		return found, nil
	default:
		return Post{}, fmt.Errorf("%w: %s matches %d posts", ErrAmbiguousPostID, ref, matches)
	}
}

// Feed returns the posts of id and of all its friends merged newest first.
// A limit <= 0 returns every post.
func (n *Network) Feed(id string, limit int) []Post {
	n.mu.RLock()
	defer n.mu.RUnlock()

	u, ok := n.users[id]
	if !ok {
		return nil
	}

	merged := avl.New[Post](comparePosts)
	for p := range u.posts.All() {
		merged.Insert(p)
	}
	for fid := range u.friends {
		for p := range n.users[fid].posts.All() {
			merged.Insert(p)
		}
	}

	out := make([]Post, 0, merged.Len())
	for p := range merged.All() {
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, p)
	}

	return out
}

// Neighbors returns the raw graph neighbors of id in edge insertion order,
// one entry per friendship edge. Repeated AddFriendship calls show up here
// as repeated IDs.
func (n *Network) Neighbors(id string) []string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.graph.Neighbors(id)
}

// Snapshot returns every user ID mapped to its sorted friend IDs.
func (n *Network) Snapshot() map[string][]string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	out := make(map[string][]string, len(n.users))
	for id, u := range n.users {
		out[id] = u.sortedFriends()
	}

	return out
}

// snapshotUsers copies every user in vertex creation order.
// Caller must hold the lock.
func (n *Network) snapshotUsers() []User {
	ids := n.graph.Vertices()
	out := make([]User, 0, len(ids))
	for _, id := range ids {
		out = append(out, n.users[id].snapshot())
	}

	return out
}

func (u *user) snapshot() User {
	return User{
		ID:        u.id,
		Friends:   u.sortedFriends(),
		PostCount: u.postCount,
	}
}

func (u *user) sortedFriends() []string {
	out := make([]string, 0, len(u.friends))
	for id := range u.friends {
		out = append(out, id)
	}
	slices.Sort(out)

	return out
}
