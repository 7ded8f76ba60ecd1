package network

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AddUser returns the user with the given ID, creating the record and its
// graph vertex on first mention. Calling it again for a known ID leaves the
// friends and posts of that user untouched.
func (n *Network) AddUser(id string) (User, error) {
	if id == "" {
		return User{}, ErrEmptyUserID
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	return n.ensureUser(id).snapshot(), nil
}

// AddFriendship records a mutual friendship between a and b.
//
// Both users are created if unknown. Every call appends a symmetric graph
// edge of weight 1, so repeated calls grow Neighbors while the friend sets
// stay deduplicated. A self-friendship is a loop: the user lists itself as
// a friend, shows up twice in its own Neighbors and closes a cycle.
func (n *Network) AddFriendship(a, b string) error {
	if a == "" || b == "" {
		return ErrEmptyUserID
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	ua, ub := n.ensureUser(a), n.ensureUser(b)
	n.graph.AddEdge(a, b, friendshipWeight)
	ua.friends[b] = struct{}{}
	ub.friends[a] = struct{}{}
	n.metrics.FriendshipAdded()
	n.log.Debug("friendship added", zap.String("user", a), zap.String("friend", b))

	return nil
}

// AddPost stores a new post by userID, creating the user if unknown. The post
// is stamped with the network clock and the next sequence number.
func (n *Network) AddPost(userID, content string) (Post, error) {
	if userID == "" {
		return Post{}, ErrEmptyUserID
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	u := n.ensureUser(userID)
	n.nextSeq++
	p := Post{
		ID:        uuid.New(),
		Author:    userID,
		Content:   content,
		CreatedAt: n.now(),
		Seq:       n.nextSeq,
	}
	u.posts.Insert(p)
	u.postCount++
	n.posts[p.ID] = p
	n.metrics.PostAdded()
	n.log.Debug("post added",
		zap.String("user", userID),
		zap.Uint64("seq", p.Seq),
		zap.Int("length", len(content)),
	)

	return p, nil
}

// ensureUser returns the record for id, creating it and its vertex if needed.
// Caller must hold the write lock.
func (n *Network) ensureUser(id string) *user {
	if u, ok := n.users[id]; ok {
		return u
	}

	u := newUser(id)
	n.users[id] = u
	n.graph.AddVertex(id)
	n.metrics.UserCreated()
	n.log.Debug("user created", zap.String("user", id))

	return u
}
