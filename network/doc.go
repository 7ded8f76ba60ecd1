// Package network is the social graph engine: a registry of users, the
// undirected friendship graph between them, and one newest-first post
// index per user, plus the ranking, path and cycle queries over them.
//
// A Network is an explicit, constructible value; independent networks can
// coexist in one process. Users and graph vertices are created lazily on
// first mention by AddUser, AddFriendship or AddPost and are never deleted.
//
// Components:
//
//	core.Graph[string]  friendship edges, weight 1, parallel edges kept
//	avl.Tree[Post]      per-user posts, newest first, sequence tie-break
//	heapsort.Sort       follower and activity rankings
//	bfs.ShortestPath    fewest-hop path between two users
//	bfs.BFS             users within a bounded number of hops
//	dijkstra.Distances  weighted closeness from one user
//	dfs.FindCycle       friendship cycle detection over friend sets
//
// Concurrency:
//
//	One sync.RWMutex guards the registry, the graph and every post index.
//	Writers hold it exclusively for the whole operation, so a reader never
//	sees a friendship edge without the matching mutual friend-set entries.
//	Every returned value is a snapshot.
//
// Not-found handling:
//
//	Queries about unknown users return empty results. The exceptions are
//	FriendsWithin, which returns ErrUserNotFound, and Post, which returns
//	ErrPostNotFound or ErrAmbiguousPostID. Mutations reject an empty user
//	ID with ErrEmptyUserID.
package network
