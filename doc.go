// Package socialnet is an in-memory social graph: users, mutual friendships,
// timestamped posts, and the rankings, paths and cycles derived from them.
//
// The engine is built bottom-up from small generic packages:
//
//	avl/       self-balancing ordered index (per-user posts, newest first)
//	core/      undirected adjacency-list graph with parallel edges
//	bfs/       breadth-first traversal and fewest-hop paths
//	dijkstra/  single-source weighted distances
//	dfs/       iterative cycle detection with (vertex, parent) frames
//	heapsort/  in-place comparator heap sort for rankings
//	network/   the engine: registry, friendship graph, post indices
//
// Around the engine:
//
//	builder/   deterministic friendship topologies for seeding and tests
//	news/      World News API client and headline ingestion
//	metrics/   Prometheus counters on a private registry
//	config/    YAML configuration, environment overrides, zap logger
//	cli/       flag parsing and the interactive command shell
//	cmd/socialnet the executable
//
// Quick ASCII example:
//
//	    alice───bob
//	      │      │
//	    dave───carol
//
//	four users, four friendships, one cycle.
//
//	go run ./cmd/socialnet
package socialnet
