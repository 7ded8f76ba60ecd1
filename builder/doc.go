// Package builder seeds a social network with deterministic friendship
// topologies: paths, rings, stars, cliques, wheels and random sparse graphs.
//
// Build resolves functional options once and applies constructors in order,
// so the same options, seed and constructor list always produce the same
// users, friendships and posts. Composition is additive: constructors that
// reuse an ID extend the existing user instead of replacing it.
//
//	err := builder.Build(net,
//		[]builder.Option{builder.WithIDScheme(builder.PrefixIDFn("u"))},
//		builder.Cycle(5),
//		builder.Posts(5, 2),
//	)
//
// Errors:
//
//	ErrTooFewVertices      size parameter below the topology minimum
//	ErrInvalidProbability  RandomSparse p outside [0,1]
//	ErrNeedRandSource      RandomSparse with 0<p<1 and no WithSeed/WithRand
//	ErrConstructFailed     nil constructor passed to Build
//
// Option constructors panic on nil arguments; constructors never panic.
package builder
