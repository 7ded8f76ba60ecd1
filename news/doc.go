// Package news fetches headlines from the World News API and posts them into
// a social network as ordinary posts, one per article, authored by the
// cleaned source name.
//
// Client owns the HTTP call, JSON decoding and title normalization, guarded
// by a circuit breaker so a failing upstream is not hammered. Ingester glues
// a Client to anything that can AddPost and records the outcome on the
// metrics collector. Neither touches the engine beyond AddPost.
package news
