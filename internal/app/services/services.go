// Package services holds the orchestration layer: each service loads the
// snapshot its decision needs from a repository, runs the validation or
// aggregation engine over it, and persists at most once. Services consume
// narrow repository interfaces so tests can substitute in-memory fakes.
package services
