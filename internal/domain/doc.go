// Package domain defines the core types and interfaces shared across shelve.
//
// It holds the archive categories, the RunResult record produced by a single
// cleanup invocation, and the interfaces the services and the workspace store
// implement.
package domain
