// Package store provides the file-based workspace behind shelve's services.
//
// Workspace is a concrete implementation of domain.Workspace rooted at the
// project directory. All paths crossing its API are relative to that root.
// Methods are concurrency-safe via internal locking, though a cleanup run is
// strictly sequential.
package store
