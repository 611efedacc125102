// Package archive partitions a file category against its allow-list and
// relocates non-members into the archive tree.
//
// Three categories exist: source modules under the modules directory, test
// scripts in the project root, and markdown docs in the project root. Listing
// is non-recursive; allow-listed files are never touched.
package archive
