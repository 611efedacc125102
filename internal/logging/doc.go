// Package logging builds the zap logger used across a shelve run.
//
// The console prints plain progress lines and the summary; zap carries the
// structured operational log on stderr, tagged with a per-run correlation id.
package logging
