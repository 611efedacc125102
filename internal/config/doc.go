// Package config holds the allow-lists, temp patterns and archive layout that
// drive a cleanup run.
//
// Defaults are compiled in; an optional shelve.yaml in the project root
// overrides individual fields. Lists replace wholesale when set.
package config
