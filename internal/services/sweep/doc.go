// Package sweep deletes transient build and cache artifacts.
//
// Each configured pattern is matched recursively from the project root, in
// order. Directory matches are removed whole and count as one item; a match
// already removed by an earlier pattern is silently skipped.
package sweep
