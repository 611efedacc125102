// Package commands defines the shelve CLI and wires dependencies before a run.
//
// Invocation
//
//   - shelve                  dry run: print planned moves and deletions
//   - shelve --execute        perform the moves and deletions, write the index
//   - shelve --check-imports  placeholder import check only
//
// # Implementation
//
// The root command builds the dependency graph (config, workspace store,
// services) in PersistentPreRunE, so the handler works against a shared app
// context. --check-imports takes precedence over cleanup when both are given.
package commands
