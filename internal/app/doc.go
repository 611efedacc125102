// Package app wires application dependencies for the CLI.
//
// It loads configuration, builds the workspace store and high-level services
// from Config, and exposes them via the App struct for commands to use.
package app
