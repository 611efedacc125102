package main

import (
	"os"

	"shelve/cmd/shelve/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
