package app

import (
	"io"
	"time"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Root       string           // project root, e.g. "."
	ConfigFile string           // optional; defaults to <root>/shelve.yaml
	Verbose    bool             // lowers the log level to debug
	Out        io.Writer        // progress and summary output; defaults to os.Stdout
	Now        func() time.Time // optional clock, for tests
}
