// Command itemtool works with item packs offline and inspects a running item
// service.
package main

import (
	"io"
	"os"

	"github.com/joho/godotenv"
)

func newRegistry(out io.Writer) *Registry {
	r := NewRegistry()
	r.Register(&NormalizeCommand{out: out})
	r.Register(&ValidateCommand{out: out})
	r.Register(&TablesCommand{out: out})
	r.Register(&HealthCheckCommand{})
	r.Register(&WatchCommand{out: out})
	return r
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	registry := newRegistry(os.Stdout)

	if len(os.Args) < 2 {
		registry.PrintHelp(os.Stderr)
		os.Exit(1)
	}

	cmd, ok := registry.Get(os.Args[1])
	if !ok {
		PrintError("Unknown command: %s", os.Args[1])
		registry.PrintHelp(os.Stderr)
		os.Exit(1)
	}

	if err := cmd.Run(os.Args[2:]); err != nil {
		PrintError("%s failed: %v", cmd.Name(), err)
		os.Exit(1)
	}
}
