// Command lvlds is an interactive console playground for the lvlds
// containers and algorithms: pick a structure, feed it values, watch the
// result; or benchmark the sorting algorithms against each other.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var verbose bool

func main() {
	root := &cobra.Command{
		Use:   "lvlds",
		Short: "Interactive playground for the lvlds data structures",
		Long: `lvlds exercises the library's containers from the console.

Subcommands:
  demo   interactively build and inspect a chosen data structure
  bench  time the sorting algorithms against each other`,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging")

	root.AddCommand(newDemoCmd(), newBenchCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger builds the console logger; the demo and bench commands take
// it as an explicit argument rather than reaching for a global.
func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}
