// Command lexical converts numbers between text forms in any radix.
//
//	lexical parse [--radix N] [--f32] [--lossy] [--debug] TEXT...
//	lexical write [--radix N] [--f32] [--max N] [--min N] [--trim] [--truncate] FLOAT...
//	lexical int   [--radix N] [--to N] [--bits N] [--unsigned] INT...
//
// parse prints each float as shortest radix 10 text followed by its bit
// pattern. write reads radix 10 floats and prints them in the target radix.
// int converts integers between radixes.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/zeebo/errs"
)

// Error is the class of command line failures.
var Error = errs.Class("lexical")

type command func(args []string, stdout io.Writer, log zerolog.Logger) error

var commands = map[string]command{
	"parse": parseCmd,
	"write": writeCmd,
	"int":   intCmd,
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: lexical parse|write|int [flags] VALUE...")
}

func run(args []string, stdout, stderr io.Writer) int {
	log := zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true}).
		Level(zerolog.InfoLevel).
		With().Timestamp().Logger()

	if len(args) == 0 {
		usage(stderr)

		return 2
	}

	cmd, ok := commands[args[0]]
	if !ok {
		log.Error().Str("command", args[0]).Msg("unknown command")
		usage(stderr)

		return 2
	}

	err := cmd(args[1:], stdout, log)
	switch {
	case err == nil:
	case errors.Is(err, pflag.ErrHelp):
		return 0
	default:
		log.Error().Err(err).Str("command", args[0]).Msg("failed")

		return 1
	}

	return 0
}

// newFlags returns a flag set with the shared flags registered.
func newFlags(name string) (fs *pflag.FlagSet, radix *uint32, debug *bool) {
	fs = pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SortFlags = false

	radix = fs.Uint32P("radix", "r", 10, "radix of the text, 2 to 36")
	debug = fs.Bool("debug", false, "log debug diagnostics")

	return fs, radix, debug
}

func setLevel(log *zerolog.Logger, debug bool) {
	if debug {
		*log = log.Level(zerolog.DebugLevel)
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
