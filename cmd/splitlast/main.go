package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/berquerant/splitlast/pkg/config"
	"github.com/berquerant/splitlast/pkg/run"
	"github.com/berquerant/splitlast/version"
	"github.com/spf13/pflag"
)

const usage = `splitlast -- split strings by a delimiter and print the last segment

# Usage

splitlast [flags] [STRING...]

Without STRING arguments, reads lines from stdin.
A single trailing delimiter is ignored, so 'a/b/' yields 'b', not ''.

# Examples

// test
splitlast -- /some/long//test/

// with_trailing
splitlast -- some/simple/test/with_trailing/

// c
splitlast -d '::' -- a::b::c

// word
echo 'pick the last word' | splitlast -s

# Flags

`

func main() {
	fs := pflag.NewFlagSet("main", pflag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		fs.PrintDefaults()
	}

	var (
		displayVersion = fs.Bool("version", false, "display version")
		debug          = fs.Bool("debug", false, "enable debug logs")
		delimiter      = fs.StringP("delimiter", "d", "/", "delimiter; a single rune or a literal substring")
		whitespace     = fs.BoolP("whitespace", "s", false, "split on unicode whitespace instead of the delimiter")
	)

	err := fs.Parse(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	fail(err)
	if *displayVersion {
		version.Write(os.Stdout)
		return
	}

	c := config.NewConfig(os.Stdout, os.Stdin, *delimiter)
	c.Debug = *debug
	c.Whitespace = *whitespace
	c.SetupLogger(os.Stderr)
	fail(c.Init(fs.Args()))

	cj, _ := json.Marshal(c)
	slog.Debug("config", slog.String("json", string(cj)))
	fail(run.Main(c))
}

func fail(err error) {
	if err != nil {
		slog.Error("exit", slog.Any("err", err))
		os.Exit(1)
	}
}
