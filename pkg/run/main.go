package run

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/berquerant/splitlast/pkg/config"
	"github.com/berquerant/splitlast/pkg/splitlast"
	"golang.org/x/sync/errgroup"
)

var ErrRun = errors.New("Run")

// Main splits each input and writes one result per line.
// Inputs are the positional arguments, or the lines of c.Reader when
// there are none.
func Main(c *config.Config) error {
	if len(c.Args) > 0 {
		return runArgs(c)
	}
	return runReader(c)
}

func runArgs(c *config.Config) error {
	var (
		pat     = c.Pattern()
		results = make([]string, len(c.Args))
	)
	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, s := range c.Args {
		eg.Go(func() error {
			slog.Debug("split", slog.Int("index", i), slog.String("in", s))
			out, err := splitlast.Last(s, pat)
			if err != nil {
				return fmt.Errorf("%w: args[%d]", err, i)
			}
			results[i] = out
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return errors.Join(ErrRun, err)
	}
	for _, out := range results {
		fmt.Fprintln(c.Writer, out)
	}
	return nil
}

func runReader(c *config.Config) error {
	if c.Reader == nil {
		return fmt.Errorf("%w: no input", ErrRun)
	}
	var (
		pat     = c.Pattern()
		scanner = bufio.NewScanner(c.Reader)
	)
	for scanner.Scan() {
		line := scanner.Text()
		slog.Debug("split", slog.String("in", line))
		out, err := splitlast.Last(line, pat)
		if err != nil {
			return errors.Join(ErrRun, err)
		}
		fmt.Fprintln(c.Writer, out)
	}
	if err := scanner.Err(); err != nil {
		return errors.Join(ErrRun, err)
	}
	return nil
}
