// Command ircmsg reads raw IRC lines from files or stdin, parses each one
// and logs a typed view of what it found.
//
//	ircmsg [--log debug] [--format json] [--strict] [file ...]
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := ParseConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log := NewLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log, os.Stdin); err != nil {
		log.Fatal().Err(err).Msg("ircmsg failed")
	}
}

func run(ctx context.Context, cfg *Config, log zerolog.Logger, stdin io.Reader) error {
	tally := NewTally()
	bus := NewBus(log)
	registerCoreHandlers(bus, log, tally)

	inputs := cfg.Inputs
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}

	// messages are immutable, so inputs can be parsed side by side
	g, ctx := errgroup.WithContext(ctx)
	stats := make([]Stats, len(inputs))
	for i, name := range inputs {
		g.Go(func() error {
			in := stdin
			if name != "-" {
				f, err := os.Open(name)
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			} else {
				name = "stdin"
			}

			r := &Reader{Name: name, Bus: bus, Logger: log, Strict: cfg.Strict}
			st, err := r.Run(ctx, in)
			stats[i] = st
			return err
		})
	}
	err := g.Wait()

	var total Stats
	for _, st := range stats {
		total.add(st)
	}
	summary(log, total, tally.Snapshot())
	return err
}

func summary(log zerolog.Logger, total Stats, counts map[string]int) {
	verbs := make([]string, 0, len(counts))
	for v := range counts {
		verbs = append(verbs, v)
	}
	sort.Strings(verbs)

	d := zerolog.Dict()
	for _, v := range verbs {
		d.Int(v, counts[v])
	}
	log.Info().Int("lines", total.Lines).Int("parsed", total.Parsed).Int("failed", total.Failed).
		Dict("commands", d).Msg("done")
}
