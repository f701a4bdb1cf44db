package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"ircmsg/message"
)

// Stats counts what a Reader saw.
type Stats struct {
	Lines  int
	Parsed int
	Failed int
}

func (s *Stats) add(o Stats) {
	s.Lines += o.Lines
	s.Parsed += o.Parsed
	s.Failed += o.Failed
}

// Reader parses one line-oriented input and hands every message to Bus.
type Reader struct {
	Name   string
	Bus    *Bus
	Logger zerolog.Logger
	Strict bool
}

// Run reads in until EOF, ctx is done or, in strict mode, a line fails to
// parse. Blank lines are skipped; a trailing CR is dropped by the scanner.
func (r *Reader) Run(ctx context.Context, in io.Reader) (Stats, error) {
	var st Stats

	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	lineNo := 0
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return st, err
		}
		lineNo++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		st.Lines++
		r.Logger.Trace().Str("input", r.Name).Msgf("< %s", line)

		msg, err := message.Parse(line)
		if err != nil {
			st.Failed++
			r.Logger.Warn().Err(err).Str("input", r.Name).Int("line", lineNo).Msg("cannot parse line")
			if r.Strict {
				return st, fmt.Errorf("%s:%d: %w", r.Name, lineNo, err)
			}
			continue
		}
		st.Parsed++
		r.Bus.Emit(msg)
	}

	if err := sc.Err(); err != nil {
		return st, fmt.Errorf("%s: %w", r.Name, err)
	}
	return st, nil
}

// Tally counts messages per command across concurrent readers.
type Tally struct {
	mu     sync.Mutex
	counts map[string]int
}

func NewTally() *Tally {
	return &Tally{counts: make(map[string]int)}
}

func (t *Tally) Add(cmd string) {
	t.mu.Lock()
	t.counts[strings.ToUpper(cmd)]++
	t.mu.Unlock()
}

func (t *Tally) Snapshot() map[string]int {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make(map[string]int, len(t.counts))
	for k, v := range t.counts {
		out[k] = v
	}
	return out
}
