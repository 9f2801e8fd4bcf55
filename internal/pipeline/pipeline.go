// Package pipeline streams newline-delimited JSON product records through
// the amazon adapter: validate, decode, normalize, emit. It is the caller
// side of the adapter's contract and holds no domain logic of its own.
package pipeline

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/raine/amazon-feed-normalizer/internal/amazon"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// maxLineBytes bounds a single feed line. Amazon records with large feature
// maps fit comfortably under 1 MiB.
const maxLineBytes = 1 << 20

type Opts struct {
	// Workers is the number of concurrent normalizer goroutines. With one
	// worker, output order matches input order; with more, output order is
	// unspecified.
	Workers int
}

type Stats struct {
	Read       int64
	Normalized int64
	Invalid    int64
}

type line struct {
	num  int
	data []byte
}

// Run reads JSONL product records from r and writes normalized JSONL to w.
// Records failing validation are logged and skipped; they never abort the
// feed. Run returns early on context cancellation, scanner failure, or a
// write error.
func Run(ctx context.Context, r io.Reader, w io.Writer, opts Opts) (Stats, error) {
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	var read, normalized, invalid atomic.Int64

	lines := make(chan line)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
		num := 0
		for scanner.Scan() {
			num++
			read.Add(1)
			data := make([]byte, len(scanner.Bytes()))
			copy(data, scanner.Bytes())
			if err := ctx.Err(); err != nil {
				return err
			}
			select {
			case lines <- line{num: num, data: data}:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("failed to read feed: %w", err)
		}
		return nil
	})

	var mu sync.Mutex
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			for l := range lines {
				out, ok := normalizeLine(l)
				if !ok {
					invalid.Add(1)
					continue
				}
				mu.Lock()
				_, err := w.Write(append(out, '\n'))
				mu.Unlock()
				if err != nil {
					return fmt.Errorf("failed to write normalized record: %w", err)
				}
				normalized.Add(1)
			}
			return nil
		})
	}

	err := g.Wait()
	stats := Stats{
		Read:       read.Load(),
		Normalized: normalized.Load(),
		Invalid:    invalid.Load(),
	}
	return stats, err
}

// normalizeLine runs one feed line through the adapter. A false return means
// the line was rejected or unreadable; the reason has already been logged.
func normalizeLine(l line) ([]byte, bool) {
	var v any
	if err := json.Unmarshal(l.data, &v); err != nil {
		log.Warn().Int("line", l.num).Err(err).Msg("skipping malformed JSON line")
		return nil, false
	}

	if !amazon.Validate(v) {
		log.Warn().Int("line", l.num).Msg("skipping record that failed validation")
		return nil, false
	}

	product, err := amazon.DecodeProduct(v)
	if err != nil {
		log.Warn().Int("line", l.num).Err(err).Msg("skipping record that failed to decode")
		return nil, false
	}

	out, err := json.Marshal(amazon.Normalize(product))
	if err != nil {
		log.Warn().Int("line", l.num).Err(err).Msg("skipping record that failed to marshal")
		return nil, false
	}
	return out, true
}
