package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/raine/amazon-feed-normalizer/config"
	"github.com/raine/amazon-feed-normalizer/internal/pipeline"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// normalize-feed reads a JSONL feed of raw Amazon product records on stdin
// (or -in) and writes normalized catalog records as JSONL to stdout (or
// -out). Invalid records are skipped with a warning.
func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	config.LoadEnvFile()
	zerolog.SetGlobalLevel(config.LogLevel())

	var inPath, outPath string
	var workers int
	flag.StringVar(&inPath, "in", "", "input feed path (default: stdin)")
	flag.StringVar(&outPath, "out", "", "output path (default: stdout)")
	flag.IntVar(&workers, "workers", 4, "concurrent normalizer workers")
	flag.Parse()

	in := io.Reader(os.Stdin)
	if inPath != "" {
		f, err := os.Open(inPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", inPath).Msg("failed to open input feed")
		}
		defer f.Close()
		in = f
	}

	out := io.Writer(os.Stdout)
	if outPath != "" {
		f, err := os.OpenFile(outPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			log.Fatal().Err(err).Str("path", outPath).Msg("failed to open output file")
		}
		defer f.Close()
		out = f
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	stats, err := pipeline.Run(ctx, in, out, pipeline.Opts{Workers: workers})
	if err != nil && err != context.Canceled {
		log.Fatal().Err(err).Msg("feed normalization failed")
	}

	log.Info().
		Int64("read", stats.Read).
		Int64("normalized", stats.Normalized).
		Int64("invalid", stats.Invalid).
		Msg("feed normalization complete")
}
