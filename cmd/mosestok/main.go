package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"mosestok/internal/pkg/mosestok/config"
	"mosestok/internal/pkg/mosestok/engine"

	_ "mosestok/internal/pkg/mosestok/backends/moses"
)

func main() {
	_ = godotenv.Load()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.LoadAndParse()
	if errors.Is(err, config.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to parse configuration")
	}

	if err := setupLogging(cfg); err != nil {
		log.Fatal().Err(err).Msg("Failed to setup logging")
	}
	log.Logger = log.With().Str("run", uuid.New().String()).Logger()

	if cfg.ListModes {
		fmt.Fprintf(os.Stderr, "mosestok %s\n", Version)
		fmt.Fprintf(os.Stderr, "Available modes:\n")
		for _, m := range engine.ListModes() {
			fmt.Fprintf(os.Stderr, "  %s\n", m)
		}
		return
	}

	log.Debug().
		Str("mode", cfg.Mode).
		Str("lang", cfg.Language).
		Bool("escape", !cfg.NoEscape).
		Strs("protect", cfg.Protect).
		Msg("Configuration loaded")

	proc, err := engine.New(cfg.Mode, cfg.Engine())
	if err != nil {
		log.Fatal().Err(err).Str("mode", cfg.Mode).Msg("Failed to create processor")
	}

	info := proc.Info()
	log.Debug().
		Str("mode", info.Mode).
		Str("lang", info.Language).
		Interface("options", info.Options).
		Msg("Processor ready")

	in, closeIn, err := openInput(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open input")
	}
	defer closeIn()

	out := io.Writer(os.Stdout)
	if cfg.Output != "" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			log.Fatal().Err(err).Str("output", cfg.Output).Msg("Failed to create output file")
		}
		defer f.Close()
		out = f
	}

	startTime := time.Now()
	lines, err := processLines(proc, in, out)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to process input")
	}

	log.Info().
		Str("mode", info.Mode).
		Int("lines", lines).
		Dur("elapsed", time.Since(startTime)).
		Msg("Processing finished")
}

// openInput picks the input source: --text, --file, positional args, then
// stdin.
func openInput(cfg *config.Config) (io.Reader, func(), error) {
	noop := func() {}
	switch {
	case cfg.Text == "-":
		return os.Stdin, noop, nil
	case cfg.Text != "":
		return strings.NewReader(cfg.Text), noop, nil
	case cfg.File != "":
		f, err := os.Open(cfg.File)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to open %s: %w", cfg.File, err)
		}
		return f, func() { f.Close() }, nil
	case len(cfg.Args) > 0:
		return strings.NewReader(strings.Join(cfg.Args, " ")), noop, nil
	default:
		return os.Stdin, noop, nil
	}
}

// processLines writes one output line per input line and returns the number
// of lines handled.
func processLines(proc engine.Processor, r io.Reader, w io.Writer) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	bw := bufio.NewWriter(w)
	n := 0
	for scanner.Scan() {
		if _, err := bw.WriteString(proc.Process(scanner.Text())); err != nil {
			return n, err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return n, err
		}
		n++
	}
	if err := scanner.Err(); err != nil {
		return n, fmt.Errorf("failed to read input: %w", err)
	}
	return n, bw.Flush()
}

func setupLogging(cfg *config.Config) error {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		log.Logger = zerolog.New(f).With().Timestamp().Logger()
	}

	return nil
}
