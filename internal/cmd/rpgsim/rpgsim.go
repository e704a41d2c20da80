// Package rpgsim wires configuration, input, journal and telemetry for the
// simulator command.
package rpgsim

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/louisbranch/rpgsim/internal/game/driver"
	"github.com/louisbranch/rpgsim/internal/game/journal"
	journalsqlite "github.com/louisbranch/rpgsim/internal/game/journal/sqlite"
	"github.com/louisbranch/rpgsim/internal/game/script"
	platformcmd "github.com/louisbranch/rpgsim/internal/platform/cmd"
	"github.com/louisbranch/rpgsim/internal/platform/otel"
)

// Format values accepted by the -format flag.
const (
	FormatAuto = "auto"
	FormatText = string(driver.FormatText)
	FormatLua  = string(driver.FormatLua)
)

// Config holds simulator command configuration.
type Config struct {
	Input       string `env:"INPUT"        envDefault:"input.txt"`
	Output      string `env:"OUTPUT"       envDefault:"output.txt"`
	Format      string `env:"FORMAT"       envDefault:"auto"`
	Journal     string `env:"JOURNAL"`
	MaxCommands int    `env:"MAX_COMMANDS" envDefault:"2000"`
	Locale      string `env:"LOCALE"       envDefault:"en-US"`
	Verbose     bool   `env:"VERBOSE"`
}

// ParseConfig parses environment defaults and flag overrides into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.Input, "input", cfg.Input, "path to the command file or lua script")
	fs.StringVar(&cfg.Output, "output", cfg.Output, "path to write simulation output")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "input format: auto, text or lua")
	fs.StringVar(&cfg.Journal, "journal", cfg.Journal, "optional sqlite journal path")
	fs.IntVar(&cfg.MaxCommands, "max-commands", cfg.MaxCommands, "largest accepted command count")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "locale for diagnostic messages")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "enable verbose logging")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run reads the configured input, simulates it and writes the output file.
// A one-line summary goes to out; diagnostics go to errOut.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	if strings.TrimSpace(cfg.Input) == "" {
		return errors.New("input path is required")
	}
	if strings.TrimSpace(cfg.Output) == "" {
		return errors.New("output path is required")
	}
	format, err := resolveFormat(cfg.Format, cfg.Input)
	if err != nil {
		return err
	}

	in, err := loadInput(cfg.Input, format, cfg.MaxCommands)
	if err != nil {
		return err
	}

	recorder, closeJournal, err := openJournal(ctx, cfg.Journal)
	if err != nil {
		return err
	}
	defer closeJournal()

	file, err := os.Create(cfg.Output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	logger := log.New(errOut, "", 0)
	runner := driver.NewRunner(driver.Config{
		Locale:   cfg.Locale,
		Verbose:  cfg.Verbose,
		Logger:   logger,
		Recorder: recorder,
		Tracer:   otel.Tracer("rpgsim/driver"),
	})
	summary, runErr := runner.Run(ctx, in, file)
	if err := file.Close(); err != nil && runErr == nil {
		runErr = fmt.Errorf("close output: %w", err)
	}
	if runErr != nil {
		return runErr
	}

	fmt.Fprintf(out, "run %s: %d commands, %d rejected, output %s\n",
		summary.RunID, summary.Processed, summary.Rejected, cfg.Output)
	return nil
}

func resolveFormat(format, path string) (driver.Format, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatAuto:
		if strings.EqualFold(filepath.Ext(path), ".lua") {
			return driver.FormatLua, nil
		}
		return driver.FormatText, nil
	case FormatText:
		return driver.FormatText, nil
	case FormatLua:
		return driver.FormatLua, nil
	default:
		return "", fmt.Errorf("unknown input format %q", format)
	}
}

func loadInput(path string, format driver.Format, maxCommands int) (driver.Input, error) {
	if format == driver.FormatLua {
		s, err := script.LoadFile(path)
		if err != nil {
			return driver.Input{}, err
		}
		return driver.FromScript(s, path, maxCommands)
	}

	file, err := os.Open(path)
	if err != nil {
		return driver.Input{}, fmt.Errorf("open input: %w", err)
	}
	defer file.Close()
	return driver.ReadText(file, path, maxCommands)
}

func openJournal(ctx context.Context, path string) (journal.Recorder, func(), error) {
	if strings.TrimSpace(path) == "" {
		return journal.Nop{}, func() {}, nil
	}
	store, err := journalsqlite.Open(ctx, path)
	if err != nil {
		return nil, nil, fmt.Errorf("open journal: %w", err)
	}
	return store, func() { _ = store.Close() }, nil
}
