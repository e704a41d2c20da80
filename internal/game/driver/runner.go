// Package driver runs command inputs through the engine, writing output,
// journaling every command and tracing each one as a span.
package driver

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/louisbranch/rpgsim/internal/game/engine"
	"github.com/louisbranch/rpgsim/internal/game/journal"
	"github.com/louisbranch/rpgsim/internal/platform/errors/i18n"
	"github.com/louisbranch/rpgsim/internal/platform/id"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Config controls a run.
type Config struct {
	Locale   string
	Verbose  bool
	Logger   *log.Logger
	Recorder journal.Recorder
	Tracer   trace.Tracer
	// NewRunID generates run ids. Defaults to id.NewID.
	NewRunID id.Generator
	// GameOptions configure the engine for each run.
	GameOptions []engine.Option
	Now         func() time.Time
}

// Summary reports what a run did.
type Summary struct {
	RunID     string
	Declared  int
	Processed int
	Accepted  int
	Rejected  int
	Missing   int
}

// Runner executes inputs against a fresh game per run.
type Runner struct {
	logger   *log.Logger
	verbose  bool
	catalog  *i18n.Catalog
	recorder journal.Recorder
	tracer   trace.Tracer
	newRunID id.Generator
	options  []engine.Option
	now      func() time.Time
}

// NewRunner applies config defaults and returns a runner.
func NewRunner(cfg Config) *Runner {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(os.Stderr, "", 0)
	}
	recorder := cfg.Recorder
	if recorder == nil {
		recorder = journal.Nop{}
	}
	tracer := cfg.Tracer
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("rpgsim/driver")
	}
	newRunID := cfg.NewRunID
	if newRunID == nil {
		newRunID = id.NewID
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Runner{
		logger:   logger,
		verbose:  cfg.Verbose,
		catalog:  i18n.GetCatalog(cfg.Locale),
		recorder: recorder,
		tracer:   tracer,
		newRunID: newRunID,
		options:  cfg.GameOptions,
		now:      now,
	}
}

// Run executes in and writes every output line to out. Rejected commands
// write the error marker and do not stop the run. Failures to write output
// or journal abort it.
func (r *Runner) Run(ctx context.Context, in Input, out io.Writer) (summary Summary, err error) {
	if out == nil {
		return Summary{}, errors.New("output writer is required")
	}
	runID, err := r.newRunID()
	if err != nil {
		return Summary{}, fmt.Errorf("generate run id: %w", err)
	}
	summary = Summary{RunID: runID, Declared: in.Declared, Missing: in.Missing}

	ctx, span := r.tracer.Start(ctx, "rpgsim.run", trace.WithAttributes(
		attribute.String("rpgsim.run.id", runID),
		attribute.String("rpgsim.run.source", in.Source),
		attribute.String("rpgsim.run.format", string(in.Format)),
		attribute.Int("rpgsim.run.declared", in.Declared),
	))
	defer func() {
		span.SetAttributes(
			attribute.Int("rpgsim.run.processed", summary.Processed),
			attribute.Int("rpgsim.run.rejected", summary.Rejected),
		)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if err := r.recorder.BeginRun(ctx, journal.Run{
		ID:        runID,
		Source:    in.Source,
		Format:    string(in.Format),
		Declared:  in.Declared,
		StartedAt: r.now().UTC(),
	}); err != nil {
		return summary, fmt.Errorf("journal begin run: %w", err)
	}

	w := bufio.NewWriter(out)
	r.logf("run start: %s %s (%d declared)", in.Source, in.Format, in.Declared)
	if in.Header != nil {
		r.logf("command count rejected: %s %s", in.Header.Code, r.catalog.Format(string(in.Header.Code), in.Header.Metadata))
		if err := writeLines(w, engine.ErrorMarker); err != nil {
			return summary, err
		}
	}

	game := engine.NewGame(r.options...)
	total := in.Len()
	for index := 0; index < total; index++ {
		if err := ctx.Err(); err != nil {
			_ = w.Flush()
			return summary, err
		}
		seq := index + 1
		res, err := r.runCommand(ctx, game, in, index)
		if err != nil {
			_ = w.Flush()
			return summary, fmt.Errorf("command %d: %w", seq, err)
		}
		summary.Processed++
		if res.Accepted() {
			summary.Accepted++
		} else {
			summary.Rejected++
		}

		if err := writeLines(w, res.Output...); err != nil {
			return summary, err
		}
		record := journal.CommandRecord{
			RunID:      runID,
			Seq:        seq,
			Line:       res.Command.Line,
			Type:       string(res.Command.Type),
			Accepted:   res.Accepted(),
			Output:     res.Output,
			Events:     res.Events,
			RecordedAt: r.now().UTC(),
		}
		if res.Rejection != nil {
			record.RejectionCode = string(res.Rejection.Code)
		}
		if err := r.recorder.RecordCommand(ctx, record); err != nil {
			_ = w.Flush()
			return summary, fmt.Errorf("journal command %d: %w", seq, err)
		}
	}
	if in.Missing > 0 {
		r.logf("input ended after %d of %d declared commands", in.Declared-in.Missing, in.Declared)
	}

	if err := w.Flush(); err != nil {
		return summary, fmt.Errorf("write output: %w", err)
	}
	if err := r.recorder.FinishRun(ctx, runID, r.now().UTC()); err != nil {
		return summary, fmt.Errorf("journal finish run: %w", err)
	}
	r.logf("run done: %d processed, %d rejected", summary.Processed, summary.Rejected)
	return summary, nil
}

func (r *Runner) runCommand(ctx context.Context, game *engine.Game, in Input, index int) (engine.Result, error) {
	seq := index + 1
	_, span := r.tracer.Start(ctx, "rpgsim.command", trace.WithAttributes(
		attribute.Int("rpgsim.command.seq", seq),
	))
	defer span.End()

	var (
		res engine.Result
		err error
	)
	if in.Format == FormatLua {
		res, err = game.Execute(in.commands[index])
	} else {
		res, err = game.ExecuteLine(in.lines[index])
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return res, err
	}

	span.SetAttributes(
		attribute.String("rpgsim.command.verb", res.Command.Type.Verb()),
		attribute.String("rpgsim.command.type", string(res.Command.Type)),
		attribute.Bool("rpgsim.command.accepted", res.Accepted()),
		attribute.Int("rpgsim.command.events", len(res.Events)),
	)
	if res.Rejection != nil {
		span.SetAttributes(
			attribute.String("rpgsim.command.rejection_code", string(res.Rejection.Code)),
			attribute.String("rpgsim.command.rejection_category", string(res.Rejection.Code.Category())),
		)
		r.logf("command %d rejected: %q %s %s", seq, res.Command.Line, res.Rejection.Code,
			r.catalog.Format(string(res.Rejection.Code), res.Rejection.Metadata))
		return res, nil
	}
	r.logf("command %d done: %q (%d events)", seq, res.Command.Line, len(res.Events))
	return res, nil
}

func (r *Runner) logf(format string, args ...any) {
	if !r.verbose || r.logger == nil {
		return
	}
	r.logger.Printf(format, args...)
}

func writeLines(w *bufio.Writer, lines ...string) error {
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return nil
}
