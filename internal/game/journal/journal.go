// Package journal defines the persistence contract for simulation runs.
//
// A run groups the commands processed from one input. Each processed command
// is stored with its outcome, its rendered output and the events it emitted.
package journal

import (
	"context"
	"errors"
	"time"

	"github.com/louisbranch/rpgsim/internal/game/event"
)

//go:generate go tool mockgen -destination=mocks/recorder.go -package=mocks . Recorder

var (
	// ErrNotFound indicates a requested journal record is missing.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists indicates a run id was recorded twice.
	ErrAlreadyExists = errors.New("record already exists")
)

// Run describes one simulation run.
type Run struct {
	ID       string
	Source   string
	Format   string
	Declared int
	// Processed is the number of commands recorded. Filled on read.
	Processed  int
	StartedAt  time.Time
	FinishedAt time.Time
}

// Finished reports whether the run was closed.
func (r Run) Finished() bool {
	return !r.FinishedAt.IsZero()
}

// CommandRecord stores the outcome of one processed command.
type CommandRecord struct {
	RunID         string
	Seq           int
	Line          string
	Type          string
	Accepted      bool
	RejectionCode string
	Output        []string
	Events        []event.Event
	RecordedAt    time.Time
}

// EventRecord is one stored event of a run.
type EventRecord struct {
	RunID       string
	Seq         int
	Index       int
	Type        string
	EntityType  string
	EntityID    string
	PayloadJSON []byte
}

// Recorder receives run lifecycle and command outcomes.
type Recorder interface {
	BeginRun(ctx context.Context, run Run) error
	RecordCommand(ctx context.Context, record CommandRecord) error
	FinishRun(ctx context.Context, runID string, finishedAt time.Time) error
}

// Reader exposes stored runs for tooling and tests.
type Reader interface {
	GetRun(ctx context.Context, runID string) (Run, error)
	ListRuns(ctx context.Context) ([]Run, error)
	ListCommands(ctx context.Context, runID string) ([]CommandRecord, error)
	ListEvents(ctx context.Context, runID string) ([]EventRecord, error)
}

// Nop is a Recorder that stores nothing.
type Nop struct{}

func (Nop) BeginRun(context.Context, Run) error                { return nil }
func (Nop) RecordCommand(context.Context, CommandRecord) error { return nil }
func (Nop) FinishRun(context.Context, string, time.Time) error { return nil }

// Event returns the stored event envelope.
func (r EventRecord) Event() event.Event {
	return event.Event{
		Type:        event.Type(r.Type),
		EntityType:  r.EntityType,
		EntityID:    r.EntityID,
		PayloadJSON: r.PayloadJSON,
	}
}
