package engine

import (
	"fmt"

	"github.com/louisbranch/rpgsim/internal/game/command"
	"github.com/louisbranch/rpgsim/internal/game/event"
	"github.com/louisbranch/rpgsim/internal/platform/id"
)

// Result is the outcome of executing one command.
type Result struct {
	Command command.Command
	Events  []event.Event
	// Rejection is set when the command was declined.
	Rejection *command.Rejection
	Output    []string
}

// Accepted reports whether the command produced events.
func (r Result) Accepted() bool {
	return r.Rejection == nil
}

// Game executes commands against one registry of characters.
type Game struct {
	state    *State
	registry *command.Registry
	newID    id.Generator
}

// Option configures a Game.
type Option func(*Game)

// WithIDGenerator sets the generator used for character instance ids.
func WithIDGenerator(gen id.Generator) Option {
	return func(g *Game) {
		if gen != nil {
			g.newID = gen
		}
	}
}

// WithRegistry replaces the default command registry.
func WithRegistry(registry *command.Registry) Option {
	return func(g *Game) {
		if registry != nil {
			g.registry = registry
		}
	}
}

// NewGame returns a game with an empty town.
func NewGame(opts ...Option) *Game {
	g := &Game{
		state:    NewState(),
		registry: command.DefaultRegistry(),
		newID:    id.NewID,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// State exposes the current registry for inspection.
func (g *Game) State() *State {
	return g.state
}

// ExecuteLine parses and executes one command line. Parse failures become
// rejections.
func (g *Game) ExecuteLine(line string) (Result, error) {
	cmd, err := command.Parse(line)
	if err != nil {
		return rejected(command.Command{Line: line}, command.RejectionFromError(err)), nil
	}
	return g.Execute(cmd)
}

// Execute validates, decides, folds and renders cmd. The returned error is
// reserved for events that cannot be applied, which leaves the game in an
// undefined state.
func (g *Game) Execute(cmd command.Command) (Result, error) {
	validated, err := g.registry.ValidateForDecision(cmd)
	if err != nil {
		return rejected(cmd, command.RejectionFromError(err)), nil
	}

	decision := Decide(g.state, validated, g.newID)
	if !decision.Accepted() {
		return rejected(validated, decision.Rejections[0]), nil
	}

	result := Result{Command: validated, Events: decision.Events}
	for _, evt := range decision.Events {
		if err := Fold(g.state, evt); err != nil {
			return result, fmt.Errorf("apply %s: %w", evt.Type, err)
		}
		lines, err := Render(evt)
		if err != nil {
			return result, err
		}
		result.Output = append(result.Output, lines...)
	}
	return result, nil
}

func rejected(cmd command.Command, rejection command.Rejection) Result {
	return Result{
		Command:   cmd,
		Rejection: &rejection,
		Output:    []string{ErrorMarker},
	}
}
