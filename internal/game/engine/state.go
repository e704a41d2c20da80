// Package engine decides, folds and renders game commands.
//
// Each command is decided against the current State without mutating it.
// Accepted decisions emit events which Fold applies to State and Render turns
// into output lines. A rejected command leaves State untouched and renders
// as the single ErrorMarker line.
package engine

import (
	"sort"

	"github.com/louisbranch/rpgsim/internal/game/character"
)

// State is the registry of living characters keyed by name.
type State struct {
	characters map[string]*character.Character
}

// NewState returns an empty registry.
func NewState() *State {
	return &State{characters: make(map[string]*character.Character)}
}

// Character returns the living character called name.
func (s *State) Character(name string) (*character.Character, bool) {
	c, ok := s.characters[name]
	return c, ok
}

// Characters returns the living characters sorted by name.
func (s *State) Characters() []*character.Character {
	out := make([]*character.Character, 0, len(s.characters))
	for _, c := range s.characters {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Len returns the number of living characters.
func (s *State) Len() int {
	return len(s.characters)
}

// characterByID returns the character called name when its id matches.
func (s *State) characterByID(name, id string) (*character.Character, bool) {
	c, ok := s.characters[name]
	if !ok || c.ID != id {
		return nil, false
	}
	return c, true
}
