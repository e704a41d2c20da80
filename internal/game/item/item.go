package item

import "slices"

// Item is a named thing that changes hit points by Value when used.
type Item struct {
	Name  string
	Kind  Kind
	Value int
	// Owners holds the character ids a spell may target. Unused for other kinds.
	Owners []string
}

// AllowsTarget reports whether characterID is in the owner set.
func (i Item) AllowsTarget(characterID string) bool {
	return slices.Contains(i.Owners, characterID)
}
