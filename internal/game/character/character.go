package character

import (
	"fmt"

	"github.com/louisbranch/rpgsim/internal/game/item"
)

// Character is a living town member.
type Character struct {
	ID    string
	Name  string
	Class Class
	HP    int

	slots map[item.Kind]*item.Container
}

// New returns a character of class with empty containers sized by the class.
func New(id, name string, class Class, hp int) (*Character, error) {
	if _, ok := capacities[class]; !ok {
		return nil, fmt.Errorf("unknown class %q", class)
	}
	c := &Character{
		ID:    id,
		Name:  name,
		Class: class,
		HP:    hp,
		slots: make(map[item.Kind]*item.Container, len(capacities[class])),
	}
	for kind, capacity := range capacities[class] {
		c.slots[kind] = item.NewContainer(kind, capacity)
	}
	return c, nil
}

// Holds reports whether the character carries items of kind.
func (c *Character) Holds(kind item.Kind) bool {
	_, ok := c.slots[kind]
	return ok
}

// Slot returns the container for kind.
func (c *Character) Slot(kind item.Kind) (*item.Container, bool) {
	slot, ok := c.slots[kind]
	return slot, ok
}
