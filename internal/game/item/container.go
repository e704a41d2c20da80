package item

import (
	"errors"
	"fmt"
)

var (
	// ErrContainerFull indicates the container reached its capacity.
	ErrContainerFull = errors.New("container is full")
	// ErrKindMismatch indicates an item of the wrong kind for the container.
	ErrKindMismatch = errors.New("item kind does not match container")
)

// Container is an ordered, capacity-bounded collection of one item kind.
type Container struct {
	kind     Kind
	capacity int
	items    []Item
}

// NewContainer returns an empty container for kind holding at most capacity items.
func NewContainer(kind Kind, capacity int) *Container {
	if capacity < 0 {
		capacity = 0
	}
	return &Container{kind: kind, capacity: capacity}
}

// Kind returns the item kind held by the container.
func (c *Container) Kind() Kind { return c.kind }

// Capacity returns the maximum number of items.
func (c *Container) Capacity() int { return c.capacity }

// Len returns the number of items held.
func (c *Container) Len() int { return len(c.items) }

// Full reports whether another item would exceed capacity.
func (c *Container) Full() bool { return len(c.items) >= c.capacity }

// Add appends an item, enforcing kind and capacity.
func (c *Container) Add(it Item) error {
	if it.Kind != c.kind {
		return fmt.Errorf("add %s to %s container: %w", it.Kind, c.kind, ErrKindMismatch)
	}
	if c.Full() {
		return fmt.Errorf("add %s: %w", it.Name, ErrContainerFull)
	}
	it.Owners = append([]string(nil), it.Owners...)
	c.items = append(c.items, it)
	return nil
}

// Find returns the first item with the given name.
func (c *Container) Find(name string) (Item, bool) {
	for _, it := range c.items {
		if it.Name == name {
			return it, true
		}
	}
	return Item{}, false
}

// Remove deletes the first item with the given name and returns it.
func (c *Container) Remove(name string) (Item, bool) {
	for i, it := range c.items {
		if it.Name == name {
			c.items = append(c.items[:i:i], c.items[i+1:]...)
			return it, true
		}
	}
	return Item{}, false
}

// Items returns a copy of the held items in insertion order.
func (c *Container) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}
