// Package character models town characters, their classes and the item
// containers each class carries.
package character

import (
	"strings"

	"github.com/louisbranch/rpgsim/internal/game/item"
)

// Narrator is the reserved speaker that exists without being created.
const Narrator = "Narrator"

// Class identifies a character class.
type Class string

const (
	ClassUnspecified Class = ""
	ClassFighter     Class = "fighter"
	ClassWizard      Class = "wizard"
	ClassArcher      Class = "archer"
)

// capacities lists the container size per class and item kind. Kinds not
// listed for a class are not carried by it.
var capacities = map[Class]map[item.Kind]int{
	ClassFighter: {item.KindWeapon: 3, item.KindPotion: 5},
	ClassWizard:  {item.KindPotion: 10, item.KindSpell: 10},
	ClassArcher:  {item.KindWeapon: 2, item.KindPotion: 3, item.KindSpell: 2},
}

// ParseClass parses a class label.
func ParseClass(value string) (Class, bool) {
	class := Class(strings.TrimSpace(value))
	if _, ok := capacities[class]; !ok {
		return ClassUnspecified, false
	}
	return class, true
}

// Capacity returns the container capacity for kind, and false when the class
// does not carry that kind.
func (c Class) Capacity(kind item.Kind) (int, bool) {
	n, ok := capacities[c][kind]
	return n, ok
}

// CanAttack reports whether the class attacks with weapons.
func (c Class) CanAttack() bool {
	return c == ClassFighter || c == ClassArcher
}

// CanCast reports whether the class casts spells.
func (c Class) CanCast() bool {
	return c == ClassWizard || c == ClassArcher
}

// RequiresSpellTarget reports whether casts by this class must target a
// character in the spell owner set.
func (c Class) RequiresSpellTarget() bool {
	return c == ClassArcher
}

func (c Class) String() string {
	return string(c)
}
