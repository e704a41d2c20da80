// Package item models the physical items characters carry and the bounded
// containers that hold them.
package item

import "strings"

// Kind identifies the item subtype.
type Kind string

const (
	KindUnspecified Kind = ""
	KindWeapon      Kind = "weapon"
	KindPotion      Kind = "potion"
	KindSpell       Kind = "spell"
)

// Kinds lists the item kinds in display order.
var Kinds = []Kind{KindWeapon, KindPotion, KindSpell}

// ParseKind parses a kind label. Singular and plural labels are accepted
// ("weapon", "weapons").
func ParseKind(value string) (Kind, bool) {
	switch strings.TrimSpace(value) {
	case "weapon", "weapons":
		return KindWeapon, true
	case "potion", "potions":
		return KindPotion, true
	case "spell", "spells":
		return KindSpell, true
	default:
		return KindUnspecified, false
	}
}

// String returns the singular label.
func (k Kind) String() string {
	return string(k)
}
