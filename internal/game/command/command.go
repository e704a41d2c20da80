package command

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Type identifies the command type string.
type Type string

const (
	TypeCreateCharacter Type = "character.create"
	TypeCreateItem      Type = "item.create"
	TypeAttack          Type = "character.attack"
	TypeCast            Type = "spell.cast"
	TypeDrink           Type = "potion.drink"
	TypeDialogue        Type = "dialogue.speak"
	TypeShowCharacters  Type = "characters.show"
	TypeShowItems       Type = "items.show"
)

// Verb returns the leading word of the text form of the type.
func (t Type) Verb() string {
	switch t {
	case TypeCreateCharacter, TypeCreateItem:
		return VerbCreate
	case TypeAttack:
		return VerbAttack
	case TypeCast:
		return VerbCast
	case TypeDrink:
		return VerbDrink
	case TypeDialogue:
		return VerbDialogue
	case TypeShowCharacters, TypeShowItems:
		return VerbShow
	default:
		return ""
	}
}

// Command captures the canonical command envelope.
type Command struct {
	Type Type
	// Line is the text form of the command.
	Line        string
	PayloadJSON []byte
}

// Decode unmarshals the command payload into target.
func (c Command) Decode(target any) error {
	if err := json.Unmarshal(c.PayloadJSON, target); err != nil {
		return fmt.Errorf("decode %s payload: %w", c.Type, err)
	}
	return nil
}

// NewCreateCharacter builds a character creation command.
func NewCreateCharacter(class, name string, hp int) Command {
	return build(TypeCreateCharacter,
		fmt.Sprintf("%s character %s %s %d", VerbCreate, class, name, hp),
		CreateCharacterPayload{Class: class, Name: name, HP: hp})
}

// NewCreateItem builds an item creation command. Targets only apply to spells.
func NewCreateItem(kind, owner, name string, value int, targets []string) Command {
	line := fmt.Sprintf("%s item %s %s %s %d", VerbCreate, kind, owner, name, value)
	if len(targets) > 0 {
		line += " " + FormatList(targets)
	}
	return build(TypeCreateItem, line, CreateItemPayload{
		Kind:    kind,
		Owner:   owner,
		Name:    name,
		Value:   value,
		Targets: append([]string(nil), targets...),
	})
}

// NewAttack builds a weapon attack command.
func NewAttack(attacker, target, weapon string) Command {
	return build(TypeAttack,
		fmt.Sprintf("%s %s %s %s", VerbAttack, attacker, target, weapon),
		AttackPayload{Attacker: attacker, Target: target, Weapon: weapon})
}

// NewCast builds a spell cast command.
func NewCast(caster, target, spell string) Command {
	return build(TypeCast,
		fmt.Sprintf("%s %s %s %s", VerbCast, caster, target, spell),
		CastPayload{Caster: caster, Target: target, Spell: spell})
}

// NewDrink builds a potion command where supplier hands the potion to drinker.
func NewDrink(supplier, drinker, potion string) Command {
	return build(TypeDrink,
		fmt.Sprintf("%s %s %s %s", VerbDrink, supplier, drinker, potion),
		DrinkPayload{Supplier: supplier, Drinker: drinker, Potion: potion})
}

// NewDialogue builds a dialogue command speaking words.
func NewDialogue(speaker string, words []string) Command {
	return build(TypeDialogue,
		fmt.Sprintf("%s %s %d %s", VerbDialogue, speaker, len(words), strings.Join(words, " ")),
		DialoguePayload{Speaker: speaker, Count: len(words), Words: append([]string(nil), words...)})
}

// NewShowCharacters builds a character listing command.
func NewShowCharacters() Command {
	return build(TypeShowCharacters, VerbShow+" characters", ShowCharactersPayload{})
}

// NewShowItems builds an item listing command for one container.
func NewShowItems(kind, owner string) Command {
	return build(TypeShowItems,
		fmt.Sprintf("%s items %s %s", VerbShow, kind, owner),
		ShowItemsPayload{Kind: kind, Owner: owner})
}

func build(t Type, line string, payload any) Command {
	payloadJSON, _ := json.Marshal(payload)
	return Command{Type: t, Line: line, PayloadJSON: payloadJSON}
}
