package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/louisbranch/rpgsim/internal/game/event"
)

// ErrorMarker is the output line for every rejected command.
const ErrorMarker = "Error caught"

// Render returns the output lines for one event.
func Render(evt event.Event) ([]string, error) {
	switch evt.Type {
	case event.TypeCharacterCreated:
		var p event.CharacterCreatedPayload
		if err := evt.Decode(&p); err != nil {
			return nil, err
		}
		return []string{fmt.Sprintf("A new %s came to town, %s.", p.Class, p.Name)}, nil

	case event.TypeItemObtained:
		var p event.ItemObtainedPayload
		if err := evt.Decode(&p); err != nil {
			return nil, err
		}
		return []string{fmt.Sprintf("%s just obtained a new %s called %s.", p.Owner, p.Kind, p.Name)}, nil

	case event.TypeCharacterHit:
		var p event.CharacterHitPayload
		if err := evt.Decode(&p); err != nil {
			return nil, err
		}
		return []string{fmt.Sprintf("%s attacks %s with their %s!", p.Attacker, p.Target, p.Weapon)}, nil

	case event.TypeCharacterDied:
		var p event.CharacterDiedPayload
		if err := evt.Decode(&p); err != nil {
			return nil, err
		}
		return []string{p.Name + " has died..."}, nil

	case event.TypeSpellCast:
		var p event.SpellCastPayload
		if err := evt.Decode(&p); err != nil {
			return nil, err
		}
		return []string{fmt.Sprintf("%s casts %s on %s!", p.Caster, p.Spell, p.Target)}, nil

	case event.TypePotionDrunk:
		var p event.PotionDrunkPayload
		if err := evt.Decode(&p); err != nil {
			return nil, err
		}
		return []string{fmt.Sprintf("%s drinks %s from %s.", p.Drinker, p.Potion, p.Supplier)}, nil

	case event.TypeDialogueSpoken:
		var p event.DialogueSpokenPayload
		if err := evt.Decode(&p); err != nil {
			return nil, err
		}
		var b strings.Builder
		b.WriteString(p.Speaker + ": ")
		for _, word := range p.Words {
			b.WriteString(word + " ")
		}
		return []string{b.String()}, nil

	case event.TypeCharactersShown:
		var p event.CharactersShownPayload
		if err := evt.Decode(&p); err != nil {
			return nil, err
		}
		var b strings.Builder
		for _, c := range p.Characters {
			b.WriteString(c.Name + ":" + c.Class + ":" + strconv.Itoa(c.HP) + " ")
		}
		return []string{b.String()}, nil

	case event.TypeItemsShown:
		var p event.ItemsShownPayload
		if err := evt.Decode(&p); err != nil {
			return nil, err
		}
		var b strings.Builder
		for _, it := range p.Items {
			b.WriteString(it.Name + ":" + strconv.Itoa(it.Value) + " ")
		}
		return []string{b.String()}, nil

	default:
		return nil, fmt.Errorf("render: unhandled event type %q", evt.Type)
	}
}
