package engine

import (
	"fmt"

	"github.com/louisbranch/rpgsim/internal/game/character"
	"github.com/louisbranch/rpgsim/internal/game/event"
	"github.com/louisbranch/rpgsim/internal/game/item"
)

// Fold applies an event to state. Listing and dialogue events leave state
// unchanged. It returns an error when the event does not match state.
func Fold(state *State, evt event.Event) error {
	switch evt.Type {
	case event.TypeCharacterCreated:
		var payload event.CharacterCreatedPayload
		if err := evt.Decode(&payload); err != nil {
			return err
		}
		class, ok := character.ParseClass(payload.Class)
		if !ok {
			return fmt.Errorf("fold %s: unknown class %q", evt.Type, payload.Class)
		}
		c, err := character.New(payload.CharacterID, payload.Name, class, payload.HP)
		if err != nil {
			return fmt.Errorf("fold %s: %w", evt.Type, err)
		}
		state.characters[c.Name] = c

	case event.TypeItemObtained:
		var payload event.ItemObtainedPayload
		if err := evt.Decode(&payload); err != nil {
			return err
		}
		owner, err := foldCharacter(state, evt.Type, payload.Owner, payload.OwnerID)
		if err != nil {
			return err
		}
		kind, _ := item.ParseKind(payload.Kind)
		slot, ok := owner.Slot(kind)
		if !ok {
			return fmt.Errorf("fold %s: %s holds no %s", evt.Type, owner.Name, payload.Kind)
		}
		if err := slot.Add(item.Item{Name: payload.Name, Kind: kind, Value: payload.Value, Owners: payload.TargetIDs}); err != nil {
			return fmt.Errorf("fold %s: %w", evt.Type, err)
		}

	case event.TypeCharacterHit:
		var payload event.CharacterHitPayload
		if err := evt.Decode(&payload); err != nil {
			return err
		}
		target, err := foldCharacter(state, evt.Type, payload.Target, payload.TargetID)
		if err != nil {
			return err
		}
		target.HP = payload.HP

	case event.TypeCharacterDied:
		var payload event.CharacterDiedPayload
		if err := evt.Decode(&payload); err != nil {
			return err
		}
		if _, err := foldCharacter(state, evt.Type, payload.Name, payload.CharacterID); err != nil {
			return err
		}
		delete(state.characters, payload.Name)

	case event.TypeSpellCast:
		var payload event.SpellCastPayload
		if err := evt.Decode(&payload); err != nil {
			return err
		}
		caster, err := foldCharacter(state, evt.Type, payload.Caster, payload.CasterID)
		if err != nil {
			return err
		}
		if err := consume(caster, item.KindSpell, payload.Spell); err != nil {
			return fmt.Errorf("fold %s: %w", evt.Type, err)
		}

	case event.TypePotionDrunk:
		var payload event.PotionDrunkPayload
		if err := evt.Decode(&payload); err != nil {
			return err
		}
		supplier, err := foldCharacter(state, evt.Type, payload.Supplier, payload.SupplierID)
		if err != nil {
			return err
		}
		drinker, err := foldCharacter(state, evt.Type, payload.Drinker, payload.DrinkerID)
		if err != nil {
			return err
		}
		if err := consume(supplier, item.KindPotion, payload.Potion); err != nil {
			return fmt.Errorf("fold %s: %w", evt.Type, err)
		}
		drinker.HP = payload.HP

	case event.TypeDialogueSpoken, event.TypeCharactersShown, event.TypeItemsShown:
		// read-only

	default:
		return fmt.Errorf("fold: unhandled event type %q", evt.Type)
	}
	return nil
}

func foldCharacter(state *State, t event.Type, name, characterID string) (*character.Character, error) {
	c, ok := state.characterByID(name, characterID)
	if !ok {
		return nil, fmt.Errorf("fold %s: character %s (%s) not in state", t, name, characterID)
	}
	return c, nil
}

func consume(owner *character.Character, kind item.Kind, name string) error {
	slot, ok := owner.Slot(kind)
	if !ok {
		return fmt.Errorf("%s holds no %s", owner.Name, kind)
	}
	if _, ok := slot.Remove(name); !ok {
		return fmt.Errorf("%s has no %s %s", owner.Name, kind, name)
	}
	return nil
}
