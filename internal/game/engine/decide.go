package engine

import (
	"strconv"

	"github.com/louisbranch/rpgsim/internal/game/character"
	"github.com/louisbranch/rpgsim/internal/game/command"
	"github.com/louisbranch/rpgsim/internal/game/event"
	"github.com/louisbranch/rpgsim/internal/game/item"
	apperrors "github.com/louisbranch/rpgsim/internal/platform/errors"
	"github.com/louisbranch/rpgsim/internal/platform/id"
)

// Decide returns the decision for cmd against state. It never mutates state.
// newID supplies instance ids for created characters.
func Decide(state *State, cmd command.Command, newID id.Generator) command.Decision {
	switch cmd.Type {
	case command.TypeCreateCharacter:
		var payload command.CreateCharacterPayload
		if err := cmd.Decode(&payload); err != nil {
			return rejectDecode(cmd, err)
		}
		return decideCreateCharacter(state, payload, newID)
	case command.TypeCreateItem:
		var payload command.CreateItemPayload
		if err := cmd.Decode(&payload); err != nil {
			return rejectDecode(cmd, err)
		}
		return decideCreateItem(state, payload)
	case command.TypeAttack:
		var payload command.AttackPayload
		if err := cmd.Decode(&payload); err != nil {
			return rejectDecode(cmd, err)
		}
		return decideAttack(state, payload)
	case command.TypeCast:
		var payload command.CastPayload
		if err := cmd.Decode(&payload); err != nil {
			return rejectDecode(cmd, err)
		}
		return decideCast(state, payload)
	case command.TypeDrink:
		var payload command.DrinkPayload
		if err := cmd.Decode(&payload); err != nil {
			return rejectDecode(cmd, err)
		}
		return decideDrink(state, payload)
	case command.TypeDialogue:
		var payload command.DialoguePayload
		if err := cmd.Decode(&payload); err != nil {
			return rejectDecode(cmd, err)
		}
		return decideDialogue(state, payload)
	case command.TypeShowCharacters:
		return decideShowCharacters(state)
	case command.TypeShowItems:
		var payload command.ShowItemsPayload
		if err := cmd.Decode(&payload); err != nil {
			return rejectDecode(cmd, err)
		}
		return decideShowItems(state, payload)
	default:
		return reject(apperrors.CodeCommandUnknownType, "command type is not handled", map[string]string{"Type": string(cmd.Type)})
	}
}

func decideCreateCharacter(state *State, payload command.CreateCharacterPayload, newID id.Generator) command.Decision {
	class, ok := character.ParseClass(payload.Class)
	if !ok {
		return reject(apperrors.CodeCharacterInvalidClass, "character class is invalid", map[string]string{"Class": payload.Class})
	}
	if payload.Name == character.Narrator {
		return reject(apperrors.CodeCharacterNameReserved, "character name is reserved", map[string]string{"Name": payload.Name})
	}
	if _, exists := state.Character(payload.Name); exists {
		return reject(apperrors.CodeCharacterAlreadyExists, "character already exists", map[string]string{"Name": payload.Name})
	}
	if payload.HP <= 0 {
		return reject(apperrors.CodeCharacterInvalidHP, "character hit points must be positive", map[string]string{
			"Name": payload.Name,
			"HP":   strconv.Itoa(payload.HP),
		})
	}
	if newID == nil {
		newID = id.NewID
	}
	characterID, err := newID()
	if err != nil {
		return command.Reject(command.RejectionFromError(err))
	}
	return accept(event.New(event.TypeCharacterCreated, event.EntityCharacter, characterID, event.CharacterCreatedPayload{
		CharacterID: characterID,
		Name:        payload.Name,
		Class:       class.String(),
		HP:          payload.HP,
	}))
}

func decideCreateItem(state *State, payload command.CreateItemPayload) command.Decision {
	kind, ok := item.ParseKind(payload.Kind)
	if !ok {
		return reject(apperrors.CodeItemInvalidKind, "item kind is invalid", map[string]string{"Kind": payload.Kind})
	}
	owner, ok := state.Character(payload.Owner)
	if !ok {
		return rejectNotFound(payload.Owner)
	}
	slot, ok := owner.Slot(kind)
	if !ok {
		return rejectSlot(owner, kind)
	}
	if slot.Full() {
		return reject(apperrors.CodeContainerFull, "container is full", map[string]string{
			"Name":     owner.Name,
			"Kind":     kind.String(),
			"Capacity": strconv.Itoa(slot.Capacity()),
		})
	}

	var targetIDs []string
	if kind == item.KindSpell {
		for _, name := range payload.Targets {
			if target, ok := state.Character(name); ok {
				targetIDs = append(targetIDs, target.ID)
			}
		}
	}
	return accept(event.New(event.TypeItemObtained, event.EntityCharacter, owner.ID, event.ItemObtainedPayload{
		OwnerID:   owner.ID,
		Owner:     owner.Name,
		Kind:      kind.String(),
		Name:      payload.Name,
		Value:     payload.Value,
		TargetIDs: targetIDs,
	}))
}

func decideAttack(state *State, payload command.AttackPayload) command.Decision {
	attacker, target, rejected := lookupPair(state, payload.Attacker, payload.Target)
	if rejected != nil {
		return *rejected
	}
	if !attacker.Class.CanAttack() {
		return reject(apperrors.CodeCharacterCannotAttack, "character class cannot attack", map[string]string{"Class": attacker.Class.String()})
	}
	weapon, rejected := lookupItem(attacker, item.KindWeapon, payload.Weapon)
	if rejected != nil {
		return *rejected
	}

	hp := target.HP - weapon.Value
	events := []event.Event{}
	hit, err := event.New(event.TypeCharacterHit, event.EntityCharacter, target.ID, event.CharacterHitPayload{
		AttackerID: attacker.ID,
		Attacker:   attacker.Name,
		TargetID:   target.ID,
		Target:     target.Name,
		Weapon:     weapon.Name,
		Damage:     weapon.Value,
		HP:         hp,
	})
	if err != nil {
		return command.Reject(command.RejectionFromError(err))
	}
	events = append(events, hit)
	if hp <= 0 {
		died, err := diedEvent(target)
		if err != nil {
			return command.Reject(command.RejectionFromError(err))
		}
		events = append(events, died)
	}
	return command.Accept(events...)
}

func decideCast(state *State, payload command.CastPayload) command.Decision {
	caster, target, rejected := lookupPair(state, payload.Caster, payload.Target)
	if rejected != nil {
		return *rejected
	}
	if !caster.Class.CanCast() {
		return reject(apperrors.CodeCharacterCannotCast, "character class cannot cast", map[string]string{"Class": caster.Class.String()})
	}
	spell, rejected := lookupItem(caster, item.KindSpell, payload.Spell)
	if rejected != nil {
		return *rejected
	}
	// Wizards may cast on anyone; archers only on the spell owner set.
	if caster.Class.RequiresSpellTarget() && !spell.AllowsTarget(target.ID) {
		return reject(apperrors.CodeSpellTargetDenied, "spell cannot target character", map[string]string{
			"Item":   spell.Name,
			"Target": target.Name,
		})
	}

	cast, err := event.New(event.TypeSpellCast, event.EntityCharacter, target.ID, event.SpellCastPayload{
		CasterID: caster.ID,
		Caster:   caster.Name,
		TargetID: target.ID,
		Target:   target.Name,
		Spell:    spell.Name,
	})
	if err != nil {
		return command.Reject(command.RejectionFromError(err))
	}
	died, err := diedEvent(target)
	if err != nil {
		return command.Reject(command.RejectionFromError(err))
	}
	return command.Accept(cast, died)
}

func decideDrink(state *State, payload command.DrinkPayload) command.Decision {
	supplier, drinker, rejected := lookupPair(state, payload.Supplier, payload.Drinker)
	if rejected != nil {
		return *rejected
	}
	potion, rejected := lookupItem(supplier, item.KindPotion, payload.Potion)
	if rejected != nil {
		return *rejected
	}

	hp := drinker.HP + potion.Value
	drunk, err := event.New(event.TypePotionDrunk, event.EntityCharacter, drinker.ID, event.PotionDrunkPayload{
		SupplierID: supplier.ID,
		Supplier:   supplier.Name,
		DrinkerID:  drinker.ID,
		Drinker:    drinker.Name,
		Potion:     potion.Name,
		Heal:       potion.Value,
		HP:         hp,
	})
	if err != nil {
		return command.Reject(command.RejectionFromError(err))
	}
	// Negative potions can kill the drinker.
	if hp <= 0 {
		died, err := diedEvent(drinker)
		if err != nil {
			return command.Reject(command.RejectionFromError(err))
		}
		return command.Accept(drunk, died)
	}
	return command.Accept(drunk)
}

func decideDialogue(state *State, payload command.DialoguePayload) command.Decision {
	if payload.Count < 1 || len(payload.Words) != payload.Count {
		return reject(apperrors.CodeCommandMalformed, "dialogue word count does not match", map[string]string{
			"Reason": "dialogue word count does not match",
		})
	}
	entityType, entityID := event.EntityTown, ""
	if payload.Speaker != character.Narrator {
		speaker, ok := state.Character(payload.Speaker)
		if !ok {
			return rejectNotFound(payload.Speaker)
		}
		entityType, entityID = event.EntityCharacter, speaker.ID
	}
	return accept(event.New(event.TypeDialogueSpoken, entityType, entityID, event.DialogueSpokenPayload{
		Speaker: payload.Speaker,
		Words:   append([]string(nil), payload.Words...),
	}))
}

func decideShowCharacters(state *State) command.Decision {
	entries := []event.CharacterEntry{}
	for _, c := range state.Characters() {
		entries = append(entries, event.CharacterEntry{Name: c.Name, Class: c.Class.String(), HP: c.HP})
	}
	return accept(event.New(event.TypeCharactersShown, event.EntityTown, "", event.CharactersShownPayload{Characters: entries}))
}

func decideShowItems(state *State, payload command.ShowItemsPayload) command.Decision {
	kind, ok := item.ParseKind(payload.Kind)
	if !ok {
		return reject(apperrors.CodeItemInvalidKind, "item kind is invalid", map[string]string{"Kind": payload.Kind})
	}
	owner, ok := state.Character(payload.Owner)
	if !ok {
		return rejectNotFound(payload.Owner)
	}
	slot, ok := owner.Slot(kind)
	if !ok {
		return rejectSlot(owner, kind)
	}
	entries := []event.ItemEntry{}
	for _, it := range slot.Items() {
		entries = append(entries, event.ItemEntry{Name: it.Name, Value: it.Value})
	}
	return accept(event.New(event.TypeItemsShown, event.EntityCharacter, owner.ID, event.ItemsShownPayload{
		Owner: owner.Name,
		Kind:  kind.String(),
		Items: entries,
	}))
}

func lookupPair(state *State, first, second string) (*character.Character, *character.Character, *command.Decision) {
	a, ok := state.Character(first)
	if !ok {
		d := rejectNotFound(first)
		return nil, nil, &d
	}
	b, ok := state.Character(second)
	if !ok {
		d := rejectNotFound(second)
		return nil, nil, &d
	}
	return a, b, nil
}

func lookupItem(owner *character.Character, kind item.Kind, name string) (item.Item, *command.Decision) {
	slot, ok := owner.Slot(kind)
	if !ok {
		d := rejectSlot(owner, kind)
		return item.Item{}, &d
	}
	found, ok := slot.Find(name)
	if !ok {
		d := reject(apperrors.CodeItemNotOwned, "item not owned", map[string]string{
			"Name": owner.Name,
			"Kind": kind.String(),
			"Item": name,
		})
		return item.Item{}, &d
	}
	return found, nil
}

func diedEvent(c *character.Character) (event.Event, error) {
	return event.New(event.TypeCharacterDied, event.EntityCharacter, c.ID, event.CharacterDiedPayload{
		CharacterID: c.ID,
		Name:        c.Name,
	})
}

func accept(evt event.Event, err error) command.Decision {
	if err != nil {
		return command.Reject(command.RejectionFromError(err))
	}
	return command.Accept(evt)
}

func reject(code apperrors.Code, message string, metadata map[string]string) command.Decision {
	return command.Reject(command.Rejection{Code: code, Message: message, Metadata: metadata})
}

func rejectNotFound(name string) command.Decision {
	return reject(apperrors.CodeCharacterNotFound, "character not found", map[string]string{"Name": name})
}

func rejectSlot(owner *character.Character, kind item.Kind) command.Decision {
	return reject(apperrors.CodeItemSlotUnsupported, "character class cannot hold item kind", map[string]string{
		"Class": owner.Class.String(),
		"Kind":  kind.String(),
	})
}

func rejectDecode(cmd command.Command, err error) command.Decision {
	return reject(apperrors.CodeCommandPayloadInvalid, err.Error(), map[string]string{"Type": string(cmd.Type)})
}
