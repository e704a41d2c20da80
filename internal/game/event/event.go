// Package event defines the facts emitted by accepted commands.
//
// Events are folded into game state and rendered into output lines. Every
// event carries its payload as JSON so the journal can store it unchanged.
package event

import (
	"encoding/json"
	"fmt"
)

// Type identifies the event type string.
type Type string

const (
	TypeCharacterCreated Type = "character.created"
	TypeItemObtained     Type = "item.obtained"
	TypeCharacterHit     Type = "character.hit"
	TypeCharacterDied    Type = "character.died"
	TypeSpellCast        Type = "spell.cast"
	TypePotionDrunk      Type = "potion.drunk"
	TypeDialogueSpoken   Type = "dialogue.spoken"
	TypeCharactersShown  Type = "characters.shown"
	TypeItemsShown       Type = "items.shown"
)

// Entity types used for event addressing.
const (
	EntityCharacter = "character"
	EntityTown      = "town"
)

// Event is one fact produced by a decision.
type Event struct {
	Type        Type
	EntityType  string
	EntityID    string
	PayloadJSON []byte
}

// New marshals payload into an event envelope.
func New(eventType Type, entityType, entityID string, payload any) (Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("marshal %s payload: %w", eventType, err)
	}
	return Event{
		Type:        eventType,
		EntityType:  entityType,
		EntityID:    entityID,
		PayloadJSON: data,
	}, nil
}

// Decode unmarshals the event payload into target.
func (e Event) Decode(target any) error {
	if err := json.Unmarshal(e.PayloadJSON, target); err != nil {
		return fmt.Errorf("decode %s payload: %w", e.Type, err)
	}
	return nil
}
