package command

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	apperrors "github.com/louisbranch/rpgsim/internal/platform/errors"
)

// ErrTypeRequired indicates a missing command type.
var ErrTypeRequired = errors.New("command type is required")

// PayloadValidator validates a payload JSON document.
type PayloadValidator func(json.RawMessage) error

// Definition registers metadata for a command type.
type Definition struct {
	Type            Type
	ValidatePayload PayloadValidator
}

// Registry stores command definitions and validates commands.
type Registry struct {
	definitions map[Type]Definition
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{definitions: make(map[Type]Definition)}
}

// DefaultRegistry returns a registry holding every command type Parse emits.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, def := range []Definition{
		{Type: TypeCreateCharacter, ValidatePayload: validateAs[CreateCharacterPayload](requireFields("class", "name"), boundInts("hp"))},
		{Type: TypeCreateItem, ValidatePayload: validateAs[CreateItemPayload](requireFields("kind", "owner", "name"), boundInts("value"))},
		{Type: TypeAttack, ValidatePayload: validateAs[AttackPayload](requireFields("attacker", "target", "weapon"))},
		{Type: TypeCast, ValidatePayload: validateAs[CastPayload](requireFields("caster", "target", "spell"))},
		{Type: TypeDrink, ValidatePayload: validateAs[DrinkPayload](requireFields("supplier", "drinker", "potion"))},
		{Type: TypeDialogue, ValidatePayload: validateAs[DialoguePayload](requireFields("speaker"))},
		{Type: TypeShowCharacters, ValidatePayload: validateAs[ShowCharactersPayload]()},
		{Type: TypeShowItems, ValidatePayload: validateAs[ShowItemsPayload](requireFields("kind", "owner"))},
	} {
		if err := r.Register(def); err != nil {
			panic(err)
		}
	}
	return r
}

// Register adds a new command type definition to the registry.
func (r *Registry) Register(def Definition) error {
	if r == nil {
		return errors.New("registry is required")
	}
	def.Type = Type(strings.TrimSpace(string(def.Type)))
	if def.Type == "" {
		return ErrTypeRequired
	}
	if r.definitions == nil {
		r.definitions = make(map[Type]Definition)
	}
	if _, exists := r.definitions[def.Type]; exists {
		return fmt.Errorf("command type already registered: %s", def.Type)
	}
	r.definitions[def.Type] = def
	return nil
}

// ValidateForDecision validates and normalizes a command before decision handling.
func (r *Registry) ValidateForDecision(cmd Command) (Command, error) {
	cmd.Type = Type(strings.TrimSpace(string(cmd.Type)))
	def, ok := r.definitions[cmd.Type]
	if !ok {
		return Command{}, apperrors.WithMetadata(apperrors.CodeCommandUnknownType,
			"command type is not registered", map[string]string{"Type": string(cmd.Type)})
	}
	if len(cmd.PayloadJSON) == 0 {
		cmd.PayloadJSON = []byte("{}")
	}
	if !json.Valid(cmd.PayloadJSON) {
		return Command{}, payloadInvalid(cmd.Type, errors.New("payload json must be valid"))
	}
	if def.ValidatePayload != nil {
		if err := def.ValidatePayload(json.RawMessage(cmd.PayloadJSON)); err != nil {
			return Command{}, payloadInvalid(cmd.Type, err)
		}
	}
	return cmd, nil
}

func payloadInvalid(t Type, cause error) error {
	return apperrors.WrapWithMetadata(apperrors.CodeCommandPayloadInvalid,
		"payload invalid", map[string]string{"Type": string(t)}, cause)
}

// validateAs decodes the payload strictly into T, then runs checks against
// the decoded field map.
func validateAs[T any](checks ...func(map[string]any) error) PayloadValidator {
	return func(raw json.RawMessage) error {
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.DisallowUnknownFields()
		var payload T
		if err := dec.Decode(&payload); err != nil {
			return err
		}
		if len(checks) == 0 {
			return nil
		}
		var fields map[string]any
		if err := json.Unmarshal(raw, &fields); err != nil {
			return err
		}
		for _, check := range checks {
			if err := check(fields); err != nil {
				return err
			}
		}
		return nil
	}
}

func requireFields(names ...string) func(map[string]any) error {
	return func(fields map[string]any) error {
		for _, name := range names {
			value, _ := fields[name].(string)
			if strings.TrimSpace(value) == "" {
				return fmt.Errorf("%s is required", name)
			}
		}
		return nil
	}
}

func boundInts(names ...string) func(map[string]any) error {
	return func(fields map[string]any) error {
		for _, name := range names {
			value, _ := fields[name].(float64)
			if value < -MaxMagnitude || value > MaxMagnitude {
				return fmt.Errorf("%s is out of range", name)
			}
		}
		return nil
	}
}
