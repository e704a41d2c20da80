// Package errors provides structured error handling with i18n support.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Command errors
	CodeCommandEmpty          Code = "COMMAND_EMPTY"
	CodeCommandUnknownVerb    Code = "COMMAND_UNKNOWN_VERB"
	CodeCommandMalformed      Code = "COMMAND_MALFORMED"
	CodeCommandUnknownType    Code = "COMMAND_UNKNOWN_TYPE"
	CodeCommandPayloadInvalid Code = "COMMAND_PAYLOAD_INVALID"
	CodeCommandCountInvalid   Code = "COMMAND_COUNT_INVALID"
	CodeCommandCountRange     Code = "COMMAND_COUNT_OUT_OF_RANGE"

	// Character errors
	CodeCharacterNotFound      Code = "CHARACTER_NOT_FOUND"
	CodeCharacterInvalidClass  Code = "CHARACTER_INVALID_CLASS"
	CodeCharacterAlreadyExists Code = "CHARACTER_ALREADY_EXISTS"
	CodeCharacterNameReserved  Code = "CHARACTER_NAME_RESERVED"
	CodeCharacterInvalidHP     Code = "CHARACTER_INVALID_HP"
	CodeCharacterCannotAttack  Code = "CHARACTER_CANNOT_ATTACK"
	CodeCharacterCannotCast    Code = "CHARACTER_CANNOT_CAST"

	// Item errors
	CodeItemInvalidKind     Code = "ITEM_INVALID_KIND"
	CodeItemSlotUnsupported Code = "ITEM_SLOT_UNSUPPORTED"
	CodeItemNotOwned        Code = "ITEM_NOT_OWNED"
	CodeContainerFull       Code = "CONTAINER_FULL"
	CodeSpellTargetDenied   Code = "SPELL_TARGET_DENIED"
)

// Category groups codes by the kind of failure they report.
type Category string

const (
	CategoryInput     Category = "input"
	CategoryNotFound  Category = "not_found"
	CategoryState     Category = "state"
	CategoryForbidden Category = "forbidden"
	CategoryInternal  Category = "internal"
)

// Category maps domain codes to a failure category.
func (c Code) Category() Category {
	switch c {
	// Input - the command text or its values are invalid
	case CodeCommandEmpty,
		CodeCommandUnknownVerb,
		CodeCommandMalformed,
		CodeCommandUnknownType,
		CodeCommandPayloadInvalid,
		CodeCommandCountInvalid,
		CodeCommandCountRange,
		CodeCharacterInvalidClass,
		CodeCharacterNameReserved,
		CodeCharacterInvalidHP,
		CodeItemInvalidKind:
		return CategoryInput

	// NotFound - a named character or item does not exist
	case CodeCharacterNotFound,
		CodeItemNotOwned:
		return CategoryNotFound

	// State - the registry does not allow the operation right now
	case CodeCharacterAlreadyExists,
		CodeContainerFull:
		return CategoryState

	// Forbidden - the character class or spell rules disallow the operation
	case CodeCharacterCannotAttack,
		CodeCharacterCannotCast,
		CodeItemSlotUnsupported,
		CodeSpellTargetDenied:
		return CategoryForbidden

	default:
		return CategoryInternal
	}
}
