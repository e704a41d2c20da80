package i18n

// Error codes must match the codes defined in internal/platform/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeCommandEmpty           = "COMMAND_EMPTY"
	CodeCommandUnknownVerb     = "COMMAND_UNKNOWN_VERB"
	CodeCommandMalformed       = "COMMAND_MALFORMED"
	CodeCommandUnknownType     = "COMMAND_UNKNOWN_TYPE"
	CodeCommandPayloadInvalid  = "COMMAND_PAYLOAD_INVALID"
	CodeCommandCountInvalid    = "COMMAND_COUNT_INVALID"
	CodeCommandCountRange      = "COMMAND_COUNT_OUT_OF_RANGE"
	CodeCharacterNotFound      = "CHARACTER_NOT_FOUND"
	CodeCharacterInvalidClass  = "CHARACTER_INVALID_CLASS"
	CodeCharacterAlreadyExists = "CHARACTER_ALREADY_EXISTS"
	CodeCharacterNameReserved  = "CHARACTER_NAME_RESERVED"
	CodeCharacterInvalidHP     = "CHARACTER_INVALID_HP"
	CodeCharacterCannotAttack  = "CHARACTER_CANNOT_ATTACK"
	CodeCharacterCannotCast    = "CHARACTER_CANNOT_CAST"
	CodeItemInvalidKind        = "ITEM_INVALID_KIND"
	CodeItemSlotUnsupported    = "ITEM_SLOT_UNSUPPORTED"
	CodeItemNotOwned           = "ITEM_NOT_OWNED"
	CodeContainerFull          = "CONTAINER_FULL"
	CodeSpellTargetDenied      = "SPELL_TARGET_DENIED"
)

var enUSCatalog = &Catalog{
	locale: "en-US",
	messages: map[Code]string{
		// Command errors
		CodeCommandEmpty:          "Command line is empty",
		CodeCommandUnknownVerb:    "Unknown command verb {{.Verb}}",
		CodeCommandMalformed:      "Malformed command: {{.Reason}}",
		CodeCommandUnknownType:    "Command type {{.Type}} is not registered",
		CodeCommandPayloadInvalid: "Command payload for {{.Type}} is invalid",
		CodeCommandCountInvalid:   "Command count {{.Value}} is not a number",
		CodeCommandCountRange:     "Command count {{.Value}} must be between {{.Min}} and {{.Max}}",

		// Character errors
		CodeCharacterNotFound:      "Character {{.Name}} is not in town",
		CodeCharacterInvalidClass:  "Unknown character class {{.Class}}",
		CodeCharacterAlreadyExists: "Character {{.Name}} already exists",
		CodeCharacterNameReserved:  "The name {{.Name}} is reserved",
		CodeCharacterInvalidHP:     "Character {{.Name}} needs positive hit points, got {{.HP}}",
		CodeCharacterCannotAttack:  "A {{.Class}} cannot attack",
		CodeCharacterCannotCast:    "A {{.Class}} cannot cast spells",

		// Item errors
		CodeItemInvalidKind:     "Unknown item kind {{.Kind}}",
		CodeItemSlotUnsupported: "A {{.Class}} cannot carry {{.Kind}} items",
		CodeItemNotOwned:        "{{.Name}} has no {{.Kind}} called {{.Item}}",
		CodeContainerFull:       "{{.Name}} cannot carry more than {{.Capacity}} {{.Kind}} items",
		CodeSpellTargetDenied:   "Spell {{.Item}} cannot target {{.Target}}",
	},
}
