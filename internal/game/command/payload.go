package command

// CreateCharacterPayload is the payload for TypeCreateCharacter.
type CreateCharacterPayload struct {
	Class string `json:"class"`
	Name  string `json:"name"`
	HP    int    `json:"hp"`
}

// CreateItemPayload is the payload for TypeCreateItem.
type CreateItemPayload struct {
	Kind    string   `json:"kind"`
	Owner   string   `json:"owner"`
	Name    string   `json:"name"`
	Value   int      `json:"value"`
	Targets []string `json:"targets,omitempty"`
}

// AttackPayload is the payload for TypeAttack.
type AttackPayload struct {
	Attacker string `json:"attacker"`
	Target   string `json:"target"`
	Weapon   string `json:"weapon"`
}

// CastPayload is the payload for TypeCast.
type CastPayload struct {
	Caster string `json:"caster"`
	Target string `json:"target"`
	Spell  string `json:"spell"`
}

// DrinkPayload is the payload for TypeDrink.
type DrinkPayload struct {
	Supplier string `json:"supplier"`
	Drinker  string `json:"drinker"`
	Potion   string `json:"potion"`
}

// DialoguePayload is the payload for TypeDialogue.
type DialoguePayload struct {
	Speaker string   `json:"speaker"`
	Count   int      `json:"count"`
	Words   []string `json:"words"`
}

// ShowCharactersPayload is the payload for TypeShowCharacters.
type ShowCharactersPayload struct{}

// ShowItemsPayload is the payload for TypeShowItems.
type ShowItemsPayload struct {
	Kind  string `json:"kind"`
	Owner string `json:"owner"`
}
