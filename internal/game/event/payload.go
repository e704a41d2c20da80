package event

// CharacterCreatedPayload records a new character entering town.
type CharacterCreatedPayload struct {
	CharacterID string `json:"character_id"`
	Name        string `json:"name"`
	Class       string `json:"class"`
	HP          int    `json:"hp"`
}

// ItemObtainedPayload records an item added to a character container.
type ItemObtainedPayload struct {
	OwnerID string `json:"owner_id"`
	Owner   string `json:"owner"`
	Kind    string `json:"kind"`
	Name    string `json:"name"`
	Value   int    `json:"value"`
	// TargetIDs is the spell owner set. Empty for weapons and potions.
	TargetIDs []string `json:"target_ids,omitempty"`
}

// CharacterHitPayload records a weapon attack.
type CharacterHitPayload struct {
	AttackerID string `json:"attacker_id"`
	Attacker   string `json:"attacker"`
	TargetID   string `json:"target_id"`
	Target     string `json:"target"`
	Weapon     string `json:"weapon"`
	Damage     int    `json:"damage"`
	HP         int    `json:"hp"`
}

// CharacterDiedPayload records a character leaving the living set.
type CharacterDiedPayload struct {
	CharacterID string `json:"character_id"`
	Name        string `json:"name"`
}

// SpellCastPayload records a spell consumed on a target.
type SpellCastPayload struct {
	CasterID string `json:"caster_id"`
	Caster   string `json:"caster"`
	TargetID string `json:"target_id"`
	Target   string `json:"target"`
	Spell    string `json:"spell"`
}

// PotionDrunkPayload records a potion consumed by a drinker.
type PotionDrunkPayload struct {
	SupplierID string `json:"supplier_id"`
	Supplier   string `json:"supplier"`
	DrinkerID  string `json:"drinker_id"`
	Drinker    string `json:"drinker"`
	Potion     string `json:"potion"`
	Heal       int    `json:"heal"`
	HP         int    `json:"hp"`
}

// DialogueSpokenPayload records a spoken line.
type DialogueSpokenPayload struct {
	Speaker string   `json:"speaker"`
	Words   []string `json:"words"`
}

// CharacterEntry is one row of a character listing.
type CharacterEntry struct {
	Name  string `json:"name"`
	Class string `json:"class"`
	HP    int    `json:"hp"`
}

// CharactersShownPayload records a character listing snapshot.
type CharactersShownPayload struct {
	Characters []CharacterEntry `json:"characters"`
}

// ItemEntry is one row of an item listing.
type ItemEntry struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// ItemsShownPayload records a container listing snapshot.
type ItemsShownPayload struct {
	Owner string      `json:"owner"`
	Kind  string      `json:"kind"`
	Items []ItemEntry `json:"items"`
}
