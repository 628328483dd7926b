package game

// PlayerID identifies a player in a game.
type PlayerID string

// ObjectID identifies a game object (card, token, etc.) within its current zone.
type ObjectID string

// Zone represents a game zone.
type Zone string

const (
	ZoneBattlefield Zone = "battlefield"
	ZoneHand        Zone = "hand"
	ZoneGraveyard   Zone = "graveyard"
	ZoneLibrary     Zone = "library"
	ZoneStack       Zone = "stack"
	ZoneExile       Zone = "exile"
	ZoneCommand     Zone = "command"
)

// CardType represents one of the card types printed on a type line.
type CardType string

const (
	CardTypeArtifact     CardType = "Artifact"
	CardTypeBattle       CardType = "Battle"
	CardTypeCreature     CardType = "Creature"
	CardTypeEnchantment  CardType = "Enchantment"
	CardTypeInstant      CardType = "Instant"
	CardTypeLand         CardType = "Land"
	CardTypePlaneswalker CardType = "Planeswalker"
	CardTypeSorcery      CardType = "Sorcery"
)

// Subtype represents a creature/land/artifact/etc. subtype.
type Subtype string

const (
	SubtypeAura      Subtype = "Aura"
	SubtypeBear      Subtype = "Bear"
	SubtypeElf       Subtype = "Elf"
	SubtypeEquipment Subtype = "Equipment"
	SubtypeForest    Subtype = "Forest"
	SubtypeGoblin    Subtype = "Goblin"
	SubtypeHuman     Subtype = "Human"
	SubtypeIsland    Subtype = "Island"
	SubtypeMountain  Subtype = "Mountain"
	SubtypePlains    Subtype = "Plains"
	SubtypeSaga      Subtype = "Saga"
	SubtypeSoldier   Subtype = "Soldier"
	SubtypeSwamp     Subtype = "Swamp"
	SubtypeWizard    Subtype = "Wizard"
	SubtypeZombie    Subtype = "Zombie"
)

// landSubtypes are the basic land types; everything else is treated as a
// creature (or artifact/enchantment) subtype for "loses all creature types".
var landSubtypes = map[Subtype]bool{
	SubtypePlains:   true,
	SubtypeIsland:   true,
	SubtypeSwamp:    true,
	SubtypeMountain: true,
	SubtypeForest:   true,
}

// IsLandType reports whether the subtype is a basic land type.
func (s Subtype) IsLandType() bool {
	return landSubtypes[s]
}

// IsCreatureType reports whether the subtype can appear on a creature.
// Aura, Equipment, Saga and the basic land types are not creature types.
func (s Subtype) IsCreatureType() bool {
	switch s {
	case SubtypeAura, SubtypeEquipment, SubtypeSaga:
		return false
	}
	return !s.IsLandType()
}

// Supertype represents a card supertype (Legendary, Basic, Snow, ...).
type Supertype string

const (
	SupertypeBasic     Supertype = "Basic"
	SupertypeLegendary Supertype = "Legendary"
	SupertypeSnow      Supertype = "Snow"
	SupertypeWorld     Supertype = "World"
)
