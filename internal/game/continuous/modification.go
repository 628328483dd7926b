package continuous

import (
	"github.com/magefree/mage-layers-go/internal/game"
)

// Modification is what a continuous effect does to the objects it applies to.
// The set of variants is closed; LayerOf classifies each variant into exactly
// one layer. New variants must be added to LayerOf and to the dependency
// relationship table.
type Modification interface {
	isModification()
}

// ChangeController moves the object to another player's control (layer 2).
// When UseEffectController is set the object goes to the controller of the
// effect itself, which is how "gain control" resolutions are expressed.
type ChangeController struct {
	Player              game.PlayerID
	UseEffectController bool
}

// Rename changes the object's name (layer 3).
type Rename struct {
	Name string
}

// AddCardTypes adds card types (layer 4).
type AddCardTypes struct{ Types []game.CardType }

// RemoveCardTypes removes card types (layer 4).
type RemoveCardTypes struct{ Types []game.CardType }

// SetCardTypes replaces the card type line (layer 4).
type SetCardTypes struct{ Types []game.CardType }

// AddSubtypes adds subtypes (layer 4).
type AddSubtypes struct{ Subtypes []game.Subtype }

// RemoveSubtypes removes subtypes (layer 4).
type RemoveSubtypes struct{ Subtypes []game.Subtype }

// SetSubtypes replaces all subtypes (layer 4).
type SetSubtypes struct{ Subtypes []game.Subtype }

// RemoveAllCreatureTypes removes every creature subtype while leaving other
// subtypes alone (layer 4).
type RemoveAllCreatureTypes struct{}

// AddSupertypes adds supertypes (layer 4).
type AddSupertypes struct{ Supertypes []game.Supertype }

// RemoveSupertypes removes supertypes (layer 4).
type RemoveSupertypes struct{ Supertypes []game.Supertype }

// SetSupertypes replaces all supertypes (layer 4).
type SetSupertypes struct{ Supertypes []game.Supertype }

// AddColors adds colors (layer 5).
type AddColors struct{ Colors game.ColorSet }

// RemoveColors removes colors (layer 5).
type RemoveColors struct{ Colors game.ColorSet }

// SetColors replaces the color identity (layer 5).
type SetColors struct{ Colors game.ColorSet }

// MakeColorless clears all colors (layer 5).
type MakeColorless struct{}

// AddAbility grants a keyword static ability (layer 6).
type AddAbility struct{ Ability game.StaticAbility }

// AddAbilityGeneric grants a non-keyword ability, such as a triggered or
// activated ability (layer 6).
type AddAbilityGeneric struct{ Ability game.Ability }

// RemoveAbility removes a specific static ability (layer 6). The ability is
// matched by structural equality.
type RemoveAbility struct{ Ability game.StaticAbility }

// RemoveAllAbilities strips every ability (layer 6).
type RemoveAllAbilities struct{}

// CopyActivatedAbilities grants the activated abilities of every object that
// matches the filter (layer 6). CounterName, when non-empty, restricts the
// copied-from set to objects carrying at least one such counter.
type CopyActivatedAbilities struct {
	Filter            ObjectFilter
	CounterName       string
	IncludeMana       bool
	ExcludeSourceName bool
	ExcludeSourceID   bool
}

// SetPower sets power to a computed value (layer 7, sublayer per effect).
type SetPower struct {
	Value    Value
	Sublayer Sublayer
}

// SetToughness sets toughness to a computed value (layer 7).
type SetToughness struct {
	Value    Value
	Sublayer Sublayer
}

// SetPowerToughness sets both power and toughness (layer 7).
type SetPowerToughness struct {
	Power     Value
	Toughness Value
	Sublayer  Sublayer
}

// ModifyPower adds a fixed delta to power (layer 7, sublayer 7c).
type ModifyPower struct{ Delta int }

// ModifyToughness adds a fixed delta to toughness (layer 7, sublayer 7c).
type ModifyToughness struct{ Delta int }

// ModifyPowerToughness adds fixed deltas to both (layer 7, sublayer 7c).
type ModifyPowerToughness struct {
	Power     int
	Toughness int
}

// SwitchPowerToughness swaps power and toughness (layer 7, sublayer 7e).
type SwitchPowerToughness struct{}

func (ChangeController) isModification()       {}
func (Rename) isModification()                 {}
func (AddCardTypes) isModification()           {}
func (RemoveCardTypes) isModification()        {}
func (SetCardTypes) isModification()           {}
func (AddSubtypes) isModification()            {}
func (RemoveSubtypes) isModification()         {}
func (SetSubtypes) isModification()            {}
func (RemoveAllCreatureTypes) isModification() {}
func (AddSupertypes) isModification()          {}
func (RemoveSupertypes) isModification()       {}
func (SetSupertypes) isModification()          {}
func (AddColors) isModification()              {}
func (RemoveColors) isModification()           {}
func (SetColors) isModification()              {}
func (MakeColorless) isModification()          {}
func (AddAbility) isModification()             {}
func (AddAbilityGeneric) isModification()      {}
func (RemoveAbility) isModification()          {}
func (RemoveAllAbilities) isModification()     {}
func (CopyActivatedAbilities) isModification() {}
func (SetPower) isModification()               {}
func (SetToughness) isModification()           {}
func (SetPowerToughness) isModification()      {}
func (ModifyPower) isModification()            {}
func (ModifyToughness) isModification()        {}
func (ModifyPowerToughness) isModification()   {}
func (SwitchPowerToughness) isModification()   {}
