package continuous

import (
	"github.com/magefree/mage-layers-go/internal/game"
)

// ComparisonOp is a numeric predicate operator.
type ComparisonOp int

const (
	CompareEqual ComparisonOp = iota
	CompareNotEqual
	CompareLessThan
	CompareLessThanOrEqual
	CompareGreaterThan
	CompareGreaterThanOrEqual
	CompareOneOf
)

// Comparison is a predicate over an integer characteristic such as power,
// toughness or mana value.
type Comparison struct {
	Op    ComparisonOp
	Value int
	// Values is the accepted set for CompareOneOf.
	Values []int
}

// Satisfies reports whether n passes the predicate.
func (c Comparison) Satisfies(n int) bool {
	switch c.Op {
	case CompareEqual:
		return n == c.Value
	case CompareNotEqual:
		return n != c.Value
	case CompareLessThan:
		return n < c.Value
	case CompareLessThanOrEqual:
		return n <= c.Value
	case CompareGreaterThan:
		return n > c.Value
	case CompareGreaterThanOrEqual:
		return n >= c.Value
	case CompareOneOf:
		for _, v := range c.Values {
			if n == v {
				return true
			}
		}
		return false
	}
	return false
}

// PlayerRelation restricts a filter by who controls the object, relative to
// the controller of the effect doing the filtering.
type PlayerRelation int

const (
	PlayerAny PlayerRelation = iota
	PlayerYou
	PlayerOpponent
	PlayerSpecific
)

// ControllerFilter narrows matches by controller.
type ControllerFilter struct {
	Relation PlayerRelation
	Player   game.PlayerID // set when Relation == PlayerSpecific
}

// ObjectFilter selects objects by their calculated characteristics plus a few
// object-level and game-level facts (tapped, face down, commander). Type and
// subtype lists match if any listed entry is present; excluded lists reject
// if any listed entry is present.
type ObjectFilter struct {
	Zone game.Zone // "" matches any zone

	CardTypes          []game.CardType
	ExcludedCardTypes  []game.CardType
	Subtypes           []game.Subtype
	ExcludedSubtypes   []game.Subtype
	Supertypes         []game.Supertype
	ExcludedSupertypes []game.Supertype

	Controller *ControllerFilter

	Colors       game.ColorSet // zero set means any colors
	Colorless    bool
	Multicolored bool

	Token    bool
	Nontoken bool

	FaceDown    bool
	HasFaceDown bool

	Tapped   bool
	Untapped bool

	Power     *Comparison
	Toughness *Comparison
	ManaValue *Comparison

	HasManaCost bool
	NoXInCost   bool

	Name        string // "" matches any name
	IsCommander bool
}

// CreatureFilter matches creatures on the battlefield.
func CreatureFilter() ObjectFilter {
	return ObjectFilter{
		Zone:      game.ZoneBattlefield,
		CardTypes: []game.CardType{game.CardTypeCreature},
	}
}

// LandFilter matches lands on the battlefield.
func LandFilter() ObjectFilter {
	return ObjectFilter{
		Zone:      game.ZoneBattlefield,
		CardTypes: []game.CardType{game.CardTypeLand},
	}
}

// ControlledBy restricts the filter to objects the effect's controller controls.
func (f ObjectFilter) ControlledBy() ObjectFilter {
	f.Controller = &ControllerFilter{Relation: PlayerYou}
	return f
}

// WithSubtypes restricts the filter to the given subtypes.
func (f ObjectFilter) WithSubtypes(subtypes ...game.Subtype) ObjectFilter {
	f.Subtypes = subtypes
	return f
}

// Matches evaluates the filter against one object using its calculated
// characteristics. Characteristic-based criteria (types, colors, P/T,
// controller) read chars; identity criteria (token, mana cost, name) read the
// object; zone and status criteria read the game state.
func (f ObjectFilter) Matches(
	obj *game.Object,
	chars *Characteristics,
	state *game.State,
	effectController game.PlayerID,
) bool {
	if f.Zone != "" && obj.Zone != f.Zone {
		return false
	}

	if len(f.CardTypes) > 0 && !anyCardType(chars, f.CardTypes) {
		return false
	}
	if anyCardType(chars, f.ExcludedCardTypes) {
		return false
	}

	if len(f.Subtypes) > 0 && !anySubtype(chars, f.Subtypes) {
		return false
	}
	if anySubtype(chars, f.ExcludedSubtypes) {
		return false
	}

	if len(f.Supertypes) > 0 && !anySupertype(chars, f.Supertypes) {
		return false
	}
	if anySupertype(chars, f.ExcludedSupertypes) {
		return false
	}

	if f.Controller != nil {
		switch f.Controller.Relation {
		case PlayerYou:
			if chars.Controller != effectController {
				return false
			}
		case PlayerOpponent:
			if chars.Controller == effectController {
				return false
			}
		case PlayerSpecific:
			if chars.Controller != f.Controller.Player {
				return false
			}
		}
	}

	if !f.Colors.IsEmpty() && f.Colors.Intersection(chars.Colors).IsEmpty() {
		return false
	}
	if f.Colorless && !chars.Colors.IsEmpty() {
		return false
	}
	if f.Multicolored && chars.Colors.Count() < 2 {
		return false
	}

	if f.Token && obj.Kind != game.ObjectToken {
		return false
	}
	if f.Nontoken && obj.Kind == game.ObjectToken {
		return false
	}

	if f.HasFaceDown && state.IsFaceDown(obj.ID) != f.FaceDown {
		return false
	}

	tapped := state.IsTapped(obj.ID)
	if f.Tapped && !tapped {
		return false
	}
	if f.Untapped && tapped {
		return false
	}

	if f.Power != nil {
		if !chars.HasPower || !f.Power.Satisfies(chars.Power) {
			return false
		}
	}
	if f.Toughness != nil {
		if !chars.HasToughness || !f.Toughness.Satisfies(chars.Toughness) {
			return false
		}
	}

	if f.ManaValue != nil && !f.ManaValue.Satisfies(obj.ManaValue()) {
		return false
	}
	if f.HasManaCost && (obj.ManaCost == nil || obj.ManaCost.IsEmpty()) {
		return false
	}
	if f.NoXInCost && obj.ManaCost != nil && obj.ManaCost.HasX() {
		return false
	}

	if f.Name != "" && obj.Name != f.Name {
		return false
	}
	if f.IsCommander && !state.IsCommander(obj.ID) {
		return false
	}

	return true
}

func anyCardType(chars *Characteristics, types []game.CardType) bool {
	for _, t := range types {
		if chars.HasCardType(t) {
			return true
		}
	}
	return false
}

func anySubtype(chars *Characteristics, types []game.Subtype) bool {
	for _, t := range types {
		if chars.HasSubtype(t) {
			return true
		}
	}
	return false
}

func anySupertype(chars *Characteristics, types []game.Supertype) bool {
	for _, t := range types {
		if chars.HasSupertype(t) {
			return true
		}
	}
	return false
}
