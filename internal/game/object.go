package game

import (
	"github.com/google/uuid"

	"github.com/magefree/mage-layers-go/internal/game/counters"
	"github.com/magefree/mage-layers-go/internal/game/mana"
)

// ObjectKind distinguishes cards from tokens and copies.
type ObjectKind int

const (
	ObjectCard ObjectKind = iota
	ObjectToken
)

// Object is a game object whose base characteristics feed the layer pipeline.
// The broader game-state subsystem owns and mutates objects; the continuous
// effect engine only reads them.
type Object struct {
	ID         ObjectID
	Name       string
	Kind       ObjectKind
	Controller PlayerID
	Owner      PlayerID
	Zone       Zone

	ManaCost *mana.ManaCost // nil when the object has no mana cost

	// Base (printed or copied) characteristics before continuous effects.
	Colors     ColorSet
	Supertypes []Supertype
	CardTypes  []CardType
	Subtypes   []Subtype
	Abilities  []Ability

	BasePower        int
	BaseToughness    int
	HasBasePower     bool
	HasBaseToughness bool

	Counters *counters.Counters

	// AttachedTo links Auras and Equipment to their host ("" when unattached).
	AttachedTo ObjectID
}

// NewObject creates an object with a generated ID.
func NewObject(name string, controller PlayerID, zone Zone) *Object {
	return &Object{
		ID:         ObjectID(uuid.NewString()),
		Name:       name,
		Controller: controller,
		Owner:      controller,
		Zone:       zone,
		Counters:   counters.NewCounters(),
	}
}

// WithCardTypes sets the base card types.
func (o *Object) WithCardTypes(types ...CardType) *Object {
	o.CardTypes = types
	return o
}

// WithSubtypes sets the base subtypes.
func (o *Object) WithSubtypes(subtypes ...Subtype) *Object {
	o.Subtypes = subtypes
	return o
}

// WithSupertypes sets the base supertypes.
func (o *Object) WithSupertypes(supertypes ...Supertype) *Object {
	o.Supertypes = supertypes
	return o
}

// WithPT sets base power and toughness.
func (o *Object) WithPT(power, toughness int) *Object {
	o.BasePower = power
	o.BaseToughness = toughness
	o.HasBasePower = true
	o.HasBaseToughness = true
	return o
}

// WithColors sets the base colors.
func (o *Object) WithColors(colors ColorSet) *Object {
	o.Colors = colors
	return o
}

// WithAbilities sets the base abilities.
func (o *Object) WithAbilities(abilities ...Ability) *Object {
	o.Abilities = abilities
	return o
}

// WithManaCost parses and sets the mana cost; invalid costs are ignored.
func (o *Object) WithManaCost(cost string) *Object {
	if parsed, err := mana.ParseCost(cost); err == nil {
		o.ManaCost = parsed
	}
	return o
}

// AsToken marks the object as a token.
func (o *Object) AsToken() *Object {
	o.Kind = ObjectToken
	return o
}

// HasCardType reports whether the base type line includes the card type.
func (o *Object) HasCardType(t CardType) bool {
	for _, ct := range o.CardTypes {
		if ct == t {
			return true
		}
	}
	return false
}

// ManaValue returns the object's mana value, or 0 without a cost.
func (o *Object) ManaValue() int {
	if o.ManaCost == nil {
		return 0
	}
	return o.ManaCost.Value()
}
