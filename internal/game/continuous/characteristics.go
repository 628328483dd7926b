package continuous

import (
	"github.com/magefree/mage-layers-go/internal/game"
)

// Characteristics is the calculated view of one object after some prefix of
// the layer pipeline has been applied. Power and toughness use an explicit
// presence flag because non-creature objects have none at all, which is
// different from having 0/0.
type Characteristics struct {
	Name       string
	Controller game.PlayerID

	CardTypes  []game.CardType
	Subtypes   []game.Subtype
	Supertypes []game.Supertype
	Colors     game.ColorSet
	Abilities  []game.Ability

	Power        int
	HasPower     bool
	Toughness    int
	HasToughness bool
}

// BaseCharacteristics builds the printed characteristics of an object, before
// any continuous effect is applied.
func BaseCharacteristics(obj *game.Object) *Characteristics {
	c := &Characteristics{
		Name:         obj.Name,
		Controller:   obj.Controller,
		CardTypes:    append([]game.CardType(nil), obj.CardTypes...),
		Subtypes:     append([]game.Subtype(nil), obj.Subtypes...),
		Supertypes:   append([]game.Supertype(nil), obj.Supertypes...),
		Colors:       obj.Colors,
		Abilities:    append([]game.Ability(nil), obj.Abilities...),
		Power:        obj.BasePower,
		HasPower:     obj.HasBasePower,
		Toughness:    obj.BaseToughness,
		HasToughness: obj.HasBaseToughness,
	}
	return c
}

// Clone returns a deep copy. Slices are copied so the clone can be mutated
// freely during hypothetical application.
func (c *Characteristics) Clone() *Characteristics {
	out := *c
	out.CardTypes = append([]game.CardType(nil), c.CardTypes...)
	out.Subtypes = append([]game.Subtype(nil), c.Subtypes...)
	out.Supertypes = append([]game.Supertype(nil), c.Supertypes...)
	out.Abilities = append([]game.Ability(nil), c.Abilities...)
	return &out
}

// HasCardType reports whether the calculated card types include t.
func (c *Characteristics) HasCardType(t game.CardType) bool {
	for _, ct := range c.CardTypes {
		if ct == t {
			return true
		}
	}
	return false
}

// HasSubtype reports whether the calculated subtypes include t.
func (c *Characteristics) HasSubtype(t game.Subtype) bool {
	for _, st := range c.Subtypes {
		if st == t {
			return true
		}
	}
	return false
}

// HasSupertype reports whether the calculated supertypes include t.
func (c *Characteristics) HasSupertype(t game.Supertype) bool {
	for _, st := range c.Supertypes {
		if st == t {
			return true
		}
	}
	return false
}

// HasStaticAbility reports whether the calculated abilities include a static
// ability equal to sa.
func (c *Characteristics) HasStaticAbility(sa game.StaticAbility) bool {
	for _, ab := range c.Abilities {
		if ab.Kind == game.AbilityStatic && ab.Static == sa {
			return true
		}
	}
	return false
}

func (c *Characteristics) addCardTypes(types []game.CardType) {
	for _, t := range types {
		if !c.HasCardType(t) {
			c.CardTypes = append(c.CardTypes, t)
		}
	}
}

func (c *Characteristics) removeCardTypes(types []game.CardType) {
	c.CardTypes = filterOut(c.CardTypes, types)
}

func (c *Characteristics) addSubtypes(types []game.Subtype) {
	for _, t := range types {
		if !c.HasSubtype(t) {
			c.Subtypes = append(c.Subtypes, t)
		}
	}
}

func (c *Characteristics) removeSubtypes(types []game.Subtype) {
	c.Subtypes = filterOut(c.Subtypes, types)
}

func (c *Characteristics) addSupertypes(types []game.Supertype) {
	for _, t := range types {
		if !c.HasSupertype(t) {
			c.Supertypes = append(c.Supertypes, t)
		}
	}
}

func (c *Characteristics) removeSupertypes(types []game.Supertype) {
	c.Supertypes = filterOut(c.Supertypes, types)
}

func filterOut[T comparable](have, drop []T) []T {
	out := have[:0]
	for _, v := range have {
		excluded := false
		for _, d := range drop {
			if v == d {
				excluded = true
				break
			}
		}
		if !excluded {
			out = append(out, v)
		}
	}
	return out
}
