package continuous

import (
	"github.com/magefree/mage-layers-go/internal/game"
)

// Result wraps one pipeline run's output with query helpers, so callers read
// "what is this thing now" without touching the raw map.
type Result map[game.ObjectID]*Characteristics

// Power returns the calculated power of an object.
func (r Result) Power(id game.ObjectID) (int, bool) {
	c, ok := r[id]
	if !ok || !c.HasPower {
		return 0, false
	}
	return c.Power, true
}

// Toughness returns the calculated toughness of an object.
func (r Result) Toughness(id game.ObjectID) (int, bool) {
	c, ok := r[id]
	if !ok || !c.HasToughness {
		return 0, false
	}
	return c.Toughness, true
}

// IsCreature reports whether the object's calculated types include Creature.
func (r Result) IsCreature(id game.ObjectID) bool {
	c, ok := r[id]
	return ok && c.HasCardType(game.CardTypeCreature)
}

// HasAbility reports whether the object's calculated abilities include the
// static ability.
func (r Result) HasAbility(id game.ObjectID, sa game.StaticAbility) bool {
	c, ok := r[id]
	return ok && c.HasStaticAbility(sa)
}

// Controller returns the calculated controller of an object.
func (r Result) Controller(id game.ObjectID) (game.PlayerID, bool) {
	c, ok := r[id]
	if !ok {
		return "", false
	}
	return c.Controller, true
}
