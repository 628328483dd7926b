package continuous

import (
	"sort"

	"go.uber.org/zap"

	"github.com/magefree/mage-layers-go/internal/game"
)

// Pipeline computes calculated characteristics by applying continuous effects
// layer by layer. Within a layer, effects are ordered by dependencies and
// timestamps; each applied effect is visible to everything after it, so an
// effect's applicability is always judged against the board as modified by
// the layers and effects before it.
type Pipeline struct {
	logger *zap.Logger
}

// NewPipeline creates a pipeline. A nil logger disables logging.
func NewPipeline(logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{logger: logger}
}

// ComputeAll runs the full layer pipeline and returns the calculated
// characteristics of every object in the state. Inactive effects (unmet
// condition, or a non-resolution effect whose source has left the game) are
// skipped for the whole run.
func (p *Pipeline) ComputeAll(
	state *game.State,
	effects []*ContinuousEffect,
) Result {
	chars := make(map[game.ObjectID]*Characteristics, len(state.Objects))
	for id, obj := range state.Objects {
		chars[id] = BaseCharacteristics(obj)
	}

	active := p.activeEffects(state, effects)

	byLayer := make(map[Layer][]*ContinuousEffect)
	for _, effect := range active {
		layer := LayerOf(effect.Modification)
		byLayer[layer] = append(byLayer[layer], effect)
	}

	for _, layer := range layerOrder {
		if layer == LayerPowerToughness {
			p.applyPowerToughnessLayer(state, chars, byLayer[layer])
			continue
		}
		sorted := SortLayerEffectsWithBaseline(byLayer[layer], chars, state)
		for _, effect := range sorted {
			p.applyEffect(state, chars, effect)
		}
	}

	return chars
}

// activeEffects filters out effects that do not participate in this run.
func (p *Pipeline) activeEffects(
	state *game.State,
	effects []*ContinuousEffect,
) []*ContinuousEffect {
	base := make(map[game.ObjectID]*Characteristics, len(state.Objects))
	for id, obj := range state.Objects {
		base[id] = BaseCharacteristics(obj)
	}

	var active []*ContinuousEffect
	for _, effect := range effects {
		if effect.SourceType != SourceResolution {
			if _, ok := state.Object(effect.Source); !ok {
				p.logger.Debug("skipping effect with missing source",
					zap.String("effect", effect.ID),
					zap.String("source", string(effect.Source)))
				continue
			}
		}
		if !p.conditionMet(effect, state, base) {
			continue
		}
		active = append(active, effect)
	}
	return active
}

func (p *Pipeline) conditionMet(
	effect *ContinuousEffect,
	state *game.State,
	base map[game.ObjectID]*Characteristics,
) bool {
	switch cond := effect.Condition.(type) {
	case nil:
		return true
	case ConditionSourceTapped:
		return state.IsTapped(effect.Source)
	case ConditionSourceEquipped:
		for _, obj := range state.Objects {
			if obj.Zone != game.ZoneBattlefield || obj.AttachedTo != effect.Source {
				continue
			}
			for _, st := range obj.Subtypes {
				if st == game.SubtypeEquipment {
					return true
				}
			}
		}
		return false
	case ConditionControlsPermanent:
		for id, obj := range state.Objects {
			if obj.Zone != game.ZoneBattlefield || obj.Controller != effect.Controller {
				continue
			}
			if cond.Filter.Matches(obj, base[id], state, effect.Controller) {
				return true
			}
		}
		return false
	case ConditionOwnsCardExiledWithCounter:
		for _, obj := range state.Objects {
			if obj.Zone != game.ZoneExile || obj.Owner != effect.Controller {
				continue
			}
			if obj.Counters.GetCount(cond.CounterName) > 0 {
				return true
			}
		}
		return false
	}
	return false
}

// applyPowerToughnessLayer walks the power/toughness sublayers in order.
// Counters are not effects; they are read straight off the objects between
// the modifying and switching sublayers.
func (p *Pipeline) applyPowerToughnessLayer(
	state *game.State,
	chars map[game.ObjectID]*Characteristics,
	effects []*ContinuousEffect,
) {
	bySublayer := make(map[Sublayer][]*ContinuousEffect)
	for _, effect := range effects {
		sub, ok := SublayerOf(effect.Modification)
		if !ok {
			sub = SublayerSwitching
		}
		bySublayer[sub] = append(bySublayer[sub], effect)
	}

	for _, sub := range sublayerOrder {
		if sub == SublayerCounters {
			p.applyBoostCounters(state, chars)
		}
		group := bySublayer[sub]
		depends := func(a, b *ContinuousEffect) bool {
			return dependsOnWithBaseline(a, b, chars, state)
		}
		for _, effect := range sortGroup(group, depends) {
			p.applyEffect(state, chars, effect)
		}
	}
}

func (p *Pipeline) applyBoostCounters(
	state *game.State,
	chars map[game.ObjectID]*Characteristics,
) {
	for id, obj := range state.Objects {
		if obj.Zone != game.ZoneBattlefield || obj.Counters == nil {
			continue
		}
		c := chars[id]
		if c == nil || (!c.HasPower && !c.HasToughness) {
			continue
		}
		for _, boost := range obj.Counters.GetBoostCounters() {
			if c.HasPower {
				c.Power += boost.Power * boost.Count
			}
			if c.HasToughness {
				c.Toughness += boost.Toughness * boost.Count
			}
		}
	}
}

// applyEffect applies one effect to every object it currently applies to.
// The applicable set and all computed values are resolved against the state
// of the board before this effect, so an effect never observes its own
// partial application.
func (p *Pipeline) applyEffect(
	state *game.State,
	chars map[game.ObjectID]*Characteristics,
	effect *ContinuousEffect,
) {
	targets := p.targetsOf(state, chars, effect)
	if len(targets) == 0 {
		return
	}

	// Freeze the pre-application view for value evaluation and ability
	// copying. Only entries about to change are deep-copied.
	before := make(map[game.ObjectID]*Characteristics, len(chars))
	for id, c := range chars {
		before[id] = c
	}
	for _, id := range targets {
		before[id] = chars[id].Clone()
	}

	for _, id := range targets {
		p.applyModification(state, before, effect, chars[id])
	}
}

// targetsOf resolves which objects the effect applies to right now, in a
// deterministic order. Resolution effects use their locked targets and never
// re-evaluate the choice; targets that have left the game are skipped.
func (p *Pipeline) targetsOf(
	state *game.State,
	chars map[game.ObjectID]*Characteristics,
	effect *ContinuousEffect,
) []game.ObjectID {
	var targets []game.ObjectID
	if effect.SourceType == SourceResolution && len(effect.LockedTargets) > 0 {
		for _, id := range effect.LockedTargets {
			if _, ok := state.Object(id); ok {
				targets = append(targets, id)
			}
		}
		return targets
	}

	for id, obj := range state.Objects {
		if effectApplies(effect, obj, chars[id], state) {
			targets = append(targets, id)
		}
	}
	sort.Slice(targets, func(i, j int) bool { return targets[i] < targets[j] })
	return targets
}

// applyModification mutates one object's characteristics, resolving computed
// values against the frozen pre-application baseline.
func (p *Pipeline) applyModification(
	state *game.State,
	before map[game.ObjectID]*Characteristics,
	effect *ContinuousEffect,
	c *Characteristics,
) {
	switch mod := effect.Modification.(type) {
	case ChangeController:
		if mod.UseEffectController {
			c.Controller = effect.Controller
		} else {
			c.Controller = mod.Player
		}
	case CopyActivatedAbilities:
		p.copyActivatedAbilities(state, before, effect, mod, c)
	case SetPower:
		if v, ok := p.resolveValue(mod.Value, effect, before, state); ok {
			c.Power = v
			c.HasPower = true
		}
	case SetToughness:
		if v, ok := p.resolveValue(mod.Value, effect, before, state); ok {
			c.Toughness = v
			c.HasToughness = true
		}
	case SetPowerToughness:
		if v, ok := p.resolveValue(mod.Power, effect, before, state); ok {
			c.Power = v
			c.HasPower = true
		}
		if v, ok := p.resolveValue(mod.Toughness, effect, before, state); ok {
			c.Toughness = v
			c.HasToughness = true
		}
	default:
		applyForDependency(effect.Modification, c)
	}
}

// resolveValue evaluates a computed value to a single number. A multi-object
// read only resolves when exactly one object matched; anything else leaves
// the characteristic unchanged.
func (p *Pipeline) resolveValue(
	value Value,
	effect *ContinuousEffect,
	baseline map[game.ObjectID]*Characteristics,
	state *game.State,
) (int, bool) {
	eval := evaluateValue(value, effect.Source, effect.Controller, baseline, state)
	switch eval.kind {
	case evalScalar:
		return eval.scalar, true
	case evalSet:
		if len(eval.set) == 1 {
			return eval.set[0], true
		}
	}
	p.logger.Debug("unresolvable value, leaving characteristic unchanged",
		zap.String("effect", effect.ID))
	return 0, false
}

// copyActivatedAbilities grants the target every activated (and optionally
// mana) ability found on objects matching the copy filter, deduplicated by
// signature against what the target already has.
func (p *Pipeline) copyActivatedAbilities(
	state *game.State,
	baseline map[game.ObjectID]*Characteristics,
	effect *ContinuousEffect,
	mod CopyActivatedAbilities,
	c *Characteristics,
) {
	have := make(map[string]bool, len(c.Abilities))
	for _, ab := range c.Abilities {
		have[ab.Signature()] = true
	}

	sourceName := ""
	if src, ok := state.Object(effect.Source); ok {
		sourceName = src.Name
	}

	ids := make([]game.ObjectID, 0, len(baseline))
	for id := range baseline {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		obj, ok := state.Object(id)
		if !ok {
			continue
		}
		if mod.ExcludeSourceID && id == effect.Source {
			continue
		}
		if mod.ExcludeSourceName && obj.Name == sourceName {
			continue
		}
		if mod.CounterName != "" && obj.Counters.GetCount(mod.CounterName) == 0 {
			continue
		}
		donor := baseline[id]
		if !mod.Filter.Matches(obj, donor, state, effect.Controller) {
			continue
		}
		for _, ab := range donor.Abilities {
			if ab.Kind != game.AbilityActivated && !(mod.IncludeMana && ab.Kind == game.AbilityMana) {
				continue
			}
			sig := ab.Signature()
			if have[sig] {
				continue
			}
			have[sig] = true
			c.Abilities = append(c.Abilities, ab)
		}
	}
}
