package continuous

import (
	"github.com/magefree/mage-layers-go/internal/game"
)

// DependsOn reports whether effect a depends on effect b.
//
// A dependency requires all of:
//  1. Both effects apply in the same layer, and for the power/toughness
//     layer the same sublayer.
//  2. Applying b first would change whether a applies, what a applies to,
//     or what a does.
//  3. Neither effect is characteristic-defining, or both are.
//
// When a depends on b, b must be applied first regardless of timestamps.
func DependsOn(a, b *ContinuousEffect) bool {
	if LayerOf(a.Modification) != LayerOf(b.Modification) {
		return false
	}
	if LayerOf(a.Modification) == LayerPowerToughness {
		subA, okA := SublayerOf(a.Modification)
		subB, okB := SublayerOf(b.Modification)
		if okA != okB || subA != subB {
			return false
		}
	}
	if a.IsCharacteristicDefining() != b.IsCharacteristicDefining() {
		return false
	}
	return checkDependencyRelationship(a.Modification, b.Modification, a.Source, b.Source)
}

// dependsOnWithBaseline refines DependsOn using a characteristics baseline:
// b is hypothetically applied to the baseline and a is re-evaluated. The
// static relationship table remains as a fallback for shapes the simulation
// cannot see. Callers have already grouped by layer and sublayer.
func dependsOnWithBaseline(
	a, b *ContinuousEffect,
	baseline map[game.ObjectID]*Characteristics,
	state *game.State,
) bool {
	if a.IsCharacteristicDefining() != b.IsCharacteristicDefining() {
		return false
	}
	if effectApplicabilityChanged(a, b, baseline, state) {
		return true
	}
	if effectOutputChanged(a, b, baseline, state) {
		return true
	}
	return checkDependencyRelationship(a.Modification, b.Modification, a.Source, b.Source)
}

// checkDependencyRelationship is the static table of modification pairs where
// applying b first changes what a does. Pairs not listed do not depend on
// each other.
func checkDependencyRelationship(a, b Modification, _ game.ObjectID, bSource game.ObjectID) bool {
	switch modA := a.(type) {
	case RemoveAllAbilities:
		// The remover applies after anything granting abilities in the
		// same layer, so the grants are wiped.
		switch b.(type) {
		case AddAbility, AddAbilityGeneric, CopyActivatedAbilities:
			return true
		}

	case AddAbility:
		switch modB := b.(type) {
		case RemoveAllAbilities:
			// A grant does not depend on a blanket removal.
			return false
		case RemoveAbility:
			// Granting an ability depends on a removal of that same
			// ability, matched structurally.
			return modA.Ability == modB.Ability
		case SetCardTypes, AddCardTypes, RemoveCardTypes,
			SetSubtypes, AddSubtypes, RemoveSubtypes:
			// Conservative: the grant's applicability may be keyed on the
			// types b rewrites, and the filter is opaque here.
			return true
		case SetColors, AddColors, RemoveColors:
			// Protection from a color tracks color changes.
			return modA.Ability.IsProtectionFromColor()
		}

	case AddAbilityGeneric, CopyActivatedAbilities:
		return false

	case ModifyPowerToughness:
		// Fixed deltas commute with sets and with each other; only a
		// switch reorders against them.
		_, isSwitch := b.(SwitchPowerToughness)
		return isSwitch

	case SwitchPowerToughness:
		_, isModify := b.(ModifyPowerToughness)
		return isModify

	case SetPowerToughness:
		switch b.(type) {
		case ModifyPowerToughness:
			if !valueReferencesPT(modA.Power) && !valueReferencesPT(modA.Toughness) {
				return false
			}
			return ptValueDependsOnModification(modA.Power, bSource, true) ||
				ptValueDependsOnModification(modA.Toughness, bSource, true)
		case SetPowerToughness:
			if !valueReferencesPT(modA.Power) && !valueReferencesPT(modA.Toughness) {
				return false
			}
			// A set touches one specific object rather than the board.
			return ptValueDependsOnModification(modA.Power, bSource, false) ||
				ptValueDependsOnModification(modA.Toughness, bSource, false)
		}

	case SetPower:
		switch b.(type) {
		case ModifyPower, ModifyPowerToughness:
			return valueReferencesPT(modA.Value) &&
				ptValueDependsOnModification(modA.Value, bSource, true)
		}

	case SetToughness:
		switch b.(type) {
		case ModifyToughness, ModifyPowerToughness:
			return valueReferencesPT(modA.Value) &&
				ptValueDependsOnModification(modA.Value, bSource, true)
		}
	}

	return false
}

// effectApplies reports whether the effect applies to the object, judged
// against the given calculated characteristics.
func effectApplies(
	effect *ContinuousEffect,
	obj *game.Object,
	chars *Characteristics,
	state *game.State,
) bool {
	switch target := effect.AppliesTo.(type) {
	case TargetSpecific:
		return target.ID == obj.ID
	case TargetSource:
		return effect.Source == obj.ID
	case TargetAllPermanents:
		return obj.Zone == game.ZoneBattlefield
	case TargetAllCreatures:
		return obj.Zone == game.ZoneBattlefield && chars.HasCardType(game.CardTypeCreature)
	case TargetFilter:
		return target.Filter.Matches(obj, chars, state, effect.Controller)
	case TargetAttachedTo:
		if obj.Zone != game.ZoneBattlefield || !chars.HasCardType(game.CardTypeCreature) {
			return false
		}
		return state.IsAttachedTo(target.Source, obj.ID)
	}
	return false
}

// effectApplicabilityChanged reports whether hypothetically applying b flips
// whether a applies to any object.
func effectApplicabilityChanged(
	a, b *ContinuousEffect,
	baseline map[game.ObjectID]*Characteristics,
	state *game.State,
) bool {
	for id, chars := range baseline {
		obj, ok := state.Object(id)
		if !ok {
			continue
		}
		appliesBefore := effectApplies(a, obj, chars, state)
		charsAfter := chars
		if effectApplies(b, obj, chars, state) {
			charsAfter = chars.Clone()
			applyForDependency(b.Modification, charsAfter)
		}
		appliesAfter := effectApplies(a, obj, charsAfter, state)
		if appliesBefore != appliesAfter {
			return true
		}
	}
	return false
}

// effectOutputChanged reports whether hypothetically applying b changes what
// a computes: the signature set for ability copying, or the evaluated values
// for computed power/toughness sets.
func effectOutputChanged(
	a, b *ContinuousEffect,
	baseline map[game.ObjectID]*Characteristics,
	state *game.State,
) bool {
	if copyMod, ok := a.Modification.(CopyActivatedAbilities); ok {
		before := collectActivatedAbilitySignatures(copyMod, a, baseline, state)
		baselineAfter := applyEffectToBaseline(b, baseline, state)
		after := collectActivatedAbilitySignatures(copyMod, a, baselineAfter, state)
		return !signatureSetsEqual(before, after)
	}

	var powerValue, toughnessValue Value
	switch mod := a.Modification.(type) {
	case SetPower:
		powerValue = mod.Value
	case SetToughness:
		toughnessValue = mod.Value
	case SetPowerToughness:
		powerValue = mod.Power
		toughnessValue = mod.Toughness
	default:
		return false
	}

	appliesToAny := false
	for id, chars := range baseline {
		obj, ok := state.Object(id)
		if !ok {
			continue
		}
		if effectApplies(a, obj, chars, state) {
			appliesToAny = true
			break
		}
	}
	if !appliesToAny {
		return false
	}

	baselineAfter := applyEffectToBaseline(b, baseline, state)

	for _, value := range []Value{powerValue, toughnessValue} {
		if value == nil {
			continue
		}
		before := evaluateValue(value, a.Source, a.Controller, baseline, state)
		after := evaluateValue(value, a.Source, a.Controller, baselineAfter, state)
		if !before.equals(after) {
			return true
		}
	}
	return false
}

// applyEffectToBaseline returns a new baseline with the effect hypothetically
// applied to every object it currently applies to.
func applyEffectToBaseline(
	effect *ContinuousEffect,
	baseline map[game.ObjectID]*Characteristics,
	state *game.State,
) map[game.ObjectID]*Characteristics {
	after := make(map[game.ObjectID]*Characteristics, len(baseline))
	for id, chars := range baseline {
		after[id] = chars
	}
	for id, chars := range baseline {
		obj, ok := state.Object(id)
		if !ok {
			continue
		}
		if effectApplies(effect, obj, chars, state) {
			next := chars.Clone()
			applyForDependency(effect.Modification, next)
			after[id] = next
		}
	}
	return after
}

// applyForDependency applies a modification to one object's characteristics
// in isolation. Values that need board context evaluate as unknown and leave
// the number untouched; ability copying is skipped entirely because its
// output is compared by signature set instead.
func applyForDependency(m Modification, chars *Characteristics) {
	switch mod := m.(type) {
	case ChangeController:
		if !mod.UseEffectController {
			chars.Controller = mod.Player
		}
	case Rename:
		chars.Name = mod.Name
	case AddCardTypes:
		chars.addCardTypes(mod.Types)
	case RemoveCardTypes:
		chars.removeCardTypes(mod.Types)
	case SetCardTypes:
		chars.CardTypes = append([]game.CardType(nil), mod.Types...)
	case AddSubtypes:
		chars.addSubtypes(mod.Subtypes)
	case RemoveSubtypes:
		chars.removeSubtypes(mod.Subtypes)
	case SetSubtypes:
		chars.Subtypes = append([]game.Subtype(nil), mod.Subtypes...)
	case RemoveAllCreatureTypes:
		kept := chars.Subtypes[:0]
		for _, st := range chars.Subtypes {
			if !st.IsCreatureType() {
				kept = append(kept, st)
			}
		}
		chars.Subtypes = kept
	case AddSupertypes:
		chars.addSupertypes(mod.Supertypes)
	case RemoveSupertypes:
		chars.removeSupertypes(mod.Supertypes)
	case SetSupertypes:
		chars.Supertypes = append([]game.Supertype(nil), mod.Supertypes...)
	case AddColors:
		chars.Colors = chars.Colors.Union(mod.Colors)
	case RemoveColors:
		chars.Colors = chars.Colors.Without(mod.Colors)
	case SetColors:
		chars.Colors = mod.Colors
	case MakeColorless:
		chars.Colors = game.Colorless
	case AddAbility:
		chars.Abilities = append(chars.Abilities, game.NewStaticAbility(mod.Ability))
	case AddAbilityGeneric:
		chars.Abilities = append(chars.Abilities, mod.Ability)
	case RemoveAbility:
		kept := chars.Abilities[:0]
		for _, ab := range chars.Abilities {
			if ab.IsStatic(mod.Ability) {
				continue
			}
			kept = append(kept, ab)
		}
		chars.Abilities = kept
	case RemoveAllAbilities:
		chars.Abilities = nil
	case SetPower:
		if v := evaluateValueSimple(mod.Value, chars); v.isScalar() {
			chars.Power = v.scalar
			chars.HasPower = true
		}
	case SetToughness:
		if v := evaluateValueSimple(mod.Value, chars); v.isScalar() {
			chars.Toughness = v.scalar
			chars.HasToughness = true
		}
	case SetPowerToughness:
		if v := evaluateValueSimple(mod.Power, chars); v.isScalar() {
			chars.Power = v.scalar
			chars.HasPower = true
		}
		if v := evaluateValueSimple(mod.Toughness, chars); v.isScalar() {
			chars.Toughness = v.scalar
			chars.HasToughness = true
		}
	case ModifyPower:
		if chars.HasPower {
			chars.Power += mod.Delta
		}
	case ModifyToughness:
		if chars.HasToughness {
			chars.Toughness += mod.Delta
		}
	case ModifyPowerToughness:
		if chars.HasPower {
			chars.Power += mod.Power
		}
		if chars.HasToughness {
			chars.Toughness += mod.Toughness
		}
	case SwitchPowerToughness:
		chars.Power, chars.Toughness = chars.Toughness, chars.Power
		chars.HasPower, chars.HasToughness = chars.HasToughness, chars.HasPower
	}
}

// collectActivatedAbilitySignatures gathers the signature set of the
// activated (and optionally mana) abilities the copy effect would pick up
// under the given baseline.
func collectActivatedAbilitySignatures(
	mod CopyActivatedAbilities,
	effect *ContinuousEffect,
	baseline map[game.ObjectID]*Characteristics,
	state *game.State,
) map[string]struct{} {
	signatures := make(map[string]struct{})

	sourceName := ""
	if src, ok := state.Object(effect.Source); ok {
		sourceName = src.Name
	}

	for id, chars := range baseline {
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
		if !mod.Filter.Matches(obj, chars, state, effect.Controller) {
			continue
		}
		for _, ab := range chars.Abilities {
			if ab.Kind == game.AbilityActivated || (mod.IncludeMana && ab.Kind == game.AbilityMana) {
				signatures[ab.Signature()] = struct{}{}
			}
		}
	}
	return signatures
}

func signatureSetsEqual(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for sig := range a {
		if _, ok := b[sig]; !ok {
			return false
		}
	}
	return true
}
