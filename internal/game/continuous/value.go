package continuous

import (
	"sort"

	"github.com/magefree/mage-layers-go/internal/game"
)

// Value is a number computed when an effect is applied, not when it is
// created. Set-type power/toughness effects carry values so that "power equal
// to the number of creatures you control" tracks the current board.
type Value interface {
	isValue()
}

// Fixed is a constant.
type Fixed struct{ N int }

// Sum adds two values. It is unknown if either side is unknown.
type Sum struct {
	Left  Value
	Right Value
}

// SourcePower reads the current calculated power of the effect's source.
type SourcePower struct{}

// SourceToughness reads the current calculated toughness of the effect's source.
type SourceToughness struct{}

// Count counts objects matching the filter against calculated characteristics.
type Count struct{ Filter ObjectFilter }

// CountScaled is Count multiplied by a constant factor.
type CountScaled struct {
	Filter ObjectFilter
	Factor int
}

// CreaturesDiedThisTurn reads the turn-scoped death count from game state.
type CreaturesDiedThisTurn struct{}

// PowerOf reads the calculated power of the chosen object(s).
type PowerOf struct{ Target ChooseSpec }

// ToughnessOf reads the calculated toughness of the chosen object(s).
type ToughnessOf struct{ Target ChooseSpec }

func (Fixed) isValue()                 {}
func (Sum) isValue()                   {}
func (SourcePower) isValue()           {}
func (SourceToughness) isValue()       {}
func (Count) isValue()                 {}
func (CountScaled) isValue()           {}
func (CreaturesDiedThisTurn) isValue() {}
func (PowerOf) isValue()               {}
func (ToughnessOf) isValue()           {}

// ChooseSpec designates which object a PowerOf/ToughnessOf value reads.
type ChooseSpec interface {
	isChooseSpec()
}

// ChooseSource designates the effect's own source.
type ChooseSource struct{}

// ChooseObject designates every object matching the filter.
type ChooseObject struct{ Filter ObjectFilter }

func (ChooseSource) isChooseSpec() {}
func (ChooseObject) isChooseSpec() {}

// valueEval is the result of evaluating a Value during dependency analysis.
// Multi-object reads produce a sorted set so two evaluations compare by
// content, and anything the analyzer cannot resolve is unknown.
type valueEvalKind int

const (
	evalScalar valueEvalKind = iota
	evalSet
	evalUnknown
)

type valueEval struct {
	kind   valueEvalKind
	scalar int
	set    []int
}

func scalarEval(n int) valueEval { return valueEval{kind: evalScalar, scalar: n} }
func setEval(vs []int) valueEval { return valueEval{kind: evalSet, set: vs} }
func unknownEval() valueEval     { return valueEval{kind: evalUnknown} }

func (v valueEval) isScalar() bool { return v.kind == evalScalar }

func (v valueEval) equals(other valueEval) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case evalScalar:
		return v.scalar == other.scalar
	case evalSet:
		if len(v.set) != len(other.set) {
			return false
		}
		for i := range v.set {
			if v.set[i] != other.set[i] {
				return false
			}
		}
		return true
	}
	// Two unknowns compare equal: the analyzer learned nothing either way.
	return true
}

// evaluateValue resolves a value against a full characteristics baseline.
// Used by the dependency analyzer to compare an effect's output before and
// after a hypothetical change.
func evaluateValue(
	value Value,
	source game.ObjectID,
	controller game.PlayerID,
	baseline map[game.ObjectID]*Characteristics,
	state *game.State,
) valueEval {
	switch v := value.(type) {
	case Fixed:
		return scalarEval(v.N)
	case Sum:
		left := evaluateValue(v.Left, source, controller, baseline, state)
		right := evaluateValue(v.Right, source, controller, baseline, state)
		if left.isScalar() && right.isScalar() {
			return scalarEval(left.scalar + right.scalar)
		}
		return unknownEval()
	case SourcePower:
		if chars, ok := baseline[source]; ok && chars.HasPower {
			return scalarEval(chars.Power)
		}
		return unknownEval()
	case SourceToughness:
		if chars, ok := baseline[source]; ok && chars.HasToughness {
			return scalarEval(chars.Toughness)
		}
		return unknownEval()
	case Count:
		return scalarEval(countMatching(v.Filter, controller, baseline, state))
	case CountScaled:
		return scalarEval(countMatching(v.Filter, controller, baseline, state) * v.Factor)
	case CreaturesDiedThisTurn:
		return scalarEval(state.CreaturesDiedThisTurn)
	case PowerOf:
		return collectPT(v.Target, true, source, controller, baseline, state)
	case ToughnessOf:
		return collectPT(v.Target, false, source, controller, baseline, state)
	}
	return unknownEval()
}

func countMatching(
	filter ObjectFilter,
	controller game.PlayerID,
	baseline map[game.ObjectID]*Characteristics,
	state *game.State,
) int {
	count := 0
	for id, chars := range baseline {
		obj, ok := state.Object(id)
		if !ok {
			continue
		}
		if filter.Matches(obj, chars, state, controller) {
			count++
		}
	}
	return count
}

func collectPT(
	target ChooseSpec,
	wantPower bool,
	source game.ObjectID,
	controller game.PlayerID,
	baseline map[game.ObjectID]*Characteristics,
	state *game.State,
) valueEval {
	var values []int
	switch spec := target.(type) {
	case ChooseSource:
		if chars, ok := baseline[source]; ok {
			if wantPower && chars.HasPower {
				values = append(values, chars.Power)
			} else if !wantPower && chars.HasToughness {
				values = append(values, chars.Toughness)
			}
		}
	case ChooseObject:
		for id, chars := range baseline {
			obj, ok := state.Object(id)
			if !ok {
				continue
			}
			if !spec.Filter.Matches(obj, chars, state, controller) {
				continue
			}
			if wantPower && chars.HasPower {
				values = append(values, chars.Power)
			} else if !wantPower && chars.HasToughness {
				values = append(values, chars.Toughness)
			}
		}
	}
	sort.Ints(values)
	return setEval(values)
}

// evaluateValueSimple resolves a value with nothing but one object's own
// characteristics in hand. Board-scoped values come back unknown, which the
// hypothetical application treats as "leave the number alone".
func evaluateValueSimple(value Value, chars *Characteristics) valueEval {
	switch v := value.(type) {
	case Fixed:
		return scalarEval(v.N)
	case Sum:
		left := evaluateValueSimple(v.Left, chars)
		right := evaluateValueSimple(v.Right, chars)
		if left.isScalar() && right.isScalar() {
			return scalarEval(left.scalar + right.scalar)
		}
		return unknownEval()
	case SourcePower:
		if chars.HasPower {
			return scalarEval(chars.Power)
		}
		return unknownEval()
	case SourceToughness:
		if chars.HasToughness {
			return scalarEval(chars.Toughness)
		}
		return unknownEval()
	}
	return unknownEval()
}

// valueReferencesPT reports whether evaluating the value reads some object's
// power or toughness. Board counts do not qualify; a count of creatures is
// unchanged by a creature getting +1/+1.
func valueReferencesPT(value Value) bool {
	switch v := value.(type) {
	case SourcePower, SourceToughness, PowerOf, ToughnessOf:
		return true
	case Sum:
		return valueReferencesPT(v.Left) || valueReferencesPT(v.Right)
	}
	return false
}

// ptValueDependsOnModification reports whether a modification from bSource
// could change what this value evaluates to. bAffectsAll is true for
// modifications that can touch any creature rather than one specific object.
func ptValueDependsOnModification(value Value, bSource game.ObjectID, bAffectsAll bool) bool {
	switch value.(type) {
	case SourcePower, SourceToughness:
		return bAffectsAll
	case PowerOf, ToughnessOf:
		// Conservative: without resolving the chosen object here, a
		// board-wide modification is assumed to reach it.
		return bAffectsAll
	}
	if v, ok := value.(Sum); ok {
		return ptValueDependsOnModification(v.Left, bSource, bAffectsAll) ||
			ptValueDependsOnModification(v.Right, bSource, bAffectsAll)
	}
	return false
}
