package continuous

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/magefree/mage-layers-go/internal/game"
)

func testEffect(n int, timestamp uint64, mod Modification) *ContinuousEffect {
	return &ContinuousEffect{
		ID:           fmt.Sprintf("effect-%d", n),
		Source:       game.ObjectID(fmt.Sprintf("object-%d", n)),
		Controller:   "player-1",
		AppliesTo:    TargetAllPermanents{},
		Modification: mod,
		Timestamp:    timestamp,
		Duration:     DurationPermanent,
		SourceType:   SourceStaticAbility,
	}
}

func TestDependsOn_DifferentLayersNeverDepend(t *testing.T) {
	boost := testEffect(1, 100, ModifyPowerToughness{Power: 1, Toughness: 1})
	grant := testEffect(2, 50, AddAbility{Ability: game.Flying()})

	assert.False(t, DependsOn(boost, grant))
	assert.False(t, DependsOn(grant, boost))
}

func TestDependsOn_RemoveAllAbilitiesDependsOnAdders(t *testing.T) {
	grant := testEffect(1, 100, AddAbility{Ability: game.Flying()})
	stripper := testEffect(2, 50, RemoveAllAbilities{})

	assert.True(t, DependsOn(stripper, grant))
	assert.False(t, DependsOn(grant, stripper))
}

func TestDependsOn_RemoveAllAbilitiesDependsOnGenericAndCopiedGrants(t *testing.T) {
	stripper := testEffect(1, 10, RemoveAllAbilities{})
	generic := testEffect(2, 20, AddAbilityGeneric{
		Ability: game.NewTriggeredAbility("Whenever this creature deals combat damage to a player, draw a card."),
	})
	copier := testEffect(3, 30, CopyActivatedAbilities{Filter: LandFilter(), IncludeMana: true})

	assert.True(t, DependsOn(stripper, generic))
	assert.True(t, DependsOn(stripper, copier))
	assert.False(t, DependsOn(generic, stripper))
	assert.False(t, DependsOn(copier, stripper))
}

func TestDependsOn_AddAbilityVsRemoveSpecificAbility(t *testing.T) {
	grantFlying := testEffect(1, 10, AddAbility{Ability: game.Flying()})
	removeFlying := testEffect(2, 20, RemoveAbility{Ability: game.Flying()})
	removeHaste := testEffect(3, 30, RemoveAbility{Ability: game.Haste()})

	// Same ability: the grant depends on the removal.
	assert.True(t, DependsOn(grantFlying, removeFlying))
	// Different ability: unrelated.
	assert.False(t, DependsOn(grantFlying, removeHaste))
}

func TestDependsOn_FixedModifiersCommute(t *testing.T) {
	a := testEffect(1, 100, ModifyPowerToughness{Power: 1, Toughness: 1})
	b := testEffect(2, 50, ModifyPowerToughness{Power: 2, Toughness: 2})

	assert.False(t, DependsOn(a, b))
	assert.False(t, DependsOn(b, a))

	p := testEffect(3, 10, ModifyPower{Delta: 1})
	q := testEffect(4, 20, ModifyToughness{Delta: -1})
	assert.False(t, DependsOn(p, q))
	assert.False(t, DependsOn(q, p))
}

func TestDependsOn_FixedSetterIndependentOfModifier(t *testing.T) {
	setter := testEffect(1, 100, SetPowerToughness{
		Power:     Fixed{N: 1},
		Toughness: Fixed{N: 1},
		Sublayer:  SublayerSetting,
	})
	modifier := testEffect(2, 50, ModifyPowerToughness{Power: 2, Toughness: 2})

	// Different sublayers (7b vs 7c): no dependency either way.
	assert.False(t, DependsOn(setter, modifier))
	assert.False(t, DependsOn(modifier, setter))
}

func TestDependsOn_ComputedSetterDependsOnModifier(t *testing.T) {
	// "Power and toughness are each equal to this creature's power" style
	// setter, forced into the modifying sublayer so it shares a group with
	// the modifier.
	setter := testEffect(1, 100, SetPowerToughness{
		Power:     SourcePower{},
		Toughness: SourceToughness{},
		Sublayer:  SublayerModifying,
	})
	modifier := testEffect(2, 50, ModifyPowerToughness{Power: 2, Toughness: 2})

	assert.True(t, DependsOn(setter, modifier))
	// The fixed modifier never depends on the setter.
	assert.False(t, DependsOn(modifier, setter))
}

func TestDependsOn_CountBasedSetterIndependentOfModifier(t *testing.T) {
	// "Power equal to the number of creatures you control" does not read any
	// power or toughness, so P/T modifiers cannot change its output.
	setter := testEffect(1, 100, SetPowerToughness{
		Power:     Count{Filter: CreatureFilter().ControlledBy()},
		Toughness: Count{Filter: CreatureFilter().ControlledBy()},
		Sublayer:  SublayerModifying,
	})
	modifier := testEffect(2, 50, ModifyPowerToughness{Power: 2, Toughness: 2})

	assert.False(t, DependsOn(setter, modifier))
}

func TestDependsOn_SwitchAndModifyAreMutuallyDependent(t *testing.T) {
	swap := testEffect(1, 10, SwitchPowerToughness{})
	modifier := testEffect(2, 20, ModifyPowerToughness{Power: 2, Toughness: 0})

	// Different sublayers gate this off in DependsOn, so check the table
	// directly: order matters in both directions.
	assert.True(t, checkDependencyRelationship(swap.Modification, modifier.Modification, swap.Source, modifier.Source))
	assert.True(t, checkDependencyRelationship(modifier.Modification, swap.Modification, modifier.Source, swap.Source))
	assert.False(t, DependsOn(swap, modifier))
}

func TestDependsOn_ProtectionGrantDependsOnColorChange(t *testing.T) {
	protection := AddAbility{Ability: game.ProtectionFromColors(game.NewColorSet(game.ColorRed))}
	flying := AddAbility{Ability: game.Flying()}
	recolor := SetColors{Colors: game.NewColorSet(game.ColorBlue)}

	assert.True(t, checkDependencyRelationship(protection, recolor, "a", "b"))
	assert.False(t, checkDependencyRelationship(flying, recolor, "a", "b"))
}

func TestDependsOn_TypeChangesConservativelyAffectAbilityGrants(t *testing.T) {
	grant := AddAbility{Ability: game.Flying()}

	assert.True(t, checkDependencyRelationship(grant, SetCardTypes{Types: []game.CardType{game.CardTypeArtifact}}, "a", "b"))
	assert.True(t, checkDependencyRelationship(grant, AddSubtypes{Subtypes: []game.Subtype{game.SubtypeElf}}, "a", "b"))
	assert.True(t, checkDependencyRelationship(grant, RemoveCardTypes{Types: []game.CardType{game.CardTypeCreature}}, "a", "b"))
}

func TestDependsOn_CDAAndNonCDANeverDepend(t *testing.T) {
	cda := testEffect(1, 10, SetPowerToughness{
		Power:     SourcePower{},
		Toughness: SourceToughness{},
		Sublayer:  SublayerModifying,
	})
	cda.SourceType = SourceCharacteristicDefining
	modifier := testEffect(2, 20, ModifyPowerToughness{Power: 1, Toughness: 1})

	assert.False(t, DependsOn(cda, modifier))
	assert.False(t, DependsOn(modifier, cda))

	// Two CDAs are still eligible.
	other := testEffect(3, 30, ModifyPowerToughness{Power: 1, Toughness: 1})
	other.SourceType = SourceCharacteristicDefining
	assert.True(t, DependsOn(cda, other))
}

func TestValueReferencesPT(t *testing.T) {
	assert.True(t, valueReferencesPT(SourcePower{}))
	assert.True(t, valueReferencesPT(ToughnessOf{Target: ChooseSource{}}))
	assert.True(t, valueReferencesPT(Sum{Left: Fixed{N: 1}, Right: SourceToughness{}}))

	assert.False(t, valueReferencesPT(Fixed{N: 3}))
	assert.False(t, valueReferencesPT(Count{Filter: CreatureFilter()}))
	assert.False(t, valueReferencesPT(CreaturesDiedThisTurn{}))
}

func TestDependsOnWithBaseline_ApplicabilityFlip(t *testing.T) {
	state := game.NewState()
	bear := game.NewObject("Grizzly Bears", "player-1", game.ZoneBattlefield).
		WithCardTypes(game.CardTypeCreature).
		WithSubtypes(game.SubtypeBear).
		WithPT(2, 2)
	state.AddObject(bear)

	baseline := map[game.ObjectID]*Characteristics{
		bear.ID: BaseCharacteristics(bear),
	}

	// A grants flying to creatures; B makes everything stop being a creature.
	grant := testEffect(1, 10, AddAbility{Ability: game.Flying()})
	grant.AppliesTo = TargetFilter{Filter: CreatureFilter()}
	retype := testEffect(2, 20, RemoveCardTypes{Types: []game.CardType{game.CardTypeCreature}})

	assert.True(t, effectApplicabilityChanged(grant, retype, baseline, state))
	assert.True(t, dependsOnWithBaseline(grant, retype, baseline, state))
}

func TestEffectOutputChanged_ComputedSetterSeesBoostedPower(t *testing.T) {
	state := game.NewState()
	source := game.NewObject("Mirror Entity", "player-1", game.ZoneBattlefield).
		WithCardTypes(game.CardTypeCreature).
		WithPT(3, 3)
	state.AddObject(source)

	baseline := map[game.ObjectID]*Characteristics{
		source.ID: BaseCharacteristics(source),
	}

	setter := testEffect(1, 10, SetPower{Value: SourcePower{}, Sublayer: SublayerModifying})
	setter.Source = source.ID
	setter.AppliesTo = TargetSource{}

	boost := testEffect(2, 20, ModifyPowerToughness{Power: 2, Toughness: 2})

	assert.True(t, effectOutputChanged(setter, boost, baseline, state))

	// A fixed setter's output cannot move.
	fixed := testEffect(3, 30, SetPower{Value: Fixed{N: 1}, Sublayer: SublayerModifying})
	fixed.Source = source.ID
	fixed.AppliesTo = TargetSource{}
	assert.False(t, effectOutputChanged(fixed, boost, baseline, state))
}

func TestEffectOutputChanged_CopySignaturesTrackAbilityRemoval(t *testing.T) {
	state := game.NewState()
	land := game.NewObject("Island", "player-1", game.ZoneBattlefield).
		WithCardTypes(game.CardTypeLand).
		WithSubtypes(game.SubtypeIsland).
		WithAbilities(game.NewManaAbility("{T}", "Add {U}."))
	copier := game.NewObject("Vesuva", "player-1", game.ZoneBattlefield).
		WithCardTypes(game.CardTypeLand)
	state.AddObject(land)
	state.AddObject(copier)

	baseline := map[game.ObjectID]*Characteristics{
		land.ID:   BaseCharacteristics(land),
		copier.ID: BaseCharacteristics(copier),
	}

	copyEffect := testEffect(1, 10, CopyActivatedAbilities{
		Filter:          LandFilter(),
		IncludeMana:     true,
		ExcludeSourceID: true,
	})
	copyEffect.Source = copier.ID
	copyEffect.AppliesTo = TargetSource{}

	stripper := testEffect(2, 20, RemoveAllAbilities{})

	assert.True(t, effectOutputChanged(copyEffect, stripper, baseline, state))
}
