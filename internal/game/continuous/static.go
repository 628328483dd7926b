package continuous

import (
	"github.com/magefree/mage-layers-go/internal/game"
)

// Constructors for the continuous effects that static abilities generate.
// None of these assign a timestamp: register them through
// Manager.SetStaticAbilityEffects so they inherit the source permanent's
// battlefield entry timestamp. A permanent's static abilities are as old as
// the permanent itself, which is what makes anthem-vs-anthem ordering come
// out right.

// NewAnthem builds a "matching creatures get +X/+Y" effect.
func NewAnthem(
	source game.ObjectID,
	controller game.PlayerID,
	filter ObjectFilter,
	power, toughness int,
) *ContinuousEffect {
	return &ContinuousEffect{
		Source:     source,
		Controller: controller,
		AppliesTo:  TargetFilter{Filter: filter},
		Modification: ModifyPowerToughness{
			Power:     power,
			Toughness: toughness,
		},
		Duration:   DurationWhileOnBattlefield,
		SourceType: SourceStaticAbility,
	}
}

// NewAbilityGrant builds an effect granting a keyword ability to whatever the
// target selects.
func NewAbilityGrant(
	source game.ObjectID,
	controller game.PlayerID,
	target EffectTarget,
	ability game.StaticAbility,
) *ContinuousEffect {
	return &ContinuousEffect{
		Source:       source,
		Controller:   controller,
		AppliesTo:    target,
		Modification: AddAbility{Ability: ability},
		Duration:     DurationWhileOnBattlefield,
		SourceType:   SourceStaticAbility,
	}
}

// NewBasePTSetter builds a "matching creatures have base power and toughness
// X/Y" effect (sublayer 7b).
func NewBasePTSetter(
	source game.ObjectID,
	controller game.PlayerID,
	filter ObjectFilter,
	power, toughness Value,
) *ContinuousEffect {
	return &ContinuousEffect{
		Source:     source,
		Controller: controller,
		AppliesTo:  TargetFilter{Filter: filter},
		Modification: SetPowerToughness{
			Power:     power,
			Toughness: toughness,
			Sublayer:  SublayerSetting,
		},
		Duration:   DurationWhileOnBattlefield,
		SourceType: SourceStaticAbility,
	}
}

// NewCharacteristicDefiningPT builds a CDA like "this creature's power and
// toughness are each equal to ..." (sublayer 7a). CDAs apply to their own
// source and only form dependencies with other CDAs.
func NewCharacteristicDefiningPT(
	source game.ObjectID,
	controller game.PlayerID,
	power, toughness Value,
) *ContinuousEffect {
	return &ContinuousEffect{
		Source:     source,
		Controller: controller,
		AppliesTo:  TargetSource{},
		Modification: SetPowerToughness{
			Power:     power,
			Toughness: toughness,
			Sublayer:  SublayerCharacteristicDefining,
		},
		Duration:   DurationWhileOnBattlefield,
		SourceType: SourceCharacteristicDefining,
	}
}

// NewColorSetter builds a "matching objects are <colors>" effect.
func NewColorSetter(
	source game.ObjectID,
	controller game.PlayerID,
	filter ObjectFilter,
	colors game.ColorSet,
) *ContinuousEffect {
	return &ContinuousEffect{
		Source:       source,
		Controller:   controller,
		AppliesTo:    TargetFilter{Filter: filter},
		Modification: SetColors{Colors: colors},
		Duration:     DurationWhileOnBattlefield,
		SourceType:   SourceStaticAbility,
	}
}

// NewAbilityStripper builds a "matching objects lose all abilities" effect.
func NewAbilityStripper(
	source game.ObjectID,
	controller game.PlayerID,
	target EffectTarget,
) *ContinuousEffect {
	return &ContinuousEffect{
		Source:       source,
		Controller:   controller,
		AppliesTo:    target,
		Modification: RemoveAllAbilities{},
		Duration:     DurationWhileOnBattlefield,
		SourceType:   SourceStaticAbility,
	}
}

// NewActivatedAbilityCopier builds an effect granting the source the
// activated abilities of objects matching the filter, optionally gated on a
// condition.
func NewActivatedAbilityCopier(
	source game.ObjectID,
	controller game.PlayerID,
	mod CopyActivatedAbilities,
	condition Condition,
) *ContinuousEffect {
	return &ContinuousEffect{
		Source:       source,
		Controller:   controller,
		AppliesTo:    TargetSource{},
		Modification: mod,
		Duration:     DurationWhileOnBattlefield,
		Condition:    condition,
		SourceType:   SourceStaticAbility,
	}
}

// NewResolutionEffect builds an effect from a resolved spell or ability. The
// chosen targets are locked at resolution and the timestamp is assigned when
// the effect is added to the manager.
func NewResolutionEffect(
	source game.ObjectID,
	controller game.PlayerID,
	targets []game.ObjectID,
	mod Modification,
	duration Duration,
) *ContinuousEffect {
	var appliesTo EffectTarget = TargetAllPermanents{}
	if len(targets) == 1 {
		appliesTo = TargetSpecific{ID: targets[0]}
	}
	return &ContinuousEffect{
		Source:        source,
		Controller:    controller,
		AppliesTo:     appliesTo,
		Modification:  mod,
		Duration:      duration,
		SourceType:    SourceResolution,
		LockedTargets: append([]game.ObjectID(nil), targets...),
	}
}
