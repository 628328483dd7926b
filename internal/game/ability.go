package game

import "fmt"

// StaticAbilityID identifies a known static ability.
type StaticAbilityID string

const (
	StaticFlying         StaticAbilityID = "flying"
	StaticFirstStrike    StaticAbilityID = "first strike"
	StaticDoubleStrike   StaticAbilityID = "double strike"
	StaticDeathtouch     StaticAbilityID = "deathtouch"
	StaticDefender       StaticAbilityID = "defender"
	StaticHaste          StaticAbilityID = "haste"
	StaticHexproof       StaticAbilityID = "hexproof"
	StaticIndestructible StaticAbilityID = "indestructible"
	StaticLifelink       StaticAbilityID = "lifelink"
	StaticMenace         StaticAbilityID = "menace"
	StaticProtection     StaticAbilityID = "protection"
	StaticReach          StaticAbilityID = "reach"
	StaticTrample        StaticAbilityID = "trample"
	StaticVigilance      StaticAbilityID = "vigilance"
)

// StaticAbility is a keyword-style ability. Structural equality (==) is the
// identity used when effects grant or remove a specific ability.
type StaticAbility struct {
	ID StaticAbilityID
	// ProtectionFrom holds the protected-from colors when ID is StaticProtection.
	ProtectionFrom ColorSet
}

// Flying returns the flying static ability.
func Flying() StaticAbility { return StaticAbility{ID: StaticFlying} }

// Haste returns the haste static ability.
func Haste() StaticAbility { return StaticAbility{ID: StaticHaste} }

// Trample returns the trample static ability.
func Trample() StaticAbility { return StaticAbility{ID: StaticTrample} }

// ProtectionFromColors returns a protection-from ability for the given colors.
func ProtectionFromColors(colors ColorSet) StaticAbility {
	return StaticAbility{ID: StaticProtection, ProtectionFrom: colors}
}

// IsProtectionFromColor reports whether this is protection from one or more colors.
func (s StaticAbility) IsProtectionFromColor() bool {
	return s.ID == StaticProtection && !s.ProtectionFrom.IsEmpty()
}

// AbilityKind distinguishes the rules categories of abilities.
type AbilityKind int

const (
	AbilityStatic AbilityKind = iota
	AbilityActivated
	AbilityMana
	AbilityTriggered
)

// Ability is a single ability an object has or has been granted.
type Ability struct {
	Kind   AbilityKind
	Static StaticAbility // set when Kind == AbilityStatic
	Cost   string        // activation cost text for activated/mana abilities
	Text   string        // effect text
}

// NewStaticAbility wraps a static ability.
func NewStaticAbility(s StaticAbility) Ability {
	return Ability{Kind: AbilityStatic, Static: s}
}

// NewActivatedAbility creates an activated ability from its cost and effect text.
func NewActivatedAbility(cost, text string) Ability {
	return Ability{Kind: AbilityActivated, Cost: cost, Text: text}
}

// NewManaAbility creates a mana ability from its cost and effect text.
func NewManaAbility(cost, text string) Ability {
	return Ability{Kind: AbilityMana, Cost: cost, Text: text}
}

// NewTriggeredAbility creates a triggered ability from its text.
func NewTriggeredAbility(text string) Ability {
	return Ability{Kind: AbilityTriggered, Text: text}
}

// Signature returns a stable structural identity for the ability, used when
// comparing copied ability sets before and after a hypothetical change.
func (a Ability) Signature() string {
	switch a.Kind {
	case AbilityStatic:
		return fmt.Sprintf("static|%s|%s", a.Static.ID, a.Static.ProtectionFrom)
	case AbilityActivated:
		return fmt.Sprintf("activated|%s|%s", a.Cost, a.Text)
	case AbilityMana:
		return fmt.Sprintf("mana|%s|%s", a.Cost, a.Text)
	default:
		return fmt.Sprintf("triggered|%s", a.Text)
	}
}

// IsStatic reports whether the ability is the given static ability.
func (a Ability) IsStatic(s StaticAbility) bool {
	return a.Kind == AbilityStatic && a.Static == s
}
