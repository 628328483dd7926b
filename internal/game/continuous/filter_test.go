package continuous

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/magefree/mage-layers-go/internal/game"
)

func matchState() (*game.State, *game.Object) {
	state := game.NewState()
	bear := game.NewObject("Grizzly Bears", "alice", game.ZoneBattlefield).
		WithCardTypes(game.CardTypeCreature).
		WithSubtypes(game.SubtypeBear).
		WithPT(2, 2).
		WithColors(game.NewColorSet(game.ColorGreen)).
		WithManaCost("{1}{G}")
	state.AddObject(bear)
	return state, bear
}

func TestObjectFilter_TypeAndZone(t *testing.T) {
	state, bear := matchState()
	chars := BaseCharacteristics(bear)

	assert.True(t, CreatureFilter().Matches(bear, chars, state, "alice"))
	assert.False(t, LandFilter().Matches(bear, chars, state, "alice"))

	graveyardCreature := ObjectFilter{
		Zone:      game.ZoneGraveyard,
		CardTypes: []game.CardType{game.CardTypeCreature},
	}
	assert.False(t, graveyardCreature.Matches(bear, chars, state, "alice"))
}

func TestObjectFilter_ExcludedTypes(t *testing.T) {
	state, bear := matchState()
	chars := BaseCharacteristics(bear)

	noBears := CreatureFilter()
	noBears.ExcludedSubtypes = []game.Subtype{game.SubtypeBear}
	assert.False(t, noBears.Matches(bear, chars, state, "alice"))

	noArtifacts := CreatureFilter()
	noArtifacts.ExcludedCardTypes = []game.CardType{game.CardTypeArtifact}
	assert.True(t, noArtifacts.Matches(bear, chars, state, "alice"))
}

func TestObjectFilter_ControllerRelation(t *testing.T) {
	state, bear := matchState()
	chars := BaseCharacteristics(bear)

	mine := CreatureFilter().ControlledBy()
	assert.True(t, mine.Matches(bear, chars, state, "alice"))
	assert.False(t, mine.Matches(bear, chars, state, "bob"))

	theirs := CreatureFilter()
	theirs.Controller = &ControllerFilter{Relation: PlayerOpponent}
	assert.False(t, theirs.Matches(bear, chars, state, "alice"))
	assert.True(t, theirs.Matches(bear, chars, state, "bob"))

	specific := CreatureFilter()
	specific.Controller = &ControllerFilter{Relation: PlayerSpecific, Player: "alice"}
	assert.True(t, specific.Matches(bear, chars, state, "bob"))
}

func TestObjectFilter_Colors(t *testing.T) {
	state, bear := matchState()
	chars := BaseCharacteristics(bear)

	green := ObjectFilter{Colors: game.NewColorSet(game.ColorGreen)}
	assert.True(t, green.Matches(bear, chars, state, "alice"))

	blue := ObjectFilter{Colors: game.NewColorSet(game.ColorBlue)}
	assert.False(t, blue.Matches(bear, chars, state, "alice"))

	colorless := ObjectFilter{Colorless: true}
	assert.False(t, colorless.Matches(bear, chars, state, "alice"))

	multi := ObjectFilter{Multicolored: true}
	assert.False(t, multi.Matches(bear, chars, state, "alice"))

	// Color criteria read the snapshot, not the printed colors.
	recolored := chars.Clone()
	recolored.Colors = game.NewColorSet(game.ColorBlue, game.ColorRed)
	assert.True(t, blue.Matches(bear, recolored, state, "alice"))
	assert.True(t, multi.Matches(bear, recolored, state, "alice"))
}

func TestObjectFilter_PowerComparisons(t *testing.T) {
	state, bear := matchState()
	chars := BaseCharacteristics(bear)

	big := ObjectFilter{Power: &Comparison{Op: CompareGreaterThanOrEqual, Value: 4}}
	assert.False(t, big.Matches(bear, chars, state, "alice"))

	small := ObjectFilter{Power: &Comparison{Op: CompareLessThan, Value: 3}}
	assert.True(t, small.Matches(bear, chars, state, "alice"))

	oneOf := ObjectFilter{Power: &Comparison{Op: CompareOneOf, Values: []int{1, 2, 3}}}
	assert.True(t, oneOf.Matches(bear, chars, state, "alice"))

	// Objects with no power never satisfy a power comparison.
	noPT := chars.Clone()
	noPT.HasPower = false
	assert.False(t, small.Matches(bear, noPT, state, "alice"))
}

func TestObjectFilter_ManaCostCriteria(t *testing.T) {
	state, bear := matchState()
	chars := BaseCharacteristics(bear)

	cheap := ObjectFilter{ManaValue: &Comparison{Op: CompareLessThanOrEqual, Value: 2}}
	assert.True(t, cheap.Matches(bear, chars, state, "alice"))

	pricey := ObjectFilter{ManaValue: &Comparison{Op: CompareGreaterThan, Value: 2}}
	assert.False(t, pricey.Matches(bear, chars, state, "alice"))

	hasCost := ObjectFilter{HasManaCost: true}
	assert.True(t, hasCost.Matches(bear, chars, state, "alice"))

	token := game.NewObject("Bear Token", "alice", game.ZoneBattlefield).
		WithCardTypes(game.CardTypeCreature).
		WithPT(2, 2).
		AsToken()
	state.AddObject(token)
	tokenChars := BaseCharacteristics(token)
	assert.False(t, hasCost.Matches(token, tokenChars, state, "alice"))

	tokensOnly := ObjectFilter{Token: true}
	assert.True(t, tokensOnly.Matches(token, tokenChars, state, "alice"))
	assert.False(t, tokensOnly.Matches(bear, chars, state, "alice"))

	nontoken := ObjectFilter{Nontoken: true}
	assert.False(t, nontoken.Matches(token, tokenChars, state, "alice"))
}

func TestObjectFilter_StatusCriteria(t *testing.T) {
	state, bear := matchState()
	chars := BaseCharacteristics(bear)

	tapped := ObjectFilter{Tapped: true}
	untapped := ObjectFilter{Untapped: true}
	assert.False(t, tapped.Matches(bear, chars, state, "alice"))
	assert.True(t, untapped.Matches(bear, chars, state, "alice"))

	state.Tap(bear.ID)
	assert.True(t, tapped.Matches(bear, chars, state, "alice"))
	assert.False(t, untapped.Matches(bear, chars, state, "alice"))

	faceDown := ObjectFilter{HasFaceDown: true, FaceDown: true}
	assert.False(t, faceDown.Matches(bear, chars, state, "alice"))
	state.SetFaceDown(bear.ID, true)
	assert.True(t, faceDown.Matches(bear, chars, state, "alice"))

	commander := ObjectFilter{IsCommander: true}
	assert.False(t, commander.Matches(bear, chars, state, "alice"))
	state.SetCommander(bear.ID)
	assert.True(t, commander.Matches(bear, chars, state, "alice"))
}

func TestObjectFilter_Name(t *testing.T) {
	state, bear := matchState()
	chars := BaseCharacteristics(bear)

	named := ObjectFilter{Name: "Grizzly Bears"}
	assert.True(t, named.Matches(bear, chars, state, "alice"))

	other := ObjectFilter{Name: "Llanowar Elves"}
	assert.False(t, other.Matches(bear, chars, state, "alice"))
}

func TestComparisonOps(t *testing.T) {
	assert.True(t, Comparison{Op: CompareEqual, Value: 3}.Satisfies(3))
	assert.True(t, Comparison{Op: CompareNotEqual, Value: 3}.Satisfies(4))
	assert.True(t, Comparison{Op: CompareLessThan, Value: 3}.Satisfies(2))
	assert.False(t, Comparison{Op: CompareLessThan, Value: 3}.Satisfies(3))
	assert.True(t, Comparison{Op: CompareLessThanOrEqual, Value: 3}.Satisfies(3))
	assert.True(t, Comparison{Op: CompareGreaterThan, Value: 3}.Satisfies(4))
	assert.True(t, Comparison{Op: CompareGreaterThanOrEqual, Value: 3}.Satisfies(3))
	assert.False(t, Comparison{Op: CompareOneOf, Values: []int{1, 2}}.Satisfies(3))
}
