package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewObject_Defaults(t *testing.T) {
	obj := NewObject("Grizzly Bears", "alice", ZoneBattlefield)

	assert.NotEmpty(t, obj.ID)
	assert.Equal(t, PlayerID("alice"), obj.Controller)
	assert.Equal(t, PlayerID("alice"), obj.Owner)
	assert.Equal(t, ObjectCard, obj.Kind)
	assert.False(t, obj.HasBasePower)
	require.NotNil(t, obj.Counters)
}

func TestObject_BuilderChain(t *testing.T) {
	obj := NewObject("Grizzly Bears", "alice", ZoneBattlefield).
		WithCardTypes(CardTypeCreature).
		WithSubtypes(SubtypeBear).
		WithPT(2, 2).
		WithColors(NewColorSet(ColorGreen)).
		WithManaCost("{1}{G}")

	assert.True(t, obj.HasCardType(CardTypeCreature))
	assert.False(t, obj.HasCardType(CardTypeLand))
	require.True(t, obj.HasBasePower)
	assert.Equal(t, 2, obj.BasePower)
	assert.Equal(t, 2, obj.ManaValue())
	assert.True(t, obj.Colors.Contains(ColorGreen))
}

func TestObject_ManaValueWithoutCost(t *testing.T) {
	obj := NewObject("Forest", "alice", ZoneBattlefield).
		WithCardTypes(CardTypeLand)

	assert.Nil(t, obj.ManaCost)
	assert.Equal(t, 0, obj.ManaValue())
}

func TestObject_AsToken(t *testing.T) {
	obj := NewObject("Saproling", "alice", ZoneBattlefield).AsToken()

	assert.Equal(t, ObjectToken, obj.Kind)
}

func TestState_AddAndLookup(t *testing.T) {
	state := NewState()
	bear := NewObject("Grizzly Bears", "alice", ZoneBattlefield).
		WithCardTypes(CardTypeCreature)
	handCard := NewObject("Lightning Bolt", "alice", ZoneHand).
		WithCardTypes(CardTypeInstant)
	state.AddObject(bear)
	state.AddObject(handCard)

	found, ok := state.Object(bear.ID)
	require.True(t, ok)
	assert.Equal(t, bear, found)

	// Only battlefield objects join the battlefield list.
	assert.Equal(t, []ObjectID{bear.ID}, state.Battlefield)
}

func TestState_TappedAndFaceDown(t *testing.T) {
	state := NewState()
	bear := NewObject("Grizzly Bears", "alice", ZoneBattlefield)
	state.AddObject(bear)

	assert.False(t, state.IsTapped(bear.ID))
	state.Tap(bear.ID)
	assert.True(t, state.IsTapped(bear.ID))
	state.Untap(bear.ID)
	assert.False(t, state.IsTapped(bear.ID))

	state.SetFaceDown(bear.ID, true)
	assert.True(t, state.IsFaceDown(bear.ID))
	state.SetFaceDown(bear.ID, false)
	assert.False(t, state.IsFaceDown(bear.ID))
}

func TestState_Attachment(t *testing.T) {
	state := NewState()
	bear := NewObject("Grizzly Bears", "alice", ZoneBattlefield)
	sword := NewObject("Short Sword", "alice", ZoneBattlefield).
		WithCardTypes(CardTypeArtifact).
		WithSubtypes(SubtypeEquipment)
	sword.AttachedTo = bear.ID
	state.AddObject(bear)
	state.AddObject(sword)

	assert.True(t, state.IsAttachedTo(sword.ID, bear.ID))
	assert.False(t, state.IsAttachedTo(bear.ID, sword.ID))
}
