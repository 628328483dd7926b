package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magefree/mage-layers-go/internal/game"
	"github.com/magefree/mage-layers-go/internal/game/continuous"
)

func TestBuildSnapshot_ReflectsComputedCharacteristics(t *testing.T) {
	state := game.NewState()
	bear := game.NewObject("Grizzly Bears", "alice", game.ZoneBattlefield).
		WithCardTypes(game.CardTypeCreature).
		WithSubtypes(game.SubtypeBear).
		WithPT(2, 2).
		WithColors(game.NewColorSet(game.ColorGreen))
	state.AddObject(bear)

	anthemSource := game.NewObject("Glorious Anthem", "alice", game.ZoneBattlefield).
		WithCardTypes(game.CardTypeEnchantment).
		WithColors(game.NewColorSet(game.ColorWhite))
	state.AddObject(anthemSource)

	manager := continuous.NewManager(nil)
	manager.RecordBattlefieldEntry(bear.ID)
	manager.RecordBattlefieldEntry(anthemSource.ID)
	manager.SetStaticAbilityEffects(anthemSource.ID, []*continuous.ContinuousEffect{
		continuous.NewAnthem(anthemSource.ID, "alice",
			continuous.CreatureFilter().ControlledBy(), 1, 1),
	})

	snapshot := BuildSnapshot(state, manager, continuous.NewPipeline(nil))

	require.Len(t, snapshot.Battlefield, 2)
	assert.Equal(t, 1, snapshot.Effects)

	var bearView *ObjectView
	for i := range snapshot.Battlefield {
		if snapshot.Battlefield[i].Name == "Grizzly Bears" {
			bearView = &snapshot.Battlefield[i]
		}
	}
	require.NotNil(t, bearView)
	assert.Equal(t, "3", bearView.Power)
	assert.Equal(t, "3", bearView.Toughness)
	assert.Equal(t, "Creature — Bear", bearView.Type)
	assert.Equal(t, "G", bearView.Colors)
}

func TestBuildSnapshot_SkipsNonBattlefieldObjects(t *testing.T) {
	state := game.NewState()
	handCard := game.NewObject("Lightning Bolt", "alice", game.ZoneHand).
		WithCardTypes(game.CardTypeInstant)
	state.AddObject(handCard)

	snapshot := BuildSnapshot(state, continuous.NewManager(nil), continuous.NewPipeline(nil))

	assert.Empty(t, snapshot.Battlefield)
	assert.Equal(t, 0, snapshot.Effects)
}
