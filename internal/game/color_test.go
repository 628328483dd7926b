package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorSet_Operations(t *testing.T) {
	azorius := NewColorSet(ColorWhite, ColorBlue)
	dimir := NewColorSet(ColorBlue, ColorBlack)

	assert.True(t, azorius.Contains(ColorWhite))
	assert.False(t, azorius.Contains(ColorBlack))

	assert.Equal(t, NewColorSet(ColorWhite, ColorBlue, ColorBlack), azorius.Union(dimir))
	assert.Equal(t, NewColorSet(ColorBlue), azorius.Intersection(dimir))
	assert.Equal(t, NewColorSet(ColorWhite), azorius.Without(dimir))

	assert.Equal(t, 2, azorius.Count())
	assert.Equal(t, 5, AllColors.Count())
	assert.True(t, Colorless.IsEmpty())
}

func TestColorSet_String(t *testing.T) {
	assert.Equal(t, "colorless", Colorless.String())
	assert.Equal(t, "G", NewColorSet(ColorGreen).String())
	// WUBRG order regardless of construction order.
	assert.Equal(t, "WUBRG", NewColorSet(ColorGreen, ColorRed, ColorBlack, ColorBlue, ColorWhite).String())
}

func TestAbility_Signature(t *testing.T) {
	flying := NewStaticAbility(Flying())
	alsoFlying := NewStaticAbility(StaticAbility{ID: StaticFlying})
	tap := NewManaAbility("{T}", "Add {G}.")

	assert.Equal(t, flying.Signature(), alsoFlying.Signature())
	assert.NotEqual(t, flying.Signature(), tap.Signature())

	proWhite := NewStaticAbility(ProtectionFromColors(NewColorSet(ColorWhite)))
	proBlack := NewStaticAbility(ProtectionFromColors(NewColorSet(ColorBlack)))
	assert.NotEqual(t, proWhite.Signature(), proBlack.Signature())
}

func TestStaticAbility_IsProtectionFromColor(t *testing.T) {
	assert.True(t, ProtectionFromColors(NewColorSet(ColorRed)).IsProtectionFromColor())
	assert.False(t, Flying().IsProtectionFromColor())
	// Protection from artifacts etc. carries no colors.
	assert.False(t, StaticAbility{ID: StaticProtection}.IsProtectionFromColor())
}
