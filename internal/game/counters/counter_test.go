package counters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters_AddAndRemove(t *testing.T) {
	cs := NewCounters()
	cs.Add("+1/+1", 2)
	cs.Add("+1/+1", 1)

	assert.Equal(t, 3, cs.GetCount("+1/+1"))
	assert.True(t, cs.HasCounter("+1/+1"))

	removed := cs.RemoveCounter("+1/+1", 2)
	assert.True(t, removed)
	assert.Equal(t, 1, cs.GetCount("+1/+1"))

	// Removing past zero deletes the counter entirely.
	cs.RemoveCounter("+1/+1", 5)
	assert.False(t, cs.HasCounter("+1/+1"))
	assert.False(t, cs.RemoveCounter("+1/+1", 1))
}

func TestCounters_GetBoostCounters(t *testing.T) {
	cs := NewCounters()
	cs.Add("+1/+1", 2)
	cs.Add("-1/-1", 1)
	cs.Add("charge", 3)

	boosts := cs.GetBoostCounters()
	require.Len(t, boosts, 2)

	byName := make(map[string]*BoostCounter)
	for _, b := range boosts {
		byName[b.Name] = b
	}
	require.Contains(t, byName, "+1/+1")
	assert.Equal(t, 1, byName["+1/+1"].Power)
	assert.Equal(t, 1, byName["+1/+1"].Toughness)
	assert.Equal(t, 2, byName["+1/+1"].Count)
	require.Contains(t, byName, "-1/-1")
	assert.Equal(t, -1, byName["-1/-1"].Power)
}

func TestNewBoostCounter_Name(t *testing.T) {
	assert.Equal(t, "+1/+1", NewBoostCounter(1, 1, 1).Name)
	assert.Equal(t, "-1/-1", NewBoostCounter(-1, -1, 1).Name)
	assert.Equal(t, "0/+1", NewBoostCounter(0, 1, 1).Name)
}

func TestCounters_Copy(t *testing.T) {
	cs := NewCounters()
	cs.Add("charge", 2)

	clone := cs.Copy()
	clone.Add("charge", 3)

	assert.Equal(t, 2, cs.GetCount("charge"))
	assert.Equal(t, 5, clone.GetCount("charge"))
}
