package game

import "strings"

// Color is a single mana color.
type Color uint8

const (
	ColorWhite Color = 1 << iota
	ColorBlue
	ColorBlack
	ColorRed
	ColorGreen
)

// ColorSet is a set of colors stored as a bitmask. The zero value is colorless.
type ColorSet uint8

// Colorless is the empty color set.
const Colorless ColorSet = 0

// AllColors contains all five colors.
const AllColors = ColorSet(ColorWhite | ColorBlue | ColorBlack | ColorRed | ColorGreen)

// NewColorSet builds a set from individual colors.
func NewColorSet(colors ...Color) ColorSet {
	var set ColorSet
	for _, c := range colors {
		set |= ColorSet(c)
	}
	return set
}

// Contains reports whether the set includes the color.
func (s ColorSet) Contains(c Color) bool {
	return s&ColorSet(c) != 0
}

// Union returns the combination of both sets.
func (s ColorSet) Union(other ColorSet) ColorSet {
	return s | other
}

// Without returns the set with the given colors removed.
func (s ColorSet) Without(other ColorSet) ColorSet {
	return s &^ other
}

// Intersection returns the colors present in both sets.
func (s ColorSet) Intersection(other ColorSet) ColorSet {
	return s & other
}

// IsEmpty reports whether the set is colorless.
func (s ColorSet) IsEmpty() bool {
	return s == 0
}

// Count returns the number of colors in the set.
func (s ColorSet) Count() int {
	n := 0
	for c := ColorSet(ColorWhite); c <= ColorSet(ColorGreen); c <<= 1 {
		if s&c != 0 {
			n++
		}
	}
	return n
}

// String renders the set in WUBRG order, or "colorless" for the empty set.
func (s ColorSet) String() string {
	if s.IsEmpty() {
		return "colorless"
	}
	var b strings.Builder
	for _, e := range [...]struct {
		color  Color
		letter string
	}{
		{ColorWhite, "W"},
		{ColorBlue, "U"},
		{ColorBlack, "B"},
		{ColorRed, "R"},
		{ColorGreen, "G"},
	} {
		if s.Contains(e.color) {
			b.WriteString(e.letter)
		}
	}
	return b.String()
}
