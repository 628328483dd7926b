package mana

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ManaType represents a type of mana.
type ManaType string

const (
	ManaWhite     ManaType = "WHITE"
	ManaBlue      ManaType = "BLUE"
	ManaBlack     ManaType = "BLACK"
	ManaRed       ManaType = "RED"
	ManaGreen     ManaType = "GREEN"
	ManaColorless ManaType = "COLORLESS"
	ManaGeneric   ManaType = "GENERIC" // Generic mana can be paid with any type
)

// ManaCost represents a parsed mana cost.
type ManaCost struct {
	Generic   int
	White     int
	Blue      int
	Black     int
	Red       int
	Green     int
	Colorless int
	X         bool // X in cost (e.g., {X}{R})
	Hybrid    []HybridCost
}

// HybridCost represents a hybrid mana cost (e.g., {W/U}, {2/B}).
type HybridCost struct {
	Options [][]ManaType // Each option is a list of mana types that can pay for it
}

// ParseCost parses a mana cost string (e.g., "{1}{G}", "{2}{R}{R}", "{X}{R}").
// Supports:
// - Generic: {1}, {2}, {3}, etc.
// - Colored: {W}, {U}, {B}, {R}, {G}, {C}
// - X costs: {X}
// - Hybrid: {W/U}, {2/B}, etc. (basic support)
func ParseCost(costStr string) (*ManaCost, error) {
	if costStr == "" {
		return &ManaCost{}, nil
	}

	cost := &ManaCost{}

	// Pattern to match mana symbols: {1}, {G}, {X}, {W/U}, etc.
	pattern := regexp.MustCompile(`\{([^}]+)\}`)
	matches := pattern.FindAllStringSubmatch(costStr, -1)

	for _, match := range matches {
		if len(match) < 2 {
			continue
		}
		symbol := strings.ToUpper(strings.TrimSpace(match[1]))

		switch symbol {
		case "X":
			cost.X = true
		case "W":
			cost.White++
		case "U":
			cost.Blue++
		case "B":
			cost.Black++
		case "R":
			cost.Red++
		case "G":
			cost.Green++
		case "C":
			cost.Colorless++
		default:
			// Check if it's a number (generic mana)
			if num, err := strconv.Atoi(symbol); err == nil {
				cost.Generic += num
			} else if strings.Contains(symbol, "/") {
				// Hybrid mana: {W/U}, {2/B}, etc.
				hybrid := parseHybridCost(symbol)
				if hybrid != nil {
					cost.Hybrid = append(cost.Hybrid, *hybrid)
				}
			} else {
				return nil, fmt.Errorf("unknown mana symbol: {%s}", symbol)
			}
		}
	}

	return cost, nil
}

// parseHybridCost parses a hybrid mana symbol like "W/U" or "2/B".
func parseHybridCost(symbol string) *HybridCost {
	parts := strings.Split(symbol, "/")
	if len(parts) != 2 {
		return nil
	}

	left := strings.ToUpper(strings.TrimSpace(parts[0]))
	right := strings.ToUpper(strings.TrimSpace(parts[1]))

	hybrid := &HybridCost{Options: [][]ManaType{}}

	leftTypes := parseManaTypes(left)
	rightTypes := parseManaTypes(right)

	// Each option can be paid with either left or right
	if len(leftTypes) > 0 {
		hybrid.Options = append(hybrid.Options, leftTypes)
	}
	if len(rightTypes) > 0 {
		hybrid.Options = append(hybrid.Options, rightTypes)
	}

	return hybrid
}

// parseManaTypes parses a mana type string (e.g., "W", "2", "B").
func parseManaTypes(s string) []ManaType {
	var types []ManaType

	switch s {
	case "W":
		types = append(types, ManaWhite)
	case "U":
		types = append(types, ManaBlue)
	case "B":
		types = append(types, ManaBlack)
	case "R":
		types = append(types, ManaRed)
	case "G":
		types = append(types, ManaGreen)
	case "C":
		types = append(types, ManaColorless)
	default:
		// If it's a number, it can be paid with generic mana
		if num, err := strconv.Atoi(s); err == nil && num > 0 {
			// Generic mana can be paid with any type
			types = append(types, ManaGeneric)
		}
	}

	return types
}

// String returns a string representation of the mana cost.
func (mc *ManaCost) String() string {
	var parts []string

	if mc.X {
		parts = append(parts, "{X}")
	}
	if mc.Generic > 0 {
		parts = append(parts, fmt.Sprintf("{%d}", mc.Generic))
	}
	for i := 0; i < mc.White; i++ {
		parts = append(parts, "{W}")
	}
	for i := 0; i < mc.Blue; i++ {
		parts = append(parts, "{U}")
	}
	for i := 0; i < mc.Black; i++ {
		parts = append(parts, "{B}")
	}
	for i := 0; i < mc.Red; i++ {
		parts = append(parts, "{R}")
	}
	for i := 0; i < mc.Green; i++ {
		parts = append(parts, "{G}")
	}
	for i := 0; i < mc.Colorless; i++ {
		parts = append(parts, "{C}")
	}

	for _, hybrid := range mc.Hybrid {
		// Simple representation - full implementation would show both options
		if len(hybrid.Options) > 0 && len(hybrid.Options[0]) > 0 {
			parts = append(parts, fmt.Sprintf("{%s}", hybrid.Options[0][0]))
		}
	}

	return strings.Join(parts, "")
}

// Value returns the mana value (converted mana cost). X counts as zero;
// hybrid symbols count as one.
func (mc *ManaCost) Value() int {
	return mc.Generic + mc.White + mc.Blue + mc.Black + mc.Red + mc.Green +
		mc.Colorless + len(mc.Hybrid)
}

// IsEmpty reports whether the cost has no symbols at all.
func (mc *ManaCost) IsEmpty() bool {
	return !mc.X && mc.Value() == 0
}

// HasX reports whether the cost contains an {X} symbol.
func (mc *ManaCost) HasX() bool {
	return mc.X
}
