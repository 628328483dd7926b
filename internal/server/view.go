package server

import (
	"sort"
	"strconv"
	"strings"

	"github.com/magefree/mage-layers-go/internal/game"
	"github.com/magefree/mage-layers-go/internal/game/continuous"
)

// ObjectView is the wire representation of one object's calculated
// characteristics.
type ObjectView struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Type       string   `json:"type"`
	Colors     string   `json:"colors"`
	Power      string   `json:"power,omitempty"`
	Toughness  string   `json:"toughness,omitempty"`
	Zone       string   `json:"zone"`
	Tapped     bool     `json:"tapped"`
	Controller string   `json:"controller"`
	Owner      string   `json:"owner"`
	Abilities  []string `json:"abilities"`
}

// SnapshotView is one full computed-characteristics broadcast.
type SnapshotView struct {
	Battlefield []ObjectView `json:"battlefield"`
	Effects     int          `json:"effects"`
}

// BuildSnapshot runs the pipeline and renders every battlefield object.
func BuildSnapshot(
	state *game.State,
	manager *continuous.Manager,
	pipeline *continuous.Pipeline,
) SnapshotView {
	effects := manager.All()
	result := pipeline.ComputeAll(state, effects)

	var views []ObjectView
	for id, obj := range state.Objects {
		if obj.Zone != game.ZoneBattlefield {
			continue
		}
		chars := result[id]
		if chars == nil {
			continue
		}
		views = append(views, objectView(obj, chars, state))
	}
	sort.Slice(views, func(i, j int) bool { return views[i].Name < views[j].Name })

	return SnapshotView{Battlefield: views, Effects: len(effects)}
}

func objectView(obj *game.Object, chars *continuous.Characteristics, state *game.State) ObjectView {
	view := ObjectView{
		ID:         string(obj.ID),
		Name:       chars.Name,
		Type:       typeLine(chars),
		Colors:     chars.Colors.String(),
		Zone:       string(obj.Zone),
		Tapped:     state.IsTapped(obj.ID),
		Controller: string(chars.Controller),
		Owner:      string(obj.Owner),
		Abilities:  abilityTexts(chars),
	}
	if chars.HasPower {
		view.Power = strconv.Itoa(chars.Power)
	}
	if chars.HasToughness {
		view.Toughness = strconv.Itoa(chars.Toughness)
	}
	return view
}

func typeLine(chars *continuous.Characteristics) string {
	var parts []string
	for _, st := range chars.Supertypes {
		parts = append(parts, string(st))
	}
	for _, ct := range chars.CardTypes {
		parts = append(parts, string(ct))
	}
	line := strings.Join(parts, " ")
	if len(chars.Subtypes) > 0 {
		subs := make([]string, len(chars.Subtypes))
		for i, st := range chars.Subtypes {
			subs[i] = string(st)
		}
		line += " — " + strings.Join(subs, " ")
	}
	return line
}

func abilityTexts(chars *continuous.Characteristics) []string {
	texts := make([]string, 0, len(chars.Abilities))
	for _, ab := range chars.Abilities {
		switch ab.Kind {
		case game.AbilityStatic:
			texts = append(texts, string(ab.Static.ID))
		case game.AbilityActivated, game.AbilityMana:
			texts = append(texts, ab.Cost+": "+ab.Text)
		default:
			texts = append(texts, ab.Text)
		}
	}
	return texts
}
