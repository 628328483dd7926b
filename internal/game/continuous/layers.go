package continuous

// Layer corresponds to the comprehensive rules layers for continuous effects.
// The order is fixed by the rules and is not configurable.
type Layer int

const (
	LayerCopy Layer = 1 + iota
	LayerControl
	LayerText
	LayerType
	LayerColor
	LayerAbility
	LayerPowerToughness
)

var layerOrder = []Layer{
	LayerCopy,
	LayerControl,
	LayerText,
	LayerType,
	LayerColor,
	LayerAbility,
	LayerPowerToughness,
}

func (l Layer) String() string {
	switch l {
	case LayerCopy:
		return "copy"
	case LayerControl:
		return "control"
	case LayerText:
		return "text"
	case LayerType:
		return "type"
	case LayerColor:
		return "color"
	case LayerAbility:
		return "ability"
	case LayerPowerToughness:
		return "power/toughness"
	}
	return "unknown"
}

// Sublayer is the fixed sub-ordering within the power/toughness layer.
type Sublayer int

const (
	SublayerCharacteristicDefining Sublayer = 1 + iota
	SublayerSetting
	SublayerModifying
	SublayerCounters
	SublayerSwitching
)

var sublayerOrder = []Sublayer{
	SublayerCharacteristicDefining,
	SublayerSetting,
	SublayerModifying,
	SublayerCounters,
	SublayerSwitching,
}

func (s Sublayer) String() string {
	switch s {
	case SublayerCharacteristicDefining:
		return "characteristic-defining"
	case SublayerSetting:
		return "setting"
	case SublayerModifying:
		return "modifying"
	case SublayerCounters:
		return "counters"
	case SublayerSwitching:
		return "switching"
	}
	return "unknown"
}

// LayerOf maps a modification to the rules layer it applies in. It is the
// single source of truth for layer classification; every modification variant
// has exactly one layer.
func LayerOf(m Modification) Layer {
	switch m.(type) {
	case ChangeController:
		return LayerControl
	case Rename:
		return LayerText
	case AddCardTypes, RemoveCardTypes, SetCardTypes,
		AddSubtypes, RemoveSubtypes, SetSubtypes, RemoveAllCreatureTypes,
		AddSupertypes, RemoveSupertypes, SetSupertypes:
		return LayerType
	case AddColors, RemoveColors, SetColors, MakeColorless:
		return LayerColor
	case AddAbility, AddAbilityGeneric, RemoveAbility, RemoveAllAbilities,
		CopyActivatedAbilities:
		return LayerAbility
	case SetPower, SetToughness, SetPowerToughness,
		ModifyPower, ModifyToughness, ModifyPowerToughness,
		SwitchPowerToughness:
		return LayerPowerToughness
	}
	// Unmodeled modification shapes degrade to the final layer rather than
	// failing the computation.
	return LayerPowerToughness
}

// SublayerOf maps a power/toughness modification to its sublayer. The second
// return value is false for modifications outside the power/toughness layer.
func SublayerOf(m Modification) (Sublayer, bool) {
	switch mod := m.(type) {
	case SetPower:
		return mod.Sublayer, true
	case SetToughness:
		return mod.Sublayer, true
	case SetPowerToughness:
		return mod.Sublayer, true
	case ModifyPower, ModifyToughness, ModifyPowerToughness:
		return SublayerModifying, true
	case SwitchPowerToughness:
		return SublayerSwitching, true
	}
	return 0, false
}
