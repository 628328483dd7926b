package counters

// CounterType represents a type of counter.
type CounterType string

const (
	// Player counter types
	CounterTypeLoyalty    CounterType = "loyalty"
	CounterTypePoison     CounterType = "poison"
	CounterTypeEnergy     CounterType = "energy"
	CounterTypeExperience CounterType = "experience"

	// Power/toughness boost counters
	CounterTypeP1P1 CounterType = "+1/+1"
	CounterTypeM1M1 CounterType = "-1/-1"
	CounterTypeP2P2 CounterType = "+2/+2"
	CounterTypeM2M2 CounterType = "-2/-2"
	CounterTypeP1P0 CounterType = "+1/+0"
	CounterTypeP0P1 CounterType = "+0/+1"

	// Other common counter types
	CounterTypeAge     CounterType = "age"
	CounterTypeBrick   CounterType = "brick"
	CounterTypeCharge  CounterType = "charge"
	CounterTypeFade    CounterType = "fade"
	CounterTypeLore    CounterType = "lore"
	CounterTypePetrify CounterType = "petrification"
	CounterTypeQuest   CounterType = "quest"
	CounterTypeSpore   CounterType = "spore"
	CounterTypeStorage CounterType = "storage"
	CounterTypeStun    CounterType = "stun"
	CounterTypeTime    CounterType = "time"
	CounterTypeVerse   CounterType = "verse"
)
