package continuous

import (
	"sort"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/magefree/mage-layers-go/internal/game"
)

// SourceType classifies where an effect comes from. It drives two rules:
// characteristic-defining abilities only form dependencies with each other,
// and resolution effects keep applying to the targets they locked in even if
// those targets would no longer be chosen.
type SourceType int

const (
	SourceStaticAbility SourceType = iota
	SourceCharacteristicDefining
	SourceResolution
)

func (s SourceType) String() string {
	switch s {
	case SourceStaticAbility:
		return "static"
	case SourceCharacteristicDefining:
		return "characteristic-defining"
	case SourceResolution:
		return "resolution"
	}
	return "unknown"
}

// Duration controls when the manager expires an effect.
type Duration string

const (
	DurationPermanent          Duration = "Permanent"
	DurationEndOfTurn          Duration = "EndOfTurn"
	DurationWhileOnBattlefield Duration = "WhileOnBattlefield"
)

// EffectTarget says which objects an effect applies to. The applicability
// check reads calculated characteristics, so earlier layers feed later ones.
type EffectTarget interface {
	isEffectTarget()
}

// TargetSpecific applies to exactly one object.
type TargetSpecific struct{ ID game.ObjectID }

// TargetSource applies to the effect's own source.
type TargetSource struct{}

// TargetAllPermanents applies to everything on the battlefield.
type TargetAllPermanents struct{}

// TargetAllCreatures applies to every creature on the battlefield, judged by
// calculated card types.
type TargetAllCreatures struct{}

// TargetFilter applies to objects matching the filter.
type TargetFilter struct{ Filter ObjectFilter }

// TargetAttachedTo applies to the creature the given object is attached to.
type TargetAttachedTo struct{ Source game.ObjectID }

func (TargetSpecific) isEffectTarget()      {}
func (TargetSource) isEffectTarget()        {}
func (TargetAllPermanents) isEffectTarget() {}
func (TargetAllCreatures) isEffectTarget()  {}
func (TargetFilter) isEffectTarget()        {}
func (TargetAttachedTo) isEffectTarget()    {}

// Condition optionally gates an effect. An effect with an unmet condition is
// skipped for the whole pipeline run, including dependency analysis.
type Condition interface {
	isCondition()
}

// ConditionSourceTapped holds while the effect's source is tapped.
type ConditionSourceTapped struct{}

// ConditionSourceEquipped holds while an Equipment is attached to the
// effect's source.
type ConditionSourceEquipped struct{}

// ConditionControlsPermanent holds while the effect's controller controls a
// permanent matching the filter (judged by base characteristics).
type ConditionControlsPermanent struct{ Filter ObjectFilter }

// ConditionOwnsCardExiledWithCounter holds while a card owned by the effect's
// controller sits in exile carrying the named counter.
type ConditionOwnsCardExiledWithCounter struct{ CounterName string }

func (ConditionSourceTapped) isCondition()              {}
func (ConditionSourceEquipped) isCondition()            {}
func (ConditionControlsPermanent) isCondition()         {}
func (ConditionOwnsCardExiledWithCounter) isCondition() {}

// ContinuousEffect is one continuous effect tracked by the manager.
type ContinuousEffect struct {
	ID           string
	Source       game.ObjectID
	Controller   game.PlayerID
	AppliesTo    EffectTarget
	Modification Modification
	Timestamp    uint64
	Duration     Duration
	Condition    Condition // nil means always active
	SourceType   SourceType

	// LockedTargets pins a resolution effect to the objects it chose when it
	// resolved. Objects that have since left play are skipped, but the set is
	// never re-evaluated.
	LockedTargets []game.ObjectID
}

// IsCharacteristicDefining reports whether the effect comes from a CDA.
func (e *ContinuousEffect) IsCharacteristicDefining() bool {
	return e.SourceType == SourceCharacteristicDefining
}

// Manager owns the set of continuous effects and the timestamp clock.
// Timestamps are a single monotonically increasing sequence shared by effects
// and battlefield entries, so "older" is always well defined across both.
type Manager struct {
	mu     sync.Mutex
	logger *zap.Logger

	clock   uint64
	effects []*ContinuousEffect

	// entryTimestamps records when each object entered the battlefield.
	// Effects from a permanent's own static abilities share its entry
	// timestamp rather than getting fresh ones.
	entryTimestamps map[game.ObjectID]uint64

	// staticEffects tracks which effects were generated from a given source's
	// static abilities, so regeneration replaces instead of accumulating.
	staticEffects map[game.ObjectID][]string
}

// NewManager creates an empty effect manager.
func NewManager(logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		logger:          logger,
		entryTimestamps: make(map[game.ObjectID]uint64),
		staticEffects:   make(map[game.ObjectID][]string),
	}
}

// NextTimestamp advances and returns the shared timestamp clock.
func (m *Manager) NextTimestamp() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.nextTimestampLocked()
}

func (m *Manager) nextTimestampLocked() uint64 {
	m.clock++
	return m.clock
}

// RecordBattlefieldEntry stamps an object's battlefield entry. Re-entering
// gets a new, later timestamp.
func (m *Manager) RecordBattlefieldEntry(id game.ObjectID) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	ts := m.nextTimestampLocked()
	m.entryTimestamps[id] = ts
	m.logger.Debug("battlefield entry",
		zap.String("object", string(id)),
		zap.Uint64("timestamp", ts))
	return ts
}

// EntryTimestamp returns the object's battlefield entry timestamp.
func (m *Manager) EntryTimestamp(id game.ObjectID) (uint64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ts, ok := m.entryTimestamps[id]
	return ts, ok
}

// AddEffect registers an effect. A zero ID gets a generated one and a zero
// timestamp gets the next clock value; both are returned via the effect.
func (m *Manager) AddEffect(effect *ContinuousEffect) {
	if effect == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.addEffectLocked(effect)
}

func (m *Manager) addEffectLocked(effect *ContinuousEffect) {
	if effect.ID == "" {
		effect.ID = uuid.NewString()
	}
	if effect.Timestamp == 0 {
		effect.Timestamp = m.nextTimestampLocked()
	}
	m.effects = append(m.effects, effect)
	m.logger.Debug("effect added",
		zap.String("effect", effect.ID),
		zap.String("source", string(effect.Source)),
		zap.Uint64("timestamp", effect.Timestamp),
		zap.String("layer", LayerOf(effect.Modification).String()))
}

// RemoveEffect drops an effect by ID.
func (m *Manager) RemoveEffect(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removeLocked(func(e *ContinuousEffect) bool { return e.ID == id })
}

// RemoveEffectsFromSource drops every effect generated by the given source.
func (m *Manager) RemoveEffectsFromSource(source game.ObjectID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removeLocked(func(e *ContinuousEffect) bool { return e.Source == source })
	delete(m.staticEffects, source)
}

// EndTurn expires every end-of-turn effect.
func (m *Manager) EndTurn() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removeLocked(func(e *ContinuousEffect) bool { return e.Duration == DurationEndOfTurn })
}

func (m *Manager) removeLocked(drop func(*ContinuousEffect) bool) {
	kept := m.effects[:0]
	for _, e := range m.effects {
		if drop(e) {
			m.logger.Debug("effect removed", zap.String("effect", e.ID))
			continue
		}
		kept = append(kept, e)
	}
	m.effects = kept
}

// SetStaticAbilityEffects replaces the effects generated from one source's
// static abilities. Each effect inherits the source's battlefield entry
// timestamp: a static ability's effect is as old as the permanent carrying
// it, not as old as the moment it was last recomputed.
func (m *Manager) SetStaticAbilityEffects(source game.ObjectID, effects []*ContinuousEffect) {
	m.mu.Lock()
	defer m.mu.Unlock()

	old := m.staticEffects[source]
	if len(old) > 0 {
		drop := make(map[string]bool, len(old))
		for _, id := range old {
			drop[id] = true
		}
		m.removeLocked(func(e *ContinuousEffect) bool { return drop[e.ID] })
	}

	entryTS, hasEntry := m.entryTimestamps[source]
	ids := make([]string, 0, len(effects))
	for _, effect := range effects {
		if effect == nil {
			continue
		}
		effect.Source = source
		if hasEntry {
			effect.Timestamp = entryTS
		}
		m.addEffectLocked(effect)
		ids = append(ids, effect.ID)
	}
	m.staticEffects[source] = ids
}

// All returns the tracked effects sorted by timestamp, then by ID for
// stability between equal timestamps.
func (m *Manager) All() []*ContinuousEffect {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := append([]*ContinuousEffect(nil), m.effects...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Timestamp != out[j].Timestamp {
			return out[i].Timestamp < out[j].Timestamp
		}
		return out[i].ID < out[j].ID
	})
	return out
}
