package game

// State is the snapshot of object and zone state the characteristic engine
// reads. It is owned by the surrounding game-state subsystem; nothing in the
// continuous effect engine mutates it.
type State struct {
	Objects     map[ObjectID]*Object
	Battlefield []ObjectID

	// CreaturesDiedThisTurn backs "creatures that died this turn" values.
	CreaturesDiedThisTurn int

	tapped     map[ObjectID]bool
	faceDown   map[ObjectID]bool
	commanders map[ObjectID]bool
}

// NewState creates an empty state.
func NewState() *State {
	return &State{
		Objects:    make(map[ObjectID]*Object),
		tapped:     make(map[ObjectID]bool),
		faceDown:   make(map[ObjectID]bool),
		commanders: make(map[ObjectID]bool),
	}
}

// AddObject registers an object, appending it to the battlefield list when
// its zone is the battlefield.
func (s *State) AddObject(obj *Object) {
	if obj == nil {
		return
	}
	s.Objects[obj.ID] = obj
	if obj.Zone == ZoneBattlefield {
		s.Battlefield = append(s.Battlefield, obj.ID)
	}
}

// Object looks up an object by ID.
func (s *State) Object(id ObjectID) (*Object, bool) {
	obj, ok := s.Objects[id]
	return obj, ok
}

// Tap marks an object tapped.
func (s *State) Tap(id ObjectID) { s.tapped[id] = true }

// Untap clears an object's tapped state.
func (s *State) Untap(id ObjectID) { delete(s.tapped, id) }

// IsTapped reports whether an object is tapped.
func (s *State) IsTapped(id ObjectID) bool { return s.tapped[id] }

// SetFaceDown sets an object's face-down state.
func (s *State) SetFaceDown(id ObjectID, down bool) {
	if down {
		s.faceDown[id] = true
	} else {
		delete(s.faceDown, id)
	}
}

// IsFaceDown reports whether an object is face down.
func (s *State) IsFaceDown(id ObjectID) bool { return s.faceDown[id] }

// SetCommander marks an object as a commander.
func (s *State) SetCommander(id ObjectID) { s.commanders[id] = true }

// IsCommander reports whether an object is a commander.
func (s *State) IsCommander(id ObjectID) bool { return s.commanders[id] }

// IsAttachedTo reports whether attachment is recorded as attached to host.
func (s *State) IsAttachedTo(attachment, host ObjectID) bool {
	obj, ok := s.Objects[attachment]
	return ok && obj.AttachedTo == host
}
