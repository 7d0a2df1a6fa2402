package genrealmvoronoi

// Resources are the stockpiles a kingdom accrues over time.
type Resources struct {
	Gold int
	Mana int
	Food int
}

// Military is a kingdom's fighting capacity. Strength never goes
// negative; battle losses clamp at zero.
type Military struct {
	Strength  int
	Readiness float64 // 0..1
}

// Diplomacy tracks a kingdom's standing toward the other kingdoms.
type Diplomacy struct {
	Allies  []int
	Enemies []int
}

// KingdomState is the mutable runtime record of a kingdom. Updates
// replace whole sub-records, so a reader never observes a half-written
// resource or military block.
type KingdomState struct {
	Ruler     string
	Resources Resources
	Military  Military
	Diplomacy Diplomacy
}

// LocationCondition describes the state of a settlement site.
type LocationCondition int

const (
	LocationIntact LocationCondition = iota
	LocationDamaged
	LocationBesieged
	LocationRuined
)

func (c LocationCondition) String() string {
	switch c {
	case LocationIntact:
		return "intact"
	case LocationDamaged:
		return "damaged"
	case LocationBesieged:
		return "besieged"
	case LocationRuined:
		return "ruined"
	}
	return "unknown"
}

// LocationState is the mutable runtime record of a settlement.
type LocationState struct {
	Condition  LocationCondition
	Population int
	Defense    int
	Modifiers  []string
}

// State is one immutable snapshot of the full simulation state. Every
// action derives a new snapshot instead of mutating in place, so
// concurrent readers can hold on to a snapshot without locking.
type State struct {
	Kingdoms  map[int]*KingdomState
	Locations map[int]*LocationState
	Conflicts map[int]*ActiveConflict
}

func newState() *State {
	return &State{
		Kingdoms:  make(map[int]*KingdomState),
		Locations: make(map[int]*LocationState),
		Conflicts: make(map[int]*ActiveConflict),
	}
}

// withKingdom returns a new snapshot with the given kingdom record
// replaced. Unaffected maps are shared with the old snapshot.
func (s *State) withKingdom(id int, ks *KingdomState) *State {
	kingdoms := make(map[int]*KingdomState, len(s.Kingdoms))
	for k, v := range s.Kingdoms {
		kingdoms[k] = v
	}
	kingdoms[id] = ks
	return &State{Kingdoms: kingdoms, Locations: s.Locations, Conflicts: s.Conflicts}
}

// withLocation returns a new snapshot with the given location record
// replaced.
func (s *State) withLocation(id int, ls *LocationState) *State {
	locations := make(map[int]*LocationState, len(s.Locations))
	for k, v := range s.Locations {
		locations[k] = v
	}
	locations[id] = ls
	return &State{Kingdoms: s.Kingdoms, Locations: locations, Conflicts: s.Conflicts}
}

// withConflict returns a new snapshot with the given conflict record
// added or replaced. A nil conflict removes the entry instead.
func (s *State) withConflict(id int, c *ActiveConflict) *State {
	conflicts := make(map[int]*ActiveConflict, len(s.Conflicts))
	for k, v := range s.Conflicts {
		conflicts[k] = v
	}
	if c == nil {
		delete(conflicts, id)
	} else {
		conflicts[id] = c
	}
	return &State{Kingdoms: s.Kingdoms, Locations: s.Locations, Conflicts: conflicts}
}

// KingdomStateUpdate is a partial update to a kingdom record. Non-nil
// fields replace the corresponding sub-record whole.
type KingdomStateUpdate struct {
	Ruler     *string
	Resources *Resources
	Military  *Military
	Diplomacy *Diplomacy
}

// LocationStateUpdate is a partial update to a location record.
type LocationStateUpdate struct {
	Condition  *LocationCondition
	Population *int
	Defense    *int
	Modifiers  *[]string
}

// UpdateKingdomState applies a partial update to a kingdom's runtime
// record. Unknown ids are a silent no-op.
func (s *Sim) UpdateKingdomState(id int, up KingdomStateUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	old, ok := s.state.Kingdoms[id]
	if !ok {
		return
	}
	ks := *old
	if up.Ruler != nil {
		ks.Ruler = *up.Ruler
	}
	if up.Resources != nil {
		ks.Resources = *up.Resources
	}
	if up.Military != nil {
		ks.Military = *up.Military
	}
	if up.Diplomacy != nil {
		ks.Diplomacy = *up.Diplomacy
	}
	s.state = s.state.withKingdom(id, &ks)
}

// UpdateLocationState applies a partial update to a settlement's
// runtime record. Unknown ids are a silent no-op.
func (s *Sim) UpdateLocationState(id int, up LocationStateUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	old, ok := s.state.Locations[id]
	if !ok {
		return
	}
	ls := *old
	if up.Condition != nil {
		ls.Condition = *up.Condition
	}
	if up.Population != nil {
		ls.Population = *up.Population
	}
	if up.Defense != nil {
		ls.Defense = *up.Defense
	}
	if up.Modifiers != nil {
		ls.Modifiers = *up.Modifiers
	}
	s.state = s.state.withLocation(id, &ls)
}

// GetKingdomState returns the kingdom's runtime record from the
// current snapshot, or nil for an unknown id.
func (s *Sim) GetKingdomState(id int) *KingdomState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Kingdoms[id]
}

// GetLocationState returns the settlement's runtime record from the
// current snapshot, or nil for an unknown id.
func (s *Sim) GetLocationState(id int) *LocationState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Locations[id]
}

// Snapshot returns the current state snapshot. The snapshot is
// immutable; later actions swap in fresh snapshots instead of
// touching it.
func (s *Sim) Snapshot() *State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}
