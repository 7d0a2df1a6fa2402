package genrealmvoronoi

import (
	"log"
)

// ConflictStatus is the state machine of an active conflict.
type ConflictStatus int

const (
	ConflictPending ConflictStatus = iota
	ConflictAttackerWinning
	ConflictDefenderWinning
	ConflictStalemate
	ConflictResolved
)

func (s ConflictStatus) String() string {
	switch s {
	case ConflictPending:
		return "pending"
	case ConflictAttackerWinning:
		return "attacker winning"
	case ConflictDefenderWinning:
		return "defender winning"
	case ConflictStalemate:
		return "stalemate"
	case ConflictResolved:
		return "resolved"
	}
	return "unknown"
}

// ConflictOutcome tags a forced resolution.
type ConflictOutcome int

const (
	OutcomeNone ConflictOutcome = iota
	OutcomeAttackerVictory
	OutcomeDefenderVictory
	OutcomeRetreat
)

func (o ConflictOutcome) String() string {
	switch o {
	case OutcomeAttackerVictory:
		return "attacker victory"
	case OutcomeDefenderVictory:
		return "defender victory"
	case OutcomeRetreat:
		return "retreat"
	}
	return "none"
}

// Battle round classification thresholds on the effectiveness ratio.
const (
	attackerWinRatio = 1.3
	defenderWinRatio = 0.7
)

// ActiveConflict is a running conflict between two kingdoms over a set
// of contested cells. Strength snapshots track attrition within the
// conflict independent of the live kingdom records.
type ActiveConflict struct {
	ID               int
	Attacker         int
	Defender         int
	ContestedCells   []int
	StartTick        int
	Status           ConflictStatus
	AttackerStrength int
	DefenderStrength int
	Round            int
	PendingOutcome   ConflictOutcome
}

// isPair returns true if the conflict is between the given kingdoms,
// in either role assignment.
func (c *ActiveConflict) isPair(a, b int) bool {
	return (c.Attacker == a && c.Defender == b) || (c.Attacker == b && c.Defender == a)
}

// StartConflict opens a conflict between two kingdoms over the given
// cells. If the pair already has an active conflict, the cells are
// merged into it instead of opening a second front. Unknown kingdom
// ids are a silent no-op.
func (s *Sim) StartConflict(attacker, defender int, contestedCells []int) *ActiveConflict {
	s.mu.Lock()
	defer s.mu.Unlock()

	// A kingdom cannot attack itself.
	if attacker == defender {
		return nil
	}
	if _, ok := s.state.Kingdoms[attacker]; !ok {
		return nil
	}
	if _, ok := s.state.Kingdoms[defender]; !ok {
		return nil
	}

	if existing := s.findConflict(attacker, defender); existing != nil {
		merged := *existing
		merged.ContestedCells = append([]int(nil), existing.ContestedCells...)
		for _, cell := range contestedCells {
			if !isInIntList(merged.ContestedCells, cell) {
				merged.ContestedCells = append(merged.ContestedCells, cell)
			}
		}
		s.state = s.state.withConflict(merged.ID, &merged)
		return &merged
	}

	c := &ActiveConflict{
		ID:               s.nextConflictID,
		Attacker:         attacker,
		Defender:         defender,
		ContestedCells:   dedupIntList(contestedCells),
		StartTick:        s.TickCount,
		Status:           ConflictPending,
		AttackerStrength: s.state.Kingdoms[attacker].Military.Strength,
		DefenderStrength: s.state.Kingdoms[defender].Military.Strength,
	}
	s.nextConflictID++
	s.state = s.state.withConflict(c.ID, c)
	log.Printf("conflict %d: %s attacks %s over %d cells",
		c.ID, s.realm.GetKingdom(attacker).Name, s.realm.GetKingdom(defender).Name, len(c.ContestedCells))
	return c
}

// GetConflict returns the active conflict between the two kingdoms,
// regardless of which one is the attacker, or nil.
func (s *Sim) GetConflict(a, b int) *ActiveConflict {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findConflict(a, b)
}

func (s *Sim) findConflict(a, b int) *ActiveConflict {
	for _, c := range s.state.Conflicts {
		if c.isPair(a, b) {
			return c
		}
	}
	return nil
}

// SeedContestedCells returns the defender's border cells facing the
// attacker, with each cell randomly left out so contested frontiers
// come out ragged rather than clean.
func (s *Sim) SeedContestedCells(attacker, defender int) []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	var cells []int
	for _, cell := range s.realm.borderCells(defender, attacker) {
		if s.rng.Float64() < s.ContestSkipChance {
			continue
		}
		cells = append(cells, cell)
	}
	return cells
}

// ResolveBattleRound fights one battle round of the conflict. Each
// call is an independent stochastic step. Unknown or already resolved
// conflicts are a silent no-op.
func (s *Sim) ResolveBattleRound(conflictID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	factor := defenderWinRatio + s.rng.Float64()*(attackerWinRatio-defenderWinRatio)
	s.resolveBattleRound(conflictID, factor)
}

// resolveBattleRound classifies the round from the strength ratio
// scaled by the random factor, then applies asymmetric losses to both
// the conflict snapshot and the live kingdom records.
func (s *Sim) resolveBattleRound(conflictID int, factor float64) {
	old, ok := s.state.Conflicts[conflictID]
	if !ok || old.Status == ConflictResolved {
		return
	}
	c := *old

	def := c.DefenderStrength
	if def < 1 {
		def = 1
	}
	ratio := float64(c.AttackerStrength) / float64(def) * factor

	var attackerLossPct, defenderLossPct float64
	switch {
	case ratio > attackerWinRatio:
		c.Status = ConflictAttackerWinning
		attackerLossPct = s.lossPct(0.02, 0.05)
		defenderLossPct = s.lossPct(0.08, 0.15)
	case ratio < defenderWinRatio:
		c.Status = ConflictDefenderWinning
		attackerLossPct = s.lossPct(0.08, 0.15)
		defenderLossPct = s.lossPct(0.02, 0.05)
	default:
		c.Status = ConflictStalemate
		attackerLossPct = s.lossPct(0.04, 0.08)
		defenderLossPct = s.lossPct(0.04, 0.08)
	}

	attackerLoss := int(float64(c.AttackerStrength) * attackerLossPct)
	defenderLoss := int(float64(c.DefenderStrength) * defenderLossPct)
	c.AttackerStrength = clampMin(c.AttackerStrength-attackerLoss, 0)
	c.DefenderStrength = clampMin(c.DefenderStrength-defenderLoss, 0)
	c.Round++
	s.state = s.state.withConflict(c.ID, &c)

	s.applyStrengthLoss(c.Attacker, attackerLoss)
	s.applyStrengthLoss(c.Defender, defenderLoss)
}

// lossPct draws a loss percentage from the given range.
func (s *Sim) lossPct(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}

func clampMin(v, min int) int {
	if v < min {
		return min
	}
	return v
}

// applyStrengthLoss subtracts losses from the live kingdom record,
// clamped at zero.
func (s *Sim) applyStrengthLoss(kingdom, loss int) {
	ks, ok := s.state.Kingdoms[kingdom]
	if !ok || loss <= 0 {
		return
	}
	next := *ks
	next.Military.Strength = clampMin(next.Military.Strength-loss, 0)
	s.state = s.state.withKingdom(kingdom, &next)
}

// ForceResolveConflict marks the conflict resolved with a pending
// outcome. It moves no cells itself; ApplyConflictOutcome performs the
// territory transfer. Unknown ids are a silent no-op.
func (s *Sim) ForceResolveConflict(conflictID int, outcome ConflictOutcome) {
	s.mu.Lock()
	defer s.mu.Unlock()
	old, ok := s.state.Conflicts[conflictID]
	if !ok {
		return
	}
	c := *old
	c.Status = ConflictResolved
	c.PendingOutcome = outcome
	s.state = s.state.withConflict(c.ID, &c)
}

// ApplyConflictOutcome performs the territory transfer for a resolved
// conflict. Only an attacker victory moves cells; a defender victory
// or a retreat leaves both territories untouched. Unknown ids or
// unresolved conflicts are a silent no-op.
func (s *Sim) ApplyConflictOutcome(conflictID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.state.Conflicts[conflictID]
	if !ok || c.Status != ConflictResolved {
		return
	}
	if c.PendingOutcome != OutcomeAttackerVictory {
		return
	}
	s.transferTerritory(c.ContestedCells, c.Attacker, c.Defender)
}

// ClearConflict removes the conflict record. Idempotent: clearing an
// absent id is a no-op.
func (s *Sim) ClearConflict(conflictID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.state.Conflicts[conflictID]; !ok {
		return
	}
	s.state = s.state.withConflict(conflictID, nil)
}

// transferTerritory hands the given cells to the winner, reassigns the
// settlements on them and handles the loser's capital: promotion of a
// remaining city, or destruction of the kingdom if none is left.
// Boundary and stats recomputation is scoped to the touched kingdoms.
func (s *Sim) transferTerritory(cells []int, winner, loser int) {
	r := s.realm
	wk := r.GetKingdom(winner)
	lk := r.GetKingdom(loser)
	if wk == nil || lk == nil {
		return
	}

	capital := lk.Capital
	capitalCaptured := capital != nil && capital.Cell >= 0 && isInIntList(cells, capital.Cell)

	changed := r.transferCells(cells, winner)

	// Hand over every settlement standing on a transferred cell. The
	// loser's capital is handled below.
	for _, cell := range cells {
		for _, set := range r.settlementsOnCell(cell) {
			if set == capital || set.Kingdom == winner {
				continue
			}
			r.reassignSettlement(set, winner)
		}
	}

	if capitalCaptured {
		if len(lk.Cities) > 0 {
			// Seat the crown in a surviving city.
			newCapital := lk.Cities[0]
			lk.Cities = removeSettlement(lk.Cities, newCapital)
			newCapital.Kind = SettlementCapital
			lk.Capital = newCapital
			r.reassignSettlement(capital, winner)
			log.Printf("%s falls, %s moves its capital to %s", capital.Name, lk.Name, newCapital.Name)
		} else {
			// Nothing left to rule from. The kingdom is gone and its
			// remaining territory reverts to the wilds.
			lk.Destroyed = true
			capitalID := capital.ID
			r.ruinSettlement(capital)
			if ls, ok := s.state.Locations[capitalID]; ok {
				next := *ls
				next.Condition = LocationRuined
				next.Population = 0
				s.state = s.state.withLocation(capitalID, &next)
			}
			released := append([]int(nil), lk.Cells...)
			for _, id := range r.transferCells(released, -1) {
				if !isInIntList(changed, id) {
					changed = append(changed, id)
				}
			}
			log.Printf("the Kingdom of %s is destroyed", lk.Name)
		}
	}

	var recompute []int
	for _, id := range changed {
		if id >= 0 {
			recompute = append(recompute, id)
		}
	}
	r.assignBoundaries(recompute...)
	r.assignKingdomStats(recompute...)
}

// dedupIntList returns a copy of the list with duplicates removed,
// first occurrence order preserved.
func dedupIntList(list []int) []int {
	var res []int
	for _, v := range list {
		if !isInIntList(res, v) {
			res = append(res, v)
		}
	}
	return res
}
