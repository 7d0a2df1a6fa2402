package genrealmvoronoi

import (
	"math/rand"
	"sync"
)

// Season of the simulated year. Seasons advance on request, not on a
// wall clock, so an orchestration layer can pace the year itself.
type Season int

const (
	SeasonSpring Season = iota
	SeasonSummer
	SeasonAutumn
	SeasonWinter
)

func (s Season) String() string {
	switch s {
	case SeasonSpring:
		return "spring"
	case SeasonSummer:
		return "summer"
	case SeasonAutumn:
		return "autumn"
	case SeasonWinter:
		return "winter"
	}
	return "unknown"
}

// Sim drives the runtime layer on top of a generated realm: the state
// store, resource accrual and the conflict engine. All mutations go
// through the single writer lock and swap in a fresh snapshot.
type Sim struct {
	*SimConfig
	realm *Realm
	rng   *rand.Rand

	mu             sync.RWMutex
	state          *State
	nextConflictID int
	TickCount      int
	Season         Season
	Year           int
}

// NewSim seeds the runtime state from the generation output: one
// kingdom record per kingdom, one location record per settlement.
func NewSim(realm *Realm, seed int64, cfg *SimConfig) *Sim {
	if cfg == nil {
		cfg = NewSimConfig()
	}
	s := &Sim{
		SimConfig: cfg,
		realm:     realm,
		rng:       rand.New(rand.NewSource(seed + 2)),
		state:     newState(),
	}
	for _, k := range realm.Kingdoms {
		s.state.Kingdoms[k.ID] = &KingdomState{
			Ruler: k.Language.MakeFirstName() + " " + k.Language.MakeLastName(),
			Resources: Resources{
				Gold: 100,
				Mana: 10,
				Food: 200,
			},
			Military: Military{
				Strength:  cfg.BaseStrength + cfg.StrengthPerCell*len(k.Cells),
				Readiness: 1.0,
			},
		}
	}
	for _, set := range realm.Settlements {
		ls := &LocationState{
			Condition: LocationIntact,
			Defense:   20 + s.rng.Intn(30),
		}
		if set.Kind == SettlementCapital {
			ls.Population = 8000 + s.rng.Intn(8000)
			ls.Defense += 30
		} else {
			ls.Population = 1000 + s.rng.Intn(3000)
		}
		s.state.Locations[set.ID] = ls
	}
	return s
}

// AdvanceSeason moves the year forward by one season and applies the
// seasonal effect: the harvest comes in at autumn, winter drains the
// granaries.
func (s *Sim) AdvanceSeason() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Season++
	if s.Season > SeasonWinter {
		s.Season = SeasonSpring
		s.Year++
	}

	for id, ks := range s.state.Kingdoms {
		k := s.realm.GetKingdom(id)
		if k == nil || k.Destroyed {
			continue
		}
		res := ks.Resources
		switch s.Season {
		case SeasonAutumn:
			res.Food += len(k.Cells) * s.FoodPerCellTick * 4
		case SeasonWinter:
			res.Food -= len(k.Cells) * s.FoodPerCellTick * 2
			if res.Food < 0 {
				res.Food = 0
			}
		}
		next := *ks
		next.Resources = res
		s.state = s.state.withKingdom(id, &next)
	}
}

// Tick performs one resource accrual step: every kingdom gains gold
// and food proportional to its territory. Destroyed kingdoms accrue
// nothing.
func (s *Sim) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.TickCount++
	for id, ks := range s.state.Kingdoms {
		k := s.realm.GetKingdom(id)
		if k == nil || k.Destroyed || len(k.Cells) == 0 {
			continue
		}
		next := *ks
		next.Resources.Gold += len(k.Cells) * s.GoldPerCellTick
		next.Resources.Food += len(k.Cells) * s.FoodPerCellTick
		s.state = s.state.withKingdom(id, &next)
	}
}
