package genrealmvoronoi

import (
	"strings"
	"sync"
	"testing"
)

func setStrength(m *Map, kingdom, strength int) {
	m.UpdateKingdomState(kingdom, KingdomStateUpdate{
		Military: &Military{Strength: strength, Readiness: 1.0},
	})
}

func TestConflictMergeIdempotency(t *testing.T) {
	m := testMap(t, 3)
	a := m.StartConflict(0, 1, []int{10, 11, 12})
	if a == nil {
		t.Fatal("StartConflict returned nil")
	}
	b := m.StartConflict(1, 0, []int{12, 13})
	if b == nil {
		t.Fatal("merge StartConflict returned nil")
	}
	if len(m.Snapshot().Conflicts) != 1 {
		t.Fatalf("got %d conflicts, want 1", len(m.Snapshot().Conflicts))
	}
	c := m.GetConflict(1, 0)
	if c == nil {
		t.Fatal("GetConflict returned nil")
	}
	if c.ID != a.ID {
		t.Fatalf("merge created a new conflict id %d, want %d", c.ID, a.ID)
	}
	want := []int{10, 11, 12, 13}
	if len(c.ContestedCells) != len(want) {
		t.Fatalf("contested cells %v, want %v", c.ContestedCells, want)
	}
	for _, cell := range want {
		if !isInIntList(c.ContestedCells, cell) {
			t.Fatalf("contested cells %v missing %d", c.ContestedCells, cell)
		}
	}
}

func TestBattleRoundClassification(t *testing.T) {
	m := testMap(t, 3)
	setStrength(m, 0, 900)
	setStrength(m, 1, 300)

	c := m.StartConflict(0, 1, nil)
	if c.AttackerStrength != 900 || c.DefenderStrength != 300 {
		t.Fatalf("snapshot strengths %d/%d, want 900/300", c.AttackerStrength, c.DefenderStrength)
	}

	// Ratio 3.0 with a neutral random factor is a clear attacker win.
	m.Sim.resolveBattleRound(c.ID, 1.0)
	got := m.GetConflict(0, 1)
	if got.Status != ConflictAttackerWinning {
		t.Fatalf("status %v, want attacker winning", got.Status)
	}
	if got.Round != 1 {
		t.Fatalf("round %d, want 1", got.Round)
	}

	// Losses land on both the snapshot and the live records.
	if got.AttackerStrength >= 900 || got.DefenderStrength >= 300 {
		t.Fatalf("no losses applied: %d/%d", got.AttackerStrength, got.DefenderStrength)
	}
	if ks := m.GetKingdomState(0); ks.Military.Strength >= 900 {
		t.Fatalf("attacker live strength %d, want < 900", ks.Military.Strength)
	}
	if ks := m.GetKingdomState(1); ks.Military.Strength >= 300 {
		t.Fatalf("defender live strength %d, want < 300", ks.Military.Strength)
	}
}

func TestBattleRoundDefenderWinning(t *testing.T) {
	m := testMap(t, 3)
	setStrength(m, 0, 100)
	setStrength(m, 1, 900)
	c := m.StartConflict(0, 1, nil)
	m.Sim.resolveBattleRound(c.ID, 1.0)
	if got := m.GetConflict(0, 1); got.Status != ConflictDefenderWinning {
		t.Fatalf("status %v, want defender winning", got.Status)
	}
}

func TestBattleRoundStalemate(t *testing.T) {
	m := testMap(t, 3)
	setStrength(m, 0, 500)
	setStrength(m, 1, 500)
	c := m.StartConflict(0, 1, nil)
	m.Sim.resolveBattleRound(c.ID, 1.0)
	if got := m.GetConflict(0, 1); got.Status != ConflictStalemate {
		t.Fatalf("status %v, want stalemate", got.Status)
	}
}

func TestStrengthNeverNegative(t *testing.T) {
	m := testMap(t, 3)
	setStrength(m, 0, 20)
	setStrength(m, 1, 15)
	c := m.StartConflict(0, 1, nil)
	for i := 0; i < 100; i++ {
		m.ResolveBattleRound(c.ID)
	}
	got := m.GetConflict(0, 1)
	if got.AttackerStrength < 0 || got.DefenderStrength < 0 {
		t.Fatalf("negative snapshot strength: %d/%d", got.AttackerStrength, got.DefenderStrength)
	}
	for _, id := range []int{0, 1} {
		if ks := m.GetKingdomState(id); ks.Military.Strength < 0 {
			t.Fatalf("kingdom %d has negative strength %d", id, ks.Military.Strength)
		}
	}
}

func TestDefenderVictoryMovesNothing(t *testing.T) {
	m := testMap(t, 3)
	r := m.Realm
	defender := r.Kingdoms[1]
	contested := append([]int(nil), defender.Cells[:3]...)

	attackerCells := len(r.Kingdoms[0].Cells)
	defenderCells := len(defender.Cells)

	c := m.StartConflict(0, 1, contested)
	m.ForceResolveConflict(c.ID, OutcomeDefenderVictory)
	m.ApplyConflictOutcome(c.ID)

	if len(r.Kingdoms[0].Cells) != attackerCells {
		t.Fatalf("attacker cells changed: %d != %d", len(r.Kingdoms[0].Cells), attackerCells)
	}
	if len(defender.Cells) != defenderCells {
		t.Fatalf("defender cells changed: %d != %d", len(defender.Cells), defenderCells)
	}
	for _, cell := range contested {
		if r.CellToKingdom[cell] != 1 {
			t.Fatalf("cell %d changed owner on a defender victory", cell)
		}
	}
}

func TestRetreatMovesNothing(t *testing.T) {
	m := testMap(t, 3)
	r := m.Realm
	defender := r.Kingdoms[1]
	contested := append([]int(nil), defender.Cells[:3]...)

	attackerCells := len(r.Kingdoms[0].Cells)
	defenderCells := len(defender.Cells)

	c := m.StartConflict(0, 1, contested)
	m.ForceResolveConflict(c.ID, OutcomeRetreat)
	m.ApplyConflictOutcome(c.ID)

	if len(r.Kingdoms[0].Cells) != attackerCells {
		t.Fatalf("attacker cells changed: %d != %d", len(r.Kingdoms[0].Cells), attackerCells)
	}
	if len(defender.Cells) != defenderCells {
		t.Fatalf("defender cells changed: %d != %d", len(defender.Cells), defenderCells)
	}
	for _, cell := range contested {
		if r.CellToKingdom[cell] != 1 {
			t.Fatalf("cell %d changed owner on a retreat", cell)
		}
	}
}

func TestSelfConflictRejected(t *testing.T) {
	m := testMap(t, 3)
	if c := m.StartConflict(0, 0, []int{1, 2}); c != nil {
		t.Fatalf("self-conflict created: %+v", c)
	}
	if len(m.Snapshot().Conflicts) != 0 {
		t.Fatalf("self-conflict left %d records", len(m.Snapshot().Conflicts))
	}
	if m.GetConflict(0, 0) != nil {
		t.Fatal("self-conflict retrievable")
	}
}

// Exports read the realm while territory transfers rewrite it, so they
// must be safe to call from another goroutine mid-transfer. Run with
// the race detector to catch unguarded realm reads.
func TestExportsDuringTransfers(t *testing.T) {
	m := testMap(t, 3)
	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			default:
			}
			if _, err := m.GetGeoJSONBorders(); err != nil {
				t.Errorf("GetGeoJSONBorders: %v", err)
				return
			}
			if _, err := m.GetGeoJSONCells(); err != nil {
				t.Errorf("GetGeoJSONCells: %v", err)
				return
			}
		}
	}()

	defender := m.Realm.Kingdoms[1]
	for i := 0; i < 20 && len(defender.Cells) > 0; i++ {
		contested := []int{defender.Cells[0]}
		c := m.StartConflict(0, 1, contested)
		if c == nil {
			break
		}
		m.ForceResolveConflict(c.ID, OutcomeAttackerVictory)
		m.ApplyConflictOutcome(c.ID)
		m.ClearConflict(c.ID)
	}
	close(done)
	wg.Wait()
}

func TestAttackerVictoryTransfersCells(t *testing.T) {
	m := testMap(t, 3)
	r := m.Realm
	defender := r.Kingdoms[1]

	// Contest cells that carry no settlement, so only ownership moves.
	var contested []int
	for _, cell := range defender.Cells {
		if len(r.settlementsOnCell(cell)) == 0 {
			contested = append(contested, cell)
		}
		if len(contested) == 3 {
			break
		}
	}
	if len(contested) == 0 {
		t.Fatal("no settlement-free defender cells")
	}

	totalBefore := countOwnedAndUnownedLand(r)

	c := m.StartConflict(0, 1, contested)
	m.ForceResolveConflict(c.ID, OutcomeAttackerVictory)
	m.ApplyConflictOutcome(c.ID)
	m.ClearConflict(c.ID)

	for _, cell := range contested {
		if r.CellToKingdom[cell] != 0 {
			t.Fatalf("cell %d owned by %d, want attacker", cell, r.CellToKingdom[cell])
		}
		if !isInIntList(r.Kingdoms[0].Cells, cell) {
			t.Fatalf("cell %d missing from attacker cell set", cell)
		}
		if isInIntList(defender.Cells, cell) {
			t.Fatalf("cell %d still in defender cell set", cell)
		}
	}

	// Cells change owner, they never appear or disappear.
	if totalAfter := countOwnedAndUnownedLand(r); totalAfter != totalBefore {
		t.Fatalf("land cell count changed: %d != %d", totalAfter, totalBefore)
	}

	if m.GetConflict(0, 1) != nil {
		t.Fatal("conflict still active after clear")
	}
}

func countOwnedAndUnownedLand(r *Realm) int {
	owned := 0
	for _, k := range r.Kingdoms {
		owned += len(k.Cells)
	}
	unowned := 0
	for cell, kid := range r.CellToKingdom {
		if kid < 0 && !r.IsCellWater(cell) {
			unowned++
		}
	}
	return owned + unowned
}

func TestCapitalLossPromotesCity(t *testing.T) {
	m := testMap(t, 3)
	r := m.Realm
	loser := r.Kingdoms[1]
	if len(loser.Cities) == 0 {
		t.Fatal("loser has no cities to promote")
	}
	oldCapital := loser.Capital
	expected := loser.Cities[0]

	m.Sim.transferTerritory([]int{oldCapital.Cell}, 0, 1)

	if loser.Destroyed {
		t.Fatal("kingdom destroyed despite surviving cities")
	}
	if loser.Capital != expected {
		t.Fatalf("capital is %v, want promoted city %v", loser.Capital, expected)
	}
	if loser.Capital.Kind != SettlementCapital {
		t.Fatalf("promoted capital has kind %v", loser.Capital.Kind)
	}
	if len(loser.Cells) == 0 {
		t.Fatal("kingdom with a capital owns no cells")
	}

	// The captured seat changes hands and is demoted to a city.
	if oldCapital.Kingdom != 0 {
		t.Fatalf("captured capital owned by %d, want attacker", oldCapital.Kingdom)
	}
	if oldCapital.Kind != SettlementCity {
		t.Fatalf("captured capital has kind %v, want city", oldCapital.Kind)
	}
}

func TestCapitalLossDestroysKingdom(t *testing.T) {
	cfg := NewConfig()
	cfg.NumPoints = 800
	cfg.NumKingdoms = 3
	cfg.CitiesPerKingdom = 0
	cfg.EnableTradeRoutes = false
	m, err := NewMapFromConfig(3, cfg)
	if err != nil {
		t.Fatalf("NewMapFromConfig: %v", err)
	}
	r := m.Realm
	loser := r.Kingdoms[1]
	capital := loser.Capital
	capitalID := capital.ID

	m.Sim.transferTerritory([]int{capital.Cell}, 0, 1)

	if !loser.Destroyed {
		t.Fatal("kingdom not destroyed")
	}
	if len(loser.Cells) != 0 {
		t.Fatalf("destroyed kingdom still owns %d cells", len(loser.Cells))
	}
	if capital.Kind != SettlementRuin {
		t.Fatalf("former capital has kind %v, want ruin", capital.Kind)
	}
	if capital.Kingdom != -1 || capital.Cell != -1 {
		t.Fatalf("ruin still bound to kingdom %d cell %d", capital.Kingdom, capital.Cell)
	}
	if !strings.HasPrefix(capital.Name, "Ruins of ") {
		t.Fatalf("ruin name %q", capital.Name)
	}
	if ls := m.GetLocationState(capitalID); ls.Condition != LocationRuined {
		t.Fatalf("location condition %v, want ruined", ls.Condition)
	}
	for cell, kid := range r.CellToKingdom {
		if kid == 1 {
			t.Fatalf("cell %d still owned by destroyed kingdom", cell)
		}
	}
}

func TestUnknownIDsAreNoOps(t *testing.T) {
	m := testMap(t, 3)
	before := m.Snapshot()

	m.ResolveBattleRound(999)
	m.ForceResolveConflict(999, OutcomeAttackerVictory)
	m.ApplyConflictOutcome(999)
	m.ClearConflict(999)
	m.ClearConflict(999)
	m.UpdateKingdomState(999, KingdomStateUpdate{Military: &Military{Strength: 1}})
	m.UpdateLocationState(999, LocationStateUpdate{})

	if m.StartConflict(0, 999, nil) != nil {
		t.Fatal("StartConflict with unknown defender should return nil")
	}
	if m.StartConflict(999, 0, nil) != nil {
		t.Fatal("StartConflict with unknown attacker should return nil")
	}
	if m.GetConflict(5, 6) != nil {
		t.Fatal("GetConflict for unknown pair should return nil")
	}

	after := m.Snapshot()
	if len(after.Conflicts) != 0 {
		t.Fatalf("no-ops created %d conflicts", len(after.Conflicts))
	}
	for id, ks := range before.Kingdoms {
		if after.Kingdoms[id].Military != ks.Military {
			t.Fatalf("kingdom %d military changed by no-ops", id)
		}
	}
}

func TestTickAccruesResources(t *testing.T) {
	m := testMap(t, 3)
	before := m.GetKingdomState(0).Resources
	m.Tick()
	after := m.GetKingdomState(0).Resources
	cells := len(m.Realm.Kingdoms[0].Cells)
	if after.Gold != before.Gold+cells*m.GoldPerCellTick {
		t.Fatalf("gold %d, want %d", after.Gold, before.Gold+cells*m.GoldPerCellTick)
	}
	if after.Food != before.Food+cells*m.FoodPerCellTick {
		t.Fatalf("food %d, want %d", after.Food, before.Food+cells*m.FoodPerCellTick)
	}
}

func TestAdvanceSeasonCycles(t *testing.T) {
	m := testMap(t, 3)
	if m.Season != SeasonSpring {
		t.Fatalf("initial season %v, want spring", m.Season)
	}
	for _, want := range []Season{SeasonSummer, SeasonAutumn, SeasonWinter, SeasonSpring} {
		m.AdvanceSeason()
		if m.Season != want {
			t.Fatalf("season %v, want %v", m.Season, want)
		}
	}
	if m.Year != 1 {
		t.Fatalf("year %d, want 1 after a full cycle", m.Year)
	}
}

func TestSnapshotIsolation(t *testing.T) {
	m := testMap(t, 3)
	snap := m.Snapshot()
	gold := snap.Kingdoms[0].Resources.Gold
	m.Tick()
	if snap.Kingdoms[0].Resources.Gold != gold {
		t.Fatal("old snapshot mutated by a later tick")
	}
	if m.Snapshot() == snap {
		t.Fatal("tick did not produce a new snapshot")
	}
}
