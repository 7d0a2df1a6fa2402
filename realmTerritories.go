package genrealmvoronoi

// expandTerritories grows every kingdom outward from its capital with
// a randomized multi-source flood fill until no claimable land cell is
// left. Random queue pops keep the frontiers ragged instead of
// producing perfect distance rings.
func (r *Realm) expandTerritories() {
	type claim struct {
		cell    int
		kingdom int
	}

	var queue []claim
	for _, k := range r.Kingdoms {
		queue = append(queue, claim{cell: k.Capital.Cell, kingdom: k.ID})
	}
	r.rng.Shuffle(len(queue), func(i, j int) {
		queue[i], queue[j] = queue[j], queue[i]
	})

	for len(queue) > 0 {
		// Pop a random entry (swap-remove) so growth interleaves.
		idx := r.rng.Intn(len(queue))
		c := queue[idx]
		queue[idx] = queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		for _, nb := range r.Neighbors[c.cell] {
			if r.IsCellWater(nb) || r.CellToKingdom[nb] >= 0 {
				continue
			}
			r.CellToKingdom[nb] = c.kingdom
			queue = append(queue, claim{cell: nb, kingdom: c.kingdom})
		}
	}
	r.rebuildKingdomCells()
}

// rebuildKingdomCells resets every kingdom's owned-cell list from the
// cell ownership mapping, which is the single source of truth.
func (r *Realm) rebuildKingdomCells() {
	for _, k := range r.Kingdoms {
		k.Cells = k.Cells[:0]
	}
	for cell, kid := range r.CellToKingdom {
		if k := r.GetKingdom(kid); k != nil {
			k.Cells = append(k.Cells, cell)
		}
	}
}

// transferCells moves the given cells to the new owner and refreshes
// the owned-cell lists. Water cells and unknown ids are skipped.
// Returns the set of kingdom ids whose territory changed.
func (r *Realm) transferCells(cells []int, newKingdom int) []int {
	var changed []int
	for _, cell := range cells {
		if cell < 0 || cell >= r.NumCells || r.IsCellWater(cell) {
			continue
		}
		old := r.CellToKingdom[cell]
		if old == newKingdom {
			continue
		}
		r.CellToKingdom[cell] = newKingdom
		if old >= 0 && !isInIntList(changed, old) {
			changed = append(changed, old)
		}
		if !isInIntList(changed, newKingdom) {
			changed = append(changed, newKingdom)
		}
	}
	if len(changed) > 0 {
		r.rebuildKingdomCells()
	}
	return changed
}

// borderCells returns the cells of the given kingdom that touch at
// least one cell of the other kingdom.
func (r *Realm) borderCells(kingdom, other int) []int {
	k := r.GetKingdom(kingdom)
	if k == nil {
		return nil
	}
	var res []int
	for _, cell := range k.Cells {
		for _, nb := range r.Neighbors[cell] {
			if r.CellToKingdom[nb] == other {
				res = append(res, cell)
				break
			}
		}
	}
	return res
}
