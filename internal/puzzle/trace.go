package puzzle

// Trace returns the straight line of cells from start to end, inclusive.
//
// The line must run along a row, a column or a true diagonal; any other
// start/end pair yields an empty slice. Cells past the grid edge are dropped
// and the walk stops at the first one.
func (g *Grid) Trace(start, end int) []int {
	sr, sc := g.ToRowCol(start)
	er, ec := g.ToRowCol(end)
	return g.TraceCells(sr, sc, er, ec)
}

// TraceCells is Trace over raw coordinates. The end point may lie off the
// grid, e.g. when a pointer is dragged past the board edge.
func (g *Grid) TraceCells(sr, sc, er, ec int) []int {
	dr, dc := er-sr, ec-sc
	stepR, stepC := sign(dr), sign(dc)
	if stepR != 0 && stepC != 0 && abs(dr) != abs(dc) {
		return []int{}
	}
	n := max(abs(dr), abs(dc)) + 1
	out := make([]int, 0, n)
	for k := 0; k < n; k++ {
		r, c := sr+k*stepR, sc+k*stepC
		if !g.InBounds(r, c) {
			break
		}
		out = append(out, g.ToIndex(r, c))
	}
	return out
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
