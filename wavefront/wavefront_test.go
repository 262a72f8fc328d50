package wavefront_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/leewave/grid"
	"github.com/katalvlaran/leewave/wavefront"
)

// blankGrid returns an h×w grid of zeros.
func blankGrid(h, w int) grid.Rows[int] {
	g := make(grid.Rows[int], h)
	for i := range g {
		g[i] = make([]int, w)
	}

	return g
}

// wallGrid is the 5×5 map with a wall in column 2, rows 0–3, and a gap at (4,2).
func wallGrid() grid.Rows[int] {
	return grid.Rows[int]{
		{0, 0, 1, 0, 0},
		{0, 0, 1, 0, 0},
		{0, 0, 1, 0, 0},
		{0, 0, 1, 0, 0},
		{0, 0, 0, 0, 0},
	}
}

// requireValidPath checks the structural properties every found path has.
func requireValidPath(t *testing.T, res *wavefront.Result, from, to wavefront.Coord) {
	t.Helper()
	require.True(t, res.Found)
	require.NotEmpty(t, res.Path)
	assert.Equal(t, to, res.Path[0], "path must start at the destination")
	assert.Equal(t, from, res.Path[len(res.Path)-1], "path must end at the origin")
	assert.Equal(t, res.Distance+1, len(res.Path))
	for i := 1; i < len(res.Path); i++ {
		a, b := res.Path[i-1], res.Path[i]
		dr, dc := a.Row-b.Row, a.Col-b.Col
		ok := ((dr == 1 || dr == -1) && dc == 0) || ((dc == 1 || dc == -1) && dr == 0)
		assert.True(t, ok, "waypoints %v and %v are not 4-adjacent", a, b)
	}
}

// TestFindPath_Errors verifies invalid inputs and options are rejected.
func TestFindPath_Errors(t *testing.T) {
	g := blankGrid(3, 3)

	_, err := wavefront.FindPath[int](nil, wavefront.Coord{}, wavefront.Coord{}, 0)
	assert.ErrorIs(t, err, wavefront.ErrGridNil)

	_, err = wavefront.FindPath[int](g, wavefront.Coord{}, wavefront.Coord{Row: 1}, 0, wavefront.WithMaxDistance(-1))
	assert.ErrorIs(t, err, wavefront.ErrOptionViolation)
}

// TestFindPath_RaggedRows ensures a non-rectangular Rows is a fault, not a
// panic or a path through cells that do not exist.
func TestFindPath_RaggedRows(t *testing.T) {
	ragged := grid.Rows[int]{{0, 1, 0}, {0}, {0, 0, 0}}
	_, err := wavefront.FindPath[int](ragged, wavefront.Coord{}, wavefront.Coord{Row: 2, Col: 2}, 0)
	require.ErrorIs(t, err, grid.ErrNonRectangular)

	short := grid.Rows[int]{{0, 0, 0}, {0}}
	res, err := wavefront.FindPath[int](short, wavefront.Coord{}, wavefront.Coord{Row: 1, Col: 0}, 0)
	require.ErrorIs(t, err, grid.ErrNonRectangular)
	assert.Nil(t, res)

	_, err = wavefront.Expand[int](ragged, wavefront.Coord{}, wavefront.Coord{Row: 2, Col: 2}, 0)
	assert.ErrorIs(t, err, grid.ErrNonRectangular)

	_, err = wavefront.FindPath[int](grid.Rows[int]{}, wavefront.Coord{}, wavefront.Coord{}, 0)
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
}

// TestFindPath_OutOfRange ensures out-of-bounds endpoints are faults, never NoPath,
// even when the in-bounds endpoint is not blank.
func TestFindPath_OutOfRange(t *testing.T) {
	g := blankGrid(3, 4)
	g[0][0] = 1

	cases := []struct {
		name     string
		from, to wavefront.Coord
	}{
		{"origin row negative", wavefront.Coord{Row: -1}, wavefront.Coord{Row: 1}},
		{"origin col too large", wavefront.Coord{Col: 4}, wavefront.Coord{Row: 1}},
		{"destination row too large", wavefront.Coord{Row: 1}, wavefront.Coord{Row: 3}},
		{"destination col negative", wavefront.Coord{}, wavefront.Coord{Col: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := wavefront.FindPath[int](g, tc.from, tc.to, 0)
			assert.ErrorIs(t, err, wavefront.ErrOutOfRange)
			assert.Nil(t, res)
		})
	}
}

// TestFindPath_NonBlankEndpoint covers the immediate NoPath rule.
func TestFindPath_NonBlankEndpoint(t *testing.T) {
	g := blankGrid(4, 4)
	g[3][3] = 1

	res, err := wavefront.FindPath[int](g, wavefront.Coord{}, wavefront.Coord{Row: 3, Col: 3}, 0)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Nil(t, res.Path)
	assert.Equal(t, -1, res.Distance)
	assert.Zero(t, res.Visited, "no expansion must happen")
	assert.Zero(t, res.Rounds)

	res, err = wavefront.FindPath[int](g, wavefront.Coord{Row: 3, Col: 3}, wavefront.Coord{}, 0)
	require.NoError(t, err)
	assert.False(t, res.Found)
}

// TestFindPath_WallScenario routes around a wall through the single gap.
func TestFindPath_WallScenario(t *testing.T) {
	from, to := wavefront.Coord{}, wavefront.Coord{Row: 4, Col: 4}
	res, err := wavefront.FindPath[int](wallGrid(), from, to, 0)
	require.NoError(t, err)
	requireValidPath(t, res, from, to)

	assert.Len(t, res.Path, 9)
	assert.Contains(t, res.Path, wavefront.Coord{Row: 4, Col: 2}, "path must use the row-4 gap")
	want := []wavefront.Coord{
		{4, 4}, {4, 3}, {4, 2}, {4, 1}, {4, 0}, {3, 0}, {2, 0}, {1, 0}, {0, 0},
	}
	assert.Equal(t, want, res.Path)
	assert.Equal(t, 13, res.Visited)
	assert.Equal(t, 8, res.Rounds)
}

// TestFindPath_OpenGridManhattan checks path length r+c+1 on all-blank grids.
func TestFindPath_OpenGridManhattan(t *testing.T) {
	g := blankGrid(6, 7)
	for r := 0; r < 6; r++ {
		for c := 0; c < 7; c++ {
			to := wavefront.Coord{Row: r, Col: c}
			res, err := wavefront.FindPath[int](g, wavefront.Coord{}, to, 0)
			require.NoError(t, err)
			requireValidPath(t, res, wavefront.Coord{}, to)
			assert.Len(t, res.Path, r+c+1, "to %v", to)
		}
	}
}

// TestFindPath_TieBreak pins the east/south/west/north probe order: on an
// open grid the backtrace prefers the most recently labelled neighbour.
func TestFindPath_TieBreak(t *testing.T) {
	res, err := wavefront.FindPath[int](blankGrid(3, 4), wavefront.Coord{}, wavefront.Coord{Row: 2, Col: 3}, 0)
	require.NoError(t, err)
	want := []wavefront.Coord{{2, 3}, {2, 2}, {2, 1}, {2, 0}, {1, 0}, {0, 0}}
	assert.Equal(t, want, res.Path)
	assert.Equal(t, []wavefront.Coord{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}, {2, 3}}, res.Forward())
}

// TestFindPath_EnclosedDestination yields NoPath when every neighbour is an obstacle.
func TestFindPath_EnclosedDestination(t *testing.T) {
	g := blankGrid(5, 5)
	g[1][2], g[3][2], g[2][1], g[2][3] = 1, 1, 1, 1

	res, err := wavefront.FindPath[int](g, wavefront.Coord{}, wavefront.Coord{Row: 2, Col: 2}, 0)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, 20, res.Visited, "every open cell outside the pocket is labelled")
}

// TestFindPath_DisconnectedRegions yields NoPath across a full wall.
func TestFindPath_DisconnectedRegions(t *testing.T) {
	g := grid.Rows[int]{
		{0, 1, 0},
		{0, 1, 0},
	}
	res, err := wavefront.FindPath[int](g, wavefront.Coord{}, wavefront.Coord{Row: 1, Col: 2}, 0)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, 2, res.Visited)
}

// TestFindPath_SameCell documents origin == destination handling.
func TestFindPath_SameCell(t *testing.T) {
	g := blankGrid(2, 2)
	c := wavefront.Coord{Row: 1, Col: 1}

	res, err := wavefront.FindPath[int](g, c, c, 0)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []wavefront.Coord{c}, res.Path)
	assert.Equal(t, 0, res.Distance)
	assert.Equal(t, 1, res.Visited)
	assert.Zero(t, res.Rounds)

	// a non-blank cell is still NoPath
	g[1][1] = 1
	res, err = wavefront.FindPath[int](g, c, c, 0)
	require.NoError(t, err)
	assert.False(t, res.Found)
}

// TestFindPath_RuneGrid exercises a non-integer cell type and a Dense window.
func TestFindPath_RuneGrid(t *testing.T) {
	d, err := grid.FromRows([][]rune{
		[]rune("#######"),
		[]rune("#..#..#"),
		[]rune("#.##..#"),
		[]rune("#.....#"),
		[]rune("#######"),
	})
	require.NoError(t, err)

	from, to := wavefront.Coord{Row: 1, Col: 1}, wavefront.Coord{Row: 1, Col: 5}
	res, err := wavefront.FindPath[rune](d, from, to, '.')
	require.NoError(t, err)
	requireValidPath(t, res, from, to)
	assert.Equal(t, 8, res.Distance)

	// same search inside the interior window, coordinates shifted by (1,1)
	w, err := d.View(1, 1, 3, 5)
	require.NoError(t, err)
	res, err = wavefront.FindPath[rune](w, wavefront.Coord{}, wavefront.Coord{Col: 4}, '.')
	require.NoError(t, err)
	assert.Equal(t, 8, res.Distance)
}

// TestFindPath_MaxDistance verifies the hop limit turns far targets into NoPath.
func TestFindPath_MaxDistance(t *testing.T) {
	g := blankGrid(1, 6)
	to := wavefront.Coord{Col: 5}

	res, err := wavefront.FindPath[int](g, wavefront.Coord{}, to, 0, wavefront.WithMaxDistance(4))
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, 5, res.Visited)

	res, err = wavefront.FindPath[int](g, wavefront.Coord{}, to, 0, wavefront.WithMaxDistance(5))
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, 5, res.Distance)

	res, err = wavefront.FindPath[int](g, wavefront.Coord{}, to, 0, wavefront.WithMaxDistance(0))
	require.NoError(t, err)
	assert.True(t, res.Found)
}

// TestFindPath_Hooks checks OnDiscover and OnRound are called in order.
func TestFindPath_Hooks(t *testing.T) {
	g := blankGrid(1, 4)
	var discovered []wavefront.Step
	var frontiers []int

	res, err := wavefront.FindPath[int](g, wavefront.Coord{}, wavefront.Coord{Col: 3}, 0,
		wavefront.WithOnDiscover(func(c wavefront.Coord, d int) {
			discovered = append(discovered, wavefront.Step{Coord: c, Dist: d})
		}),
		wavefront.WithOnRound(func(round, frontier int) error {
			assert.Equal(t, len(frontiers), round)
			frontiers = append(frontiers, frontier)
			return nil
		}),
	)
	require.NoError(t, err)
	require.True(t, res.Found)

	want := []wavefront.Step{
		{Coord: wavefront.Coord{Col: 0}, Dist: 0},
		{Coord: wavefront.Coord{Col: 1}, Dist: 1},
		{Coord: wavefront.Coord{Col: 2}, Dist: 2},
		{Coord: wavefront.Coord{Col: 3}, Dist: 3},
	}
	assert.Equal(t, want, discovered)
	assert.Equal(t, []int{1, 1, 1}, frontiers)
}

// TestFindPath_OnRoundAbort propagates hook errors wrapped.
func TestFindPath_OnRoundAbort(t *testing.T) {
	stop := errors.New("stop here")
	_, err := wavefront.FindPath[int](blankGrid(3, 3), wavefront.Coord{}, wavefront.Coord{Row: 2, Col: 2}, 0,
		wavefront.WithOnRound(func(round, _ int) error {
			if round == 2 {
				return stop
			}
			return nil
		}),
	)
	assert.ErrorIs(t, err, stop)
	assert.Contains(t, err.Error(), "round 2")
}

// TestFindPath_ContextCancelled returns ctx.Err() before the first round.
func TestFindPath_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := wavefront.FindPath[int](blankGrid(3, 3), wavefront.Coord{}, wavefront.Coord{Row: 2, Col: 2}, 0,
		wavefront.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	// a cancelled context does not matter when no round is needed
	res, err := wavefront.FindPath[int](blankGrid(3, 3), wavefront.Coord{}, wavefront.Coord{}, 0,
		wavefront.WithContext(ctx))
	require.NoError(t, err)
	assert.True(t, res.Found)
}

// TestResult_ForwardNotFound returns nil for NoPath results.
func TestResult_ForwardNotFound(t *testing.T) {
	r := &wavefront.Result{Distance: -1}
	assert.Nil(t, r.Forward())
	assert.Equal(t, "(2,-1)", wavefront.Coord{Row: 2, Col: -1}.String())
}
