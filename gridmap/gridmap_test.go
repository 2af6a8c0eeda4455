package gridmap_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/taxirelay/gridmap"
)

// classicDesc is the well-known 5x5 taxi layout with two vertical wall runs.
var classicDesc = []string{
	"+---------+",
	"|R: | : :G|",
	"| : | : : |",
	"| : : : : |",
	"| | : | : |",
	"|Y| : |B: |",
	"+---------+",
}

func mustParse(t *testing.T, desc []string) *gridmap.Grid {
	t.Helper()
	g, err := gridmap.Parse(desc)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	return g
}

//----------------------------------------------------------------------------//
// Parse Tests
//----------------------------------------------------------------------------//

// TestParse_Errors verifies that malformed descriptions are rejected with the
// matching sentinel.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		desc []string
		err  error
	}{
		{"Nil", nil, gridmap.ErrMapTooSmall},
		{"BordersOnly", []string{"+-+", "+-+"}, gridmap.ErrMapTooSmall},
		{"Ragged", []string{"+---+", "| : |x", "+---+"}, gridmap.ErrMapRagged},
		{"EvenWidth", []string{"----", "----", "----"}, gridmap.ErrMapWidth},
		{"TooNarrow", []string{"+", "|", "+"}, gridmap.ErrMapWidth},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := gridmap.Parse(tc.desc); !errors.Is(err, tc.err) {
				t.Errorf("Parse(%q) error = %v; want %v", tc.desc, err, tc.err)
			}
		})
	}
}

// TestParse_Dimensions checks the rows/cols derivation on the classic layout.
func TestParse_Dimensions(t *testing.T) {
	g := mustParse(t, classicDesc)
	if g.Rows() != 5 || g.Cols() != 5 {
		t.Errorf("dimensions = %dx%d; want 5x5", g.Rows(), g.Cols())
	}
}

// TestParse_Walls verifies that ':' separators produce edges while '|' and
// border characters do not.
func TestParse_Walls(t *testing.T) {
	g := mustParse(t, classicDesc)

	joined := [][2]gridmap.Cell{
		{{Row: 0, Col: 0}, {Row: 0, Col: 1}}, // ':' separator
		{{Row: 0, Col: 0}, {Row: 1, Col: 0}}, // vertical moves are free
		{{Row: 2, Col: 1}, {Row: 2, Col: 2}},
		{{Row: 4, Col: 3}, {Row: 4, Col: 4}},
	}
	for _, p := range joined {
		if !g.Adjacent(p[0], p[1]) {
			t.Errorf("Adjacent(%v,%v) = false; want true", p[0], p[1])
		}
		if !g.Adjacent(p[1], p[0]) {
			t.Errorf("Adjacent(%v,%v) = false; want true (undirected)", p[1], p[0])
		}
	}

	separated := [][2]gridmap.Cell{
		{{Row: 0, Col: 1}, {Row: 0, Col: 2}}, // '|' wall
		{{Row: 4, Col: 0}, {Row: 4, Col: 1}}, // '|' wall next to Y
		{{Row: 0, Col: 0}, {Row: 0, Col: 0}}, // no self loops
		{{Row: 0, Col: 0}, {Row: 2, Col: 0}}, // not unit distance
		{{Row: 0, Col: 0}, {Row: -1, Col: 0}}, // out of bounds
	}
	for _, p := range separated {
		if g.Adjacent(p[0], p[1]) {
			t.Errorf("Adjacent(%v,%v) = true; want false", p[0], p[1])
		}
	}
}

//----------------------------------------------------------------------------//
// Path Tests
//----------------------------------------------------------------------------//

// TestPath_Errors verifies endpoint validation and unreachable destinations.
func TestPath_Errors(t *testing.T) {
	g := mustParse(t, classicDesc)

	if _, _, err := g.Path(gridmap.Cell{Row: -1, Col: 0}, gridmap.Cell{}); !errors.Is(err, gridmap.ErrCellOutOfBounds) {
		t.Errorf("origin out of bounds: error = %v; want ErrCellOutOfBounds", err)
	}
	if _, _, err := g.Path(gridmap.Cell{}, gridmap.Cell{Row: 5, Col: 5}); !errors.Is(err, gridmap.ErrCellOutOfBounds) {
		t.Errorf("dest out of bounds: error = %v; want ErrCellOutOfBounds", err)
	}

	// Two cells split by a full-height wall cannot reach each other.
	split := []string{
		"+---+",
		"| | |",
		"+---+",
	}
	sg := mustParse(t, split)
	if _, _, err := sg.Path(gridmap.Cell{Row: 0, Col: 0}, gridmap.Cell{Row: 0, Col: 1}); !errors.Is(err, gridmap.ErrNoRoute) {
		t.Errorf("walled pair: error = %v; want ErrNoRoute", err)
	}
}

// TestPath_SameCell checks the zero-length route contract.
func TestPath_SameCell(t *testing.T) {
	g := mustParse(t, classicDesc)
	c := gridmap.Cell{Row: 2, Col: 3}

	cells, moves, err := g.Path(c, c)
	if err != nil {
		t.Fatalf("Path error: %v", err)
	}
	if len(cells) != 0 || len(moves) != 0 {
		t.Errorf("Path(c,c) = %v,%v; want empty,empty", cells, moves)
	}
	if cost, _ := g.PathCost(c, c); cost != 0 {
		t.Errorf("PathCost(c,c) = %d; want 0", cost)
	}
}

// TestPath_StraightRun checks a wall-free vertical route R -> Y.
func TestPath_StraightRun(t *testing.T) {
	g := mustParse(t, classicDesc)

	cells, moves, err := g.Path(gridmap.Cell{Row: 0, Col: 0}, gridmap.Cell{Row: 4, Col: 0})
	if err != nil {
		t.Fatalf("Path error: %v", err)
	}
	wantCells := []gridmap.Cell{{Row: 1, Col: 0}, {Row: 2, Col: 0}, {Row: 3, Col: 0}, {Row: 4, Col: 0}}
	if !reflect.DeepEqual(cells, wantCells) {
		t.Errorf("cells = %v; want %v", cells, wantCells)
	}
	wantMoves := []gridmap.Move{gridmap.MoveSouth, gridmap.MoveSouth, gridmap.MoveSouth, gridmap.MoveSouth}
	if !reflect.DeepEqual(moves, wantMoves) {
		t.Errorf("moves = %v; want %v", moves, wantMoves)
	}
}

// TestPath_AroundWall checks the detour forced by the wall east of (0,1):
// the only shortest route drops to row 2, crosses, and climbs back.
func TestPath_AroundWall(t *testing.T) {
	g := mustParse(t, classicDesc)

	cells, moves, err := g.Path(gridmap.Cell{Row: 0, Col: 0}, gridmap.Cell{Row: 0, Col: 2})
	if err != nil {
		t.Fatalf("Path error: %v", err)
	}
	wantCells := []gridmap.Cell{
		{Row: 1, Col: 0}, {Row: 2, Col: 0}, {Row: 2, Col: 1},
		{Row: 2, Col: 2}, {Row: 1, Col: 2}, {Row: 0, Col: 2},
	}
	if !reflect.DeepEqual(cells, wantCells) {
		t.Errorf("cells = %v; want %v", cells, wantCells)
	}
	wantMoves := []gridmap.Move{
		gridmap.MoveSouth, gridmap.MoveSouth, gridmap.MoveEast,
		gridmap.MoveEast, gridmap.MoveNorth, gridmap.MoveNorth,
	}
	if !reflect.DeepEqual(moves, wantMoves) {
		t.Errorf("moves = %v; want %v", moves, wantMoves)
	}
}

// TestPath_Deterministic verifies that repeated queries return identical
// routes even when several shortest routes exist.
func TestPath_Deterministic(t *testing.T) {
	g := mustParse(t, classicDesc)
	origin, dest := gridmap.Cell{Row: 0, Col: 4}, gridmap.Cell{Row: 4, Col: 3}

	first, _, err := g.Path(origin, dest)
	if err != nil {
		t.Fatalf("Path error: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, _, err := g.Path(origin, dest)
		if err != nil {
			t.Fatalf("Path error on repeat %d: %v", i, err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("repeat %d: route %v differs from first %v", i, again, first)
		}
	}
}

// TestPath_Replay walks every returned route move by move and checks that it
// reconstructs the reported cells over drivable edges only.
func TestPath_Replay(t *testing.T) {
	g := mustParse(t, classicDesc)

	pairs := [][2]gridmap.Cell{
		{{Row: 0, Col: 0}, {Row: 4, Col: 4}},
		{{Row: 4, Col: 0}, {Row: 0, Col: 4}},
		{{Row: 4, Col: 0}, {Row: 4, Col: 1}},
		{{Row: 2, Col: 2}, {Row: 0, Col: 3}},
		{{Row: 3, Col: 0}, {Row: 4, Col: 3}},
	}
	for _, p := range pairs {
		origin, dest := p[0], p[1]
		cells, moves, err := g.Path(origin, dest)
		if err != nil {
			t.Fatalf("Path(%v,%v) error: %v", origin, dest, err)
		}
		if len(cells) != len(moves) {
			t.Fatalf("Path(%v,%v): %d cells vs %d moves", origin, dest, len(cells), len(moves))
		}
		if cells[len(cells)-1] != dest {
			t.Errorf("Path(%v,%v): last cell = %v; want %v", origin, dest, cells[len(cells)-1], dest)
		}

		at := origin
		for i, m := range moves {
			next := m.Apply(at)
			if next != cells[i] {
				t.Fatalf("Path(%v,%v) hop %d: %v.Apply(%v) = %v; want %v",
					origin, dest, i, m, at, next, cells[i])
			}
			if !g.Adjacent(at, next) {
				t.Fatalf("Path(%v,%v) hop %d crosses a wall: %v -> %v", origin, dest, i, at, next)
			}
			at = next
		}
	}
}

//----------------------------------------------------------------------------//
// PathCost Tests
//----------------------------------------------------------------------------//

// TestPathCost_Symmetry checks that costs agree with route lengths and are
// symmetric on the undirected grid.
func TestPathCost_Symmetry(t *testing.T) {
	g := mustParse(t, classicDesc)

	cases := []struct {
		a, b gridmap.Cell
		want int
	}{
		{gridmap.Cell{Row: 0, Col: 0}, gridmap.Cell{Row: 4, Col: 0}, 4},
		{gridmap.Cell{Row: 0, Col: 0}, gridmap.Cell{Row: 0, Col: 2}, 6},
		{gridmap.Cell{Row: 4, Col: 0}, gridmap.Cell{Row: 4, Col: 1}, 5},
		{gridmap.Cell{Row: 0, Col: 4}, gridmap.Cell{Row: 0, Col: 3}, 1},
	}
	for _, tc := range cases {
		got, err := g.PathCost(tc.a, tc.b)
		if err != nil {
			t.Fatalf("PathCost(%v,%v) error: %v", tc.a, tc.b, err)
		}
		if got != tc.want {
			t.Errorf("PathCost(%v,%v) = %d; want %d", tc.a, tc.b, got, tc.want)
		}
		back, err := g.PathCost(tc.b, tc.a)
		if err != nil {
			t.Fatalf("PathCost(%v,%v) error: %v", tc.b, tc.a, err)
		}
		if back != got {
			t.Errorf("PathCost(%v,%v) = %d; want %d (symmetry)", tc.b, tc.a, back, got)
		}
	}
}

//----------------------------------------------------------------------------//
// Move Tests
//----------------------------------------------------------------------------//

// TestMove_String pins the canonical action spellings and numeric contract.
func TestMove_String(t *testing.T) {
	want := map[gridmap.Move]string{
		gridmap.MoveSouth: "south",
		gridmap.MoveNorth: "north",
		gridmap.MoveEast:  "east",
		gridmap.MoveWest:  "west",
	}
	for m, name := range want {
		if got := m.String(); got != name {
			t.Errorf("Move(%d).String() = %q; want %q", int(m), got, name)
		}
	}
	if gridmap.MoveSouth != 0 || gridmap.MoveNorth != 1 || gridmap.MoveEast != 2 || gridmap.MoveWest != 3 {
		t.Error("move numeric values drifted from the action contract")
	}
	if got := gridmap.Move(9).String(); got != "Move(9)" {
		t.Errorf("out-of-range String() = %q; want Move(9)", got)
	}
}
