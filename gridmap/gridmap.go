package gridmap

import "fmt"

// Grid is an undirected adjacency-list view over the drivable cells of an
// ASCII taxi map. Construct it once with Parse and share it freely: Grid is
// immutable after construction and safe for concurrent readers.
type Grid struct {
	rows, cols int
	adj        [][]int // neighbor node indices, insertion-ordered
}

// Parse builds a Grid from an ASCII map description.
//
// The description follows the classic taxi layout: a one-line border on each
// side, cells at odd columns, and separators between them. A wall between two
// horizontally adjacent cells is '|'; the passable separator is ':'. Vertical
// movement is free unless the line below carries '-' under the cell.
//
//	+---------+
//	|R: | : :G|
//	| : | : : |
//	| : : : : |
//	| | : | : |
//	|Y| : |B: |
//	+---------+
//
// Cell (r,c) maps to node index r*cols+c. Neighbor lists are built in a fixed
// row-major scan, so every traversal over the same map is deterministic.
//
// Returns ErrMapTooSmall, ErrMapRagged or ErrMapWidth when the description
// cannot yield a consistent rows-by-cols grid.
func Parse(desc []string) (*Grid, error) {
	// 1) Dimension checks: border rows top and bottom, odd width 2*cols+1.
	if len(desc) < 3 {
		return nil, fmt.Errorf("%w: got %d lines", ErrMapTooSmall, len(desc))
	}
	width := len(desc[0])
	for i, line := range desc {
		if len(line) != width {
			return nil, fmt.Errorf("%w: line %d has %d characters, want %d",
				ErrMapRagged, i, len(line), width)
		}
	}
	if width < 3 || width%2 == 0 {
		return nil, fmt.Errorf("%w: got %d", ErrMapWidth, width)
	}

	g := &Grid{
		rows: len(desc) - 2,
		cols: width / 2,
	}
	g.adj = make([][]int, g.rows*g.cols)

	// 2) Edge scan. For cell (r,c): the character straight below decides the
	//    south edge, the character to the right decides the east edge.
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if r+1 < g.rows && desc[r+2][2*c+1] != '-' {
				g.addEdge(r*g.cols+c, (r+1)*g.cols+c)
			}
			if c+1 < g.cols && desc[r+1][2*c+2] == ':' {
				g.addEdge(r*g.cols+c, r*g.cols+c+1)
			}
		}
	}

	return g, nil
}

// addEdge registers an undirected edge between node indices a and b.
func (g *Grid) addEdge(a, b int) {
	g.adj[a] = append(g.adj[a], b)
	g.adj[b] = append(g.adj[b], a)
}

// Rows returns the number of cell rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of cell columns.
func (g *Grid) Cols() int { return g.cols }

// Contains reports whether c lies inside the grid.
func (g *Grid) Contains(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Adjacent reports whether a and b are joined by a drivable edge.
// Out-of-bounds cells are simply not adjacent to anything.
func (g *Grid) Adjacent(a, b Cell) bool {
	if !g.Contains(a) || !g.Contains(b) {
		return false
	}
	target := g.node(b)
	for _, n := range g.adj[g.node(a)] {
		if n == target {
			return true
		}
	}

	return false
}

// node converts a cell to its adjacency-list index.
func (g *Grid) node(c Cell) int { return c.Row*g.cols + c.Col }

// cell converts an adjacency-list index back to a Cell.
func (g *Grid) cell(n int) Cell { return Cell{Row: n / g.cols, Col: n % g.cols} }

// Path computes a shortest route from origin to dest by breadth-first search.
//
// It returns the visited cells after origin (dest last) and the unit moves
// that realize them, so len(cells) == len(moves) == PathCost. When origin
// equals dest both slices are empty. Among equally short routes the one found
// first by the fixed neighbor order wins, so repeated calls agree.
//
// Returns ErrCellOutOfBounds when either endpoint lies outside the grid and
// ErrNoRoute when walls separate the endpoints.
func (g *Grid) Path(origin, dest Cell) ([]Cell, []Move, error) {
	// 1) Validate endpoints.
	if !g.Contains(origin) {
		return nil, nil, fmt.Errorf("%w: origin %v", ErrCellOutOfBounds, origin)
	}
	if !g.Contains(dest) {
		return nil, nil, fmt.Errorf("%w: dest %v", ErrCellOutOfBounds, dest)
	}

	// 2) Trivial route.
	start, goal := g.node(origin), g.node(dest)
	if start == goal {
		return nil, nil, nil
	}

	// 3) BFS with parent links; early exit once the goal is reached.
	parent := make([]int, len(g.adj))
	for i := range parent {
		parent[i] = -1
	}
	parent[start] = start

	queue := make([]int, 0, len(g.adj))
	queue = append(queue, start)
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		if cur == goal {
			break
		}
		for _, next := range g.adj[cur] {
			if parent[next] != -1 {
				continue
			}
			parent[next] = cur
			queue = append(queue, next)
		}
	}
	if parent[goal] == -1 {
		return nil, nil, fmt.Errorf("%w: %v to %v", ErrNoRoute, origin, dest)
	}

	// 4) Reconstruct goal..start, then reverse into start..goal order.
	nodes := []int{goal}
	for n := goal; n != start; n = parent[n] {
		nodes = append(nodes, parent[n])
	}
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}

	// 5) Translate node hops into cells and moves, skipping the origin.
	cells := make([]Cell, 0, len(nodes)-1)
	moves := make([]Move, 0, len(nodes)-1)
	for i := 1; i < len(nodes); i++ {
		cells = append(cells, g.cell(nodes[i]))
		moves = append(moves, g.moveForDelta(nodes[i]-nodes[i-1]))
	}

	return cells, moves, nil
}

// moveForDelta maps a node-index delta between consecutive hops onto a Move.
// The checks run in a fixed order; any unexpected delta falls through to
// MoveSouth so that a corrupted path surfaces as a wall bump downstream
// instead of a panic.
func (g *Grid) moveForDelta(delta int) Move {
	switch delta {
	case -1:
		return MoveWest
	case 1:
		return MoveEast
	case -g.cols:
		return MoveNorth
	default:
		return MoveSouth
	}
}

// PathCost returns the number of unit moves on a shortest route from origin
// to dest. Cost zero means origin equals dest. Errors mirror Path.
func (g *Grid) PathCost(origin, dest Cell) (int, error) {
	_, moves, err := g.Path(origin, dest)
	if err != nil {
		return 0, err
	}

	return len(moves), nil
}
