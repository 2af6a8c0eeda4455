// Package gridmap defines core types and sentinel errors
// for the gridmap subpackage of github.com/katalvlaran/taxirelay.
package gridmap

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridmap operations.
var (
	// ErrMapTooSmall indicates the map description has fewer than three lines
	// and therefore cannot contain even a single cell row inside the border.
	ErrMapTooSmall = errors.New("gridmap: map description must have at least three lines")
	// ErrMapRagged indicates the map description lines differ in length.
	ErrMapRagged = errors.New("gridmap: all map lines must have the same length")
	// ErrMapWidth indicates the map width cannot hold a whole number of cells
	// (a well-formed description is 2*cols+1 characters wide).
	ErrMapWidth = errors.New("gridmap: map width must be odd and at least three")
	// ErrCellOutOfBounds indicates a queried cell lies outside the grid.
	ErrCellOutOfBounds = errors.New("gridmap: cell out of bounds")
	// ErrNoRoute indicates no drivable route exists between two cells.
	ErrNoRoute = errors.New("gridmap: no route between cells")
)

// Cell identifies a drivable grid position by zero-based row and column.
// It is an immutable value: all gridmap operations copy Cells, never alias them.
type Cell struct {
	Row, Col int
}

// String renders the cell as "(row,col)" for error text and logs.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Move is one unit step between two adjacent cells.
//
// The numeric values are a fixed contract shared with the simulation's action
// encoding (south=0, north=1, east=2, west=3) and must not be reordered.
type Move int

const (
	// MoveSouth increases the row by one.
	MoveSouth Move = iota
	// MoveNorth decreases the row by one.
	MoveNorth
	// MoveEast increases the column by one.
	MoveEast
	// MoveWest decreases the column by one.
	MoveWest
)

// moveNames is indexed by Move and doubles as the canonical action spelling.
var moveNames = [...]string{"south", "north", "east", "west"}

// String returns the canonical lowercase name of the move
// ("south", "north", "east" or "west").
func (m Move) String() string {
	if m < MoveSouth || m > MoveWest {
		return fmt.Sprintf("Move(%d)", int(m))
	}

	return moveNames[m]
}

// Apply returns the cell reached by taking m from c.
// It performs no bounds or wall checking; pair it with Grid.Adjacent.
func (m Move) Apply(c Cell) Cell {
	switch m {
	case MoveSouth:
		return Cell{Row: c.Row + 1, Col: c.Col}
	case MoveNorth:
		return Cell{Row: c.Row - 1, Col: c.Col}
	case MoveEast:
		return Cell{Row: c.Row, Col: c.Col + 1}
	default: // MoveWest
		return Cell{Row: c.Row, Col: c.Col - 1}
	}
}
