// Package heightmap defines core types, rules, and sentinel errors
// for the heightmap subpackage of github.com/katalvlaran/hillclimb.
package heightmap

import (
	"errors"
	"fmt"
)

// Sentinel errors for heightmap construction and parsing.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("heightmap: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("heightmap: all rows must have the same length")
	// ErrElevationRange indicates a cell value above Highest.
	ErrElevationRange = errors.New("heightmap: elevation out of range")
	// ErrMarkerOutOfBounds indicates a start or end position outside the grid.
	ErrMarkerOutOfBounds = errors.New("heightmap: marker position out of bounds")
	// ErrInvalidCell indicates a character that is neither a-z nor a marker.
	ErrInvalidCell = errors.New("heightmap: invalid cell character")
	// ErrMissingStart indicates the input has no start marker.
	ErrMissingStart = errors.New("heightmap: missing start marker")
	// ErrMissingEnd indicates the input has no end marker.
	ErrMissingEnd = errors.New("heightmap: missing end marker")
	// ErrDuplicateStart indicates more than one start marker.
	ErrDuplicateStart = errors.New("heightmap: duplicate start marker")
	// ErrDuplicateEnd indicates more than one end marker.
	ErrDuplicateEnd = errors.New("heightmap: duplicate end marker")
)

// Elevation is the height of a single cell; 'a' maps to 0 and 'z' to 25.
type Elevation uint8

const (
	// Lowest is the elevation of 'a' and of the start marker.
	Lowest Elevation = 0
	// Highest is the elevation of 'z' and of the end marker.
	Highest Elevation = 'z' - 'a'
	// Impassable is returned by Get for positions outside the grid.
	// It sits far above Highest so the grid edge behaves like a cliff.
	Impassable Elevation = 100
)

// Input markers.
const (
	StartMarker = 'S'
	EndMarker   = 'E'
)

// Position is a (row, column) coordinate. The zero value is the top-left cell.
type Position struct {
	Row, Col int
}

// Add returns p shifted by d.
func (p Position) Add(d Position) Position {
	return Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

// String renders the position as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Rule decides whether a step from a cell of elevation from onto a cell
// of elevation to is allowed.
type Rule func(from, to Elevation) bool

// ClimbRule allows stepping down any distance and climbing at most one unit.
func ClimbRule(from, to Elevation) bool {
	return int(to) <= int(from)+1
}

// Orthogonal neighbor offsets in traversal order: up, down, left, right.
var offsets = [4]Position{
	{Row: -1, Col: 0},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
	{Row: 0, Col: 1},
}

// Grid is an immutable rectangular height map with one start and one end.
// Cells are stored row-major; it is safe for concurrent reads.
type Grid struct {
	rows, cols int
	cells      []Elevation
	start, end Position
}
