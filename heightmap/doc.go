// Package heightmap models a rectangular map of cell elevations with a
// designated start and end, the input of a hill-climbing route search.
//
// What:
//
//   - Grid is an immutable W×H container of Elevation values ('a'=0 … 'z'=25).
//   - Parse reads the letter form; 'S' marks the start (elevation 'a'),
//     'E' marks the end (elevation 'z').
//   - Get treats everything outside the grid as an Impassable cliff, while
//     Lookup reports in-bounds explicitly.
//   - NeighborsFunc yields orthogonal neighbors (up, down, left, right)
//     admitted by a pluggable Rule; ReachableNeighbors applies ClimbRule
//     (climb at most one unit, descend freely).
//
// Why:
//
//   - Route planning over terrain where steepness gates movement.
//   - A single read-only structure shared by many concurrent searches.
//
// Complexity:
//
//   - Parse, New:         O(W×H) time and memory.
//   - Get, Lookup:        O(1).
//   - NeighborsFunc:      O(1) (at most 4 candidates).
//   - PositionsAt:        O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular: malformed shape.
//   - ErrInvalidCell, ErrElevationRange: bad cell content.
//   - ErrMissingStart, ErrMissingEnd, ErrDuplicateStart, ErrDuplicateEnd:
//     marker count other than exactly one.
//   - ErrMarkerOutOfBounds: start or end outside the grid (New only).
package heightmap
