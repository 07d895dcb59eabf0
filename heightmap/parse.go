package heightmap

import (
	"fmt"
	"strings"
)

// Parse builds a Grid from its letter form: one row per line, 'a'..'z' for
// elevations, exactly one StartMarker (elevation Lowest) and exactly one
// EndMarker (elevation Highest). Leading and trailing blank lines are ignored
// and CRLF line endings are accepted.
//
// Errors are wrapped with the offending row or cell:
// ErrEmptyGrid, ErrNonRectangular, ErrInvalidCell, ErrDuplicateStart,
// ErrDuplicateEnd, ErrMissingStart, ErrMissingEnd.
func Parse(text string) (*Grid, error) {
	lines := trimBlank(strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n"))
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}

	var (
		values           = make([][]Elevation, len(lines))
		start, end       Position
		hasStart, hasEnd bool
		width            = len(lines[0])
	)
	for r, line := range lines {
		if len(line) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(line), width)
		}
		row := make([]Elevation, width)
		for c := 0; c < width; c++ {
			p := Position{Row: r, Col: c}
			switch ch := line[c]; {
			case ch == StartMarker:
				if hasStart {
					return nil, fmt.Errorf("%w: %v and %v", ErrDuplicateStart, start, p)
				}
				start, hasStart = p, true
				row[c] = Lowest
			case ch == EndMarker:
				if hasEnd {
					return nil, fmt.Errorf("%w: %v and %v", ErrDuplicateEnd, end, p)
				}
				end, hasEnd = p, true
				row[c] = Highest
			case ch >= 'a' && ch <= 'z':
				row[c] = Elevation(ch - 'a')
			default:
				return nil, fmt.Errorf("%w: %q at %v", ErrInvalidCell, ch, p)
			}
		}
		values[r] = row
	}
	if !hasStart {
		return nil, ErrMissingStart
	}
	if !hasEnd {
		return nil, ErrMissingEnd
	}

	return New(values, start, end)
}

// trimBlank drops whitespace-only lines from both ends of lines.
func trimBlank(lines []string) []string {
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
