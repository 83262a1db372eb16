package scenes

import (
	"errors"
	"fmt"
	"sort"

	"subcast/internal/subtitles"
)

var (
	// ErrDuplicateBreak is returned when a break already exists at the
	// requested position.
	ErrDuplicateBreak = errors.New("scene break already exists at this position")
	// ErrTerminalBreak is returned for a break after the final line, which
	// would open an empty scene.
	ErrTerminalBreak = errors.New("cannot insert scene break after the last line")
	// ErrBreakNotFound is returned when deleting a position with no break.
	ErrBreakNotFound = errors.New("no scene break at this position")
)

// Insert adds a break after position, keeping the sequence sorted ascending.
// lineCount is the current length of the subtitle sequence.
func Insert(breaks []int, position, lineCount int) ([]int, error) {
	if containsBreak(breaks, position) {
		return breaks, fmt.Errorf("%w: position %d", ErrDuplicateBreak, position)
	}
	if position >= lineCount-1 {
		return breaks, ErrTerminalBreak
	}
	if position < 0 {
		return breaks, fmt.Errorf("invalid scene break position %d", position)
	}
	breaks = append(breaks, position)
	sort.Ints(breaks)
	return breaks, nil
}

// Delete removes the break at position.
func Delete(breaks []int, position int) ([]int, error) {
	for i, b := range breaks {
		if b == position {
			return append(breaks[:i], breaks[i+1:]...), nil
		}
	}
	return breaks, fmt.Errorf("%w: position %d", ErrBreakNotFound, position)
}

// IDOf returns the 1-based scene id of the line at position: the rank of the
// first break at or past the position, or one past the last scene when the
// position exceeds every break. With no breaks defined the scene concept is
// inapplicable and IDOf returns 0.
func IDOf(breaks []int, position int) int {
	if len(breaks) == 0 {
		return 0
	}
	for i, b := range breaks {
		if position <= b {
			return i + 1
		}
	}
	return len(breaks) + 1
}

// WithCharacter returns the sorted distinct scene ids containing lines
// annotated with name, or nil when no breaks are defined.
func WithCharacter(breaks []int, lines []subtitles.Line, name string) []int {
	if len(breaks) == 0 {
		return nil
	}
	seen := make(map[int]bool)
	var ids []int
	for position, line := range lines {
		if line.Character != name {
			continue
		}
		id := IDOf(breaks, position)
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	return ids
}

// ReindexAfterDelete rewrites the break list for the removal of the line at
// position: a break exactly at the deleted position disappears and every
// break above it shifts down by one.
func ReindexAfterDelete(breaks []int, position int) []int {
	out := breaks[:0]
	for _, b := range breaks {
		switch {
		case b == position:
			continue
		case b > position:
			out = append(out, b-1)
		default:
			out = append(out, b)
		}
	}
	return out
}

func containsBreak(breaks []int, position int) bool {
	for _, b := range breaks {
		if b == position {
			return true
		}
	}
	return false
}
