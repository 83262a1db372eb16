package annotation

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"subcast/internal/characters"
	"subcast/internal/scenes"
	"subcast/internal/subtitles"
)

// ErrInvalidPosition is returned when an operation addresses a line position
// outside the current subtitle sequence.
var ErrInvalidPosition = errors.New("line position out of range")

// ErrNoSecondaryTrack is returned by secondary-track operations when no
// secondary track is loaded.
var ErrNoSecondaryTrack = errors.New("no secondary track loaded")

// Store couples the session state with its undo history and exposes every
// mutating operation. Each operation pushes a snapshot before touching the
// state; rejected operations push nothing.
type Store struct {
	State   *State
	History *History
}

// NewStore wraps a normalized state in a store with empty history.
func NewStore(state *State) *Store {
	state.Normalize()
	return &Store{State: state, History: &History{}}
}

func (st *Store) snapshot() {
	st.History.Push(st.State.Clone())
}

func (st *Store) checkPosition(position int) error {
	if position < 0 || position >= len(st.State.Subtitles) {
		return fmt.Errorf("%w: %d", ErrInvalidPosition, position)
	}
	return nil
}

// Undo restores the most recent snapshot; it reports whether anything was
// undone.
func (st *Store) Undo() bool {
	previous := st.History.Undo(st.State)
	if previous == nil {
		return false
	}
	st.State = previous
	return true
}

// Redo reverses the most recent undo.
func (st *Store) Redo() bool {
	next := st.History.Redo(st.State)
	if next == nil {
		return false
	}
	st.State = next
	return true
}

// AssignCharacter sets (or clears, with an empty name) the speaker of the
// line at position. The prefill flag always drops: the assignment is now a
// user decision. Registry counts are recomputed.
func (st *Store) AssignCharacter(position int, name string) error {
	if err := st.checkPosition(position); err != nil {
		return err
	}
	st.snapshot()
	st.State.Subtitles[position].Character = name
	st.State.Subtitles[position].Prefilled = false
	characters.RecountAll(st.State.Characters, st.State.Subtitles)
	return nil
}

// EditText replaces the primary text of the line at position. The edit is a
// no-op, pushing no snapshot, when the trimmed value matches the currently
// displayed (tag-stripped) text.
func (st *Store) EditText(position int, text string) (bool, error) {
	if err := st.checkPosition(position); err != nil {
		return false, err
	}
	trimmed := strings.TrimSpace(text)
	if trimmed == subtitles.StripOverrideTags(st.State.Subtitles[position].Text) {
		return false, nil
	}
	st.snapshot()
	st.State.Subtitles[position].Text = trimmed
	return true, nil
}

// EditSecondaryText replaces the secondary text of the line at position; an
// empty trimmed value clears it.
func (st *Store) EditSecondaryText(position int, text string) error {
	if err := st.checkPosition(position); err != nil {
		return err
	}
	st.snapshot()
	st.State.Subtitles[position].SecondaryText = strings.TrimSpace(text)
	return nil
}

// DeleteLine removes the line at position, reindexes scene breaks, and
// recomputes registry counts. Surviving lines keep their display index.
func (st *Store) DeleteLine(position int) error {
	if err := st.checkPosition(position); err != nil {
		return err
	}
	st.snapshot()
	st.State.Subtitles = append(st.State.Subtitles[:position], st.State.Subtitles[position+1:]...)
	st.State.SceneBreaks = scenes.ReindexAfterDelete(st.State.SceneBreaks, position)
	characters.RecountAll(st.State.Characters, st.State.Subtitles)
	return nil
}

// InsertSceneBreak adds a scene boundary after the line at position.
func (st *Store) InsertSceneBreak(position int) error {
	if err := st.checkPosition(position); err != nil {
		return err
	}
	updated, err := scenes.Insert(append([]int(nil), st.State.SceneBreaks...), position, len(st.State.Subtitles))
	if err != nil {
		return err
	}
	st.snapshot()
	st.State.SceneBreaks = updated
	return nil
}

// DeleteSceneBreak removes the scene boundary after the line at position.
func (st *Store) DeleteSceneBreak(position int) error {
	updated, err := scenes.Delete(append([]int(nil), st.State.SceneBreaks...), position)
	if err != nil {
		return err
	}
	st.snapshot()
	st.State.SceneBreaks = updated
	return nil
}

// AttachSecondary aligns a parsed secondary track onto the primary sequence
// and records the track for later manual re-linking.
func (st *Store) AttachSecondary(filename string, lines []subtitles.Line, tolerance int) {
	st.snapshot()
	st.State.Subtitles = subtitles.Align(st.State.Subtitles, lines, tolerance)
	st.State.SecondarySubtitles = subtitles.CloneLines(lines)
	st.State.SecondaryFilename = filename
	st.State.HasSecondaryTrack = true
}

// LinkSecondary replaces the secondary mapping of exactly one primary line
// with the given secondary positions. An empty selection clears the mapping.
func (st *Store) LinkSecondary(position int, secondaryIndices []int) error {
	if err := st.checkPosition(position); err != nil {
		return err
	}
	if !st.State.HasSecondaryTrack {
		return ErrNoSecondaryTrack
	}
	for _, idx := range secondaryIndices {
		if idx < 0 || idx >= len(st.State.SecondarySubtitles) {
			return fmt.Errorf("%w: secondary index %d", ErrInvalidPosition, idx)
		}
	}

	st.snapshot()
	indices := append([]int(nil), secondaryIndices...)
	sort.Ints(indices)

	line := &st.State.Subtitles[position]
	if len(indices) == 0 {
		line.SecondaryText = ""
		line.SecondaryIndices = []int{}
		return nil
	}
	texts := make([]string, len(indices))
	for i, idx := range indices {
		texts[i] = st.State.SecondarySubtitles[idx].Text
	}
	line.SecondaryText = strings.Join(texts, "\n")
	line.SecondaryIndices = indices
	return nil
}

// ShiftSecondaryMapping propagates secondary mappings to adjacent lines
// starting at fromPosition. Direction +1 moves every mapping down one line
// (the starting line becomes unmapped), copying backward from the last
// mapped line so no source is overwritten before it is read. Direction -1
// moves mappings up one line, copying forward; the final line becomes
// unmapped.
func (st *Store) ShiftSecondaryMapping(fromPosition, direction int) error {
	if err := st.checkPosition(fromPosition); err != nil {
		return err
	}
	if !st.State.HasSecondaryTrack {
		return ErrNoSecondaryTrack
	}
	st.snapshot()

	subs := st.State.Subtitles
	if direction >= 0 {
		lastMapped := len(subs) - 1
		for lastMapped >= fromPosition && len(subs[lastMapped].SecondaryIndices) == 0 {
			lastMapped--
		}
		start := lastMapped + 1
		if start > len(subs)-1 {
			start = len(subs) - 1
		}
		for i := start; i >= fromPosition; i-- {
			if i == fromPosition {
				subs[i].SecondaryIndices = []int{}
				subs[i].SecondaryText = ""
			} else {
				subs[i].SecondaryIndices = append([]int{}, subs[i-1].SecondaryIndices...)
				subs[i].SecondaryText = subs[i-1].SecondaryText
			}
		}
	} else {
		for i := fromPosition; i < len(subs); i++ {
			if i == len(subs)-1 {
				subs[i].SecondaryIndices = []int{}
				subs[i].SecondaryText = ""
			} else {
				subs[i].SecondaryIndices = append([]int{}, subs[i+1].SecondaryIndices...)
				subs[i].SecondaryText = subs[i+1].SecondaryText
			}
		}
	}
	return nil
}

// TransferSecondaryToPrimary promotes every aligned line's secondary text to
// primary text. Unaligned lines are blanked unless keepOriginalUnaligned is
// set. The secondary track is then dropped entirely and the session is
// renamed after the promoted source. Original primary text of aligned lines
// is only recoverable through undo.
func (st *Store) TransferSecondaryToPrimary(keepOriginalUnaligned bool) error {
	if !st.State.HasSecondaryTrack {
		return ErrNoSecondaryTrack
	}
	st.snapshot()

	for i := range st.State.Subtitles {
		line := &st.State.Subtitles[i]
		if line.SecondaryText != "" {
			line.Text = line.SecondaryText
		} else if !keepOriginalUnaligned {
			line.Text = ""
		}
		line.SecondaryText = ""
		line.SecondaryIndices = []int{}
	}

	source := st.State.SecondaryFilename
	if source == "" {
		source = "secondary"
	}
	st.State.Filename = source + " (reannotated)"
	st.State.HasSecondaryTrack = false
	st.State.SecondaryFilename = ""
	st.State.SecondarySubtitles = []subtitles.Line{}
	characters.RecountAll(st.State.Characters, st.State.Subtitles)
	return nil
}

// ClearAnnotations resets every non-prefilled assignment. It is the one
// destructive reset that deliberately bypasses undo history.
func (st *Store) ClearAnnotations() {
	for i := range st.State.Subtitles {
		if !st.State.Subtitles[i].Prefilled {
			st.State.Subtitles[i].Character = ""
		}
	}
	characters.RecountAll(st.State.Characters, st.State.Subtitles)
}
