package annotation

import (
	"subcast/internal/characters"
	"subcast/internal/subtitles"
)

// ExtractCharacters rebuilds the registry from scratch out of the current
// assignments, discarding aliases and manual ordering.
func (st *Store) ExtractCharacters() {
	st.snapshot()
	st.State.Characters = characters.Extract(st.State.Subtitles)
	st.State.refreshTop()
}

// AddCharacter appends a zero-count registry entry.
func (st *Store) AddCharacter(name string) error {
	updated, err := characters.Add(characters.CloneAll(st.State.Characters), name)
	if err != nil {
		return err
	}
	st.snapshot()
	st.State.Characters = updated
	st.State.refreshTop()
	return nil
}

// MergeCharacters folds the named entries into a single canonical character,
// rewriting every affected assignment.
func (st *Store) MergeCharacters(names []string, canonicalName string) error {
	chars := characters.CloneAll(st.State.Characters)
	lines := subtitles.CloneLines(st.State.Subtitles)
	updated, err := characters.Merge(chars, lines, names, canonicalName)
	if err != nil {
		return err
	}
	st.snapshot()
	st.State.Characters = updated
	st.State.Subtitles = lines
	st.State.refreshTop()
	return nil
}

// RenameCharacter gives an existing character a new display name, keeping
// the old name as an alias.
func (st *Store) RenameCharacter(oldName, newName string) error {
	chars := characters.CloneAll(st.State.Characters)
	lines := subtitles.CloneLines(st.State.Subtitles)
	if err := characters.Rename(chars, lines, oldName, newName); err != nil {
		return err
	}
	st.snapshot()
	st.State.Characters = chars
	st.State.Subtitles = lines
	st.State.refreshTop()
	return nil
}

// UnmergeAlias splits an alias back out into a standalone registry entry.
func (st *Store) UnmergeAlias(canonicalName, alias string) error {
	updated, err := characters.UnmergeAlias(characters.CloneAll(st.State.Characters), canonicalName, alias)
	if err != nil {
		return err
	}
	st.snapshot()
	st.State.Characters = updated
	st.State.refreshTop()
	return nil
}

// MoveCharacter swaps the registry entry at position with its neighbor in
// the given direction.
func (st *Store) MoveCharacter(position, direction int) error {
	chars := characters.CloneAll(st.State.Characters)
	if err := characters.Move(chars, position, direction); err != nil {
		return err
	}
	st.snapshot()
	st.State.Characters = chars
	st.State.refreshTop()
	return nil
}

// DeleteCharacter drops a registry entry. Lines annotated with the deleted
// name keep it; they simply have no registry entry behind them anymore.
func (st *Store) DeleteCharacter(name string) error {
	updated, err := characters.Delete(characters.CloneAll(st.State.Characters), name)
	if err != nil {
		return err
	}
	st.snapshot()
	st.State.Characters = updated
	st.State.refreshTop()
	return nil
}

// SortCharacters reorders the registry by descending assignment count.
func (st *Store) SortCharacters() {
	st.snapshot()
	st.State.Characters = characters.SortByFrequency(st.State.Characters)
	st.State.refreshTop()
}

// ApplyGlobalList rebuilds the registry from a saved character list,
// folding detected names through the list's aliases.
func (st *Store) ApplyGlobalList(list []characters.ListEntry) {
	st.snapshot()
	st.State.Characters = characters.ApplyList(list, st.State.Subtitles)
	st.State.refreshTop()
}

// ImportCharacterList merges an imported list into the registry, collapsing
// alias matches and putting imported entries first.
func (st *Store) ImportCharacterList(list []characters.ListEntry) {
	st.snapshot()
	st.State.Characters = characters.ImportList(list, st.State.Characters, st.State.Subtitles)
	st.State.refreshTop()
}
