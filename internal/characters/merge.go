package characters

import (
	"fmt"

	"subcast/internal/subtitles"
)

// Merge folds every named character into canonicalName: merged names and
// their existing aliases become aliases of the canonical entry, counts sum,
// and every subtitle line annotated with a merged name is rewritten to the
// canonical name. The canonical entry is created at the end of the registry
// if no entry carries that name yet. Merging into "(Other)" is rejected.
func Merge(chars []Character, lines []subtitles.Line, names []string, canonicalName string) ([]Character, error) {
	if canonicalName == OtherName {
		return chars, ErrOtherImmutable
	}
	for _, name := range names {
		if name == OtherName {
			return chars, ErrOtherImmutable
		}
		if find(chars, name) == -1 {
			return chars, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
	}

	canonicalIdx := find(chars, canonicalName)
	if canonicalIdx == -1 {
		chars = append(chars, newCharacter(canonicalName, 0))
		canonicalIdx = len(chars) - 1
	}

	var aliasNames []string
	totalCount := chars[canonicalIdx].Count
	merged := make(map[string]bool, len(names))

	for _, name := range names {
		if name == canonicalName {
			continue
		}
		idx := find(chars, name)
		entry := chars[idx]
		aliasNames = append(aliasNames, entry.Name)
		aliasNames = append(aliasNames, entry.Aliases...)
		totalCount += entry.Count
		merged[name] = true

		for i := range lines {
			if lines[i].Character == entry.Name {
				lines[i].Character = canonicalName
			}
		}
	}

	canonical := &chars[canonicalIdx]
	canonical.Aliases = dedupe(append(canonical.Aliases, aliasNames...))
	canonical.Count = totalCount

	kept := chars[:0]
	for _, c := range chars {
		if !merged[c.Name] || c.Name == canonicalName {
			kept = append(kept, c)
		}
	}
	return kept, nil
}

// Rename gives a character a new canonical name in place, preserving the old
// name as an alias and rewriting annotated lines. Renaming "(Other)", or to
// "(Other)", or onto an existing entry is rejected.
func Rename(chars []Character, lines []subtitles.Line, oldName, canonicalName string) error {
	if oldName == OtherName || canonicalName == OtherName {
		return ErrOtherImmutable
	}
	idx := find(chars, oldName)
	if idx == -1 {
		return fmt.Errorf("%w: %s", ErrNotFound, oldName)
	}

	if oldName == canonicalName {
		chars[idx].CanonicalName = canonicalName
		return nil
	}
	if find(chars, canonicalName) != -1 {
		return fmt.Errorf("%w: %s", ErrNameExists, canonicalName)
	}

	chars[idx].CanonicalName = canonicalName
	if !containsName(chars[idx].Aliases, oldName) {
		chars[idx].Aliases = append(chars[idx].Aliases, oldName)
	}
	for i := range lines {
		if lines[i].Character == oldName {
			lines[i].Character = canonicalName
		}
	}
	chars[idx].Name = canonicalName
	return nil
}

// UnmergeAlias detaches alias from the named character and creates a fresh
// zero-count standalone entry for it. Annotated lines stay attributed to the
// canonical name; the alias is only usable going forward.
func UnmergeAlias(chars []Character, name, alias string) ([]Character, error) {
	idx := find(chars, name)
	if idx == -1 {
		return chars, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	aliasIdx := -1
	for i, a := range chars[idx].Aliases {
		if a == alias {
			aliasIdx = i
			break
		}
	}
	if aliasIdx == -1 {
		return chars, fmt.Errorf("%w: alias %s", ErrNotFound, alias)
	}

	chars[idx].Aliases = append(chars[idx].Aliases[:aliasIdx], chars[idx].Aliases[aliasIdx+1:]...)
	return append(chars, newCharacter(alias, 0)), nil
}

func dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := values[:0]
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

func containsName(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
