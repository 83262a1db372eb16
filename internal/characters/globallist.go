package characters

import "subcast/internal/subtitles"

// ListEntry is one record of the cross-file global character list: the
// preset applied when starting a fresh session so naming and ordering stay
// consistent across episodes.
type ListEntry struct {
	Name          string   `json:"name"`
	CanonicalName string   `json:"canonicalName"`
	Aliases       []string `json:"aliases"`
}

// ToList converts a registry to its exportable global-list form, dropping
// standalone alias entries.
func ToList(chars []Character) []ListEntry {
	entries := make([]ListEntry, 0, len(chars))
	for _, c := range chars {
		if c.IsAlias {
			continue
		}
		canonical := c.CanonicalName
		if canonical == "" {
			canonical = c.Name
		}
		entries = append(entries, ListEntry{
			Name:          c.Name,
			CanonicalName: canonical,
			Aliases:       append([]string{}, c.Aliases...),
		})
	}
	return entries
}

func aliasMap(entries []ListEntry) map[string]string {
	m := make(map[string]string)
	for _, entry := range entries {
		canonical := entry.CanonicalName
		if canonical == "" {
			canonical = entry.Name
		}
		for _, alias := range entry.Aliases {
			m[alias] = canonical
		}
	}
	return m
}

// ApplyList builds a registry from a saved global list: detected names are
// folded through the list's aliases (rewriting subtitle lines to canonical
// names), the list's ordering is kept, and names seen in this file but
// missing from the list are appended. "(Other)" is forced to the front.
func ApplyList(entries []ListEntry, lines []subtitles.Line) []Character {
	counts := CountLines(lines)
	aliases := aliasMap(entries)

	mapped := make(map[string]int, len(counts))
	for name, count := range counts {
		canonical, isAlias := aliases[name]
		if !isAlias {
			canonical = name
		}
		mapped[canonical] += count
		if isAlias {
			for i := range lines {
				if lines[i].Character == name {
					lines[i].Character = canonical
				}
			}
		}
	}

	chars := make([]Character, 0, len(entries))
	for _, entry := range entries {
		canonical := entry.CanonicalName
		if canonical == "" {
			canonical = entry.Name
		}
		chars = append(chars, Character{
			Name:          entry.Name,
			CanonicalName: canonical,
			Aliases:       append([]string{}, entry.Aliases...),
			Count:         mapped[entry.Name],
		})
	}

	for name, count := range counts {
		if _, isAlias := aliases[name]; isAlias {
			continue
		}
		if find(chars, name) == -1 {
			chars = append(chars, newCharacter(name, count))
		}
	}
	return EnsureOtherFirst(chars)
}

// ImportList merges an imported character list into an existing registry:
// registry entries matching imported aliases collapse into their canonical
// names (rewriting lines), imported entries come first in imported order,
// and remaining registry entries follow. Counts are recomputed from lines.
func ImportList(entries []ListEntry, chars []Character, lines []subtitles.Line) []Character {
	aliases := aliasMap(entries)

	kept := make([]Character, 0, len(chars))
	for _, c := range chars {
		canonical, isAlias := aliases[c.Name]
		if !isAlias {
			kept = append(kept, c)
			continue
		}
		for i := range lines {
			if lines[i].Character == c.Name {
				lines[i].Character = canonical
			}
		}
	}
	chars = kept

	for _, entry := range entries {
		canonical := entry.CanonicalName
		if canonical == "" {
			canonical = entry.Name
		}
		idx := find(chars, entry.Name)
		if idx == -1 {
			chars = append(chars, Character{
				Name:          entry.Name,
				CanonicalName: canonical,
				Aliases:       append([]string{}, entry.Aliases...),
			})
		} else {
			chars[idx].CanonicalName = canonical
			chars[idx].Aliases = append([]string{}, entry.Aliases...)
		}
	}
	RecountAll(chars, lines)

	reordered := make([]Character, 0, len(chars))
	taken := make(map[string]bool, len(entries))
	for _, entry := range entries {
		if idx := find(chars, entry.Name); idx != -1 {
			reordered = append(reordered, chars[idx])
			taken[entry.Name] = true
		}
	}
	for _, c := range chars {
		if !taken[c.Name] {
			if _, isAlias := aliases[c.Name]; isAlias {
				continue
			}
			reordered = append(reordered, c)
		}
	}
	return EnsureOtherFirst(reordered)
}
