package characters

import (
	"errors"
	"fmt"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"subcast/internal/subtitles"
)

// OtherName is the reserved catch-all registry entry.
const OtherName = "(Other)"

// topCharacterLimit caps how many registry entries map to numeric hotkeys.
const topCharacterLimit = 9

var (
	// ErrOtherImmutable is returned by operations that would rename, merge,
	// move, or delete the "(Other)" entry.
	ErrOtherImmutable = errors.New(`the "(Other)" category cannot be modified`)
	// ErrNameExists is returned when a rename or add collides with an
	// existing registry entry.
	ErrNameExists = errors.New("character name already exists")
	// ErrNotFound is returned when an operation names a character that is
	// not in the registry.
	ErrNotFound = errors.New("character not found")
)

// Character is a registry entry. Name doubles as the current display key;
// Aliases holds alternate names folded into this character. Count is derived
// from the subtitle sequence and IsAlias is reserved for standalone alias
// entries, which the current lifecycle only produces via unmerge.
type Character struct {
	Name          string   `json:"name"`
	CanonicalName string   `json:"canonicalName"`
	Aliases       []string `json:"aliases"`
	Count         int      `json:"count"`
	IsAlias       bool     `json:"isAlias"`
}

// Clone returns an independent copy of the character, alias slice included.
// Nil-ness of the alias slice is preserved so clones compare deep-equal.
func (c Character) Clone() Character {
	out := c
	if c.Aliases != nil {
		out.Aliases = make([]string, len(c.Aliases))
		copy(out.Aliases, c.Aliases)
	}
	return out
}

// CloneAll deep-copies a registry sequence.
func CloneAll(chars []Character) []Character {
	if chars == nil {
		return nil
	}
	out := make([]Character, len(chars))
	for i, c := range chars {
		out[i] = c.Clone()
	}
	return out
}

func newCharacter(name string, count int) Character {
	return Character{Name: name, CanonicalName: name, Aliases: []string{}, Count: count}
}

func find(chars []Character, name string) int {
	for i, c := range chars {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// EnsureOtherFirst guarantees a single "(Other)" entry at position zero,
// creating it with a zero count when absent.
func EnsureOtherFirst(chars []Character) []Character {
	idx := find(chars, OtherName)
	switch {
	case idx == -1:
		return append([]Character{newCharacter(OtherName, 0)}, chars...)
	case idx != 0:
		other := chars[idx]
		rest := append(append([]Character{}, chars[:idx]...), chars[idx+1:]...)
		return append([]Character{other}, rest...)
	default:
		return chars
	}
}

var nameCollator = collate.New(language.Und)

// Extract tallies speaker names across the subtitle sequence and builds a
// registry ordered by descending frequency, names filtered through the
// non-character heuristics. "(Other)" is forced to the front.
func Extract(lines []subtitles.Line) []Character {
	counts := CountLines(lines)

	chars := make([]Character, 0, len(counts))
	for name, count := range counts {
		chars = append(chars, newCharacter(name, count))
	}
	sortByCount(chars)
	return EnsureOtherFirst(chars)
}

// CountLines tallies annotated lines per speaker, skipping names the parsers
// flag as non-characters.
func CountLines(lines []subtitles.Line) map[string]int {
	counts := make(map[string]int)
	for _, line := range lines {
		if line.Character == "" || subtitles.IsNonCharacterName(line.Character) {
			continue
		}
		counts[line.Character]++
	}
	return counts
}

// RecountAll rewrites every registry entry's derived count from the subtitle
// sequence. Unlike Extract this counts raw character strings, so orphaned
// names simply tally zero against surviving entries.
func RecountAll(chars []Character, lines []subtitles.Line) {
	for i := range chars {
		count := 0
		for _, line := range lines {
			if line.Character == chars[i].Name {
				count++
			}
		}
		chars[i].Count = count
	}
}

func sortByCount(chars []Character) {
	// Descending frequency, collated name order for ties.
	sort.SliceStable(chars, func(i, j int) bool {
		if chars[i].Count != chars[j].Count {
			return chars[i].Count > chars[j].Count
		}
		return nameCollator.CompareString(chars[i].Name, chars[j].Name) < 0
	})
}

// SortByFrequency reorders the registry by descending count with collated
// name tiebreak, keeping "(Other)" pinned first.
func SortByFrequency(chars []Character) []Character {
	chars = EnsureOtherFirst(chars)
	rest := chars[1:]
	sortByCount(rest)
	return chars
}

// Add appends a new zero-count character.
func Add(chars []Character, name string) ([]Character, error) {
	if find(chars, name) != -1 {
		return chars, fmt.Errorf("%w: %s", ErrNameExists, name)
	}
	return append(chars, newCharacter(name, 0)), nil
}

// Top returns the names bound to hotkeys 1-9: the first nine non-alias
// entries in registry order, "(Other)" excluded.
func Top(chars []Character) []string {
	top := make([]string, 0, topCharacterLimit)
	for _, c := range chars {
		if c.IsAlias || c.Name == OtherName {
			continue
		}
		top = append(top, c.Name)
		if len(top) == topCharacterLimit {
			break
		}
	}
	return top
}

// Move swaps the entry at position with its neighbor in direction (-1 left,
// +1 right). "(Other)" can neither move nor be displaced from position zero.
func Move(chars []Character, position, direction int) error {
	if position < 0 || position >= len(chars) {
		return fmt.Errorf("%w: position %d", ErrNotFound, position)
	}
	if chars[position].Name == OtherName {
		return ErrOtherImmutable
	}
	target := position + direction
	if target <= 0 || target >= len(chars) {
		return fmt.Errorf("cannot move character at position %d beyond registry bounds", position)
	}
	chars[position], chars[target] = chars[target], chars[position]
	return nil
}

// Delete removes a registry entry without touching annotated lines; lines
// referencing the deleted name become orphaned but stay valid data.
func Delete(chars []Character, name string) ([]Character, error) {
	if name == OtherName {
		return chars, ErrOtherImmutable
	}
	idx := find(chars, name)
	if idx == -1 {
		return chars, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return append(chars[:idx], chars[idx+1:]...), nil
}
