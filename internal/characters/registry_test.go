package characters_test

import (
	"errors"
	"reflect"
	"testing"

	"subcast/internal/characters"
	"subcast/internal/subtitles"
)

func annotated(names ...string) []subtitles.Line {
	lines := make([]subtitles.Line, len(names))
	for i, name := range names {
		lines[i] = subtitles.Line{Index: i, Character: name}
	}
	return lines
}

func names(chars []characters.Character) []string {
	out := make([]string, len(chars))
	for i, c := range chars {
		out[i] = c.Name
	}
	return out
}

func TestExtractOrdersByFrequency(t *testing.T) {
	lines := annotated("Akari", "Mikoto", "Akari", "", "Akari", "Mikoto")
	chars := characters.Extract(lines)

	want := []string{"(Other)", "Akari", "Mikoto"}
	if !reflect.DeepEqual(names(chars), want) {
		t.Fatalf("unexpected order %v", names(chars))
	}
	if chars[1].Count != 3 || chars[2].Count != 2 {
		t.Fatalf("unexpected counts: %+v", chars)
	}
	if chars[0].Count != 0 {
		t.Fatalf(`expected "(Other)" count 0, got %d`, chars[0].Count)
	}
}

func TestExtractFiltersNonCharacterNames(t *testing.T) {
	lines := annotated("Mikoto", "Signs", "♪", "Default")
	chars := characters.Extract(lines)
	if len(chars) != 2 {
		t.Fatalf("expected only (Other) and Mikoto, got %v", names(chars))
	}
}

func TestEnsureOtherFirstRelocates(t *testing.T) {
	chars := []characters.Character{
		{Name: "Akari", CanonicalName: "Akari", Aliases: []string{}},
		{Name: characters.OtherName, CanonicalName: characters.OtherName, Aliases: []string{}},
	}
	chars = characters.EnsureOtherFirst(chars)
	if chars[0].Name != characters.OtherName {
		t.Fatalf(`expected "(Other)" first, got %v`, names(chars))
	}
	if len(chars) != 2 {
		t.Fatalf("expected no duplicate entry, got %v", names(chars))
	}
}

func TestTopSkipsOtherAndAliases(t *testing.T) {
	chars := []characters.Character{
		{Name: characters.OtherName},
		{Name: "A"}, {Name: "B"}, {Name: "alias", IsAlias: true},
		{Name: "C"}, {Name: "D"}, {Name: "E"}, {Name: "F"},
		{Name: "G"}, {Name: "H"}, {Name: "I"}, {Name: "J"},
	}
	top := characters.Top(chars)
	want := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I"}
	if !reflect.DeepEqual(top, want) {
		t.Fatalf("unexpected top characters %v", top)
	}
}

func TestMergeCombinesCountsAndRewritesLines(t *testing.T) {
	lines := annotated("A", "B", "A", "B", "B")
	chars := characters.Extract(lines)

	merged, err := characters.Merge(chars, lines, []string{"A", "B"}, "A")
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}

	for _, line := range lines {
		if line.Character == "B" {
			t.Fatal(`expected no line annotated "B" after merge`)
		}
	}
	idx := -1
	for i, c := range merged {
		if c.Name == "B" {
			t.Fatal(`expected "B" removed from registry`)
		}
		if c.Name == "A" {
			idx = i
		}
	}
	if idx == -1 {
		t.Fatal(`expected "A" to survive`)
	}
	if merged[idx].Count != 5 {
		t.Fatalf("expected summed count 5, got %d", merged[idx].Count)
	}
	if !reflect.DeepEqual(merged[idx].Aliases, []string{"B"}) {
		t.Fatalf("unexpected aliases %v", merged[idx].Aliases)
	}
}

func TestMergeCarriesExistingAliases(t *testing.T) {
	lines := annotated("A", "B")
	chars := characters.Extract(lines)
	merged, err := characters.Merge(chars, lines, []string{"B"}, "A")
	if err != nil {
		t.Fatalf("first merge failed: %v", err)
	}
	merged, err = characters.Merge(merged, lines, []string{"A"}, "C")
	if err != nil {
		t.Fatalf("second merge failed: %v", err)
	}

	idx := -1
	for i, c := range merged {
		if c.Name == "C" {
			idx = i
		}
	}
	if idx == -1 {
		t.Fatal(`expected "C" entry`)
	}
	got := merged[idx].Aliases
	if !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Fatalf("expected transitive aliases [A B], got %v", got)
	}
}

func TestMergeIntoOtherRejected(t *testing.T) {
	lines := annotated("A")
	chars := characters.Extract(lines)
	if _, err := characters.Merge(chars, lines, []string{"A"}, characters.OtherName); !errors.Is(err, characters.ErrOtherImmutable) {
		t.Fatalf("expected ErrOtherImmutable, got %v", err)
	}
	if _, err := characters.Merge(chars, lines, []string{characters.OtherName}, "A"); !errors.Is(err, characters.ErrOtherImmutable) {
		t.Fatalf("expected ErrOtherImmutable, got %v", err)
	}
}

func TestRenamePreservesOldNameAsAlias(t *testing.T) {
	lines := annotated("A", "A")
	chars := characters.Extract(lines)
	if err := characters.Rename(chars, lines, "A", "Alpha"); err != nil {
		t.Fatalf("Rename failed: %v", err)
	}
	idx := -1
	for i, c := range chars {
		if c.Name == "Alpha" {
			idx = i
		}
	}
	if idx == -1 {
		t.Fatal(`expected renamed entry "Alpha"`)
	}
	if !reflect.DeepEqual(chars[idx].Aliases, []string{"A"}) {
		t.Fatalf("unexpected aliases %v", chars[idx].Aliases)
	}
	for _, line := range lines {
		if line.Character != "Alpha" {
			t.Fatalf("expected lines rewritten, got %q", line.Character)
		}
	}
}

func TestRenameToExistingNameRejected(t *testing.T) {
	lines := annotated("A", "B")
	chars := characters.Extract(lines)
	before := characters.CloneAll(chars)
	if err := characters.Rename(chars, lines, "A", "B"); !errors.Is(err, characters.ErrNameExists) {
		t.Fatalf("expected ErrNameExists, got %v", err)
	}
	if !reflect.DeepEqual(chars, before) {
		t.Fatal("expected registry unchanged after rejected rename")
	}
}

func TestUnmergeAliasCreatesStandaloneEntry(t *testing.T) {
	lines := annotated("A", "B")
	chars := characters.Extract(lines)
	chars, err := characters.Merge(chars, lines, []string{"A", "B"}, "A")
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}

	chars, err = characters.UnmergeAlias(chars, "A", "B")
	if err != nil {
		t.Fatalf("UnmergeAlias failed: %v", err)
	}

	var unmerged *characters.Character
	for i := range chars {
		if chars[i].Name == "B" {
			unmerged = &chars[i]
		}
		if chars[i].Name == "A" && len(chars[i].Aliases) != 0 {
			t.Fatalf("expected alias removed, got %v", chars[i].Aliases)
		}
	}
	if unmerged == nil {
		t.Fatal(`expected standalone "B" entry`)
	}
	if unmerged.Count != 0 {
		t.Fatalf("expected zero count, got %d", unmerged.Count)
	}
	// Lines stay attributed to the canonical name.
	for _, line := range lines {
		if line.Character != "A" {
			t.Fatalf("expected lines untouched, got %q", line.Character)
		}
	}
}

func TestMoveKeepsOtherPinned(t *testing.T) {
	chars := []characters.Character{
		{Name: characters.OtherName}, {Name: "A"}, {Name: "B"},
	}
	if err := characters.Move(chars, 0, 1); !errors.Is(err, characters.ErrOtherImmutable) {
		t.Fatalf("expected ErrOtherImmutable, got %v", err)
	}
	if err := characters.Move(chars, 1, -1); err == nil {
		t.Fatal(`expected move displacing "(Other)" to fail`)
	}
	if err := characters.Move(chars, 1, 1); err != nil {
		t.Fatalf("Move failed: %v", err)
	}
	if !reflect.DeepEqual(names(chars), []string{characters.OtherName, "B", "A"}) {
		t.Fatalf("unexpected order %v", names(chars))
	}
}

func TestDeleteLeavesAnnotationsOrphaned(t *testing.T) {
	lines := annotated("A", "A")
	chars := characters.Extract(lines)
	chars, err := characters.Delete(chars, "A")
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	for _, c := range chars {
		if c.Name == "A" {
			t.Fatal("expected entry removed")
		}
	}
	for _, line := range lines {
		if line.Character != "A" {
			t.Fatal("expected annotated lines untouched")
		}
	}
	if _, err := characters.Delete(chars, characters.OtherName); !errors.Is(err, characters.ErrOtherImmutable) {
		t.Fatalf("expected ErrOtherImmutable, got %v", err)
	}
}

func TestAddRejectsDuplicates(t *testing.T) {
	chars := characters.Extract(nil)
	chars, err := characters.Add(chars, "Akari")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := characters.Add(chars, "Akari"); !errors.Is(err, characters.ErrNameExists) {
		t.Fatalf("expected ErrNameExists, got %v", err)
	}
}

func TestSortByFrequency(t *testing.T) {
	chars := []characters.Character{
		{Name: characters.OtherName, Count: 99},
		{Name: "B", Count: 1},
		{Name: "A", Count: 3},
		{Name: "C", Count: 3},
	}
	chars = characters.SortByFrequency(chars)
	if !reflect.DeepEqual(names(chars), []string{characters.OtherName, "A", "C", "B"}) {
		t.Fatalf("unexpected order %v", names(chars))
	}
}

func TestClonePreservesEmptyAliases(t *testing.T) {
	c := characters.Character{Name: "Rei", CanonicalName: "Rei", Aliases: []string{}}

	clone := c.Clone()
	if !reflect.DeepEqual(c, clone) {
		t.Fatalf("clone not deep-equal to source: %#v vs %#v", c, clone)
	}
	if clone.Aliases == nil {
		t.Fatal("empty alias slice became nil")
	}

	withAliases := characters.Character{Name: "Rei", Aliases: []string{"Ayanami"}}
	clone = withAliases.Clone()
	clone.Aliases[0] = "changed"
	if withAliases.Aliases[0] != "Ayanami" {
		t.Fatalf("clone shares alias backing array: %v", withAliases.Aliases)
	}
}
