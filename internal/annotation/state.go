package annotation

import (
	"subcast/internal/characters"
	"subcast/internal/subtitles"
)

// State is the authoritative session aggregate. SecondaryIndices on each
// line index into SecondarySubtitles while HasSecondaryTrack is true; the
// two per-line secondary fields are always updated as a pair.
type State struct {
	Filename           string                 `json:"filename"`
	SecondaryFilename  string                 `json:"secondaryFilename,omitempty"`
	Subtitles          []subtitles.Line       `json:"subtitles"`
	Characters         []characters.Character `json:"characters"`
	TopCharacters      []string               `json:"topCharacters"`
	SceneBreaks        []int                  `json:"sceneBreaks"`
	HasSecondaryTrack  bool                   `json:"hasSecondaryTrack"`
	SecondarySubtitles []subtitles.Line       `json:"secondarySubtitles"`
	LastSaved          string                 `json:"lastSaved,omitempty"`
}

// Clone returns a deep, independent copy of the state. Nested slices inside
// lines and characters are copied too; mutating the live state never alters
// a snapshot taken earlier.
func (s *State) Clone() *State {
	out := &State{
		Filename:          s.Filename,
		SecondaryFilename: s.SecondaryFilename,
		HasSecondaryTrack: s.HasSecondaryTrack,
		LastSaved:         s.LastSaved,
	}
	out.Subtitles = subtitles.CloneLines(s.Subtitles)
	out.Characters = characters.CloneAll(s.Characters)
	if s.TopCharacters != nil {
		out.TopCharacters = make([]string, len(s.TopCharacters))
		copy(out.TopCharacters, s.TopCharacters)
	}
	if s.SceneBreaks != nil {
		out.SceneBreaks = make([]int, len(s.SceneBreaks))
		copy(out.SceneBreaks, s.SceneBreaks)
	}
	out.SecondarySubtitles = subtitles.CloneLines(s.SecondarySubtitles)
	return out
}

// Normalize defaults fields that older persisted sessions may lack: nil
// break lists, missing secondary metadata, and per-line secondary fields.
func (s *State) Normalize() {
	if s.Subtitles == nil {
		s.Subtitles = []subtitles.Line{}
	}
	if s.Characters == nil {
		s.Characters = []characters.Character{}
	}
	if s.TopCharacters == nil {
		s.TopCharacters = []string{}
	}
	if s.SceneBreaks == nil {
		s.SceneBreaks = []int{}
	}
	if s.SecondarySubtitles == nil {
		s.SecondarySubtitles = []subtitles.Line{}
	}
	for i := range s.Subtitles {
		if s.Subtitles[i].SecondaryIndices == nil {
			s.Subtitles[i].SecondaryIndices = []int{}
		}
	}
	for i := range s.Characters {
		if s.Characters[i].Aliases == nil {
			s.Characters[i].Aliases = []string{}
		}
		if s.Characters[i].CanonicalName == "" {
			s.Characters[i].CanonicalName = s.Characters[i].Name
		}
	}
}

// AnnotatedCount returns how many lines carry a character assignment.
func (s *State) AnnotatedCount() int {
	count := 0
	for _, line := range s.Subtitles {
		if line.Character != "" {
			count++
		}
	}
	return count
}

// CanonicalNameOf resolves a per-line character string through the registry.
// Orphaned names (deleted from the registry) resolve to themselves.
func (s *State) CanonicalNameOf(name string) string {
	for _, c := range s.Characters {
		if c.Name == name && c.CanonicalName != "" {
			return c.CanonicalName
		}
	}
	return name
}

// refreshTop recomputes the hotkey mapping from registry order.
func (s *State) refreshTop() {
	s.TopCharacters = characters.Top(s.Characters)
}
