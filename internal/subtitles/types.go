package subtitles

// Line is a single subtitle line. Index is the stable display number
// assigned at parse time; it does not renumber when lines are deleted, so it
// is not an array position. Character is empty while the line is
// unannotated. Prefilled is true only when the character was populated by a
// parser and is cleared the moment a user assigns the line.
type Line struct {
	Index            int    `json:"index"`
	Timestamp        string `json:"timestamp"`
	Text             string `json:"text"`
	Character        string `json:"character,omitempty"`
	Prefilled        bool   `json:"isPrefilled"`
	SecondaryText    string `json:"secondaryText,omitempty"`
	SecondaryIndices []int  `json:"secondaryIndices"`
}

// Clone returns an independent copy of the line, including the secondary
// index slice. Nil-ness is preserved: an empty non-nil slice stays empty
// non-nil so a clone compares deep-equal to its source.
func (l Line) Clone() Line {
	out := l
	if l.SecondaryIndices != nil {
		out.SecondaryIndices = make([]int, len(l.SecondaryIndices))
		copy(out.SecondaryIndices, l.SecondaryIndices)
	}
	return out
}

// CloneLines deep-copies a line sequence.
func CloneLines(lines []Line) []Line {
	if lines == nil {
		return nil
	}
	out := make([]Line, len(lines))
	for i, line := range lines {
		out[i] = line.Clone()
	}
	return out
}
