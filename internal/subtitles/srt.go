package subtitles

import (
	"regexp"
	"strconv"
	"strings"
)

var blockSplitRe = regexp.MustCompile(`\n\s*\n`)

// ParseSRT parses SRT content into subtitle lines. Blocks are separated by
// blank lines; each needs an index line, a timerange line, and at least one
// text line. Undersized blocks are skipped. When the text body carries a
// fullwidth-parenthesized speaker token the character field is pre-filled.
func ParseSRT(content string) []Line {
	var lines []Line
	for _, block := range blockSplitRe.Split(content, -1) {
		if strings.TrimSpace(block) == "" {
			continue
		}
		// The final block of a newline-terminated file keeps its trailing
		// newline; dropping it keeps the text body free of empty rows.
		rows := strings.Split(strings.TrimRight(block, "\n"), "\n")
		if len(rows) < 3 {
			continue
		}

		index, _ := strconv.Atoi(strings.TrimSpace(rows[0]))
		timestamp := rows[1]
		text := strings.Join(rows[2:], "\n")

		line := Line{
			Index:            index,
			Timestamp:        timestamp,
			Text:             text,
			SecondaryIndices: []int{},
		}
		if name := extractParenthesizedName(text); name != "" {
			line.Character = name
			line.Prefilled = true
		}
		lines = append(lines, line)
	}
	return lines
}
