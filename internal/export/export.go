package export

import (
	"fmt"
	"io"
	"regexp"

	"subcast/internal/annotation"
	"subcast/internal/subtitles"
)

// Format selects the export output shape.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatTXT  Format = "txt"
)

// ParseFormat validates a user-supplied format string.
func ParseFormat(value string) (Format, error) {
	switch Format(value) {
	case FormatJSON, FormatCSV, FormatTXT:
		return Format(value), nil
	default:
		return "", fmt.Errorf("unknown export format %q (expected json, csv, or txt)", value)
	}
}

// Options controls export behavior.
type Options struct {
	// IncludeUnannotated keeps lines without a character assignment.
	IncludeUnannotated bool
	// SuppressRepeatedNames drops the speaker label on consecutive lines
	// from the same character. TXT only.
	SuppressRepeatedNames bool
	// ByteOrderMark prefixes the output with a UTF-8 BOM so spreadsheet
	// apps detect the encoding. CSV only.
	ByteOrderMark bool
}

// Write renders the session in the requested format.
func Write(w io.Writer, state *annotation.State, format Format, opts Options) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, state, opts)
	case FormatCSV:
		return WriteCSV(w, state, opts)
	case FormatTXT:
		return WriteTXT(w, state, opts)
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
}

var subtitleExtRe = regexp.MustCompile(`(?i)\.(srt|ass)$`)

// OutputName derives the export filename from the session filename, e.g.
// "episode01.srt" becomes "episode01-annotated.csv".
func OutputName(filename string, format Format) string {
	base := subtitleExtRe.ReplaceAllString(filename, "")
	return fmt.Sprintf("%s-annotated.%s", base, format)
}

// entry pairs a line with its position in the full sequence so scene ids
// stay correct after unannotated lines are filtered out.
type entry struct {
	position int
	line     subtitles.Line
}

func selectLines(state *annotation.State, opts Options) []entry {
	entries := make([]entry, 0, len(state.Subtitles))
	for i, line := range state.Subtitles {
		if !opts.IncludeUnannotated && line.Character == "" {
			continue
		}
		entries = append(entries, entry{position: i, line: line})
	}
	return entries
}

func canonicalName(state *annotation.State, name string) string {
	if name == "" {
		return ""
	}
	return state.CanonicalNameOf(name)
}
