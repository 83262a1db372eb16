package timecode

import (
	"regexp"
	"strconv"
	"strings"
)

// DefaultTolerance is the slack, in milliseconds, applied when deciding
// whether two ranges overlap.
const DefaultTolerance = 500

// Range is a time interval in milliseconds from the start of the media.
type Range struct {
	Start int
	End   int
}

var clockRe = regexp.MustCompile(`(\d+):(\d+):(\d+)\.?(\d+)?`)

// ParseRange parses a "<start> --> <end>" range in either SRT or ASS
// notation. It returns false if the text does not split into exactly two
// arrow-separated parts. A side that fails to match the clock pattern parses
// as zero rather than failing the whole range.
func ParseRange(text string) (Range, bool) {
	parts := strings.Split(text, "-->")
	if len(parts) != 2 {
		return Range{}, false
	}
	return Range{
		Start: parseClock(strings.TrimSpace(parts[0])),
		End:   parseClock(strings.TrimSpace(parts[1])),
	}, true
}

func parseClock(value string) int {
	normalized := strings.ReplaceAll(value, ",", ".")
	match := clockRe.FindStringSubmatch(normalized)
	if match == nil {
		return 0
	}
	hours, _ := strconv.Atoi(match[1])
	minutes, _ := strconv.Atoi(match[2])
	seconds, _ := strconv.Atoi(match[3])
	millis := 0
	if match[4] != "" {
		frac := match[4]
		// Right-pad or truncate to exactly three digits: ".5" is 500 ms.
		for len(frac) < 3 {
			frac += "0"
		}
		millis, _ = strconv.Atoi(frac[:3])
	}
	return (hours*3600+minutes*60+seconds)*1000 + millis
}

// OverlapMs returns the overlap between two ranges in milliseconds, never
// negative.
func OverlapMs(a, b Range) int {
	start := a.Start
	if b.Start > start {
		start = b.Start
	}
	end := a.End
	if b.End < end {
		end = b.End
	}
	if end < start {
		return 0
	}
	return end - start
}

// Overlaps reports whether the two ranges overlap when each is widened by
// tolerance milliseconds.
func Overlaps(a, b Range, tolerance int) bool {
	return a.Start-tolerance <= b.End && a.End+tolerance >= b.Start
}
