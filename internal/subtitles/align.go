package subtitles

import (
	"sort"
	"strings"

	"subcast/internal/timecode"
)

// nearTieShare is the fraction of the best overlap a candidate primary must
// reach for a secondary line to attach to it as well. A secondary line that
// genuinely spans two primaries overlaps both by nearly equal amounts.
const nearTieShare = 0.8

type secondaryAssignment struct {
	text  string
	index int
}

// Align attaches each secondary line to the primary line(s) it overlaps
// most. Every primary whose overlap reaches 80% of the best candidate
// receives the secondary line; secondaries overlapping nothing are dropped.
// The returned sequence mirrors primary with SecondaryText joined in
// original secondary order and SecondaryIndices recording source positions.
func Align(primary, secondary []Line, tolerance int) []Line {
	primaryTimes := make([]*timecode.Range, len(primary))
	for i, line := range primary {
		if r, ok := timecode.ParseRange(line.Timestamp); ok {
			primaryTimes[i] = &r
		}
	}

	assignments := make([][]secondaryAssignment, len(primary))
	for secIdx, sec := range secondary {
		st, ok := timecode.ParseRange(sec.Timestamp)
		if !ok {
			continue
		}

		type candidate struct {
			priIdx  int
			overlap int
		}
		var candidates []candidate
		for priIdx, pt := range primaryTimes {
			if pt == nil {
				continue
			}
			if !timecode.Overlaps(*pt, st, tolerance) {
				continue
			}
			candidates = append(candidates, candidate{priIdx: priIdx, overlap: timecode.OverlapMs(*pt, st)})
		}
		if len(candidates) == 0 {
			continue
		}

		best := 0
		for _, c := range candidates {
			if c.overlap > best {
				best = c.overlap
			}
		}
		threshold := float64(best) * nearTieShare
		for _, c := range candidates {
			if float64(c.overlap) >= threshold {
				assignments[c.priIdx] = append(assignments[c.priIdx], secondaryAssignment{
					text:  sec.Text,
					index: secIdx,
				})
			}
		}
	}

	aligned := make([]Line, len(primary))
	for priIdx, line := range primary {
		out := line.Clone()
		assigned := assignments[priIdx]
		sort.Slice(assigned, func(i, j int) bool { return assigned[i].index < assigned[j].index })

		if len(assigned) == 0 {
			out.SecondaryText = ""
			out.SecondaryIndices = []int{}
		} else {
			texts := make([]string, len(assigned))
			indices := make([]int, len(assigned))
			for i, a := range assigned {
				texts[i] = a.text
				indices[i] = a.index
			}
			out.SecondaryText = strings.Join(texts, "\n")
			out.SecondaryIndices = indices
		}
		aligned[priIdx] = out
	}
	return aligned
}
