package timecode_test

import (
	"testing"

	"subcast/internal/timecode"
)

func TestParseRangeSRT(t *testing.T) {
	r, ok := timecode.ParseRange("00:00:01,000 --> 00:00:03,500")
	if !ok {
		t.Fatal("expected range to parse")
	}
	if r.Start != 1000 || r.End != 3500 {
		t.Fatalf("unexpected range: %+v", r)
	}
}

func TestParseRangeASS(t *testing.T) {
	r, ok := timecode.ParseRange("0:01:02.05 --> 0:01:04.50")
	if !ok {
		t.Fatal("expected range to parse")
	}
	if r.Start != 62050 {
		t.Fatalf("expected start 62050, got %d", r.Start)
	}
	if r.End != 64500 {
		t.Fatalf("expected end 64500, got %d", r.End)
	}
}

func TestParseRangeFractionNormalization(t *testing.T) {
	cases := []struct {
		frac string
		ms   int
	}{
		{"5", 500},
		{"50", 500},
		{"500", 500},
		{"501", 501},
		{"5012", 501},
	}
	for _, tc := range cases {
		r, ok := timecode.ParseRange("0:00:00." + tc.frac + " --> 0:00:01." + tc.frac)
		if !ok {
			t.Fatalf("fraction %q: expected range to parse", tc.frac)
		}
		if r.Start != tc.ms {
			t.Fatalf("fraction %q: expected %d ms, got %d", tc.frac, tc.ms, r.Start)
		}
	}
}

func TestParseRangeRejectsMalformedSplit(t *testing.T) {
	if _, ok := timecode.ParseRange("00:00:01,000"); ok {
		t.Fatal("expected single side to be rejected")
	}
	if _, ok := timecode.ParseRange("a --> b --> c"); ok {
		t.Fatal("expected three-part split to be rejected")
	}
}

func TestParseRangeMalformedSideIsZero(t *testing.T) {
	r, ok := timecode.ParseRange("garbage --> 00:00:02,000")
	if !ok {
		t.Fatal("expected range to parse")
	}
	if r.Start != 0 || r.End != 2000 {
		t.Fatalf("unexpected range: %+v", r)
	}
}

func TestParseRangeStartNotAfterEnd(t *testing.T) {
	ranges := []string{
		"00:00:01,000 --> 00:00:03,000",
		"0:00:01.50 --> 0:00:01.50",
		"01:02:03,004 --> 01:02:03,999",
	}
	for _, text := range ranges {
		r, ok := timecode.ParseRange(text)
		if !ok {
			t.Fatalf("%q: expected range to parse", text)
		}
		if r.Start > r.End {
			t.Fatalf("%q: start %d after end %d", text, r.Start, r.End)
		}
	}
}

func TestOverlapMs(t *testing.T) {
	a := timecode.Range{Start: 0, End: 1000}
	b := timecode.Range{Start: 500, End: 1500}
	if got := timecode.OverlapMs(a, b); got != 500 {
		t.Fatalf("expected 500, got %d", got)
	}
	c := timecode.Range{Start: 2000, End: 3000}
	if got := timecode.OverlapMs(a, c); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestOverlapsSymmetry(t *testing.T) {
	cases := []struct {
		a, b      timecode.Range
		tolerance int
	}{
		{timecode.Range{0, 1000}, timecode.Range{900, 2000}, 0},
		{timecode.Range{0, 1000}, timecode.Range{1400, 2000}, 500},
		{timecode.Range{0, 1000}, timecode.Range{1600, 2000}, 500},
		{timecode.Range{0, 0}, timecode.Range{0, 0}, 0},
	}
	for _, tc := range cases {
		ab := timecode.Overlaps(tc.a, tc.b, tc.tolerance)
		ba := timecode.Overlaps(tc.b, tc.a, tc.tolerance)
		if ab != ba {
			t.Fatalf("asymmetric overlap for %+v / %+v", tc.a, tc.b)
		}
	}
}

func TestOverlapsTolerance(t *testing.T) {
	a := timecode.Range{Start: 0, End: 1000}
	b := timecode.Range{Start: 1400, End: 2000}
	if !timecode.Overlaps(a, b, 500) {
		t.Fatal("expected overlap within tolerance")
	}
	if timecode.Overlaps(a, b, 0) {
		t.Fatal("expected no overlap without tolerance")
	}
}
