package subtitles_test

import (
	"strings"
	"testing"

	"subcast/internal/subtitles"
)

const sampleASS = `[Script Info]
Title: Sample

[V4+ Styles]
Format: Name, Fontname
Style: Default,Arial
Style: Default-ja,Arial
Style: OP-Romaji,Arial

[Events]
Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text
Dialogue: 0,0:00:01.00,0:00:03.00,Default,Mikoto,0,0,0,,{\be2}Hello, and welcome.
Dialogue: 0,0:00:04.00,0:00:06.00,Default,,0,0,0,,（アカリ）おはよう\Nまた明日
Dialogue: 0,0:00:07.00,0:00:09.00,OP-Romaji,,0,0,0,,song lyrics here
Dialogue: 0,0:00:10.00,0:00:12.00,Default-ja,Signs,0,0,0,,看板のテキスト
Dialogue: 0,0:00:13.00,0:00:14.00,Default,Mikoto,0,0,0
`

func TestParseASS(t *testing.T) {
	lines := subtitles.ParseASS(sampleASS, nil)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}

	first := lines[0]
	if first.Index != 0 {
		t.Fatalf("expected sequential index from zero, got %d", first.Index)
	}
	if first.Timestamp != "0:00:01.00 --> 0:00:03.00" {
		t.Fatalf("unexpected timestamp %q", first.Timestamp)
	}
	if first.Text != "{\\be2}Hello, and welcome." {
		t.Fatalf("expected override tags preserved in stored text, got %q", first.Text)
	}
	if first.Character != "Mikoto" || !first.Prefilled {
		t.Fatalf("expected Name-field prefill, got %+v", first)
	}
}

func TestParseASSPreservesCommasAndReplacesBreaks(t *testing.T) {
	content := "[Events]\nDialogue: 0,0:00:01.00,0:00:02.00,Default,,0,0,0,,First, second,\\Nthird\n"
	lines := subtitles.ParseASS(content, nil)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Text != "First, second, third" {
		t.Fatalf("unexpected text %q", lines[0].Text)
	}
}

func TestParseASSFullwidthFallback(t *testing.T) {
	lines := subtitles.ParseASS(sampleASS, nil)
	second := lines[1]
	if second.Character != "アカリ" || !second.Prefilled {
		t.Fatalf("expected fullwidth-token prefill, got %+v", second)
	}
}

func TestParseASSSkipsNonDialogueStyles(t *testing.T) {
	lines := subtitles.ParseASS(sampleASS, nil)
	for _, line := range lines {
		if strings.Contains(line.Text, "song lyrics") {
			t.Fatal("expected romaji style to be skipped")
		}
	}
}

func TestParseASSAllowedStyles(t *testing.T) {
	lines := subtitles.ParseASS(sampleASS, []string{"Default-ja"})
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Text != "看板のテキスト" {
		t.Fatalf("unexpected text %q", lines[0].Text)
	}
}

func TestParseASSNameFieldFiltering(t *testing.T) {
	for _, name := range []string{"Signs", "Default", "note ♪"} {
		content := "[Events]\nDialogue: 0,0:00:01.00,0:00:02.00,Default," + name + ",0,0,0,,Spoken text\n"
		lines := subtitles.ParseASS(content, nil)
		if len(lines) != 1 {
			t.Fatalf("%s: expected 1 line, got %d", name, len(lines))
		}
		if lines[0].Prefilled || lines[0].Character != "" {
			t.Fatalf("%s: expected no prefill, got %+v", name, lines[0])
		}
	}
}

func TestParseASSSkipsShortRows(t *testing.T) {
	lines := subtitles.ParseASS(sampleASS, nil)
	for _, line := range lines {
		if line.Timestamp == "0:00:13.00 --> 0:00:14.00" {
			t.Fatal("expected nine-field row to be skipped")
		}
	}
}

func TestDetectDualLanguageStyles(t *testing.T) {
	pair, ok := subtitles.DetectDualLanguageStyles(sampleASS)
	if !ok {
		t.Fatal("expected dual-language pair")
	}
	if pair.Primary != "Default" || pair.Secondary != "Default-ja" {
		t.Fatalf("unexpected pair %+v", pair)
	}
}

func TestDetectDualLanguageStylesSingleLanguage(t *testing.T) {
	content := "[V4+ Styles]\nStyle: Default,Arial\nStyle: Signs,Arial\n"
	if _, ok := subtitles.DetectDualLanguageStyles(content); ok {
		t.Fatal("expected no pair for single-language file")
	}
}

func TestStripOverrideTags(t *testing.T) {
	got := subtitles.StripOverrideTags(`{\fad(150,255)}{\pos(320,50)}Line text  `)
	if got != "Line text" {
		t.Fatalf("unexpected stripped text %q", got)
	}
	if subtitles.StripOverrideTags("") != "" {
		t.Fatal("expected empty text unchanged")
	}
}

func TestIsNonCharacterName(t *testing.T) {
	for _, name := range []string{"Signs", "signs-overlay", "Default", "StyleA", "足音", "♪"} {
		if !subtitles.IsNonCharacterName(name) {
			t.Fatalf("expected %q to be filtered", name)
		}
	}
	for _, name := range []string{"Mikoto", "アカリ"} {
		if subtitles.IsNonCharacterName(name) {
			t.Fatalf("expected %q to pass", name)
		}
	}
}
