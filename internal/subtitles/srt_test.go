package subtitles_test

import (
	"testing"

	"subcast/internal/subtitles"
)

const sampleSRT = "1\n00:00:01,000 --> 00:00:03,000\nHello there.\n\n" +
	"2\n00:00:04,000 --> 00:00:06,000\n〈（ミコト）どうしたの？〉\n\n" +
	"3\n00:00:07,000 --> 00:00:09,000\nFirst line\nSecond line\n"

func TestParseSRT(t *testing.T) {
	lines := subtitles.ParseSRT(sampleSRT)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0].Index != 1 || lines[0].Text != "Hello there." {
		t.Fatalf("unexpected first line: %+v", lines[0])
	}
	if lines[0].Character != "" || lines[0].Prefilled {
		t.Fatalf("expected first line unannotated: %+v", lines[0])
	}
	if lines[2].Text != "First line\nSecond line" {
		t.Fatalf("expected multi-line body joined by newline, got %q", lines[2].Text)
	}
}

func TestParseSRTPrefillsFullwidthName(t *testing.T) {
	lines := subtitles.ParseSRT(sampleSRT)
	if lines[1].Character != "ミコト" {
		t.Fatalf("expected prefilled character, got %q", lines[1].Character)
	}
	if !lines[1].Prefilled {
		t.Fatal("expected line to be marked prefilled")
	}
}

func TestParseSRTSkipsUndersizedBlocks(t *testing.T) {
	content := "1\n00:00:01,000 --> 00:00:03,000\n\n" + // two physical lines only
		"2\n00:00:04,000 --> 00:00:06,000\nKept.\n"
	lines := subtitles.ParseSRT(content)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Text != "Kept." {
		t.Fatalf("unexpected survivor: %+v", lines[0])
	}
}

func TestParseSRTEmptyContent(t *testing.T) {
	if lines := subtitles.ParseSRT("   \n\n  "); len(lines) != 0 {
		t.Fatalf("expected no lines, got %d", len(lines))
	}
}

func TestParseSRTBlankLineWithSpacesSeparatesBlocks(t *testing.T) {
	content := "1\n00:00:01,000 --> 00:00:02,000\nOne.\n   \n2\n00:00:03,000 --> 00:00:04,000\nTwo.\n"
	lines := subtitles.ParseSRT(content)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
}
