package project_test

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"subcast/internal/annotation"
	"subcast/internal/characters"
	"subcast/internal/project"
	"subcast/internal/subtitles"
)

func sampleState() *annotation.State {
	state := &annotation.State{
		Filename: "episode01.srt",
		Subtitles: []subtitles.Line{
			{Index: 1, Timestamp: "00:00:01,000 --> 00:00:02,000", Text: "Hello.", Character: "Rei"},
		},
		Characters: []characters.Character{
			{Name: characters.OtherName, CanonicalName: characters.OtherName},
			{Name: "Rei", CanonicalName: "Rei", Count: 1},
		},
	}
	state.Normalize()
	return state
}

func TestWriteReadRoundTrip(t *testing.T) {
	state := sampleState()

	var buf bytes.Buffer
	if err := project.Write(&buf, state); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.Contains(buf.String(), `"_format": "subtitle-annotator-project"`) {
		t.Fatalf("envelope missing format marker:\n%s", buf.String())
	}

	loaded, err := project.Read(&buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !reflect.DeepEqual(loaded, state) {
		t.Fatalf("loaded = %+v, want %+v", loaded, state)
	}
}

func TestReadRejectsWrongFormat(t *testing.T) {
	input := `{"_format": "something-else", "appState": {"subtitles": []}}`
	if _, err := project.Read(strings.NewReader(input)); !errors.Is(err, project.ErrInvalidProject) {
		t.Fatalf("err = %v, want ErrInvalidProject", err)
	}
}

func TestReadRejectsMissingState(t *testing.T) {
	input := `{"_format": "subtitle-annotator-project", "_version": "1.0"}`
	if _, err := project.Read(strings.NewReader(input)); !errors.Is(err, project.ErrInvalidProject) {
		t.Fatalf("err = %v, want ErrInvalidProject", err)
	}
}

func TestReadRejectsMalformedJSON(t *testing.T) {
	if _, err := project.Read(strings.NewReader("{not json")); err == nil {
		t.Fatal("malformed JSON accepted")
	}
}

func TestOutputName(t *testing.T) {
	if got := project.OutputName("episode01.srt"); got != "episode01.saproj" {
		t.Fatalf("OutputName = %q", got)
	}
}
