// Package project reads and writes portable .saproj files: a JSON envelope
// wrapping a full session state so annotation work can move between
// machines without the session database.
package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"regexp"
	"time"

	"subcast/internal/annotation"
)

// FormatID identifies a subcast project file.
const FormatID = "subtitle-annotator-project"

// FormatVersion is written into every exported envelope.
const FormatVersion = "1.0"

// Extension is the conventional project file extension.
const Extension = ".saproj"

// ErrInvalidProject indicates the file is not a project envelope or is
// missing required data.
var ErrInvalidProject = errors.New("not a valid subtitle annotator project file")

// Envelope is the on-disk project structure.
type Envelope struct {
	Format     string            `json:"_format"`
	Version    string            `json:"_version"`
	ExportedAt string            `json:"exportedAt"`
	AppState   *annotation.State `json:"appState"`
}

// Write serializes the session state into a project envelope. The state is
// deep-copied so later mutations do not leak into the written payload.
func Write(w io.Writer, state *annotation.State) error {
	if state == nil {
		return errors.New("state is nil")
	}
	envelope := Envelope{
		Format:     FormatID,
		Version:    FormatVersion,
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		AppState:   state.Clone(),
	}
	encoded, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal project: %w", err)
	}
	if _, err := w.Write(append(encoded, '\n')); err != nil {
		return fmt.Errorf("write project: %w", err)
	}
	return nil
}

// Read parses and validates a project envelope, returning its normalized
// session state. Importing a project always starts with empty undo history.
func Read(r io.Reader) (*annotation.State, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read project: %w", err)
	}

	var envelope Envelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("parse project: %w", err)
	}
	if envelope.Format != FormatID {
		return nil, fmt.Errorf("%w: format %q", ErrInvalidProject, envelope.Format)
	}
	if envelope.AppState == nil || envelope.AppState.Subtitles == nil {
		return nil, fmt.Errorf("%w: missing session data", ErrInvalidProject)
	}

	state := envelope.AppState
	state.Normalize()
	return state, nil
}

var subtitleExtRe = regexp.MustCompile(`(?i)\.(srt|ass)$`)

// OutputName derives the project filename from the session filename.
func OutputName(filename string) string {
	return subtitleExtRe.ReplaceAllString(filename, "") + Extension
}
