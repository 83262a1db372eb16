package export

import (
	"fmt"
	"io"
	"strings"

	"subcast/internal/annotation"
	"subcast/internal/scenes"
)

// unknownSpeaker labels unannotated lines in screenplay output.
const unknownSpeaker = "[Unknown]"

// WriteTXT emits screenplay-style text: "Name: dialogue" lines grouped by
// speaker, with scene markers between scenes. When SuppressRepeatedNames is
// set, consecutive lines from the same speaker within a scene omit the
// name.
func WriteTXT(w io.Writer, state *annotation.State, opts Options) error {
	hasScenes := len(state.SceneBreaks) > 0

	var lines []string
	previousName := ""
	previousScene := 0
	first := true

	for _, e := range selectLines(state, opts) {
		name := canonicalName(state, e.line.Character)
		if name == "" {
			name = unknownSpeaker
		}

		sceneID := 0
		if hasScenes {
			sceneID = scenes.IDOf(state.SceneBreaks, e.position)
		}

		nameChanged := previousName != name
		sceneChanged := hasScenes && !first && sceneID != previousScene

		if hasScenes && first {
			lines = append(lines, "--- Scene 1 ---", "")
		}
		if sceneChanged {
			if len(lines) > 0 {
				lines = append(lines, "")
			}
			lines = append(lines, fmt.Sprintf("--- Scene %d ---", sceneID), "")
		}

		var dialogueLine string
		if opts.SuppressRepeatedNames && !nameChanged && !sceneChanged && !first {
			dialogueLine = e.line.Text
		} else {
			dialogueLine = name + ": " + e.line.Text
		}

		switch {
		case first, sceneChanged:
			lines = append(lines, dialogueLine)
		case nameChanged:
			lines = append(lines, "", dialogueLine)
		default:
			lines = append(lines, dialogueLine)
		}

		previousName = name
		previousScene = sceneID
		first = false
	}

	if _, err := io.WriteString(w, strings.Join(lines, "\n")); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}
