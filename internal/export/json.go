package export

import (
	"encoding/json"
	"fmt"
	"io"

	"subcast/internal/annotation"
	"subcast/internal/scenes"
)

type lineRecord struct {
	Timestamp string  `json:"timestamp"`
	Character *string `json:"character"`
	Dialogue  string  `json:"dialogue"`
}

type sceneRecord struct {
	SceneID int          `json:"sceneId"`
	Lines   []lineRecord `json:"lines"`
}

// WriteJSON emits a flat array of line records, or an array of scene
// objects with nested lines once scene breaks exist.
func WriteJSON(w io.Writer, state *annotation.State, opts Options) error {
	entries := selectLines(state, opts)

	var payload any
	if len(state.SceneBreaks) > 0 {
		var ordered []*sceneRecord
		byID := make(map[int]*sceneRecord)
		for _, e := range entries {
			id := scenes.IDOf(state.SceneBreaks, e.position)
			scene, ok := byID[id]
			if !ok {
				scene = &sceneRecord{SceneID: id, Lines: []lineRecord{}}
				byID[id] = scene
				ordered = append(ordered, scene)
			}
			scene.Lines = append(scene.Lines, record(state, e))
		}
		if ordered == nil {
			ordered = []*sceneRecord{}
		}
		payload = ordered
	} else {
		records := make([]lineRecord, 0, len(entries))
		for _, e := range entries {
			records = append(records, record(state, e))
		}
		payload = records
	}

	encoded, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal export: %w", err)
	}
	if _, err := w.Write(append(encoded, '\n')); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}

func record(state *annotation.State, e entry) lineRecord {
	rec := lineRecord{
		Timestamp: e.line.Timestamp,
		Dialogue:  e.line.Text,
	}
	if name := canonicalName(state, e.line.Character); name != "" {
		rec.Character = &name
	}
	return rec
}
