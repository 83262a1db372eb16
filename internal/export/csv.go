package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"subcast/internal/annotation"
	"subcast/internal/scenes"
)

// WriteCSV emits one row per line with a header. A scene column appears
// once scene breaks exist.
func WriteCSV(w io.Writer, state *annotation.State, opts Options) error {
	if opts.ByteOrderMark {
		if _, err := w.Write([]byte("\uFEFF")); err != nil {
			return fmt.Errorf("write BOM: %w", err)
		}
	}

	writer := csv.NewWriter(w)
	hasScenes := len(state.SceneBreaks) > 0

	header := []string{"timestamp", "character", "dialogue"}
	if hasScenes {
		header = append([]string{"scene"}, header...)
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, e := range selectLines(state, opts) {
		row := []string{
			e.line.Timestamp,
			canonicalName(state, e.line.Character),
			e.line.Text,
		}
		if hasScenes {
			row = append([]string{strconv.Itoa(scenes.IDOf(state.SceneBreaks, e.position))}, row...)
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
