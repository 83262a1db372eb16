package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteSubtitleFile writes a subtitle fixture under a temp directory and
// returns its path.
func WriteSubtitleFile(t testing.TB, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
