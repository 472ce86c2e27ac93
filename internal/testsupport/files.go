package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// MarkupTemplate is a minimal valid vector document used as test input.
const MarkupTemplate = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">
<circle cx="12" cy="12" r="%d"/>
</svg>
`

// WriteFile writes content to path, creating parent directories as needed.
func WriteFile(t testing.TB, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteMarkup writes a small vector file to path. The radius varies the
// content between fixtures.
func WriteMarkup(t testing.TB, path string, radius int) {
	t.Helper()
	WriteFile(t, path, fmt.Sprintf(MarkupTemplate, radius))
}
