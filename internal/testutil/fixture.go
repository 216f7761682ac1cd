package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFixture writes data to a file named name in a fresh temporary
// directory and returns its path.
func WriteFixture(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write fixture %s: %v", path, err)
	}
	return path
}

// Sequence returns n bytes counting up from zero, wrapping at 256.
func Sequence(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i)
	}
	return data
}
