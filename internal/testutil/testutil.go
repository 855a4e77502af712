// Package testutil provides shared test helpers for setting up notes directories.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/starford/denote/internal/storage"
)

// TestVault creates a temporary notes directory with a storage.FS rooted at it.
func TestVault(t *testing.T) (string, *storage.FS) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewFS(dir)
	if err != nil {
		t.Fatal(err)
	}
	return dir, store
}

// Touch creates each named file in dir with its name as content.
func Touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(name), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

// ReadFile returns the content of dir/name, failing the test when it is missing.
func ReadFile(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}
