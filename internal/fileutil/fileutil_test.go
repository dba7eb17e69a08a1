package fileutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "exists.md")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if !FileExists(file) {
		t.Error("FileExists(existing file) = false")
	}
	if FileExists(filepath.Join(dir, "missing.md")) {
		t.Error("FileExists(missing file) = true")
	}
	if FileExists(dir) {
		t.Error("FileExists(directory) = true")
	}
}

func TestWriteTemp(t *testing.T) {
	t.Parallel()

	path, cleanup, err := WriteTemp("<html></html>", "html")
	if err != nil {
		t.Fatalf("WriteTemp: %v", err)
	}
	defer cleanup()

	if !strings.HasSuffix(path, ".html") {
		t.Errorf("path = %q, want .html suffix", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading temp file: %v", err)
	}
	if string(data) != "<html></html>" {
		t.Errorf("content = %q", data)
	}

	cleanup()
	if FileExists(path) {
		t.Error("cleanup did not remove the temp file")
	}
}

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "out.pdf")

	if err := WriteFileAtomic(path, []byte("first"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "first" {
		t.Errorf("content = %q, want %q", data, "first")
	}

	// Overwrite replaces the previous content.
	if err := WriteFileAtomic(path, []byte("second"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic overwrite: %v", err)
	}
	data, _ = os.ReadFile(path)
	if string(data) != "second" {
		t.Errorf("content after overwrite = %q, want %q", data, "second")
	}

	// No temp droppings left behind.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want 1", len(entries))
	}
}

func TestWriteFileAtomicMissingDir(t *testing.T) {
	t.Parallel()

	err := WriteFileAtomic(filepath.Join(t.TempDir(), "nope", "out.pdf"), []byte("x"), 0o644)
	if err == nil {
		t.Error("expected error for missing directory")
	}
}
