package common

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadInput_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	if err := os.WriteFile(path, []byte("<html><body>hi</body></html>"), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	html, source, err := ReadInput(path, false, "")
	if err != nil {
		t.Fatalf("ReadInput() error = %v", err)
	}
	if html != "<html><body>hi</body></html>" {
		t.Errorf("html = %q", html)
	}
	if source != path {
		t.Errorf("source = %q, want file path", source)
	}
}

func TestReadInput_MissingFile(t *testing.T) {
	if _, _, err := ReadInput(filepath.Join(t.TempDir(), "nope.html"), false, ""); err == nil {
		t.Error("ReadInput() = nil error for missing file")
	}
}

func TestReadInput_NoOrigin(t *testing.T) {
	if _, _, err := ReadInput("", false, ""); err == nil {
		t.Error("ReadInput() = nil error with no input origin")
	}
}

func TestContentHash(t *testing.T) {
	a := ContentHash([]byte("hello"))
	b := ContentHash([]byte("hello"))
	c := ContentHash([]byte("world"))

	if a != b {
		t.Error("ContentHash() not deterministic")
	}
	if a == c {
		t.Error("ContentHash() collided on different input")
	}
	if len(a) != 64 {
		t.Errorf("hash length = %d, want 64 hex chars", len(a))
	}
}
