package source

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestFileSourceExpandsRecursiveGlobs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "pa", "b.xml"), "<NewsML/>")
	writeFile(t, filepath.Join(dir, "pa", "a.xml"), "<NewsML/>")
	writeFile(t, filepath.Join(dir, "reuters", "2015", "c.xml"), "<newsMessage/>")
	writeFile(t, filepath.Join(dir, "notes.txt"), "ignore me")

	src := NewFileSource([]string{filepath.Join(dir, "**", "*.xml")}, nil, nil)
	bulletins, err := src.Bulletins(context.Background())
	if err != nil {
		t.Fatalf("Bulletins error: %v", err)
	}

	if len(bulletins) != 3 {
		t.Fatalf("expected 3 bulletins, got %d", len(bulletins))
	}
	if !strings.HasSuffix(bulletins[0].Name, filepath.Join("pa", "a.xml")) {
		t.Fatalf("expected sorted order, first is %s", bulletins[0].Name)
	}
	if string(bulletins[2].Body) != "<newsMessage/>" {
		t.Fatalf("unexpected body: %s", bulletins[2].Body)
	}
}

func TestFileSourceDeduplicatesOverlappingPatterns(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "a.xml")
	writeFile(t, path, "<NewsML/>")

	src := NewFileSource([]string{path, filepath.Join(dir, "*.xml")}, nil, nil)
	bulletins, err := src.Bulletins(context.Background())
	if err != nil {
		t.Fatalf("Bulletins error: %v", err)
	}
	if len(bulletins) != 1 {
		t.Fatalf("expected 1 bulletin, got %d", len(bulletins))
	}
}

func TestFileSourceNoMatches(t *testing.T) {
	t.Parallel()

	src := NewFileSource([]string{filepath.Join(t.TempDir(), "*.xml")}, nil, nil)
	if _, err := src.Bulletins(context.Background()); err == nil {
		t.Fatal("expected error for empty glob")
	}
}

func TestFileSourceReadsStdin(t *testing.T) {
	t.Parallel()

	src := NewFileSource(nil, strings.NewReader("<NewsML/>"), nil)
	bulletins, err := src.Bulletins(context.Background())
	if err != nil {
		t.Fatalf("Bulletins error: %v", err)
	}
	if len(bulletins) != 1 || bulletins[0].Name != StdinName {
		t.Fatalf("unexpected bulletins: %+v", bulletins)
	}
}
