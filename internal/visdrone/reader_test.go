package visdrone

import (
	"os"
	"path/filepath"
	"testing"
)

func writeAnnotationFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seq1.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestParseFile_AllValid(t *testing.T) {
	path := writeAnnotationFile(t, "1,1,10,20,30,40,1,1,0,0\n1,2,50,60,10,10,1,4,0,0\n")

	rows, skipped, err := ParseFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if len(skipped) != 0 {
		t.Errorf("got %d skipped lines, want 0", len(skipped))
	}
	if rows[0].Target != 1 || rows[1].Target != 2 {
		t.Errorf("rows out of file order: %+v", rows)
	}
}

func TestParseFile_MalformedLineSkipped(t *testing.T) {
	path := writeAnnotationFile(t, "1,1,10,20,30,40,1,1,0,0\n1,1,10,20\n2,1,11,21,30,40,1,1,0,0\n")

	rows, skipped, err := ParseFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2 (bad line must not abort the file)", len(rows))
	}
	if len(skipped) != 1 {
		t.Fatalf("got %d skipped lines, want 1", len(skipped))
	}
	if skipped[0].Line != 2 {
		t.Errorf("skipped line number = %d, want 2", skipped[0].Line)
	}
	if skipped[0].Reason == "" {
		t.Error("skipped line has no reason")
	}
}

func TestParseFile_BlankLinesIgnored(t *testing.T) {
	path := writeAnnotationFile(t, "\n1,1,10,20,30,40,1,1,0,0\n\n  \n2,1,10,20,30,40,1,1,0,0\n")

	rows, skipped, err := ParseFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Errorf("got %d rows, want 2", len(rows))
	}
	if len(skipped) != 0 {
		t.Errorf("blank lines must be ignored silently, got %d skips", len(skipped))
	}
}

func TestParseFile_Missing(t *testing.T) {
	if _, _, err := ParseFile(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}
