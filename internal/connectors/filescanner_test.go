package connectors

import (
	"os"
	"path/filepath"
	"testing"
)

func TestListFilesMissingDir(t *testing.T) {
	files, err := ListFiles(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("ListFiles() on missing dir: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("Expected no files, got %d", len(files))
	}
}

func TestListFilesEmptyRoot(t *testing.T) {
	if _, err := ListFiles(""); err == nil {
		t.Error("Expected error for empty root")
	}
}

func TestListFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "b.csv"), []byte("x,y\n1,2\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "a.parquet"), []byte("PAR1"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatal(err)
	}

	files, err := ListFiles(dir)
	if err != nil {
		t.Fatalf("ListFiles() failed: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("Expected 2 files, got %d", len(files))
	}
	if filepath.Base(files[0].Path) != "a.parquet" || filepath.Base(files[1].Path) != "b.csv" {
		t.Errorf("Expected name order, got %q then %q", files[0].Path, files[1].Path)
	}
	if files[0].Size != 4 {
		t.Errorf("Expected size 4 for a.parquet, got %d", files[0].Size)
	}
}
