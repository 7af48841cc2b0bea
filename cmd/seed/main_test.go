package main

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestReadBooksCSV(t *testing.T) {
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("runtime.Caller failed")
	}
	repoRoot := filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", ".."))
	path := filepath.Join(repoRoot, "data", "book-details.csv")

	books, err := readBooksCSV(path)
	if err != nil {
		t.Fatalf("readBooksCSV: %v", err)
	}
	if len(books) == 0 {
		t.Fatal("expected at least one book from the seed CSV")
	}
	for i, b := range books {
		if b.Title == "" || b.Author == "" {
			t.Fatalf("row %d: title and author must be present, got %+v", i, b)
		}
		if b.Price < 0 || b.ReviewCount < 0 {
			t.Fatalf("row %d: negative price or review count: %+v", i, b)
		}
	}
}

func TestReadBooksCSV_MissingColumns(t *testing.T) {
	f := filepath.Join(t.TempDir(), "bad.csv")
	if err := os.WriteFile(f, []byte("Name,Author\nA Book,Someone\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := readBooksCSV(f); err == nil {
		t.Fatal("expected an error for a CSV missing required columns")
	}
}
