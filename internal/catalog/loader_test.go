// Shelfmatch - Content-Based Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "books.csv")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
	return path
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"  Dune  ", "dune"},
		{"DUNE Messiah", "dune messiah"},
		{"\tfoundation\n", "foundation"},
		{"", ""},
		{"   ", ""},
		{"Ÿ Ärger", "ÿ ärger"},
	}
	for _, tt := range tests {
		got := Normalize(tt.in)
		if got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if again := Normalize(got); again != got {
			t.Errorf("Normalize not idempotent for %q: %q then %q", tt.in, got, again)
		}
	}
}

func TestBuild(t *testing.T) {
	rows := []Row{
		NewRow(" Dune ", "Frank Herbert"),
		NewRow("DUNE", "someone else"),
		NewRow("Foundation", "Isaac Asimov"),
		{Title: "Orphan", HasTitle: true},
		NewRow("   ", "nobody"),
		NewRow("Emma", "   "),
	}

	cat, stats := Build(rows)

	if cat.Len() != 2 {
		t.Fatalf("Len = %d, want 2", cat.Len())
	}
	if got := cat.At(0); got != (Item{Title: "dune", Authors: "frank herbert"}) {
		t.Errorf("At(0) = %+v", got)
	}
	if got := cat.At(1).Title; got != "foundation" {
		t.Errorf("At(1).Title = %q", got)
	}
	if stats.RowsRead != 6 || stats.Duplicates != 1 || stats.Incomplete != 3 || stats.Retained != 2 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestBuild_DedupBeforeFilter(t *testing.T) {
	// The first "dune" has no authors and is filtered out, but it still
	// shadows the complete row that follows.
	rows := []Row{
		{Title: "Dune", HasTitle: true},
		NewRow("dune", "frank herbert"),
		NewRow("emma", "jane austen"),
	}

	cat, stats := Build(rows)

	if cat.Len() != 1 || cat.At(0).Title != "emma" {
		t.Fatalf("items = %+v", cat.Items())
	}
	if stats.Duplicates != 1 || stats.Incomplete != 1 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestBuild_Invariants(t *testing.T) {
	rows := []Row{
		NewRow("A", "x"), NewRow("a ", "y"), NewRow("b", ""), NewRow("", "z"),
		{Authors: "w", HasAuthors: true}, NewRow("C", "q"), NewRow("c", "r"),
	}

	cat, _ := Build(rows)

	seen := map[string]bool{}
	for _, it := range cat.Items() {
		if it.Title == "" || it.Authors == "" {
			t.Errorf("incomplete item retained: %+v", it)
		}
		if seen[it.Title] {
			t.Errorf("duplicate title retained: %q", it.Title)
		}
		seen[it.Title] = true
	}
}

func TestLoad_CSV(t *testing.T) {
	path := writeDataset(t, "\ufeffbookID,Title,AUTHORS,rating\n"+
		"1,Dune,Frank Herbert,4.2\n"+
		"2,Dune Messiah,Frank Herbert,3.9\n"+
		"3,Broken,Row,4.0,extra,fields\n"+
		"4,No Author\n"+
		"5,\"Foundation, Book One\",Isaac Asimov,4.3\n"+
		"6,dune,Duplicate,1.0\n")

	cat, stats, err := Load(context.Background(), &CSVSource{Path: path})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := []string{"dune", "dune messiah", "foundation, book one"}
	if cat.Len() != len(want) {
		t.Fatalf("Len = %d, want %d: %+v", cat.Len(), len(want), cat.Items())
	}
	for i, title := range want {
		if cat.At(i).Title != title {
			t.Errorf("At(%d).Title = %q, want %q", i, cat.At(i).Title, title)
		}
	}
	if stats.Malformed != 1 || stats.Incomplete != 1 || stats.Duplicates != 1 || stats.Retained != 3 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.RowsRead != 6 {
		t.Errorf("RowsRead = %d, want 6", stats.RowsRead)
	}
	if stats.Source != SourceCSV || stats.Path != path {
		t.Errorf("source/path = %q/%q", stats.Source, stats.Path)
	}
}

func TestLoad_Unavailable(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{"missing file", func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.csv") }},
		{"empty file", func(t *testing.T) string { return writeDataset(t, "") }},
		{"no title column", func(t *testing.T) string { return writeDataset(t, "name,authors\nx,y\n") }},
		{"no authors column", func(t *testing.T) string { return writeDataset(t, "title,author\nx,y\n") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat, _, err := Load(context.Background(), &CSVSource{Path: tt.path(t)})
			if err == nil {
				t.Fatal("expected error")
			}
			if cat != nil {
				t.Error("expected nil catalog")
			}
			if !errors.Is(err, ErrDatasetUnavailable) {
				t.Errorf("errors.Is(ErrDatasetUnavailable) = false for %v", err)
			}
			var le *LoadError
			if !errors.As(err, &le) || le.Cause == nil {
				t.Errorf("expected *LoadError with cause, got %T %v", err, err)
			}
		})
	}
}

func TestLoad_InvalidUTF8(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"data row", "title,authors\n\xff\xfebad,who\ngood,me\n"},
		{"late row", "title,authors\ngood,me\nfine,you\nbad\xc3,them\n"},
		{"header", "ti\xfftle,authors\ngood,me\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat, _, err := Load(context.Background(), &CSVSource{Path: writeDataset(t, tt.content)})
			if !errors.Is(err, ErrDatasetUnavailable) {
				t.Fatalf("err = %v, want ErrDatasetUnavailable", err)
			}
			if cat != nil {
				t.Error("expected nil catalog")
			}
		})
	}
}

func TestLoad_MissingValueMarkers(t *testing.T) {
	path := writeDataset(t, "title,authors\n"+
		"Dune,Frank Herbert\n"+
		"Emma,N/A\n"+
		"Ulysses,NULL\n"+
		"NaN,Someone\n"+
		"Persuasion,nan\n"+
		"Nada,na\n")

	cat, stats, err := Load(context.Background(), &CSVSource{Path: path})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := []string{"dune", "nada"}
	if cat.Len() != len(want) {
		t.Fatalf("Len = %d, want %d: %+v", cat.Len(), len(want), cat.Items())
	}
	for i, title := range want {
		if cat.At(i).Title != title {
			t.Errorf("At(%d).Title = %q, want %q", i, cat.At(i).Title, title)
		}
	}
	if stats.Incomplete != 4 {
		t.Errorf("Incomplete = %d, want 4", stats.Incomplete)
	}
}

func TestIsMissingValue(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"NA", true},
		{"N/A", true},
		{"NULL", true},
		{"None", true},
		{"nan", true},
		{"<NA>", true},
		{"na", false},
		{" NA", false},
		{"Null", false},
		{"Frank Herbert", false},
	}
	for _, tt := range tests {
		if got := IsMissingValue(tt.in); got != tt.want {
			t.Errorf("IsMissingValue(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLoad_MissingFileCause(t *testing.T) {
	_, _, err := Load(context.Background(), &CSVSource{Path: filepath.Join(t.TempDir(), "gone.csv")})
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected cause to be os.ErrNotExist, got %v", err)
	}
}

func TestLoad_Cancelled(t *testing.T) {
	path := writeDataset(t, "title,authors\ndune,herbert\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := Load(ctx, &CSVSource{Path: path})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestNewSource(t *testing.T) {
	tests := []struct {
		kind    string
		want    string
		wantErr bool
	}{
		{"", SourceCSV, false},
		{"csv", SourceCSV, false},
		{"DuckDB", SourceDuckDB, false},
		{"parquet", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			src, err := NewSource(tt.kind, "books.csv")
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && src.Name() != tt.want {
				t.Errorf("Name = %q, want %q", src.Name(), tt.want)
			}
		})
	}
}

func TestReadCSVQuery(t *testing.T) {
	got := readCSVQuery("/data/o'brien.csv")
	want := "SELECT title, authors FROM read_csv('/data/o''brien.csv', header = true, all_varchar = true, ignore_errors = true)"
	if got != want {
		t.Errorf("readCSVQuery = %s", got)
	}
}
