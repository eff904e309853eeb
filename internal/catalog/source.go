// Shelfmatch - Content-Based Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

package catalog

import (
	"context"
	"fmt"
	"strings"
)

// Source kinds accepted by NewSource.
const (
	SourceCSV    = "csv"
	SourceDuckDB = "duckdb"
)

// missingValues are cell contents read as absent, matching the default NA
// markers of common dataframe CSV readers. Comparison is exact.
var missingValues = map[string]struct{}{
	"": {}, "#N/A": {}, "#N/A N/A": {}, "#NA": {}, "-1.#IND": {}, "-1.#QNAN": {},
	"-NaN": {}, "-nan": {}, "1.#IND": {}, "1.#QNAN": {}, "<NA>": {}, "N/A": {},
	"NA": {}, "NULL": {}, "NaN": {}, "None": {}, "n/a": {}, "nan": {}, "null": {},
}

// IsMissingValue reports whether a raw cell counts as an absent field.
func IsMissingValue(s string) bool {
	_, ok := missingValues[s]
	return ok
}

// Row is one raw dataset row before cleaning. A field that is missing from
// the row, empty, or a missing-value marker such as "N/A" or "NULL" has its
// Has flag set to false.
type Row struct {
	Title      string
	Authors    string
	HasTitle   bool
	HasAuthors bool
}

// NewRow returns a row with both fields present.
func NewRow(title, authors string) Row {
	return Row{Title: title, Authors: authors, HasTitle: true, HasAuthors: true}
}

// RawTable is what a Source reads: the rows in file order and how many
// malformed rows were skipped on the way.
type RawTable struct {
	Rows      []Row
	Malformed int
}

// Source reads raw rows from a dataset.
type Source interface {
	// Name identifies the source kind in logs and stats.
	Name() string
	// Location is the path being read.
	Location() string
	// Read returns all rows. A dataset that cannot be opened or lacks the
	// required columns returns a *LoadError.
	Read(ctx context.Context) (*RawTable, error)
}

// NewSource returns the Source for kind ("csv" or "duckdb").
func NewSource(kind, path string) (Source, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", SourceCSV:
		return &CSVSource{Path: path}, nil
	case SourceDuckDB:
		return &DuckDBSource{Path: path}, nil
	default:
		return nil, fmt.Errorf("unknown catalog source %q (valid: csv, duckdb)", kind)
	}
}
