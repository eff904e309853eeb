// Shelfmatch - Content-Based Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "github.com/duckdb/duckdb-go/v2" // registers the "duckdb" driver
)

// duckDBDSN is an in-memory database with extension autoloading off; the
// loader only needs the built-in CSV reader.
const duckDBDSN = ":memory:?autoinstall_known_extensions=false&autoload_known_extensions=false"

// DuckDBSource reads the dataset with DuckDB's read_csv. Rows DuckDB cannot
// parse are dropped by ignore_errors and are not counted as malformed.
type DuckDBSource struct {
	Path string
}

// Name implements Source.
func (s *DuckDBSource) Name() string { return SourceDuckDB }

// Location implements Source.
func (s *DuckDBSource) Location() string { return s.Path }

// Read implements Source.
func (s *DuckDBSource) Read(ctx context.Context) (*RawTable, error) {
	// read_csv on a missing file fails with an IO error; stat first so the
	// cause is the familiar *fs.PathError.
	if _, err := os.Stat(s.Path); err != nil {
		return nil, newLoadError(SourceDuckDB, s.Path, err)
	}

	db, err := sql.Open("duckdb", duckDBDSN)
	if err != nil {
		return nil, newLoadError(SourceDuckDB, s.Path, fmt.Errorf("open duckdb: %w", err))
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	rows, err := db.QueryContext(ctx, readCSVQuery(s.Path))
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, newLoadError(SourceDuckDB, s.Path, err)
	}
	defer rows.Close()

	table := &RawTable{}
	for rows.Next() {
		var title, authors sql.NullString
		if err := rows.Scan(&title, &authors); err != nil {
			return nil, newLoadError(SourceDuckDB, s.Path, fmt.Errorf("scan row: %w", err))
		}
		table.Rows = append(table.Rows, Row{
			Title:      title.String,
			Authors:    authors.String,
			HasTitle:   title.Valid && !IsMissingValue(title.String),
			HasAuthors: authors.Valid && !IsMissingValue(authors.String),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, newLoadError(SourceDuckDB, s.Path, err)
	}
	return table, nil
}

// readCSVQuery builds the read_csv query. DuckDB does not accept bound
// parameters as table function arguments, so the path is quoted as a literal.
// Column identifiers are case-insensitive in DuckDB.
func readCSVQuery(path string) string {
	quoted := "'" + strings.ReplaceAll(path, "'", "''") + "'"
	return "SELECT title, authors FROM read_csv(" + quoted +
		", header = true, all_varchar = true, ignore_errors = true)"
}
