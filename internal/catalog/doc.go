// Shelfmatch - Content-Based Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

/*
Package catalog loads the book dataset into an immutable, positionally
indexed Catalog.

A Source yields raw (title, authors) rows. Load runs them through the
cleaning pipeline:

 1. Normalize: trim surrounding whitespace and lowercase both fields.
 2. Deduplicate: keep the first row for each normalized title. This runs
    before filtering, so a first occurrence that is later dropped for a
    missing author still shadows later rows with the same title.
 3. Filter: drop rows whose title or authors is absent or empty.

Malformed rows are skipped and counted in LoadStats; they never abort the
load. A dataset that cannot be opened or has no usable header fails with a
*LoadError, which matches ErrDatasetUnavailable under errors.Is.

# Sources

  - CSVSource: encoding/csv reader, the default
  - DuckDBSource: DuckDB read_csv, selected with catalog.source=duckdb
*/
package catalog
