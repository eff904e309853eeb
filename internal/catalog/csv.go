// Shelfmatch - Content-Based Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

package catalog

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

const utf8BOM = "\ufeff"

// CSVSource reads a comma-delimited UTF-8 file with a header row.
// Columns are located by case-insensitive header name; rows with more
// fields than the header, or that fail to parse, are skipped. Any byte
// sequence that is not valid UTF-8 fails the whole load.
type CSVSource struct {
	Path string
}

// Name implements Source.
func (s *CSVSource) Name() string { return SourceCSV }

// Location implements Source.
func (s *CSVSource) Location() string { return s.Path }

// Read implements Source.
func (s *CSVSource) Read(ctx context.Context) (*RawTable, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, newLoadError(SourceCSV, s.Path, err)
	}
	defer f.Close()

	table, err := readCSV(ctx, f)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = s.Path
			return nil, le
		}
		return nil, newLoadError(SourceCSV, s.Path, err)
	}
	return table, nil
}

// readCSV parses r. Non-LoadError errors are I/O failures or cancellation.
func readCSV(ctx context.Context, r io.Reader) (*RawTable, error) {
	cr := csv.NewReader(bufio.NewReader(r))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, newLoadError(SourceCSV, "", errors.New("empty file, no header row"))
		}
		return nil, newLoadError(SourceCSV, "", fmt.Errorf("read header: %w", err))
	}
	if !validUTF8(header) {
		return nil, newLoadError(SourceCSV, "", errors.New("header is not valid UTF-8"))
	}
	width := len(header)
	titleCol, authorsCol := -1, -1
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "title":
			if titleCol < 0 {
				titleCol = i
			}
		case "authors":
			if authorsCol < 0 {
				authorsCol = i
			}
		}
	}
	if titleCol < 0 || authorsCol < 0 {
		return nil, newLoadError(SourceCSV, "", errors.New("header must contain title and authors columns"))
	}

	table := &RawTable{}
	for line := 0; ; line++ {
		if line%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				table.Malformed++
				continue
			}
			return nil, err
		}
		if !validUTF8(record) {
			row, _ := cr.FieldPos(0)
			return nil, newLoadError(SourceCSV, "", fmt.Errorf("line %d: invalid UTF-8", row))
		}
		if len(record) > width {
			table.Malformed++
			continue
		}

		var row Row
		row.Title, row.HasTitle = field(record, titleCol)
		row.Authors, row.HasAuthors = field(record, authorsCol)
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

// field returns record[i]; short rows and missing-value markers count as
// absent.
func field(record []string, i int) (string, bool) {
	if i >= len(record) || IsMissingValue(record[i]) {
		return "", false
	}
	return record[i], true
}

func validUTF8(record []string) bool {
	for _, f := range record {
		if !utf8.ValidString(f) {
			return false
		}
	}
	return true
}
