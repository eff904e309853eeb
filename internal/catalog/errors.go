// Shelfmatch - Content-Based Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

package catalog

import "errors"

// ErrDatasetUnavailable is matched by every *LoadError.
var ErrDatasetUnavailable = errors.New("dataset unavailable")

// LoadError reports that a dataset could not be opened or parsed at all.
type LoadError struct {
	Source string
	Path   string
	Cause  error
}

func newLoadError(source, path string, cause error) *LoadError {
	return &LoadError{Source: source, Path: path, Cause: cause}
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	msg := "dataset unavailable"
	if e.Path != "" {
		msg += ": " + e.Path
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is ErrDatasetUnavailable.
func (e *LoadError) Is(target error) bool {
	return target == ErrDatasetUnavailable
}
