// Shelfmatch - Content-Based Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

package recommend

import "errors"

// ErrRecommendationFailed is matched by every *FailureError.
var ErrRecommendationFailed = errors.New("recommendation failed")

// FailureError reports an unexpected fault while scoring or ranking.
type FailureError struct {
	Query string
	Cause error
}

// Error implements the error interface.
func (e *FailureError) Error() string {
	if e.Cause != nil {
		return "recommendation failed: " + e.Cause.Error()
	}
	return "recommendation failed"
}

// Unwrap returns the underlying cause.
func (e *FailureError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is ErrRecommendationFailed.
func (e *FailureError) Is(target error) bool {
	return target == ErrRecommendationFailed
}
