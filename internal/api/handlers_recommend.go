// Shelfmatch - Content-Based Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tomtom215/shelfmatch/internal/catalog"
	"github.com/tomtom215/shelfmatch/internal/metrics"
	"github.com/tomtom215/shelfmatch/internal/models"
	"github.com/tomtom215/shelfmatch/internal/recommend"
	"github.com/tomtom215/shelfmatch/internal/validation"
)

// User-facing messages, shared by the JSON API and the HTML page.
const (
	msgNoMatch              = "Book not found in dataset."
	msgDatasetUnavailable   = "Dataset unavailable: the book catalog could not be loaded."
	msgRecommendationFailed = "Something went wrong while generating recommendations."
	msgRequestCancelled     = "The request was cancelled before recommendations were ready."
)

// RecommendationsRequest holds the query parameters of
// GET /api/v1/recommendations. Length and n bounds come from configuration
// and are checked separately.
type RecommendationsRequest struct {
	Title string `json:"title" validate:"required,booktitle"`
	N     int    `json:"n" validate:"min=0"`
}

// failure is a classified error ready for the response layer.
type failure struct {
	status  int
	code    string
	message string
	err     error
}

// classifyFailure maps a recommend or catalog error to a status, code and
// display message.
func classifyFailure(err error) failure {
	switch recommend.Classify(err) {
	case recommend.OutcomeDatasetUnavailable:
		return failure{http.StatusServiceUnavailable, ErrCodeDatasetUnavailable, msgDatasetUnavailable, err}
	case recommend.OutcomeCancelled:
		return failure{http.StatusServiceUnavailable, ErrCodeRequestCancelled, msgRequestCancelled, err}
	default:
		return failure{http.StatusInternalServerError, ErrCodeRecommendationFailed, msgRecommendationFailed, err}
	}
}

// recommend runs a query against the loaded catalog. In degraded mode it
// returns the stored load error, which matches catalog.ErrDatasetUnavailable.
func (h *Handler) recommend(ctx context.Context, title string, n int) (*recommend.Result, error) {
	if !h.state.Available() {
		metrics.RecordRecommendation(string(recommend.OutcomeDatasetUnavailable), 0, 0)
		if h.state.Err != nil {
			return nil, h.state.Err
		}
		return nil, catalog.ErrDatasetUnavailable
	}

	if h.config != nil && h.config.Server.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.config.Server.Timeout)
		defer cancel()
	}
	return h.state.Recommender.Recommend(ctx, title, n)
}

// validateRecommendationsRequest applies struct tags and the configured
// title length and n bounds.
func (h *Handler) validateRecommendationsRequest(req *RecommendationsRequest) *models.APIError {
	if apiErr := validateRequest(req); apiErr != nil {
		return apiErr
	}
	if h.config == nil {
		return nil
	}
	if maxLen := h.config.API.MaxTitleLength; maxLen > 0 {
		if verr := validation.ValidateVar("title", req.Title, fmt.Sprintf("max=%d", maxLen)); verr != nil {
			return toAPIError(verr)
		}
	}
	if maxN := h.config.Recommend.MaxN; maxN > 0 {
		if verr := validation.ValidateVar("n", req.N, fmt.Sprintf("max=%d", maxN)); verr != nil {
			return toAPIError(verr)
		}
	}
	return nil
}

// Recommendations handles GET /api/v1/recommendations?title=...&n=...
//
// Responses:
//   - 200 with models.RecommendationsResponse
//   - 400 VALIDATION_ERROR for a missing, blank, oversized or malformed query
//   - 404 NO_MATCH when no catalog title contains the query
//   - 503 DATASET_UNAVAILABLE when the catalog failed to load
//   - 500 RECOMMENDATION_FAILED when scoring or ranking failed
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, r, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "Method not allowed", nil)
		return
	}

	n, err := parseIntParam(r, "n", 0)
	if err != nil {
		respondAPIError(w, r, http.StatusBadRequest, &models.APIError{
			Code:    ErrCodeValidation,
			Message: err.Error(),
			Details: map[string]interface{}{"field": "n", "tag": "integer"},
		}, nil)
		return
	}

	req := RecommendationsRequest{
		Title: r.URL.Query().Get("title"),
		N:     n,
	}
	if apiErr := h.validateRecommendationsRequest(&req); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}

	res, err := h.recommend(r.Context(), req.Title, req.N)
	if err != nil {
		f := classifyFailure(err)
		respondError(w, r, f.status, f.code, f.message, f.err)
		return
	}

	if res.Status == recommend.StatusNoMatch {
		respondAPIError(w, r, http.StatusNotFound, &models.APIError{
			Code:    ErrCodeNoMatch,
			Message: msgNoMatch,
			Details: map[string]interface{}{"query": res.Query},
		}, nil)
		return
	}

	respondSuccess(w, r, toRecommendationsResponse(res), models.Metadata{
		QueryTimeMS: res.Duration.Milliseconds(),
		Cached:      res.Cached,
	})
}

// toRecommendationsResponse converts a successful result to its API payload.
func toRecommendationsResponse(res *recommend.Result) models.RecommendationsResponse {
	out := models.RecommendationsResponse{
		Query:           res.Query,
		N:               res.N,
		Ranking:         res.Ranking,
		Recommendations: make([]models.RecommendedBook, len(res.Recommendations)),
	}
	if res.Anchor != nil {
		out.Anchor = models.Book{Title: res.Anchor.Title, Authors: res.Anchor.Authors}
	}
	for i, rec := range res.Recommendations {
		out.Recommendations[i] = models.RecommendedBook{
			Rank:    i + 1,
			Title:   rec.Title,
			Authors: rec.Authors,
			Score:   rec.Score,
		}
	}
	return out
}
