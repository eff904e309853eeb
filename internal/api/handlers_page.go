// Shelfmatch - Content-Based Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

package api

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"strings"

	"github.com/tomtom215/shelfmatch/internal/logging"
	"github.com/tomtom215/shelfmatch/internal/models"
	"github.com/tomtom215/shelfmatch/internal/recommend"
)

//go:embed templates/index.html
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// pageData is the view model of the index page.
type pageData struct {
	Title           string
	MaxTitleLength  int
	Message         string
	IsError         bool
	Anchor          *models.Book
	Recommendations []models.RecommendedBook
}

// Index handles GET /. It renders the title field and, when a title was
// submitted, either the recommendation table or a status message.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	title := r.URL.Query().Get("title")
	data := pageData{Title: title}
	if h.config != nil {
		data.MaxTitleLength = h.config.API.MaxTitleLength
	}

	status := http.StatusOK
	if strings.TrimSpace(title) != "" {
		status = h.fillPage(r, &data)
	}

	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, data); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to execute index template")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Failed to write index page")
	}
}

// fillPage runs the query for a submitted title and returns the HTTP status
// the page should carry.
func (h *Handler) fillPage(r *http.Request, data *pageData) int {
	req := RecommendationsRequest{Title: data.Title}
	if apiErr := h.validateRecommendationsRequest(&req); apiErr != nil {
		data.Message = apiErr.Message
		data.IsError = true
		return http.StatusBadRequest
	}

	res, err := h.recommend(r.Context(), req.Title, 0)
	if err != nil {
		f := classifyFailure(err)
		logging.Ctx(r.Context()).Warn().Err(err).Str("code", f.code).Msg("Recommendation page error")
		data.Message = f.message
		data.IsError = true
		return f.status
	}

	if res.Status == recommend.StatusNoMatch {
		data.Message = msgNoMatch
		return http.StatusOK
	}

	payload := toRecommendationsResponse(res)
	data.Anchor = &payload.Anchor
	data.Recommendations = payload.Recommendations
	return http.StatusOK
}
