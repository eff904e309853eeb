// Shelfmatch - Content-Based Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

package validation

import (
	"strings"
	"testing"
)

type recommendationsRequest struct {
	Title string `json:"title" validate:"required,booktitle,max=20"`
	N     int    `json:"n" validate:"min=0,max=50"`
	Mode  string `json:"mode" validate:"omitempty,oneof=legacy exclude-anchor"`
}

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 == nil {
		t.Fatal("GetValidator() should not return nil")
	}
	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
}

func TestValidateStruct_Valid(t *testing.T) {
	tests := []struct {
		name  string
		input recommendationsRequest
	}{
		{"simple", recommendationsRequest{Title: "dune", N: 5}},
		{"zero n", recommendationsRequest{Title: "Dune Messiah"}},
		{"max n", recommendationsRequest{Title: "dune", N: 50, Mode: "legacy"}},
		{"unicode", recommendationsRequest{Title: "Ärger im Paradies"}},
		{"tab inside", recommendationsRequest{Title: "dune\tmessiah"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateStruct(&tt.input); err != nil {
				t.Errorf("ValidateStruct() returned unexpected error: %v", err)
			}
		})
	}
}

func TestValidateStruct_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		input     recommendationsRequest
		wantField string
		wantTag   string
	}{
		{"missing title", recommendationsRequest{}, "title", "required"},
		{"blank title", recommendationsRequest{Title: "   "}, "title", "booktitle"},
		{"control character", recommendationsRequest{Title: "du\x00ne"}, "title", "booktitle"},
		{"title too long", recommendationsRequest{Title: strings.Repeat("x", 21)}, "title", "max"},
		{"negative n", recommendationsRequest{Title: "dune", N: -1}, "n", "min"},
		{"n too large", recommendationsRequest{Title: "dune", N: 51}, "n", "max"},
		{"bad mode", recommendationsRequest{Title: "dune", Mode: "best"}, "mode", "oneof"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.input)
			if err == nil {
				t.Fatal("ValidateStruct() expected error")
			}
			errs := err.Errors()
			if len(errs) != 1 {
				t.Fatalf("got %d errors, want 1: %v", len(errs), err)
			}
			if errs[0].Field() != tt.wantField || errs[0].Tag() != tt.wantTag {
				t.Errorf("got %s/%s, want %s/%s", errs[0].Field(), errs[0].Tag(), tt.wantField, tt.wantTag)
			}
		})
	}
}

func TestToAPIError_SingleError(t *testing.T) {
	err := ValidateStruct(&recommendationsRequest{Title: "dune", N: 99})
	if err == nil {
		t.Fatal("expected error")
	}

	apiErr := err.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Code = %q", apiErr.Code)
	}
	if apiErr.Message != "n must be at most 50" {
		t.Errorf("Message = %q", apiErr.Message)
	}
	if apiErr.Details["field"] != "n" {
		t.Errorf("Details = %v", apiErr.Details)
	}
}

func TestToAPIError_MultipleErrors(t *testing.T) {
	err := ValidateStruct(&recommendationsRequest{N: -3})
	if err == nil {
		t.Fatal("expected error")
	}

	apiErr := err.ToAPIError()
	if !strings.Contains(apiErr.Message, "title: title is required") ||
		!strings.Contains(apiErr.Message, "n: n must be at least 0") {
		t.Errorf("Message = %q", apiErr.Message)
	}
	fields, ok := apiErr.Details["fields"].([]map[string]interface{})
	if !ok || len(fields) != 2 {
		t.Errorf("Details = %v", apiErr.Details)
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		input recommendationsRequest
		want  string
	}{
		{recommendationsRequest{}, "title is required"},
		{recommendationsRequest{Title: " "}, "title must contain visible characters and no control characters"},
		{recommendationsRequest{Title: strings.Repeat("y", 30)}, "title must be at most 20 characters"},
		{recommendationsRequest{Title: "x", Mode: "z"}, "mode must be one of: legacy exclude-anchor"},
	}
	for _, tt := range tests {
		err := ValidateStruct(&tt.input)
		if err == nil {
			t.Fatalf("expected error for %+v", tt.input)
		}
		if got := err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		value   interface{}
		tag     string
		wantMsg string
	}{
		{"in range", "n", 10, "min=0,max=50", ""},
		{"above max", "n", 51, "min=0,max=50", "n must be at most 50"},
		{"below min", "n", -1, "min=0,max=50", "n must be at least 0"},
		{"title too long", "title", strings.Repeat("x", 6), "max=5", "title must be at most 5 characters"},
		{"title rune count", "title", "ééééé", "max=5", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateVar(tt.field, tt.value, tt.tag)
			if tt.wantMsg == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error")
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", err.Error(), tt.wantMsg)
			}
			if got := err.Errors()[0].Field(); got != tt.field {
				t.Errorf("Field() = %q, want %q", got, tt.field)
			}
		})
	}
}
