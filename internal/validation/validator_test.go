// Trackviz - Request Tracking Analytics Charts
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trackviz

package validation

import (
	"strings"
	"testing"
)

func TestGetValidator_Singleton(t *testing.T) {
	t.Parallel()
	if GetValidator() != GetValidator() {
		t.Error("GetValidator() should return the same instance")
	}
}

type renderParams struct {
	Chart   string `validate:"required,chart"`
	Format  string `validate:"omitempty,render_format"`
	Country string `validate:"omitempty,iso_country"`
	Limit   int    `validate:"min=1,max=100"`
}

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     renderParams
		wantField string
		wantTag   string
	}{
		{"valid", renderParams{Chart: "devices", Format: "svg", Country: "US", Limit: 1}, "", ""},
		{"case-insensitive names", renderParams{Chart: "Countries", Format: "HTML", Limit: 100}, "", ""},
		{"alpha-3 country", renderParams{Chart: "requests", Country: "FRA", Limit: 5}, "", ""},
		{"missing chart", renderParams{Limit: 1}, "Chart", "required"},
		{"unknown chart", renderParams{Chart: "pie", Limit: 1}, "Chart", "chart"},
		{"unknown format", renderParams{Chart: "devices", Format: "pdf", Limit: 1}, "Format", "render_format"},
		{"world is not a country", renderParams{Chart: "devices", Country: "001", Limit: 1}, "Country", "iso_country"},
		{"not a code", renderParams{Chart: "devices", Country: "France", Limit: 1}, "Country", "iso_country"},
		{"limit too large", renderParams{Chart: "devices", Limit: 101}, "Limit", "max"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateStruct(&tt.input)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected a validation error")
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

func TestToAPIError(t *testing.T) {
	t.Parallel()

	single := ValidateStruct(&renderParams{Chart: "pie", Limit: 1}).ToAPIError()
	if single.Code != ErrCodeValidation {
		t.Errorf("Code = %q", single.Code)
	}
	if single.Message != "Chart must be one of: devices, requests, countries" {
		t.Errorf("Message = %q", single.Message)
	}
	if single.Details["field"] != "Chart" || single.Details["value"] != "pie" {
		t.Errorf("Details = %v", single.Details)
	}

	multi := ValidateStruct(&renderParams{Format: "pdf", Limit: 0}).ToAPIError()
	fields, ok := multi.Details["fields"].([]map[string]interface{})
	if !ok || len(fields) != 3 {
		t.Fatalf("Details[fields] = %v", multi.Details["fields"])
	}
	for _, want := range []string{"Chart: Chart is required", "Format: ", "Limit: Limit must be at least 1"} {
		if !strings.Contains(multi.Message, want) {
			t.Errorf("Message %q missing %q", multi.Message, want)
		}
	}

	empty := (&RequestValidationError{}).ToAPIError()
	if empty.Message != "Validation failed" {
		t.Errorf("empty Message = %q", empty.Message)
	}
}

func TestTranslateError_MinMaxStrings(t *testing.T) {
	t.Parallel()

	type named struct {
		Name string `validate:"min=2,max=4"`
	}
	if err := ValidateStruct(&named{Name: "a"}); err == nil || err.Error() != "Name must be at least 2 characters" {
		t.Errorf("short: %v", err)
	}
	if err := ValidateStruct(&named{Name: "abcde"}); err == nil || err.Error() != "Name must be at most 4 characters" {
		t.Errorf("long: %v", err)
	}
}
