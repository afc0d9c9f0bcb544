// Copyright (c) 2026 Vestnik MIIGAiK. All rights reserved.

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miigaik/vestnik/internal/platform/apperr"
	"github.com/miigaik/vestnik/internal/platform/validate"
)

/*
TestValidatorRequired verifies that blank and whitespace-only values fail.
*/
func TestValidatorRequired(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"non_empty", "Geodesy", false},
		{"empty", "", true},
		{"whitespace_only", "   \t", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required("title", tt.value)

			if tt.wantErr {
				assert.Error(t, v.Err())
			} else {
				assert.NoError(t, v.Err())
			}
		})
	}
}

/*
TestValidatorMaxLen verifies the rule counts Unicode characters, not bytes.
*/
func TestValidatorMaxLen(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		max     int
		wantErr bool
	}{
		{"within_limit", "abc", 3, false},
		{"over_limit", "abcd", 3, true},
		{"cyrillic_counted_as_runes", "Геодезия", 8, false},
		{"cyrillic_over_limit", "Геодезия", 7, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.MaxLen("name", tt.value, tt.max)

			if tt.wantErr {
				assert.Error(t, v.Err())
			} else {
				assert.NoError(t, v.Err())
			}
		})
	}
}

/*
TestValidatorRange verifies that both bounds are inclusive.
*/
func TestValidatorRange(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		wantErr bool
	}{
		{"at_lower_bound", 1900, false},
		{"at_upper_bound", 2100, false},
		{"below", 1899, true},
		{"above", 2101, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Range("year", tt.value, 1900, 2100)

			if tt.wantErr {
				assert.Error(t, v.Err())
			} else {
				assert.NoError(t, v.Err())
			}
		})
	}
}

/*
TestValidatorEmail verifies RFC 5322 address parsing.
*/
func TestValidatorEmail(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"plain_address", "editor@miigaik.ru", false},
		{"with_display_name", "Editor <editor@miigaik.ru>", false},
		{"no_at_sign", "editor.miigaik.ru", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Email("email", tt.value)

			if tt.wantErr {
				assert.Error(t, v.Err())
			} else {
				assert.NoError(t, v.Err())
			}
		})
	}
}

/*
TestValidatorURL verifies only absolute http(s) URLs pass.
*/
func TestValidatorURL(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"https", "https://journal.miigaik.ru/archive", false},
		{"http", "http://example.com", false},
		{"relative_path", "/archive/1957-1959", true},
		{"ftp_scheme", "ftp://example.com/file.pdf", true},
		{"bare_host", "journal.miigaik.ru", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.URL("link", tt.value)

			if tt.wantErr {
				assert.Error(t, v.Err())
			} else {
				assert.NoError(t, v.Err())
			}
		})
	}
}

/*
TestValidatorSlug verifies the slug format rule.
*/
func TestValidatorSlug(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"year_span", "1957-1959", false},
		{"words", "peer-reviewing", false},
		{"uppercase", "Peer-Reviewing", true},
		{"leading_hyphen", "-history", true},
		{"double_hyphen", "a--b", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Slug("slug", tt.value)

			if tt.wantErr {
				assert.Error(t, v.Err())
			} else {
				assert.NoError(t, v.Err())
			}
		})
	}
}

/*
TestValidatorOneOf verifies set membership.
*/
func TestValidatorOneOf(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"allowed_editor", "editor", false},
		{"allowed_admin", "admin", false},
		{"unknown_role", "superuser", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.OneOf("role", tt.value, "editor", "admin")

			if tt.wantErr {
				assert.Error(t, v.Err())
			} else {
				assert.NoError(t, v.Err())
			}
		})
	}
}

/*
TestValidatorCollectsAllFailures verifies a chain reports every failed
field, in rule order, inside one VALIDATION_ERROR.
*/
func TestValidatorCollectsAllFailures(t *testing.T) {
	v := &validate.Validator{}
	v.
		Required("title", "").
		Range("year", 1500, 1900, 2100).
		Email("email", "broken")

	err := v.Err()
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)

	require.Len(t, appErr.Details, 3)
	assert.Equal(t, "title", appErr.Details[0].Field)
	assert.Equal(t, "year", appErr.Details[1].Field)
	assert.Equal(t, "email", appErr.Details[2].Field)
}

/*
TestValidatorNoFailures verifies a fully passing chain yields nil.
*/
func TestValidatorNoFailures(t *testing.T) {
	v := &validate.Validator{}
	v.
		Required("title", "Issue 1").
		Range("year", 2025, 1900, 2100).
		MaxLen("volume", "64", 50)

	assert.NoError(t, v.Err())
	assert.False(t, v.HasErrors())
}
