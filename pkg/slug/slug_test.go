// Copyright (c) 2026 Vestnik MIIGAiK. All rights reserved.

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/miigaik/vestnik/pkg/slug"
)

/*
TestFrom verifies the slug transformation pipeline.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"year_span_passes_through", "1957-1959", "1957-1959"},
		{"lowercases", "Archive", "archive"},
		{"spaces_to_hyphens", "peer reviewing", "peer-reviewing"},
		{"accents_stripped", "Géodésie", "geodesie"},
		{"punctuation_collapsed", "focus & scope!", "focus-scope"},
		{"trims_edge_hyphens", "  history  ", "history"},
		{"multiple_separators_collapse", "open -- access", "open-access"},
		{"empty_input", "", ""},
		{"only_punctuation", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.input))
		})
	}
}
