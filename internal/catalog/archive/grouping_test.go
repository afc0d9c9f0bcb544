package archive_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miigaik/vestnik/internal/catalog/archive"
	"github.com/miigaik/vestnik/internal/catalog/issue"
)

/*
TestParseSpan verifies the "{start}-{end}" label parsing rules.
*/
func TestParseSpan(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantStart int
		wantEnd   int
		wantOK    bool
	}{
		{"valid_range", "1957-1959", 1957, 1959, true},
		{"single_year_span", "2024-2024", 2024, 2024, true},
		{"no_dash", "abcd", 0, 0, false},
		{"single_number", "2025", 0, 0, false},
		{"non_numeric_start", "abc-2020", 0, 0, false},
		{"non_numeric_end", "2020-xyz", 0, 0, false},
		{"too_many_parts", "2020-2021-2022", 0, 0, false},
		{"inverted_range", "2025-2020", 0, 0, false},
		{"empty", "", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, ok := archive.ParseSpan(tt.raw)

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantStart, start)
				assert.Equal(t, tt.wantEnd, end)
			}
		})
	}
}

/*
TestYearsDescending verifies that every integer year of the span appears,
newest first, regardless of data sparsity.
*/
func TestYearsDescending(t *testing.T) {
	tests := []struct {
		name  string
		start int
		end   int
		want  []int
	}{
		{"three_years", 1957, 1959, []int{1959, 1958, 1957}},
		{"single_year", 2024, 2024, []int{2024}},
		{"decade", 1960, 1969, []int{1969, 1968, 1967, 1966, 1965, 1964, 1963, 1962, 1961, 1960}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, archive.YearsDescending(tt.start, tt.end))
		})
	}
}

func issueIn(year, number int) *issue.Issue {
	return &issue.Issue{Year: year, Number: number}
}

/*
TestGroupByYear verifies consecutive-run grouping of pre-sorted issues.
*/
func TestGroupByYear(t *testing.T) {
	t.Run("empty_input", func(t *testing.T) {
		groups := archive.GroupByYear(nil)
		assert.Empty(t, groups)
		assert.NotNil(t, groups)
	})

	t.Run("groups_follow_input_order", func(t *testing.T) {
		issues := []*issue.Issue{
			issueIn(2025, 1),
			issueIn(2024, 6),
			issueIn(2024, 5),
			issueIn(2023, 2),
		}

		groups := archive.GroupByYear(issues)

		require.Len(t, groups, 3)
		assert.Equal(t, 2025, groups[0].Year)
		assert.Equal(t, 2024, groups[1].Year)
		assert.Equal(t, 2023, groups[2].Year)

		require.Len(t, groups[1].Issues, 2)
		assert.Equal(t, 6, groups[1].Issues[0].Number)
		assert.Equal(t, 5, groups[1].Issues[1].Number)
	})

	t.Run("single_year_many_issues", func(t *testing.T) {
		issues := []*issue.Issue{
			issueIn(1957, 6),
			issueIn(1957, 5),
			issueIn(1957, 4),
		}

		groups := archive.GroupByYear(issues)

		require.Len(t, groups, 1)
		assert.Equal(t, 1957, groups[0].Year)
		assert.Len(t, groups[0].Issues, 3)
	})

	t.Run("idempotent_over_same_input", func(t *testing.T) {
		issues := []*issue.Issue{
			issueIn(2024, 2),
			issueIn(2024, 1),
			issueIn(2020, 1),
		}

		first := archive.GroupByYear(issues)
		second := archive.GroupByYear(issues)

		assert.Equal(t, first, second)
	})
}

/*
TestSpanLabel verifies the canonical label round-trips through ParseSpan.
*/
func TestSpanLabel(t *testing.T) {
	label := archive.SpanLabel(2020, 2025)
	assert.Equal(t, "2020-2025", label)

	start, end, ok := archive.ParseSpan(label)
	require.True(t, ok)
	assert.Equal(t, 2020, start)
	assert.Equal(t, 2025, end)
}
