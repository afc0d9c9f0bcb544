package archive

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/miigaik/vestnik/internal/catalog/issue"
)

// SpanLabel renders a year span the way public archive URLs spell it.
func SpanLabel(start, end int) string {
	return fmt.Sprintf("%d-%d", start, end)
}

// ParseSpan parses a "{start}-{end}" label into its year bounds.
//
// Anything that is not two integers joined by a single dash, or whose start
// exceeds its end, is rejected: the caller treats ok=false as an unknown
// archive page, not a malformed request.
func ParseSpan(raw string) (start, end int, ok bool) {
	parts := strings.Split(raw, "-")
	if len(parts) != 2 {
		return 0, 0, false
	}

	start, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	end, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}

	if start > end {
		return 0, 0, false
	}
	return start, end, true
}

// YearsDescending lists every integer year of the span, newest first.
// The listing shows all years of a range even when some have no issues.
func YearsDescending(start, end int) []int {
	years := make([]int, 0, end-start+1)
	for year := end; year >= start; year-- {
		years = append(years, year)
	}
	return years
}

// GroupByYear folds issues into per-year groups.
//
// Input must already be ordered (year desc, number desc); grouping only
// joins consecutive runs of equal years, so unsorted input would fragment.
func GroupByYear(issues []*issue.Issue) []YearGroup {
	groups := []YearGroup{}
	for _, current := range issues {
		if len(groups) == 0 || groups[len(groups)-1].Year != current.Year {
			groups = append(groups, YearGroup{Year: current.Year})
		}
		groups[len(groups)-1].Issues = append(groups[len(groups)-1].Issues, current)
	}
	return groups
}
