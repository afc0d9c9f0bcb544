package archive

import (
	"time"

	"github.com/miigaik/vestnik/internal/catalog/issue"
)

// Range is a labelled span of publication years shown on the archive page,
// e.g. 1957-1959. Ranges may not cover every year and may overlap; the
// listing simply shows whatever ranges the editors activated.
type Range struct {
	ID          int       `json:"id"`
	StartYear   int       `json:"start_year"`
	EndYear     int       `json:"end_year"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Span returns the canonical "{start}-{end}" label the public URLs use.
func (r *Range) Span() string {
	return SpanLabel(r.StartYear, r.EndYear)
}

// YearGroup is one year of a range listing together with its issues,
// newest issue first.
type YearGroup struct {
	Year   int            `json:"year"`
	Issues []*issue.Issue `json:"issues"`
}

// Listing is the grouped archive view for one year span.
//
// Years always holds every integer year of the span in descending order,
// including years with no issues; Groups holds only years that have data.
type Listing struct {
	StartYear int         `json:"start_year"`
	EndYear   int         `json:"end_year"`
	Years     []int       `json:"years"`
	Groups    []YearGroup `json:"groups"`
}

// Global field names for validation
const (
	FieldStartYear   = "start_year"
	FieldEndYear     = "end_year"
	FieldDescription = "description"
)
