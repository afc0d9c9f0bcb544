package archive

import (
	"context"

	"github.com/miigaik/vestnik/internal/catalog/issue"
)

// Repository is the persistence contract for archive ranges and the issue
// lookups the grouped listing needs.
type Repository interface {
	// ListRanges returns ranges ordered by end year descending (most recent
	// span first). activeOnly hides deactivated ranges from the public page.
	ListRanges(context context.Context, activeOnly bool) ([]*Range, error)

	GetRange(context context.Context, id int) (*Range, error)
	CreateRange(context context.Context, r *Range) error
	UpdateRange(context context.Context, r *Range) error
	DeleteRange(context context.Context, id int) error

	// IssuesByYearSpan returns every issue with start <= year <= end,
	// ordered (year desc, number desc). The grouping step depends on this
	// ordering and must not re-sort.
	IssuesByYearSpan(context context.Context, start, end int) ([]*issue.Issue, error)
}
