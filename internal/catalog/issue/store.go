package issue

import "context"

// Repository is the persistence contract for journal issues.
//
// Listing order is always (year desc, number desc); implementations must not
// depend on insertion order.
type Repository interface {
	ListIssues(context context.Context, limit, offset int) ([]*Issue, int, error)
	GetIssue(context context.Context, id int) (*Issue, error)

	// CurrentIssue returns the issue flagged as current. If several rows are
	// flagged (legacy data), the highest (year, number) wins deterministically.
	CurrentIssue(context context.Context) (*Issue, error)

	CreateIssue(context context.Context, i *Issue) error
	UpdateIssue(context context.Context, i *Issue) error
	DeleteIssue(context context.Context, id int) error

	// SetCurrent atomically clears the current flag on every other issue and
	// sets it on the given one.
	SetCurrent(context context.Context, id int) error
}
