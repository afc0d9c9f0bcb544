package article

import "context"

// Repository is the persistence contract for articles.
//
// Ordering invariants: within one issue articles order by page_start asc;
// global listings order most-recent-first.
type Repository interface {
	ListArticles(context context.Context, f Filter, limit, offset int) ([]*Article, int, error)

	// RecentPublished returns the newest published articles, capped at limit.
	// Used for the landing-page preview; never paginated.
	RecentPublished(context context.Context, limit int) ([]*Article, error)

	GetArticle(context context.Context, id int) (*Article, error)
	CreateArticle(context context.Context, a *Article) error
	UpdateArticle(context context.Context, a *Article) error
	DeleteArticle(context context.Context, id int) error
}
