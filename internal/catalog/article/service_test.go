package article_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miigaik/vestnik/internal/catalog/article"
	"github.com/miigaik/vestnik/internal/platform/apperr"
	"github.com/miigaik/vestnik/internal/platform/dberr"
)

type fakeArticleRepo struct {
	articles map[int]*article.Article
	nextID   int
}

func newFakeArticleRepo() *fakeArticleRepo {
	return &fakeArticleRepo{articles: map[int]*article.Article{}, nextID: 1}
}

func (f *fakeArticleRepo) ListArticles(_ context.Context, filter article.Filter, _, _ int) ([]*article.Article, int, error) {
	listed := []*article.Article{}
	for _, a := range f.articles {
		if filter.PublishedOnly && !a.IsPublished {
			continue
		}
		if filter.IssueID != 0 && a.IssueID != filter.IssueID {
			continue
		}
		listed = append(listed, a)
	}
	return listed, len(listed), nil
}

func (f *fakeArticleRepo) RecentPublished(_ context.Context, limit int) ([]*article.Article, error) {
	recent := []*article.Article{}
	for _, a := range f.articles {
		if a.IsPublished && len(recent) < limit {
			recent = append(recent, a)
		}
	}
	return recent, nil
}

func (f *fakeArticleRepo) GetArticle(_ context.Context, id int) (*article.Article, error) {
	a, ok := f.articles[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return a, nil
}

func (f *fakeArticleRepo) CreateArticle(_ context.Context, a *article.Article) error {
	a.ID = f.nextID
	f.nextID++
	f.articles[a.ID] = a
	return nil
}

func (f *fakeArticleRepo) UpdateArticle(_ context.Context, a *article.Article) error {
	if _, ok := f.articles[a.ID]; !ok {
		return dberr.ErrNotFound
	}
	f.articles[a.ID] = a
	return nil
}

func (f *fakeArticleRepo) DeleteArticle(_ context.Context, id int) error {
	if _, ok := f.articles[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(f.articles, id)
	return nil
}

func validArticle() *article.Article {
	return &article.Article{
		IssueID:   1,
		Title:     "Geodetic network adjustment with sparse observations",
		Authors:   "I. Ivanov, P. Petrov",
		Abstract:  "We study adjustment of sparse geodetic networks.",
		PageStart: 5,
		PageEnd:   17,
	}
}

func newArticleService(repo *fakeArticleRepo) *article.Service {
	return article.NewService(repo, slog.Default())
}

/*
TestCreateArticleValidation verifies the field rules, page ordering included.
*/
func TestCreateArticleValidation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(a *article.Article)
		wantField string
	}{
		{"missing_issue", func(a *article.Article) { a.IssueID = 0 }, "issue_id"},
		{"missing_title", func(a *article.Article) { a.Title = "" }, "title"},
		{"missing_authors", func(a *article.Article) { a.Authors = "" }, "authors"},
		{"missing_abstract", func(a *article.Article) { a.Abstract = "" }, "abstract"},
		{"zero_page_start", func(a *article.Article) { a.PageStart = 0 }, "page_start"},
		{"end_precedes_start", func(a *article.Article) { a.PageStart = 20; a.PageEnd = 10 }, "page_end"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeArticleRepo()
			service := newArticleService(repo)

			a := validArticle()
			tt.mutate(a)

			err := service.CreateArticle(context.Background(), a)

			appErr := apperr.As(err)
			require.NotNil(t, appErr)
			assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
			require.NotEmpty(t, appErr.Details)
			assert.Equal(t, tt.wantField, appErr.Details[0].Field)
			assert.Empty(t, repo.articles)
		})
	}
}

/*
TestSinglePageArticle verifies page_end == page_start is accepted.
*/
func TestSinglePageArticle(t *testing.T) {
	service := newArticleService(newFakeArticleRepo())

	a := validArticle()
	a.PageStart = 42
	a.PageEnd = 42

	assert.NoError(t, service.CreateArticle(context.Background(), a))
}

/*
TestPublishedArticleHidesDrafts verifies a draft reads as absent on the
public surface while staff retrieval still sees it.
*/
func TestPublishedArticleHidesDrafts(t *testing.T) {
	repo := newFakeArticleRepo()
	service := newArticleService(repo)

	draft := validArticle()
	require.NoError(t, service.CreateArticle(context.Background(), draft))

	_, err := service.PublishedArticle(context.Background(), draft.ID)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
	assert.Equal(t, "Article not found", appErr.Message)

	staffView, err := service.GetArticle(context.Background(), draft.ID)
	require.NoError(t, err)
	assert.Equal(t, draft.ID, staffView.ID)
}

/*
TestArticlePDF verifies the download path resolution rules.
*/
func TestArticlePDF(t *testing.T) {
	pdfPath := "articles/2025/adjustment.pdf"
	empty := ""

	tests := []struct {
		name        string
		published   bool
		pdf         *string
		wantPath    string
		wantMessage string
	}{
		{"published_with_pdf", true, &pdfPath, pdfPath, ""},
		{"published_without_pdf", true, nil, "", "Article PDF not found"},
		{"published_empty_path", true, &empty, "", "Article PDF not found"},
		{"draft_with_pdf", false, &pdfPath, "", "Article not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeArticleRepo()
			service := newArticleService(repo)

			a := validArticle()
			a.IsPublished = tt.published
			a.PDFPath = tt.pdf
			require.NoError(t, repo.CreateArticle(context.Background(), a))

			resolved, path, err := service.ArticlePDF(context.Background(), a.ID)

			if tt.wantMessage != "" {
				appErr := apperr.As(err)
				require.NotNil(t, appErr)
				assert.Equal(t, "NOT_FOUND", appErr.Code)
				assert.Equal(t, tt.wantMessage, appErr.Message)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantPath, path)
			assert.Equal(t, a.ID, resolved.ID)
		})
	}
}
