package article

import (
	"context"
	"errors"
	"log/slog"

	"github.com/miigaik/vestnik/internal/platform/apperr"
	"github.com/miigaik/vestnik/internal/platform/dberr"
	"github.com/miigaik/vestnik/internal/platform/validate"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListArticles(context context.Context, f Filter, limit, offset int) ([]*Article, int, error) {
	return service.repo.ListArticles(context, f, limit, offset)
}

func (service *Service) RecentPublished(context context.Context, limit int) ([]*Article, error) {
	return service.repo.RecentPublished(context, limit)
}

func (service *Service) GetArticle(context context.Context, id int) (*Article, error) {
	article, err := service.repo.GetArticle(context, id)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, apperr.NotFound("Article")
		}
		return nil, err
	}
	return article, nil
}

// PublishedArticle is GetArticle restricted to the public surface: drafts
// are indistinguishable from absent rows.
func (service *Service) PublishedArticle(context context.Context, id int) (*Article, error) {
	article, err := service.GetArticle(context, id)
	if err != nil {
		return nil, err
	}
	if !article.IsPublished {
		return nil, apperr.NotFound("Article")
	}
	return article, nil
}

// ArticlePDF returns the stored PDF path for a published article. An
// unpublished article or one without an uploaded file both read as not found.
func (service *Service) ArticlePDF(context context.Context, id int) (*Article, string, error) {
	article, err := service.PublishedArticle(context, id)
	if err != nil {
		return nil, "", err
	}
	if article.PDFPath == nil || *article.PDFPath == "" {
		return nil, "", apperr.NotFound("Article PDF")
	}
	return article, *article.PDFPath, nil
}

func (service *Service) CreateArticle(context context.Context, article *Article) error {
	if err := validateArticle(article); err != nil {
		return err
	}

	if err := service.repo.CreateArticle(context, article); err != nil {
		return err
	}

	service.logger.Info("article_created",
		slog.Int("article_id", article.ID),
		slog.Int("issue_id", article.IssueID),
		slog.String("title", article.Title),
	)
	return nil
}

func (service *Service) UpdateArticle(context context.Context, id int, article *Article) error {
	article.ID = id
	if err := validateArticle(article); err != nil {
		return err
	}

	if err := service.repo.UpdateArticle(context, article); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return apperr.NotFound("Article")
		}
		return err
	}

	service.logger.Info("article_updated", slog.Int("article_id", article.ID))
	return nil
}

func (service *Service) DeleteArticle(context context.Context, id int) error {
	if err := service.repo.DeleteArticle(context, id); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return apperr.NotFound("Article")
		}
		return err
	}

	service.logger.Warn("article_deleted", slog.Int("article_id", id))
	return nil
}

func validateArticle(article *Article) error {
	validator := &validate.Validator{}

	validator.
		Custom(FieldIssueID, article.IssueID < 1, "Must reference an issue").
		Required(FieldTitle, article.Title).
		MaxLen(FieldTitle, article.Title, 500).
		Required(FieldAuthors, article.Authors).
		Required(FieldAbstract, article.Abstract).
		MaxLen(FieldRubric, article.Rubric, 200).
		MaxLen(FieldDOI, article.DOI, 100).
		Custom(FieldPageStart, article.PageStart < 1, "Must be a positive page number").
		Custom(FieldPageEnd, article.PageEnd < article.PageStart, "Must not precede the first page")

	return validator.Err()
}
