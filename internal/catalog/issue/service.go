package issue

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

func (service *Service) ListIssues(context context.Context, limit, offset int) ([]*Issue, int, error) {
	return service.repo.ListIssues(context, limit, offset)
}

func (service *Service) GetIssue(context context.Context, id int) (*Issue, error) {
	issue, err := service.repo.GetIssue(context, id)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, apperr.NotFound("Issue")
		}
		return nil, err
	}
	return issue, nil
}

// CurrentIssue returns the featured issue for the landing page, or nil when
// no issue is flagged. Absence is a normal state, not an error.
func (service *Service) CurrentIssue(context context.Context) (*Issue, error) {
	issue, err := service.repo.CurrentIssue(context)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return issue, nil
}

func (service *Service) CreateIssue(context context.Context, issue *Issue) error {
	if err := validateIssue(issue); err != nil {
		return err
	}

	// The exclusivity invariant is owned by SetCurrent; a freshly created
	// issue never starts out as the current one.
	issue.IsCurrent = false

	if err := service.repo.CreateIssue(context, issue); err != nil {
		return err
	}

	service.logger.Info("issue_created",
		slog.Int("issue_id", issue.ID),
		slog.Int("year", issue.Year),
		slog.Int("number", issue.Number),
	)
	return nil
}

func (service *Service) UpdateIssue(context context.Context, id int, issue *Issue) error {
	issue.ID = id
	if err := validateIssue(issue); err != nil {
		return err
	}

	if err := service.repo.UpdateIssue(context, issue); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return apperr.NotFound("Issue")
		}
		return err
	}

	service.logger.Info("issue_updated", slog.Int("issue_id", issue.ID))
	return nil
}

func (service *Service) DeleteIssue(context context.Context, id int) error {
	if err := service.repo.DeleteIssue(context, id); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return apperr.NotFound("Issue")
		}
		return err
	}

	service.logger.Warn("issue_deleted", slog.Int("issue_id", id))
	return nil
}

// SetCurrent flags one issue as the journal's current issue, clearing the
// flag everywhere else in the same transaction.
func (service *Service) SetCurrent(context context.Context, id int) error {
	if err := service.repo.SetCurrent(context, id); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return apperr.NotFound("Issue")
		}
		return err
	}

	service.logger.Info("issue_set_current", slog.Int("issue_id", id))
	return nil
}

func validateIssue(issue *Issue) error {
	validator := &validate.Validator{}

	validator.
		Range(FieldYear, issue.Year, MinYear, MaxYear).
		Custom(FieldNumber, issue.Number < 1, "Must be a positive issue number").
		MaxLen(FieldVolume, issue.Volume, 50)

	return validator.Err()
}
