package archive

import (
	"context"
	"errors"
	"log/slog"

	"github.com/miigaik/vestnik/internal/platform/apperr"
	"github.com/miigaik/vestnik/internal/platform/dberr"
	"github.com/miigaik/vestnik/internal/platform/validate"
	"github.com/miigaik/vestnik/pkg/slug"
)

// Year bounds mirror the issue catalog's accepted range.
const (
	MinYear = 1900
	MaxYear = 2100
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

// ActiveRanges lists the spans shown on the public archive page.
func (service *Service) ActiveRanges(context context.Context) ([]*Range, error) {
	return service.repo.ListRanges(context, true)
}

func (service *Service) ListRanges(context context.Context) ([]*Range, error) {
	return service.repo.ListRanges(context, false)
}

func (service *Service) GetRange(context context.Context, id int) (*Range, error) {
	archiveRange, err := service.repo.GetRange(context, id)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, apperr.NotFound("Archive range")
		}
		return nil, err
	}
	return archiveRange, nil
}

// Listing builds the grouped archive view for a "{start}-{end}" span label.
//
// A label that does not parse, or whose start exceeds its end, is an unknown
// page. A span with no issues is a valid page with full years and no groups.
func (service *Service) Listing(context context.Context, span string) (*Listing, error) {
	start, end, ok := ParseSpan(span)
	if !ok {
		return nil, apperr.NotFound("Archive range")
	}

	issues, err := service.repo.IssuesByYearSpan(context, start, end)
	if err != nil {
		return nil, err
	}

	return &Listing{
		StartYear: start,
		EndYear:   end,
		Years:     YearsDescending(start, end),
		Groups:    GroupByYear(issues),
	}, nil
}

func (service *Service) CreateRange(context context.Context, archiveRange *Range) error {
	if err := validateRange(archiveRange); err != nil {
		return err
	}
	archiveRange.Slug = slug.From(archiveRange.Span())

	if err := service.repo.CreateRange(context, archiveRange); err != nil {
		return err
	}

	service.logger.Info("archive_range_created",
		slog.Int("range_id", archiveRange.ID),
		slog.String("span", archiveRange.Span()),
	)
	return nil
}

func (service *Service) UpdateRange(context context.Context, id int, archiveRange *Range) error {
	archiveRange.ID = id
	if err := validateRange(archiveRange); err != nil {
		return err
	}
	archiveRange.Slug = slug.From(archiveRange.Span())

	if err := service.repo.UpdateRange(context, archiveRange); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return apperr.NotFound("Archive range")
		}
		return err
	}

	service.logger.Info("archive_range_updated", slog.Int("range_id", archiveRange.ID))
	return nil
}

func (service *Service) DeleteRange(context context.Context, id int) error {
	if err := service.repo.DeleteRange(context, id); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return apperr.NotFound("Archive range")
		}
		return err
	}

	service.logger.Warn("archive_range_deleted", slog.Int("range_id", id))
	return nil
}

func validateRange(archiveRange *Range) error {
	validator := &validate.Validator{}

	validator.
		Range(FieldStartYear, archiveRange.StartYear, MinYear, MaxYear).
		Range(FieldEndYear, archiveRange.EndYear, MinYear, MaxYear).
		Custom(FieldEndYear, archiveRange.EndYear < archiveRange.StartYear, "Must not precede the start year").
		MaxLen(FieldDescription, archiveRange.Description, 500)

	return validator.Err()
}
