package info

import (
	"context"
	"errors"
	"log/slog"

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

// Get returns the journal info, or nil when it has never been configured.
// A journal without a masthead is a fresh install, not an error.
func (service *Service) Get(context context.Context) (*JournalInfo, error) {
	journalInfo, err := service.repo.Get(context)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return journalInfo, nil
}

func (service *Service) Update(context context.Context, journalInfo *JournalInfo) error {
	if err := validateInfo(journalInfo); err != nil {
		return err
	}

	if err := service.repo.Upsert(context, journalInfo); err != nil {
		return err
	}

	service.logger.Info("journal_info_updated", slog.String("title", journalInfo.Title))
	return nil
}

func validateInfo(journalInfo *JournalInfo) error {
	validator := &validate.Validator{}

	validator.
		Required(FieldTitle, journalInfo.Title).
		MaxLen(FieldTitle, journalInfo.Title, 300).
		MaxLen(FieldDescription, journalInfo.Description, 5000).
		MaxLen(FieldISSNPrint, journalInfo.ISSNPrint, 20).
		MaxLen(FieldISSNOnline, journalInfo.ISSNOnline, 20).
		MaxLen(FieldPublisher, journalInfo.Publisher, 300)

	return validator.Err()
}
