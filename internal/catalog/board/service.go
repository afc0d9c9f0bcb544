package board

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

func (service *Service) ListMembers(context context.Context) ([]*Member, error) {
	return service.repo.ListMembers(context)
}

func (service *Service) GetMember(context context.Context, id int) (*Member, error) {
	member, err := service.repo.GetMember(context, id)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, apperr.NotFound("Board member")
		}
		return nil, err
	}
	return member, nil
}

func (service *Service) CreateMember(context context.Context, member *Member) error {
	if err := validateMember(member); err != nil {
		return err
	}

	if err := service.repo.CreateMember(context, member); err != nil {
		return err
	}

	service.logger.Info("board_member_created",
		slog.Int("member_id", member.ID),
		slog.String("name", member.Name),
	)
	return nil
}

func (service *Service) UpdateMember(context context.Context, id int, member *Member) error {
	member.ID = id
	if err := validateMember(member); err != nil {
		return err
	}

	if err := service.repo.UpdateMember(context, member); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return apperr.NotFound("Board member")
		}
		return err
	}

	service.logger.Info("board_member_updated", slog.Int("member_id", member.ID))
	return nil
}

func (service *Service) DeleteMember(context context.Context, id int) error {
	if err := service.repo.DeleteMember(context, id); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return apperr.NotFound("Board member")
		}
		return err
	}

	service.logger.Warn("board_member_deleted", slog.Int("member_id", id))
	return nil
}

func validateMember(member *Member) error {
	validator := &validate.Validator{}

	validator.
		Required(FieldName, member.Name).
		MaxLen(FieldName, member.Name, 200).
		Required(FieldPosition, member.Position).
		MaxLen(FieldPosition, member.Position, 200).
		MaxLen(FieldInstitution, member.Institution, 300).
		MaxLen(FieldBio, member.Bio, 2000)

	return validator.Err()
}
