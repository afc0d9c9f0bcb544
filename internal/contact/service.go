package contact

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

// Submit validates and stores a reader's contact form submission.
// Nothing is persisted when validation fails.
func (service *Service) Submit(context context.Context, message *Message) error {
	validator := &validate.Validator{}
	validator.
		Required(FieldName, message.Name).
		MaxLen(FieldName, message.Name, 200).
		Required(FieldPhone, message.Phone).
		MaxLen(FieldPhone, message.Phone, 50).
		Required(FieldEmail, message.Email).
		Email(FieldEmail, message.Email).
		Required(FieldMessage, message.Message).
		MaxLen(FieldMessage, message.Message, 5000)

	if err := validator.Err(); err != nil {
		return err
	}

	message.IsProcessed = false

	if err := service.repo.CreateMessage(context, message); err != nil {
		return err
	}

	service.logger.Info("contact_message_received",
		slog.Int("message_id", message.ID),
		slog.String("email", message.Email),
	)
	return nil
}

func (service *Service) ListMessages(context context.Context, unprocessedOnly bool, limit, offset int) ([]*Message, int, error) {
	return service.repo.ListMessages(context, unprocessedOnly, limit, offset)
}

func (service *Service) GetMessage(context context.Context, id int) (*Message, error) {
	message, err := service.repo.GetMessage(context, id)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, apperr.NotFound("Contact message")
		}
		return nil, err
	}
	return message, nil
}

func (service *Service) SetProcessed(context context.Context, id int, processed bool) error {
	if err := service.repo.SetProcessed(context, id, processed); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return apperr.NotFound("Contact message")
		}
		return err
	}

	service.logger.Info("contact_message_processed",
		slog.Int("message_id", id),
		slog.Bool("processed", processed),
	)
	return nil
}

func (service *Service) DeleteMessage(context context.Context, id int) error {
	if err := service.repo.DeleteMessage(context, id); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return apperr.NotFound("Contact message")
		}
		return err
	}

	service.logger.Warn("contact_message_deleted", slog.Int("message_id", id))
	return nil
}
