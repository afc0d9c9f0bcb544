package contact_test

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miigaik/vestnik/internal/contact"
	"github.com/miigaik/vestnik/internal/platform/apperr"
	"github.com/miigaik/vestnik/internal/platform/dberr"
)

type fakeContactRepo struct {
	created  []*contact.Message
	messages map[int]*contact.Message
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{messages: map[int]*contact.Message{}}
}

func (f *fakeContactRepo) ListMessages(_ context.Context, unprocessedOnly bool, _, _ int) ([]*contact.Message, int, error) {
	listed := []*contact.Message{}
	for _, m := range f.messages {
		if unprocessedOnly && m.IsProcessed {
			continue
		}
		listed = append(listed, m)
	}
	return listed, len(listed), nil
}

func (f *fakeContactRepo) GetMessage(_ context.Context, id int) (*contact.Message, error) {
	m, ok := f.messages[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return m, nil
}

func (f *fakeContactRepo) CreateMessage(_ context.Context, m *contact.Message) error {
	m.ID = len(f.created) + 1
	f.created = append(f.created, m)
	f.messages[m.ID] = m
	return nil
}

func (f *fakeContactRepo) SetProcessed(_ context.Context, id int, processed bool) error {
	m, ok := f.messages[id]
	if !ok {
		return dberr.ErrNotFound
	}
	m.IsProcessed = processed
	return nil
}

func (f *fakeContactRepo) DeleteMessage(_ context.Context, id int) error {
	if _, ok := f.messages[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(f.messages, id)
	return nil
}

func validMessage() *contact.Message {
	return &contact.Message{
		Name:    "Anna Petrova",
		Phone:   "+7 495 123-45-67",
		Email:   "anna@example.com",
		Message: "Question about submitting a manuscript.",
	}
}

/*
TestSubmit verifies a valid submission is stored unprocessed.
*/
func TestSubmit(t *testing.T) {
	repo := newFakeContactRepo()
	service := contact.NewService(repo, slog.Default())

	message := validMessage()
	message.IsProcessed = true // client cannot pre-mark messages handled

	require.NoError(t, service.Submit(context.Background(), message))

	require.Len(t, repo.created, 1)
	assert.False(t, repo.created[0].IsProcessed)
	assert.NotZero(t, message.ID)
}

/*
TestSubmitValidation verifies rejected submissions carry the offending
field and never reach the repository.
*/
func TestSubmitValidation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(m *contact.Message)
		wantField string
	}{
		{"missing_name", func(m *contact.Message) { m.Name = "" }, "name"},
		{"missing_phone", func(m *contact.Message) { m.Phone = "" }, "phone"},
		{"missing_email", func(m *contact.Message) { m.Email = "" }, "email"},
		{"invalid_email", func(m *contact.Message) { m.Email = "not-an-email" }, "email"},
		{"missing_body", func(m *contact.Message) { m.Message = "" }, "message"},
		{"body_too_long", func(m *contact.Message) { m.Message = strings.Repeat("x", 5001) }, "message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeContactRepo()
			service := contact.NewService(repo, slog.Default())

			message := validMessage()
			tt.mutate(message)

			err := service.Submit(context.Background(), message)

			appErr := apperr.As(err)
			require.NotNil(t, appErr)
			assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
			require.NotEmpty(t, appErr.Details)
			assert.Equal(t, tt.wantField, appErr.Details[0].Field)
			assert.Empty(t, repo.created)
		})
	}
}

/*
TestSetProcessed verifies the staff workflow flips the flag both ways.
*/
func TestSetProcessed(t *testing.T) {
	repo := newFakeContactRepo()
	service := contact.NewService(repo, slog.Default())

	require.NoError(t, service.Submit(context.Background(), validMessage()))

	require.NoError(t, service.SetProcessed(context.Background(), 1, true))
	stored, err := service.GetMessage(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, stored.IsProcessed)

	require.NoError(t, service.SetProcessed(context.Background(), 1, false))
	stored, err = service.GetMessage(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, stored.IsProcessed)
}

/*
TestMessageNotFound verifies the storage miss maps to a NOT_FOUND error.
*/
func TestMessageNotFound(t *testing.T) {
	repo := newFakeContactRepo()
	service := contact.NewService(repo, slog.Default())

	_, err := service.GetMessage(context.Background(), 42)

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
	assert.Equal(t, "Contact message not found", appErr.Message)
}
