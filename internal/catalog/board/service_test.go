package board_test

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miigaik/vestnik/internal/catalog/board"
	"github.com/miigaik/vestnik/internal/platform/apperr"
	"github.com/miigaik/vestnik/internal/platform/dberr"
)

type fakeBoardRepo struct {
	members map[int]*board.Member
	nextID  int
}

func newFakeBoardRepo() *fakeBoardRepo {
	return &fakeBoardRepo{members: map[int]*board.Member{}, nextID: 1}
}

func (f *fakeBoardRepo) ListMembers(_ context.Context) ([]*board.Member, error) {
	listed := []*board.Member{}
	for _, m := range f.members {
		listed = append(listed, m)
	}
	return listed, nil
}

func (f *fakeBoardRepo) GetMember(_ context.Context, id int) (*board.Member, error) {
	m, ok := f.members[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return m, nil
}

func (f *fakeBoardRepo) CreateMember(_ context.Context, m *board.Member) error {
	m.ID = f.nextID
	f.nextID++
	f.members[m.ID] = m
	return nil
}

func (f *fakeBoardRepo) UpdateMember(_ context.Context, m *board.Member) error {
	if _, ok := f.members[m.ID]; !ok {
		return dberr.ErrNotFound
	}
	f.members[m.ID] = m
	return nil
}

func (f *fakeBoardRepo) DeleteMember(_ context.Context, id int) error {
	if _, ok := f.members[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(f.members, id)
	return nil
}

func validMember() *board.Member {
	return &board.Member{
		Name:        "A. N. Ivanova",
		Position:    "Editor-in-Chief",
		Institution: "MIIGAiK",
	}
}

/*
TestCreateMemberValidation verifies the required fields and length caps.
*/
func TestCreateMemberValidation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(m *board.Member)
		wantField string
	}{
		{"missing_name", func(m *board.Member) { m.Name = "" }, "name"},
		{"missing_position", func(m *board.Member) { m.Position = "" }, "position"},
		{"institution_too_long", func(m *board.Member) { m.Institution = strings.Repeat("x", 301) }, "institution"},
		{"bio_too_long", func(m *board.Member) { m.Bio = strings.Repeat("x", 2001) }, "bio"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeBoardRepo()
			service := board.NewService(repo, slog.Default())

			member := validMember()
			tt.mutate(member)

			err := service.CreateMember(context.Background(), member)

			appErr := apperr.As(err)
			require.NotNil(t, appErr)
			assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
			require.NotEmpty(t, appErr.Details)
			assert.Equal(t, tt.wantField, appErr.Details[0].Field)
			assert.Empty(t, repo.members)
		})
	}
}

/*
TestMemberLifecycle verifies create, update and delete round trips.
*/
func TestMemberLifecycle(t *testing.T) {
	repo := newFakeBoardRepo()
	service := board.NewService(repo, slog.Default())
	background := context.Background()

	member := validMember()
	require.NoError(t, service.CreateMember(background, member))
	require.NotZero(t, member.ID)

	updated := validMember()
	updated.Position = "Deputy Editor"
	require.NoError(t, service.UpdateMember(background, member.ID, updated))

	stored, err := service.GetMember(background, member.ID)
	require.NoError(t, err)
	assert.Equal(t, "Deputy Editor", stored.Position)

	require.NoError(t, service.DeleteMember(background, member.ID))

	_, err = service.GetMember(background, member.ID)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}
