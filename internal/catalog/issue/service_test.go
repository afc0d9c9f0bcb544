package issue_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miigaik/vestnik/internal/catalog/issue"
	"github.com/miigaik/vestnik/internal/platform/apperr"
	"github.com/miigaik/vestnik/internal/platform/dberr"
)

type fakeIssueRepo struct {
	issues map[int]*issue.Issue
	nextID int
}

func newFakeIssueRepo() *fakeIssueRepo {
	return &fakeIssueRepo{issues: map[int]*issue.Issue{}, nextID: 1}
}

func (f *fakeIssueRepo) ListIssues(_ context.Context, _, _ int) ([]*issue.Issue, int, error) {
	listed := []*issue.Issue{}
	for _, in := range f.issues {
		listed = append(listed, in)
	}
	return listed, len(listed), nil
}

func (f *fakeIssueRepo) GetIssue(_ context.Context, id int) (*issue.Issue, error) {
	in, ok := f.issues[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return in, nil
}

func (f *fakeIssueRepo) CurrentIssue(_ context.Context) (*issue.Issue, error) {
	for _, in := range f.issues {
		if in.IsCurrent {
			return in, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (f *fakeIssueRepo) CreateIssue(_ context.Context, in *issue.Issue) error {
	in.ID = f.nextID
	f.nextID++
	f.issues[in.ID] = in
	return nil
}

func (f *fakeIssueRepo) UpdateIssue(_ context.Context, in *issue.Issue) error {
	if _, ok := f.issues[in.ID]; !ok {
		return dberr.ErrNotFound
	}
	f.issues[in.ID] = in
	return nil
}

func (f *fakeIssueRepo) DeleteIssue(_ context.Context, id int) error {
	if _, ok := f.issues[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(f.issues, id)
	return nil
}

func (f *fakeIssueRepo) SetCurrent(_ context.Context, id int) error {
	target, ok := f.issues[id]
	if !ok {
		return dberr.ErrNotFound
	}
	for _, in := range f.issues {
		in.IsCurrent = false
	}
	target.IsCurrent = true
	return nil
}

func newIssueService(repo *fakeIssueRepo) *issue.Service {
	return issue.NewService(repo, slog.Default())
}

/*
TestCreateIssueClearsCurrentFlag verifies a new issue never starts current,
whatever the client sent.
*/
func TestCreateIssueClearsCurrentFlag(t *testing.T) {
	repo := newFakeIssueRepo()
	service := newIssueService(repo)

	created := &issue.Issue{Year: 2025, Number: 1, IsCurrent: true}
	require.NoError(t, service.CreateIssue(context.Background(), created))

	assert.False(t, created.IsCurrent)
	assert.False(t, repo.issues[created.ID].IsCurrent)
}

/*
TestCreateIssueValidation verifies year and number bounds.
*/
func TestCreateIssueValidation(t *testing.T) {
	tests := []struct {
		name      string
		in        *issue.Issue
		wantField string
	}{
		{"year_too_early", &issue.Issue{Year: 1800, Number: 1}, "year"},
		{"year_too_late", &issue.Issue{Year: 2200, Number: 1}, "year"},
		{"zero_number", &issue.Issue{Year: 2025, Number: 0}, "number"},
		{"negative_number", &issue.Issue{Year: 2025, Number: -3}, "number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeIssueRepo()
			service := newIssueService(repo)

			err := service.CreateIssue(context.Background(), tt.in)

			appErr := apperr.As(err)
			require.NotNil(t, appErr)
			assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
			require.NotEmpty(t, appErr.Details)
			assert.Equal(t, tt.wantField, appErr.Details[0].Field)
			assert.Empty(t, repo.issues)
		})
	}
}

/*
TestCurrentIssueAbsent verifies that having no current issue is a normal
state, not an error.
*/
func TestCurrentIssueAbsent(t *testing.T) {
	service := newIssueService(newFakeIssueRepo())

	current, err := service.CurrentIssue(context.Background())

	require.NoError(t, err)
	assert.Nil(t, current)
}

/*
TestSetCurrentExclusivity verifies flagging an issue unflags the rest.
*/
func TestSetCurrentExclusivity(t *testing.T) {
	repo := newFakeIssueRepo()
	service := newIssueService(repo)

	first := &issue.Issue{Year: 2024, Number: 6}
	second := &issue.Issue{Year: 2025, Number: 1}
	require.NoError(t, service.CreateIssue(context.Background(), first))
	require.NoError(t, service.CreateIssue(context.Background(), second))

	require.NoError(t, service.SetCurrent(context.Background(), first.ID))
	require.NoError(t, service.SetCurrent(context.Background(), second.ID))

	current, err := service.CurrentIssue(context.Background())
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, second.ID, current.ID)
	assert.False(t, repo.issues[first.ID].IsCurrent)
}

/*
TestIssueNotFound verifies storage misses map to NOT_FOUND across operations.
*/
func TestIssueNotFound(t *testing.T) {
	service := newIssueService(newFakeIssueRepo())
	background := context.Background()

	_, getErr := service.GetIssue(background, 99)
	updateErr := service.UpdateIssue(background, 99, &issue.Issue{Year: 2025, Number: 1})
	deleteErr := service.DeleteIssue(background, 99)
	setErr := service.SetCurrent(background, 99)

	for _, err := range []error{getErr, updateErr, deleteErr, setErr} {
		appErr := apperr.As(err)
		require.NotNil(t, appErr)
		assert.Equal(t, "NOT_FOUND", appErr.Code)
	}
}
