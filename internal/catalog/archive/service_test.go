package archive_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miigaik/vestnik/internal/catalog/archive"
	"github.com/miigaik/vestnik/internal/catalog/issue"
	"github.com/miigaik/vestnik/internal/platform/apperr"
)

type fakeArchiveRepo struct {
	ranges     []*archive.Range
	issues     []*issue.Issue
	spanCalled bool
	spanStart  int
	spanEnd    int
}

func (f *fakeArchiveRepo) ListRanges(_ context.Context, activeOnly bool) ([]*archive.Range, error) {
	if !activeOnly {
		return f.ranges, nil
	}
	active := []*archive.Range{}
	for _, r := range f.ranges {
		if r.IsActive {
			active = append(active, r)
		}
	}
	return active, nil
}

func (f *fakeArchiveRepo) GetRange(_ context.Context, id int) (*archive.Range, error) {
	for _, r := range f.ranges {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, apperr.NotFound("Archive range")
}

func (f *fakeArchiveRepo) CreateRange(_ context.Context, r *archive.Range) error {
	r.ID = len(f.ranges) + 1
	f.ranges = append(f.ranges, r)
	return nil
}

func (f *fakeArchiveRepo) UpdateRange(_ context.Context, _ *archive.Range) error { return nil }
func (f *fakeArchiveRepo) DeleteRange(_ context.Context, _ int) error            { return nil }

func (f *fakeArchiveRepo) IssuesByYearSpan(_ context.Context, start, end int) ([]*issue.Issue, error) {
	f.spanCalled = true
	f.spanStart = start
	f.spanEnd = end
	matched := []*issue.Issue{}
	for _, in := range f.issues {
		if in.Year >= start && in.Year <= end {
			matched = append(matched, in)
		}
	}
	return matched, nil
}

func newArchiveService(repo *fakeArchiveRepo) *archive.Service {
	return archive.NewService(repo, slog.Default())
}

/*
TestListing verifies the grouped archive view for a span label.
*/
func TestListing(t *testing.T) {
	repo := &fakeArchiveRepo{
		issues: []*issue.Issue{
			{ID: 3, Year: 2025, Number: 1},
			{ID: 2, Year: 2024, Number: 2},
			{ID: 1, Year: 2024, Number: 1},
		},
	}
	service := newArchiveService(repo)

	listing, err := service.Listing(context.Background(), "2020-2025")

	require.NoError(t, err)
	assert.Equal(t, 2020, listing.StartYear)
	assert.Equal(t, 2025, listing.EndYear)
	assert.Equal(t, []int{2025, 2024, 2023, 2022, 2021, 2020}, listing.Years)

	require.Len(t, listing.Groups, 2)
	assert.Equal(t, 2025, listing.Groups[0].Year)
	assert.Len(t, listing.Groups[0].Issues, 1)
	assert.Equal(t, 2024, listing.Groups[1].Year)
	assert.Len(t, listing.Groups[1].Issues, 2)

	assert.True(t, repo.spanCalled)
	assert.Equal(t, 2020, repo.spanStart)
	assert.Equal(t, 2025, repo.spanEnd)
}

/*
TestListingMalformedSpan verifies that an unparseable label is an unknown
page and never reaches the repository.
*/
func TestListingMalformedSpan(t *testing.T) {
	tests := []struct {
		name string
		span string
	}{
		{"not_a_span", "abcd"},
		{"single_year", "2025"},
		{"inverted", "2025-2020"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeArchiveRepo{}
			service := newArchiveService(repo)

			listing, err := service.Listing(context.Background(), tt.span)

			assert.Nil(t, listing)
			appErr := apperr.As(err)
			require.NotNil(t, appErr)
			assert.Equal(t, "NOT_FOUND", appErr.Code)
			assert.False(t, repo.spanCalled)
		})
	}
}

/*
TestListingEmptySpan verifies that a valid span with no issues still lists
every year of the range.
*/
func TestListingEmptySpan(t *testing.T) {
	service := newArchiveService(&fakeArchiveRepo{})

	listing, err := service.Listing(context.Background(), "1957-1959")

	require.NoError(t, err)
	assert.Equal(t, []int{1959, 1958, 1957}, listing.Years)
	assert.Empty(t, listing.Groups)
}

/*
TestCreateRangeSlug verifies the slug is derived from the span on create.
*/
func TestCreateRangeSlug(t *testing.T) {
	repo := &fakeArchiveRepo{}
	service := newArchiveService(repo)

	archiveRange := &archive.Range{StartYear: 2020, EndYear: 2025, IsActive: true}
	require.NoError(t, service.CreateRange(context.Background(), archiveRange))

	assert.Equal(t, "2020-2025", archiveRange.Slug)
	assert.NotZero(t, archiveRange.ID)
}

/*
TestCreateRangeValidation verifies year bound and ordering rules.
*/
func TestCreateRangeValidation(t *testing.T) {
	tests := []struct {
		name      string
		start     int
		end       int
		wantField string
	}{
		{"start_before_minimum", 1800, 1950, "start_year"},
		{"end_after_maximum", 2000, 2200, "end_year"},
		{"end_precedes_start", 2025, 2020, "end_year"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeArchiveRepo{}
			service := newArchiveService(repo)

			err := service.CreateRange(context.Background(), &archive.Range{
				StartYear: tt.start,
				EndYear:   tt.end,
			})

			appErr := apperr.As(err)
			require.NotNil(t, appErr)
			assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
			require.NotEmpty(t, appErr.Details)
			assert.Equal(t, tt.wantField, appErr.Details[0].Field)
			assert.Empty(t, repo.ranges)
		})
	}
}
