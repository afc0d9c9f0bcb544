package pages_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miigaik/vestnik/internal/pages"
)

/*
TestList verifies the listing exposes every page in display order, starting
with the journal history.
*/
func TestList(t *testing.T) {
	summaries := pages.List()

	require.Len(t, summaries, 15)
	assert.Equal(t, "history", summaries[0].Slug)
	assert.Equal(t, "sections", summaries[len(summaries)-1].Slug)

	for _, summary := range summaries {
		assert.NotEmpty(t, summary.Slug)
		assert.NotEmpty(t, summary.Title)
	}
}

/*
TestGet verifies every listed slug resolves to a full page.
*/
func TestGet(t *testing.T) {
	for _, summary := range pages.List() {
		page, ok := pages.Get(summary.Slug)

		require.True(t, ok, "slug %q must resolve", summary.Slug)
		assert.Equal(t, summary.Slug, page.Slug)
		assert.Equal(t, summary.Title, page.Title)
		assert.NotEmpty(t, page.Body)
	}
}

/*
TestGetUnknownSlug verifies unknown and near-miss slugs do not resolve.
*/
func TestGetUnknownSlug(t *testing.T) {
	tests := []string{"", "unknown", "History", "peer_reviewing", "fees/"}

	for _, slug := range tests {
		_, ok := pages.Get(slug)
		assert.False(t, ok, "slug %q must not resolve", slug)
	}
}
