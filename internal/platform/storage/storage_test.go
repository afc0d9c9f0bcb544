// Copyright (c) 2026 Vestnik MIIGAiK. All rights reserved.

package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miigaik/vestnik/internal/platform/storage"
)

func newStore(t *testing.T) (*storage.MediaStore, string) {
	t.Helper()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "articles"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "articles", "0042.pdf"), []byte("%PDF-1.4"), 0o644))

	store, err := storage.NewMediaStore(root)
	require.NoError(t, err)
	return store, root
}

/*
TestNewMediaStore verifies the root must exist and be a directory.
*/
func TestNewMediaStore(t *testing.T) {
	t.Run("valid_root", func(t *testing.T) {
		store, err := storage.NewMediaStore(t.TempDir())
		require.NoError(t, err)
		assert.NotNil(t, store)
	})

	t.Run("missing_root", func(t *testing.T) {
		_, err := storage.NewMediaStore(filepath.Join(t.TempDir(), "absent"))
		assert.Error(t, err)
	})

	t.Run("root_is_a_file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

		_, err := storage.NewMediaStore(path)
		assert.Error(t, err)
	})
}

/*
TestOpen verifies stored paths resolve inside the root and misses map to
ErrNotFound.
*/
func TestOpen(t *testing.T) {
	store, _ := newStore(t)

	t.Run("existing_file", func(t *testing.T) {
		file, info, err := store.Open("articles/0042.pdf")
		require.NoError(t, err)
		defer file.Close()

		assert.Equal(t, int64(len("%PDF-1.4")), info.Size())
	})

	t.Run("missing_file", func(t *testing.T) {
		_, _, err := store.Open("articles/9999.pdf")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("directory_path", func(t *testing.T) {
		_, _, err := store.Open("articles")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

/*
TestResolveRejectsEscapes verifies hostile stored paths can never leave
the media root.
*/
func TestResolveRejectsEscapes(t *testing.T) {
	store, root := newStore(t)

	tests := []struct {
		name string
		path string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"dot", "."},
		{"parent", ".."},
		{"traversal", "../outside.pdf"},
		{"nested_traversal", "articles/../../outside.pdf"},
		{"absolute", "/etc/passwd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.Resolve(tt.path)
			assert.ErrorIs(t, err, storage.ErrNotFound)
		})
	}

	t.Run("clean_path_stays_inside", func(t *testing.T) {
		resolved, err := store.Resolve("articles/0042.pdf")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "articles", "0042.pdf"), resolved)
	})
}
