// Copyright (c) 2026 Vestnik MIIGAiK. All rights reserved.

/*
Package storage provides access to the media root holding uploaded files:
article PDFs, full-issue PDFs, covers, and board member photos.

The catalog store persists only relative paths (e.g. "articles/0042.pdf");
this package resolves them against the configured media directory and
guarantees the resolved path cannot escape it.
*/
package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned when a referenced media file does not exist on disk.
//
// A dangling path on an otherwise valid record is a per-request not-found
// condition, never a server error.
var ErrNotFound = errors.New("storage: file not found")

// MediaStore resolves relative media paths against a fixed root directory.
type MediaStore struct {
	root string
}

// NewMediaStore validates the media root and returns a store bound to it.
func NewMediaStore(root string) (*MediaStore, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("storage: invalid media root %q: %w", root, err)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("storage: media root %q is not accessible: %w", absRoot, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("storage: media root %q is not a directory", absRoot)
	}

	return &MediaStore{root: absRoot}, nil
}

// Open opens a stored media file by its relative path.
//
// The caller owns the returned file handle and must close it. A missing or
// escaping path yields [ErrNotFound].
func (store *MediaStore) Open(relPath string) (*os.File, fs.FileInfo, error) {
	absPath, err := store.Resolve(relPath)
	if err != nil {
		return nil, nil, err
	}

	file, err := os.Open(absPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("storage: failed to open %q: %w", relPath, err)
	}

	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, nil, fmt.Errorf("storage: failed to stat %q: %w", relPath, err)
	}
	if info.IsDir() {
		_ = file.Close()
		return nil, nil, ErrNotFound
	}

	return file, info, nil
}

// Resolve converts a stored relative path into an absolute path under the root.
//
// Empty, absolute, and root-escaping paths are rejected as [ErrNotFound] so
// that hostile values in the database can never read outside the media root.
func (store *MediaStore) Resolve(relPath string) (string, error) {
	cleaned := filepath.Clean(strings.TrimSpace(relPath))
	if cleaned == "" || cleaned == "." || filepath.IsAbs(cleaned) {
		return "", ErrNotFound
	}
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return "", ErrNotFound
	}

	return filepath.Join(store.root, cleaned), nil
}
