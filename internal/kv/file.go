package kv

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// File is a Store that keeps one file per key under a vault directory.
// Files are written 0600 since the vault stands in for the device secure
// store.
type File struct {
	dir string
}

// NewFile creates (if needed) the vault directory and returns a file store.
func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("creating vault dir: %w", err)
	}
	return &File{dir: dir}, nil
}

// Dir returns the vault directory.
func (f *File) Dir() string { return f.dir }

// Get returns the value for key, or ErrKeyNotFound.
func (f *File) Get(_ context.Context, key string) (string, error) {
	data, err := os.ReadFile(f.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		return "", fmt.Errorf("reading key %q: %w", key, err)
	}
	return string(data), nil
}

// Set stores value under key.
func (f *File) Set(_ context.Context, key, value string) error {
	if err := os.WriteFile(f.path(key), []byte(value), 0o600); err != nil {
		return fmt.Errorf("writing key %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Missing keys are ignored.
func (f *File) Delete(_ context.Context, key string) error {
	err := os.Remove(f.path(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("deleting key %q: %w", key, err)
	}
	return nil
}

// Close is a no-op; files are closed per operation.
func (f *File) Close() error { return nil }

func (f *File) path(key string) string {
	return filepath.Join(f.dir, sanitize(key)+".blob")
}

// sanitize maps a key to a safe file name.
func sanitize(key string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '_' || r == '-':
			return r
		default:
			return '_'
		}
	}, key)
}
