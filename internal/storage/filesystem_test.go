package storage_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/Most2022/smartpdf/internal/config"
	"github.com/Most2022/smartpdf/internal/storage"
)

func newTestStorage(t *testing.T) storage.System {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sys, err := storage.New(&config.StorageConfig{BasePath: t.TempDir()}, logger)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if err := sys.Start(); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	return sys
}

func TestFilesystem_StoreAndRetrieve(t *testing.T) {
	sys := newTestStorage(t)
	ctx := context.Background()

	data := []byte("%PDF-1.7 test content")
	if err := sys.Store(ctx, "files/abc/doc.pdf", data); err != nil {
		t.Fatalf("Store() error: %v", err)
	}

	got, err := sys.Retrieve(ctx, "files/abc/doc.pdf")
	if err != nil {
		t.Fatalf("Retrieve() error: %v", err)
	}
	if string(got) != string(data) {
		t.Errorf("Retrieve() = %q, want %q", got, data)
	}
}

func TestFilesystem_StoreOverwrites(t *testing.T) {
	sys := newTestStorage(t)
	ctx := context.Background()

	sys.Store(ctx, "key.bin", []byte("first"))
	sys.Store(ctx, "key.bin", []byte("second"))

	got, err := sys.Retrieve(ctx, "key.bin")
	if err != nil {
		t.Fatalf("Retrieve() error: %v", err)
	}
	if string(got) != "second" {
		t.Errorf("Retrieve() = %q, want %q", got, "second")
	}
}

func TestFilesystem_RetrieveMissing(t *testing.T) {
	sys := newTestStorage(t)

	_, err := sys.Retrieve(context.Background(), "missing.bin")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Retrieve() error = %v, want ErrNotFound", err)
	}
}

func TestFilesystem_InvalidKeys(t *testing.T) {
	sys := newTestStorage(t)
	ctx := context.Background()

	tests := []struct {
		name string
		key  string
	}{
		{"empty", ""},
		{"traversal", "../escape.bin"},
		{"nested traversal", "files/../../escape.bin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := sys.Store(ctx, tt.key, []byte("x")); !errors.Is(err, storage.ErrInvalidKey) {
				t.Errorf("Store(%q) error = %v, want ErrInvalidKey", tt.key, err)
			}
		})
	}
}

func TestFilesystem_DeleteIdempotent(t *testing.T) {
	sys := newTestStorage(t)
	ctx := context.Background()

	sys.Store(ctx, "key.bin", []byte("data"))

	if err := sys.Delete(ctx, "key.bin"); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if err := sys.Delete(ctx, "key.bin"); err != nil {
		t.Errorf("Delete() second call error = %v, want nil", err)
	}

	exists, err := sys.Validate(ctx, "key.bin")
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if exists {
		t.Error("Validate() = true after delete, want false")
	}
}

func TestFilesystem_Path(t *testing.T) {
	sys := newTestStorage(t)
	ctx := context.Background()

	if err := sys.Store(ctx, "files/doc.pdf", []byte("data")); err != nil {
		t.Fatalf("Store() error: %v", err)
	}

	path, err := sys.Path(ctx, "files/doc.pdf")
	if err != nil {
		t.Fatalf("Path() error: %v", err)
	}
	if !filepath.IsAbs(path) {
		t.Errorf("Path() = %q, want absolute path", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Path() target not readable: %v", err)
	}
}
