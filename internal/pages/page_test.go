package pages_test

import (
	"strings"
	"testing"

	"github.com/Most2022/smartpdf/internal/pages"
	"github.com/google/uuid"
)

func TestClampSelection(t *testing.T) {
	tests := []struct {
		name     string
		position int
		count    int
		want     int
	}{
		{"empty collection", 3, 0, -1},
		{"negative position", -2, 5, 0},
		{"past the end after removal", 5, 5, 4},
		{"in range unchanged", 2, 5, 2},
		{"last valid position", 4, 5, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pages.ClampSelection(tt.position, tt.count); got != tt.want {
				t.Errorf("ClampSelection(%d, %d) = %d, want %d", tt.position, tt.count, got, tt.want)
			}
		})
	}
}

func TestBuildThumbnailKey(t *testing.T) {
	projectID := uuid.New()
	pageID := uuid.New()

	key := pages.BuildThumbnailKey(projectID, pageID, "png")

	if !strings.HasPrefix(key, "thumbnails/"+projectID.String()+"/") {
		t.Errorf("BuildThumbnailKey() = %q, want thumbnails/<project>/ prefix", key)
	}
	if !strings.HasSuffix(key, pageID.String()+".png") {
		t.Errorf("BuildThumbnailKey() = %q, want <page>.png suffix", key)
	}
}

func TestThumbnailContentType(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"thumbnails/a/b.png", "image/png"},
		{"thumbnails/a/b.jpg", "image/jpeg"},
		{"thumbnails/a/b.jpeg", "image/jpeg"},
		{"thumbnails/a/b.bin", "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := pages.ThumbnailContentType(tt.key); got != tt.want {
				t.Errorf("ThumbnailContentType(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}
