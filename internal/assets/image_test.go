package assets

// Notes:
// - Unreadable-permission cases are not tested: they behave differently
//   when tests run as root.

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestMIMEType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{"photo.jpg", "image/jpeg"},
		{"photo.JPEG", "image/jpeg"},
		{"logo.png", "image/png"},
		{"anim.gif", "image/gif"},
		{"pic.webp", "image/webp"},
		{"vector.svg", "image/jpeg"},
		{"noext", "image/jpeg"},
	}

	for _, tt := range tests {
		if got := MIMEType(tt.path); got != tt.want {
			t.Errorf("MIMEType(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestEmbedImage(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	payload := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a}
	if err := os.WriteFile(filepath.Join(dir, "logo.png"), payload, 0o644); err != nil {
		t.Fatalf("failed to write image: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "photo.bmp"), []byte("bm"), 0o644); err != nil {
		t.Fatalf("failed to write image: %v", err)
	}

	t.Run("relative path resolved against base dir", func(t *testing.T) {
		t.Parallel()

		got, ok := EmbedImage(dir, "logo.png")
		if !ok {
			t.Fatal("EmbedImage() ok = false, want true")
		}
		want := "data:image/png;base64," + base64.StdEncoding.EncodeToString(payload)
		if got != want {
			t.Errorf("EmbedImage() = %q, want %q", got, want)
		}
	})

	t.Run("absolute path ignores base dir", func(t *testing.T) {
		t.Parallel()

		got, ok := EmbedImage("/elsewhere", filepath.Join(dir, "logo.png"))
		if !ok || !strings.HasPrefix(got, "data:image/png;base64,") {
			t.Errorf("EmbedImage() = %q, %v", got, ok)
		}
	})

	t.Run("unknown extension assumed jpeg", func(t *testing.T) {
		t.Parallel()

		got, ok := EmbedImage(dir, "photo.bmp")
		if !ok || !strings.HasPrefix(got, "data:image/jpeg;base64,") {
			t.Errorf("EmbedImage() = %q, %v", got, ok)
		}
	})

	absent := []struct {
		name string
		path string
	}{
		{"missing file", "missing.png"},
		{"empty path", ""},
		{"blank path", "   "},
		{"directory", "."},
	}
	for _, tt := range absent {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := EmbedImage(dir, tt.path)
			if ok || got != "" {
				t.Errorf("EmbedImage(%q) = %q, %v; want absent", tt.path, got, ok)
			}
		})
	}
}

// Modifies the global MaxImageSize, so it does not run in parallel.
func TestEmbedImage_TooLarge(t *testing.T) {
	original := MaxImageSize
	t.Cleanup(func() { MaxImageSize = original })

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "big.jpg"), make([]byte, 64), 0o644); err != nil {
		t.Fatalf("failed to write image: %v", err)
	}

	MaxImageSize = 16
	if _, ok := EmbedImage(dir, "big.jpg"); ok {
		t.Error("EmbedImage() ok = true for oversized image, want false")
	}
}
