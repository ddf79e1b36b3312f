package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestNewAssetResolver(t *testing.T) {
	t.Parallel()

	t.Run("empty path uses embedded only", func(t *testing.T) {
		t.Parallel()

		resolver, err := NewAssetResolver("")
		if err != nil {
			t.Fatalf("NewAssetResolver(\"\") error = %v", err)
		}
		if resolver.HasCustomLoader() {
			t.Error("expected no custom loader for empty path")
		}
	})

	t.Run("valid custom path", func(t *testing.T) {
		t.Parallel()

		resolver, err := NewAssetResolver(t.TempDir())
		if err != nil {
			t.Fatalf("NewAssetResolver() error = %v", err)
		}
		if !resolver.HasCustomLoader() {
			t.Error("expected custom loader for valid path")
		}
	})

	t.Run("invalid custom path", func(t *testing.T) {
		t.Parallel()

		if _, err := NewAssetResolver("/nonexistent/path/abc123xyz"); !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("error = %v, want ErrInvalidBasePath", err)
		}
	})
}

func TestAssetResolver_LoadStyle(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeStyle(t, dir, "default", "/* custom default */")
	writeStyle(t, dir, "brand", "/* brand */")

	resolver, err := NewAssetResolver(dir)
	if err != nil {
		t.Fatalf("NewAssetResolver() error = %v", err)
	}

	tests := []struct {
		name    string
		style   string
		want    string
		wantErr error
	}{
		{"custom overrides embedded", "default", "/* custom default */", nil},
		{"custom only", "brand", "/* brand */", nil},
		{"falls back to embedded", "compact", ".cv-header", nil},
		{"not found anywhere", "nonexistent-xyz", "", ErrStyleNotFound},
		{"invalid name does not fall back", "../default", "", ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := resolver.LoadStyle(tt.style)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("LoadStyle(%q) error = %v, want %v", tt.style, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadStyle(%q) error = %v", tt.style, err)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("LoadStyle(%q) = %q, want containing %q", tt.style, got, tt.want)
			}
		})
	}
}

func TestAssetResolver_ListStyles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeStyle(t, dir, "default", "a{}")
	writeStyle(t, dir, "brand", "a{}")

	resolver, err := NewAssetResolver(dir)
	if err != nil {
		t.Fatalf("NewAssetResolver() error = %v", err)
	}

	names, err := resolver.ListStyles()
	if err != nil {
		t.Fatalf("ListStyles() error = %v", err)
	}
	if got := strings.Join(names, ","); got != "brand,compact,default" {
		t.Errorf("ListStyles() = %q, want brand,compact,default", got)
	}
}
