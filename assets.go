package cv2pdf

import (
	"errors"
	"fmt"

	"github.com/alnah/go-cv2pdf/internal/assets"
)

// DefaultStyle is the name of the built-in CSS style.
const DefaultStyle = "default"

// AssetLoader loads CSS styles by name.
// The library provides NewAssetLoader for directory-based loading with
// fallback to the built-in styles. Implement it for other backends.
type AssetLoader interface {
	// LoadStyle loads a CSS style by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	LoadStyle(name string) (string, error)

	// ListStyles returns the available style names.
	ListStyles() ([]string, error)
}

// NewAssetLoader creates an AssetLoader for the given base path.
// An empty basePath serves only the built-in styles; otherwise
// {basePath}/styles/{name}.css takes precedence.
// Returns ErrInvalidAssetPath if basePath is set but not a readable directory.
func NewAssetLoader(basePath string) (AssetLoader, error) {
	resolver, err := assets.NewAssetResolver(basePath)
	if err != nil {
		return nil, convertAssetError(err)
	}
	return &assetLoaderAdapter{resolver: resolver}, nil
}

// assetLoaderAdapter maps internal asset errors to public ones.
type assetLoaderAdapter struct {
	resolver *assets.AssetResolver
}

func (a *assetLoaderAdapter) LoadStyle(name string) (string, error) {
	content, err := a.resolver.LoadStyle(name)
	if err != nil {
		return "", convertAssetError(err)
	}
	return content, nil
}

func (a *assetLoaderAdapter) ListStyles() ([]string, error) {
	names, err := a.resolver.ListStyles()
	if err != nil {
		return nil, convertAssetError(err)
	}
	return names, nil
}

// convertAssetError maps internal asset errors to public errors.
func convertAssetError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrStyleNotFound), errors.Is(err, ErrInvalidAssetPath):
		return err
	case errors.Is(err, assets.ErrStyleNotFound), errors.Is(err, assets.ErrInvalidAssetName):
		return fmt.Errorf("%w: %v", ErrStyleNotFound, err)
	case errors.Is(err, assets.ErrInvalidBasePath), errors.Is(err, assets.ErrPathTraversal):
		return fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	default:
		return err
	}
}
