package assets

// AssetLoader loads CSS styles by name.
type AssetLoader interface {
	// LoadStyle loads a style by name (without .css extension).
	// Returns ErrStyleNotFound if the style does not exist.
	LoadStyle(name string) (string, error)

	// ListStyles returns the names of the styles the loader can serve.
	ListStyles() ([]string, error)
}
