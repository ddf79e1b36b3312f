package assets

// DefaultStyleName is the name of the built-in CV stylesheet.
const DefaultStyleName = "default"

var defaultLoader = NewEmbeddedLoader()

// LoadStyle loads a built-in style by name (without the .css extension).
// Returns ErrStyleNotFound if the style does not exist and
// ErrInvalidAssetName if the name contains path separators or dots.
func LoadStyle(name string) (string, error) {
	return defaultLoader.LoadStyle(name)
}

// MustDefaultStyle returns the built-in default stylesheet. It panics if the
// binary was built without it.
func MustDefaultStyle() string {
	css, err := LoadStyle(DefaultStyleName)
	if err != nil {
		panic("assets: " + err.Error())
	}
	return css
}
