// Package assets provides the CV stylesheets and inlines image files.
//
// # Stylesheets
//
// Styles are resolved through a small loader stack:
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - built-in styles compiled into the binary
//	    ├── FilesystemLoader  - styles/{name}.css under a custom directory
//	    └── AssetResolver     - custom first, embedded on "not found"
//
// The built-in "default" style reproduces the Europass look; "compact"
// tightens spacing so longer CVs fit on fewer pages.
//
// # Images
//
// EmbedImage reads a photo or logo and returns it as a data URL so the
// rendered document has no external references. A missing or unreadable
// file is reported as absent, never as an error.
//
// # Security
//
// Style names cannot contain path separators or dots. FilesystemLoader
// resolves symlinks and verifies every path stays within its base directory.
package assets
