// Package render turns a CV config into one self-contained HTML document.
//
// Document is a pure function: it reads image files for the photo and logo
// but holds no state, so concurrent calls with independent inputs are safe.
// All user text is escaped exactly once at the point it is embedded.
//
// Sections always appear in the same order: presentation, objective,
// experience, education, languages, skills. A section is emitted only when
// it has content; blank list items are dropped first.
package render
