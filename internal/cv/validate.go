package cv

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alnah/go-cv2pdf/internal/yamlutil"
)

// ErrConfigInvalid is returned when a document cannot be accepted.
var ErrConfigInvalid = errors.New("invalid CV config")

// ErrNameRequired is the acceptance gate failure. It wraps ErrConfigInvalid.
var ErrNameRequired = fmt.Errorf("%w: personal.name is required", ErrConfigInvalid)

// Validate reports whether v has the minimal shape of a CV: a mapping with a
// "personal" mapping whose "name" is a string with non-whitespace content.
// Any other value, including nil, yields false. It never panics.
func Validate(v any) bool {
	root, ok := asMap(v)
	if !ok {
		return false
	}
	personal, ok := asMap(root["personal"])
	if !ok {
		return false
	}
	name, ok := personal["name"].(string)
	return ok && strings.TrimSpace(name) != ""
}

// asMap accepts both decoder map shapes.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = val
		}
		return out, true
	}
	return nil, false
}

// Parse decodes a JSON or YAML document, gates it with Validate and returns
// the typed config. Only an undecodable document or a failed gate is an
// error; fields and section items with the wrong shape are dropped.
func Parse(data []byte) (*CvConfig, error) {
	raw, err := yamlutil.DecodeAny(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigInvalid, err)
	}
	if !Validate(raw) {
		return nil, ErrNameRequired
	}
	return fromTree(raw), nil
}
