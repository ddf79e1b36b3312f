package cv

import "github.com/alnah/go-cv2pdf/internal/yamlutil"

// fromTree types a gated document one subtree at a time, so a malformed
// section or item costs only itself. root must have passed Validate.
func fromTree(root any) *CvConfig {
	m, _ := asMap(root)
	personal, _ := asMap(m["personal"])

	cfg := &CvConfig{
		Language:  decodeAs[string](m["language"]),
		OutputPdf: decodeAs[string](m["outputPdf"]),
		LogoPath:  decodeAs[string](m["logoPath"]),
	}

	for key, dst := range map[string]*string{
		"name":        &cfg.Personal.Name,
		"photoPath":   &cfg.Personal.PhotoPath,
		"nationality": &cfg.Personal.Nationality,
		"sex":         &cfg.Personal.Sex,
		"email":       &cfg.Personal.Email,
		"phone":       &cfg.Personal.Phone,
		"address":     &cfg.Personal.Address,
	} {
		*dst = decodeAs[string](personal[key])
	}

	sections, ok := asMap(m["sections"])
	if !ok {
		return cfg
	}
	cfg.Sections = Sections{
		Presentation: textBlock(sections["presentation"]),
		Objective:    textBlock(sections["objective"]),
		Experience:   listOf[ExperienceItem](sections["experience"]),
		Education:    listOf[EducationItem](sections["education"]),
		Languages:    listOf[LanguageItem](sections["languages"]),
		Skills:       listOf[string](sections["skills"]),
	}
	return cfg
}

// decodeAs types node, or returns the zero value when it is absent or does not fit.
func decodeAs[T any](node any) T {
	var v T
	if node == nil {
		return v
	}
	if err := yamlutil.Remarshal(node, &v); err != nil {
		var zero T
		return zero
	}
	return v
}

// listOf keeps the items of a sequence that fit T. A non-sequence yields nil.
func listOf[T any](node any) []T {
	items, ok := node.([]any)
	if !ok {
		return nil
	}
	var out []T
	for _, item := range items {
		if item == nil {
			continue
		}
		var v T
		if err := yamlutil.Remarshal(item, &v); err == nil {
			out = append(out, v)
		}
	}
	return out
}

// textBlock accepts {text: "..."} and, as a shorthand, a bare string.
func textBlock(node any) *TextBlock {
	if s, ok := node.(string); ok {
		return &TextBlock{Text: s}
	}
	if _, ok := asMap(node); !ok {
		return nil
	}
	b := decodeAs[TextBlock](node)
	return &b
}
