package render

import (
	"strings"

	"github.com/alnah/go-cv2pdf/internal/cv"
	"github.com/alnah/go-cv2pdf/internal/locale"
)

// Section identifiers, in render order.
const (
	SectionPresentation = "presentation"
	SectionObjective    = "objective"
	SectionExperience   = "experience"
	SectionEducation    = "education"
	SectionLanguages    = "languages"
	SectionSkills       = "skills"
)

// Order is the fixed section order.
var Order = []string{
	SectionPresentation,
	SectionObjective,
	SectionExperience,
	SectionEducation,
	SectionLanguages,
	SectionSkills,
}

// Sections renders every section that has content, in Order.
func Sections(s cv.Sections, dict locale.Dictionary) []string {
	var out []string
	for _, id := range Order {
		if html, ok := renderSection(id, s, dict); ok {
			out = append(out, html)
		}
	}
	return out
}

func renderSection(id string, s cv.Sections, dict locale.Dictionary) (string, bool) {
	var title, body string
	switch id {
	case SectionPresentation:
		title, body = dict.Presentation, textBody(s.Presentation.Value())
	case SectionObjective:
		title, body = dict.Objective, textBody(s.Objective.Value())
	case SectionExperience:
		title, body = dict.Experience, experienceBody(s.Experience)
	case SectionEducation:
		title, body = dict.Education, educationBody(s.Education)
	case SectionLanguages:
		title, body = dict.Languages, languagesBody(s.Languages)
	case SectionSkills:
		title, body = dict.Skills, bulletList(s.Skills)
	}
	if body == "" {
		return "", false
	}
	return section(id, title, body), true
}

// section is the layout shared by all sections: marker dot, uppercased
// heading, divider rule and indented body. body must already be escaped.
func section(id, title, body string) string {
	var b strings.Builder
	b.WriteString(`<section class="cv-section cv-section-`)
	b.WriteString(id)
	b.WriteString(`"><div class="cv-section-head"><span class="cv-section-dot"></span><h2 class="cv-section-title">`)
	b.WriteString(Escape(strings.ToUpper(title)))
	b.WriteString(`</h2></div><div class="cv-rule"></div><div class="cv-section-body">`)
	b.WriteString(body)
	b.WriteString("</div></section>\n")
	return b.String()
}

func textBody(text string) string {
	if isBlank(text) {
		return ""
	}
	return "<p>" + nl2br(strings.TrimSpace(text)) + "</p>"
}

func bulletList(items []string) string {
	items = nonBlank(items)
	if len(items) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("<ul>")
	for _, it := range items {
		b.WriteString("<li>")
		b.WriteString(Escape(it))
		b.WriteString("</li>")
	}
	b.WriteString("</ul>")
	return b.String()
}

// period formats "from - to - country", skipping blank parts.
func period(e cv.ExperienceItem) string {
	parts := nonBlank([]string{e.From, e.To})
	p := strings.Join(parts, " - ")
	if !isBlank(e.Country) {
		if p != "" {
			p += " - "
		}
		p += e.Country
	}
	return p
}

func experienceBody(items []cv.ExperienceItem) string {
	var b strings.Builder
	for _, e := range items {
		if isBlank(e.Role) {
			continue
		}
		b.WriteString(`<div class="cv-item">`)
		if p := period(e); p != "" {
			b.WriteString(`<div class="cv-period">`)
			b.WriteString(Escape(p))
			b.WriteString("</div>")
		}
		b.WriteString(`<div class="cv-role">`)
		b.WriteString(Escape(strings.ToUpper(e.Role)))
		if !isBlank(e.Company) {
			b.WriteString(` – <span class="cv-company">`)
			b.WriteString(Escape(e.Company))
			b.WriteString("</span>")
		}
		b.WriteString("</div>")
		b.WriteString(bulletList(e.Bullets))
		b.WriteString("</div>")
	}
	return b.String()
}

func educationBody(items []cv.EducationItem) string {
	var b strings.Builder
	for _, e := range items {
		if isBlank(e.Title) {
			continue
		}
		b.WriteString(`<div class="cv-item"><div class="cv-edu-title">`)
		b.WriteString(Escape(strings.ToUpper(e.Title)))
		b.WriteString("</div>")
		if !isBlank(e.Institution) {
			b.WriteString(`<div class="cv-institution">`)
			b.WriteString(Escape(e.Institution))
			b.WriteString("</div>")
		}
		b.WriteString("</div>")
	}
	return b.String()
}

func languagesBody(items []cv.LanguageItem) string {
	var b strings.Builder
	for _, l := range items {
		if isBlank(l.Language) || isBlank(l.Level) {
			continue
		}
		b.WriteString(`<div class="cv-language">`)
		b.WriteString(Escape(l.Language))
		b.WriteString(`: <span class="cv-language-level">`)
		b.WriteString(Escape(l.Level))
		b.WriteString("</span></div>")
	}
	return b.String()
}
