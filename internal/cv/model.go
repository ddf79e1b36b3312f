// Package cv defines the CV document schema and its acceptance gate.
//
// A CV is accepted as JSON or YAML. Only personal.name is required; every
// other field renders when present and non-blank.
package cv

// CvConfig is the root of a CV document.
type CvConfig struct {
	Language  string   `json:"language,omitempty" yaml:"language,omitempty"`
	OutputPdf string   `json:"outputPdf,omitempty" yaml:"outputPdf,omitempty"`
	LogoPath  string   `json:"logoPath,omitempty" yaml:"logoPath,omitempty"`
	Personal  Personal `json:"personal" yaml:"personal"`
	Sections  Sections `json:"sections,omitempty" yaml:"sections,omitempty"`
}

// Personal holds identity and contact details.
type Personal struct {
	Name        string `json:"name" yaml:"name"`
	PhotoPath   string `json:"photoPath,omitempty" yaml:"photoPath,omitempty"`
	Nationality string `json:"nationality,omitempty" yaml:"nationality,omitempty"`
	Sex         string `json:"sex,omitempty" yaml:"sex,omitempty"`
	Email       string `json:"email,omitempty" yaml:"email,omitempty"`
	Phone       string `json:"phone,omitempty" yaml:"phone,omitempty"`
	Address     string `json:"address,omitempty" yaml:"address,omitempty"`
}

// Sections holds the optional content blocks.
type Sections struct {
	Presentation *TextBlock       `json:"presentation,omitempty" yaml:"presentation,omitempty"`
	Objective    *TextBlock       `json:"objective,omitempty" yaml:"objective,omitempty"`
	Experience   []ExperienceItem `json:"experience,omitempty" yaml:"experience,omitempty"`
	Education    []EducationItem  `json:"education,omitempty" yaml:"education,omitempty"`
	Languages    []LanguageItem   `json:"languages,omitempty" yaml:"languages,omitempty"`
	Skills       []string         `json:"skills,omitempty" yaml:"skills,omitempty"`
}

// TextBlock is a free-text section. Newlines become line breaks when rendered.
type TextBlock struct {
	Text string `json:"text" yaml:"text"`
}

// ExperienceItem is one professional position.
type ExperienceItem struct {
	From    string   `json:"from,omitempty" yaml:"from,omitempty"`
	To      string   `json:"to,omitempty" yaml:"to,omitempty"`
	Country string   `json:"country,omitempty" yaml:"country,omitempty"`
	Role    string   `json:"role" yaml:"role"`
	Company string   `json:"company,omitempty" yaml:"company,omitempty"`
	Bullets []string `json:"bullets,omitempty" yaml:"bullets,omitempty"`
}

// EducationItem is one degree or training.
type EducationItem struct {
	Title       string `json:"title" yaml:"title"`
	Institution string `json:"institution,omitempty" yaml:"institution,omitempty"`
}

// LanguageItem is one spoken language with its proficiency level.
type LanguageItem struct {
	Language string `json:"language" yaml:"language"`
	Level    string `json:"level" yaml:"level"`
}

// Value returns the block text, or "" for a nil block.
func (b *TextBlock) Value() string {
	if b == nil {
		return ""
	}
	return b.Text
}
