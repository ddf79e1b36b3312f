// Package locale holds the label sets used in rendered CVs.
package locale

import "strings"

// Codes for the supported locales.
const (
	PT = "PT"
	EN = "EN"
)

// Dictionary is the set of localized labels for one locale.
type Dictionary struct {
	Code         string
	Draft        string
	Nationality  string
	Sex          string
	Email        string
	Phone        string
	Address      string
	Presentation string
	Objective    string
	Experience   string
	Education    string
	Languages    string
	Skills       string
}

var portuguese = Dictionary{
	Code:         PT,
	Draft:        "RASCUNHO",
	Nationality:  "Nacionalidade",
	Sex:          "Sexo",
	Email:        "Email",
	Phone:        "Telemóvel",
	Address:      "Morada",
	Presentation: "Apresentação",
	Objective:    "Objetivo Profissional",
	Experience:   "Experiência Profissional",
	Education:    "Educação e Formação",
	Languages:    "Competências Linguísticas",
	Skills:       "Habilidades",
}

var english = Dictionary{
	Code:         EN,
	Draft:        "DRAFT",
	Nationality:  "Nationality",
	Sex:          "Gender",
	Email:        "Email",
	Phone:        "Phone",
	Address:      "Address",
	Presentation: "Presentation",
	Objective:    "Professional Objective",
	Experience:   "Professional Experience",
	Education:    "Education and Training",
	Languages:    "Linguistic Skills",
	Skills:       "Skills",
}

// For returns the dictionary for code. "EN" (any case, surrounding spaces
// ignored) selects English; every other value, including "", selects Portuguese.
func For(code string) Dictionary {
	if normalize(code) == EN {
		return english
	}
	return portuguese
}

// normalize maps code onto one of the supported codes.
func normalize(code string) string {
	if strings.EqualFold(strings.TrimSpace(code), EN) {
		return EN
	}
	return PT
}

// Supported lists the supported locale codes, base locale first.
func Supported() []string {
	return []string{PT, EN}
}
