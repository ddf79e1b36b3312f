package render

import (
	"strings"
	"testing"

	"github.com/alnah/go-cv2pdf/internal/cv"
	"github.com/alnah/go-cv2pdf/internal/locale"
)

// ---------------------------------------------------------------------------
// TestEscape - Entity rewriting, applied once
// ---------------------------------------------------------------------------

func TestEscape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"a & b", "a &amp; b"},
		{"<script>", "&lt;script&gt;"},
		{`say "hi"`, "say &quot;hi&quot;"},
		{"&amp;", "&amp;amp;"},
		{"it's", "it's"},
	}

	for _, tt := range tests {
		if got := Escape(tt.in); got != tt.want {
			t.Errorf("Escape(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNl2br(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"one\ntwo", "one<br>two"},
		{"one\r\ntwo", "one<br>two"},
		{"<b>\nx", "&lt;b&gt;<br>x"},
		{"no breaks", "no breaks"},
	}

	for _, tt := range tests {
		if got := nl2br(tt.in); got != tt.want {
			t.Errorf("nl2br(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestPeriod - Experience period line
// ---------------------------------------------------------------------------

func TestPeriod(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		item cv.ExperienceItem
		want string
	}{
		{"from and to", cv.ExperienceItem{From: "2019", To: "2021"}, "2019 - 2021"},
		{"with country", cv.ExperienceItem{From: "2019", To: "2021", Country: "Portugal"}, "2019 - 2021 - Portugal"},
		{"from only", cv.ExperienceItem{From: "2019"}, "2019"},
		{"to only", cv.ExperienceItem{To: "Present"}, "Present"},
		{"country only", cv.ExperienceItem{Country: "Portugal"}, "Portugal"},
		{"nothing", cv.ExperienceItem{}, ""},
		{"blank parts", cv.ExperienceItem{From: " ", To: "2021"}, "2021"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := period(tt.item); got != tt.want {
				t.Errorf("period() = %q, want %q", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestSections - Inclusion and order
// ---------------------------------------------------------------------------

func TestSections_Inclusion(t *testing.T) {
	t.Parallel()

	dict := locale.For(locale.EN)

	tests := []struct {
		name     string
		sections cv.Sections
		want     []string
	}{
		{"empty", cv.Sections{}, nil},
		{"blank text", cv.Sections{Presentation: &cv.TextBlock{Text: "  \n "}}, nil},
		{"blank skills", cv.Sections{Skills: []string{"", "  "}}, nil},
		{"experience without role", cv.Sections{Experience: []cv.ExperienceItem{{Company: "Acme"}}}, nil},
		{"education without title", cv.Sections{Education: []cv.EducationItem{{Institution: "Uni"}}}, nil},
		{"language without level", cv.Sections{Languages: []cv.LanguageItem{{Language: "English"}}}, nil},
		{"objective", cv.Sections{Objective: &cv.TextBlock{Text: "Grow"}}, []string{SectionObjective}},
		{
			"skills and education",
			cv.Sections{Skills: []string{"Go"}, Education: []cv.EducationItem{{Title: "MSc"}}},
			[]string{SectionEducation, SectionSkills},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Sections(tt.sections, dict)
			if len(got) != len(tt.want) {
				t.Fatalf("Sections() returned %d blocks, want %d", len(got), len(tt.want))
			}
			for i, id := range tt.want {
				if !strings.Contains(got[i], "cv-section-"+id+`"`) {
					t.Errorf("block %d is not %s: %s", i, id, got[i])
				}
			}
		})
	}
}

func TestExperienceBody(t *testing.T) {
	t.Parallel()

	body := experienceBody([]cv.ExperienceItem{
		{From: "2019", To: "2021", Country: "PT", Role: "Engineer", Company: "Acme", Bullets: []string{"Built <APIs>", ""}},
		{Role: "Intern"},
	})

	wants := []string{
		`<div class="cv-period">2019 - 2021 - PT</div>`,
		`<div class="cv-role">ENGINEER – <span class="cv-company">Acme</span></div>`,
		"<ul><li>Built &lt;APIs&gt;</li></ul>",
		`<div class="cv-role">INTERN</div>`,
	}
	for _, w := range wants {
		if !strings.Contains(body, w) {
			t.Errorf("experience body missing %q\n%s", w, body)
		}
	}
	if strings.Index(body, "ENGINEER") > strings.Index(body, "INTERN") {
		t.Error("experience items are not in input order")
	}
	if strings.Count(body, "<li>") != 1 {
		t.Errorf("blank bullet rendered: %s", body)
	}
}

// ---------------------------------------------------------------------------
// TestPersonalPanel - Static two-column split
// ---------------------------------------------------------------------------

func TestPersonalPanel(t *testing.T) {
	t.Parallel()

	dict := locale.For(locale.PT)

	t.Run("no fields", func(t *testing.T) {
		t.Parallel()

		if got := personalPanel(cv.Personal{Name: "Ana"}, dict); got != "" {
			t.Errorf("personalPanel() = %q, want empty", got)
		}
	})

	t.Run("columns", func(t *testing.T) {
		t.Parallel()

		p := cv.Personal{
			Name:        "Ana",
			Nationality: "Portuguesa",
			Sex:         "F",
			Email:       "a@x.com",
			Phone:       "+351 900",
			Address:     "Lisboa",
		}
		got := personalPanel(p, dict)

		split := strings.Index(got, `</div><div class="cv-personal-col">`)
		if split < 0 {
			t.Fatalf("missing second column: %s", got)
		}
		left, right := got[:split], got[split:]
		for _, v := range []string{"Nacionalidade:", "Email:", "Morada:"} {
			if !strings.Contains(left, v) {
				t.Errorf("left column missing %q", v)
			}
		}
		for _, v := range []string{"Sexo:", "Telemóvel:"} {
			if !strings.Contains(right, v) {
				t.Errorf("right column missing %q", v)
			}
		}
		if strings.Index(left, "Nacionalidade") > strings.Index(left, "Email") ||
			strings.Index(left, "Email") > strings.Index(left, "Morada") {
			t.Error("left column not in priority order")
		}
	})

	t.Run("column membership independent of count", func(t *testing.T) {
		t.Parallel()

		got := personalPanel(cv.Personal{Name: "Ana", Phone: "900"}, dict)
		want := `<div class="cv-personal"><div class="cv-personal-col"></div><div class="cv-personal-col">`
		if !strings.HasPrefix(got, want) {
			t.Errorf("phone should be alone in right column: %s", got)
		}
	})
}

// ---------------------------------------------------------------------------
// TestWatermark - Overlay and styling
// ---------------------------------------------------------------------------

func TestWatermarkOverlay(t *testing.T) {
	t.Parallel()

	got := watermarkOverlay("DRAFT")
	want := `<div class="cv-watermark" aria-hidden="true">D<br>R<br>A<br>F<br>T</div>`
	if !strings.HasPrefix(got, want) {
		t.Errorf("watermarkOverlay() = %q, want prefix %q", got, want)
	}
}

func TestBuildWatermarkCSS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		w     Watermark
		wants []string
	}{
		{"defaults", Watermark{}, []string{"color: #888888", "opacity: 0.15", "rotate(0.0deg)"}},
		{"custom", Watermark{Color: "#ff0000", Opacity: 0.5, Angle: -45}, []string{"color: #ff0000", "opacity: 0.50", "rotate(-45.0deg)"}},
		{"invalid color falls back", Watermark{Color: "red;}body{"}, []string{"color: #888888"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			css := buildWatermarkCSS(tt.w)
			for _, w := range tt.wants {
				if !strings.Contains(css, w) {
					t.Errorf("CSS missing %q:\n%s", w, css)
				}
			}
			if !strings.Contains(css, "pointer-events: none") {
				t.Error("watermark must not intercept pointer events")
			}
		})
	}
}

func TestIsHexColor(t *testing.T) {
	t.Parallel()

	for _, c := range []string{"#fff", "#888888", "#AaBbCc"} {
		if !IsHexColor(c) {
			t.Errorf("IsHexColor(%q) = false, want true", c)
		}
	}
	for _, c := range []string{"", "888888", "#ggg", "#12345", "red"} {
		if IsHexColor(c) {
			t.Errorf("IsHexColor(%q) = true, want false", c)
		}
	}
}

// ---------------------------------------------------------------------------
// TestUppercaseInMarkup - Headings, roles and titles do not depend on CSS
// ---------------------------------------------------------------------------

func TestUppercaseInMarkup(t *testing.T) {
	t.Parallel()

	s := cv.Sections{
		Experience: []cv.ExperienceItem{{Role: "r&d lead", Company: "Acme Lda"}},
		Education:  []cv.EducationItem{{Title: "Mestrado em Engenharia", Institution: "Universidade do Porto"}},
	}
	html := strings.Join(Sections(s, locale.For("PT")), "")

	wants := []string{
		`<h2 class="cv-section-title">EXPERIÊNCIA PROFISSIONAL</h2>`,
		`<h2 class="cv-section-title">EDUCAÇÃO E FORMAÇÃO</h2>`,
		`<div class="cv-role">R&amp;D LEAD – <span class="cv-company">Acme Lda</span></div>`,
		`<div class="cv-edu-title">MESTRADO EM ENGENHARIA</div>`,
		`<div class="cv-institution">Universidade do Porto</div>`,
	}
	for _, w := range wants {
		if !strings.Contains(html, w) {
			t.Errorf("missing %q\n%s", w, html)
		}
	}
}
