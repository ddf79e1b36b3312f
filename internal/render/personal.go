package render

import (
	"strings"

	"github.com/alnah/go-cv2pdf/internal/cv"
	"github.com/alnah/go-cv2pdf/internal/locale"
)

type personalRow struct {
	label string
	value string
	left  bool
}

// personalRows collects the present fields in fixed priority order.
// Column membership is static: nationality, email and address go left.
func personalRows(p cv.Personal, dict locale.Dictionary) []personalRow {
	all := []personalRow{
		{dict.Nationality, p.Nationality, true},
		{dict.Sex, p.Sex, false},
		{dict.Email, p.Email, true},
		{dict.Phone, p.Phone, false},
		{dict.Address, p.Address, true},
	}
	rows := all[:0]
	for _, r := range all {
		if !isBlank(r.value) {
			rows = append(rows, r)
		}
	}
	return rows
}

// personalPanel renders the two-column details grid, or "" when no field is set.
func personalPanel(p cv.Personal, dict locale.Dictionary) string {
	rows := personalRows(p, dict)
	if len(rows) == 0 {
		return ""
	}

	var left, right strings.Builder
	for _, r := range rows {
		col := &right
		if r.left {
			col = &left
		}
		col.WriteString(`<div class="cv-personal-row"><span class="cv-label">`)
		col.WriteString(Escape(r.label))
		col.WriteString(`:</span> <span class="cv-value">`)
		col.WriteString(Escape(r.value))
		col.WriteString("</span></div>")
	}

	return `<div class="cv-personal"><div class="cv-personal-col">` + left.String() +
		`</div><div class="cv-personal-col">` + right.String() + "</div></div>"
}
