package render

import "strings"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// Escape rewrites &, <, > and " to their entity forms.
func Escape(s string) string {
	return htmlEscaper.Replace(s)
}

// nl2br escapes s, then turns line breaks into <br>.
func nl2br(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(Escape(s), "\n", "<br>")
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// nonBlank returns the items with content, in input order.
func nonBlank(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if !isBlank(it) {
			out = append(out, it)
		}
	}
	return out
}
