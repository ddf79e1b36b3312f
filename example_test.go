package cv2pdf_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/alnah/go-cv2pdf"
)

// Example renders a CV to HTML. For PDF output, drop HTMLOnly (requires Chrome).
func Example() {
	cv, err := cv2pdf.ParseCV([]byte(`{
		"personal": {"name": "Ana Silva", "email": "a@x.com"},
		"sections": {"skills": ["Go", "SQL"]}
	}`))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	conv, err := cv2pdf.NewConverter()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer conv.Close()

	result, err := conv.Convert(context.Background(), cv2pdf.Input{CV: cv, HTMLOnly: true})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	html := string(result.HTML)
	fmt.Println(strings.Contains(html, "Ana Silva"), strings.Contains(html, "<li>Go</li><li>SQL</li>"))
	// Output: true true
}

// Example_english selects English labels and the draft watermark.
func Example_english() {
	conv, err := cv2pdf.NewConverter(cv2pdf.WithStyle("compact"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer conv.Close()

	result, err := conv.Convert(context.Background(), cv2pdf.Input{
		CV: &cv2pdf.CV{
			Personal: cv2pdf.Personal{Name: "Ana Silva", Phone: "+351 900 000 000"},
		},
		Locale:   "EN",
		Draft:    true,
		HTMLOnly: true,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	html := string(result.HTML)
	fmt.Println(strings.Contains(html, "Phone:"), strings.Contains(html, "D<br>R<br>A<br>F<br>T"))
	// Output: true true
}

// Example_invalid shows the error for a CV without a name.
func Example_invalid() {
	_, err := cv2pdf.ParseCV([]byte(`{"personal": {"name": "  "}}`))
	fmt.Println(err)
	// Output: invalid CV config: personal.name is required
}
