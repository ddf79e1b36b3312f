// Package cv2pdf renders CVs to self-contained HTML and to PDF using headless Chrome.
//
// # Quick Start
//
// Parse a CV, convert it, and close the converter when done:
//
//	cv, err := cv2pdf.ParseCV(data) // JSON or YAML
//	if err != nil {
//	    log.Fatal(err) // wraps cv2pdf.ErrConfigInvalid
//	}
//
//	conv, err := cv2pdf.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conv.Close()
//
//	result, err := conv.Convert(ctx, cv2pdf.Input{CV: cv})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("cv-europass.pdf", result.PDF, 0644)
//
// The result holds both the PDF bytes (result.PDF) and the HTML it was printed
// from (result.HTML). Set Input.HTMLOnly to skip the browser entirely.
//
// # CV Document
//
// Only personal.name is required. Sections render in a fixed order
// (presentation, objective, experience, education, languages, skills) and
// only when they have content. Labels are Portuguese unless the language is
// "EN". Photo and logo files are inlined as data URLs; a missing file is
// skipped, and a missing logo draws the built-in europass mark.
//
// # Configuration
//
// Converter options:
//
//	conv, err := cv2pdf.NewConverter(
//	    cv2pdf.WithTimeout(time.Minute),
//	    cv2pdf.WithStyle("compact"),
//	    cv2pdf.WithAssetPath("/path/to/assets"), // styles/{name}.css
//	)
//
// Per-conversion options are passed via Input:
//
//	result, err := conv.Convert(ctx, cv2pdf.Input{
//	    CV:        cv,
//	    Locale:    "EN",
//	    AssetDir:  "/path/to/cv", // for relative photo and logo paths
//	    LogoPath:  "logo.png",
//	    Draft:     true,
//	    Watermark: &cv2pdf.Watermark{Color: "#cc0000", Opacity: 0.2},
//	    Page:      &cv2pdf.PageSettings{Size: "letter", Orientation: "portrait", Margin: 12},
//	})
//
// # Parallel Processing
//
// Each Converter owns one browser. For concurrent rendering use ConverterPool:
//
//	pool, err := cv2pdf.NewConverterPool(cv2pdf.ResolvePoolSize(0))
//	defer pool.Close()
//
//	conv, err := pool.Acquire(ctx)
//	defer pool.Release(conv)
//	result, err := conv.Convert(ctx, input)
//
// # Browser Requirements
//
// PDF generation requires Chrome/Chromium. The go-rod library downloads a
// managed Chromium on first run (~/.cache/rod/browser/).
//
// For containers and CI environments, set ROD_NO_SANDBOX=1 to disable the
// Chrome sandbox. Use ROD_BROWSER_BIN to specify a custom Chrome binary.
package cv2pdf
