package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	cv2pdf "github.com/alnah/go-cv2pdf"
	"github.com/alnah/go-cv2pdf/internal/fileutil"
)

// Sentinel errors for file discovery.
var (
	ErrInvalidExtension   = errors.New("CV file must have .json, .yaml or .yml extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrOutputConflict     = errors.New("output path claimed by two inputs")
)

// defaultOutputName is the PDF name for a single CV when nothing else names one.
const defaultOutputName = "cv-europass.pdf"

// isCVFile reports whether path has a CV document extension.
func isCVFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

// discoverFiles expands the positional arguments into CV files.
// Files must have a CV extension; directories are walked recursively and
// contribute only CV files.
func discoverFiles(args []string) ([]string, error) {
	if len(args) == 0 {
		return nil, ErrNoInput
	}

	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			if !isCVFile(arg) {
				return nil, fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(arg))
			}
			files = append(files, arg)
			continue
		}

		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return fmt.Errorf("scanning %s: %w", path, err)
			}
			if !d.IsDir() && isCVFile(path) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}

// outputTarget holds the output choices that do not depend on the CV itself.
type outputTarget struct {
	flag        string // -o value: a .pdf file, or a directory
	defaultPath string // app config output.defaultPath (single CV only)
	batch       bool
}

// resolve picks the PDF path for one CV.
//
// Single CV: -o file, -o dir/<name>.pdf, the CV's outputPdf, the config
// default, then cv-europass.pdf.
// Batch: -o dir/<name>.pdf, the CV's outputPdf relative to the input's
// directory, then <name>.pdf next to the input.
func (o outputTarget) resolve(inputPath, cvHint string) string {
	base := fileutil.ReplaceExt(filepath.Base(inputPath), ".pdf")

	if o.flag != "" {
		if !o.batch && strings.HasSuffix(strings.ToLower(o.flag), ".pdf") {
			return o.flag
		}
		return filepath.Join(o.flag, base)
	}

	if hint := strings.TrimSpace(cvHint); hint != "" {
		if o.batch {
			return fileutil.ResolvePath(filepath.Dir(inputPath), hint)
		}
		return hint
	}

	if o.batch {
		return filepath.Join(filepath.Dir(inputPath), base)
	}
	if o.defaultPath != "" {
		return o.defaultPath
	}
	return defaultOutputName
}

// claimOutputs resolves every input's target before any is written. An
// input whose target an earlier input already claimed gets an
// ErrOutputConflict in its slot; the others get nil.
func claimOutputs(files []string, out outputTarget) []error {
	conflicts := make([]error, len(files))
	owners := make(map[string]string, len(files))
	for i, f := range files {
		target := filepath.Clean(out.resolve(f, peekOutputHint(f)))
		if first, taken := owners[target]; taken {
			conflicts[i] = fmt.Errorf("%w: %s is also the target of %s", ErrOutputConflict, target, first)
			continue
		}
		owners[target] = f
	}
	return conflicts
}

// peekOutputHint returns the CV's outputPdf, or "" when the file cannot be
// read or parsed. Those failures are reported by the conversion itself.
func peekOutputHint(path string) string {
	data, err := os.ReadFile(path) // #nosec G304 -- discovered path
	if err != nil {
		return ""
	}
	cv, err := cv2pdf.ParseCV(data)
	if err != nil {
		return ""
	}
	return cv.OutputPdf
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > cv2pdf.MaxPoolSize {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, cv2pdf.MaxPoolSize)
	}
	return nil
}

// htmlOutputPath returns the HTML path corresponding to a PDF path.
func htmlOutputPath(pdfPath string) string {
	return fileutil.ReplaceExt(pdfPath, ".html")
}
