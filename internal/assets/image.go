package assets

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-cv2pdf/internal/fileutil"
)

// MaxImageSize bounds the bytes read for one inlined image (default 10MB).
var MaxImageSize int64 = 10 << 20

const fallbackMIME = "image/jpeg"

var imageMIME = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// MIMEType returns the image MIME type for path's extension. Unknown
// extensions are assumed to be JPEG.
func MIMEType(path string) string {
	if m, ok := imageMIME[strings.ToLower(filepath.Ext(path))]; ok {
		return m
	}
	return fallbackMIME
}

// EmbedImage reads the image at path, resolved against baseDir when relative,
// and returns it as a base64 data URL. ok is false when path is empty or the
// file cannot be read; no error is reported.
func EmbedImage(baseDir, path string) (dataURL string, ok bool) {
	if strings.TrimSpace(path) == "" {
		return "", false
	}
	full := fileutil.ResolvePath(baseDir, path)

	info, err := os.Stat(full)
	if err != nil || info.IsDir() || info.Size() > MaxImageSize {
		return "", false
	}
	data, err := os.ReadFile(full) // #nosec G304 -- user-provided CV asset
	if err != nil {
		return "", false
	}

	return "data:" + MIMEType(full) + ";base64," + base64.StdEncoding.EncodeToString(data), true
}
