package server

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	cv2pdf "github.com/alnah/go-cv2pdf"
)

// Output formats accepted by ?format=.
const (
	FormatPDF  = "pdf"
	FormatHTML = "html"
)

const (
	outcomeOK       = "ok"
	outcomeRejected = "rejected"
	outcomeFailed   = "failed"
)

// defaultFilename is used for Content-Disposition when the CV names no output.
const defaultFilename = "cv-europass.pdf"

type renderParams struct {
	format string
	draft  bool
	locale string
}

func parseRenderParams(c *gin.Context, draft bool) (renderParams, string) {
	p := renderParams{format: FormatPDF, draft: draft}

	if f := strings.ToLower(c.Query("format")); f != "" {
		if f != FormatPDF && f != FormatHTML {
			return p, "format must be pdf or html"
		}
		p.format = f
	}

	if d := c.Query("draft"); d != "" {
		draft, err := strconv.ParseBool(d)
		if err != nil {
			return p, "draft must be a boolean"
		}
		p.draft = draft
	}

	p.locale = c.Query("lang")
	return p, ""
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleRender(c *gin.Context) {
	logger := loggerFrom(c)

	params, msg := parseRenderParams(c, s.cfg.Draft)
	if msg != "" {
		abortError(c, http.StatusBadRequest, msg)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, s.cfg.MaxBodyBytes))
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			status = http.StatusBadRequest
		}
		abortError(c, status, "reading request body: "+err.Error())
		return
	}

	cv, err := cv2pdf.ParseCV(body)
	if err != nil {
		observeRender(params.format, outcomeRejected, 0)
		abortError(c, statusFor(err), err.Error())
		return
	}
	s.confineImages(cv)
	if cv.LogoPath == "" {
		cv.LogoPath = s.cfg.Logo
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), s.cfg.Timeout)
	defer cancel()

	conv, err := s.src.Acquire(ctx)
	if err != nil {
		status := statusFor(err)
		logger.Warn("no converter available", slog.String("error", err.Error()))
		abortError(c, status, publicMessage(status, err))
		return
	}
	defer s.src.Release(conv)

	locale := params.locale
	if locale == "" && strings.TrimSpace(cv.Language) == "" {
		locale = s.cfg.Locale
	}

	input := cv2pdf.Input{
		CV:        cv,
		Locale:    locale,
		AssetDir:  s.cfg.ImageDir,
		Draft:     params.draft,
		Watermark: s.cfg.Watermark,
		Page:      s.cfg.Page,
		HTMLOnly:  params.format == FormatHTML,
	}

	start := time.Now()
	result, err := conv.Convert(ctx, input)
	if err != nil {
		status := statusFor(err)
		outcome := outcomeFailed
		if status < http.StatusInternalServerError {
			outcome = outcomeRejected
		}
		observeRender(params.format, outcome, 0)
		logger.Error("render failed", slog.Int("status", status), slog.String("error", err.Error()))
		abortError(c, status, publicMessage(status, err))
		return
	}
	observeRender(params.format, outcomeOK, time.Since(start))

	if params.format == FormatHTML {
		c.Data(http.StatusOK, "text/html; charset=utf-8", result.HTML)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+pdfFilename(cv.OutputPdf)+`"`)
	c.Data(http.StatusOK, "application/pdf", result.PDF)
}

// confineImages drops photo and logo paths that would leave ImageDir.
// Without an ImageDir the server embeds no images from disk.
func (s *Server) confineImages(cv *cv2pdf.CV) {
	if s.cfg.ImageDir == "" {
		cv.Personal.PhotoPath = ""
		cv.LogoPath = ""
		return
	}
	if !filepath.IsLocal(cv.Personal.PhotoPath) {
		cv.Personal.PhotoPath = ""
	}
	if !filepath.IsLocal(cv.LogoPath) {
		cv.LogoPath = ""
	}
}

// pdfFilename keeps only a safe base name from the CV's outputPdf hint.
func pdfFilename(hint string) string {
	name := path.Base(filepath.ToSlash(strings.TrimSpace(hint)))
	if name == "." || name == "/" || name == "" || strings.ContainsAny(name, "\"\\\r\n") {
		return defaultFilename
	}
	if !strings.HasSuffix(strings.ToLower(name), ".pdf") {
		name += ".pdf"
	}
	return name
}
