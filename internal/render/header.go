package render

import (
	"strings"

	"github.com/alnah/go-cv2pdf/internal/assets"
	"github.com/alnah/go-cv2pdf/internal/cv"
	"github.com/alnah/go-cv2pdf/internal/locale"
)

const logoPlaceholder = `<div class="cv-logo"><div class="cv-logo-mark"><span class="cv-logo-star">★</span></div><span class="cv-logo-text">europass</span></div>`

func logoBlock(dataURL string, ok bool) string {
	if !ok {
		return logoPlaceholder
	}
	return `<div class="cv-logo"><img src="` + dataURL + `" alt="Europass"></div>`
}

func header(cfg *cv.CvConfig, dict locale.Dictionary, opts Options) string {
	var b strings.Builder
	b.WriteString(`<header class="cv-header"><div class="cv-header-inner">`)

	if photo, ok := assets.EmbedImage(opts.AssetDir, cfg.Personal.PhotoPath); ok {
		b.WriteString(`<img class="cv-photo" src="`)
		b.WriteString(photo)
		b.WriteString(`" alt="">`)
	}

	b.WriteString(`<div class="cv-header-main"><div class="cv-title-row"><h1 class="cv-name">`)
	b.WriteString(Escape(strings.TrimSpace(cfg.Personal.Name)))
	b.WriteString("</h1>")
	b.WriteString(logoBlock(assets.EmbedImage(opts.AssetDir, opts.LogoPath)))
	b.WriteString(`</div><div class="cv-rule"></div>`)
	b.WriteString(personalPanel(cfg.Personal, dict))
	b.WriteString("</div></div></header>\n")
	return b.String()
}
