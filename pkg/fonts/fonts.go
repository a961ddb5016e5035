// Package fonts provides the embedded default font used for chart text.
//
// The font is Go Regular from golang.org/x/image/font/gofont, compiled into
// the binary so raster output does not depend on fonts installed on the
// host. SVG output can embed the same font as a data URI, which keeps
// label measurement identical across formats.
package fonts

import (
	"encoding/base64"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// FontFamily is the CSS font-family name the embedded font is declared as.
const FontFamily = "Go"

// FallbackFontFamily lists the families an SVG viewer falls back to.
const FallbackFontFamily = `'Go', Arial, Helvetica, sans-serif`

// TTF returns the TTF font data.
func TTF() []byte {
	return goregular.TTF
}

// Cache for the parsed font source (loaded once on first access).
var (
	source     *text.FontSource
	sourceErr  error
	sourceOnce sync.Once
)

// Source returns the parsed font. The result is cached after the first
// call; a parse error is returned on every call.
func Source() (*text.FontSource, error) {
	sourceOnce.Do(func() {
		source, sourceErr = text.NewFontSource(goregular.TTF)
	})
	return source, sourceErr
}

// Face returns a face of the embedded font at size pixels.
func Face(size float64) (text.Face, error) {
	src, err := Source()
	if err != nil {
		return nil, err
	}
	return src.Face(size), nil
}

// Measure returns the advance width of s at size pixels. It returns 0 if
// the font cannot be loaded.
func Measure(s string, size float64) float64 {
	f, err := Face(size)
	if err != nil {
		return 0
	}
	return f.Advance(s)
}

// Cache for the base64-encoded font (computed once on first access).
var (
	ttfBase64     string
	ttfBase64Once sync.Once
)

// TTFBase64 returns the TTF font data as a base64 string.
// The result is cached after first computation.
func TTFBase64() string {
	ttfBase64Once.Do(func() {
		ttfBase64 = base64.StdEncoding.EncodeToString(goregular.TTF)
	})
	return ttfBase64
}
