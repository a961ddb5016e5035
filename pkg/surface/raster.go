package surface

import (
	"image"
	"image/color"
	"io"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/matzehuels/linechart/pkg/chart"
	"github.com/matzehuels/linechart/pkg/fonts"
)

// Raster is a [chart.Surface] backed by a gg software context.
//
// All text is drawn with the embedded font regardless of the family passed
// to SetFont, so MeasureText and the drawn glyphs always agree. Drawing
// errors do not stop rendering; the first one is kept and returned by Err.
type Raster struct {
	dc    *gg.Context
	st    stateStack
	faces map[float64]text.Face
	err   error
}

// NewRaster creates a transparent width×height raster surface. Dimensions
// are rounded up to whole pixels.
func NewRaster(width, height float64) *Raster {
	return &Raster{
		dc:    gg.NewContext(int(math.Ceil(width)), int(math.Ceil(height))),
		st:    newStateStack(),
		faces: make(map[float64]text.Face),
	}
}

// Err returns the first drawing error, if any.
func (r *Raster) Err() error { return r.err }

// Image returns a copy of the current pixels.
func (r *Raster) Image() image.Image { return r.dc.Image() }

// EncodePNG writes the surface as PNG.
func (r *Raster) EncodePNG(w io.Writer) error { return r.dc.EncodePNG(w) }

// EncodeJPEG writes the surface as JPEG with the given quality (1-100).
func (r *Raster) EncodeJPEG(w io.Writer, quality int) error { return r.dc.EncodeJPEG(w, quality) }

// Close releases the underlying context.
func (r *Raster) Close() error { return r.dc.Close() }

func (r *Raster) Size() (float64, float64) {
	return float64(r.dc.Width()), float64(r.dc.Height())
}

func (r *Raster) ClearRect(x, y, w, h float64) {
	if coversSurface(r.st.cur.matrix, x, y, w, h, float64(r.dc.Width()), float64(r.dc.Height())) {
		r.dc.Clear()
		return
	}
	r.dc.ClearPath()
	r.dc.DrawRectangle(x, y, w, h)
	r.dc.SetColor(color.Transparent)
	r.check(r.dc.Fill())
}

func (r *Raster) FillRect(x, y, w, h float64) {
	r.dc.ClearPath()
	r.dc.DrawRectangle(x, y, w, h)
	r.dc.SetColor(rgba(r.st.cur.fill))
	r.check(r.dc.Fill())
}

func (r *Raster) BeginPath()          { r.dc.ClearPath() }
func (r *Raster) MoveTo(x, y float64) { r.dc.MoveTo(x, y) }
func (r *Raster) LineTo(x, y float64) { r.dc.LineTo(x, y) }

func (r *Raster) Arc(x, y, radius, start, end float64) {
	if _, _, ok := r.dc.GetCurrentPoint(); ok {
		r.dc.LineTo(x+radius*math.Cos(start), y+radius*math.Sin(start))
	}
	r.dc.DrawArc(x, y, radius, start, end)
}

func (r *Raster) Stroke() {
	st := r.st.cur
	r.dc.SetColor(rgba(st.stroke))
	r.dc.SetLineWidth(st.lineWidth)
	if len(st.dash) > 0 {
		r.dc.SetDash(st.dash...)
	} else {
		r.dc.ClearDash()
	}
	r.check(r.dc.StrokePreserve())
}

func (r *Raster) Fill() {
	r.dc.SetColor(rgba(r.st.cur.fill))
	r.check(r.dc.FillPreserve())
}

func (r *Raster) SetStrokeColor(c chart.Color) { r.st.cur.stroke = c }
func (r *Raster) SetFillColor(c chart.Color)   { r.st.cur.fill = c }
func (r *Raster) SetLineWidth(w float64)       { r.st.cur.lineWidth = w }

func (r *Raster) SetLineDash(pattern []float64) {
	r.st.cur.dash = append([]float64(nil), pattern...)
}

func (r *Raster) SetFont(family string, size float64) {
	r.st.cur.family = family
	r.st.cur.size = size
}

func (r *Raster) SetTextAlign(a chart.TextAlign)       { r.st.cur.align = a }
func (r *Raster) SetTextBaseline(b chart.TextBaseline) { r.st.cur.baseline = b }

func (r *Raster) FillText(s string, x, y float64) {
	face := r.face(r.st.cur.size)
	if face == nil || s == "" {
		return
	}
	st := r.st.cur
	m := face.Metrics()

	x -= face.Advance(s) * alignOffset(st.align)
	switch st.baseline {
	case chart.BaselineTop:
		y += m.Ascent
	case chart.BaselineMiddle:
		y += (m.Ascent - m.Descent) / 2
	case chart.BaselineBottom:
		y -= m.Descent
	}

	if st.matrix.IsTranslation() {
		r.dc.SetFont(face)
		r.dc.SetColor(rgba(st.fill))
		r.dc.Push()
		r.dc.Identity()
		r.dc.DrawString(s, x+st.matrix.C, y+st.matrix.F)
		r.dc.Pop()
		return
	}
	r.drawTransformedText(s, face, m, x, y)
}

// drawTransformedText renders s upright into a scratch image and maps it
// onto the surface through the current transform.
func (r *Raster) drawTransformedText(s string, face text.Face, m text.Metrics, x, y float64) {
	const pad = 1
	w := int(math.Ceil(face.Advance(s))) + 2*pad
	h := int(math.Ceil(m.Ascent+m.Descent)) + 2*pad
	glyphs := image.NewRGBA(image.Rect(0, 0, w, h))
	text.Draw(glyphs, s, face, pad, pad+m.Ascent, rgba(r.st.cur.fill))

	// scratch origin sits at (x-pad, y-ascent-pad) in user space
	t := r.st.cur.matrix.Multiply(gg.Translate(x-pad, y-m.Ascent-pad))
	overlay := image.NewRGBA(image.Rect(0, 0, r.dc.Width(), r.dc.Height()))
	xdraw.BiLinear.Transform(overlay, f64.Aff3{t.A, t.B, t.C, t.D, t.E, t.F}, glyphs, glyphs.Bounds(), xdraw.Over, nil)

	r.dc.Push()
	r.dc.Identity()
	r.dc.DrawImage(gg.ImageBufFromImage(overlay), 0, 0)
	r.dc.Pop()
}

func (r *Raster) MeasureText(s string) float64 {
	face := r.face(r.st.cur.size)
	if face == nil {
		return 0
	}
	return face.Advance(s)
}

func (r *Raster) Save() {
	r.st.save()
	r.dc.Push()
}

func (r *Raster) Restore() {
	r.st.restore()
	r.dc.Pop()
}

func (r *Raster) Translate(x, y float64) {
	r.st.translate(x, y)
	r.dc.Translate(x, y)
}

func (r *Raster) Rotate(angle float64) {
	r.st.rotate(angle)
	r.dc.Rotate(angle)
}

func (r *Raster) face(size float64) text.Face {
	if f, ok := r.faces[size]; ok {
		return f
	}
	f, err := fonts.Face(size)
	if err != nil {
		r.check(err)
		return nil
	}
	r.faces[size] = f
	return f
}

func (r *Raster) check(err error) {
	if err != nil && r.err == nil {
		r.err = err
	}
}

func rgba(c chart.Color) color.Color {
	return gg.Hex(c.Hex()).Color()
}
