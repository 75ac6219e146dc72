package ui

import (
	"image"
	"image/color"

	"github.com/inkforge/fable/render"
)

func init() {
	// The real backend installs this in its init; tests run without it.
	render.NewGeoM = func() render.GeoM {
		return &fakeGeoM{}
	}
}

// fakeFont measures every rune as a fixed-width cell.
type fakeFont struct {
	charWidth float64
}

func (f *fakeFont) MeasureText(text string) (width, height float64) {
	return f.charWidth * float64(len([]rune(text))), 16
}

func (f *fakeFont) LineHeight() float64 {
	return 16
}

// fakeRenderer records the text it was asked to draw.
type fakeRenderer struct {
	drawnText []string
}

func (r *fakeRenderer) NewImage(width, height int) render.Image {
	return newFakeImage(width, height)
}

func (r *fakeRenderer) FillRect(dst render.Image, x, y, width, height float32, clr color.Color) {
}

func (r *fakeRenderer) StrokeRect(dst render.Image, x, y, width, height float32, strokeWidth float32, clr color.Color) {
}

func (r *fakeRenderer) DrawText(dst render.Image, text string, fnt render.Font, x, y float64, clr color.Color) {
	r.drawnText = append(r.drawnText, text)
}

func (r *fakeRenderer) lastDrawn() string {
	if len(r.drawnText) == 0 {
		return ""
	}
	return r.drawnText[len(r.drawnText)-1]
}

// fakeImage records draw calls and their alpha.
type fakeImage struct {
	width, height int
	drawnAlphas   []float64
}

func newFakeImage(width, height int) *fakeImage {
	return &fakeImage{width: width, height: height}
}

func (i *fakeImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, i.width, i.height)
}

func (i *fakeImage) Size() (width, height int) {
	return i.width, i.height
}

func (i *fakeImage) SubImage(r image.Rectangle) render.Image {
	return newFakeImage(r.Dx(), r.Dy())
}

func (i *fakeImage) Fill(clr color.Color) {}

func (i *fakeImage) Clear() {}

func (i *fakeImage) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	a := 1.0
	if opts != nil {
		a = opts.Alpha()
	}
	i.drawnAlphas = append(i.drawnAlphas, a)
}

func (i *fakeImage) Dispose() {}

// fakeGeoM is an inert transformation matrix.
type fakeGeoM struct{}

func (g *fakeGeoM) Translate(tx, ty float64) {}
func (g *fakeGeoM) Scale(sx, sy float64)     {}
func (g *fakeGeoM) Rotate(angle float64)     {}
func (g *fakeGeoM) Reset()                   {}
