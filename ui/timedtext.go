package ui

import (
	"image/color"
	"strings"

	"github.com/inkforge/fable/render"
	"github.com/inkforge/fable/textwrap"
)

// revealInterval is the number of Render calls per revealed glyph.
// The reveal cursor advances on every second frame.
const revealInterval = 2

// TimedTextLayout holds the layout constants used to place the text box
// and compute its wrap width from the screen size.
type TimedTextLayout struct {
	// Padding is the inner padding between the box edge and the text.
	Padding float64

	// MarginX is the horizontal margin between the screen edge and the box.
	MarginX float64

	// MarginBottom is the gap between the box and the bottom screen edge.
	MarginBottom float64

	// HeightFrac is the box height as a fraction of the screen height.
	HeightFrac float64
}

// DefaultTimedTextLayout returns the standard dialogue box layout.
func DefaultTimedTextLayout() TimedTextLayout {
	return TimedTextLayout{
		Padding:      16,
		MarginX:      24,
		MarginBottom: 24,
		HeightFrac:   0.28,
	}
}

// TimedText is a typewriter-style text box. SetText resets it to an
// un-revealed state; each Render call advances the revealed prefix one
// glyph every second frame until the whole wrapped text is shown.
//
// Invariant: for non-empty text the reveal cursor stays within
// [1, len(wrapped)] and finished is true exactly when the cursor has
// reached the end.
type TimedText struct {
	Base

	renderer render.Renderer
	font     render.Font
	layout   TimedTextLayout

	textColor color.Color
	boxColor  color.Color

	original string // unwrapped source text
	wrapped  []rune // wrapped text, lines joined with '\n'
	cursor   int    // count of glyphs currently shown
	finished bool
	tick     int

	// Deferred finished-handlers, dequeued one per click after the text
	// has finished. Despite the original engine naming this "global",
	// it is ordinary per-instance state.
	pending []func()

	// OnGlyph, if set, is called once per newly revealed glyph.
	OnGlyph func(glyph rune)
}

// NewTimedText creates an empty text box using the given renderer and font.
func NewTimedText(renderer render.Renderer, fnt render.Font, layout TimedTextLayout) *TimedText {
	return &TimedText{
		Base:      NewBase(0, 0, 0, 0),
		renderer:  renderer,
		font:      fnt,
		layout:    layout,
		textColor: color.RGBA{230, 230, 230, 255},
		boxColor:  color.RGBA{20, 20, 30, 230},
	}
}

// SetColors overrides the text and box background colors.
func (t *TimedText) SetColors(textColor, boxColor color.Color) {
	t.textColor = textColor
	t.boxColor = boxColor
}

// SetText re-wraps text to the current wrap width and resets the reveal
// state so the next frames animate it from the first glyph.
func (t *TimedText) SetText(text string) {
	t.original = text
	t.rewrap()
	t.tick = 0
	if len(t.wrapped) == 0 {
		t.cursor = 0
		t.finished = true
		return
	}
	t.cursor = 1
	t.finished = len(t.wrapped) == 1
}

// Text returns the original, unwrapped text.
func (t *TimedText) Text() string {
	return t.original
}

// Cursor returns the count of glyphs currently shown.
func (t *TimedText) Cursor() int {
	return t.cursor
}

// Finished reports whether the full text is revealed.
func (t *TimedText) Finished() bool {
	return t.finished
}

// QueueFinished enqueues a handler to be invoked by the first click that
// arrives after the text has finished revealing. Handlers are dequeued
// one per click, in FIFO order.
func (t *TimedText) QueueFinished(fn func()) {
	t.pending = append(t.pending, fn)
}

// Advance handles a click or confirm key. On an unfinished text it skips
// the animation and reveals everything; on a finished text it dequeues
// and invokes one pending finished-handler, if any. Empty text is a no-op.
func (t *TimedText) Advance() {
	if t.original == "" {
		return
	}

	if !t.finished {
		t.cursor = len(t.wrapped)
		t.finished = true
		return
	}

	if len(t.pending) > 0 {
		fn := t.pending[0]
		t.pending = t.pending[1:]
		fn()
	}
}

// Render draws the box and the revealed prefix, advancing the reveal
// cursor one glyph every second call until the text is finished.
func (t *TimedText) Render(dst render.Image) {
	if !t.Visible() {
		return
	}

	t.tick++
	if !t.finished && t.tick%revealInterval == 0 {
		glyph := t.wrapped[t.cursor]
		t.cursor++
		if t.cursor == len(t.wrapped) {
			t.finished = true
		}
		if t.OnGlyph != nil {
			t.OnGlyph(glyph)
		}
	}

	x, y := t.Position()
	w, h := t.Size()
	t.renderer.FillRect(dst, float32(x), float32(y), float32(w), float32(h), t.boxColor)

	if t.cursor > 0 {
		revealed := string(t.wrapped[:t.cursor])
		t.renderer.DrawText(dst, revealed, t.font, x+t.layout.Padding, y+t.layout.Padding, t.textColor)
	}
}

// Refresh recomputes the box geometry from the screen size and re-wraps
// the text, preserving the reveal position: the full text when finished,
// otherwise the prior cursor clamped to the new wrapped length.
func (t *TimedText) Refresh(screenWidth, screenHeight int) {
	boxWidth := float64(screenWidth) - 2*t.layout.MarginX
	boxHeight := float64(screenHeight) * t.layout.HeightFrac
	t.SetSize(boxWidth, boxHeight)
	t.SetPosition(t.layout.MarginX, float64(screenHeight)-boxHeight-t.layout.MarginBottom)

	wasFinished := t.finished
	prevCursor := t.cursor
	t.rewrap()

	if len(t.wrapped) == 0 {
		t.cursor = 0
		t.finished = true
		return
	}

	if wasFinished {
		t.cursor = len(t.wrapped)
		return
	}

	t.cursor = prevCursor
	if t.cursor < 1 {
		t.cursor = 1
	}
	if t.cursor >= len(t.wrapped) {
		t.cursor = len(t.wrapped)
		t.finished = true
	}
}

// rewrap reflows the original text to the current wrap width.
func (t *TimedText) rewrap() {
	w, _ := t.Size()
	wrapWidth := w - 2*t.layout.Padding
	lines := textwrap.Wrap(t.font, t.original, wrapWidth)
	t.wrapped = []rune(strings.Join(lines, "\n"))
}
