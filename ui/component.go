// Package ui provides the frame-driven UI widgets of the engine: the
// typewriter text box and the fading sprite, plus the component contract
// they share.
package ui

import "github.com/inkforge/fable/render"

// Component is the contract shared by all UI widgets. State transitions
// happen synchronously inside Render (once per frame) or inside input
// callbacks; there is no background work.
type Component interface {
	Position() (x, y float64)
	SetPosition(x, y float64)
	Size() (width, height float64)
	SetSize(width, height float64)
	Visible() bool
	SetVisible(visible bool)

	// Render draws the component and advances its per-frame state.
	Render(dst render.Image)

	// Refresh recomputes layout after the logical screen size changed.
	Refresh(screenWidth, screenHeight int)
}

// Base holds the position/size bookkeeping common to all components.
// Embed it and override Render/Refresh.
type Base struct {
	x, y          float64
	width, height float64
	visible       bool
}

// NewBase creates a visible base component at the given position and size.
func NewBase(x, y, width, height float64) Base {
	return Base{x: x, y: y, width: width, height: height, visible: true}
}

// Position returns the component's top-left corner.
func (b *Base) Position() (x, y float64) {
	return b.x, b.y
}

// SetPosition moves the component's top-left corner.
func (b *Base) SetPosition(x, y float64) {
	b.x = x
	b.y = y
}

// Size returns the component's logical size.
func (b *Base) Size() (width, height float64) {
	return b.width, b.height
}

// SetSize sets the component's logical size.
func (b *Base) SetSize(width, height float64) {
	b.width = width
	b.height = height
}

// Visible reports whether the component is drawn.
func (b *Base) Visible() bool {
	return b.visible
}

// SetVisible shows or hides the component.
func (b *Base) SetVisible(visible bool) {
	b.visible = visible
}
