// Package render defines the rendering interfaces that abstract the
// underlying graphics engine. This allows swapping rendering backends
// without changing widget or playback logic.
package render

import (
	"image"
	"image/color"
)

// Renderer is the main rendering interface.
type Renderer interface {
	// Image operations
	NewImage(width, height int) Image

	// Vector operations (for drawing panel backgrounds and frames)
	FillRect(dst Image, x, y, width, height float32, clr color.Color)
	StrokeRect(dst Image, x, y, width, height float32, strokeWidth float32, clr color.Color)

	// Text operations
	DrawText(dst Image, text string, fnt Font, x, y float64, clr color.Color)
}

// Font is a renderable font face resolved to a concrete size.
type Font interface {
	// MeasureText returns the rendered dimensions of text in pixels.
	MeasureText(text string) (width, height float64)

	// LineHeight returns the vertical advance between lines of text.
	LineHeight() float64
}

// Image represents a renderable image surface that can be drawn to or
// drawn from. It abstracts the underlying image implementation.
type Image interface {
	// Properties
	Bounds() image.Rectangle
	Size() (width, height int)

	// Sub-image extraction
	SubImage(r image.Rectangle) Image

	// Fill operations
	Fill(clr color.Color)
	Clear()

	// Drawing operations
	DrawImage(src Image, opts *DrawImageOptions)

	// Resource management
	Dispose()
}

// DrawImageOptions contains options for drawing an image.
type DrawImageOptions struct {
	GeoM GeoM

	// Alpha scales the source alpha channel, 0.0 (transparent) to 1.0 (opaque).
	// The zero value of the struct must draw fully opaque, so this is stored
	// as an offset from 1.0 via SetAlpha.
	alphaSet bool
	alpha    float64
}

// SetAlpha sets the alpha multiplier applied when drawing.
func (o *DrawImageOptions) SetAlpha(a float64) {
	o.alphaSet = true
	o.alpha = a
}

// Alpha returns the effective alpha multiplier.
func (o *DrawImageOptions) Alpha() float64 {
	if !o.alphaSet {
		return 1.0
	}
	return o.alpha
}

// GeoM represents a geometric transformation matrix.
type GeoM interface {
	// Translate shifts the image by (tx, ty).
	Translate(tx, ty float64)

	// Scale scales the image by (sx, sy).
	Scale(sx, sy float64)

	// Rotate rotates the image by the given angle in radians.
	Rotate(angle float64)

	// Reset resets the matrix to identity.
	Reset()
}

// NewGeoM creates a new geometric transformation matrix.
// This is implemented by the specific renderer backend.
var NewGeoM func() GeoM

// InputManager handles input from the user (keyboard, mouse, etc).
type InputManager interface {
	IsKeyPressed(key Key) bool
	IsKeyJustPressed(key Key) bool
	GetCursorPosition() (x, y int)
	IsMouseButtonPressed(button MouseButton) bool
	IsMouseButtonJustPressed(button MouseButton) bool
}

// Key represents a keyboard key.
type Key int

// Key constants for common keys
const (
	KeySpace Key = iota
	KeyEnter
	KeyEscape
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// MouseButton represents a mouse button.
type MouseButton int

// Mouse button constants
const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// ResourceLoader handles loading resources like images and fonts from disk.
type ResourceLoader interface {
	LoadImage(path string) (Image, error)
	LoadFontSource(path string) (FontSource, error)
}

// FontSource is a parsed font file from which sized faces are derived.
type FontSource interface {
	// Face derives a renderable font face at the given pixel size.
	Face(size float64) Font
}

// Game represents the game interface that the engine will call.
type Game interface {
	// Update updates the game logic. It is called every tick
	// (typically 60 times per second).
	Update() error

	// Draw draws the game screen. It is called every frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the
	// logical screen size used for rendering and input coordinates.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the game engine that manages the game loop and window.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// SetWindowResizable enables or disables window resizing.
	SetWindowResizable(resizable bool)

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that runs until the game ends.
	RunGame(game Game) error
}
