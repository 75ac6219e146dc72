package ui

import (
	"math"

	"github.com/inkforge/fable/render"
)

// AlphaOpaque is the upper bound of the sprite alpha channel.
const AlphaOpaque = 255

// Sprite draws an image with an alpha channel and two independent linear
// fade ramps. At most one ramp is armed at a time; arming one cancels the
// other and resets alpha to the ramp's starting bound. A ramp is never
// disarmed after reaching its bound: it stays armed but idle until a new
// fade call resets it. A rate of zero arms nothing.
type Sprite struct {
	Base

	img render.Image

	alpha       float64 // 0..255
	fadeInRate  float64 // per-frame alpha increment, 0 = inactive
	fadeOutRate float64 // per-frame alpha decrement, 0 = inactive

	fullScreen bool

	// OnFadeProgress is called with the new alpha on every render that
	// moves an armed ramp.
	OnFadeProgress func(alpha float64)

	// OnFadedIn fires once, on the render where alpha first reaches 255.
	OnFadedIn func()

	// OnFadedOut fires once, on the render where alpha first reaches 0.
	OnFadedOut func()
}

// NewSprite creates a fully opaque sprite drawing img at the image's own size.
func NewSprite(img render.Image) *Sprite {
	s := &Sprite{
		img:   img,
		alpha: AlphaOpaque,
	}
	if img != nil {
		w, h := img.Size()
		s.Base = NewBase(0, 0, float64(w), float64(h))
	} else {
		s.Base = NewBase(0, 0, 0, 0)
	}
	return s
}

// SetImage replaces the drawn image, keeping the component size.
func (s *Sprite) SetImage(img render.Image) {
	s.img = img
}

// Image returns the drawn image.
func (s *Sprite) Image() render.Image {
	return s.img
}

// Alpha returns the current alpha channel value in [0, 255].
func (s *Sprite) Alpha() float64 {
	return s.alpha
}

// SetAlpha sets the alpha channel directly, clamped to [0, 255].
func (s *Sprite) SetAlpha(alpha float64) {
	s.alpha = clampAlpha(alpha)
}

// SetFullScreen marks the sprite as a full-screen backdrop; Refresh will
// rescale it to fill the screen instead of the component's logical size.
func (s *Sprite) SetFullScreen(fullScreen bool) {
	s.fullScreen = fullScreen
}

// FullScreen reports whether the sprite fills the screen on Refresh.
func (s *Sprite) FullScreen() bool {
	return s.fullScreen
}

// FadingIn reports whether the fade-in ramp is armed.
func (s *Sprite) FadingIn() bool {
	return s.fadeInRate != 0
}

// FadingOut reports whether the fade-out ramp is armed.
func (s *Sprite) FadingOut() bool {
	return s.fadeOutRate != 0
}

// FadeIn arms the fade-in ramp: cancels any fade-out, resets alpha to 0
// and raises it by speed on every following render until it reaches 255.
// A no-op when a fade-in is already armed.
func (s *Sprite) FadeIn(speed float64) {
	if s.fadeInRate != 0 {
		return
	}
	s.fadeOutRate = 0
	s.alpha = 0
	s.fadeInRate = speed
}

// FadeOut arms the fade-out ramp: cancels any fade-in, resets alpha to
// 255 and lowers it by speed on every following render until it reaches 0.
// A no-op when a fade-out is already armed.
func (s *Sprite) FadeOut(speed float64) {
	if s.fadeOutRate != 0 {
		return
	}
	s.fadeInRate = 0
	s.alpha = AlphaOpaque
	s.fadeOutRate = speed
}

// StopFades disarms both fade ramps, leaving alpha where it is. Unlike
// reaching a bound, which keeps the ramp armed, this is an explicit reset
// so a later FadeIn or FadeOut starts fresh.
func (s *Sprite) StopFades() {
	s.fadeInRate = 0
	s.fadeOutRate = 0
}

// Render advances the armed fade ramp by one step and draws the image
// scaled to the component size with the current alpha.
func (s *Sprite) Render(dst render.Image) {
	if !s.Visible() {
		return
	}

	if s.fadeInRate > 0 && s.alpha < AlphaOpaque {
		s.alpha += s.fadeInRate
		reached := s.alpha >= AlphaOpaque
		if reached {
			s.alpha = AlphaOpaque
		}
		if s.OnFadeProgress != nil {
			s.OnFadeProgress(s.alpha)
		}
		if reached && s.OnFadedIn != nil {
			s.OnFadedIn()
		}
	} else if s.fadeOutRate > 0 && s.alpha > 0 {
		s.alpha -= s.fadeOutRate
		reached := s.alpha <= 0
		if reached {
			s.alpha = 0
		}
		if s.OnFadeProgress != nil {
			s.OnFadeProgress(s.alpha)
		}
		if reached && s.OnFadedOut != nil {
			s.OnFadedOut()
		}
	}

	s.draw(dst)
}

// draw renders the image scaled to the component size with the current alpha.
func (s *Sprite) draw(dst render.Image) {
	if s.img == nil || s.alpha <= 0 {
		return
	}

	imgW, imgH := s.img.Size()
	if imgW == 0 || imgH == 0 {
		return
	}

	w, h := s.Size()
	x, y := s.Position()

	opts := &render.DrawImageOptions{}
	opts.GeoM = render.NewGeoM()
	opts.GeoM.Scale(w/float64(imgW), h/float64(imgH))
	opts.GeoM.Translate(x, y)
	opts.SetAlpha(s.alpha / AlphaOpaque)
	dst.DrawImage(s.img, opts)
}

// Refresh rescales the sprite: full-screen sprites fill the given screen
// dimensions, others keep their logical size.
func (s *Sprite) Refresh(screenWidth, screenHeight int) {
	if s.fullScreen {
		s.SetPosition(0, 0)
		s.SetSize(float64(screenWidth), float64(screenHeight))
	}
	s.UpdateSize()
}

// UpdateSize revalidates the component size against the image. A sprite
// without an image collapses to zero size.
func (s *Sprite) UpdateSize() {
	if s.img == nil {
		s.SetSize(0, 0)
	}
}

// FitToSize resizes the sprite to fit within (maxWidth, maxHeight) with a
// uniform scale that preserves the image aspect ratio. Unless enlarge is
// set, the sprite is never scaled above its current size. The resulting
// dimensions are rounded.
func (s *Sprite) FitToSize(maxWidth, maxHeight float64, enlarge bool) {
	w, h := s.Size()
	if w <= 0 || h <= 0 || maxWidth <= 0 || maxHeight <= 0 {
		return
	}

	scale := math.Min(maxWidth/w, maxHeight/h)
	if !enlarge && scale > 1 {
		scale = 1
	}

	s.SetSize(math.Round(w*scale), math.Round(h*scale))
}

// clampAlpha bounds alpha to the [0, 255] channel range.
func clampAlpha(a float64) float64 {
	if a < 0 {
		return 0
	}
	if a > AlphaOpaque {
		return AlphaOpaque
	}
	return a
}
