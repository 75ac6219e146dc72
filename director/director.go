// Package director drives scripted playback: it feeds dialogue lines to
// the text box, crossfades scene backgrounds, and reacts to advance
// clicks. All transitions run synchronously inside the frame loop.
package director

import (
	"fmt"
	"log"

	"github.com/inkforge/fable/render"
	"github.com/inkforge/fable/script"
	"github.com/inkforge/fable/ui"
)

// Cues is the subset of the sound manager the director triggers.
type Cues interface {
	PlayBlip()
	PlayConfirm()
}

// Director plays one script from start to finish.
type Director struct {
	script     *script.Script
	loader     render.ResourceLoader
	textBox    *ui.TimedText
	background *ui.Sprite
	cues       Cues

	screenWidth  int
	screenHeight int

	sceneIndex int
	lineIndex  int
	done       bool
}

// New creates a director over the given widgets. cues may be nil.
func New(scr *script.Script, textBox *ui.TimedText, background *ui.Sprite, loader render.ResourceLoader, cues Cues) *Director {
	d := &Director{
		script:     scr,
		loader:     loader,
		textBox:    textBox,
		background: background,
		cues:       cues,
	}

	background.SetFullScreen(true)
	textBox.OnGlyph = func(rune) {
		if d.cues != nil {
			d.cues.PlayBlip()
		}
	}

	return d
}

// Start lays out the widgets for the given screen size and enters the
// first scene.
func (d *Director) Start(screenWidth, screenHeight int) error {
	d.Refresh(screenWidth, screenHeight)
	return d.enterScene(0)
}

// Done reports whether the script has been played to the end.
func (d *Director) Done() bool {
	return d.done
}

// Scene returns the scene currently playing.
func (d *Director) Scene() *script.Scene {
	if d.sceneIndex >= len(d.script.Scenes) {
		return nil
	}
	return &d.script.Scenes[d.sceneIndex]
}

// Click handles an advance click: it skips an unfinished line, or moves
// on from a finished one.
func (d *Director) Click() {
	if d.done {
		return
	}
	if d.textBox.Finished() && d.cues != nil {
		d.cues.PlayConfirm()
	}
	d.textBox.Advance()
}

// Render draws the background and the text box, advancing both.
func (d *Director) Render(dst render.Image) {
	d.background.Render(dst)
	d.textBox.Render(dst)
}

// Refresh re-lays-out the widgets after a screen size change.
func (d *Director) Refresh(screenWidth, screenHeight int) {
	d.screenWidth = screenWidth
	d.screenHeight = screenHeight
	d.background.Refresh(screenWidth, screenHeight)
	d.textBox.Refresh(screenWidth, screenHeight)
}

// enterScene loads the scene background, arms its fade-in and shows the
// first line.
func (d *Director) enterScene(index int) error {
	if index >= len(d.script.Scenes) {
		d.finish()
		return nil
	}

	d.sceneIndex = index
	d.lineIndex = 0
	scene := &d.script.Scenes[index]

	if scene.Background != "" {
		img, err := d.loader.LoadImage(scene.Background)
		if err != nil {
			return fmt.Errorf("scene %q: %w", scene.ID, err)
		}
		d.background.SetImage(img)
	} else {
		d.background.SetImage(nil)
	}
	d.background.Refresh(d.screenWidth, d.screenHeight)

	d.background.StopFades()
	d.background.OnFadedIn = nil
	d.background.OnFadedOut = nil
	if scene.FadeIn > 0 {
		d.background.FadeIn(scene.FadeIn)
	} else {
		d.background.SetAlpha(ui.AlphaOpaque)
	}

	if len(scene.Lines) == 0 {
		// Visual-only scene: move on once the fade settles
		d.textBox.SetText("")
		if scene.FadeIn > 0 {
			d.background.OnFadedIn = func() { d.leaveScene() }
		} else {
			d.leaveScene()
		}
		return nil
	}

	d.showLine()
	return nil
}

// showLine puts the current line into the text box and queues the
// advance for the click that follows its reveal.
func (d *Director) showLine() {
	line := d.Scene().Lines[d.lineIndex]
	d.textBox.SetText(line.Display())
	d.textBox.QueueFinished(d.advanceLine)
}

// advanceLine moves to the next line, or out of the scene after the last.
func (d *Director) advanceLine() {
	d.lineIndex++
	if d.lineIndex < len(d.Scene().Lines) {
		d.showLine()
		return
	}
	d.leaveScene()
}

// leaveScene fades the background out when the scene asks for it, then
// enters the next scene.
func (d *Director) leaveScene() {
	scene := d.Scene()
	next := d.sceneIndex + 1

	// Empty text makes clicks no-ops during the transition
	d.textBox.SetText("")

	if scene != nil && scene.FadeOut > 0 {
		d.background.StopFades()
		d.background.OnFadedOut = func() {
			if err := d.enterScene(next); err != nil {
				log.Printf("[director] %v", err)
				d.finish()
			}
		}
		d.background.FadeOut(scene.FadeOut)
		return
	}

	if err := d.enterScene(next); err != nil {
		log.Printf("[director] %v", err)
		d.finish()
	}
}

// finish marks the playback complete.
func (d *Director) finish() {
	d.done = true
	d.textBox.SetText("")
}
