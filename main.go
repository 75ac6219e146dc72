package main

import (
	"flag"
	"log"

	"github.com/quasilyte/gdata/v2"

	"github.com/inkforge/fable/audio"
	"github.com/inkforge/fable/config"
	"github.com/inkforge/fable/director"
	"github.com/inkforge/fable/font"
	"github.com/inkforge/fable/render"
	ebitenrender "github.com/inkforge/fable/render/ebiten"
	"github.com/inkforge/fable/script"
	"github.com/inkforge/fable/settings"
	"github.com/inkforge/fable/ui"
)

// Game runs the director inside the engine frame loop.
type Game struct {
	director *director.Director
	inputMgr render.InputManager

	screenWidth  int
	screenHeight int
}

// Update polls input and forwards advance clicks to the director.
func (g *Game) Update() error {
	if g.inputMgr.IsMouseButtonJustPressed(render.MouseButtonLeft) ||
		g.inputMgr.IsKeyJustPressed(render.KeySpace) ||
		g.inputMgr.IsKeyJustPressed(render.KeyEnter) {
		g.director.Click()
	}
	return nil
}

// Draw renders the current frame.
func (g *Game) Draw(screen render.Image) {
	g.director.Render(screen)
}

// Layout tracks window resizes and re-lays-out the widgets.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.screenWidth || outsideHeight != g.screenHeight {
		g.screenWidth = outsideWidth
		g.screenHeight = outsideHeight
		g.director.Refresh(outsideWidth, outsideHeight)
	}
	return g.screenWidth, g.screenHeight
}

// blipFilter silences the per-glyph blip when the player turned it off.
type blipFilter struct {
	*audio.SoundManager
	blip bool
}

func (f *blipFilter) PlayBlip() {
	if f.blip {
		f.SoundManager.PlayBlip()
	}
}

func main() {
	configPath := flag.String("config", "data/config.yaml", "Engine configuration file")
	scriptPath := flag.String("script", "", "Script file (overrides the configured one)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("Failed to load config: %v (using defaults)", err)
		cfg = config.Default()
	}
	if *scriptPath != "" {
		cfg.Script = *scriptPath
	}

	store, err := gdata.Open(gdata.Config{AppName: "fable"})
	if err != nil {
		log.Printf("Failed to open settings store: %v (settings will not persist)", err)
		store = nil
	}
	prefs := settings.NewManager(store)

	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	loader := ebitenrender.NewResourceLoader()
	engine := ebitenrender.NewEngine()

	fonts := font.NewRegistry(loader)
	for _, f := range cfg.Fonts {
		if err := fonts.Register(f.Name, f.Path); err != nil {
			log.Fatalf("Failed to register font: %v", err)
		}
	}
	dialogueFont, err := fonts.Face(cfg.TextBox.FontName, cfg.TextBox.FontSize)
	if err != nil {
		log.Fatalf("Failed to resolve dialogue font: %v", err)
	}

	log.Printf("Loading script: %s", cfg.Script)
	scr, err := script.Load(cfg.Script)
	if err != nil {
		log.Fatalf("Failed to load script: %v", err)
	}
	log.Printf("Loaded script: %s (%d scenes)", scr.Title, len(scr.Scenes))

	sounds := audio.NewSoundManager()
	var cues director.Cues
	if cfg.Audio.Enabled && prefs.Get().SoundEnabled {
		if err := sounds.Initialize(); err != nil {
			log.Printf("Failed to initialize audio: %v (cues disabled)", err)
		} else {
			sounds.SetVolume(cfg.Audio.Volume * prefs.Get().SoundVolume)
			cues = &blipFilter{SoundManager: sounds, blip: prefs.Get().TextBlip}
		}
	}

	layout := ui.TimedTextLayout{
		Padding:      cfg.TextBox.Padding,
		MarginX:      cfg.TextBox.MarginX,
		MarginBottom: cfg.TextBox.MarginBottom,
		HeightFrac:   cfg.TextBox.HeightFrac,
	}
	textBox := ui.NewTimedText(renderer, dialogueFont, layout)
	background := ui.NewSprite(nil)

	d := director.New(scr, textBox, background, loader, cues)
	if err := d.Start(cfg.Window.Width, cfg.Window.Height); err != nil {
		log.Fatalf("Failed to start playback: %v", err)
	}

	game := &Game{
		director:     d,
		inputMgr:     inputMgr,
		screenWidth:  cfg.Window.Width,
		screenHeight: cfg.Window.Height,
	}

	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title + " - " + scr.Title)
	engine.SetWindowResizable(cfg.Window.Resizable)

	log.Printf("Starting playback...")
	if err := engine.RunGame(game); err != nil {
		log.Fatal(err)
	}
	sounds.Cleanup()
}
