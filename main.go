package main

import (
	"flag"
	"io/fs"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/leonelquinteros/gotext"

	"pacpong/pkg/engine/assets"
	"pacpong/pkg/game/config"
	"pacpong/pkg/game/devtools"
	"pacpong/pkg/game/menu"
	"pacpong/pkg/game/renderer"
	ebitenrenderer "pacpong/pkg/game/renderer/ebiten"
	"pacpong/pkg/game/renderer/images"
	"pacpong/pkg/game/renderer/tui"
	"pacpong/pkg/game/scene"
	"pacpong/pkg/game/state"
)

const (
	logFilename   = "pacpong.log"
	controlsScene = "controls"
)

// host is a front-end that can also be asked to stop
type host interface {
	renderer.Host
	Quit()
}

func initGettext(localesDir, lang string) {
	gotext.Configure(localesDir, lang, "default")
}

// loadScene reads the scene file when one is given, else the named variant
func loadScene(variant, path string) (*config.Scene, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.Variant(variant)
}

func main() {
	variant := flag.String("variant", "maze", "embedded scene variant (classic or maze)")
	configPath := flag.String("config", "", "scene file (.yaml, .yml or .toml); overrides -variant")
	useTUI := flag.Bool("tui", false, "run in the terminal instead of a window")
	lang := flag.String("lang", "en_GB", "message catalogue language")
	localesDir := flag.String("locales", "locales", "directory holding the message catalogues")
	assetDir := flag.String("assets", "", "load textures from this directory instead of the embedded ones")
	seed := flag.Int64("seed", 0, "random seed (0 picks one from the clock)")
	flag.Parse()

	initGettext(*localesDir, *lang)
	renderer.InitColors()

	if *useTUI {
		// The terminal is the display; keep the log out of it
		f, err := os.OpenFile(logFilename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg, err := loadScene(*variant, *configPath)
	if err != nil {
		log.Fatalf("Failed to load scene: %v", err)
	}
	log.Printf("Scene %q loaded (%d textures)", cfg.Name, len(cfg.Textures))

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Printf("Random seed: %d", *seed)
	rng := rand.New(rand.NewSource(*seed))

	var textures fs.FS = images.FS
	if *assetDir != "" {
		textures = os.DirFS(*assetDir)
	}

	director := scene.NewDirector()
	session := state.NewSession()
	var current *scene.Game

	dumpMap := func() {
		if current == nil {
			log.Printf("Map dump skipped: %v", devtools.ErrNoScene)
			return
		}
		path, err := devtools.DumpMapToFile(devtools.FromGame(current))
		if err != nil {
			log.Printf("Map dump failed: %v", err)
			return
		}
		log.Printf("Map dumped to %s", path)
	}

	var graphics assets.Graphics
	var front host
	if *useTUI {
		lib := images.NewLibrary(textures, tui.Upload)
		graphics = lib
		front = tui.New(tui.Options{
			Driver:    director,
			Library:   lib,
			Width:     cfg.Canvas.Width,
			Height:    cfg.Canvas.Height,
			OnDumpMap: dumpMap,
		})
	} else {
		lib := images.NewLibrary(textures, ebitenrenderer.Upload)
		graphics = lib
		front = ebitenrenderer.New(ebitenrenderer.Options{
			Driver:    director,
			Library:   lib,
			Title:     "Pac-Pong",
			Width:     int(cfg.Canvas.Width),
			Height:    int(cfg.Canvas.Height),
			OnDumpMap: dumpMap,
		})
	}

	director.Register(scene.GameScene, func() scene.Scene {
		current = scene.NewGame(scene.Options{
			Config:     cfg,
			Graphics:   graphics,
			Rand:       rng,
			Transition: director,
			Session:    session,
		})
		return current
	})
	director.Register(scene.MenuScene, func() scene.Scene {
		current = nil
		return menu.NewMainMenu(&menu.MainMenuHandler{
			Session:       session,
			Transition:    director,
			GameScene:     scene.GameScene,
			ControlsScene: controlsScene,
			Quit:          front.Quit,
		})
	})
	director.Register(controlsScene, func() scene.Scene {
		current = nil
		return menu.NewBindingsMenu(&menu.BindingsMenuHandler{
			Transition: director,
			BackScene:  scene.MenuScene,
		})
	})

	if err := director.Start(scene.GameScene); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	if err := front.Run(); err != nil {
		log.Fatalf("Host stopped: %v", err)
	}
	log.Printf("Session over: %d rounds, best %d coins", session.Rounds, session.Best)
}
