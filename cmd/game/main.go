package main

import (
	"flag"
	"io/fs"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/younwookim/tilerpg/internal/application/event"
	"github.com/younwookim/tilerpg/internal/application/game"
	"github.com/younwookim/tilerpg/internal/application/replay"
	"github.com/younwookim/tilerpg/internal/application/scene/playing"
	"github.com/younwookim/tilerpg/internal/application/session"
	"github.com/younwookim/tilerpg/internal/infrastructure/assets"
	"github.com/younwookim/tilerpg/internal/infrastructure/config"
	"github.com/younwookim/tilerpg/internal/infrastructure/logger"
	"github.com/younwookim/tilerpg/internal/infrastructure/render"
)

func main() {
	// Parse command line flags
	assetsFlag := flag.String("assets", "", "Load content from a directory instead of the embedded configs")
	mapFlag := flag.String("map", "", "Start on this map instead of settings.initMap")
	debugFlag := flag.Bool("debug", false, "Start with the debug overlay on")
	scriptFlag := flag.String("script", "", "Replay input from file (e.g., -script replay.json)")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	watchFlag := flag.Bool("watch", false, "Reload maps when they change on disk (requires -assets)")
	flag.Parse()

	log := logger.FromEnv()

	loader, err := newLoader(*assetsFlag)
	if err != nil {
		log.WithError(err).Fatal("failed to open configs")
	}

	settings, err := loader.LoadSettings()
	if err != nil {
		log.WithError(err).Fatal("failed to load settings")
	}
	if *mapFlag != "" {
		settings.InitMap = *mapFlag
	}
	if *debugFlag {
		settings.Debug = true
	}

	store, err := assets.Load(loader, render.TextureDecoder{}, log)
	if err != nil {
		log.WithError(err).Fatal("failed to load assets")
	}
	if err := store.Validate(settings.Player.Archetype); err != nil {
		log.WithError(err).Fatal("content failed validation")
	}

	opts := playing.Options{
		Log:    log,
		Source: loader,
		Sink:   store,
	}

	if *scriptFlag != "" {
		script, err := replay.LoadScript(*scriptFlag)
		if err != nil {
			log.WithError(err).Fatal("failed to load replay script")
		}
		if script.Map != "" {
			settings.InitMap = script.Map
		}
		opts.Replayer = replay.NewReplayer(*script)
		log.WithFields(logrus.Fields{"script": *scriptFlag, "frames": opts.Replayer.TotalFrames()}).Info("replaying")
	} else if *recordFlag != "" {
		opts.Recorder = replay.NewRecorder(settings.InitMap)
		opts.RecordPath = *recordFlag
	}

	if *watchFlag {
		if *assetsFlag == "" {
			log.Warn("-watch needs -assets, hot reload disabled")
		} else if watcher, err := assets.NewWatcher(loader.MapDir()); err != nil {
			log.WithError(err).Warn("failed to watch maps, hot reload disabled")
		} else {
			defer func() { _ = watcher.Close() }()
			go func() {
				for err := range watcher.Errors {
					log.WithError(err).Error("map watcher")
				}
			}()
			opts.Reloads = watcher.Events
		}
	}

	sess, err := session.New(session.Env{
		Assets:   store,
		Settings: settings,
		Bus:      event.NewBus(),
		Log:      log,
		FPS:      ebiten.ActualFPS,
	})
	if err != nil {
		log.WithError(err).Fatal("failed to start session")
	}
	opts.Session = sess
	opts.InitMap = settings.InitMap

	display := settings.Display
	g := game.New(playing.New(opts), display.ScreenWidth, display.ScreenHeight,
		game.WithFramerate(display.Framerate),
		game.WithLogger(log),
	)

	// Set up ebiten
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	title := display.Title
	if title == "" {
		title = "Tile RPG"
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(display.Framerate)

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		log.WithError(err).Error("game stopped")
		os.Exit(1)
	}
}

// newLoader reads from dir when given, the embedded configs otherwise
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, "configs"), nil
}
