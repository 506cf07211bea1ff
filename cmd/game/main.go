// cmd/game/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"time"

	"go-shmup/internal/assets"
	"go-shmup/internal/audio"
	"go-shmup/internal/config"
	"go-shmup/internal/defs"
	"go-shmup/internal/input"
	"go-shmup/internal/logging"
	"go-shmup/internal/metrics"
	"go-shmup/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

const startFromGame = true // true - начинать с игры, false - с меню

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configPath := flag.String("config", "", "path to game.yaml (default $SHMUP_CONFIG)")
	seed := flag.Int64("seed", 0, "random seed, 0 = from settings or clock")
	debug := flag.Bool("debug", false, "show debug overlay and log at debug level")
	flag.Parse()

	settings, err := config.LoadSettings(*configPath)
	if err != nil {
		logging.Logger.Error("cannot read settings", "err", err)
		os.Exit(1)
	}
	if *debug {
		settings.Debug = true
		settings.LogLevel = "debug"
	}
	if *seed != 0 {
		settings.Seed = *seed
	}
	log := logging.Setup(os.Stderr, settings.LogLevel)

	library, err := defs.Load(settings.DataFile)
	if err != nil {
		log.Error("cannot load enemy data", "file", settings.DataFile, "err", err)
		os.Exit(1)
	}

	bank := assets.NewBank(settings.GraphicsDir)
	keys := append(library.SpriteKeys(),
		config.PlayerSprite, config.PlayerDeathSprite, config.PlayerFrontTurret,
		config.PlayerRearTurret, config.PlayerShotSprite, config.PlayerTurretBullet)
	if err := bank.Preload(keys); err != nil {
		log.Error("missing sprites", "dir", settings.GraphicsDir, "err", err)
		os.Exit(1)
	}

	background, err := assets.LoadBackground(filepath.Join(settings.GraphicsDir, settings.Background), 2)
	if err != nil {
		log.Warn("no background, using plain color", "err", err)
		background = nil
	}

	mixer := audio.NewMixer(settings.Volume, settings.Mute)
	if err := mixer.Initialize(); err != nil {
		log.Warn("audio disabled", "err", err)
	} else {
		defer mixer.Close()
	}
	mixer.LoadAll(settings.Sounds)

	var exporter *metrics.Exporter
	if settings.MetricsAddr != "" {
		exporter = metrics.NewExporter()
		exporter.Serve(settings.MetricsAddr)
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = exporter.Close(ctx)
		}()
	}

	res := &state.Resources{
		Library:    library,
		Sprites:    bank,
		Audio:      mixer,
		Metrics:    exporter,
		Background: background,
		Input:      input.Keyboard{},
		Seed:       settings.Seed,
		Debug:      settings.Debug,
	}

	sm := state.NewStateMachine()
	if startFromGame {
		gs, err := state.NewGameState(sm, res)
		if err != nil {
			log.Error("cannot start game", "err", err)
			os.Exit(1)
		}
		sm.SetState(gs)
	} else {
		sm.SetState(state.NewMenuState(sm, res, 0))
	}

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Shmup")
	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error("game loop failed", "err", err)
		os.Exit(1)
	}
}
