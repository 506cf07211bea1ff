// internal/state/game_state.go
package state

import (
	"fmt"
	"time"

	game "go-shmup/internal/app"
	"go-shmup/internal/config"
	"go-shmup/internal/input"
	"go-shmup/internal/ui"
	"go-shmup/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	buttonY      = 30
	buttonSize   = 12
	pauseButtonX = config.ScreenWidth - 40
	speedButtonX = config.ScreenWidth - 90
)

// GameState - состояние игры
type GameState struct {
	sm       *StateMachine
	res      *Resources
	game     *game.Game
	renderer *render.ScreenRenderer

	speedButton     *ui.SpeedButton
	pauseButton     *ui.PauseButton
	waveIndicator   *ui.WaveIndicator
	levelIndicator  *ui.PlayerLevelIndicator
	healthIndicator *ui.PlayerHealthIndicator

	lastClickTime time.Time
}

func NewGameState(sm *StateMachine, res *Resources) (*GameState, error) {
	gameLogic, err := game.NewGame(game.Options{
		Library: res.Library,
		Sprites: res.Sprites,
		Audio:   res.Audio,
		Metrics: res.Metrics,
		Seed:    res.Seed,
	})
	if err != nil {
		return nil, err
	}
	if res.Input == nil {
		res.Input = input.Keyboard{}
	}

	colors := render.SceneColors{Background: config.BackgroundColor, Water: config.WaterColor}
	renderer := render.NewScreenRenderer(res.Sprites, res.Background, colors, config.ScreenWidth, config.WaterLine, config.WaterHeight)

	return &GameState{
		sm:              sm,
		res:             res,
		game:            gameLogic,
		renderer:        renderer,
		speedButton:     ui.NewSpeedButton(speedButtonX, buttonY, buttonSize, config.SpeedButtonColors),
		pauseButton:     ui.NewPauseButton(pauseButtonX, buttonY, buttonSize, config.SpeedButtonColors[0], config.SpeedButtonColors[2]),
		waveIndicator:   ui.NewWaveIndicator(config.ScreenWidth/2, 16, 3, config.TextLightColor, config.BossWaveColor),
		levelIndicator:  ui.NewPlayerLevelIndicator(20, 20, config.MaxDisplayLevels, config.ExpFillColor),
		healthIndicator: ui.NewPlayerHealthIndicator(20, 80),
	}, nil
}

func (g *GameState) Enter() {
	g.pauseButton.SetPaused(false)
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.pause()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.game.HandleSpeedClick()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && g.clickReady() {
		x, y := ebiten.CursorPosition()
		switch {
		case g.speedButton.IsClicked(x, y):
			g.game.HandleSpeedClick()
			g.lastClickTime = time.Now()
		case g.pauseButton.IsClicked(x, y):
			g.lastClickTime = time.Now()
			g.pause()
			return
		}
	}

	if g.game.IsGameOver() && inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.sm.SetState(NewMenuState(g.sm, g.res, g.game.Wave()))
		return
	}

	g.game.Update(deltaTime, g.res.Input.Poll())
	g.speedButton.SetState(g.game.SpeedIndex())
}

func (g *GameState) clickReady() bool {
	return time.Since(g.lastClickTime) >= time.Duration(config.ClickCooldown)*time.Millisecond
}

func (g *GameState) pause() {
	g.pauseButton.SetPaused(true)
	g.sm.SetState(NewPauseState(g.sm, g))
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Begin(screen)
	g.game.Draw(g.renderer)
	g.DrawUI(screen)
}

// DrawUI рисует HUD поверх мира.
func (g *GameState) DrawUI(screen *ebiten.Image) {
	status := g.game.PlayerStatus()
	g.levelIndicator.Draw(screen, status.Level, status.Exp, config.PlayerExpPerStep)
	g.healthIndicator.Draw(screen, status.Health, config.PlayerMaxHealth)
	g.waveIndicator.Draw(screen, g.game.Wave())
	g.speedButton.Draw(screen)
	g.pauseButton.Draw(screen)

	switch {
	case g.game.IsGameOver():
		ui.DrawText(screen, "GAME OVER", config.ScreenWidth/2, config.ScreenHeight/2-40, 4, config.BossWaveColor)
		ui.DrawText(screen, "press SPACE", config.ScreenWidth/2, config.ScreenHeight/2+20, 2, config.TextLightColor)
	case g.game.IsCleared():
		ui.DrawText(screen, "ALL WAVES CLEARED", config.ScreenWidth/2, config.ScreenHeight/2-40, 4, config.TextLightColor)
	}

	if g.res.Debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f  entities %d  tick %d", ebiten.ActualTPS(), g.game.ECS.Len(), g.game.ECS.Tick), 10, config.ScreenHeight-20)
	}
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}
