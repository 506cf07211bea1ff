// internal/state/menu_state.go
package state

import (
	"fmt"

	"go-shmup/internal/config"
	"go-shmup/internal/logging"
	"go-shmup/internal/ui"
	"go-shmup/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuState - титульный экран; после поражения показывает достигнутую волну.
type MenuState struct {
	sm       *StateMachine
	res      *Resources
	lastWave int // 0 до первой игры
	err      error
}

func NewMenuState(sm *StateMachine, res *Resources, lastWave int) *MenuState {
	return &MenuState{sm: sm, res: res, lastWave: lastWave}
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update(deltaTime float64) {
	if !inpututil.IsKeyJustPressed(ebiten.KeySpace) && !inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return
	}
	gs, err := NewGameState(m.sm, m.res)
	if err != nil {
		logging.Logger.Error("cannot start game", "err", err)
		m.err = err
		return
	}
	m.sm.SetState(gs)
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(render.DarkenColor(config.BackgroundColor))

	cx := float64(config.ScreenWidth) / 2
	ui.DrawText(screen, "SHMUP", cx, 180, 6, config.TextLightColor)
	if m.lastWave > 0 {
		ui.DrawText(screen, fmt.Sprintf("sunk in wave %d", m.lastWave), cx, 300, 2, config.BossWaveColor)
	}
	ui.DrawText(screen, "press SPACE to sail", cx, 380, 2, config.TextLightColor)
	ui.DrawText(screen, "Q/D move   S arc   Z up   A lob   P pause   F speed", cx, 460, 1, config.TextLightColor)
	if m.err != nil {
		ui.DrawText(screen, m.err.Error(), cx, 520, 1, config.BossWaveColor)
	}
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
