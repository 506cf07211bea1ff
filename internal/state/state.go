// internal/state/state.go
package state

import (
	"fmt"

	"go-shmup/internal/logging"

	"github.com/hajimehoshi/ebiten/v2"
)

// State - интерфейс для всех состояний (меню, игра, пауза)
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine runs exactly one State at a time. States switch by calling
// SetState from their own Update; the new state takes effect immediately.
type StateMachine struct {
	current State
}

func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// Current returns the running state, nil before the first SetState.
func (sm *StateMachine) Current() State {
	return sm.current
}

// SetState exits the running state (if any) and enters newState.
// A nil newState leaves the machine idle.
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	logging.Logger.Debug("state change", "from", stateName(sm.current), "to", stateName(newState))
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}

func stateName(s State) string {
	if s == nil {
		return "none"
	}
	return fmt.Sprintf("%T", s)
}
