// internal/input/input.go
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Snapshot is the set of held keys for one tick.
type Snapshot struct {
	Left, Right bool
	FireArc     bool // S
	FireUp      bool // Z
	FireLob     bool // A
	Cheat       bool // K: sink every simple enemy
}

// Source produces one snapshot per tick.
type Source interface {
	Poll() Snapshot
}

// Keyboard reads held keys from ebiten. Both AZERTY-style Q/D and the arrow
// keys steer the ship.
type Keyboard struct{}

func (Keyboard) Poll() Snapshot {
	return Snapshot{
		Left:    ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:   ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		FireArc: ebiten.IsKeyPressed(ebiten.KeyS),
		FireUp:  ebiten.IsKeyPressed(ebiten.KeyZ),
		FireLob: ebiten.IsKeyPressed(ebiten.KeyA),
		Cheat:   ebiten.IsKeyPressed(ebiten.KeyK),
	}
}

// Static replays a fixed snapshot; handy for demos and tests.
type Static Snapshot

func (s Static) Poll() Snapshot { return Snapshot(s) }
