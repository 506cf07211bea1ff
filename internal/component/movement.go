// internal/component/movement.go
package component

import "go-shmup/pkg/vec"

// Transform - позиция и направление сущности.
type Transform struct {
	Pos     vec.Vec
	Flipped bool // facing left; mirrors sprites, offsets and launch velocities
}

// Velocity - скорость в пикселях за номинальный тик.
type Velocity struct {
	V vec.Vec
}
