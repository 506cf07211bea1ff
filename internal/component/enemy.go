package component

import "go-shmup/internal/defs"

// Enemy представляет вражескую сущность.
type Enemy struct {
	DefID       string
	HSpeed      float64 // signed, current patrol direction
	VSpeed      float64
	Speed       float64
	Bounds      defs.Bounds
	Bullet      string
	BulletSpeed float64
	Strength    int
}
