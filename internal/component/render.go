// internal/component/render.go
package component

import "go-shmup/internal/visual"

// Renderable - основная анимация сущности.
type Renderable struct {
	Anim visual.Animation
}
