// internal/system/render.go
package system

import (
	"image/color"

	"go-shmup/internal/config"
	"go-shmup/internal/entity"
	"go-shmup/internal/visual"
	"go-shmup/pkg/vec"
)

// Renderer is the drawing surface the simulation talks to.
type Renderer interface {
	// DrawSprite blits a frame with its top-left corner at pos.
	DrawSprite(frame visual.Frame, pos vec.Vec)
	DrawFilledRect(c color.Color, r vec.Rect)
}

// RenderSystem рисует сущности в порядке создания.
type RenderSystem struct {
	ecs *entity.ECS
}

func NewRenderSystem(ecs *entity.ECS) *RenderSystem {
	return &RenderSystem{ecs: ecs}
}

// Draw renders every live entity. Effects whose animation has run out are
// removed here, since exhaustion is only observed when asking for a frame.
func (s *RenderSystem) Draw(r Renderer) {
	for _, id := range s.ecs.Snapshot() {
		tr, ok := s.ecs.Transforms[id]
		rend, hasRend := s.ecs.Renderables[id]
		if !ok || !hasRend {
			continue
		}

		frame, ok := rend.Anim.NextFrame(tr.Flipped)
		if !ok {
			if _, isEffect := s.ecs.Effects[id]; isEffect {
				s.ecs.Remove(id)
			}
			continue
		}
		size := rend.Anim.Size()
		r.DrawSprite(frame, tr.Pos.Sub(size.Scale(0.5)))

		u, isUnit := s.ecs.Units[id]
		if !isUnit {
			continue
		}
		for _, p := range u.Parts {
			if !u.PartActive(p) || p.Visual == nil {
				continue
			}
			pf, ok := p.Visual.NextFrame(tr.Flipped)
			if !ok {
				continue
			}
			center := tr.Pos.Add(p.RelPos.MirrorIf(tr.Flipped))
			r.DrawSprite(pf, center.Sub(p.Visual.Size().Scale(0.5)))
		}

		// health bar under the hull
		top := tr.Pos.Y + size.Y/2 + config.HealthBarGap
		left := tr.Pos.X - size.X/2
		back := vec.Rect{Min: vec.New(left, top), Max: vec.New(left+size.X, top+config.HealthBarHeight)}
		r.DrawFilledRect(config.HealthBackColor, back)
		if u.MaxHealth > 0 && u.Health() > 0 {
			fill := size.X * float64(u.Health()) / float64(u.MaxHealth)
			r.DrawFilledRect(config.HealthFillColor, vec.Rect{Min: back.Min, Max: vec.New(left+fill, back.Max.Y)})
		}
	}
}
