// internal/system/projectile.go
package system

import (
	"go-shmup/internal/audio"
	"go-shmup/internal/component"
	"go-shmup/internal/config"
	"go-shmup/internal/entity"
	"go-shmup/internal/event"
	"go-shmup/internal/types"
	"go-shmup/pkg/vec"
)

// ProjectileSystem управляет полётом снарядов и нанесением урона.
type ProjectileSystem struct {
	ecs             *entity.ECS
	units           *UnitSystem
	audio           audio.Service
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(ecs *entity.ECS, units *UnitSystem, sound audio.Service, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	if sound == nil {
		sound = audio.Nop{}
	}
	return &ProjectileSystem{
		ecs:             ecs,
		units:           units,
		audio:           sound,
		eventDispatcher: eventDispatcher,
	}
}

// Step moves one projectile, resolves its collision and drops it when it
// leaves the play field.
func (s *ProjectileSystem) Step(id types.EntityID) {
	proj, ok := s.ecs.Projectiles[id]
	if !ok || !s.ecs.Alive(id) {
		return
	}
	tr := s.ecs.Transforms[id]
	vel := s.ecs.Velocities[id]
	ts := s.ecs.TimeScale

	tr.Pos = tr.Pos.Add(vel.V.Scale(ts))
	vel.V = vel.V.Add(vec.New(0, proj.Gravity*ts))

	s.checkCollide(id, proj, tr.Pos)
	if !s.ecs.Alive(id) {
		return
	}

	switch {
	case tr.Pos.Y > config.ProjectileMaxY || tr.Pos.Y < config.ProjectileMinY:
		s.ecs.Remove(id)
		s.audio.PlaySound(config.SoundSplash)
	case tr.Pos.X < -config.ProjectileMarginX || tr.Pos.X > config.ScreenWidth+config.ProjectileMarginX:
		s.ecs.Remove(id)
	}
}

// checkCollide is point-vs-box. An unarmed projectile only arms itself once
// it overlaps no unit, so it cannot hit the ship that fired it.
func (s *ProjectileSystem) checkCollide(id types.EntityID, proj *component.Projectile, pos vec.Vec) {
	hit, found := s.units.UnitAt(pos)
	if !proj.Armed {
		proj.Armed = !found
		return
	}
	if !found {
		return
	}

	u := s.ecs.Units[hit]
	u.Damage += proj.Power
	s.eventDispatcher.Dispatch(event.Event{Type: event.UnitDamaged, Data: event.UnitDamagedData{ID: hit, Power: proj.Power}})
	if !s.units.CheckDead(hit) {
		s.audio.PlaySound(u.Sounds.Damage)
	}
	s.ecs.Remove(id)
}
