// internal/system/unit.go
package system

import (
	"go-shmup/internal/audio"
	"go-shmup/internal/component"
	"go-shmup/internal/config"
	"go-shmup/internal/defs"
	"go-shmup/internal/entity"
	"go-shmup/internal/event"
	"go-shmup/internal/input"
	"go-shmup/internal/logging"
	"go-shmup/internal/types"
	"go-shmup/internal/utils"
	"go-shmup/internal/visual"
	"go-shmup/pkg/vec"
)

// LaunchSpec describes one shot. Zero values mean: mirror the velocity when
// the shooter is flipped, cooldown scale 1, always fire, slot 0.
type LaunchSpec struct {
	Sprite        string
	Power         int
	RelPos        vec.Vec // attach point relative to the shooter, mirrored on flip
	Velocity      vec.Vec
	Gravity       float64
	NoMirror      bool
	CooldownScale float64
	Chance        int // fire with probability 1/Chance
	Slot          int
}

// UnitSystem управляет кораблями: кулдауны, поведение брони, ИИ, выстрелы, смерть.
type UnitSystem struct {
	ecs             *entity.ECS
	audio           audio.Service
	sprites         visual.Library
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
	input           input.Snapshot
}

func NewUnitSystem(ecs *entity.ECS, sprites visual.Library, sound audio.Service, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *UnitSystem {
	if sound == nil {
		sound = audio.Nop{}
	}
	return &UnitSystem{
		ecs:             ecs,
		audio:           sound,
		sprites:         sprites,
		rng:             rng,
		eventDispatcher: eventDispatcher,
	}
}

// SetInput stores the key snapshot the player AI reads this tick.
func (s *UnitSystem) SetInput(in input.Snapshot) {
	s.input = in
}

// Step advances one unit: cooldown decay, part behaviors, then AI.
func (s *UnitSystem) Step(id types.EntityID) {
	u, ok := s.ecs.Units[id]
	if !ok || !s.ecs.Alive(id) {
		return
	}

	for slot := range u.Cooldowns {
		u.Cooldowns[slot] -= s.ecs.TimeScale
	}

	for _, p := range u.Parts {
		if !s.ecs.Alive(id) {
			return
		}
		if u.PartActive(p) {
			s.runBehavior(id, p)
		}
	}

	if ai, ok := aiRegistry[u.AI]; ok && s.ecs.Alive(id) {
		ai(s, id, u)
	}
}

// runBehavior interprets a part behavior.
func (s *UnitSystem) runBehavior(id types.EntityID, p component.Part) {
	switch p.Behavior.Kind {
	case defs.BehaviorFireAt:
		f := p.Behavior.Fire
		target, ok := s.Target(id)
		if !ok {
			return
		}
		s.LaunchAt(id, LaunchSpec{
			Sprite:        f.Bullet,
			Power:         f.Strength,
			RelPos:        p.RelPos.Add(f.Offset),
			Gravity:       f.Gravity,
			CooldownScale: f.CooldownScale,
			Chance:        f.Chance,
			Slot:          f.Slot,
		}, target, f.Speed)
	}
}

// Launch fires a projectile if the slot is off cooldown. Reports whether a
// projectile was spawned.
func (s *UnitSystem) Launch(id types.EntityID, spec LaunchSpec) bool {
	u, ok := s.ecs.Units[id]
	tr, hasTr := s.ecs.Transforms[id]
	if !ok || !hasTr {
		return false
	}
	if !s.rng.OneIn(spec.Chance) {
		return false
	}
	if u.Cooldowns[spec.Slot] > 0 {
		return false
	}

	anim, err := s.sprites.Animation(spec.Sprite, true)
	if err != nil {
		logging.Logger.Error("cannot launch projectile", "sprite", spec.Sprite, "err", err)
		return false
	}

	s.audio.PlaySound(u.Sounds.Fire)

	vel := spec.Velocity
	if !spec.NoMirror {
		vel = vel.MirrorIf(tr.Flipped)
	}
	pid := s.ecs.NewEntity()
	s.ecs.Transforms[pid] = &component.Transform{Pos: tr.Pos.Add(spec.RelPos.MirrorIf(tr.Flipped))}
	s.ecs.Velocities[pid] = &component.Velocity{V: vel}
	s.ecs.Renderables[pid] = &component.Renderable{Anim: anim}
	s.ecs.Projectiles[pid] = &component.Projectile{
		Power:   spec.Power,
		Gravity: spec.Gravity,
		Owner:   id,
	}

	scale := spec.CooldownScale
	if scale == 0 {
		scale = 1
	}
	u.Cooldowns[spec.Slot] = u.BaseCooldown * scale

	s.eventDispatcher.Dispatch(event.Event{Type: event.ProjectileFired, Data: id})
	return true
}

// LaunchAt aims a shot from the attach point at target with the given speed.
// The direction is already absolute, so the velocity is not mirrored.
func (s *UnitSystem) LaunchAt(id types.EntityID, spec LaunchSpec, target vec.Vec, speed float64) bool {
	tr, ok := s.ecs.Transforms[id]
	if !ok {
		return false
	}
	origin := tr.Pos.Add(spec.RelPos.MirrorIf(tr.Flipped))
	dir, err := target.Sub(origin).Unit()
	if err != nil {
		// target sits exactly on the muzzle: nothing sensible to aim at
		return false
	}
	spec.Velocity = dir.Scale(speed)
	spec.NoMirror = true
	return s.Launch(id, spec)
}

// BBox is the hittable area of a unit: the main sprite box grown to enclose
// every active part.
func (s *UnitSystem) BBox(id types.EntityID) (vec.Rect, bool) {
	tr, ok := s.ecs.Transforms[id]
	rend, hasRend := s.ecs.Renderables[id]
	if !ok || !hasRend {
		return vec.Rect{}, false
	}
	box := vec.RectCentered(tr.Pos, rend.Anim.Size())
	if u, isUnit := s.ecs.Units[id]; isUnit {
		for _, p := range u.Parts {
			if !u.PartActive(p) || p.Visual == nil {
				continue
			}
			center := tr.Pos.Add(p.RelPos.MirrorIf(tr.Flipped))
			box = box.Union(vec.RectCentered(center, p.Visual.Size()))
		}
	}
	return box, true
}

// UnitAt returns the first live unit, in creation order, whose box contains p.
func (s *UnitSystem) UnitAt(p vec.Vec) (types.EntityID, bool) {
	for _, id := range s.ecs.Snapshot() {
		if _, isUnit := s.ecs.Units[id]; !isUnit {
			continue
		}
		if box, ok := s.BBox(id); ok && box.Contains(p) {
			return id, true
		}
	}
	return 0, false
}

// CheckDead removes a unit whose health dropped to zero or below and leaves
// its death animation behind. Calling it again for a removed unit does nothing.
func (s *UnitSystem) CheckDead(id types.EntityID) bool {
	u, ok := s.ecs.Units[id]
	if !ok || !s.ecs.Alive(id) || u.Health() > 0 {
		return false
	}
	pos := s.ecs.Transforms[id].Pos
	_, isPlayer := s.ecs.PlayerState[id]

	s.audio.PlaySound(u.Sounds.Dead)
	s.ecs.Remove(id)
	if u.Death != nil {
		s.SpawnEffect(pos, u.Death)
	}

	s.eventDispatcher.Dispatch(event.Event{Type: event.UnitKilled, Data: event.UnitKilledData{
		ID:        id,
		Archetype: u.Archetype,
		Exp:       u.Exp,
		IsPlayer:  isPlayer,
	}})
	return true
}

// SpawnEffect places a one-shot animation in the world.
func (s *UnitSystem) SpawnEffect(pos vec.Vec, anim visual.Animation) types.EntityID {
	id := s.ecs.NewEntity()
	s.ecs.Transforms[id] = &component.Transform{Pos: pos}
	s.ecs.Renderables[id] = &component.Renderable{Anim: anim}
	s.ecs.Effects[id] = &component.Effect{}
	return id
}

// KillAll sinks every live unit driven by the given AI.
func (s *UnitSystem) KillAll(kind component.AIKind) int {
	killed := 0
	for _, id := range s.ecs.Snapshot() {
		u, ok := s.ecs.Units[id]
		if !ok || u.AI != kind {
			continue
		}
		if h := u.Health(); h > 0 {
			u.Damage += h
		}
		if s.CheckDead(id) {
			killed++
		}
	}
	return killed
}

// Target is where a unit aims: enemies aim at the player, the player aims at
// the nearest enemy.
func (s *UnitSystem) Target(id types.EntityID) (vec.Vec, bool) {
	tr, ok := s.ecs.Transforms[id]
	if !ok {
		return vec.Zero, false
	}
	if _, isPlayer := s.ecs.PlayerState[id]; !isPlayer {
		pid, ok := s.ecs.Player()
		if !ok {
			return vec.Zero, false
		}
		return s.ecs.Transforms[pid].Pos, true
	}

	best, found := vec.Zero, false
	bestDist := 0.0
	for _, other := range s.ecs.Snapshot() {
		if other == id {
			continue
		}
		if _, isUnit := s.ecs.Units[other]; !isUnit {
			continue
		}
		p := s.ecs.Transforms[other].Pos
		if d := p.Sub(tr.Pos).Norm(); !found || d < bestDist {
			best, bestDist, found = p, d, true
		}
	}
	return best, found
}

// onScreen reports whether a position lies inside the visible play field.
func onScreen(p vec.Vec) bool {
	return p.X >= 0 && p.X <= config.ScreenWidth && p.Y >= 0 && p.Y <= config.ScreenHeight
}
