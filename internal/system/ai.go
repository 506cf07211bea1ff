// internal/system/ai.go
package system

import (
	"go-shmup/internal/component"
	"go-shmup/internal/config"
	"go-shmup/internal/types"
	"go-shmup/internal/utils"
	"go-shmup/pkg/vec"
)

type aiFunc func(s *UnitSystem, id types.EntityID, u *component.Unit)

var aiRegistry = map[component.AIKind]aiFunc{
	component.AIPlayer: playerAI,
	component.AISimple: simpleAI,
	component.AIStalk:  stalkAI,
}

// Player weapon patterns.
var (
	playerMuzzle = vec.New(40, -20)
	arcShot      = LaunchSpec{Sprite: config.PlayerShotSprite, Power: 20, RelPos: playerMuzzle, Velocity: vec.New(12, -12), Gravity: 0.2}
	upShot       = LaunchSpec{Sprite: config.PlayerShotSprite, Power: 20, RelPos: playerMuzzle, Velocity: vec.New(0, -12), Gravity: 0.2}
	lobShot      = LaunchSpec{Sprite: config.PlayerShotSprite, Power: 30, RelPos: playerMuzzle, Velocity: vec.New(6, -9), Gravity: 0.15, CooldownScale: 1.5}
)

var enemyMuzzle = vec.New(0, 20)

func playerAI(s *UnitSystem, id types.EntityID, u *component.Unit) {
	tr := s.ecs.Transforms[id]
	ps := s.ecs.PlayerState[id]
	in := s.input

	step := ps.Speed * s.ecs.TimeScale
	if in.Left {
		tr.Pos = tr.Pos.Sub(vec.New(step, 0))
		tr.Flipped = true
	} else if in.Right {
		tr.Pos = tr.Pos.Add(vec.New(step, 0))
		tr.Flipped = false
	}
	half := 0.0
	if rend, ok := s.ecs.Renderables[id]; ok {
		half = rend.Anim.Size().X / 2
	}
	tr.Pos = vec.New(utils.Clamp(tr.Pos.X, half, config.ScreenWidth-half), tr.Pos.Y)

	if in.Cheat {
		s.KillAll(component.AISimple)
	}

	switch {
	case in.FireArc:
		s.Launch(id, arcShot)
	case in.FireUp:
		s.Launch(id, upShot)
	case in.FireLob && ps.Level >= config.LobShotLevel:
		s.Launch(id, lobShot)
	}
}

// simpleAI patrols the archetype band and shoots at the player while the
// hull is intact and the enemy is on screen.
func simpleAI(s *UnitSystem, id types.EntityID, u *component.Unit) {
	tr := s.ecs.Transforms[id]
	en := s.ecs.Enemies[id]
	ts := s.ecs.TimeScale

	tr.Pos = tr.Pos.Add(vec.New(en.HSpeed*ts, en.VSpeed*ts))
	if tr.Pos.X < en.Bounds.MinX {
		en.HSpeed = en.Speed
	} else if tr.Pos.X > en.Bounds.MaxX {
		en.HSpeed = -en.Speed
	}
	if en.VSpeed != 0 {
		if tr.Pos.Y < en.Bounds.MinY && en.VSpeed < 0 {
			en.VSpeed = -en.VSpeed
		} else if tr.Pos.Y > en.Bounds.MaxY && en.VSpeed > 0 {
			en.VSpeed = -en.VSpeed
		}
	}
	if en.HSpeed != 0 {
		tr.Flipped = en.HSpeed < 0
	}

	if u.AllPartsActive() && onScreen(tr.Pos) {
		enemyFire(s, id, en)
	}
}

// stalkAI follows the player's x instead of patrolling. It keeps firing no
// matter how damaged its parts are.
func stalkAI(s *UnitSystem, id types.EntityID, u *component.Unit) {
	tr := s.ecs.Transforms[id]
	en := s.ecs.Enemies[id]

	if target, ok := s.Target(id); ok {
		dx := target.X - tr.Pos.X
		tr.Pos = vec.New(utils.Approach(tr.Pos.X, target.X, en.Speed*s.ecs.TimeScale), tr.Pos.Y)
		en.HSpeed = utils.Sign(dx) * en.Speed
		if dx != 0 {
			tr.Flipped = dx < 0
		}
	}

	if onScreen(tr.Pos) {
		enemyFire(s, id, en)
	}
}

func enemyFire(s *UnitSystem, id types.EntityID, en *component.Enemy) {
	target, ok := s.Target(id)
	if !ok {
		return
	}
	s.LaunchAt(id, LaunchSpec{
		Sprite: en.Bullet,
		Power:  en.Strength,
		RelPos: enemyMuzzle,
	}, target, en.BulletSpeed)
}
