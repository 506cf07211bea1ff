// internal/system/spawn.go
package system

import (
	"fmt"

	"go-shmup/internal/component"
	"go-shmup/internal/config"
	"go-shmup/internal/defs"
	"go-shmup/internal/entity"
	"go-shmup/internal/types"
	"go-shmup/internal/visual"
	"go-shmup/pkg/vec"
)

// enemyBuilder creates the AI state of an archetype's movement pattern.
type enemyBuilder func(def defs.Archetype) (*component.Enemy, component.AIKind)

var enemyBuilders = map[defs.Pattern]enemyBuilder{
	defs.PatternSimple: func(def defs.Archetype) (*component.Enemy, component.AIKind) {
		en := newEnemy(def)
		en.HSpeed = def.Speed
		en.VSpeed = def.VSpeed
		return en, component.AISimple
	},
	defs.PatternStalk: func(def defs.Archetype) (*component.Enemy, component.AIKind) {
		return newEnemy(def), component.AIStalk
	},
}

func newEnemy(def defs.Archetype) *component.Enemy {
	return &component.Enemy{
		DefID:       def.ID,
		Speed:       def.Speed,
		Bounds:      def.Bounds,
		Bullet:      def.Bullet,
		BulletSpeed: def.BulletSpeed,
		Strength:    def.Strength,
	}
}

// Spawner builds units from static player data or enemy archetypes. All
// sprites are resolved before the entity exists, so a missing asset never
// leaves a half-built unit in the world.
type Spawner struct {
	ecs     *entity.ECS
	sprites visual.Library
}

func NewSpawner(ecs *entity.ECS, sprites visual.Library) *Spawner {
	return &Spawner{ecs: ecs, sprites: sprites}
}

// SpawnEnemy places one enemy of the given archetype at pos.
func (s *Spawner) SpawnEnemy(def defs.Archetype, pos vec.Vec) (types.EntityID, error) {
	build, ok := enemyBuilders[def.Pattern]
	if !ok {
		return 0, fmt.Errorf("archetype %q: %q: %w", def.ID, def.Pattern, defs.ErrUnknownPattern)
	}
	main, err := s.sprites.Animation(def.Image, true)
	if err != nil {
		return 0, fmt.Errorf("archetype %q: %w", def.ID, err)
	}
	death, err := s.sprites.Animation(def.Death, false)
	if err != nil {
		return 0, fmt.Errorf("archetype %q: %w", def.ID, err)
	}
	parts := make([]component.Part, 0, len(def.Parts))
	for _, pd := range def.Parts {
		p, err := s.buildPart(pd)
		if err != nil {
			return 0, fmt.Errorf("archetype %q: %w", def.ID, err)
		}
		parts = append(parts, p)
	}

	en, kind := build(def)
	id := s.ecs.NewEntity()
	s.ecs.Transforms[id] = &component.Transform{Pos: pos}
	s.ecs.Renderables[id] = &component.Renderable{Anim: main}
	s.ecs.Enemies[id] = en
	s.ecs.Units[id] = &component.Unit{
		MaxHealth:    def.Life,
		Parts:        parts,
		Cooldowns:    make(map[int]float64),
		BaseCooldown: def.FireSpeed,
		Sounds:       component.SoundSet{Fire: def.Sounds.Fire, Dead: def.Sounds.Dead, Damage: def.Sounds.Damage},
		Death:        death,
		AI:           kind,
		Archetype:    def.ID,
		Exp:          def.Exp,
	}
	return id, nil
}

func (s *Spawner) buildPart(pd defs.PartDef) (component.Part, error) {
	anim, err := s.sprites.Animation(pd.Sprite, true)
	if err != nil {
		return component.Part{}, err
	}
	p := component.Part{
		RelPos:    pd.Pos.Vec(),
		Visual:    anim,
		MinHealth: pd.MinHealth,
		Behavior:  component.Behavior{Kind: pd.Behavior.Type},
	}
	if pd.Behavior.Type == defs.BehaviorFireAt {
		b := pd.Behavior
		p.Behavior.Fire = component.FireAt{
			Bullet:        b.Bullet,
			Strength:      b.Strength,
			Offset:        b.Offset.Vec(),
			Speed:         b.Speed,
			Gravity:       b.Gravity,
			Slot:          b.Slot,
			CooldownScale: b.CooldownScale,
			Chance:        b.Chance,
		}
	}
	return p, nil
}

// SpawnPlayer creates the player's boat at the start position. Parts that
// come online with later levels are prepared here as well.
func (s *Spawner) SpawnPlayer() (types.EntityID, error) {
	main, err := s.sprites.Animation(config.PlayerSprite, true)
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	death, err := s.sprites.Animation(config.PlayerDeathSprite, false)
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	front, err := s.buildPart(defs.PartDef{
		Sprite:   config.PlayerFrontTurret,
		Pos:      defs.Point{65, -10},
		Behavior: defs.BehaviorDef{Type: defs.BehaviorNone},
	})
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	rear, err := s.buildPart(defs.PartDef{
		Sprite: config.PlayerRearTurret,
		Pos:    defs.Point{-60, -10},
		Behavior: defs.BehaviorDef{
			Type:          defs.BehaviorFireAt,
			Bullet:        config.PlayerTurretBullet,
			Strength:      10,
			Offset:        defs.Point{0, -10},
			Speed:         8,
			Slot:          config.RearTurretSlot,
			CooldownScale: 1.5,
			Chance:        1,
		},
	})
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}

	id := s.ecs.NewEntity()
	s.ecs.Transforms[id] = &component.Transform{Pos: vec.New(config.PlayerStartX, config.PlayerStartY)}
	s.ecs.Renderables[id] = &component.Renderable{Anim: main}
	s.ecs.Units[id] = &component.Unit{
		MaxHealth:    config.PlayerMaxHealth,
		Parts:        []component.Part{front},
		Cooldowns:    make(map[int]float64),
		BaseCooldown: config.PlayerCooldown,
		Sounds:       component.SoundSet{Fire: config.SoundFire, Dead: config.SoundDead, Damage: config.SoundDamage},
		Death:        death,
		AI:           component.AIPlayer,
	}
	s.ecs.PlayerState[id] = &component.PlayerStateComponent{
		Level: 1,
		Speed: config.PlayerSpeed,
		Unlocks: map[int][]component.Part{
			config.RearTurretLevel: {rear},
		},
	}
	return id, nil
}
