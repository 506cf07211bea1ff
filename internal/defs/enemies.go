// internal/defs/enemies.go
package defs

import (
	"encoding/json"
)

const (
	DefaultImage       = "sprite_enemy_sphereprobe"
	DefaultDeath       = "sprite_explosion_medium"
	DefaultBullet      = "sprite_enemy_shot_pulse"
	DefaultLife        = 100
	DefaultSpeed       = 2.0
	DefaultFireSpeed   = 60.0
	DefaultBulletSpeed = 6.0
	DefaultStrength    = 10
)

// Bounds is the patrol band of an enemy.
type Bounds struct {
	MinX float64 `json:"min_x"`
	MaxX float64 `json:"max_x"`
	MinY float64 `json:"min_y"`
	MaxY float64 `json:"max_y"`
}

// Sounds overrides the sound ids a unit plays.
type Sounds struct {
	Fire   string `json:"fire"`
	Dead   string `json:"dead"`
	Damage string `json:"damage"`
}

// BehaviorDef describes what an armor part does every tick while it is active.
type BehaviorDef struct {
	Type          BehaviorType `json:"type"`
	Bullet        string       `json:"bullet"`
	Strength      int          `json:"strength"`
	Offset        Point        `json:"offset"`
	Speed         float64      `json:"speed"`
	Gravity       float64      `json:"gravity"`
	Slot          int          `json:"slot"`
	CooldownScale float64      `json:"cooldown_scale"`
	Chance        int          `json:"chance"`
}

func defaultBehavior() BehaviorDef {
	return BehaviorDef{
		Type:          BehaviorNone,
		Bullet:        DefaultBullet,
		Strength:      DefaultStrength,
		Speed:         DefaultBulletSpeed,
		Slot:          1,
		CooldownScale: 1,
		Chance:        1,
	}
}

func (b *BehaviorDef) UnmarshalJSON(data []byte) error {
	type plain BehaviorDef
	out := plain(defaultBehavior())
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	*b = BehaviorDef(out)
	return nil
}

// PartDef is an armor part attached to an enemy (turret, hull plate, ...).
type PartDef struct {
	Sprite    string      `json:"sprite"`
	Pos       Point       `json:"pos"`
	MinHealth int         `json:"min_health"`
	Behavior  BehaviorDef `json:"behavior"`
}

func (p *PartDef) UnmarshalJSON(data []byte) error {
	type plain PartDef
	out := plain{Behavior: defaultBehavior()}
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	*p = PartDef(out)
	return nil
}

// Archetype holds all the static data for a named kind of enemy.
type Archetype struct {
	ID          string    `json:"id"`
	Image       string    `json:"image"`
	Death       string    `json:"death"`
	Life        int       `json:"life"`
	Speed       float64   `json:"speed"`
	VSpeed      float64   `json:"vspeed"`
	FireSpeed   float64   `json:"firespeed"`
	Bullet      string    `json:"bullet"`
	BulletSpeed float64   `json:"bullet_speed"`
	Strength    int       `json:"strength"`
	Exp         int       `json:"exp"`
	Pattern     Pattern   `json:"pattern"`
	Spawn       Point     `json:"spawn"`
	Bounds      Bounds    `json:"bounds"`
	Sounds      Sounds    `json:"sounds"`
	Parts       []PartDef `json:"parts"`
}

// DefaultArchetype returns an archetype with every optional field filled in.
func DefaultArchetype() Archetype {
	return Archetype{
		Image:       DefaultImage,
		Death:       DefaultDeath,
		Life:        DefaultLife,
		Speed:       DefaultSpeed,
		FireSpeed:   DefaultFireSpeed,
		Bullet:      DefaultBullet,
		BulletSpeed: DefaultBulletSpeed,
		Strength:    DefaultStrength,
		Pattern:     PatternSimple,
		Spawn:       Point{320, 200},
		Bounds:      Bounds{MinX: 100, MaxX: 1180, MinY: 80, MaxY: 400},
		Sounds:      Sounds{Fire: "fire1", Dead: "dead", Damage: "damage"},
	}
}

func (a *Archetype) UnmarshalJSON(data []byte) error {
	type plain Archetype
	out := plain(DefaultArchetype())
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	// A partial "sounds" object must not blank out the other ids.
	def := DefaultArchetype().Sounds
	if out.Sounds.Fire == "" {
		out.Sounds.Fire = def.Fire
	}
	if out.Sounds.Dead == "" {
		out.Sounds.Dead = def.Dead
	}
	if out.Sounds.Damage == "" {
		out.Sounds.Damage = def.Damage
	}
	*a = Archetype(out)
	return nil
}
