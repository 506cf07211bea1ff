package component

import (
	"go-shmup/internal/defs"
	"go-shmup/internal/visual"
	"go-shmup/pkg/vec"
)

// AIKind selects the per-tick AI policy of a unit.
type AIKind string

const (
	AINone   AIKind = ""
	AIPlayer AIKind = "player"
	AISimple AIKind = AIKind(defs.PatternSimple)
	AIStalk  AIKind = AIKind(defs.PatternStalk)
)

// Behavior is the closed set of things an armor part can do each tick.
type Behavior struct {
	Kind defs.BehaviorType
	Fire FireAt // used when Kind == defs.BehaviorFireAt
}

// FireAt shoots at the unit's current target on its own cooldown slot.
type FireAt struct {
	Bullet        string
	Strength      int
	Offset        vec.Vec // relative to the part position
	Speed         float64
	Gravity       float64
	Slot          int
	CooldownScale float64
	Chance        int
}

// Part - броня/турель, прикреплённая к юниту.
type Part struct {
	RelPos    vec.Vec // offset from the unit center, mirrored on flip
	Visual    visual.Animation
	MinHealth int // part is inactive once unit health drops to this value
	Behavior  Behavior
}

// SoundSet maps unit events to sound ids.
type SoundSet struct {
	Fire   string
	Dead   string
	Damage string
}

// Unit - общее состояние кораблей: здоровье, броня, кулдауны.
type Unit struct {
	MaxHealth    int
	Damage       int
	Parts        []Part
	Cooldowns    map[int]float64 // slot -> remaining ticks
	BaseCooldown float64
	Sounds       SoundSet
	Death        visual.Animation
	AI           AIKind
	Archetype    string // empty for the player
	Exp          int    // bounty for the player on kill
}

// Health may go negative until the death check runs.
func (u *Unit) Health() int {
	return u.MaxHealth - u.Damage
}

// PartActive reports whether the part still renders and acts.
func (u *Unit) PartActive(p Part) bool {
	return u.Health() > p.MinHealth
}

func (u *Unit) ActivePartCount() int {
	n := 0
	for _, p := range u.Parts {
		if u.PartActive(p) {
			n++
		}
	}
	return n
}

// AllPartsActive is the fire suppression rule of simple enemies.
func (u *Unit) AllPartsActive() bool {
	return u.ActivePartCount() == len(u.Parts)
}

// ResetCooldowns makes every weapon slot ready to fire.
func (u *Unit) ResetCooldowns() {
	for slot := range u.Cooldowns {
		u.Cooldowns[slot] = 0
	}
}
