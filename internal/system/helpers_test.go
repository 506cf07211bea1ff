package system

import (
	"fmt"
	"image/color"
	"testing"
	"time"

	"go-shmup/internal/component"
	"go-shmup/internal/defs"
	"go-shmup/internal/entity"
	"go-shmup/internal/event"
	"go-shmup/internal/types"
	"go-shmup/internal/utils"
	"go-shmup/internal/visual"
	"go-shmup/pkg/vec"
)

// fakeSprites hands out animations of a fixed size and frame count. The clock
// only moves when a test moves it.
type fakeSprites struct {
	sizes   map[string]vec.Vec
	frames  int
	now     time.Time
	missing map[string]bool
}

func newFakeSprites() *fakeSprites {
	return &fakeSprites{
		sizes:   map[string]vec.Vec{},
		frames:  2,
		now:     time.Unix(0, 0),
		missing: map[string]bool{},
	}
}

func (f *fakeSprites) clock() time.Time { return f.now }

func (f *fakeSprites) Animation(key string, repeat bool) (visual.Animation, error) {
	if f.missing[key] {
		return nil, fmt.Errorf("sprite %q: no frames", key)
	}
	size, ok := f.sizes[key]
	if !ok {
		size = vec.New(40, 40)
	}
	return visual.NewCycle(key, f.frames, size, repeat, f.clock), nil
}

type recordingAudio struct{ played []string }

func (r *recordingAudio) PlaySound(id string) { r.played = append(r.played, id) }

func (r *recordingAudio) count(id string) int {
	n := 0
	for _, p := range r.played {
		if p == id {
			n++
		}
	}
	return n
}

type eventLog struct{ events []event.Event }

func (l *eventLog) OnEvent(e event.Event) { l.events = append(l.events, e) }

func (l *eventLog) count(t event.EventType) int {
	n := 0
	for _, e := range l.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

type recordingRenderer struct {
	sprites   []visual.Frame
	positions []vec.Vec
	rects     []vec.Rect
}

func (r *recordingRenderer) DrawSprite(frame visual.Frame, pos vec.Vec) {
	r.sprites = append(r.sprites, frame)
	r.positions = append(r.positions, pos)
}

func (r *recordingRenderer) DrawFilledRect(c color.Color, rect vec.Rect) {
	r.rects = append(r.rects, rect)
}

type world struct {
	ecs         *entity.ECS
	sprites     *fakeSprites
	audio       *recordingAudio
	events      *event.Dispatcher
	log         *eventLog
	units       *UnitSystem
	projectiles *ProjectileSystem
	players     *PlayerSystem
	spawner     *Spawner
}

func newWorld(t *testing.T) *world {
	t.Helper()
	w := &world{
		ecs:     entity.NewECS(),
		sprites: newFakeSprites(),
		audio:   &recordingAudio{},
		events:  event.NewDispatcher(),
		log:     &eventLog{},
	}
	w.events.SubscribeAll(w.log, event.UnitKilled, event.UnitDamaged, event.ProjectileFired,
		event.WaveStarted, event.WavesExhausted, event.PlayerLevelUp, event.PlayerKilled)
	w.units = NewUnitSystem(w.ecs, w.sprites, w.audio, utils.NewPRNGService(1), w.events)
	w.projectiles = NewProjectileSystem(w.ecs, w.units, w.audio, w.events)
	w.players = NewPlayerSystem(w.ecs, w.events)
	w.spawner = NewSpawner(w.ecs, w.sprites)
	return w
}

// tick runs one simulation step over every live entity, like the game loop.
func (w *world) tick() {
	w.ecs.Tick++
	for _, id := range w.ecs.Snapshot() {
		if _, ok := w.ecs.Units[id]; ok {
			w.units.Step(id)
		} else if _, ok := w.ecs.Projectiles[id]; ok {
			w.projectiles.Step(id)
		}
	}
}

// addUnit places a bare unit (no AI) with a 40x40 hull.
func (w *world) addUnit(pos vec.Vec, life int) types.EntityID {
	anim, _ := w.sprites.Animation("hull", true)
	death, _ := w.sprites.Animation("boom", false)
	id := w.ecs.NewEntity()
	w.ecs.Transforms[id] = &component.Transform{Pos: pos}
	w.ecs.Renderables[id] = &component.Renderable{Anim: anim}
	w.ecs.Units[id] = &component.Unit{
		MaxHealth:    life,
		Cooldowns:    map[int]float64{},
		BaseCooldown: 60,
		Sounds:       component.SoundSet{Fire: "fire1", Dead: "dead", Damage: "damage"},
		Death:        death,
	}
	return id
}

func (w *world) addProjectile(pos, vel vec.Vec, power int) types.EntityID {
	anim, _ := w.sprites.Animation("shot", true)
	id := w.ecs.NewEntity()
	w.ecs.Transforms[id] = &component.Transform{Pos: pos}
	w.ecs.Velocities[id] = &component.Velocity{V: vel}
	w.ecs.Renderables[id] = &component.Renderable{Anim: anim}
	w.ecs.Projectiles[id] = &component.Projectile{Power: power}
	return id
}

func (w *world) projectileIDs() []types.EntityID {
	var out []types.EntityID
	for _, id := range w.ecs.Snapshot() {
		if _, ok := w.ecs.Projectiles[id]; ok {
			out = append(out, id)
		}
	}
	return out
}

func (w *world) effectCount() int {
	return len(w.ecs.Effects)
}

func testArchetype(id string) defs.Archetype {
	a := defs.DefaultArchetype()
	a.ID = id
	return a
}
