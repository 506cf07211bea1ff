// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"go-shmup/internal/logging"
)

// Library is the loaded content: enemy archetypes plus the wave list.
type Library struct {
	Archetypes map[string]Archetype
	Waves      [][]string
	Cyclic     bool
}

type fileFormat struct {
	Archetypes []Archetype `json:"archetypes"`
	Waves      [][]string  `json:"waves"`
	Cyclic     bool        `json:"cyclic"`
}

// Load reads the archetype/wave data file and validates it.
func Load(path string) (*Library, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read enemy definitions file: %w", err)
	}
	lib, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logging.Logger.Info("loaded enemy definitions", "archetypes", len(lib.Archetypes), "waves", len(lib.Waves), "cyclic", lib.Cyclic)
	return lib, nil
}

// Parse decodes and validates data file contents.
func Parse(data []byte) (*Library, error) {
	var f fileFormat
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	lib := &Library{
		Archetypes: make(map[string]Archetype, len(f.Archetypes)),
		Waves:      f.Waves,
		Cyclic:     f.Cyclic,
	}
	for i, def := range f.Archetypes {
		if def.ID == "" {
			return nil, fmt.Errorf("archetype #%d has no id: %w", i, ErrInvalidArchetype)
		}
		if _, dup := lib.Archetypes[def.ID]; dup {
			return nil, fmt.Errorf("duplicate archetype %q: %w", def.ID, ErrInvalidArchetype)
		}
		if err := def.Validate(); err != nil {
			return nil, err
		}
		lib.Archetypes[def.ID] = def
	}

	if len(lib.Waves) == 0 {
		return nil, ErrNoWaves
	}
	for i, wave := range lib.Waves {
		for _, name := range wave {
			if _, ok := lib.Archetypes[name]; !ok {
				return nil, fmt.Errorf("wave %d references %q: %w", i+1, name, ErrUnknownArchetype)
			}
		}
	}
	return lib, nil
}

// Archetype looks up an archetype by name.
func (l *Library) Archetype(name string) (Archetype, error) {
	def, ok := l.Archetypes[name]
	if !ok {
		return Archetype{}, fmt.Errorf("%q: %w", name, ErrUnknownArchetype)
	}
	return def, nil
}

// SpriteKeys lists every sprite the archetypes refer to, sorted, so assets
// can be preloaded before the first wave.
func (l *Library) SpriteKeys() []string {
	seen := make(map[string]struct{})
	add := func(k string) {
		if k != "" {
			seen[k] = struct{}{}
		}
	}
	for _, a := range l.Archetypes {
		add(a.Image)
		add(a.Death)
		add(a.Bullet)
		for _, p := range a.Parts {
			add(p.Sprite)
			if p.Behavior.Type == BehaviorFireAt {
				add(p.Behavior.Bullet)
			}
		}
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Validate checks the fields that cannot be defaulted.
func (a Archetype) Validate() error {
	if !KnownPattern(a.Pattern) {
		return fmt.Errorf("archetype %q: pattern %q: %w", a.ID, a.Pattern, ErrUnknownPattern)
	}
	if a.Life <= 0 {
		return fmt.Errorf("archetype %q: life must be positive: %w", a.ID, ErrInvalidArchetype)
	}
	if a.FireSpeed < 0 || a.Speed < 0 {
		return fmt.Errorf("archetype %q: speeds must not be negative: %w", a.ID, ErrInvalidArchetype)
	}
	if a.Bounds.MinX > a.Bounds.MaxX || a.Bounds.MinY > a.Bounds.MaxY {
		return fmt.Errorf("archetype %q: empty patrol band: %w", a.ID, ErrInvalidArchetype)
	}
	for i, p := range a.Parts {
		if p.Sprite == "" {
			return fmt.Errorf("archetype %q part %d: no sprite: %w", a.ID, i, ErrInvalidArchetype)
		}
		switch p.Behavior.Type {
		case BehaviorNone:
		case BehaviorFireAt:
			if p.Behavior.Chance < 1 || p.Behavior.Speed <= 0 {
				return fmt.Errorf("archetype %q part %d: fire_at needs chance >= 1 and speed > 0: %w", a.ID, i, ErrInvalidArchetype)
			}
		default:
			return fmt.Errorf("archetype %q part %d: %q: %w", a.ID, i, p.Behavior.Type, ErrUnknownBehavior)
		}
	}
	return nil
}

// KnownPattern reports whether an AI is registered for the tag.
func KnownPattern(p Pattern) bool {
	switch p {
	case PatternSimple, PatternStalk:
		return true
	}
	return false
}
