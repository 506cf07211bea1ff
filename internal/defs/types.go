// internal/defs/types.go
package defs

import (
	"encoding/json"
	"errors"
	"fmt"

	"go-shmup/pkg/vec"
)

var (
	ErrUnknownArchetype = errors.New("unknown archetype")
	ErrUnknownPattern   = errors.New("unknown movement pattern")
	ErrUnknownBehavior  = errors.New("unknown part behavior")
	ErrInvalidArchetype = errors.New("invalid archetype")
	ErrNoWaves          = errors.New("wave list is empty")
)

// Pattern selects the AI policy of an enemy archetype.
type Pattern string

const (
	PatternSimple Pattern = "simple"
	PatternStalk  Pattern = "stalk"
)

// BehaviorType tags a part behavior variant.
type BehaviorType string

const (
	BehaviorNone   BehaviorType = "none"
	BehaviorFireAt BehaviorType = "fire_at"
)

// Point is a 2D coordinate written as [x, y] in data files.
type Point [2]float64

func (p Point) Vec() vec.Vec {
	return vec.New(p[0], p[1])
}

// UnmarshalJSON accepts both [x, y] and {"x":..,"y":..}.
func (p *Point) UnmarshalJSON(data []byte) error {
	var arr [2]float64
	if err := json.Unmarshal(data, &arr); err == nil {
		*p = arr
		return nil
	}
	var obj struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("point must be [x, y] or {x, y}: %w", err)
	}
	*p = Point{obj.X, obj.Y}
	return nil
}
