// internal/visual/visual.go
package visual

import (
	"time"

	"go-shmup/internal/config"
	"go-shmup/pkg/vec"
)

// Frame identifies one image of a sprite sequence. The renderer resolves it to
// pixels; the simulation never touches image data.
type Frame struct {
	Key      string
	Index    int
	Mirrored bool
}

// Animation is a time-advancing, optionally mirrored frame sequence.
type Animation interface {
	// NextFrame returns the frame to show now. ok is false once a
	// non-looping sequence is exhausted.
	NextFrame(mirrored bool) (frame Frame, ok bool)
	// Size is the pixel size of the sprite (all frames share it).
	Size() vec.Vec
}

// Library resolves sprite keys to fresh animations.
type Library interface {
	Animation(key string, repeat bool) (Animation, error)
}

// Cycle plays a fixed number of frames at AnimationFPS of wall-clock time.
// The clock starts on the first NextFrame call.
type Cycle struct {
	key      string
	frames   int
	size     vec.Vec
	repeat   bool
	frameDur time.Duration
	now      func() time.Time
	start    time.Time
	started  bool
}

// NewCycle creates a cycle over frames images of the given size.
// now may be nil, in which case time.Now is used.
func NewCycle(key string, frames int, size vec.Vec, repeat bool, now func() time.Time) *Cycle {
	if now == nil {
		now = time.Now
	}
	return &Cycle{
		key:      key,
		frames:   frames,
		size:     size,
		repeat:   repeat,
		frameDur: time.Duration(float64(time.Second) / config.AnimationFPS),
		now:      now,
	}
}

func (c *Cycle) NextFrame(mirrored bool) (Frame, bool) {
	if c.frames <= 0 {
		return Frame{}, false
	}
	t := c.now()
	if !c.started {
		c.start = t
		c.started = true
	}
	idx := int(t.Sub(c.start) / c.frameDur)
	if c.repeat {
		idx %= c.frames
	} else if idx >= c.frames {
		return Frame{}, false
	}
	return Frame{Key: c.key, Index: idx, Mirrored: mirrored}, true
}

func (c *Cycle) Size() vec.Vec {
	return c.size
}

// Restart rewinds the cycle to its first frame.
func (c *Cycle) Restart() {
	c.started = false
}
