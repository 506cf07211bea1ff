// pkg/render/screen_renderer.go
package render

import (
	"image"
	"image/color"

	"go-shmup/internal/logging"
	"go-shmup/internal/visual"
	"go-shmup/pkg/vec"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// FrameSource resolves an animation frame to its pixels.
type FrameSource interface {
	Image(f visual.Frame) (image.Image, bool)
}

type frameKey struct {
	key   string
	index int
}

// ScreenRenderer рисует мир на экран ebiten.
type ScreenRenderer struct {
	frames     FrameSource
	colors     SceneColors
	waterTop   float32
	waterH     float32
	screenW    float32
	background *ebiten.Image // may be nil
	cache      map[frameKey]*ebiten.Image
	missing    map[frameKey]bool
	target     *ebiten.Image
}

func NewScreenRenderer(frames FrameSource, background image.Image, colors SceneColors, screenWidth, waterTop, waterHeight int) *ScreenRenderer {
	r := &ScreenRenderer{
		frames:   frames,
		colors:   colors,
		waterTop: float32(waterTop),
		waterH:   float32(waterHeight),
		screenW:  float32(screenWidth),
		cache:    make(map[frameKey]*ebiten.Image),
		missing:  make(map[frameKey]bool),
	}
	if background != nil {
		r.background = ebiten.NewImageFromImage(background)
	}
	return r
}

// Begin starts a frame: backdrop first, then the water band the boats sit on.
func (r *ScreenRenderer) Begin(screen *ebiten.Image) {
	r.target = screen
	screen.Fill(r.colors.Background)
	if r.background != nil {
		screen.DrawImage(r.background, nil)
	}
	vector.DrawFilledRect(screen, 0, r.waterTop, r.screenW, r.waterH, r.colors.Water, false)
}

// DrawSprite blits a frame with its top-left corner at pos.
func (r *ScreenRenderer) DrawSprite(frame visual.Frame, pos vec.Vec) {
	if r.target == nil {
		return
	}
	img := r.image(frame)
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	if frame.Mirrored {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(float64(img.Bounds().Dx()), 0)
	}
	op.GeoM.Translate(pos.X, pos.Y)
	r.target.DrawImage(img, op)
}

func (r *ScreenRenderer) DrawFilledRect(c color.Color, rect vec.Rect) {
	if r.target == nil {
		return
	}
	size := rect.Size()
	vector.DrawFilledRect(r.target, float32(rect.Min.X), float32(rect.Min.Y), float32(size.X), float32(size.Y), c, false)
}

// image returns the GPU copy of a frame, uploading it on first use.
func (r *ScreenRenderer) image(frame visual.Frame) *ebiten.Image {
	k := frameKey{frame.Key, frame.Index}
	if img, ok := r.cache[k]; ok {
		return img
	}
	if r.missing[k] {
		return nil
	}
	src, ok := r.frames.Image(frame)
	if !ok {
		r.missing[k] = true
		logging.Logger.Warn("frame not loaded", "key", frame.Key, "index", frame.Index)
		return nil
	}
	img := ebiten.NewImageFromImage(src)
	r.cache[k] = img
	return img
}
