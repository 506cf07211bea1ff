// internal/assets/bank.go
package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "golang.org/x/image/webp"

	"go-shmup/internal/logging"
	"go-shmup/internal/visual"
	"go-shmup/pkg/vec"
)

// ErrMissingFrames is returned for a sprite key with no frame files at all.
var ErrMissingFrames = errors.New("no frames for sprite")

// Bank загружает и кэширует кадры спрайтов.
// Кадры лежат в <dir>/Battlers/<key>_<i>.png, нумерация с нуля без пропусков.
type Bank struct {
	dir    string
	mu     sync.Mutex
	frames map[string][]image.Image

	// Now is the clock handed to every animation. Nil means time.Now.
	Now func() time.Time
}

// NewBank создает банк спрайтов для каталога с графикой.
func NewBank(dir string) *Bank {
	return &Bank{
		dir:    dir,
		frames: make(map[string][]image.Image),
	}
}

var frameExts = []string{".png", ".webp"}

func (b *Bank) framePath(key string, i int) (string, bool) {
	for _, ext := range frameExts {
		p := filepath.Join(b.dir, "Battlers", fmt.Sprintf("%s_%d%s", key, i, ext))
		if _, err := os.Stat(p); err == nil {
			return p, true
		}
	}
	return "", false
}

// Frames returns every frame of the sprite, loading it on first use.
func (b *Bank) Frames(key string) ([]image.Image, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if frames, ok := b.frames[key]; ok {
		return frames, nil
	}

	var frames []image.Image
	for i := 0; ; i++ {
		path, ok := b.framePath(key, i)
		if !ok {
			break
		}
		img, err := loadImage(path)
		if err != nil {
			return nil, fmt.Errorf("sprite %q frame %d: %w", key, i, err)
		}
		frames = append(frames, img)
	}
	if len(frames) == 0 {
		return nil, fmt.Errorf("%w: %q in %s", ErrMissingFrames, key, b.dir)
	}

	b.frames[key] = frames
	logging.Logger.Debug("sprite loaded", "key", key, "frames", len(frames))
	return frames, nil
}

// Animation implements visual.Library. Every call returns a fresh cycle, so
// two units sharing a sprite animate independently.
func (b *Bank) Animation(key string, repeat bool) (visual.Animation, error) {
	frames, err := b.Frames(key)
	if err != nil {
		return nil, err
	}
	bounds := frames[0].Bounds()
	size := vec.New(float64(bounds.Dx()), float64(bounds.Dy()))
	return visual.NewCycle(key, len(frames), size, repeat, b.Now), nil
}

// Preload loads all keys up front and reports every missing one.
func (b *Bank) Preload(keys []string) error {
	var errs []error
	for _, key := range keys {
		if _, err := b.Frames(key); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Image resolves a frame to its pixels. Mirroring is left to the renderer.
func (b *Bank) Image(f visual.Frame) (image.Image, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	frames, ok := b.frames[f.Key]
	if !ok || f.Index < 0 || f.Index >= len(frames) {
		return nil, false
	}
	return frames[f.Index], true
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	return img, err
}
