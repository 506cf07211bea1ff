package assets

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go-shmup/internal/visual"
	"go-shmup/pkg/vec"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, path string, w, h int, c color.Color) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func newTestBank(t *testing.T, key string, frames int) *Bank {
	t.Helper()
	dir := t.TempDir()
	for i := 0; i < frames; i++ {
		writePNG(t, filepath.Join(dir, "Battlers", fmt.Sprintf("%s_%d.png", key, i)), 30, 12, color.RGBA{uint8(i * 40), 0, 0, 255})
	}
	return NewBank(dir)
}

func TestBank_LoadsSequentialFrames(t *testing.T) {
	b := newTestBank(t, "probe", 3)

	frames, err := b.Frames("probe")
	require.NoError(t, err)
	assert.Len(t, frames, 3)

	again, err := b.Frames("probe")
	require.NoError(t, err)
	assert.Same(t, &frames[0], &again[0], "second call is served from cache")
}

func TestBank_AnimationUsesFrameSize(t *testing.T) {
	b := newTestBank(t, "probe", 2)
	now := time.Unix(0, 0)
	b.Now = func() time.Time { return now }

	anim, err := b.Animation("probe", false)
	require.NoError(t, err)
	assert.Equal(t, vec.New(30, 12), anim.Size())

	f, ok := anim.NextFrame(true)
	require.True(t, ok)
	assert.Equal(t, visual.Frame{Key: "probe", Index: 0, Mirrored: true}, f)

	now = now.Add(time.Second)
	_, ok = anim.NextFrame(false)
	assert.False(t, ok)

	img, ok := b.Image(visual.Frame{Key: "probe", Index: 1})
	require.True(t, ok)
	r, _, _, _ := img.At(0, 0).RGBA()
	assert.Equal(t, uint32(40*0x101), r)

	_, ok = b.Image(visual.Frame{Key: "probe", Index: 5})
	assert.False(t, ok)
}

func TestBank_MissingSprite(t *testing.T) {
	b := newTestBank(t, "probe", 1)

	_, err := b.Animation("kraken", true)
	assert.ErrorIs(t, err, ErrMissingFrames)

	err = b.Preload([]string{"probe", "kraken", "leviathan"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingFrames)
	assert.Contains(t, err.Error(), "leviathan")
}

func TestUpscale(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.Set(0, 0, color.RGBA{255, 0, 0, 255})
	src.Set(1, 0, color.RGBA{0, 0, 255, 255})

	dst := Upscale(src, 2)
	assert.Equal(t, image.Rect(0, 0, 4, 2), dst.Bounds())
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, dst.At(1, 1))
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, dst.At(2, 0))

	assert.Same(t, src, Upscale(src, 1))
}

func TestLoadBackground(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Cave.png")
	writePNG(t, path, 4, 3, color.RGBA{1, 2, 3, 255})

	img, err := LoadBackground(path, 2)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 8, 6), img.Bounds())

	_, err = LoadBackground(filepath.Join(t.TempDir(), "none.png"), 2)
	assert.Error(t, err)
}
