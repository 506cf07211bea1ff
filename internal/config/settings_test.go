package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoadSettings_MissingFileGivesDefaults(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestLoadSettings_OverridesAndMergesSounds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	content := `
data_file: custom/enemies.json
seed: 42
metrics_addr: ":2112"
sounds:
  splash: sounds/custom_splash.wav
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "custom/enemies.json", s.DataFile)
	assert.Equal(t, int64(42), s.Seed)
	assert.Equal(t, ":2112", s.MetricsAddr)
	assert.Equal(t, "sounds/custom_splash.wav", s.Sounds[SoundSplash])
	assert.Equal(t, DefaultSettings().Sounds[SoundDead], s.Sounds[SoundDead])
	assert.Equal(t, "graphics", s.GraphicsDir)
}

func TestLoadSettings_BrokenYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: [unclosed"), 0o644))

	_, err := LoadSettings(path)
	assert.Error(t, err)
}

var knownSounds = []string{SoundFire, SoundFire2, SoundDead, SoundDamage, SoundSplash}

func TestDefaultSettings_CoverEverySound(t *testing.T) {
	sounds := DefaultSettings().Sounds
	for _, id := range knownSounds {
		assert.NotEmpty(t, sounds[id], id)
	}
}

func TestLoadSettings_ShippedFileCoversEverySound(t *testing.T) {
	data, err := os.ReadFile("../../game.yaml")
	require.NoError(t, err)
	var raw Settings
	require.NoError(t, yaml.Unmarshal(data, &raw))
	for _, id := range knownSounds {
		assert.NotEmpty(t, raw.Sounds[id], "game.yaml: %s", id)
	}
}
