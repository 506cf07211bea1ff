package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings are the runtime knobs read from game.yaml. Every field is optional.
type Settings struct {
	DataFile    string            `yaml:"data_file"`
	GraphicsDir string            `yaml:"graphics_dir"`
	Background  string            `yaml:"background"`
	Sounds      map[string]string `yaml:"sounds"`
	Volume      float64           `yaml:"volume"`
	Mute        bool              `yaml:"mute"`
	Seed        int64             `yaml:"seed"`
	LogLevel    string            `yaml:"log_level"`
	MetricsAddr string            `yaml:"metrics_addr"`
	Debug       bool              `yaml:"debug"`
}

// DefaultSettings returns the settings used when no file is present.
func DefaultSettings() Settings {
	return Settings{
		DataFile:    "assets/data/enemies.json",
		GraphicsDir: "graphics",
		Background:  "Cave.png",
		Sounds: map[string]string{
			SoundDead:   "sounds/big_bomb.wav",
			SoundFire:   "sounds/laser_blasts.wav",
			SoundFire2:  "sounds/shotgun_blast.wav",
			SoundDamage: "sounds/single_shot.wav",
			SoundSplash: "sounds/splash.wav",
		},
		LogLevel: "info",
	}
}

// LoadSettings reads a YAML settings file on top of the defaults.
// An empty path falls back to $SHMUP_CONFIG; a missing file yields the defaults.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if path == "" {
		path = os.Getenv("SHMUP_CONFIG")
	}
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("failed to read settings file: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	// Sound overrides are merged key by key, not replaced wholesale.
	defaults := DefaultSettings().Sounds
	for id, file := range defaults {
		if _, ok := s.Sounds[id]; !ok {
			if s.Sounds == nil {
				s.Sounds = make(map[string]string)
			}
			s.Sounds[id] = file
		}
	}
	return s, nil
}
