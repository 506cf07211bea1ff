package audio

import (
	"fmt"
	"os"
	"sync"
	"time"

	"go-shmup/internal/logging"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

const sampleRate = beep.SampleRate(44100)

var format = beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}

// Mixer keeps every sound effect decoded in memory and mixes overlapping
// plays into a single speaker stream.
type Mixer struct {
	mu          sync.Mutex
	buffers     map[string]*beep.Buffer
	mixer       *beep.Mixer
	volume      float64 // in powers of two, 0 is unchanged
	muted       bool
	initialized bool
}

// NewMixer creates a mixer; call Initialize to open the speaker.
func NewMixer(volume float64, muted bool) *Mixer {
	return &Mixer{
		buffers: make(map[string]*beep.Buffer),
		mixer:   &beep.Mixer{},
		volume:  volume,
		muted:   muted,
	}
}

// Initialize opens the audio device.
func (m *Mixer) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to open speaker: %w", err)
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Close silences everything still playing.
func (m *Mixer) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	m.initialized = false
}

// Load decodes a WAV file and registers it under id.
func (m *Mixer) Load(id, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open sound %q: %w", id, err)
	}
	streamer, srcFormat, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("failed to decode sound %q: %w", id, err)
	}
	defer streamer.Close()

	buf := beep.NewBuffer(format)
	if srcFormat.SampleRate != sampleRate {
		buf.Append(beep.Resample(4, srcFormat.SampleRate, sampleRate, streamer))
	} else {
		buf.Append(streamer)
	}

	m.mu.Lock()
	m.buffers[id] = buf
	m.mu.Unlock()
	return nil
}

// LoadAll loads every configured file. Files that fail to load are replaced
// with a synthesized effect so the game stays audible without assets.
func (m *Mixer) LoadAll(files map[string]string) {
	for id, path := range files {
		if err := m.Load(id, path); err != nil {
			logging.Logger.Warn("using synthesized sound", "id", id, "err", err)
			m.Synthesize(id)
		}
	}
}

// Synthesize registers a generated effect for id.
func (m *Mixer) Synthesize(id string) {
	buf := beep.NewBuffer(format)
	buf.Append(synth(id))

	m.mu.Lock()
	m.buffers[id] = buf
	m.mu.Unlock()
}

// Has reports whether a sound is registered under id.
func (m *Mixer) Has(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.buffers[id]
	return ok
}

func (m *Mixer) PlaySound(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	buf, ok := m.buffers[id]
	if !ok {
		if id != "" {
			logging.Logger.Debug("unknown sound", "id", id)
		}
		return
	}
	if !m.initialized || m.muted {
		return
	}

	voice := &effects.Volume{
		Streamer: buf.Streamer(0, buf.Len()),
		Base:     2,
		Volume:   m.volume,
	}
	speaker.Lock()
	m.mixer.Add(voice)
	speaker.Unlock()
}
