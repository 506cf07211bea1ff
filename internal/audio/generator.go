package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// synth returns a short generated effect for the well-known sound ids.
func synth(id string) beep.Streamer {
	switch id {
	case "dead":
		return beep.Take(sampleRate.N(600*time.Millisecond), noise(sampleRate, 0.6, 4, 1))
	case "splash":
		return beep.Take(sampleRate.N(250*time.Millisecond), noise(sampleRate, 0.25, 10, 2))
	case "damage":
		return beep.Take(sampleRate.N(80*time.Millisecond), sweep(sampleRate, 220, 110, 0.08))
	default:
		return beep.Take(sampleRate.N(120*time.Millisecond), sweep(sampleRate, 1200, 300, 0.12))
	}
}

// sweep is a sine whose pitch slides from f0 to f1 over dur seconds.
func sweep(sr beep.SampleRate, f0, f1, dur float64) beep.Streamer {
	pos := 0
	phase := 0.0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			t := float64(pos) / float64(sr)
			k := math.Min(t/dur, 1)
			freq := f0 + (f1-f0)*k
			phase += 2 * math.Pi * freq / float64(sr)
			v := 0.2 * math.Sin(phase) * (1 - k)
			samples[i][0], samples[i][1] = v, v
			pos++
		}
		return len(samples), true
	})
}

// noise is white noise with an exponential decay envelope.
func noise(sr beep.SampleRate, dur, decay float64, seed int64) beep.Streamer {
	rng := rand.New(rand.NewSource(seed))
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			t := float64(pos) / float64(sr)
			env := math.Exp(-decay*t) * math.Max(0, 1-t/dur)
			v := 0.3 * (rng.Float64()*2 - 1) * env
			samples[i][0], samples[i][1] = v, v
			pos++
		}
		return len(samples), true
	})
}
