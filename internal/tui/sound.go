// internal/tui/sound.go
package tui

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"duckslayer/internal/defs"
	"duckslayer/internal/event"
)

const sampleRate = beep.SampleRate(44100)

// deathTones — высота сигнала по типу погибшей карты
var deathTones = map[defs.CardKind]float64{
	defs.CardFarmer: 330,
	defs.CardQuakka: 660,
	defs.CardNest:   220,
}

// Sound plays a short beep on every card death. Without Init every call is a
// no-op, so the viewer runs on machines without an audio device.
type Sound struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewSound() *Sound {
	return &Sound{mixer: &beep.Mixer{}}
}

// Init opens the speaker and starts the mixer.
func (s *Sound) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Close silences everything still queued.
func (s *Sound) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Clear()
	s.mixer.Clear()
	s.initialized = false
}

// Subscribe hooks the sound up to CardDied and returns the unsubscribe func.
func (s *Sound) Subscribe(d *event.Dispatcher) func() {
	return d.SubscribeFunc(event.CardDied, func(e event.Event) {
		death, ok := e.Data.(event.CardDeath)
		if !ok {
			return
		}
		s.PlayDeath(death.Kind)
	})
}

// PlayDeath queues the tone for kind. Kinds without a tone stay silent.
func (s *Sound) PlayDeath(kind defs.CardKind) {
	freq, ok := deathTones[kind]
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Add(beep.Take(sampleRate.N(80*time.Millisecond), NewToneGenerator(sampleRate, freq)))
	speaker.Unlock()
}

// ToneGenerator is a sine wave that fades out linearly over 80ms.
type ToneGenerator struct {
	sampleRate beep.SampleRate
	freq       float64
	pos        int
	fade       int
}

func NewToneGenerator(sr beep.SampleRate, freq float64) *ToneGenerator {
	return &ToneGenerator{sampleRate: sr, freq: freq, fade: sr.N(80 * time.Millisecond)}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sampleRate)
		gain := 1 - float64(g.pos)/float64(g.fade)
		if gain < 0 {
			gain = 0
		}
		v := 0.3 * gain * math.Sin(2*math.Pi*g.freq*t)
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error { return nil }
