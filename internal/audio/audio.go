// Package audio plays procedurally generated sound effects through oto.
package audio

import (
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"roaddodge/internal/dodge"
)

const defaultVolume = 0.58

// maxVoices limits simultaneous effects to avoid speaker clipping.
const maxVoices = 3

// System owns the oto context. The zero value and a nil *System are silent.
type System struct {
	ctx    *oto.Context
	ready  chan struct{}
	volume float64
	voices int32
}

// New opens the audio device.
func New() (*System, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, fmt.Errorf("audio context: %w", err)
	}
	return &System{ctx: ctx, ready: ready, volume: defaultVolume}, nil
}

// Play starts an effect in the background. It never blocks the game loop.
func (s *System) Play(kind SoundKind) {
	if s == nil || s.ctx == nil || s.volume <= 0 {
		return
	}
	select {
	case <-s.ready:
	default:
		return
	}
	if atomic.AddInt32(&s.voices, 1) > maxVoices {
		atomic.AddInt32(&s.voices, -1)
		return
	}
	samples := Generate(kind)
	if len(samples) == 0 {
		atomic.AddInt32(&s.voices, -1)
		return
	}
	go func() {
		defer atomic.AddInt32(&s.voices, -1)
		player := s.ctx.NewPlayer(&soundReader{data: samples})
		player.SetVolume(s.volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

// Attach maps session events to sound effects.
func (s *System) Attach(bus *dodge.EventBus) {
	bus.Subscribe(dodge.EventCollision, func(e dodge.Event) {
		// The last heart gets the game-over chord instead.
		if e.Data > 0 {
			s.Play(SoundCrash)
		}
	})
	bus.Subscribe(dodge.EventGameOver, func(dodge.Event) { s.Play(SoundGameOver) })
	bus.Subscribe(dodge.EventSpeedUp, func(dodge.Event) { s.Play(SoundSpeedUp) })
	bus.Subscribe(dodge.EventRestart, func(dodge.Event) { s.Play(SoundRestart) })
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}
