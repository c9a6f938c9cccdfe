package game

import (
	"fmt"

	"github.com/hajimehoshi/oto/v2"

	"crisis/internal/audio"
)

// AudioSystem plays the engine tone on the default output device.
type AudioSystem struct {
	ctx    *oto.Context
	ready  chan struct{}
	engine *audio.Engine
	player oto.Player
	volume float64
}

// InitAudio opens the output device. Playback starts once the device
// reports ready; until then Update is a no-op.
func InitAudio(volume float64) (*AudioSystem, error) {
	ctx, ready, err := oto.NewContext(audio.SampleRate, audio.ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, fmt.Errorf("audio context: %w", err)
	}
	return &AudioSystem{
		ctx:    ctx,
		ready:  ready,
		engine: audio.NewEngine(),
		volume: volume,
	}, nil
}

// Update retunes the engine tone for the current speed.
func (a *AudioSystem) Update(speed float64) {
	if a == nil {
		return
	}
	if a.player == nil {
		select {
		case <-a.ready:
		default:
			return
		}
		a.player = a.ctx.NewPlayer(a.engine)
		a.player.SetVolume(a.volume)
		a.player.Play()
	}
	a.engine.SetSpeed(speed)
}

func (a *AudioSystem) Close() error {
	if a == nil || a.player == nil {
		return nil
	}
	return a.player.Close()
}
