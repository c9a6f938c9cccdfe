// Package audio synthesises the engine tone. It only produces samples;
// playback lives with the desktop shell.
package audio

import (
	"io"
	"math"
	"sync/atomic"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	frameBytes   = 8 // stereo float32
)

// Engine tone shape.
const (
	IdleFreq  = 38.0  // Hz at standstill
	MaxFreq   = 220.0 // Hz ceiling
	FreqPerMS = 0.18  // Hz per world unit/s
	glideRate = 6.0   // 1/s, how fast pitch follows speed
)

// EngineFreq maps a signed speed onto the engine pitch.
func EngineFreq(speed float64) float64 {
	f := IdleFreq + math.Abs(speed)*FreqPerMS
	if math.IsNaN(f) || f > MaxFreq {
		return MaxFreq
	}
	return f
}

// Engine is an endless io.Reader of stereo float32 LE samples. SetSpeed may
// be called from the frame loop while the audio device reads.
type Engine struct {
	target atomic.Uint64 // float64 bits

	freq  float64
	phase float64
	seed  uint64
	lp    float64
}

func NewEngine() *Engine {
	e := &Engine{freq: IdleFreq, seed: 0x5EED}
	e.target.Store(math.Float64bits(IdleFreq))
	return e
}

func (e *Engine) SetSpeed(speed float64) {
	e.target.Store(math.Float64bits(EngineFreq(speed)))
}

func (e *Engine) Target() float64 { return math.Float64frombits(e.target.Load()) }

var _ io.Reader = (*Engine)(nil)

func (e *Engine) Read(p []byte) (int, error) {
	n := len(p) / frameBytes
	if n == 0 {
		return 0, nil
	}
	target := e.Target()
	dt := 1.0 / SampleRate
	k := 1 - math.Exp(-glideRate*dt)
	for i := 0; i < n; i++ {
		e.freq += (target - e.freq) * k
		e.phase += e.freq * dt
		if e.phase >= 1 {
			e.phase -= math.Floor(e.phase)
		}
		putStereoF32(p, i, e.sample())
	}
	return n * frameBytes, nil
}

// sample mixes a buzzy fundamental, its second harmonic and filtered noise.
func (e *Engine) sample() float64 {
	ph := 2 * math.Pi * e.phase
	body := math.Sin(ph) + 0.45*math.Sin(2*ph+0.6*math.Sin(ph)) + 0.2*softSquare(e.phase)
	e.lp += (lcg(&e.seed) - e.lp) * 0.08
	return softSat(0.35*body + 0.08*e.lp)
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both channels of frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	for ch := 0; ch < ChannelCount; ch++ {
		o := i*frameBytes + ch*4
		buf[o] = byte(v)
		buf[o+1] = byte(v >> 8)
		buf[o+2] = byte(v >> 16)
		buf[o+3] = byte(v >> 24)
	}
}

// softSat is a gentle saturator that never leaves [-1, 1].
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

func softSquare(phase float64) float64 {
	return math.Tanh(6 * math.Sin(2*math.Pi*phase))
}

// lcg advances seed and returns noise in [-1, 1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}
