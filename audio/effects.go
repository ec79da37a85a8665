package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/hoopshot/parameter"
	"github.com/lixenwraith/hoopshot/vmath"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves with an optional linear frequency sweep
type oscillator struct {
	freq     float64
	sweep    float64 // Hz per second
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from one frequency to another over duration
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	samples := rate.N(duration)
	var sweep float64
	if duration > 0 {
		sweep = (to - from) / duration.Seconds()
	}
	return &oscillator{
		freq:     from,
		sweep:    sweep,
		duration: samples,
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.rate)
		o.phase += (o.freq + o.sweep*t) / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = max(float64(remaining)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain
// math.Log2(0) is -Inf, so 0 volume is made silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateShotSound generates a short rising whoop for a release
func CreateShotSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.CueShotDuration

	osc := NewSweep(parameter.CueShotFreq, parameter.CueShotFreq*2, d, WaveSine, rate)
	shaped := NewEnvelope(osc, d, 5*time.Millisecond, d/2, rate)
	return newVolume(shaped, cfg.Gain(SoundShot)*0.6)
}

// CreateRimSound generates a metallic clang: fundamental plus an inharmonic partial
func CreateRimSound(cfg *AudioConfig, intensity float64) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.CueRimDuration

	fund, err := generators.SineTone(rate, parameter.CueRimFreq)
	if err != nil {
		fund = NewOscillator(parameter.CueRimFreq, d, WaveSine, rate)
	}
	partial, err := generators.SineTone(rate, parameter.CueRimFreq*2.76)
	if err != nil {
		partial = NewOscillator(parameter.CueRimFreq*2.76, d, WaveSine, rate)
	}

	mixed := beep.Mix(
		newVolume(NewEnvelope(beep.Take(rate.N(d), fund), d, 2*time.Millisecond, d-2*time.Millisecond, rate), 0.6),
		newVolume(NewEnvelope(beep.Take(rate.N(d/2), partial), d/2, 2*time.Millisecond, d/2-2*time.Millisecond, rate), 0.3),
	)
	return newVolume(mixed, cfg.Gain(SoundRim)*intensity)
}

// CreateBackboardSound generates a dull square thud
func CreateBackboardSound(cfg *AudioConfig, intensity float64) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.CueBackboardDuration

	osc := NewSweep(parameter.CueBackboardFreq, parameter.CueBackboardFreq*0.6, d, WaveSquare, rate)
	shaped := NewEnvelope(osc, d, time.Millisecond, d-time.Millisecond, rate)
	return newVolume(shaped, cfg.Gain(SoundBackboard)*intensity*0.5)
}

// CreateBounceSound generates a low floor thump
func CreateBounceSound(cfg *AudioConfig, intensity float64) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.CueBounceDuration

	osc := NewSweep(parameter.CueBounceFreq*1.5, parameter.CueBounceFreq, d, WaveSine, rate)
	shaped := NewEnvelope(osc, d, time.Millisecond, d-time.Millisecond, rate)
	return newVolume(shaped, cfg.Gain(SoundBounce)*intensity)
}

// CreateSwishSound generates a soft noise burst through the net followed by a chime
func CreateSwishSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.CueSwishDuration

	noise := NewOscillator(0, d, WaveNoise, rate)
	swish := newVolume(NewEnvelope(noise, d, d/3, d/2, rate), 0.35)

	c1 := NewEnvelope(NewOscillator(987.77, 90*time.Millisecond, WaveSine, rate), 90*time.Millisecond, 2*time.Millisecond, 60*time.Millisecond, rate)
	c2 := NewEnvelope(NewOscillator(1318.51, 160*time.Millisecond, WaveSine, rate), 160*time.Millisecond, 2*time.Millisecond, 140*time.Millisecond, rate)
	chime := newVolume(beep.Seq(c1, c2), 0.4)

	return newVolume(beep.Seq(swish, chime), cfg.Gain(SoundSwish))
}

// CreateClickSound generates a tick for UI feedback
func CreateClickSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.CueClickDuration

	osc := NewOscillator(parameter.CueClickFreq, d, WaveSquare, rate)
	shaped := NewEnvelope(osc, d, 0, d, rate)
	return newVolume(shaped, cfg.Gain(SoundClick)*0.3)
}

// GetSoundEffect returns the streamer for a cue
// intensity in [0, 1] scales impact cues; others ignore it
func GetSoundEffect(soundType SoundType, cfg *AudioConfig, intensity float64) beep.Streamer {
	intensity = vmath.Clamp(intensity, 0, 1)
	switch soundType {
	case SoundShot:
		return CreateShotSound(cfg)
	case SoundRim:
		return CreateRimSound(cfg, intensity)
	case SoundBackboard:
		return CreateBackboardSound(cfg, intensity)
	case SoundBounce:
		return CreateBounceSound(cfg, intensity)
	case SoundSwish:
		return CreateSwishSound(cfg)
	case SoundClick:
		return CreateClickSound(cfg)
	default:
		return nil
	}
}
