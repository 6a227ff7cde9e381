package window

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/vovakirdan/starfall/internal/core"
)

const (
	sampleRate     = 44100
	toneVolume     = 0.25
	bytesPerSample = 4 // 16-bit stereo
)

type tone struct {
	freq float64
	dur  time.Duration
}

// cueTones maps every audible cue to a short square-wave beep.
var cueTones = map[core.Cue]tone{
	core.CueRunStart: {freq: 660, dur: 90 * time.Millisecond},
	core.CueFire:     {freq: 880, dur: 50 * time.Millisecond},
	core.CuePickup:   {freq: 1320, dur: 80 * time.Millisecond},
	core.CueDamage:   {freq: 160, dur: 160 * time.Millisecond},
	core.CueGameOver: {freq: 110, dur: 450 * time.Millisecond},
}

// squareWave synthesizes 16-bit little-endian stereo PCM with a linear
// fade-out so clips end without a click.
func squareWave(freq float64, dur time.Duration, volume float64) []byte {
	n := int(math.Round(float64(sampleRate) * dur.Seconds()))
	if freq <= 0 || n <= 0 {
		return nil
	}
	amp := volume * math.MaxInt16
	buf := make([]byte, n*bytesPerSample)
	for i := 0; i < n; i++ {
		v := amp * (1 - float64(i)/float64(n))
		if math.Mod(float64(i)*freq/sampleRate, 1) >= 0.5 {
			v = -v
		}
		s := uint16(int16(v))
		binary.LittleEndian.PutUint16(buf[i*bytesPerSample:], s)
		binary.LittleEndian.PutUint16(buf[i*bytesPerSample+2:], s)
	}
	return buf
}

// SoundBank plays the synthesized cue clips.
type SoundBank struct {
	ctx   *audio.Context
	clips map[core.Cue][]byte
}

// NewSoundBank renders every cue clip and attaches to the process-wide
// audio context, creating it on first use.
func NewSoundBank() *SoundBank {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}
	clips := make(map[core.Cue][]byte, len(cueTones))
	for cue, t := range cueTones {
		clips[cue] = squareWave(t.freq, t.dur, toneVolume)
	}
	return &SoundBank{ctx: ctx, clips: clips}
}

// Play starts the clip for cue. Cues without a clip are ignored.
func (b *SoundBank) Play(cue core.Cue) {
	clip, ok := b.clips[cue]
	if !ok {
		return
	}
	b.ctx.NewPlayerFromBytes(clip).Play()
}
