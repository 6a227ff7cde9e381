package window

import (
	"encoding/binary"
	"testing"
	"time"
)

func sample(buf []byte, i int) (left, right int16) {
	left = int16(binary.LittleEndian.Uint16(buf[i*bytesPerSample:]))
	right = int16(binary.LittleEndian.Uint16(buf[i*bytesPerSample+2:]))
	return left, right
}

func TestSquareWaveLength(t *testing.T) {
	buf := squareWave(440, 100*time.Millisecond, 0.5)
	want := sampleRate / 10 * bytesPerSample
	if len(buf) != want {
		t.Errorf("len = %d, want %d", len(buf), want)
	}
}

func TestSquareWaveShape(t *testing.T) {
	// 100 samples per period at 441 Hz
	buf := squareWave(441, time.Second, 0.5)

	l, r := sample(buf, 10)
	if l <= 0 || l != r {
		t.Errorf("first half period = (%d, %d), want equal positive samples", l, r)
	}
	l, _ = sample(buf, 60)
	if l >= 0 {
		t.Errorf("second half period = %d, want negative", l)
	}

	first, _ := sample(buf, 0)
	last, _ := sample(buf, sampleRate-1)
	if abs(last) >= abs(first)/10 {
		t.Errorf("clip should fade out: first %d, last %d", first, last)
	}
}

func TestSquareWaveEmpty(t *testing.T) {
	if squareWave(0, time.Second, 1) != nil {
		t.Error("zero frequency should give no clip")
	}
	if squareWave(440, 0, 1) != nil {
		t.Error("zero duration should give no clip")
	}
}

func TestEveryCueHasTone(t *testing.T) {
	for cue, tn := range cueTones {
		if len(squareWave(tn.freq, tn.dur, toneVolume)) == 0 {
			t.Errorf("cue %s renders an empty clip", cue)
		}
	}
}

func abs(v int16) int16 {
	if v < 0 {
		return -v
	}
	return v
}
