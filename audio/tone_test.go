package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to exhaustion in small chunks
func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 64)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, d := range []time.Duration{15 * time.Millisecond, 80 * time.Millisecond} {
		got := len(drain(NewOscillator(440, d, WaveSine, rate)))
		if want := rate.N(d); got != want {
			t.Errorf("%v: streamed %d samples, want %d", d, got, want)
		}
	}
}

func TestOscillatorSquare(t *testing.T) {
	rate := beep.SampleRate(8000)
	samples := drain(NewOscillator(1000, 10*time.Millisecond, WaveSquare, rate))

	// 8 samples per period: four high then four low
	for i, s := range samples[:8] {
		want := 1.0
		if i >= 4 {
			want = -1.0
		}
		if s[0] != want || s[1] != want {
			t.Errorf("sample %d = %v, want %v", i, s, want)
		}
	}
}

func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	src := NewOscillator(0, 100*time.Millisecond, WaveSquare, rate) // constant 1.0
	samples := drain(NewEnvelope(src, 100*time.Millisecond, 10*time.Millisecond, 20*time.Millisecond, rate))

	if len(samples) != 100 {
		t.Fatalf("streamed %d samples, want 100", len(samples))
	}
	tests := []struct {
		i    int
		want float64
	}{
		{0, 0},
		{5, 0.5},
		{10, 1},
		{79, 1},
		{80, 1},
		{90, 0.5},
		{99, 0.05},
	}
	for _, tt := range tests {
		if got := samples[tt.i][0]; math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("sample %d = %f, want %f", tt.i, got, tt.want)
		}
	}
}

func TestEnvelopeClipsToDuration(t *testing.T) {
	rate := beep.SampleRate(1000)
	src := NewOscillator(0, 5*time.Millisecond, WaveSquare, rate)
	samples := drain(NewEnvelope(src, 5*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate))

	if len(samples) != 5 {
		t.Fatalf("streamed %d samples, want 5", len(samples))
	}
	for i, s := range samples {
		if s[0] < 0 || s[0] > 1 {
			t.Errorf("sample %d = %f outside [0,1]", i, s[0])
		}
	}
}

func TestToneVolume(t *testing.T) {
	rate := beep.SampleRate(44100)
	samples := drain(newTone(120, 80*time.Millisecond, WaveSquare, 2*time.Millisecond, 10*time.Millisecond, 0.3, rate))

	peak := 0.0
	for _, s := range samples {
		peak = math.Max(peak, math.Abs(s[0]))
	}
	if peak > 0.3+1e-9 {
		t.Errorf("peak %f exceeds volume 0.3", peak)
	}
	if peak < 0.29 {
		t.Errorf("peak %f, want close to 0.3", peak)
	}
}
