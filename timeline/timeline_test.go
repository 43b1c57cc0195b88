package timeline

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSecondsToFrame(t *testing.T) {
	tests := []struct {
		seconds float64
		fps     int
		want    int
	}{
		{0, 30, 0},
		{1, 30, 30},
		{0.5, 30, 15},
		{0.51, 30, 15},
		{0.52, 30, 16},
		{2.0 / 60, 30, 1},
		{-1, 30, -30},
	}
	for _, tc := range tests {
		if got := SecondsToFrame(tc.seconds, tc.fps); got != tc.want {
			t.Errorf("SecondsToFrame(%v, %d) = %d; want %d", tc.seconds, tc.fps, got, tc.want)
		}
	}
}

func TestFrameToSecondsIsExactInverseOnFrames(t *testing.T) {
	for f := 0; f < 600; f++ {
		if got := SecondsToFrame(FrameToSeconds(f, 30), 30); got != f {
			t.Fatalf("round trip frame %d -> %d", f, got)
		}
	}
}

func TestSecondsRoundTripIsLossy(t *testing.T) {
	s := 0.51
	back := FrameToSeconds(SecondsToFrame(s, 30), 30)
	if back == s {
		t.Fatalf("expected lossy round trip for %v", s)
	}
	if math.Abs(back-s) > 0.5/30 {
		t.Fatalf("round trip error %v exceeds half a frame", math.Abs(back-s))
	}
}

func TestTotalFrames(t *testing.T) {
	tests := []struct {
		duration float64
		fps      int
		want     int
	}{
		{10, 30, 300},
		{10.01, 30, 301},
		{0, 30, 1800},
		{-5, 30, 1800},
		{1.5, 24, 36},
	}
	for _, tc := range tests {
		if got := TotalFrames(tc.duration, tc.fps); got != tc.want {
			t.Errorf("TotalFrames(%v, %d) = %d; want %d", tc.duration, tc.fps, got, tc.want)
		}
	}
}

func TestEnvelope(t *testing.T) {
	tests := []struct {
		name             string
		pos, length, ram float64
		want             float64
	}{
		{"start", 0, 300, 15, 0},
		{"ramp middle", 7.5, 300, 15, 0.5},
		{"steady", 15, 300, 15, 1},
		{"last frame", 299, 300, 15, 1.0 / 15},
		{"end", 300, 300, 15, 0},
		{"before start clamps", -20, 300, 15, 0},
		{"after end clamps", 400, 300, 15, 0},
		{"no ramp inside", 5, 10, 0, 1},
		{"no ramp outside", 11, 10, 0, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Envelope(tc.pos, tc.length, tc.ram); !almostEqual(got, tc.want) {
				t.Errorf("Envelope(%v, %v, %v) = %v; want %v", tc.pos, tc.length, tc.ram, got, tc.want)
			}
		})
	}
}

func TestEnvelopeNeverLeavesUnitRange(t *testing.T) {
	for f := -100; f < 500; f++ {
		v := Envelope(float64(f), 300, 15)
		if v < 0 || v > 1 {
			t.Fatalf("Envelope at %d = %v", f, v)
		}
	}
}

func TestInterpolate(t *testing.T) {
	tests := []struct {
		name        string
		x           float64
		in, out     []float64
		left, right Extrapolate
		want        float64
	}{
		{"linear mid", 0.5, []float64{0, 1}, []float64{0.8, 1}, Extend, Extend, 0.9},
		{"extend right", 1.2, []float64{0, 1}, []float64{0.8, 1}, Extend, Extend, 1.04},
		{"clamp right", 1.2, []float64{0, 1}, []float64{0.8, 1}, Extend, Clamp, 1},
		{"extend left", -1, []float64{0, 1}, []float64{0, 10}, Extend, Extend, -10},
		{"clamp left", -1, []float64{0, 1}, []float64{0, 10}, Clamp, Extend, 0},
		{"three points first seg", 0.25, []float64{0, 0.5, 1}, []float64{20, -10, 0}, Extend, Extend, 5},
		{"three points second seg", 0.75, []float64{0, 0.5, 1}, []float64{20, -10, 0}, Extend, Extend, -5},
		{"three points overshoot", 1.1, []float64{0, 0.5, 1}, []float64{20, -10, 0}, Extend, Extend, 2},
		{"four points hold", 50, []float64{0, 7.5, 52.5, 60}, []float64{0, 1, 1, 0}, Clamp, Clamp, 1},
		{"bad curve", 3, []float64{0}, []float64{4}, Clamp, Clamp, 4},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Interpolate(tc.x, tc.in, tc.out, tc.left, tc.right)
			if !almostEqual(got, tc.want) {
				t.Errorf("Interpolate = %v; want %v", got, tc.want)
			}
		})
	}
}

func TestSpring(t *testing.T) {
	if got := Spring(0, 30, BounceSpring); got != 0 {
		t.Errorf("Spring at frame 0 = %v; want 0", got)
	}
	if got := Spring(-5, 30, BounceSpring); got != 0 {
		t.Errorf("Spring before release = %v; want 0", got)
	}

	// the bounce spring is underdamped: it must overshoot, then settle on 1
	overshoot := false
	for f := 1; f < 30; f++ {
		if Spring(f, 30, BounceSpring) > 1 {
			overshoot = true
		}
	}
	if !overshoot {
		t.Errorf("expected bounce spring to overshoot 1")
	}
	if got := Spring(90, 30, BounceSpring); math.Abs(got-1) > 1e-3 {
		t.Errorf("Spring after 3s = %v; want ~1", got)
	}

	critical := SpringConfig{Damping: 2, Mass: 1, Stiffness: 1}
	prev := 0.0
	for f := 1; f < 300; f++ {
		v := Spring(f, 30, critical)
		if v < prev || v > 1 {
			t.Fatalf("critically damped spring not monotonic in [0,1] at %d: %v", f, v)
		}
		prev = v
	}
}

func TestSpringIsDeterministic(t *testing.T) {
	for f := 0; f < 60; f++ {
		a := Spring(f, 30, TextSpring)
		b := Spring(f, 30, TextSpring)
		if math.Float64bits(a) != math.Float64bits(b) {
			t.Fatalf("Spring(%d) not reproducible", f)
		}
	}
}
