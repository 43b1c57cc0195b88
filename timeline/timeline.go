// Package timeline converts between seconds and frames and provides the
// easing primitives every per-frame computation is built on.
// All functions are pure; callers guarantee fps > 0.
package timeline

import "math"

// DefaultFPS is the frame rate of every vertical reel
const DefaultFPS = 30

// DefaultDurationSec is used when a reel reports no usable duration
const DefaultDurationSec = 60.0

// SecondsToFrame converts a time to the nearest frame index.
// FrameToSeconds(SecondsToFrame(s)) may differ from s by up to half a frame.
func SecondsToFrame(seconds float64, fps int) int {
	return int(math.Round(seconds * float64(fps)))
}

// FrameToSeconds is exact for integer frames
func FrameToSeconds(frame, fps int) float64 {
	return float64(frame) / float64(fps)
}

// TotalFrames returns ceil(duration * fps), falling back to DefaultDurationSec
// when duration is not positive.
func TotalFrames(durationSeconds float64, fps int) int {
	if durationSeconds <= 0 {
		durationSeconds = DefaultDurationSec
	}
	return int(math.Ceil(durationSeconds * float64(fps)))
}

// Envelope is the product of a fade-in over [0, ramp] and a fade-out over
// [length-ramp, length], each clamped to [0, 1].
func Envelope(pos, length, ramp float64) float64 {
	if ramp <= 0 {
		if pos < 0 || pos > length {
			return 0
		}
		return 1
	}
	in := Clamp01(pos / ramp)
	out := Clamp01((length - pos) / ramp)
	return in * out
}

// Clamp01 limits v to [0, 1]
func Clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
