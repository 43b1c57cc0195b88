// Package broll schedules time-boxed overlay segments and renders their payloads.
//
// Segments are never checked for overlap. When two cover the same instant
// both are returned in input order, and later ones paint on top.
package broll

import (
	"reel-composer/timeline"
	"reel-composer/types"
)

// FadeSec is the fade-in and fade-out length of every segment
const FadeSec = 0.25

// Active is a segment visible at the queried frame
type Active struct {
	Segment    types.OverlaySegment
	LocalFrame int     // frames since the segment started
	Opacity    float64 // the segment's own fade envelope
}

// Window returns the segment's [from, from+length) frame window
func Window(s types.OverlaySegment, fps int) (from, length int) {
	return timeline.SecondsToFrame(s.StartTime, fps), timeline.SecondsToFrame(s.Duration, fps)
}

// Schedule returns the segments whose window contains frame
func Schedule(segments []types.OverlaySegment, frame, fps int) []Active {
	var out []Active
	for _, s := range segments {
		if s.Duration <= 0 || s.StartTime < 0 {
			continue
		}
		from, length := Window(s, fps)
		if frame < from || frame >= from+length {
			continue
		}
		local := frame - from
		out = append(out, Active{
			Segment:    s,
			LocalFrame: local,
			Opacity:    Opacity(local, s.Duration, fps),
		})
	}
	return out
}

// Opacity is the segment-local envelope: a quarter-second ramp at both ends of its duration
func Opacity(localFrame int, durationSec float64, fps int) float64 {
	f := float64(fps)
	return timeline.Envelope(float64(localFrame), durationSec*f, FadeSec*f)
}
