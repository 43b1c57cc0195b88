package styles

import (
	"strings"

	"reel-composer/scene"
	"reel-composer/timeline"
)

// bounce pops the active word in with a spring while the rest of the group rests
type bounce struct{}

func (bounce) Kind() Kind { return Bounce }

func (bounce) Render(in Input) *scene.CaptionLayer {
	if len(in.Words) == 0 {
		return nil
	}

	layer := &scene.CaptionLayer{
		Style:      Bounce.String(),
		Placement:  in.Placement,
		FontFamily: in.FontFamily,
		Gap:        16,
		Words:      make([]scene.WordState, 0, len(in.Words)),
	}

	for i, w := range in.Words {
		abs := in.GroupStart + i
		active := abs == in.ActiveIndex

		b := 1.0
		if active {
			wordFrame := timeline.SecondsToFrame(w.Start, in.FPS)
			b = timeline.Spring(in.Frame-wordFrame, in.FPS, timeline.BounceSpring)
		}

		color := white
		if active {
			color = in.AccentColor
		}

		layer.Words = append(layer.Words, scene.WordState{
			Word:       strings.ToUpper(w.Word),
			Index:      abs,
			Active:     active,
			Progress:   timeline.Clamp01(b),
			Scale:      timeline.Interpolate(b, []float64{0, 1}, []float64{0.8, 1}, timeline.Extend, timeline.Extend),
			OffsetY:    timeline.Interpolate(b, []float64{0, 0.5, 1}, []float64{20, -10, 0}, timeline.Extend, timeline.Extend),
			Color:      color,
			FontSize:   72,
			FontWeight: 900,
			Uppercase:  true,
		})
	}
	return layer
}
