package compose

import (
	"math"

	"reel-composer/scene"
	"reel-composer/timeline"
)

// orb describes one floating highlight of the animated background
type orb struct {
	size, blur float64
	anchor     string
	edge       float64 // fraction of width from the anchored edge
	period     float64 // frames per radian of the vertical sine
	phase      float64
	lo, hi     float64 // vertical travel as fractions of height
	accent     bool
	alpha      string
}

var orbs = []orb{
	{size: 400, blur: 60, anchor: "left", edge: 0.1, period: 30, phase: 0, lo: 0.2, hi: 0.4, accent: true, alpha: "40"},
	{size: 300, blur: 50, anchor: "right", edge: 0.15, period: 25, phase: 1, lo: 0.5, hi: 0.7, alpha: "50"},
	{size: 250, blur: 40, anchor: "left", edge: 0.4, period: 35, phase: 2, lo: 0.6, hi: 0.8, accent: true, alpha: "30"},
}

func (c *Composer) backgroundAt(i int) scene.Background {
	p := c.palette
	switch c.background {
	case "gradient":
		return scene.Background{
			Kind:  "gradient",
			Color: p.PrimaryColor,
			Angle: 135,
			Stops: []string{p.PrimaryColor, p.SecondaryColor},
		}
	case "animated":
		// half a turn per second
		angle := math.Mod(timeline.FrameToSeconds(i, c.fps)*0.5*360, 360)
		bg := scene.Background{
			Kind:  "animated",
			Color: p.PrimaryColor,
			Angle: angle,
			Stops: []string{p.PrimaryColor, p.SecondaryColor, p.PrimaryColor},
		}
		for _, o := range orbs {
			y := timeline.Interpolate(
				math.Sin(float64(i)/o.period+o.phase),
				[]float64{-1, 1},
				[]float64{c.height * o.lo, c.height * o.hi},
				timeline.Extend, timeline.Extend,
			)
			color := p.SecondaryColor
			if o.accent {
				color = p.AccentColor
			}
			bg.Highlights = append(bg.Highlights, scene.Orb{
				X:      c.width * o.edge,
				Y:      y,
				Size:   o.size,
				Blur:   o.blur,
				Color:  color,
				Alpha:  o.alpha,
				Anchor: o.anchor,
			})
		}
		return bg
	default:
		// solid, and stock until footage backgrounds are sourced
		return scene.Background{Kind: "solid", Color: p.PrimaryColor}
	}
}
