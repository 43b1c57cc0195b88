package timeline

import "math"

// SpringConfig describes a damped harmonic oscillator
type SpringConfig struct {
	Damping   float64
	Mass      float64
	Stiffness float64
}

var (
	// BounceSpring drives the active caption word
	BounceSpring = SpringConfig{Damping: 10, Mass: 0.5, Stiffness: 200}
	// TextSpring drives b-roll text reveals
	TextSpring = SpringConfig{Damping: 12, Mass: 0.5, Stiffness: 100}
)

// Spring returns the position of a spring released from 0 towards 1 with no
// initial velocity, frame frames after release. It is 0 for frame <= 0 and
// may overshoot 1 while it settles.
func Spring(frame, fps int, cfg SpringConfig) float64 {
	if frame <= 0 {
		return 0
	}
	if cfg.Mass <= 0 || cfg.Stiffness <= 0 {
		return 1
	}

	t := float64(frame) / float64(fps)
	omega0 := math.Sqrt(cfg.Stiffness / cfg.Mass)
	zeta := cfg.Damping / (2 * math.Sqrt(cfg.Stiffness*cfg.Mass))

	// displacement from rest at t=0 is 1, velocity 0
	const x0 = 1.0
	if zeta < 1 {
		omega1 := omega0 * math.Sqrt(1-zeta*zeta)
		envelope := math.Exp(-zeta * omega0 * t)
		return 1 - envelope*((zeta*omega0*x0)/omega1*math.Sin(omega1*t)+x0*math.Cos(omega1*t))
	}
	envelope := math.Exp(-omega0 * t)
	return 1 - envelope*(x0+omega0*x0*t)
}
