package timeline

// Extrapolate selects what Interpolate does outside the input range
type Extrapolate int

const (
	Extend Extrapolate = iota
	Clamp
)

// Interpolate maps x through the piecewise-linear curve defined by in -> out.
// in must be non-decreasing and the same length as out (at least 2 points);
// otherwise out[0] (or 0 for an empty curve) is returned.
func Interpolate(x float64, in, out []float64, left, right Extrapolate) float64 {
	if len(in) < 2 || len(in) != len(out) {
		if len(out) > 0 {
			return out[0]
		}
		return 0
	}

	last := len(in) - 1
	if x < in[0] && left == Clamp {
		return out[0]
	}
	if x > in[last] && right == Clamp {
		return out[last]
	}

	seg := 0
	for seg < last-1 && x >= in[seg+1] {
		seg++
	}
	return lerp(x, in[seg], in[seg+1], out[seg], out[seg+1])
}

func lerp(x, x0, x1, y0, y1 float64) float64 {
	if x1 == x0 {
		if x < x0 {
			return y0
		}
		return y1
	}
	return y0 + (x-x0)/(x1-x0)*(y1-y0)
}
