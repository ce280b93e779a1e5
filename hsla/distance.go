package hsla

import "math"

// Distance is the default Metric. Each color is placed in the HSL double cone
// at (C·cos H, C·sin H, L) with chroma C = S·(1-|2L-1|), and the Euclidean
// distance between the two points is halved so the result lies in [0,1].
// Alpha is ignored. Near-black and near-white colors are close regardless of hue.
func Distance(a, b Color) float64 {
	ax, ay, az := a.cone()
	bx, by, bz := b.cone()
	dx, dy, dz := ax-bx, ay-by, az-bz
	return math.Sqrt(dx*dx+dy*dy+dz*dz) / 2
}

// LabDistance measures the Euclidean distance in CIE L*a*b*.
func LabDistance(a, b Color) float64 {
	return a.toColorful().DistanceLab(b.toColorful())
}

// CIEDE2000Distance measures the CIEDE2000 color difference.
func CIEDE2000Distance(a, b Color) float64 {
	return a.toColorful().DistanceCIEDE2000(b.toColorful())
}

// Dist is shorthand for Distance(c, other).
func (c Color) Dist(other Color) float64 {
	return Distance(c, other)
}

func (c Color) cone() (x, y, z float64) {
	l := clamp01(c.L)
	chroma := clamp01(c.S) * (1 - math.Abs(2*l-1))
	rad := c.H * math.Pi / 180
	return chroma * math.Cos(rad), chroma * math.Sin(rad), l
}
