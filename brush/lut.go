package brush

import "math"

// Oversampling is the number of LUT entries per pixel of distance.
const Oversampling = 4

// LUTLength returns the number of entries LUT allocates for radius: enough
// to cover the diagonal of the bounding box plus one pixel.
func LUTLength(radius float64) int {
	r := math.Ceil(radius + 1.0)
	return Oversampling * int(math.Ceil(1+math.Sqrt(2*r*r)))
}

// LUT builds the radial falloff table of a brush.
//
// Entry i holds the coverage (0..255) of a pixel whose shape distance from
// the center is i/Oversampling. Each entry is the running average of the
// analytic edge profile over the last Oversampling samples, which is a box
// filter approximating area coverage of the hard edge.
func LUT(radius, hardness float64) []byte {
	length := LUTLength(radius)
	lookup := make([]byte, length)

	exponent := 1000000.0
	if 1.0-hardness >= 0.0000004 {
		exponent = 0.4 / (1.0 - hardness)
	}

	profile := func(d float64) float64 {
		if d > radius {
			return 0
		}
		return fakeGauss(math.Pow(d/radius, exponent))
	}

	var (
		buffer [Oversampling]float64
		sum    float64
		d      float64
	)
	for x := range Oversampling {
		d = math.Abs((float64(x)+0.5)/Oversampling - 0.5)
		buffer[x] = profile(d)
		sum += buffer[x]
	}

	// d continues from the last seed sample; the window slides one
	// oversampling step per entry.
	for x := 0; x < length && (d < radius || sum > 0.00001); d += 1.0 / Oversampling {
		slot := x % Oversampling
		sum -= buffer[slot]
		buffer[slot] = profile(d)
		sum += buffer[slot]
		lookup[x] = byte(math.RoundToEven(sum * (255.0 / Oversampling)))
		x++
	}

	return lookup
}

// fakeGauss is a smooth symmetric bump built from two quadratics:
// 1 at f=0, 0.5 at |f|=0.5, 0 at |f|=1.
func fakeGauss(f float64) float64 {
	if f < -0.5 {
		f = -1.0 - f
		return 2.0 * f * f
	}
	if f < 0.5 {
		return 1.0 - 2.0*f*f
	}
	f = 1.0 - f
	return 2.0 * f * f
}
