package levels

import (
	"github.com/gogpu/paintcore"
	"github.com/gogpu/paintcore/curves"
)

// gammaSegments is the number of segments between the low and high
// control points when a gamma is approximated; it adds gammaSegments-1
// intermediate points.
const gammaSegments = 4

// ToCurves returns a curves configuration that approximates c.
//
// Each channel curve gets control points at (LowInput, LowOutput) and
// (HighInput, HighOutput). A gamma other than 1 is approximated by three
// more points whose spacing grows geometrically by gamma, in input space
// for gamma > 1 and in output space for gamma < 1.
func (c *Config) ToCurves() *curves.Config {
	cc := curves.NewConfig()
	for ch, p := range c.Channels {
		channelToCurve(p, cc.Curve(paintcore.Channel(ch)))
	}
	return cc
}

func channelToCurve(p ChannelParams, curve *curves.Curve) {
	n := curve.NumPoints()
	point := -1

	curve.ClearPoint(0)
	curve.ClearPoint(n - 1)

	deltaIn := p.HighInput - p.LowInput
	deltaOut := p.HighOutput - p.LowOutput

	x, y := p.LowInput, p.LowOutput
	point = pointIndex(float64(n)*x, point+1, n-1-gammaSegments)
	curve.SetPoint(point, x, y)

	if deltaOut != 0 && p.Gamma != 1.0 {
		if p.Gamma > 1 {
			// Segment lengths x0, gamma*x0, gamma^2*x0, ... in input space.
			var dx float64
			for range gammaSegments {
				dx = dx*p.Gamma + 1
			}
			x0 := deltaIn / dx

			dx = 0
			for i := 1; i < gammaSegments; i++ {
				dx = dx*p.Gamma + x0
				x = p.LowInput + dx
				y = p.LowOutput + deltaOut*p.normalize(x)
				point = pointIndex(float64(n)*x, point+1, n-1-gammaSegments+i)
				curve.SetPoint(point, x, y)
			}
		} else {
			// The same construction on the mirrored curve, stepping in
			// output space.
			inv := swapAxes(p)

			var dy float64
			for range gammaSegments {
				dy = dy*inv.Gamma + 1
			}
			y0 := deltaOut / dy

			dy = 0
			for i := 1; i < gammaSegments; i++ {
				dy = dy*inv.Gamma + y0
				y = p.LowOutput + dy
				x = p.LowInput + deltaIn*inv.normalize(y)
				point = pointIndex(float64(n)*x, point+1, n-1-gammaSegments+i)
				curve.SetPoint(point, x, y)
			}
		}
	}

	x, y = p.HighInput, p.HighOutput
	point = pointIndex(float64(n)*x, point+1, n-1)
	curve.SetPoint(point, x, y)
}

// pointIndex clamps a scaled coordinate into [lo, hi] and truncates it to
// a control point slot. hi wins when the bounds cross.
func pointIndex(v float64, lo, hi int) int {
	switch {
	case v > float64(hi):
		return hi
	case v < float64(lo):
		return lo
	default:
		return int(v)
	}
}
