package brush

import (
	"math"

	"golang.org/x/image/math/f64"

	"github.com/gogpu/paintcore"
)

// Geometry is the bounding box and orientation of a brush stamp.
type Geometry struct {
	// HalfWidth and HalfHeight are the integer half-extents; the stamp is
	// (2*HalfWidth+1) x (2*HalfHeight+1) pixels.
	HalfWidth  int
	HalfHeight int

	// Sin and Cos of the rounded brush angle.
	Sin, Cos float64

	// XAxis and YAxis are the rotated major and minor axes of the brush.
	// For spiked brushes YAxis is reset to full radius length.
	XAxis f64.Vec2
	YAxis f64.Vec2
}

// Width returns the stamp width in pixels.
func (g Geometry) Width() int { return 2*g.HalfWidth + 1 }

// Height returns the stamp height in pixels.
func (g Geometry) Height() int { return 2*g.HalfHeight + 1 }

// HalfSize computes the stamp geometry for the given parameters without
// rendering it. angle is in degrees.
func HalfSize(shape Shape, radius float64, spikes int, aspectRatio, angle float64) Geometry {
	// Numerically equal angles must yield the same box on every platform,
	// so the angle is rounded before any trigonometry.
	angle = math.Trunc(angle*1000.0+0.5) / 1000.0

	rad := angle * math.Pi / 180
	s, c := math.Sin(rad), math.Cos(rad)
	shortRadius := radius / aspectRatio

	g := Geometry{
		Sin:   s,
		Cos:   c,
		XAxis: f64.Vec2{c * radius, -s * radius},
		YAxis: f64.Vec2{s * shortRadius, c * shortRadius},
	}

	x, y := g.XAxis, g.YAxis
	switch shape {
	case Square:
		g.HalfWidth = int(math.Ceil(math.Abs(x[0]) + math.Abs(y[0])))
		g.HalfHeight = int(math.Ceil(math.Abs(x[1]) + math.Abs(y[1])))
	case Diamond:
		g.HalfWidth = int(math.Ceil(max(math.Abs(x[0]), math.Abs(y[0]))))
		g.HalfHeight = int(math.Ceil(max(math.Abs(x[1]), math.Abs(y[1]))))
	default:
		g.HalfWidth = int(math.Ceil(math.Sqrt(x[0]*x[0] + y[0]*y[0])))
		g.HalfHeight = int(math.Ceil(math.Sqrt(x[1]*x[1] + y[1]*y[1])))
	}

	if spikes > 2 {
		// A star fits in the circle around its longest arm.
		hw := int(math.Ceil(math.Sqrt(radius*radius + shortRadius*shortRadius)))
		g.HalfWidth, g.HalfHeight = hw, hw
		g.YAxis = f64.Vec2{s * radius, c * radius}
	}

	return g
}

// Generate renders a brush stamp.
//
// The returned mask is (2*HalfWidth+1) x (2*HalfHeight+1) pixels with its
// offset at the central pixel. The axes are those reported by HalfSize.
// angle is in degrees.
func Generate(shape Shape, radius float64, spikes int, hardness, aspectRatio, angle float64) (*paintcore.Mask, f64.Vec2, f64.Vec2) {
	g := HalfSize(shape, radius, spikes, aspectRatio, angle)
	mask := paintcore.NewMask(g.Width(), g.Height())
	render(mask, g, shape, radius, spikes, hardness, aspectRatio)
	return mask, g.XAxis, g.YAxis
}

func render(mask *paintcore.Mask, g Geometry, shape Shape, radius float64, spikes int, hardness, aspectRatio float64) {
	lookup := LUT(radius, hardness)

	data := mask.Data()
	width := mask.Width()
	center := g.HalfHeight*width + g.HalfWidth

	s, c := g.Sin, g.Cos
	sector := 2 * math.Pi / float64(spikes)
	cs, ss := math.Cos(-sector), math.Sin(-sector)
	even := spikes%2 == 0

	// Even-spiked stamps are point-symmetric: compute y >= 0 and mirror.
	y0 := 0
	if !even {
		y0 = -g.HalfHeight
	}

	for y := y0; y <= g.HalfHeight; y++ {
		for x := -g.HalfWidth; x <= g.HalfWidth; x++ {
			fx, fy := float64(x), float64(y)
			tx := c*fx - s*fy
			ty := math.Abs(s*fx + c*fy)

			if spikes > 2 {
				for a := math.Atan2(ty, tx); a > math.Pi/float64(spikes); a -= sector {
					tx, ty = cs*tx-ss*ty, ss*tx+cs*ty
				}
			}

			ty *= aspectRatio

			var d float64
			switch shape {
			case Square:
				d = max(math.Abs(tx), math.Abs(ty))
			case Diamond:
				d = math.Abs(tx) + math.Abs(ty)
			default:
				d = math.Sqrt(tx*tx + ty*ty)
			}

			var a byte
			if d < radius+1 {
				a = lookup[int(math.RoundToEven(d*Oversampling))]
			}

			data[center+y*width+x] = a
			if even {
				data[center-y*width-x] = a
			}
		}
	}
}
