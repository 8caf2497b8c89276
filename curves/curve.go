package curves

import (
	"math"
	"slices"
)

// Table sizes.
const (
	NumPoints  = 17
	NumSamples = 256
)

// Type selects how the sample table is produced.
type Type int

const (
	// Smooth curves are computed from their control points.
	Smooth Type = iota
	// Free curves are edited directly through SetSample.
	Free
)

// String returns the type name.
func (t Type) String() string {
	switch t {
	case Smooth:
		return "smooth"
	case Free:
		return "free"
	default:
		return "unknown"
	}
}

// Point is a curve control point. A negative X marks an unused slot.
type Point struct {
	X, Y float64
}

// unused is the value of an empty control point slot.
var unused = Point{X: -1, Y: -1}

// Used reports whether the slot holds a control point.
func (p Point) Used() bool { return p.X >= 0 }

// Curve is a tone curve with NumPoints control point slots and a
// NumSamples-entry table.
//
// The table of a Smooth curve is recomputed lazily after control points
// change. A Curve is not safe for concurrent use; filters take a snapshot
// of the table when they are created.
type Curve struct {
	typ     Type
	points  [NumPoints]Point
	samples [NumSamples]float64
	dirty   bool
}

// New returns an identity curve: control points at (0, 0) and (1, 1).
func New() *Curve {
	c := &Curve{}
	c.Reset(true)
	return c
}

// Reset restores the identity table and the two end points. If resetType
// is set the curve also becomes Smooth.
func (c *Curve) Reset(resetType bool) {
	for i := range c.samples {
		c.samples[i] = float64(i) / (NumSamples - 1)
	}
	for i := range c.points {
		c.points[i] = unused
	}
	c.points[0] = Point{X: 0, Y: 0}
	c.points[NumPoints-1] = Point{X: 1, Y: 1}

	if resetType {
		c.typ = Smooth
	}
	c.dirty = false
}

// Type returns the curve type.
func (c *Curve) Type() Type { return c.typ }

// SetType switches the curve type. Switching a Free curve to Smooth picks
// nine evenly spaced samples as control points and recomputes the table.
func (c *Curve) SetType(t Type) {
	if t == c.typ || (t != Smooth && t != Free) {
		return
	}

	if t == Smooth {
		for i := range c.points {
			c.points[i] = unused
		}
		for i := 0; i < NumPoints; i += 2 {
			index := min(i/2*32, NumSamples-1)
			c.points[i] = Point{
				X: float64(index) / (NumSamples - 1),
				Y: c.samples[index],
			}
		}
		c.dirty = true
	}
	c.typ = t
}

// NumPoints returns the number of control point slots.
func (c *Curve) NumPoints() int { return NumPoints }

// Point returns control point i. Unused slots and out-of-range indices
// report (-1, -1).
func (c *Curve) Point(i int) Point {
	if i < 0 || i >= NumPoints {
		return unused
	}
	return c.points[i]
}

// SetPoint places control point i. Coordinates are clamped to [0, 1]; a
// negative x clears the slot. Out-of-range indices are ignored.
func (c *Curve) SetPoint(i int, x, y float64) {
	if i < 0 || i >= NumPoints {
		return
	}
	if x < 0 {
		c.points[i] = unused
	} else {
		c.points[i] = Point{X: min(x, 1), Y: min(max(y, 0), 1)}
	}
	c.dirty = true
}

// ClearPoint removes control point i.
func (c *Curve) ClearPoint(i int) {
	c.SetPoint(i, -1, -1)
}

// ClosestPoint returns the index of the used control point nearest to x,
// or -1 if the curve has no control points.
func (c *Curve) ClosestPoint(x float64) int {
	closest, best := -1, math.Inf(1)
	for i, p := range c.points {
		if !p.Used() {
			continue
		}
		if d := math.Abs(x - p.X); d < best {
			closest, best = i, d
		}
	}
	return closest
}

// SetSample sets table entry i of a Free curve. Smooth curves ignore it.
func (c *Curve) SetSample(i int, y float64) {
	if c.typ != Free || i < 0 || i >= NumSamples {
		return
	}
	c.samples[i] = min(max(y, 0), 1)
}

// Samples returns a copy of the sample table.
func (c *Curve) Samples() []float64 {
	c.calculate()
	return slices.Clone(c.samples[:])
}

// Map evaluates the curve at v.
func (c *Curve) Map(v float64) float64 {
	c.calculate()
	return MapValue(v, c.samples[:])
}

// IsIdentity reports whether the table maps every sample to itself.
func (c *Curve) IsIdentity() bool {
	c.calculate()
	for i, s := range c.samples {
		if math.Abs(s-float64(i)/(NumSamples-1)) > 1e-9 {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the curve.
func (c *Curve) Clone() *Curve {
	d := *c
	return &d
}

// Equal reports whether two curves have the same type and shape: the same
// control points for Smooth curves, the same table for Free curves.
func (c *Curve) Equal(other *Curve) bool {
	if c.typ != other.typ {
		return false
	}
	if c.typ == Smooth {
		return c.points == other.points
	}
	return c.samples == other.samples
}

// MapValue evaluates a sample table at v with linear interpolation between
// neighbouring entries. Inputs below 0 (and NaN) map to the first entry and
// inputs at or above 1 map to the last.
func MapValue(v float64, samples []float64) float64 {
	last := len(samples) - 1
	switch {
	case !(v >= 0):
		return samples[0]
	case v >= 1:
		return samples[last]
	}

	pos := v * float64(last)
	i := int(math.Floor(pos))
	f := pos - float64(i)
	return (1-f)*samples[i] + f*samples[i+1]
}

// sampleIndex returns the table index of a normalized x coordinate.
func sampleIndex(x float64) int {
	return int(x*(NumSamples-1) + 0.5)
}
