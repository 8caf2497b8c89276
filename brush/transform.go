package brush

import (
	"math"

	"github.com/gogpu/paintcore"
)

// maxTransformRatio caps the aspect ratio requested through the transform
// entry points.
const maxTransformRatio = 20.0

// stampCacheSize is the number of transformed stamps kept per brush.
const stampCacheSize = 32

// stampKey identifies a rendered stamp by its resolved parameters.
type stampKey struct {
	shape    Shape
	radius   float64
	spikes   int
	hardness float64
	ratio    float64
	degrees  float64
}

// resolveTransform turns the transform overrides into concrete stamp
// parameters.
//
// aspectRatio 0 keeps the brush's own ratio. Otherwise the ratio becomes
// min(|aspectRatio|+1, 20); a negative request is the same stamp rotated by
// a quarter turn, since generated shapes are symmetric. angle is in turns
// and is added to the brush angle.
func (b *Generated) resolveTransform(scale, aspectRatio, angle float64) (p Parameters, radius, ratio, degrees float64) {
	p = b.Parameters()

	if aspectRatio == 0.0 {
		ratio = p.AspectRatio
	} else {
		ratio = min(math.Abs(aspectRatio)+1, maxTransformRatio)
		if aspectRatio < 0.0 {
			angle += 0.25
		}
	}

	radius = p.Radius * (scale / 2)
	degrees = p.Angle + 360*angle
	return p, radius, ratio, degrees
}

// TransformSize returns the stamp size TransformMask would produce for the
// same arguments, for callers that pre-allocate.
func (b *Generated) TransformSize(scale, aspectRatio, angle float64) (width, height int) {
	p, radius, ratio, degrees := b.resolveTransform(scale, aspectRatio, angle)
	g := HalfSize(p.Shape, radius, p.Spikes, ratio, degrees)
	return g.Width(), g.Height()
}

// TransformMask returns the stamp at an applied scale, aspect ratio and
// rotation (in turns), with the brush hardness multiplied by hardness.
//
// Recently used stamps are cached per brush, so repeated calls with the
// same arguments return the same mask. The returned mask must be treated
// as read-only. The brush's own Mask is not affected.
func (b *Generated) TransformMask(scale, aspectRatio, angle, hardness float64) *paintcore.Mask {
	p, radius, ratio, degrees := b.resolveTransform(scale, aspectRatio, angle)
	key := stampKey{
		shape:    p.Shape,
		radius:   radius,
		spikes:   p.Spikes,
		hardness: p.Hardness * hardness,
		ratio:    ratio,
		degrees:  degrees,
	}
	return b.stamps.GetOrCreate(key, func() *paintcore.Mask {
		mask, _, _ := Generate(key.shape, key.radius, key.spikes, key.hardness, key.ratio, key.degrees)
		return mask
	})
}
