package brush

import (
	"errors"
	"math"
	"sync"

	"golang.org/x/image/math/f64"

	"github.com/gogpu/paintcore"
	"github.com/gogpu/paintcore/internal/cache"
)

// ErrEmptyName is returned when a generated brush is created without a name.
var ErrEmptyName = errors.New("brush: empty name")

// Parameter limits. Setters clamp into these ranges.
const (
	MaxRadius      = 32767.0
	MinSpikes      = 2
	MaxSpikes      = 20
	MinAspectRatio = 1.0
	MaxAspectRatio = 1000.0

	// DefaultSpacing is the stroke spacing, in percent of the brush size.
	DefaultSpacing = 20.0
)

// Parameters are the scalar inputs of a generated brush.
type Parameters struct {
	Shape       Shape
	Radius      float64
	Spikes      int
	Hardness    float64
	AspectRatio float64
	Angle       float64 // degrees
}

// DefaultParameters returns a 5 pixel soft round brush.
func DefaultParameters() Parameters {
	return Parameters{
		Shape:       Circle,
		Radius:      5.0,
		Spikes:      2,
		Hardness:    0.0,
		AspectRatio: 1.0,
		Angle:       0.0,
	}
}

// Generated is a named procedural brush.
//
// The stamp returned by Mask is derived from the parameters and cached. Any
// setter that changes a parameter marks the cache dirty; the next Mask call
// renders a fresh stamp, replacing the previous one entirely. Masks handed
// out earlier are never modified.
//
// Generated is safe for concurrent use.
type Generated struct {
	mu sync.Mutex

	name    string
	spacing float64
	params  Parameters

	dirty bool
	mask  *paintcore.Mask
	xAxis f64.Vec2
	yAxis f64.Vec2

	stamps *cache.LRU[stampKey, *paintcore.Mask]
}

// New creates a generated brush. Out-of-range parameters are clamped the
// same way the setters clamp them.
func New(name string, shape Shape, radius float64, spikes int, hardness, aspectRatio, angle float64) (*Generated, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	b := &Generated{
		name:    name,
		spacing: DefaultSpacing,
		params:  DefaultParameters(),
		dirty:   true,
		stamps:  cache.New[stampKey, *paintcore.Mask](stampCacheSize),
	}
	b.SetShape(shape)
	b.SetRadius(radius)
	b.SetSpikes(spikes)
	b.SetHardness(hardness)
	b.SetAspectRatio(aspectRatio)
	b.SetAngle(angle)

	return b, nil
}

// NewFromParameters creates a generated brush from a parameter set.
func NewFromParameters(name string, p Parameters) (*Generated, error) {
	return New(name, p.Shape, p.Radius, p.Spikes, p.Hardness, p.AspectRatio, p.Angle)
}

// Name returns the brush name.
func (b *Generated) Name() string { return b.name }

// Spacing returns the stroke spacing in percent of the brush size.
func (b *Generated) Spacing() float64 { return b.spacing }

// Parameters returns a snapshot of the current parameters.
func (b *Generated) Parameters() Parameters {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.params
}

// Duplicate returns an independent brush with the same name and parameters.
func (b *Generated) Duplicate() *Generated {
	p := b.Parameters()
	d, _ := NewFromParameters(b.name, p) // name is known to be non-empty
	d.spacing = b.spacing
	return d
}

// update applies fn to the parameters under the lock and marks the mask
// dirty if anything changed.
func (b *Generated) update(fn func(p *Parameters)) Parameters {
	b.mu.Lock()
	defer b.mu.Unlock()

	before := b.params
	fn(&b.params)
	if b.params != before {
		b.dirty = true
	}
	return b.params
}

// SetShape sets the brush shape and returns the stored shape.
// Unknown shapes leave the brush unchanged.
func (b *Generated) SetShape(shape Shape) Shape {
	return b.update(func(p *Parameters) {
		if shape.Valid() {
			p.Shape = shape
		}
	}).Shape
}

// SetRadius sets the radius, clamped to [0, MaxRadius], and returns the stored value.
func (b *Generated) SetRadius(radius float64) float64 {
	return b.update(func(p *Parameters) {
		p.Radius = clamp(radius, 0, MaxRadius)
	}).Radius
}

// SetSpikes sets the spike count, clamped to [MinSpikes, MaxSpikes], and
// returns the stored value.
func (b *Generated) SetSpikes(spikes int) int {
	return b.update(func(p *Parameters) {
		p.Spikes = min(max(spikes, MinSpikes), MaxSpikes)
	}).Spikes
}

// SetHardness sets the hardness, clamped to [0, 1], and returns the stored value.
func (b *Generated) SetHardness(hardness float64) float64 {
	return b.update(func(p *Parameters) {
		p.Hardness = clamp(hardness, 0, 1)
	}).Hardness
}

// SetAspectRatio sets the aspect ratio, clamped to [MinAspectRatio,
// MaxAspectRatio], and returns the stored value.
func (b *Generated) SetAspectRatio(ratio float64) float64 {
	return b.update(func(p *Parameters) {
		p.AspectRatio = clamp(ratio, MinAspectRatio, MaxAspectRatio)
	}).AspectRatio
}

// SetAngle sets the angle in degrees and returns the stored value.
// Negative angles fold to -fmod(angle, 180); angles above 180 fold to
// fmod(angle, 180).
func (b *Generated) SetAngle(angle float64) float64 {
	return b.update(func(p *Parameters) {
		p.Angle = FoldAngle(angle)
	}).Angle
}

// FoldAngle applies the angle folding used by SetAngle.
func FoldAngle(angle float64) float64 {
	switch {
	case angle < 0:
		return -math.Mod(angle, 180)
	case angle > 180:
		return math.Mod(angle, 180)
	default:
		return angle
	}
}

// Shape returns the brush shape.
func (b *Generated) Shape() Shape { return b.Parameters().Shape }

// Radius returns the brush radius.
func (b *Generated) Radius() float64 { return b.Parameters().Radius }

// Spikes returns the number of spikes.
func (b *Generated) Spikes() int { return b.Parameters().Spikes }

// Hardness returns the brush hardness.
func (b *Generated) Hardness() float64 { return b.Parameters().Hardness }

// AspectRatio returns the brush aspect ratio.
func (b *Generated) AspectRatio() float64 { return b.Parameters().AspectRatio }

// Angle returns the brush angle in degrees.
func (b *Generated) Angle() float64 { return b.Parameters().Angle }

// Dirty reports whether the next Mask call will render a new stamp.
func (b *Generated) Dirty() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.dirty
}

// ensureFresh re-renders the stamp if a parameter changed. b.mu must be held.
func (b *Generated) ensureFresh() {
	if !b.dirty && b.mask != nil {
		return
	}

	p := b.params
	b.mask, b.xAxis, b.yAxis = Generate(p.Shape, p.Radius, p.Spikes, p.Hardness, p.AspectRatio, p.Angle)
	b.dirty = false

	paintcore.Logger().Debug("brush mask regenerated",
		"brush", b.name,
		"shape", p.Shape.String(),
		"width", b.mask.Width(),
		"height", b.mask.Height())
}

// Mask returns the brush stamp, rendering it first if the parameters changed.
// The returned mask must be treated as read-only.
func (b *Generated) Mask() *paintcore.Mask {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.ensureFresh()
	return b.mask
}

// Axes returns the rotated major and minor axes of the current stamp.
func (b *Generated) Axes() (xAxis, yAxis f64.Vec2) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.ensureFresh()
	return b.xAxis, b.yAxis
}

// HalfSize returns the stamp geometry of the current parameters.
func (b *Generated) HalfSize() Geometry {
	p := b.Parameters()
	return HalfSize(p.Shape, p.Radius, p.Spikes, p.AspectRatio, p.Angle)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
