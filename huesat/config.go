package huesat

import (
	"strings"

	"github.com/gogpu/paintcore"
)

// Range selects the hues an adjustment applies to.
type Range int

// Hue ranges. The six sectors are centered on multiples of 60 degrees.
const (
	AllHues Range = iota
	Red
	Yellow
	Green
	Cyan
	Blue
	Magenta

	// NumRanges is the number of ranges, AllHues included.
	NumRanges = 7
)

var rangeNames = [NumRanges]string{"all", "red", "yellow", "green", "cyan", "blue", "magenta"}

// String returns the lowercase range name.
func (r Range) String() string {
	if !r.Valid() {
		return "unknown"
	}
	return rangeNames[r]
}

// Valid reports whether r names a range.
func (r Range) Valid() bool {
	return r >= AllHues && r < NumRanges
}

// ParseRange returns the range with the given name, ignoring case.
func ParseRange(name string) (Range, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range rangeNames {
		if n == name {
			return Range(i), true
		}
	}
	return AllHues, false
}

// RangeParams are the offsets of one range, each in [-1, 1].
// A hue offset of 1 rotates by half a turn when applied alone.
type RangeParams struct {
	Hue        float64
	Saturation float64
	Lightness  float64
}

// Clamped returns p with every offset clamped to [-1, 1].
func (p RangeParams) Clamped() RangeParams {
	return RangeParams{
		Hue:        clampUnit(p.Hue),
		Saturation: clampUnit(p.Saturation),
		Lightness:  clampUnit(p.Lightness),
	}
}

func clampUnit(v float64) float64 {
	return min(max(v, -1), 1)
}

// Config is a hue/saturation configuration. The zero value is the identity.
type Config struct {
	Ranges [NumRanges]RangeParams

	// Overlap in [0, 1] is the width, in sectors, of the blend zone around
	// each sector boundary.
	Overlap float64
}

// NewConfig returns the identity configuration.
func NewConfig() *Config {
	return &Config{}
}

// Reset restores the identity configuration.
func (c *Config) Reset() {
	*c = Config{}
}

// ResetRange clears the offsets of one range.
func (c *Config) ResetRange(r Range) {
	if r.Valid() {
		c.Ranges[r] = RangeParams{}
	}
}

// Range returns the offsets of a range. Invalid ranges report zero offsets.
func (c *Config) Range(r Range) RangeParams {
	if !r.Valid() {
		return RangeParams{}
	}
	return c.Ranges[r]
}

// SetRange stores clamped offsets for a range and returns the stored value.
func (c *Config) SetRange(r Range, p RangeParams) RangeParams {
	if !r.Valid() {
		return RangeParams{}
	}
	c.Ranges[r] = p.Clamped()
	return c.Ranges[r]
}

// SetOverlap stores the overlap clamped to [0, 1] and returns it.
func (c *Config) SetOverlap(overlap float64) float64 {
	c.Overlap = paintcore.Clamp01(overlap)
	return c.Overlap
}

// Copy returns an independent copy of c.
func (c *Config) Copy() *Config {
	d := *c
	return &d
}

// Equal reports whether both configurations hold the same settings.
func (c *Config) Equal(other *Config) bool {
	return *c == *other
}

// IsIdentity reports whether every offset is zero.
func (c *Config) IsIdentity() bool {
	return c.Ranges == [NumRanges]RangeParams{}
}
