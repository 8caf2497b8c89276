package huesat

import (
	"github.com/gogpu/paintcore"
)

// mapHue shifts hue h (in turns) by the combined offset of r, wrapping
// into [0, 1].
func (c *Config) mapHue(r Range, h float64) float64 {
	h += (c.Ranges[AllHues].Hue + c.Ranges[r].Hue) / 2

	switch {
	case h < 0:
		return h + 1
	case h > 1:
		return h - 1
	default:
		return h
	}
}

// mapSaturation scales saturation s by the combined offset of r.
func (c *Config) mapSaturation(r Range, s float64) float64 {
	v := c.Ranges[AllHues].Saturation + c.Ranges[r].Saturation
	return paintcore.Clamp01(s * (v + 1))
}

// mapLightness darkens towards black or lightens towards white by the
// combined offset of r.
func (c *Config) mapLightness(r Range, l float64) float64 {
	v := (c.Ranges[AllHues].Lightness + c.Ranges[r].Lightness) / 2
	if v < 0 {
		return l * (v + 1)
	}
	return l + v*(1-l)
}

// MapRange maps a color through the offsets of a single range combined
// with the all-hues offsets, regardless of the color's own hue. It is
// meant for previewing a range. Alpha is preserved.
func (c *Config) MapRange(col paintcore.RGBA, r Range) paintcore.RGBA {
	if !r.Valid() {
		return col
	}
	h, s, l := col.HSL()
	return paintcore.FromHSL(c.mapHue(r, h), c.mapSaturation(r, s), c.mapLightness(r, l), col.A)
}

// sectors returns the primary range of hue h (in turns), and when h lies
// in a blend zone the secondary range and its weight.
func (c *Config) sectors(h float64) (primary, secondary Range, weight float64) {
	overlap := c.Overlap / 2
	sector := h * 6

	hue, next := 0, 0
	blend := false
	for i := range NumRanges {
		threshold := float64(i) + 0.5
		if sector < threshold+overlap {
			hue = i
			if overlap > 0 && sector > threshold-overlap {
				blend = true
				next = i + 1
				weight = (sector - threshold + overlap) / (2 * overlap)
			}
			break
		}
	}

	if hue >= 6 {
		hue = 0
		blend = false
	}
	if next >= 6 {
		next = 0
	}
	if !blend {
		weight = 0
	}

	return Range(hue + 1), Range(next + 1), weight
}

// Process maps one color through the configuration. Alpha is preserved.
func (c *Config) Process(col paintcore.RGBA) paintcore.RGBA {
	h, s, l := col.HSL()
	primary, secondary, w := c.sectors(h)

	if w > 0 {
		pw := 1 - w
		h = c.mapHue(primary, h)*pw + c.mapHue(secondary, h)*w
		s = c.mapSaturation(primary, s)*pw + c.mapSaturation(secondary, s)*w
		l = c.mapLightness(primary, l)*pw + c.mapLightness(secondary, l)*w
	} else {
		h = c.mapHue(primary, h)
		s = c.mapSaturation(primary, s)
		l = c.mapLightness(primary, l)
	}

	return paintcore.FromHSL(h, s, l, col.A)
}
