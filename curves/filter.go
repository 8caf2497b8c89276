package curves

import (
	"github.com/gogpu/paintcore"
)

// Filter applies a curves configuration to pixels.
// It holds its own copy of the tables and is safe for concurrent use.
type Filter struct {
	tables [paintcore.NumChannels][]float64
}

// NewFilter snapshots the tables of cfg. Later edits to cfg do not affect
// the filter.
func NewFilter(cfg *Config) *Filter {
	f := &Filter{}
	for i, curve := range cfg.Curves {
		f.tables[i] = curve.Samples()
	}
	return f
}

// Map transforms one color.
func (f *Filter) Map(c paintcore.RGBA) paintcore.RGBA {
	value := f.tables[paintcore.ChannelValue]
	return paintcore.RGBA{
		R: MapValue(MapValue(c.R, f.tables[paintcore.ChannelRed]), value),
		G: MapValue(MapValue(c.G, f.tables[paintcore.ChannelGreen]), value),
		B: MapValue(MapValue(c.B, f.tables[paintcore.ChannelBlue]), value),
		A: MapValue(c.A, f.tables[paintcore.ChannelAlpha]),
	}
}

// Process implements paintcore.PointFilter.
func (f *Filter) Process(src, dst []float32) {
	value := f.tables[paintcore.ChannelValue]
	for i := 0; i+3 < len(src); i += 4 {
		for ch := range 3 {
			v := MapValue(float64(src[i+ch]), f.tables[paintcore.ChannelRed+paintcore.Channel(ch)])
			dst[i+ch] = float32(MapValue(v, value))
		}
		dst[i+3] = float32(MapValue(float64(src[i+3]), f.tables[paintcore.ChannelAlpha]))
	}
}
