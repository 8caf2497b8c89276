package levels

import (
	"github.com/gogpu/paintcore"
)

// Filter applies a levels configuration to pixels. Red, green and blue go
// through their own channel and then the Value channel; alpha goes through
// the Alpha channel only.
//
// A Filter holds a copy of the configuration and is safe for concurrent
// use.
type Filter struct {
	cfg Config
}

// NewFilter returns a filter for a snapshot of cfg.
func NewFilter(cfg *Config) *Filter {
	return &Filter{cfg: *cfg}
}

// Map transforms one color.
func (f *Filter) Map(c paintcore.RGBA) paintcore.RGBA {
	ch := &f.cfg.Channels
	value := ch[paintcore.ChannelValue]
	return paintcore.RGBA{
		R: value.MapInput(ch[paintcore.ChannelRed].MapInput(c.R)),
		G: value.MapInput(ch[paintcore.ChannelGreen].MapInput(c.G)),
		B: value.MapInput(ch[paintcore.ChannelBlue].MapInput(c.B)),
		A: ch[paintcore.ChannelAlpha].MapInput(c.A),
	}
}

// Process implements paintcore.PointFilter.
func (f *Filter) Process(src, dst []float32) {
	ch := &f.cfg.Channels
	value := ch[paintcore.ChannelValue]
	for i := 0; i+3 < len(src); i += 4 {
		for c := range 3 {
			v := ch[paintcore.ChannelRed+paintcore.Channel(c)].MapInput(float64(src[i+c]))
			dst[i+c] = float32(value.MapInput(v))
		}
		dst[i+3] = float32(ch[paintcore.ChannelAlpha].MapInput(float64(src[i+3])))
	}
}
