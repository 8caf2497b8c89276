package huesat

import (
	"github.com/gogpu/paintcore"
)

// Filter applies a hue/saturation configuration to pixels.
// It holds a copy of the configuration and is safe for concurrent use.
type Filter struct {
	cfg Config
}

// NewFilter returns a filter for a snapshot of cfg.
func NewFilter(cfg *Config) *Filter {
	return &Filter{cfg: *cfg}
}

// Process implements paintcore.PointFilter.
func (f *Filter) Process(src, dst []float32) {
	for i := 0; i+3 < len(src); i += 4 {
		out := f.cfg.Process(rgbaAt(src, i))
		dst[i+0] = float32(out.R)
		dst[i+1] = float32(out.G)
		dst[i+2] = float32(out.B)
		dst[i+3] = src[i+3]
	}
}

func rgbaAt(buf []float32, i int) paintcore.RGBA {
	return paintcore.RGBA{
		R: float64(buf[i+0]),
		G: float64(buf[i+1]),
		B: float64(buf[i+2]),
		A: float64(buf[i+3]),
	}
}
