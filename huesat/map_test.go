package huesat

import (
	"math"
	"testing"

	"github.com/gogpu/paintcore"
)

func colorsClose(a, b paintcore.RGBA, tol float64) bool {
	return math.Abs(a.R-b.R) <= tol && math.Abs(a.G-b.G) <= tol &&
		math.Abs(a.B-b.B) <= tol && math.Abs(a.A-b.A) <= tol
}

func TestProcessIdentity(t *testing.T) {
	c := NewConfig()
	for r := 0.0; r <= 1; r += 0.125 {
		for g := 0.0; g <= 1; g += 0.25 {
			for b := 0.0; b <= 1; b += 0.2 {
				in := paintcore.RGBA{R: r, G: g, B: b, A: 0.6}
				if out := c.Process(in); !colorsClose(out, in, 1e-9) {
					t.Fatalf("Process(%+v) = %+v", in, out)
				}
			}
		}
	}
}

func TestProcess(t *testing.T) {
	tests := []struct {
		name  string
		setup func(c *Config)
		in    paintcore.RGBA
		want  paintcore.RGBA
	}{
		{
			name:  "all hues half turn",
			setup: func(c *Config) { c.SetRange(AllHues, RangeParams{Hue: 1}) },
			in:    paintcore.Red,
			want:  paintcore.Cyan,
		},
		{
			name:  "red desaturated",
			setup: func(c *Config) { c.SetRange(Red, RangeParams{Saturation: -1}) },
			in:    paintcore.Red,
			want:  paintcore.RGBA{R: 0.5, G: 0.5, B: 0.5, A: 1},
		},
		{
			name:  "red range leaves green alone",
			setup: func(c *Config) { c.SetRange(Red, RangeParams{Saturation: -1}) },
			in:    paintcore.Green,
			want:  paintcore.Green,
		},
		{
			name:  "lighten",
			setup: func(c *Config) { c.SetRange(AllHues, RangeParams{Lightness: 1}) },
			in:    paintcore.Red,
			want:  paintcore.RGBA{R: 1, G: 0.5, B: 0.5, A: 1},
		},
		{
			name:  "darken",
			setup: func(c *Config) { c.SetRange(AllHues, RangeParams{Lightness: -1}) },
			in:    paintcore.Red,
			want:  paintcore.RGBA{R: 0.5, G: 0, B: 0, A: 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewConfig()
			tt.setup(c)
			got := c.Process(tt.in)
			if !colorsClose(got, tt.want, 1e-9) {
				t.Errorf("Process(%+v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestProcessKeepsAlpha(t *testing.T) {
	c := NewConfig()
	c.SetRange(AllHues, RangeParams{Hue: 0.5, Lightness: 0.3})
	if got := c.Process(paintcore.RGBA{R: 0.2, G: 0.4, B: 0.9, A: 0.125}); got.A != 0.125 {
		t.Errorf("alpha = %v, want 0.125", got.A)
	}
}

func TestSectors(t *testing.T) {
	tests := []struct {
		name      string
		overlap   float64
		hue       float64 // turns
		primary   Range
		secondary Range
		weight    float64
	}{
		{"red", 0, 0, Red, Red, 0},
		{"yellow", 0, 1.0 / 6, Yellow, Red, 0},
		{"magenta", 0, 5.0 / 6, Magenta, Red, 0},
		{"wraps to red", 0, 0.95, Red, Red, 0},
		{"red-yellow midpoint", 1, 1.0 / 12, Red, Yellow, 0.5},
		{"magenta-red midpoint", 1, 11.0 / 12, Magenta, Red, 0.5},
		{"quarter into zone", 0.4, (0.5 - 0.1) / 6, Red, Yellow, 0.25},
		{"outside narrow zone", 0.2, 0.25 / 6, Red, Red, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewConfig()
			c.SetOverlap(tt.overlap)
			p, s, w := c.sectors(tt.hue)
			if p != tt.primary || math.Abs(w-tt.weight) > 1e-9 {
				t.Errorf("sectors(%v) = %v, %v, %v; want %v, %v, %v", tt.hue, p, s, w, tt.primary, tt.secondary, tt.weight)
			}
			if tt.weight > 0 && s != tt.secondary {
				t.Errorf("secondary = %v, want %v", s, tt.secondary)
			}
		})
	}
}

func TestOverlapBlends(t *testing.T) {
	c := NewConfig()
	c.SetRange(Yellow, RangeParams{Lightness: -1})
	c.SetOverlap(1)

	// Orange sits on the red/yellow boundary and is half darkened.
	orange := paintcore.FromHSL(1.0/12, 1, 0.5, 1)
	_, _, l := c.Process(orange).HSL()
	if math.Abs(l-0.375) > 1e-9 {
		t.Errorf("blended lightness = %v, want 0.375", l)
	}

	c.SetOverlap(0)
	_, _, l = c.Process(orange).HSL()
	if math.Abs(l-0.5) > 1e-9 && math.Abs(l-0.25) > 1e-9 {
		t.Errorf("unblended lightness = %v, want one sector's result", l)
	}
}

func TestMapRange(t *testing.T) {
	c := NewConfig()
	c.SetRange(Red, RangeParams{Saturation: -1})

	// The preview ignores the color's own hue.
	got := c.MapRange(paintcore.Green, Red)
	want := paintcore.RGBA{R: 0.5, G: 0.5, B: 0.5, A: 1}
	if !colorsClose(got, want, 1e-9) {
		t.Errorf("MapRange(green, red) = %+v, want %+v", got, want)
	}

	if got := c.MapRange(paintcore.Green, Green); !colorsClose(got, paintcore.Green, 1e-9) {
		t.Errorf("MapRange(green, green) = %+v", got)
	}
}
