package huesat

import (
	"math"
	"testing"

	"github.com/gogpu/paintcore"
)

func TestFilterMatchesProcess(t *testing.T) {
	cfg := NewConfig()
	cfg.SetRange(AllHues, RangeParams{Hue: 0.2})
	cfg.SetRange(Blue, RangeParams{Saturation: 0.5, Lightness: -0.3})
	cfg.SetOverlap(0.6)
	f := NewFilter(cfg)

	src := paintcore.NewPixmap(24, 40)
	for y := range 40 {
		for x := range 24 {
			src.SetPixel(x, y, paintcore.FromHSL(float64(x)/24, float64(y)/39, 0.5, float64(y)/40))
		}
	}
	dst := paintcore.NewPixmap(24, 40)
	if err := paintcore.ApplyFilter(src, dst, f); err != nil {
		t.Fatal(err)
	}

	for y := range 40 {
		for x := range 24 {
			in := src.GetPixel(x, y)
			want := cfg.Process(in)
			got := dst.GetPixel(x, y)
			if !colorsClose(got, want, 1e-6) {
				t.Fatalf("(%d,%d) = %+v, want %+v", x, y, got, want)
			}
			if got.A != in.A {
				t.Fatalf("(%d,%d) alpha %v, want %v", x, y, got.A, in.A)
			}
		}
	}
}

func TestFilterSnapshot(t *testing.T) {
	cfg := NewConfig()
	f := NewFilter(cfg)
	cfg.SetRange(AllHues, RangeParams{Lightness: -1})

	buf := []float32{1, 0, 0, 1}
	f.Process(buf, buf)
	if math.Abs(float64(buf[0])-1) > 1e-6 {
		t.Errorf("filter followed config edit: %v", buf)
	}
}

func BenchmarkFilter(b *testing.B) {
	cfg := NewConfig()
	cfg.SetRange(AllHues, RangeParams{Hue: 0.1, Saturation: 0.2})
	cfg.SetOverlap(0.5)
	f := NewFilter(cfg)

	buf := make([]float32, 4*1024)
	for i := range buf {
		buf[i] = float32(i%97) / 96
	}
	b.ReportAllocs()
	for b.Loop() {
		f.Process(buf, buf)
	}
}
