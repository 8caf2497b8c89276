package curves

import (
	"math"
	"testing"

	"github.com/gogpu/paintcore"
)

func TestFilterIdentity(t *testing.T) {
	f := NewFilter(NewConfig())
	in := []float32{0, 0.25, 0.5, 1, 0.1, 0.9, 0.33, 0.5}
	out := make([]float32, len(in))
	f.Process(in, out)
	for i := range in {
		if math.Abs(float64(out[i]-in[i])) > 1e-6 {
			t.Errorf("sample %d = %v, want %v", i, out[i], in[i])
		}
	}
}

func TestFilterValueCurveSkipsAlpha(t *testing.T) {
	cfg := NewConfig()
	value := cfg.Curve(paintcore.ChannelValue)
	value.SetType(Free)
	for i := range NumSamples {
		value.SetSample(i, 1-float64(i)/255)
	}

	f := NewFilter(cfg)
	got := f.Map(paintcore.RGBA{R: 0, G: 1, B: 0.2, A: 0.4})
	want := paintcore.RGBA{R: 1, G: 0, B: 0.8, A: 0.4}
	if math.Abs(got.R-want.R) > 1e-9 || math.Abs(got.G-want.G) > 1e-9 ||
		math.Abs(got.B-want.B) > 1e-9 || math.Abs(got.A-want.A) > 1e-9 {
		t.Errorf("Map = %+v, want %+v", got, want)
	}
}

func TestFilterChannelThenValue(t *testing.T) {
	cfg := NewConfig()
	// Red halves, Value halves again; alpha has its own curve.
	cfg.Curve(paintcore.ChannelRed).SetPoint(16, 1, 0.5)
	cfg.Curve(paintcore.ChannelValue).SetPoint(16, 1, 0.5)
	cfg.Curve(paintcore.ChannelAlpha).SetPoint(16, 1, 0.5)

	f := NewFilter(cfg)
	got := f.Map(paintcore.RGBA{R: 1, G: 1, B: 1, A: 1})
	if math.Abs(got.R-0.25) > 1e-9 {
		t.Errorf("R = %v, want 0.25", got.R)
	}
	if math.Abs(got.G-0.5) > 1e-9 {
		t.Errorf("G = %v, want 0.5", got.G)
	}
	if math.Abs(got.A-0.5) > 1e-9 {
		t.Errorf("A = %v, want 0.5 (Value curve must not apply)", got.A)
	}

	// The snapshot ignores later edits.
	cfg.Curve(paintcore.ChannelRed).Reset(true)
	if again := f.Map(paintcore.RGBA{R: 1, A: 1}); math.Abs(again.R-0.25) > 1e-9 {
		t.Errorf("filter followed config edit: R = %v", again.R)
	}
}

func TestApplyFilterMatchesMap(t *testing.T) {
	cfg := NewConfig()
	cfg.Curve(paintcore.ChannelValue).SetPoint(8, 0.5, 0.75)
	f := NewFilter(cfg)

	src := paintcore.NewPixmap(7, 50)
	for y := range 50 {
		for x := range 7 {
			v := float64(x*50+y) / 350
			src.SetPixel(x, y, paintcore.RGBA{R: v, G: 1 - v, B: v / 2, A: 1})
		}
	}
	dst := paintcore.NewPixmap(7, 50)
	if err := paintcore.ApplyFilter(src, dst, f, paintcore.WithBandHeight(4)); err != nil {
		t.Fatal(err)
	}
	for y := range 50 {
		for x := range 7 {
			want := f.Map(src.GetPixel(x, y))
			got := dst.GetPixel(x, y)
			if math.Abs(got.R-want.R) > 1e-6 || math.Abs(got.G-want.G) > 1e-6 {
				t.Fatalf("(%d,%d) = %+v, want %+v", x, y, got, want)
			}
		}
	}
}

func BenchmarkFilter(b *testing.B) {
	f := NewFilter(NewConfig())
	buf := make([]float32, 4*1024)
	b.ReportAllocs()
	for b.Loop() {
		f.Process(buf, buf)
	}
}
