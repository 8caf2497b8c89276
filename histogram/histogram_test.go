package histogram

import (
	"testing"

	"github.com/gogpu/paintcore"
)

func TestBin(t *testing.T) {
	tests := []struct {
		v    float64
		want int
	}{
		{-1, 0},
		{0, 0},
		{0.5 / 255, 1},
		{0.49 / 255, 0},
		{0.5, 128},
		{1, 255},
		{2, 255},
	}
	for _, tt := range tests {
		if got := Bin(tt.v); got != tt.want {
			t.Errorf("Bin(%v) = %d, want %d", tt.v, got, tt.want)
		}
	}
}

func TestFromPixmap(t *testing.T) {
	pm := paintcore.NewPixmap(10, 40)
	pm.Clear(paintcore.RGBA{R: 1, G: 0.5, B: 0, A: 1})
	// Ten fully transparent pixels contribute to Alpha only.
	for x := range 10 {
		pm.SetPixel(x, 0, paintcore.RGBA{R: 0.2, G: 0.2, B: 0.2, A: 0})
	}

	h := FromPixmap(pm)

	if got := h.Count(paintcore.ChannelAlpha, 0, 255); got != 400 {
		t.Errorf("alpha total = %v, want 400", got)
	}
	if got := h.Value(paintcore.ChannelAlpha, 0); got != 10 {
		t.Errorf("alpha bin 0 = %v, want 10", got)
	}
	if got := h.Value(paintcore.ChannelRed, 255); got != 390 {
		t.Errorf("red bin 255 = %v, want 390", got)
	}
	if got := h.Value(paintcore.ChannelGreen, 128); got != 390 {
		t.Errorf("green bin 128 = %v, want 390", got)
	}
	if got := h.Value(paintcore.ChannelValue, 255); got != 390 {
		t.Errorf("value bin 255 = %v, want 390", got)
	}
	if got := h.Count(paintcore.ChannelBlue, 1, 255); got != 0 {
		t.Errorf("blue above 0 = %v, want 0", got)
	}
}

func TestFromPixmapEmpty(t *testing.T) {
	h := FromPixmap(paintcore.NewPixmap(0, 0))
	if got := h.Count(paintcore.ChannelValue, 0, 255); got != 0 {
		t.Errorf("count = %v, want 0", got)
	}
	if got := h.Median(paintcore.ChannelValue, 0, 255); got != -1 {
		t.Errorf("median = %d, want -1", got)
	}
}

func TestStatistics(t *testing.T) {
	h := New()
	for _, v := range []float64{0, 0, 1} {
		h.Add(paintcore.RGBA{R: v, G: v, B: v, A: 1})
	}

	if got := h.Mean(paintcore.ChannelRed, 0, 255); got != 85 {
		t.Errorf("mean = %v, want 85", got)
	}
	if got := h.Median(paintcore.ChannelRed, 0, 255); got != 0 {
		t.Errorf("median = %d, want 0", got)
	}
	if got := h.Count(paintcore.ChannelRed, -10, 1000); got != 3 {
		t.Errorf("clamped count = %v, want 3", got)
	}
	if got := h.Value(paintcore.ChannelRGB, 0); got != 0 {
		t.Errorf("composite channel value = %v, want 0", got)
	}
}

func TestMerge(t *testing.T) {
	a, b := New(), New()
	a.Add(paintcore.Black)
	b.Add(paintcore.Black)
	b.Add(paintcore.White)
	a.Merge(b)
	if got := a.Value(paintcore.ChannelValue, 0); got != 2 {
		t.Errorf("merged bin 0 = %v, want 2", got)
	}
	if got := a.Value(paintcore.ChannelValue, 255); got != 1 {
		t.Errorf("merged bin 255 = %v, want 1", got)
	}
}
