package brush

import (
	"errors"
	"sync"
	"testing"
)

func newTestBrush(t *testing.T) *Generated {
	t.Helper()
	b, err := New("test", Circle, 5, 2, 0, 1, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return b
}

func TestNewEmptyName(t *testing.T) {
	_, err := New("", Circle, 5, 2, 0, 1, 0)
	if !errors.Is(err, ErrEmptyName) {
		t.Errorf("New(\"\") error = %v, want ErrEmptyName", err)
	}
}

func TestNewClampsParameters(t *testing.T) {
	b, err := New("wild", Shape(42), -3, 99, 7, 0.1, -190)
	if err != nil {
		t.Fatal(err)
	}
	want := Parameters{Shape: Circle, Radius: 0, Spikes: MaxSpikes, Hardness: 1, AspectRatio: 1, Angle: 10}
	if got := b.Parameters(); got != want {
		t.Errorf("Parameters = %+v, want %+v", got, want)
	}
	if b.Spacing() != DefaultSpacing {
		t.Errorf("Spacing = %v, want %v", b.Spacing(), DefaultSpacing)
	}
}

func TestSettersClamp(t *testing.T) {
	b := newTestBrush(t)

	floatTests := []struct {
		name string
		set  func(float64) float64
		in   float64
		want float64
	}{
		{"radius high", b.SetRadius, 50000, MaxRadius},
		{"radius low", b.SetRadius, -1, 0},
		{"radius ok", b.SetRadius, 12.5, 12.5},
		{"hardness high", b.SetHardness, 1.5, 1},
		{"hardness low", b.SetHardness, -0.2, 0},
		{"aspect low", b.SetAspectRatio, 0.5, 1},
		{"aspect high", b.SetAspectRatio, 2000, 1000},
		{"aspect ok", b.SetAspectRatio, 3.25, 3.25},
	}
	for _, tt := range floatTests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.set(tt.in); got != tt.want {
				t.Errorf("set(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	for _, tt := range []struct{ in, want int }{{1, 2}, {25, 20}, {7, 7}} {
		if got := b.SetSpikes(tt.in); got != tt.want {
			t.Errorf("SetSpikes(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}

	if got := b.SetShape(Diamond); got != Diamond {
		t.Errorf("SetShape(Diamond) = %v", got)
	}
	if got := b.SetShape(Shape(-1)); got != Diamond {
		t.Errorf("SetShape(invalid) = %v, want unchanged Diamond", got)
	}
}

func TestFoldAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{45, 45},
		{180, 180},
		{190, 10},
		{370, 10},
		{-30, 30},
		{-190, 10},
		{-180, 0},
	}
	for _, tt := range tests {
		if got := FoldAngle(tt.in); got != tt.want {
			t.Errorf("FoldAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}

	b := newTestBrush(t)
	if got := b.SetAngle(-190); got != 10 || b.Angle() != 10 {
		t.Errorf("SetAngle(-190) = %v, Angle() = %v, want 10", got, b.Angle())
	}
}

func TestMaskCaching(t *testing.T) {
	b := newTestBrush(t)
	if !b.Dirty() {
		t.Fatal("new brush should be dirty")
	}

	m1 := b.Mask()
	if b.Dirty() {
		t.Fatal("brush dirty after Mask")
	}
	if m2 := b.Mask(); m2 != m1 {
		t.Error("Mask without changes returned a different stamp")
	}

	// Setting the same value must not invalidate the cache.
	b.SetRadius(5)
	b.SetHardness(0)
	if b.Dirty() {
		t.Error("no-op setter marked brush dirty")
	}

	before := m1.Clone()
	b.SetRadius(9)
	if !b.Dirty() {
		t.Fatal("changing radius did not mark brush dirty")
	}
	m3 := b.Mask()
	if m3 == m1 {
		t.Fatal("changed brush returned the stale stamp")
	}
	if m3.Width() != 19 || m3.Height() != 19 {
		t.Errorf("regenerated size = %dx%d, want 19x19", m3.Width(), m3.Height())
	}

	for i, v := range m1.Data() {
		if before.Data()[i] != v {
			t.Fatalf("previously returned mask was modified at %d", i)
		}
	}
}

func TestMaskMatchesGenerate(t *testing.T) {
	b, err := New("star", Square, 8, 5, 0.3, 2, 20)
	if err != nil {
		t.Fatal(err)
	}
	want, wx, wy := Generate(Square, 8, 5, 0.3, 2, 20)
	got := b.Mask()
	if got.Width() != want.Width() || got.Height() != want.Height() {
		t.Fatalf("size %dx%d, want %dx%d", got.Width(), got.Height(), want.Width(), want.Height())
	}
	for i := range want.Data() {
		if got.Data()[i] != want.Data()[i] {
			t.Fatalf("pixel %d differs", i)
		}
	}
	x, y := b.Axes()
	if x != wx || y != wy {
		t.Errorf("Axes = %v %v, want %v %v", x, y, wx, wy)
	}
	if g := b.HalfSize(); g.Width() != want.Width() || g.Height() != want.Height() {
		t.Errorf("HalfSize box %dx%d", g.Width(), g.Height())
	}
}

func TestDuplicateIndependent(t *testing.T) {
	b := newTestBrush(t)
	d := b.Duplicate()
	if d.Name() != b.Name() || d.Parameters() != b.Parameters() {
		t.Fatalf("duplicate differs: %+v vs %+v", d.Parameters(), b.Parameters())
	}
	d.SetRadius(20)
	if b.Radius() != 5 {
		t.Errorf("original radius changed to %v", b.Radius())
	}
}

func TestGeneratedConcurrentAccess(t *testing.T) {
	b := newTestBrush(t)
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 20 {
				if i%2 == 0 {
					b.SetRadius(float64(3 + j%4))
				}
				m := b.Mask()
				if m.Width()%2 != 1 {
					t.Errorf("even width %d", m.Width())
				}
			}
		}()
	}
	wg.Wait()
}
