package paintcore

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/gogpu/paintcore/internal/parallel"
)

// Filter errors.
var (
	// ErrNilFilter is returned when ApplyFilter receives a nil filter.
	ErrNilFilter = errors.New("paintcore: nil filter")

	// ErrSizeMismatch is returned when source and destination pixmaps differ in size.
	ErrSizeMismatch = errors.New("paintcore: pixmap size mismatch")
)

// PointFilter transforms straight-alpha RGBA samples one pixel at a time,
// with no dependency between pixels.
//
// Process reads len(src)/4 pixels from src and writes the same number of
// pixels to dst. src and dst have equal length and may be the same slice.
// Implementations must be safe for concurrent calls on disjoint slices.
type PointFilter interface {
	Process(src, dst []float32)
}

// PointFilterFunc adapts an ordinary per-pixel function to PointFilter.
type PointFilterFunc func(RGBA) RGBA

// Process implements PointFilter.
func (f PointFilterFunc) Process(src, dst []float32) {
	for i := 0; i+3 < len(src); i += 4 {
		out := f(RGBA{
			R: float64(src[i+0]),
			G: float64(src[i+1]),
			B: float64(src[i+2]),
			A: float64(src[i+3]),
		})
		dst[i+0] = float32(out.R)
		dst[i+1] = float32(out.G)
		dst[i+2] = float32(out.B)
		dst[i+3] = float32(out.A)
	}
}

// ApplyFilter runs f over every pixel of src, writing into dst.
// dst may be src for in-place processing.
//
// Rows are partitioned into bands which are processed concurrently; the
// result does not depend on the number of workers.
func ApplyFilter(src, dst *Pixmap, f PointFilter, opts ...FilterOption) error {
	if f == nil {
		return ErrNilFilter
	}
	if src.width != dst.width || src.height != dst.height {
		return fmt.Errorf("%w: %dx%d vs %dx%d", ErrSizeMismatch,
			src.width, src.height, dst.width, dst.height)
	}

	o := defaultFilterOptions()
	for _, opt := range opts {
		opt(&o)
	}

	workers := o.workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	bands := parallel.SplitRows(src.height, o.bandHeight)

	Logger().Debug("apply filter",
		"filter", fmt.Sprintf("%T", f),
		"width", src.width,
		"height", src.height,
		"bands", len(bands),
		"workers", workers)

	var pool *parallel.WorkerPool
	if workers > 1 && len(bands) > 1 {
		pool = parallel.NewWorkerPool(min(workers, len(bands)))
		defer pool.Close()
	}

	stride := src.width * 4
	parallel.ForEachBand(pool, src.height, o.bandHeight, func(b parallel.Band) {
		lo, hi := b.Y0*stride, b.Y1*stride
		f.Process(src.data[lo:hi], dst.data[lo:hi])
	})

	return nil
}

// BlendMask limits an adjustment to the area covered by m. Every pixel of
// dst becomes orig.Lerp(dst, coverage), where coverage is the mask value
// scaled to [0, 1]: 255 keeps the adjusted pixel, 0 restores the original.
func BlendMask(dst, orig *Pixmap, m *Mask) error {
	if dst.width != orig.width || dst.height != orig.height ||
		dst.width != m.Width() || dst.height != m.Height() {
		return fmt.Errorf("%w: %dx%d pixmap, %dx%d original, %dx%d mask", ErrSizeMismatch,
			dst.width, dst.height, orig.width, orig.height, m.Width(), m.Height())
	}

	for y := range dst.height {
		for x := range dst.width {
			cov := m.At(x, y)
			if cov == 255 {
				continue
			}
			dst.SetPixel(x, y, orig.GetPixel(x, y).Lerp(dst.GetPixel(x, y), float64(cov)/255))
		}
	}
	return nil
}
