package histogram

import (
	"math"
	"sync"

	"github.com/gogpu/paintcore"
	"github.com/gogpu/paintcore/internal/parallel"
)

// Bins is the number of bins per channel.
const Bins = 256

// Histogram holds weighted sample counts per channel and bin.
// The zero value is an empty histogram.
type Histogram struct {
	values [paintcore.NumChannels][Bins]float64
}

// New returns an empty histogram.
func New() *Histogram {
	return &Histogram{}
}

// Bin returns the bin index of a normalized sample, clamped to [0, 255].
func Bin(v float64) int {
	i := int(math.Floor(v*255 + 0.5))
	return min(max(i, 0), Bins-1)
}

// Add records one pixel. Color channels are weighted by its alpha.
func (h *Histogram) Add(c paintcore.RGBA) {
	w := paintcore.Clamp01(c.A)
	h.values[paintcore.ChannelValue][Bin(c.Max())] += w
	h.values[paintcore.ChannelRed][Bin(c.R)] += w
	h.values[paintcore.ChannelGreen][Bin(c.G)] += w
	h.values[paintcore.ChannelBlue][Bin(c.B)] += w
	h.values[paintcore.ChannelAlpha][Bin(c.A)]++
}

// Merge adds the counts of other into h.
func (h *Histogram) Merge(other *Histogram) {
	for ch := range h.values {
		for i := range h.values[ch] {
			h.values[ch][i] += other.values[ch][i]
		}
	}
}

// Value returns the count of one bin. Out-of-range channels or bins
// report 0.
func (h *Histogram) Value(ch paintcore.Channel, bin int) float64 {
	if !ch.Valid() || bin < 0 || bin >= Bins {
		return 0
	}
	return h.values[ch][bin]
}

// Count returns the total count of bins start through end inclusive.
func (h *Histogram) Count(ch paintcore.Channel, start, end int) float64 {
	if !ch.Valid() {
		return 0
	}
	start = max(start, 0)
	end = min(end, Bins-1)

	var sum float64
	for i := start; i <= end; i++ {
		sum += h.values[ch][i]
	}
	return sum
}

// Mean returns the weighted mean bin of bins start through end, or 0 when
// the range is empty.
func (h *Histogram) Mean(ch paintcore.Channel, start, end int) float64 {
	count := h.Count(ch, start, end)
	if count == 0 {
		return 0
	}
	var sum float64
	for i := max(start, 0); i <= min(end, Bins-1); i++ {
		sum += float64(i) * h.values[ch][i]
	}
	return sum / count
}

// Median returns the first bin at which the cumulative count of bins start
// through end reaches half the total, or -1 when the range is empty.
func (h *Histogram) Median(ch paintcore.Channel, start, end int) int {
	count := h.Count(ch, start, end)
	if count == 0 {
		return -1
	}
	var sum float64
	for i := max(start, 0); i <= min(end, Bins-1); i++ {
		sum += h.values[ch][i]
		if sum*2 >= count {
			return i
		}
	}
	return min(end, Bins-1)
}

// FromPixmap computes the histogram of every pixel in pm. Rows are
// scanned in parallel bands.
func FromPixmap(pm *paintcore.Pixmap) *Histogram {
	h := New()
	if pm == nil || pm.Width() == 0 || pm.Height() == 0 {
		return h
	}

	bands := parallel.SplitRows(pm.Height(), 0)
	var pool *parallel.WorkerPool
	if len(bands) > 1 {
		pool = parallel.NewWorkerPool(0)
		defer pool.Close()
	}

	var mu sync.Mutex
	parallel.ForEachBand(pool, pm.Height(), 0, func(b parallel.Band) {
		local := New()
		for y := b.Y0; y < b.Y1; y++ {
			row := pm.Row(y)
			for i := 0; i+3 < len(row); i += 4 {
				local.Add(paintcore.RGBA{
					R: float64(row[i+0]),
					G: float64(row[i+1]),
					B: float64(row[i+2]),
					A: float64(row[i+3]),
				})
			}
		}
		mu.Lock()
		h.Merge(local)
		mu.Unlock()
	})

	return h
}
