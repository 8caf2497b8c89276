package parallel

// DefaultBandHeight is the number of rows per band when the caller does not
// choose one. 16 rows of a 4K float RGBA image is roughly 1MB of samples.
const DefaultBandHeight = 16

// Band is a half-open range of rows [Y0, Y1).
type Band struct {
	Y0, Y1 int
}

// Rows returns the number of rows in the band.
func (b Band) Rows() int {
	return b.Y1 - b.Y0
}

// SplitRows partitions height rows into consecutive bands of at most
// bandHeight rows. The last band may be shorter. bandHeight <= 0 selects
// DefaultBandHeight.
func SplitRows(height, bandHeight int) []Band {
	if height <= 0 {
		return nil
	}
	if bandHeight <= 0 {
		bandHeight = DefaultBandHeight
	}

	bands := make([]Band, 0, (height+bandHeight-1)/bandHeight)
	for y := 0; y < height; y += bandHeight {
		bands = append(bands, Band{Y0: y, Y1: min(y+bandHeight, height)})
	}
	return bands
}

// ForEachBand runs fn for every band of the row range. With a nil pool, or a
// single band, the bands run sequentially on the calling goroutine.
func ForEachBand(pool *WorkerPool, height, bandHeight int, fn func(Band)) {
	bands := SplitRows(height, bandHeight)
	if pool == nil || len(bands) < 2 {
		for _, b := range bands {
			fn(b)
		}
		return
	}

	work := make([]func(), len(bands))
	for i, b := range bands {
		work[i] = func() { fn(b) }
	}
	pool.ExecuteAll(work)
}
