// Package histogram computes per-channel 256-bin histograms of pixmaps.
//
// Bins are indexed by paintcore.Channel: Value (the per-pixel maximum of
// red, green and blue), Red, Green, Blue and Alpha. Color channel samples
// are weighted by pixel alpha so fully transparent pixels do not count;
// the Alpha channel counts every pixel once.
//
// Histograms feed levels auto-stretch:
//
//	h := histogram.FromPixmap(pm)
//	cfg := levels.NewConfig()
//	cfg.Stretch(h, true)
package histogram
