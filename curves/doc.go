// Package curves implements tone curves: a control-point curve sampled into
// a 256-entry table, a five-channel curves configuration and the matching
// per-pixel filter.
//
// A Smooth curve interpolates its control points with cubic Bézier
// segments whose tangents follow the neighbouring points; a Free curve is
// edited sample by sample. Either way the table maps normalized input to
// normalized output and is evaluated with linear interpolation by MapValue.
//
// The filter applies the per-channel curve to red, green, blue and alpha,
// then the Value curve to red, green and blue only:
//
//	cfg := curves.NewConfig()
//	cfg.Curve(paintcore.ChannelValue).SetPoint(8, 0.5, 0.6)
//	err := paintcore.ApplyFilter(src, dst, curves.NewFilter(cfg))
package curves
