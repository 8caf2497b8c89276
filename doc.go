// Package paintcore provides the pixel-level building blocks of a raster
// paint program: procedural brush stamps and per-pixel color adjustments.
//
// # Overview
//
// The root package holds the shared vocabulary used by the sub-packages:
//
//   - RGBA: straight-alpha float color with HSL conversion and luminance
//   - Channel: the Value, Red, Green, Blue and Alpha channel indices
//   - Mask: an 8-bit coverage stamp with a center offset
//   - Pixmap: a float RGBA image buffer
//   - PointFilter and ApplyFilter: parallel per-pixel processing
//
// The domain lives in sub-packages:
//
//   - brush: generated brush stamps and the brush resource
//   - histogram: per-channel 256-bin histograms
//   - curves: control-point tone curves
//   - levels: input/output levels with auto-stretch and color calibration
//   - huesat: hue, saturation and lightness adjustment over color ranges
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/paintcore"
//		"github.com/gogpu/paintcore/histogram"
//		"github.com/gogpu/paintcore/levels"
//	)
//
//	img, err := paintcore.LoadImage("photo.png")
//	if err != nil {
//		return err
//	}
//	h := histogram.FromPixmap(img)
//	cfg := levels.NewConfig()
//	cfg.Stretch(h, true)
//	if err := paintcore.ApplyFilter(img, img, levels.NewFilter(cfg)); err != nil {
//		return err
//	}
//	return paintcore.SaveImage("stretched.png", img)
//
// # Logging
//
// The library is silent by default. Call SetLogger with a *slog.Logger to
// receive debug output from mask generation and filter scheduling.
//
// # Value Ranges
//
// Color components, mask coverage (as 0..1 in filters) and all levels,
// curves and hue/saturation parameters are float64 values in [0, 1] unless
// documented otherwise. Out-of-range inputs are clamped, never rejected.
package paintcore

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
