// Package levels implements the levels tone adjustment: a per-channel
// input range, gamma and output range for the Value, Red, Green, Blue and
// Alpha channels.
//
// Besides direct editing, a configuration can be derived from a histogram
// (Stretch), calibrated from sampled black, gray and white colors
// (AdjustByColors), converted to an equivalent curves configuration
// (ToCurves) and stored in the legacy text format (LoadLegacy, SaveLegacy).
package levels
