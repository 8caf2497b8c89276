// Package brush generates procedural brush stamps.
//
// A generated brush is described by six scalars: shape (circle, square or
// diamond), radius, number of spikes, hardness, aspect ratio and angle.
// Generate turns them into an anti-aliased 8-bit paintcore.Mask whose edge
// profile comes from a radial lookup table (LUT). Generated wraps the
// parameters as a named resource that clamps its inputs and regenerates the
// cached mask lazily after any change.
//
// Spikes above 2 fold the shape into a star with that many arms. Masks of
// brushes with an even number of spikes are point-symmetric, and only half
// of such a mask is computed.
package brush
