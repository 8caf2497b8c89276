// Package huesat implements the hue/saturation adjustment.
//
// A configuration holds hue, saturation and lightness offsets for all hues
// and for each of the six primary and secondary hue sectors (red, yellow,
// green, cyan, blue, magenta). Each pixel is converted to HSL and mapped
// through the offsets of its sector combined with the all-hues offsets.
// A non-zero overlap blends neighbouring sectors near their boundaries.
package huesat
