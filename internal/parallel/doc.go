// Package parallel provides the scanline-parallel execution used by paintcore
// point filters.
//
// Tone filters are pure per-sample functions, so an image can be split into
// horizontal bands of rows that are processed independently with no ordering
// constraints between them. Bands are distributed across a WorkerPool whose
// workers steal from each other's queues when idle.
package parallel
