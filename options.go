package paintcore

// FilterOption configures how ApplyFilter schedules work.
//
// Example:
//
//	// Process on all CPUs in bands of 32 rows
//	err := paintcore.ApplyFilter(src, dst, f, paintcore.WithBandHeight(32))
//
//	// Force single-threaded processing
//	err := paintcore.ApplyFilter(src, dst, f, paintcore.WithWorkers(1))
type FilterOption func(*filterOptions)

// filterOptions holds optional configuration for ApplyFilter.
type filterOptions struct {
	workers    int
	bandHeight int
}

// defaultFilterOptions returns the default filter options.
func defaultFilterOptions() filterOptions {
	return filterOptions{
		workers:    0, // GOMAXPROCS
		bandHeight: 0, // parallel.DefaultBandHeight
	}
}

// WithWorkers sets the number of goroutines used by ApplyFilter.
// 0 or negative selects GOMAXPROCS; 1 runs on the calling goroutine.
func WithWorkers(n int) FilterOption {
	return func(o *filterOptions) {
		o.workers = n
	}
}

// WithBandHeight sets the number of rows processed per work item.
// 0 or negative selects the package default.
func WithBandHeight(rows int) FilterOption {
	return func(o *filterOptions) {
		o.bandHeight = rows
	}
}
