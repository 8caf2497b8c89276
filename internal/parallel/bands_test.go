package parallel

import (
	"sync"
	"testing"
)

func TestSplitRows(t *testing.T) {
	tests := []struct {
		name       string
		height     int
		bandHeight int
		want       []Band
	}{
		{"empty", 0, 4, nil},
		{"exact", 8, 4, []Band{{0, 4}, {4, 8}}},
		{"remainder", 10, 4, []Band{{0, 4}, {4, 8}, {8, 10}}},
		{"single", 3, 4, []Band{{0, 3}}},
		{"default", 20, 0, []Band{{0, 16}, {16, 20}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitRows(tt.height, tt.bandHeight)
			if len(got) != len(tt.want) {
				t.Fatalf("SplitRows(%d, %d) = %v, want %v", tt.height, tt.bandHeight, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("band %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestForEachBandCoversAllRows(t *testing.T) {
	const height = 37

	for _, pool := range []*WorkerPool{nil, NewWorkerPool(3)} {
		var mu sync.Mutex
		seen := make([]int, height)

		ForEachBand(pool, height, 5, func(b Band) {
			mu.Lock()
			defer mu.Unlock()
			for y := b.Y0; y < b.Y1; y++ {
				seen[y]++
			}
		})

		for y, n := range seen {
			if n != 1 {
				t.Errorf("pool=%v: row %d visited %d times, want 1", pool != nil, y, n)
			}
		}
		if pool != nil {
			pool.Close()
		}
	}
}

func TestBandRows(t *testing.T) {
	if got := (Band{Y0: 3, Y1: 10}).Rows(); got != 7 {
		t.Errorf("Rows() = %d, want 7", got)
	}
}
