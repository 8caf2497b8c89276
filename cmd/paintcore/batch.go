package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/paintcore"
)

// errNoInput is returned when an adjustment command gets no files.
var errNoInput = errors.New("no input files")

// batchOptions are the flags shared by the adjustment commands.
type batchOptions struct {
	outDir     string
	suffix     string
	jobs       int
	workers    int
	maskPath   string
	invertMask bool
}

func addBatchFlags(fs *flag.FlagSet) *batchOptions {
	o := &batchOptions{}
	fs.StringVar(&o.outDir, "o", "", "output directory (default: next to each input)")
	fs.StringVar(&o.suffix, "suffix", "-adjusted", "suffix added to output file names")
	fs.IntVar(&o.jobs, "j", runtime.GOMAXPROCS(0), "number of images processed at once")
	fs.IntVar(&o.workers, "workers", 0, "goroutines per image (0 = GOMAXPROCS)")
	fs.StringVar(&o.maskPath, "mask", "", "image whose alpha channel limits the adjustment")
	fs.BoolVar(&o.invertMask, "invert-mask", false, "adjust where the mask is transparent instead")
	return o
}

// outputPath returns where the adjusted copy of in is written.
func (o *batchOptions) outputPath(in string) string {
	dir, base := filepath.Split(in)
	if o.outDir != "" {
		dir = o.outDir
	}
	ext := filepath.Ext(base)
	return filepath.Join(dir, strings.TrimSuffix(base, ext)+o.suffix+ext)
}

// filterBuilder returns the filter for one decoded image.
type filterBuilder func(pm *paintcore.Pixmap) (paintcore.PointFilter, error)

// processFiles loads every file, applies the filter built for it and
// writes the result. Files are processed concurrently, at most o.jobs at a
// time; the first error cancels the remaining work.
func processFiles(ctx context.Context, files []string, o *batchOptions, build filterBuilder) error {
	if len(files) == 0 {
		return errNoInput
	}
	if o.outDir != "" {
		if err := os.MkdirAll(o.outDir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	selection, err := o.loadSelection()
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(o.jobs, 1))

	for _, in := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return processFile(in, o, selection, build)
		})
	}
	return g.Wait()
}

// loadSelection reads the -mask image, or returns nil when none is set.
// The returned mask is shared by all files and never modified.
func (o *batchOptions) loadSelection() (*paintcore.Mask, error) {
	if o.maskPath == "" {
		return nil, nil
	}
	img, err := paintcore.LoadImage(o.maskPath)
	if err != nil {
		return nil, fmt.Errorf("mask: %w", err)
	}
	m := paintcore.NewMaskFromAlpha(img)
	if o.invertMask {
		m.Invert()
	}
	return m, nil
}

func processFile(in string, o *batchOptions, selection *paintcore.Mask, build filterBuilder) error {
	pm, err := paintcore.LoadImage(in)
	if err != nil {
		return err
	}

	f, err := build(pm)
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}

	var orig *paintcore.Pixmap
	if selection != nil {
		orig = pm.Clone()
	}
	if err := paintcore.ApplyFilter(pm, pm, f, paintcore.WithWorkers(o.workers)); err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}
	if selection != nil {
		if err := paintcore.BlendMask(pm, orig, selection); err != nil {
			return fmt.Errorf("%s: %w", in, err)
		}
	}

	out := o.outputPath(in)
	if err := paintcore.SaveImage(out, pm); err != nil {
		return err
	}

	paintcore.Logger().Info("image written",
		"in", in,
		"out", out,
		"width", pm.Width(),
		"height", pm.Height())
	return nil
}

// staticFilter returns a builder that uses the same filter for every image.
func staticFilter(f paintcore.PointFilter) filterBuilder {
	return func(*paintcore.Pixmap) (paintcore.PointFilter, error) {
		return f, nil
	}
}
