package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/gogpu/paintcore/huesat"
)

func runHueSat(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("huesat", flag.ContinueOnError)
	var (
		hueRange   = fs.String("range", "all", "hue range: all, red, yellow, green, cyan, blue or magenta")
		hue        = fs.Float64("hue", 0, "hue offset in [-1, 1]")
		saturation = fs.Float64("saturation", 0, "saturation offset in [-1, 1]")
		lightness  = fs.Float64("lightness", 0, "lightness offset in [-1, 1]")
		overlap    = fs.Float64("overlap", 0, "sector overlap in [0, 1]")
	)
	batch := addBatchFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	r, ok := huesat.ParseRange(*hueRange)
	if !ok {
		return fmt.Errorf("unknown hue range %q", *hueRange)
	}

	cfg := huesat.NewConfig()
	cfg.SetRange(r, huesat.RangeParams{Hue: *hue, Saturation: *saturation, Lightness: *lightness})
	cfg.SetOverlap(*overlap)

	return processFiles(ctx, fs.Args(), batch, staticFilter(huesat.NewFilter(cfg)))
}
