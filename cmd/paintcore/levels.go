package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gogpu/paintcore"
	"github.com/gogpu/paintcore/histogram"
	"github.com/gogpu/paintcore/levels"
)

func runLevels(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("levels", flag.ContinueOnError)
	var (
		load       = fs.String("load", "", "legacy levels file to start from")
		auto       = fs.Bool("auto", false, "stretch each image from its histogram")
		gray       = fs.Bool("gray", false, "treat images as grayscale when stretching")
		channel    = fs.String("channel", "value", "channel calibrated by -black, -graypoint and -white")
		black      = fs.String("black", "", "picked black point color (#rrggbb)")
		grayPoint  = fs.String("graypoint", "", "picked gray point color (#rrggbb)")
		white      = fs.String("white", "", "picked white point color (#rrggbb)")
		asCurves   = fs.Bool("as-curves", false, "apply through the equivalent curves")
		save       = fs.String("save", "", "write the resulting levels file")
		saveCurves = fs.String("save-curves", "", "write the equivalent curves file")
	)
	batch := addBatchFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := levels.NewConfig()
	if *load != "" {
		if err := loadLevels(cfg, *load); err != nil {
			return err
		}
	}

	if *black != "" || *grayPoint != "" || *white != "" {
		ch, ok := paintcore.ParseChannel(*channel)
		if !ok {
			return fmt.Errorf("unknown channel %q", *channel)
		}
		cfg.AdjustByColors(ch, pickedColor(*black), pickedColor(*grayPoint), pickedColor(*white))
	}

	if *auto && (*save != "" || *saveCurves != "") {
		return errors.New("-save and -save-curves cannot be combined with -auto")
	}
	if *save != "" {
		if err := writeFile(*save, cfg.SaveLegacy); err != nil {
			return err
		}
	}
	if *saveCurves != "" {
		if err := writeFile(*saveCurves, cfg.ToCurves().SaveLegacy); err != nil {
			return err
		}
	}

	if fs.NArg() == 0 && (*save != "" || *saveCurves != "") {
		return nil
	}

	return processFiles(ctx, fs.Args(), batch, func(pm *paintcore.Pixmap) (paintcore.PointFilter, error) {
		c := cfg
		if *auto {
			c = cfg.Copy()
			c.Stretch(histogram.FromPixmap(pm), !*gray)
		}
		return levelsFilter(c, *asCurves), nil
	})
}

func levelsFilter(cfg *levels.Config, asCurves bool) paintcore.PointFilter {
	if asCurves {
		return curvesFilter(cfg.ToCurves())
	}
	return levels.NewFilter(cfg)
}

func loadLevels(cfg *levels.Config, path string) error {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return err
	}
	defer f.Close()

	if err := cfg.LoadLegacy(f); err != nil {
		paintcore.Logger().Warn("levels file rejected", "file", path, "err", err)
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// pickedColor parses an optional hex color flag.
func pickedColor(hex string) *paintcore.RGBA {
	if hex == "" {
		return nil
	}
	c := paintcore.Hex(hex)
	return &c
}
