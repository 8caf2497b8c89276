package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gogpu/paintcore"
	"github.com/gogpu/paintcore/curves"
)

func runCurves(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("curves", flag.ContinueOnError)
	load := fs.String("load", "", "legacy curves file (required)")
	batch := addBatchFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *load == "" {
		return errors.New("-load is required")
	}

	cfg := curves.NewConfig()
	f, err := os.Open(filepath.Clean(*load))
	if err != nil {
		return err
	}
	err = cfg.LoadLegacy(f)
	f.Close()
	if err != nil {
		paintcore.Logger().Warn("curves file rejected", "file", *load, "err", err)
		return fmt.Errorf("%s: %w", *load, err)
	}

	return processFiles(ctx, fs.Args(), batch, staticFilter(curvesFilter(cfg)))
}

func curvesFilter(cfg *curves.Config) paintcore.PointFilter {
	return curves.NewFilter(cfg)
}

// writeFile creates path and fills it with write.
func writeFile(path string, write func(w io.Writer) error) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	paintcore.Logger().Info("file written", "file", path)
	return nil
}
