package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/gogpu/paintcore"
	"github.com/gogpu/paintcore/brush"
)

func runBrush(_ context.Context, args []string) error {
	fs := flag.NewFlagSet("brush", flag.ContinueOnError)
	var (
		name     = fs.String("name", "generated", "brush name")
		shape    = fs.String("shape", "circle", "shape: circle, square or diamond")
		radius   = fs.Float64("radius", 5, "radius in pixels")
		spikes   = fs.Int("spikes", 2, "number of spikes (2 for a plain shape)")
		hardness = fs.Float64("hardness", 0.5, "edge hardness in [0, 1]")
		aspect   = fs.Float64("aspect", 1, "aspect ratio in [1, 1000]")
		angle    = fs.Float64("angle", 0, "angle in degrees")

		scale     = fs.Float64("scale", 0, "render through the transform path at this scale (0 disables)")
		tAspect   = fs.Float64("transform-aspect", 0, "transform aspect override (0 keeps the brush ratio)")
		tTurns    = fs.Float64("transform-angle", 0, "transform rotation in turns")
		tHardness = fs.Float64("transform-hardness", 1, "transform hardness multiplier")
		output    = fs.String("o", "brush.png", "output image")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	s, ok := brush.ParseShape(*shape)
	if !ok {
		return fmt.Errorf("unknown shape %q", *shape)
	}

	b, err := brush.New(*name, s, *radius, *spikes, *hardness, *aspect, *angle)
	if err != nil {
		return err
	}

	var mask *paintcore.Mask
	if *scale > 0 {
		mask = b.TransformMask(*scale, *tAspect, *tTurns, *tHardness)
	} else {
		mask = b.Mask()
	}

	if err := mask.Save(*output); err != nil {
		return err
	}

	xAxis, yAxis := b.Axes()
	paintcore.Logger().Info("brush written",
		"file", *output,
		"width", mask.Width(),
		"height", mask.Height(),
		"params", fmt.Sprintf("%+v", b.Parameters()),
		"x_axis", xAxis,
		"y_axis", yAxis)
	return nil
}
