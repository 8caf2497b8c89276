package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/gogpu/paintcore"
	"github.com/gogpu/paintcore/histogram"
)

func runHistogram(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("histogram", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errNoInput
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FILE\tCHANNEL\tCOUNT\tMEAN\tMEDIAN")
	for _, path := range fs.Args() {
		if err := ctx.Err(); err != nil {
			return err
		}
		pm, err := paintcore.LoadImage(path)
		if err != nil {
			return err
		}
		h := histogram.FromPixmap(pm)
		for ch := paintcore.ChannelValue; ch <= paintcore.ChannelAlpha; ch++ {
			fmt.Fprintf(w, "%s\t%s\t%.0f\t%.1f\t%d\n", path, ch,
				h.Count(ch, 0, histogram.Bins-1),
				h.Mean(ch, 0, histogram.Bins-1),
				h.Median(ch, 0, histogram.Bins-1))
		}
	}
	return w.Flush()
}
