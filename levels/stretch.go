package levels

import (
	"math"

	"github.com/gogpu/paintcore"
)

// Histogram is the per-channel 256-bin histogram consumed by Stretch.
// *histogram.Histogram implements it.
type Histogram interface {
	Value(ch paintcore.Channel, bin int) float64
	Count(ch paintcore.Channel, start, end int) float64
}

// stretchTail is the fraction of the histogram mass cut off at each end
// by automatic stretching.
const stretchTail = 0.006

// Stretch sets the input ranges automatically from a histogram. For color
// images the Value channel is reset and Red, Green and Blue are stretched
// independently; otherwise only Value is stretched.
func (c *Config) Stretch(h Histogram, isColor bool) {
	if !isColor {
		c.StretchChannel(h, paintcore.ChannelValue)
		return
	}

	c.ResetChannel(paintcore.ChannelValue)
	for ch := paintcore.ChannelRed; ch <= paintcore.ChannelBlue; ch++ {
		c.StretchChannel(h, ch)
	}
}

// StretchChannel resets gamma and the output range of ch and moves its
// input range to the levels closest to 0.6% of the histogram mass from
// either end. An empty histogram sets both inputs to 0.
func (c *Config) StretchChannel(h Histogram, ch paintcore.Channel) {
	if !ch.Valid() {
		return
	}
	p := &c.Channels[ch]

	p.Gamma = 1.0
	p.LowOutput = 0.0
	p.HighOutput = 1.0

	count := h.Count(ch, 0, 255)
	if count == 0.0 {
		p.LowInput = 0.0
		p.HighInput = 0.0
		return
	}

	closer := func(cum, next float64) bool {
		return math.Abs(cum/count-stretchTail) < math.Abs(next/count-stretchTail)
	}

	var cum float64
	for i := 0; i < 255; i++ {
		cum += h.Value(ch, i)
		if closer(cum, cum+h.Value(ch, i+1)) {
			p.LowInput = float64(i+1) / 255.0
			break
		}
	}

	cum = 0
	for i := 255; i > 0; i-- {
		cum += h.Value(ch, i)
		if closer(cum, cum+h.Value(ch, i-1)) {
			p.HighInput = float64(i-1) / 255.0
			break
		}
	}
}

// InputFromColor returns the intensity of a sampled color as seen by a
// channel: the maximum of red, green and blue for Value, their minimum for
// the RGB composite, and the named component otherwise.
func InputFromColor(ch paintcore.Channel, c paintcore.RGBA) float64 {
	return c.Sample(ch)
}

// AdjustByColors calibrates channel ch from picked colors. A black sample
// sets the low input and a white sample the high input. A gray sample sets
// gamma so that its intensity maps to its luminance; the gamma update is
// skipped when the input range is empty or the sample lies below it, and
// clamped to [MinGamma, MaxGamma] otherwise.
// Nil samples are ignored, as are channels other than the five stored ones.
func (c *Config) AdjustByColors(ch paintcore.Channel, black, gray, white *paintcore.RGBA) {
	if !ch.Valid() {
		return
	}
	p := &c.Channels[ch]

	if black != nil {
		p.LowInput = InputFromColor(ch, *black)
	}
	if white != nil {
		p.HighInput = InputFromColor(ch, *white)
	}
	if gray == nil {
		return
	}

	lightness := gray.Luminance()
	input := InputFromColor(ch, *gray)

	span := p.HighInput - p.LowInput
	if span <= 0 {
		skipGamma(ch, "empty input range")
		return
	}

	input -= p.LowInput
	if input < 0 {
		skipGamma(ch, "sample below input range")
		return
	}

	inten := input / span
	outLight := lightness / span
	if outLight <= 0 {
		skipGamma(ch, "sample has no lightness")
		return
	}

	gamma := math.Log(inten) / math.Log(outLight)
	if math.IsNaN(gamma) {
		skipGamma(ch, "gamma undefined")
		return
	}
	p.Gamma = min(max(gamma, MinGamma), MaxGamma)
}

func skipGamma(ch paintcore.Channel, reason string) {
	paintcore.Logger().Debug("levels: gray point ignored",
		"channel", ch.String(),
		"reason", reason)
}
