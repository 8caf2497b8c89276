package paintcore

// Channel identifies a histogram / tone-adjustment channel.
//
// The first NumChannels values index the fixed per-channel arrays of the
// levels and curves configurations. ChannelRGB is a composite used only when
// sampling colors (it reads the darkest RGB component).
type Channel int

const (
	ChannelValue Channel = iota
	ChannelRed
	ChannelGreen
	ChannelBlue
	ChannelAlpha
	ChannelRGB
)

// NumChannels is the number of independently configurable channels
// (Value, Red, Green, Blue, Alpha).
const NumChannels = 5

// String returns the lowercase channel name.
func (c Channel) String() string {
	switch c {
	case ChannelValue:
		return "value"
	case ChannelRed:
		return "red"
	case ChannelGreen:
		return "green"
	case ChannelBlue:
		return "blue"
	case ChannelAlpha:
		return "alpha"
	case ChannelRGB:
		return "rgb"
	default:
		return "unknown"
	}
}

// Valid reports whether c addresses one of the NumChannels configurable channels.
func (c Channel) Valid() bool {
	return c >= ChannelValue && c < NumChannels
}

// ParseChannel returns the channel with the given name as produced by String.
func ParseChannel(name string) (Channel, bool) {
	for c := ChannelValue; c <= ChannelRGB; c++ {
		if c.String() == name {
			return c, true
		}
	}
	return 0, false
}

// Sample returns the intensity of color c as seen by channel ch:
// Value reads max(R,G,B), RGB reads min(R,G,B), the other channels read
// the named component.
func (c RGBA) Sample(ch Channel) float64 {
	switch ch {
	case ChannelValue:
		return c.Max()
	case ChannelRed:
		return c.R
	case ChannelGreen:
		return c.G
	case ChannelBlue:
		return c.B
	case ChannelAlpha:
		return c.A
	case ChannelRGB:
		return c.Min()
	}
	return 0
}
