package levels

import (
	"math"

	"github.com/gogpu/paintcore"
)

// Gamma limits enforced by SetChannel.
const (
	MinGamma = 0.1
	MaxGamma = 10.0
)

// ChannelParams are the levels settings of one channel.
// No ordering between the low and high values is enforced.
type ChannelParams struct {
	Gamma      float64
	LowInput   float64
	HighInput  float64
	LowOutput  float64
	HighOutput float64
}

// DefaultChannelParams returns the identity settings.
func DefaultChannelParams() ChannelParams {
	return ChannelParams{
		Gamma:      1.0,
		LowInput:   0.0,
		HighInput:  1.0,
		LowOutput:  0.0,
		HighOutput: 1.0,
	}
}

// Clamped returns p with gamma clamped to [MinGamma, MaxGamma] and the
// input and output levels clamped to [0, 1].
func (p ChannelParams) Clamped() ChannelParams {
	return ChannelParams{
		Gamma:      min(max(p.Gamma, MinGamma), MaxGamma),
		LowInput:   paintcore.Clamp01(p.LowInput),
		HighInput:  paintcore.Clamp01(p.HighInput),
		LowOutput:  paintcore.Clamp01(p.LowOutput),
		HighOutput: paintcore.Clamp01(p.HighOutput),
	}
}

// normalize maps v through the input range and gamma into [0, 1].
func (p ChannelParams) normalize(v float64) float64 {
	if p.HighInput != p.LowInput {
		v = (v - p.LowInput) / (p.HighInput - p.LowInput)
	} else {
		v = v - p.LowInput
	}

	v = paintcore.Clamp01(v)

	if p.Gamma != 0.0 && p.Gamma != 1.0 {
		v = math.Pow(v, 1/p.Gamma)
	}
	return v
}

// MapInput maps an input intensity to its output intensity. Inputs below
// LowInput produce LowOutput and inputs above HighInput produce
// HighOutput; in between the normalized input is raised to 1/Gamma and
// scaled into the output range.
func (p ChannelParams) MapInput(v float64) float64 {
	return p.normalize(v)*(p.HighOutput-p.LowOutput) + p.LowOutput
}

// swapAxes returns the parameters of the mirror image of p's curve in the
// line y = x: inputs and outputs exchanged and gamma inverted.
func swapAxes(p ChannelParams) ChannelParams {
	return ChannelParams{
		Gamma:      1 / p.Gamma,
		LowInput:   p.LowOutput,
		HighInput:  p.HighOutput,
		LowOutput:  p.LowInput,
		HighOutput: p.HighInput,
	}
}

// Config holds the levels settings of all channels, indexed by
// paintcore.Channel.
type Config struct {
	Channels [paintcore.NumChannels]ChannelParams
}

// NewConfig returns a configuration with identity settings on every
// channel.
func NewConfig() *Config {
	c := &Config{}
	c.Reset()
	return c
}

// Reset restores identity settings on every channel.
func (c *Config) Reset() {
	for i := range c.Channels {
		c.Channels[i] = DefaultChannelParams()
	}
}

// ResetChannel restores identity settings on one channel.
func (c *Config) ResetChannel(ch paintcore.Channel) {
	if ch.Valid() {
		c.Channels[ch] = DefaultChannelParams()
	}
}

// Channel returns the settings of a channel. Invalid channels report the
// identity settings.
func (c *Config) Channel(ch paintcore.Channel) ChannelParams {
	if !ch.Valid() {
		return DefaultChannelParams()
	}
	return c.Channels[ch]
}

// SetChannel stores clamped settings for a channel and returns the stored
// value. Invalid channels are ignored.
func (c *Config) SetChannel(ch paintcore.Channel, p ChannelParams) ChannelParams {
	if !ch.Valid() {
		return DefaultChannelParams()
	}
	c.Channels[ch] = p.Clamped()
	return c.Channels[ch]
}

// MapInput maps v through the settings of channel ch.
func (c *Config) MapInput(ch paintcore.Channel, v float64) float64 {
	return c.Channel(ch).MapInput(v)
}

// Copy returns an independent copy of c.
func (c *Config) Copy() *Config {
	d := *c
	return &d
}

// Equal reports whether both configurations hold the same settings on
// every channel.
func (c *Config) Equal(other *Config) bool {
	return c.Channels == other.Channels
}

// IsIdentity reports whether c leaves every pixel unchanged.
func (c *Config) IsIdentity() bool {
	for _, p := range c.Channels {
		if p != DefaultChannelParams() {
			return false
		}
	}
	return true
}
