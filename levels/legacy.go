package levels

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gogpu/paintcore"
)

// Legacy file errors. A failed load leaves the configuration unchanged.
var (
	// ErrNotLevelsFile is returned when the header line is missing.
	ErrNotLevelsFile = errors.New("levels: not a levels file")

	// ErrParse is returned when a channel line is malformed.
	ErrParse = errors.New("levels: parse error")
)

// LegacyHeader is the first line of a legacy levels file.
const LegacyHeader = "# GIMP Levels File"

// legacyScale converts [0, 1] levels to the 0..255 integers of the legacy
// formats. Truncation makes 1.0 map to 255.
const legacyScale = 255.999

// LoadLegacy reads the legacy text format: the header line, then one line
// per channel in Value, Red, Green, Blue, Alpha order holding
// "lowInput highInput lowOutput highOutput gamma" with the levels as
// integers 0..255.
func (c *Config) LoadLegacy(r io.Reader) error {
	sc := bufio.NewScanner(r)
	if !sc.Scan() || strings.TrimRight(sc.Text(), "\r") != LegacyHeader {
		if err := sc.Err(); err != nil {
			return fmt.Errorf("levels: read header: %w", err)
		}
		return ErrNotLevelsFile
	}

	var channels [paintcore.NumChannels]ChannelParams
	for i := range channels {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return fmt.Errorf("levels: read channel %d: %w", i, err)
			}
			return fmt.Errorf("%w: missing channel %d", ErrParse, i)
		}
		p, err := parseLegacyLine(sc.Text())
		if err != nil {
			return fmt.Errorf("%w: channel %d: %w", ErrParse, i, err)
		}
		channels[i] = p
	}

	c.Channels = channels
	return nil
}

func parseLegacyLine(line string) (ChannelParams, error) {
	fields := strings.Fields(line)
	if len(fields) != 5 {
		return ChannelParams{}, fmt.Errorf("got %d fields, want 5", len(fields))
	}

	var levels [4]int
	for i := range levels {
		v, err := strconv.Atoi(fields[i])
		if err != nil {
			return ChannelParams{}, err
		}
		levels[i] = v
	}
	gamma, err := strconv.ParseFloat(fields[4], 64)
	if err != nil {
		return ChannelParams{}, err
	}

	return ChannelParams{
		Gamma:      gamma,
		LowInput:   float64(levels[0]) / 255.0,
		HighInput:  float64(levels[1]) / 255.0,
		LowOutput:  float64(levels[2]) / 255.0,
		HighOutput: float64(levels[3]) / 255.0,
	}, nil
}

// SaveLegacy writes c in the legacy text format.
func (c *Config) SaveLegacy(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, LegacyHeader)
	for _, p := range c.Channels {
		fmt.Fprintf(bw, "%d %d %d %d %f\n",
			int(p.LowInput*legacyScale),
			int(p.HighInput*legacyScale),
			int(p.LowOutput*legacyScale),
			int(p.HighOutput*legacyScale),
			p.Gamma)
	}
	return bw.Flush()
}

// Legacy is the integer per-channel layout used by older levels
// consumers. For grayscale images slot 1 carries the alpha settings.
type Legacy struct {
	Gamma      [paintcore.NumChannels]float64
	LowInput   [paintcore.NumChannels]int
	HighInput  [paintcore.NumChannels]int
	LowOutput  [paintcore.NumChannels]int
	HighOutput [paintcore.NumChannels]int
}

// ToLegacyLayout converts c to the legacy layout. When isColor is false the
// alpha settings are also stored in slot 1.
func ToLegacyLayout(c *Config, isColor bool) Legacy {
	var l Legacy
	for i, p := range c.Channels {
		l.Gamma[i] = p.Gamma
		l.LowInput[i] = int(p.LowInput * legacyScale)
		l.HighInput[i] = int(p.HighInput * legacyScale)
		l.LowOutput[i] = int(p.LowOutput * legacyScale)
		l.HighOutput[i] = int(p.HighOutput * legacyScale)
	}

	if !isColor {
		a := paintcore.ChannelAlpha
		l.Gamma[1] = l.Gamma[a]
		l.LowInput[1] = l.LowInput[a]
		l.HighInput[1] = l.HighInput[a]
		l.LowOutput[1] = l.LowOutput[a]
		l.HighOutput[1] = l.HighOutput[a]
	}
	return l
}

// FromLegacyLayout converts the legacy layout back to a configuration.
// When isColor is false slot 1 is read as alpha and Red is left at its
// defaults.
func FromLegacyLayout(l Legacy, isColor bool) *Config {
	c := NewConfig()
	for i := range c.Channels {
		c.Channels[i] = l.channel(i)
	}

	if !isColor {
		c.Channels[paintcore.ChannelAlpha] = l.channel(1)
		c.Channels[paintcore.ChannelRed] = DefaultChannelParams()
	}
	return c
}

func (l Legacy) channel(i int) ChannelParams {
	return ChannelParams{
		Gamma:      l.Gamma[i],
		LowInput:   float64(l.LowInput[i]) / 255.0,
		HighInput:  float64(l.HighInput[i]) / 255.0,
		LowOutput:  float64(l.LowOutput[i]) / 255.0,
		HighOutput: float64(l.HighOutput[i]) / 255.0,
	}
}
