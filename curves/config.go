package curves

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gogpu/paintcore"
)

// Legacy file errors.
var (
	// ErrNotCurvesFile is returned when the header line is missing.
	ErrNotCurvesFile = errors.New("curves: not a curves file")

	// ErrParse is returned when a channel line is malformed.
	ErrParse = errors.New("curves: parse error")
)

// LegacyHeader is the first line of a legacy curves file.
const LegacyHeader = "# GIMP Curves File"

// Config holds one curve per channel, indexed by paintcore.Channel.
type Config struct {
	Curves [paintcore.NumChannels]*Curve
}

// NewConfig returns a configuration with identity curves on every channel.
func NewConfig() *Config {
	c := &Config{}
	for i := range c.Curves {
		c.Curves[i] = New()
	}
	return c
}

// Curve returns the curve of a channel, or nil for channels without one.
func (c *Config) Curve(ch paintcore.Channel) *Curve {
	if !ch.Valid() {
		return nil
	}
	return c.Curves[ch]
}

// Reset restores identity curves on every channel.
func (c *Config) Reset() {
	for _, curve := range c.Curves {
		curve.Reset(true)
	}
}

// ResetChannel restores the identity curve of one channel.
func (c *Config) ResetChannel(ch paintcore.Channel) {
	if curve := c.Curve(ch); curve != nil {
		curve.Reset(true)
	}
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	d := &Config{}
	for i, curve := range c.Curves {
		d.Curves[i] = curve.Clone()
	}
	return d
}

// Equal reports whether every channel curve of c equals that of other.
func (c *Config) Equal(other *Config) bool {
	for i := range c.Curves {
		if !c.Curves[i].Equal(other.Curves[i]) {
			return false
		}
	}
	return true
}

// LoadLegacy reads a legacy curves file: the header line followed by one
// line per channel of 17 "x y" pairs in 0..255, -1 marking unused points.
// All curves become Smooth. On error c is left unchanged.
func (c *Config) LoadLegacy(r io.Reader) error {
	sc := bufio.NewScanner(r)
	if !sc.Scan() || strings.TrimRight(sc.Text(), "\r") != LegacyHeader {
		if err := sc.Err(); err != nil {
			return fmt.Errorf("curves: read header: %w", err)
		}
		return ErrNotCurvesFile
	}

	var points [paintcore.NumChannels][NumPoints][2]int
	for ch := range points {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return fmt.Errorf("curves: read channel %d: %w", ch, err)
			}
			return fmt.Errorf("%w: missing channel %d", ErrParse, ch)
		}
		fields := strings.Fields(sc.Text())
		if len(fields) != NumPoints*2 {
			return fmt.Errorf("%w: channel %d has %d fields, want %d",
				ErrParse, ch, len(fields), NumPoints*2)
		}
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return fmt.Errorf("%w: channel %d: %w", ErrParse, ch, err)
			}
			points[ch][i/2][i%2] = v
		}
	}

	for ch, pts := range points {
		curve := New()
		for i, p := range pts {
			if p[0] < 0 {
				curve.ClearPoint(i)
				continue
			}
			curve.SetPoint(i, float64(p[0])/255, float64(p[1])/255)
		}
		c.Curves[ch] = curve
	}
	return nil
}

// SaveLegacy writes c in the legacy curves format. Free curves are first
// reduced to control points the way SetType(Smooth) does.
func (c *Config) SaveLegacy(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, LegacyHeader)

	for _, curve := range c.Curves {
		curve = curve.Clone()
		curve.SetType(Smooth)
		for i := range NumPoints {
			p := curve.Point(i)
			x, y := -1, -1
			if p.Used() {
				x, y = int(p.X*255.999), int(p.Y*255.999)
			}
			if i > 0 {
				bw.WriteByte(' ')
			}
			fmt.Fprintf(bw, "%d %d", x, y)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
