package paintcore

import "image"

// Mask is a single-channel 8-bit coverage buffer, used as a paint-tool stamp.
// Values range from 0 (no paint) to 255 (full paint).
//
// A mask carries an offset describing where its logical center lies inside
// the buffer. Generated brush stamps always have odd dimensions and the
// offset points at the central pixel.
type Mask struct {
	width   int
	height  int
	offsetX int
	offsetY int
	data    []uint8
}

// NewMask creates a new empty mask with the given dimensions.
// All values are initialized to 0. The offset is (width/2, height/2).
func NewMask(width, height int) *Mask {
	return &Mask{
		width:   width,
		height:  height,
		offsetX: width / 2,
		offsetY: height / 2,
		data:    make([]uint8, width*height),
	}
}

// NewMaskFromAlpha creates a mask from an image's alpha channel.
func NewMaskFromAlpha(img image.Image) *Mask {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	mask := NewMask(w, h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			_, _, _, a := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// #nosec G115 -- safe: a>>8 is always in range [0, 255]
			mask.data[y*w+x] = uint8(a >> 8)
		}
	}

	return mask
}

// Bounds returns the mask dimensions as an image.Rectangle.
func (m *Mask) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// Width returns the mask width.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height.
func (m *Mask) Height() int { return m.height }

// Offset returns the position of the mask's logical center.
func (m *Mask) Offset() (x, y int) { return m.offsetX, m.offsetY }

// At returns the mask value at (x, y).
// Returns 0 for coordinates outside the mask bounds.
func (m *Mask) At(x, y int) uint8 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.data[y*m.width+x]
}

// AtCenter returns the mask value at (dx, dy) relative to the offset.
func (m *Mask) AtCenter(dx, dy int) uint8 {
	return m.At(m.offsetX+dx, m.offsetY+dy)
}

// Set sets the mask value at (x, y).
// Coordinates outside the mask bounds are ignored.
func (m *Mask) Set(x, y int, value uint8) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.data[y*m.width+x] = value
}

// Invert inverts all mask values (255 - value).
func (m *Mask) Invert() {
	for i := range m.data {
		m.data[i] = 255 - m.data[i]
	}
}

// Clear clears the mask (sets all values to 0).
func (m *Mask) Clear() {
	clear(m.data)
}

// Clone creates a copy of the mask, including its offset.
func (m *Mask) Clone() *Mask {
	clone := NewMask(m.width, m.height)
	clone.offsetX, clone.offsetY = m.offsetX, m.offsetY
	copy(clone.data, m.data)
	return clone
}

// Max returns the largest value in the mask.
func (m *Mask) Max() uint8 {
	var hi uint8
	for _, v := range m.data {
		hi = max(hi, v)
	}
	return hi
}

// Data returns the underlying row-major mask data slice.
func (m *Mask) Data() []uint8 {
	return m.data
}

// ToImage converts the mask to a grayscale image.
func (m *Mask) ToImage() *image.Gray {
	img := image.NewGray(m.Bounds())
	copy(img.Pix, m.data)
	return img
}

// Save encodes the mask as a grayscale image. The format is chosen from the
// file extension (see SaveImage).
func (m *Mask) Save(path string) error {
	return SaveImage(path, m.ToImage())
}
