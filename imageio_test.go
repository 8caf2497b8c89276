package paintcore

import (
	"bytes"
	"errors"
	"math"
	"path/filepath"
	"testing"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"out.png", FormatPNG},
		{"OUT.PNG", FormatPNG},
		{"a/b/photo.jpg", FormatJPEG},
		{"photo.jpeg", FormatJPEG},
		{"stamp.bmp", FormatBMP},
		{"scan.tif", FormatTIFF},
		{"scan.tiff", FormatTIFF},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if err != nil {
			t.Errorf("FormatFromPath(%q): %v", tt.path, err)
			continue
		}
		if got != tt.want {
			t.Errorf("FormatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}

	for _, path := range []string{"image.webp", "noext", "doc.txt"} {
		if _, err := FormatFromPath(path); !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("FormatFromPath(%q) error = %v, want ErrUnsupportedFormat", path, err)
		}
	}
}

func TestEncodeDecodeLossless(t *testing.T) {
	src := NewPixmap(5, 3)
	for y := range 3 {
		for x := range 5 {
			src.SetPixel(x, y, RGB(float64(x*50)/255, float64(y*100)/255, 17.0/255))
		}
	}

	for _, format := range []Format{FormatPNG, FormatBMP, FormatTIFF} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, src.ToImage(), format); err != nil {
				t.Fatalf("Encode: %v", err)
			}
			got, err := Decode(&buf)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if got.Width() != 5 || got.Height() != 3 {
				t.Fatalf("size = %dx%d, want 5x3", got.Width(), got.Height())
			}
			for i, v := range src.Data() {
				if math.Abs(float64(got.Data()[i]-v)) > 1e-6 {
					t.Fatalf("sample %d = %v, want %v", i, got.Data()[i], v)
				}
			}
		})
	}
}

func TestEncodeUnsupported(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, NewPixmap(1, 1), Format("gif"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Encode(gif) error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestSaveLoadImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "white.png")
	pm := NewPixmap(2, 2)
	pm.Clear(White)
	if err := pm.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	if c := got.GetPixel(1, 1); c != White {
		t.Errorf("pixel = %+v, want white", c)
	}
}

func TestLoadImageMissing(t *testing.T) {
	if _, err := LoadImage(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("LoadImage of a missing file succeeded")
	}
}

func TestSaveImageUnsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xyz")
	if err := NewPixmap(1, 1).Save(path); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Save() error = %v, want ErrUnsupportedFormat", err)
	}
}
