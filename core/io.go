package fractal

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// ErrUnsupportedFormat is returned when the output file extension
// does not map to a known image encoder.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Encode writes the image to w as grayscale in the format matching the file
// extension. An empty extension, used when writing to a pipe, encodes a PNG.
func Encode(w io.Writer, img image.Image, ext string) error {
	format, err := formatOf(ext)
	if err != nil {
		return err
	}
	return imaging.Encode(w, ToGray(img), format, imaging.JPEGQuality(100))
}

func formatOf(ext string) (imaging.Format, error) {
	if ext == "" {
		return imaging.PNG, nil
	}
	f, err := imaging.FormatFromExtension(ext)
	if err != nil {
		return f, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return f, nil
}

// Save encodes the image into the file at path, creating or truncating it.
func Save(img image.Image, path string) (err error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return fmt.Errorf("%w: missing file extension in %q", ErrUnsupportedFormat, path)
	}
	if _, err := formatOf(ext); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create the output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("unable to close the output file: %w", cerr)
		}
	}()

	if err := Encode(f, img, ext); err != nil {
		return fmt.Errorf("unable to encode %q: %w", path, err)
	}
	return nil
}

// Invert returns the negative of the image.
func Invert(img image.Image) *image.Gray {
	return ToGray(imaging.Invert(img))
}

// Upscale enlarges the image by an integer factor. Nearest neighbor
// resampling keeps the pixel edges hard.
func Upscale(img image.Image, factor int) *image.Gray {
	if factor <= 1 {
		return ToGray(img)
	}
	b := img.Bounds()
	return ToGray(imaging.Resize(img, b.Dx()*factor, b.Dy()*factor, imaging.NearestNeighbor))
}

// ToGray returns the image as a single channel grayscale image.
// A *image.Gray is returned as is.
func ToGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}
	b := img.Bounds()
	g := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(g, g.Rect, img, b.Min, draw.Src)
	return g
}
