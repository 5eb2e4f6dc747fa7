package fractal

import (
	"fmt"
	"image"
	"image/color"
)

const (
	// Ink is the intensity of a drawn pixel.
	Ink uint8 = 0
	// Paper is the intensity of the background.
	Paper uint8 = 255
)

// OutOfBoundsError is the panic value raised when a point falls outside the canvas.
// It always indicates a bug in the geometry producing the point.
type OutOfBoundsError struct {
	Point  Point
	Bounds image.Rectangle
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("point (%d,%d) is outside of the canvas %v", e.Point.X, e.Point.Y, e.Bounds)
}

// Canvas is a grayscale pixel buffer the fractal is drawn onto.
// A Canvas is not safe for concurrent use.
type Canvas struct {
	img       *image.Gray
	triangles int
}

// NewCanvas allocates a width x height canvas filled with the background color.
func NewCanvas(width, height int) *Canvas {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = Paper
	}
	return &Canvas{img: img}
}

// Bounds returns the canvas dimensions.
func (c *Canvas) Bounds() image.Rectangle {
	return c.img.Rect
}

// At returns the intensity of the pixel at (x, y).
func (c *Canvas) At(x, y int) uint8 {
	return c.img.GrayAt(x, y).Y
}

// Paint sets every point to the ink color. It panics with an *OutOfBoundsError
// if any of the points does not fit into the canvas.
func (c *Canvas) Paint(points []Point) {
	for _, p := range points {
		if !(image.Point{X: p.X, Y: p.Y}).In(c.img.Rect) {
			panic(&OutOfBoundsError{Point: p, Bounds: c.img.Rect})
		}
		c.img.SetGray(p.X, p.Y, color.Gray{Y: Ink})
	}
}

// DrawTriangle paints the three edges of the triangle.
func (c *Canvas) DrawTriangle(t Triangle) {
	for _, e := range Edges(t) {
		c.Paint(e.Points())
	}
	c.triangles++
}

// Triangles returns the number of triangles drawn onto the canvas so far.
func (c *Canvas) Triangles() int {
	return c.triangles
}

// Black returns the painted pixels in row-major order.
func (c *Canvas) Black() []Point {
	var pts []Point
	b := c.img.Rect
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if c.img.Pix[c.img.PixOffset(x, y)] == Ink {
				pts = append(pts, Point{X: x, Y: y})
			}
		}
	}
	return pts
}

// Image returns the underlying grayscale image. The canvas should not
// be painted on once the image has been handed over for encoding.
func (c *Canvas) Image() *image.Gray {
	return c.img
}
