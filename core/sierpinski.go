// Package fractal draws the Sierpinski triangle onto a grayscale canvas,
// either by recursive midpoint subdivision of Bresenham lines or by
// playing the chaos game.
package fractal

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is returned when the image size is not a positive number.
	ErrInvalidSize = errors.New("size must be a positive number")
	// ErrInvalidDepth is returned for a negative recursion depth.
	ErrInvalidDepth = errors.New("depth must not be negative")
)

// Render draws a Sierpinski triangle of the given recursion depth onto
// a new size x size canvas. With depth 0 only the outer triangle is drawn.
func Render(size, depth int) (*Canvas, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	if depth < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDepth, depth)
	}

	c := NewCanvas(size, size)
	t := InitialTriangle(size)
	c.DrawTriangle(t)
	Subdivide(c, depth, t)

	return c, nil
}

// InitialTriangle returns the outer triangle fitting into a size x size image.
// The top corner is snapped onto the rasterized top border of the image.
func InitialTriangle(size int) Triangle {
	// Valid pixel indices are 0..size-1.
	bound := size - 1

	return Triangle{
		P1: Midpoint(Line{Start: Point{0, 0}, End: Point{bound, 0}}),
		P2: Point{X: 0, Y: bound},
		P3: Point{X: bound, Y: bound},
	}
}

// Subdivide draws the triangle connecting the edge midpoints of t, then
// recurses into the three corner triangles until depth reaches zero.
func Subdivide(c *Canvas, depth int, t Triangle) {
	if depth == 0 {
		return
	}

	p12 := Midpoint(Line{Start: t.P1, End: t.P2})
	p13 := Midpoint(Line{Start: t.P1, End: t.P3})
	p23 := Midpoint(Line{Start: t.P2, End: t.P3})

	c.DrawTriangle(Triangle{P1: p12, P2: p13, P3: p23})

	depth--
	Subdivide(c, depth, Triangle{P1: t.P1, P2: p12, P3: p13})
	Subdivide(c, depth, Triangle{P1: p12, P2: t.P2, P3: p23})
	Subdivide(c, depth, Triangle{P1: p13, P2: p23, P3: t.P3})
}

// TriangleCount returns the number of triangles Render draws for the given
// depth: the outer one plus one inner triangle for every subdivision.
func TriangleCount(depth int) int {
	n, level := 1, 1
	for i := 0; i < depth; i++ {
		n += level
		level *= 3
	}
	return n
}
