package fractal

// Point is an integer pixel coordinate.
type Point struct {
	X, Y int
}

// Line is a segment between two points. It is not stored anywhere,
// only built when its pixels or its midpoint are needed.
type Line struct {
	Start Point
	End   Point
}

// Triangle holds the three corners of a triangle. The order of the corners
// matters for the subdivision: P1 is the top, P2 the bottom left
// and P3 the bottom right corner.
type Triangle struct {
	P1, P2, P3 Point
}

// Points returns the rasterized pixels of the line.
func (l Line) Points() []Point {
	return Rasterize(l.Start, l.End)
}

// Midpoint returns the pixel lying in the middle of the rasterized line.
// Unlike the arithmetic mean of the end points, the returned point is
// always one of the pixels drawn for the line.
func Midpoint(l Line) Point {
	pts := l.Points()
	return pts[len(pts)/2]
}

// Edges returns the three sides of the triangle.
func Edges(t Triangle) [3]Line {
	return [3]Line{
		{Start: t.P1, End: t.P2},
		{Start: t.P1, End: t.P3},
		{Start: t.P2, End: t.P3},
	}
}
