package fractal

// Rasterize returns the pixels of the line between start and end computed
// with Bresenham's algorithm. The points are ordered from start to end and
// both end points are included. Consecutive points differ by at most one
// unit on each axis.
func Rasterize(start, end Point) []Point {
	dx, dy := abs(end.X-start.X), abs(end.Y-start.Y)
	sx, sy := sign(end.X-start.X), sign(end.Y-start.Y)

	// Walk along the major axis, the minor axis follows the error term.
	major, minor := dx, dy
	if dy > dx {
		major, minor = dy, dx
	}

	pts := make([]Point, 0, major+1)
	x, y := start.X, start.Y
	d := 2*minor - major

	for i := 0; i <= major; i++ {
		pts = append(pts, Point{X: x, Y: y})
		if d > 0 {
			if dx >= dy {
				y += sy
			} else {
				x += sx
			}
			d -= 2 * major
		}
		d += 2 * minor
		if dx >= dy {
			x += sx
		} else {
			y += sy
		}
	}
	return pts
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
