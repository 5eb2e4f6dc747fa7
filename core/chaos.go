package fractal

import (
	"image"
	"image/color"
	"math/rand"

	"github.com/fogleman/gg"
)

// Chaos renders the Sierpinski triangle with the chaos game: starting from
// the top left pixel, it repeatedly jumps halfway towards a randomly chosen
// corner of the triangle and marks the pixel it lands on.
type Chaos struct {
	Width  int
	Height int
	Points int
	Seed   int64
}

// NewChaos returns a chaos game renderer with the default settings.
func NewChaos() *Chaos {
	return &Chaos{
		Width:  800,
		Height: 600,
		Points: 10000,
		Seed:   1,
	}
}

// Corners returns the corners of the triangle the points are attracted to.
func (ch *Chaos) Corners() [3]Point {
	return [3]Point{
		{X: ch.Width / 2, Y: 0},
		{X: 0, Y: ch.Height},
		{X: ch.Width, Y: ch.Height},
	}
}

// Walk returns the visited points, the starting point included.
// The same seed always produces the same walk.
func (ch *Chaos) Walk() []Point {
	rnd := rand.New(rand.NewSource(ch.Seed))
	corners := ch.Corners()

	p := Point{}
	pts := make([]Point, 0, ch.Points+1)
	pts = append(pts, p)

	for i := 0; i < ch.Points; i++ {
		c := corners[rnd.Intn(len(corners))]
		p = Point{X: (p.X + c.X) / 2, Y: (p.Y + c.Y) / 2}
		pts = append(pts, p)
	}
	return pts
}

// Render plays the chaos game and returns the resulting grayscale image.
func (ch *Chaos) Render() *image.Gray {
	dc := gg.NewContext(ch.Width, ch.Height)
	dc.SetColor(color.White)
	dc.Clear()

	dc.SetColor(color.Black)
	for _, p := range ch.Walk() {
		dc.SetPixel(p.X, p.Y)
	}
	return ToGray(dc.Image())
}
