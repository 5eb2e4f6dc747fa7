package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	fractal "github.com/philwantsfish/fractal/core"
	"github.com/philwantsfish/fractal/utils"
	"golang.org/x/term"
)

const banner = `
       /\
      /__\
     /\  /\
    /__\/__\

Sierpinski triangle fractal generator.
    Version: %s

Expects 3 command line arguments:
	Size: The height and width of the image
	Iterations: The number of iterations of the fractal
	Filename: The filename to save the image ("-" for stdout)

Flags must be given before the arguments:
	sierpinski [flags] <size> <iterations> <filename>

With -method chaos the size is the image width, the height is 3/4 of it
and the iterations argument is ignored.

Example: sierpinski 800 6 sierpinski_6.png
         sierpinski -method chaos -points 50000 800 0 chaos.png

Flags:
`

// pipeName is the file name that indicates stdout is being used.
const pipeName = "-"

const (
	// methodRecursive draws the triangle by recursive midpoint subdivision.
	methodRecursive = "recursive"
	// methodChaos plots the triangle with the chaos game.
	methodChaos = "chaos"

	// message colors
	successColor = "\x1b[92m"
	errorColor   = "\x1b[31m"
	defaultColor = "\x1b[0m"
)

// Version indicates the current build version.
var Version string

var errUsage = errors.New("expects 3 command line arguments")

// settings holds the options collected from the command line.
type settings struct {
	size     int
	depth    int
	filename string
	method   string
	points   int
	seed     int64
	invert   bool
	scale    int
}

func main() {
	var (
		// Flags
		method = flag.String("method", methodRecursive, "Rendering method: recursive|chaos")
		points = flag.Int("points", 10000, "Number of points plotted by the chaos method")
		seed   = flag.Int64("seed", 1, "Random seed used by the chaos method")
		invert = flag.Bool("invert", false, "Draw white lines on black background")
		scale  = flag.Int("scale", 1, "Upscale the output image by an integer factor")
	)

	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()

	size, depth, filename, err := parseArgs(flag.Args())
	if err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "%s%v%s\n", errorColor, err, defaultColor)
		}
		flag.Usage()
		return
	}

	s := &settings{
		size:     size,
		depth:    depth,
		filename: filename,
		method:   *method,
		points:   *points,
		seed:     *seed,
		invert:   *invert,
		scale:    *scale,
	}
	if err := s.validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%s%v%s\n", errorColor, err, defaultColor)
		flag.Usage()
		return
	}

	if s.filename == pipeName && term.IsTerminal(int(os.Stdout.Fd())) {
		log.Fatalln("`-` should be used with a pipe for stdout")
	}

	log.Printf("Screen size is %d, iterations is %d, filename %s", s.size, s.depth, s.filename)
	start := time.Now()

	// Progress indicator
	ind := utils.NewProgressIndicator("Rendering fractal...", time.Millisecond*100)
	if term.IsTerminal(int(os.Stderr.Fd())) {
		ind.Start()
	}

	img, err := s.render()
	if err != nil {
		ind.StopMsg = fmt.Sprintf("Rendering fractal... %s failed ✗%s\n", errorColor, defaultColor)
		ind.Stop()
		log.Fatalf("Rendering error: %s%v%s", errorColor, err, defaultColor)
	}

	if s.filename == pipeName {
		err = fractal.Encode(os.Stdout, img, "")
	} else {
		err = fractal.Save(img, s.filename)
	}
	if err != nil {
		ind.StopMsg = fmt.Sprintf("Rendering fractal... %s failed ✗%s\n", errorColor, defaultColor)
		ind.Stop()
		log.Fatalf("Error encoding the output image: %s%v%s", errorColor, err, defaultColor)
	}
	ind.StopMsg = fmt.Sprintf("Rendering fractal... %sfinished ✔%s\n", successColor, defaultColor)
	ind.Stop()

	log.Printf("Execution time: %s%.2fs%s", successColor, time.Since(start).Seconds(), defaultColor)
}

func usage() {
	fmt.Fprintf(os.Stderr, banner, Version)
	flag.PrintDefaults()
}

// parseArgs reads the size, depth and filename positional arguments.
func parseArgs(args []string) (size, depth int, filename string, err error) {
	if len(args) > 3 {
		for _, arg := range args[3:] {
			if strings.HasPrefix(arg, "-") && arg != pipeName {
				return 0, 0, "", fmt.Errorf("flags must be given before the arguments: %q", arg)
			}
		}
	}
	if len(args) != 3 {
		return 0, 0, "", errUsage
	}
	size, err = strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, "", fmt.Errorf("size argument must be a number: %q", args[0])
	}
	depth, err = strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, "", fmt.Errorf("iterations argument must be a number: %q", args[1])
	}
	if size <= 0 {
		return 0, 0, "", fmt.Errorf("size argument must be positive: %d", size)
	}
	if depth < 0 {
		return 0, 0, "", fmt.Errorf("iterations argument must not be negative: %d", depth)
	}
	return size, depth, args[2], nil
}

func (s *settings) validate() error {
	switch s.method {
	case methodRecursive, methodChaos:
	default:
		return fmt.Errorf("unknown rendering method: %q", s.method)
	}
	if s.points < 0 {
		return fmt.Errorf("points must not be negative: %d", s.points)
	}
	if s.scale < 1 {
		return fmt.Errorf("scale must be at least 1: %d", s.scale)
	}
	return nil
}

// render produces the fractal image with the selected method and
// applies the requested post processing.
func (s *settings) render() (image.Image, error) {
	var img image.Image

	switch s.method {
	case methodChaos:
		ch := &fractal.Chaos{
			Width:  s.size,
			Height: s.size * 3 / 4,
			Points: s.points,
			Seed:   s.seed,
		}
		if ch.Height == 0 {
			return nil, fmt.Errorf("size %d is too small for the chaos method", s.size)
		}
		img = ch.Render()
	default:
		c, err := fractal.Render(s.size, s.depth)
		if err != nil {
			return nil, err
		}
		img = c.Image()
	}

	if s.invert {
		img = fractal.Invert(img)
	}
	return fractal.Upscale(img, s.scale), nil
}
