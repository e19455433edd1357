package ifs

import (
	"fmt"
	"iter"
	"math"
	"strings"

	"github.com/sgostarter/i/commerr"

	"sierpinski/internal/geom"
)

// Fractal is a named iterated function system.
type Fractal struct {
	// Name is the display name, e.g. "Sierpiński Carpet".
	Name string
	// Key is the short name accepted on the command line.
	Key  string
	Seed PointSet
	Maps []Map

	// RecommendedMax is the deepest iteration that still renders promptly.
	// Deeper requests are allowed.
	RecommendedMax int

	titleFormat string
}

// ErrUnknownFractal is returned by Lookup for keys that name no built-in fractal.
var ErrUnknownFractal = fmt.Errorf("%w: unknown fractal", commerr.ErrNotFound)

// Carpet returns the Sierpiński Carpet: the unit square outline and eight
// maps onto the non-center cells of a 3x3 grid.
func Carpet() Fractal {
	return Fractal{
		Name: "Sierpiński Carpet",
		Key:  "carpet",
		Seed: PointSet{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 0}},
		Maps: []Map{
			func(p Point) Point { return Point{X: p.X / 3, Y: p.Y / 3} },
			func(p Point) Point { return Point{X: p.X / 3, Y: p.Y/3 + 1.0/3} },
			func(p Point) Point { return Point{X: p.X / 3, Y: p.Y/3 + 2.0/3} },
			func(p Point) Point { return Point{X: p.X/3 + 1.0/3, Y: p.Y / 3} },
			func(p Point) Point { return Point{X: p.X/3 + 2.0/3, Y: p.Y / 3} },
			func(p Point) Point { return Point{X: p.X/3 + 1.0/3, Y: p.Y/3 + 2.0/3} },
			func(p Point) Point { return Point{X: p.X/3 + 2.0/3, Y: p.Y/3 + 1.0/3} },
			func(p Point) Point { return Point{X: p.X/3 + 2.0/3, Y: p.Y/3 + 2.0/3} },
		},
		RecommendedMax: 5,
		titleFormat:    "%s: Iteration %d",
	}
}

// Gasket returns the Sierpiński Gasket: an equilateral triangle outline and
// three half-scale maps onto its corners.
func Gasket() Fractal {
	return Fractal{
		Name: "Sierpiński Gasket",
		Key:  "gasket",
		Seed: PointSet{{X: 0, Y: 0}, {X: 1.0 / 2, Y: math.Sqrt(3) / 2}, {X: 1, Y: 0}, {X: 0, Y: 0}},
		Maps: []Map{
			func(p Point) Point { return Point{X: p.X / 2, Y: p.Y / 2} },
			func(p Point) Point { return Point{X: p.X/2 + 1.0/2, Y: p.Y / 2} },
			func(p Point) Point { return Point{X: p.X/2 + 1.0/4, Y: p.Y/2 + math.Sqrt(3)/4} },
		},
		RecommendedMax: 10,
		titleFormat:    "%s: Iteration: %d",
	}
}

// Families lists the built-in fractals in menu order.
func Families() []Fractal {
	return []Fractal{Carpet(), Gasket()}
}

// Lookup finds a built-in fractal by Key, ignoring case.
func Lookup(key string) (Fractal, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	for _, f := range Families() {
		if f.Key == key {
			return f, nil
		}
	}
	return Fractal{}, fmt.Errorf("%w: %q", ErrUnknownFractal, key)
}

// Generate runs the system from its seed. Counts whose last iteration would
// not fit in an int are refused with ErrTooLarge before anything is computed.
func (f Fractal) Generate(iterations int) (iter.Seq2[int, PointSet], error) {
	seq, err := Generate(f.Seed, f.Maps, iterations)
	if err != nil {
		return nil, err
	}
	if _, err = f.Size(iterations); err != nil {
		return nil, err
	}
	return seq, nil
}

// Title is the window title shown for iteration i.
func (f Fractal) Title(i int) string {
	format := f.titleFormat
	if format == "" {
		format = "%s: Iteration %d"
	}
	return fmt.Sprintf(format, f.Name, i)
}

// Bounds is the bounding box of the seed. All iterations stay inside it.
func (f Fractal) Bounds() geom.BBox {
	bb, _ := geom.BBoxOf(f.Seed)
	return bb
}

// Size is the number of points iteration k holds.
func (f Fractal) Size(k int) (int, error) {
	return Size(len(f.Seed), len(f.Maps), k)
}
