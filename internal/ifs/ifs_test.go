package ifs

import (
	"errors"
	"math"
	"testing"

	"github.com/sgostarter/i/commerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sierpinski/internal/geom"
)

func collect(t *testing.T, f Fractal, iterations int) []PointSet {
	t.Helper()
	seq, err := f.Generate(iterations)
	require.NoError(t, err)
	var out []PointSet
	for i, ps := range seq {
		require.Equal(t, len(out), i)
		out = append(out, ps)
	}
	return out
}

func TestGenerateGrowthLaw(t *testing.T) {
	for _, tc := range []struct {
		f          Fractal
		iterations int
	}{
		{Carpet(), 4},
		{Gasket(), 6},
	} {
		t.Run(tc.f.Key, func(t *testing.T) {
			sets := collect(t, tc.f, tc.iterations)
			require.Len(t, sets, tc.iterations+1)
			want := len(tc.f.Seed)
			for k, ps := range sets {
				assert.Len(t, ps, want, "iteration %d", k)
				size, err := tc.f.Size(k)
				require.NoError(t, err)
				assert.Equal(t, want, size)
				want *= len(tc.f.Maps)
			}
		})
	}
}

func TestGenerateZeroIterationsYieldsSeed(t *testing.T) {
	for _, f := range Families() {
		sets := collect(t, f, 0)
		require.Len(t, sets, 1)
		assert.Equal(t, f.Seed, sets[0])
	}
}

func TestCarpetFirstIteration(t *testing.T) {
	sets := collect(t, Carpet(), 1)
	require.Len(t, sets[1], 40)

	want := PointSet{
		{X: 0, Y: 0},
		{X: 0, Y: 1.0 / 3},
		{X: 0, Y: 2.0 / 3},
		{X: 1.0 / 3, Y: 0},
		{X: 2.0 / 3, Y: 0},
		{X: 1.0 / 3, Y: 2.0 / 3},
		{X: 2.0 / 3, Y: 1.0 / 3},
		{X: 2.0 / 3, Y: 2.0 / 3},
	}
	assert.Equal(t, want, sets[1][:8])
}

func TestGasketFirstIteration(t *testing.T) {
	sets := collect(t, Gasket(), 1)
	require.Len(t, sets[1], 12)

	want := PointSet{
		{X: 0, Y: 0},
		{X: 1.0 / 2, Y: 0},
		{X: 1.0 / 4, Y: math.Sqrt(3) / 4},
	}
	assert.Equal(t, want, sets[1][:3])
}

func TestCarpetContainment(t *testing.T) {
	unit := geom.BBox{MaxX: 1, MaxY: 1}
	for k, ps := range collect(t, Carpet(), 4) {
		for _, p := range ps {
			if !inBox(p, unit) {
				t.Fatalf("iteration %d: %v outside the unit square", k, p)
			}
		}
	}
}

func TestCarpetSkipsCenterCell(t *testing.T) {
	sets := collect(t, Carpet(), 2)
	for _, p := range sets[2] {
		inCenter := p.X > 1.0/3 && p.X < 2.0/3 && p.Y > 1.0/3 && p.Y < 2.0/3
		assert.False(t, inCenter, "%v lies inside the removed center cell", p)
	}
}

func inBox(p Point, b geom.BBox) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// inTriangle reports whether p lies inside abc or within eps of an edge.
func inTriangle(p, a, b, c Point, eps float64) bool {
	cross := func(u, v Point) float64 {
		return (v.X-u.X)*(p.Y-u.Y) - (v.Y-u.Y)*(p.X-u.X)
	}
	d1, d2, d3 := cross(a, b), cross(b, c), cross(c, a)
	hasNeg := d1 < -eps || d2 < -eps || d3 < -eps
	hasPos := d1 > eps || d2 > eps || d3 > eps
	return !(hasNeg && hasPos)
}

func TestInTriangle(t *testing.T) {
	a, b, c := Point{X: 0, Y: 0}, Point{X: 1, Y: 0}, Point{X: 0.5, Y: math.Sqrt(3) / 2}
	assert.True(t, inTriangle(Point{X: 0.5, Y: 0.2}, a, b, c, 1e-12))
	assert.True(t, inTriangle(a, a, b, c, 1e-12))
	assert.True(t, inTriangle(Point{X: 0.25, Y: math.Sqrt(3) / 4}, a, b, c, 1e-12), "edge midpoint")
	assert.False(t, inTriangle(Point{X: 0.9, Y: 0.8}, a, b, c, 1e-12))
	assert.False(t, inTriangle(Point{X: 0.5, Y: -0.1}, a, b, c, 1e-12))
}

func TestGasketContainment(t *testing.T) {
	f := Gasket()
	bounds := f.Bounds()
	a, b, c := Point{X: 0, Y: 0}, Point{X: 1, Y: 0}, Point{X: 0.5, Y: math.Sqrt(3) / 2}
	for k, ps := range collect(t, f, 6) {
		for _, p := range ps {
			if !inBox(p, bounds) || !inTriangle(p, a, b, c, 1e-12) {
				t.Fatalf("iteration %d: %v outside the triangle", k, p)
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	for _, f := range Families() {
		assert.Equal(t, collect(t, f, 3), collect(t, f, 3))
	}
}

func TestGenerateOrderIsPointsThenMaps(t *testing.T) {
	seed := PointSet{{X: 1, Y: 0}, {X: 2, Y: 0}}
	maps := []Map{
		func(p Point) Point { return Point{X: p.X, Y: 10} },
		func(p Point) Point { return Point{X: p.X, Y: 20} },
	}
	seq, err := Generate(seed, maps, 1)
	require.NoError(t, err)

	var last PointSet
	for _, ps := range seq {
		last = ps
	}
	assert.Equal(t, PointSet{{X: 1, Y: 10}, {X: 1, Y: 20}, {X: 2, Y: 10}, {X: 2, Y: 20}}, last)
}

func TestGenerateDoesNotMutatePrevious(t *testing.T) {
	seed := PointSet{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 0}}
	orig := append(PointSet(nil), seed...)
	seq, err := Generate(seed, Carpet().Maps, 2)
	require.NoError(t, err)

	var sets []PointSet
	for _, ps := range seq {
		sets = append(sets, ps)
	}
	assert.Equal(t, orig, seed)
	assert.Equal(t, orig, sets[0])
	assert.NotSame(t, &sets[1][0], &sets[2][0])
}

func TestGenerateRejectsNegativeIterations(t *testing.T) {
	seq, err := Carpet().Generate(-1)
	require.Error(t, err)
	assert.Nil(t, seq)
	assert.ErrorIs(t, err, ErrNegativeIterations)
	assert.True(t, errors.Is(err, commerr.ErrInvalidArgument))
}

func TestGenerateRejectsBadMaps(t *testing.T) {
	_, err := Generate(Carpet().Seed, nil, 1)
	assert.ErrorIs(t, err, ErrNoMaps)

	_, err = Generate(Carpet().Seed, []Map{nil}, 1)
	assert.ErrorIs(t, err, ErrNilMap)
	assert.ErrorIs(t, err, commerr.ErrInvalidArgument)
}

func TestGenerateStopsOnBreak(t *testing.T) {
	calls := 0
	maps := []Map{func(p Point) Point {
		calls++
		return p
	}}
	seq, err := Generate(PointSet{{X: 0, Y: 0}}, maps, 100)
	require.NoError(t, err)

	for i := range seq {
		if i == 2 {
			break
		}
	}
	assert.Equal(t, 2, calls)
}

func TestSizeOverflow(t *testing.T) {
	_, err := Carpet().Size(40)
	assert.ErrorIs(t, err, ErrTooLarge)
	assert.ErrorIs(t, err, commerr.ErrOutOfRange)

	_, err = Size(5, 8, -1)
	assert.ErrorIs(t, err, ErrNegativeIterations)
}

func TestGenerateRefusesOverflowingCount(t *testing.T) {
	seq, err := Carpet().Generate(45)
	assert.Nil(t, seq)
	assert.ErrorIs(t, err, ErrTooLarge)

	seq, err = Gasket().Generate(40)
	assert.Nil(t, seq)
	assert.ErrorIs(t, err, ErrTooLarge)

	_, err = Gasket().Generate(38)
	assert.NoError(t, err, "4 * 3^38 still fits")
}

func TestLookup(t *testing.T) {
	f, err := Lookup(" Gasket ")
	require.NoError(t, err)
	assert.Equal(t, "Sierpiński Gasket", f.Name)

	_, err = Lookup("koch")
	assert.ErrorIs(t, err, ErrUnknownFractal)
}

// The two fractals keep their historically different title formats. The older
// program labelled the Carpet's iteration 0 with the Gasket's string
// ("Sierpiński Gasket: Iteration: 0"); that looks like a slip rather than
// intent, so every Carpet frame is titled as the Carpet here.
func TestTitles(t *testing.T) {
	assert.Equal(t, "Sierpiński Carpet: Iteration 0", Carpet().Title(0))
	assert.Equal(t, "Sierpiński Carpet: Iteration 3", Carpet().Title(3))
	assert.Equal(t, "Sierpiński Gasket: Iteration: 0", Gasket().Title(0))
}

func TestBounds(t *testing.T) {
	assert.Equal(t, geom.BBox{MaxX: 1, MaxY: 1}, Carpet().Bounds())
	assert.Equal(t, geom.BBox{MaxX: 1, MaxY: math.Sqrt(3) / 2}, Gasket().Bounds())
}
