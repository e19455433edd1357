// Package ifs generates the point clouds of iterated function systems.
//
// A system is a seed polygon plus an ordered list of contraction maps. Each
// iteration applies every map to every point of the previous iteration, so
// iteration k holds len(seed) * len(maps)^k points.
package ifs

import (
	"fmt"
	"iter"
	"math"

	"github.com/sgostarter/i/commerr"

	"sierpinski/internal/geom"
)

type Point = geom.Point

// PointSet is an ordered sequence of points. Generated sets are never
// modified after they are yielded.
type PointSet []Point

// Map is a contraction of the plane.
type Map func(Point) Point

// Errors returned by Generate and Size.
var (
	ErrNegativeIterations = fmt.Errorf("%w: iterations must be >= 0", commerr.ErrInvalidArgument)
	ErrNoMaps             = fmt.Errorf("%w: at least one map is required", commerr.ErrInvalidArgument)
	ErrNilMap             = fmt.Errorf("%w: nil map", commerr.ErrInvalidArgument)
	ErrTooLarge           = fmt.Errorf("%w: point count overflows int", commerr.ErrOutOfRange)
)

// Generate returns the sequence of point sets for iterations 0 through
// iterations, keyed by iteration index. Element 0 is seed itself. Element k
// holds, for each point of element k-1 in order, the image of that point under
// each map in order.
//
// Elements are computed on demand; breaking out of the range stops the work.
func Generate(seed PointSet, maps []Map, iterations int) (iter.Seq2[int, PointSet], error) {
	if iterations < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeIterations, iterations)
	}
	if len(maps) == 0 {
		return nil, ErrNoMaps
	}
	for i, f := range maps {
		if f == nil {
			return nil, fmt.Errorf("%w: index %d", ErrNilMap, i)
		}
	}

	return func(yield func(int, PointSet) bool) {
		cur := seed
		if !yield(0, cur) {
			return
		}
		for k := 1; k <= iterations; k++ {
			cur = step(cur, maps)
			if !yield(k, cur) {
				return
			}
		}
	}, nil
}

func step(prev PointSet, maps []Map) PointSet {
	next := make(PointSet, 0, len(prev)*len(maps))
	for _, p := range prev {
		for _, f := range maps {
			next = append(next, f(p))
		}
	}
	return next
}

// Size returns the number of points iteration k holds when starting from
// seedLen points with n maps.
func Size(seedLen, n, k int) (int, error) {
	if k < 0 {
		return 0, fmt.Errorf("%w: got %d", ErrNegativeIterations, k)
	}
	size := seedLen
	for i := 0; i < k; i++ {
		if n != 0 && size > math.MaxInt/n {
			return 0, fmt.Errorf("%w: %d * %d^%d", ErrTooLarge, seedLen, n, k)
		}
		size *= n
	}
	return size, nil
}
