/*
 *	Copyright 2023 Jan Pfeifer
 *
 *	Licensed under the Apache License, Version 2.0 (the "License");
 *	you may not use this file except in compliance with the License.
 *	You may obtain a copy of the License at
 *
 *	http://www.apache.org/licenses/LICENSE-2.0
 *
 *	Unless required by applicable law or agreed to in writing, software
 *	distributed under the License is distributed on an "AS IS" BASIS,
 *	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *	See the License for the specific language governing permissions and
 *	limitations under the License.
 */

// Package datasets generates small labeled 2D point datasets, used to teach and test
// toy classifiers: `Simple`, `Diag`, `Split`, `Xor`, `Circle` and `Spiral`.
//
// Each generator samples (or for `Spiral`, constructs) points in the unit square and
// assigns a binary label with a fixed geometric rule. Generators can be selected by
// name at runtime, see `ByName` and `Generate`.
package datasets

import (
	"math"
	"math/rand/v2"

	"github.com/pkg/errors"
)

// Point is a 2D coordinate. For all generators except `Spiral` both coordinates are
// in the range `[0, 1)`; `Spiral` produces points centered around (0.5, 0.5) that may
// fall slightly outside the unit square.
type Point struct {
	X1, X2 float64
}

// Dataset holds labeled 2D points produced by one of the generators.
// It is a plain value, never mutated after construction.
//
// Count records the number of points requested from the generator. It matches
// `len(Points)` for every generator except `Spiral`, which for an odd request
// produces one point less -- see `Spiral`.
type Dataset struct {
	Count  int
	Points []Point

	// Labels are 0 or 1, Labels[i] labeling Points[i].
	Labels []int
}

// Generator builds a dataset with numPoints points, sampling from rng.
// If rng is nil a package-wide default source is used -- fine for demos, but it is
// not goroutine-safe; pass independent `*rand.Rand` instances for concurrent use or
// for reproducible results.
type Generator func(rng *rand.Rand, numPoints int) (*Dataset, error)

// defaultRNG backs calls that pass a nil rng. Seeded once, not goroutine-safe.
var defaultRNG = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))

// SamplePoints draws numPoints points with both coordinates independently uniform
// in `[0, 1)`. If rng is nil the package default source is used.
// It returns an error if numPoints is negative.
func SamplePoints(rng *rand.Rand, numPoints int) ([]Point, error) {
	if numPoints < 0 {
		return nil, errors.Errorf("cannot sample %d points, count must be non-negative", numPoints)
	}
	if rng == nil {
		rng = defaultRNG
	}
	points := make([]Point, numPoints)
	for ii := range points {
		points[ii] = Point{X1: rng.Float64(), X2: rng.Float64()}
	}
	return points, nil
}

// labeled samples numPoints points and labels each with the given predicate.
// The label is a pure function of the point, only the sampling is random.
func labeled(rng *rand.Rand, numPoints int, label func(Point) int) (*Dataset, error) {
	points, err := SamplePoints(rng, numPoints)
	if err != nil {
		return nil, err
	}
	labels := make([]int, numPoints)
	for ii, point := range points {
		labels[ii] = label(point)
	}
	return &Dataset{Count: numPoints, Points: points, Labels: labels}, nil
}

func labelIf(condition bool) int {
	if condition {
		return 1
	}
	return 0
}

func labelSimple(p Point) int { return labelIf(p.X1 < 0.5) }
func labelDiag(p Point) int   { return labelIf(p.X1 < p.X2) }
func labelSplit(p Point) int  { return labelIf(p.X1 < 0.2 || p.X1 > 0.8) }

func labelXor(p Point) int {
	return labelIf((p.X1 < 0.5 && p.X2 > 0.5) || (p.X1 > 0.5 && p.X2 < 0.5))
}

func labelCircle(p Point) int {
	x1, x2 := p.X1-0.5, p.X2-0.5
	return labelIf(x1*x1+x2*x2 > 0.1)
}

// Simple labels points left of the vertical line x1 = 0.5 with 1, the rest with 0.
func Simple(rng *rand.Rand, numPoints int) (*Dataset, error) {
	return labeled(rng, numPoints, labelSimple)
}

// Diag labels points above the main diagonal (x1 < x2) with 1, the rest with 0.
func Diag(rng *rand.Rand, numPoints int) (*Dataset, error) {
	return labeled(rng, numPoints, labelDiag)
}

// Split labels points in the outer vertical bands (x1 < 0.2 or x1 > 0.8) with 1,
// the middle band with 0.
func Split(rng *rand.Rand, numPoints int) (*Dataset, error) {
	return labeled(rng, numPoints, labelSplit)
}

// Xor labels points in the top-left and bottom-right quadrants with 1, the other
// two quadrants with 0.
func Xor(rng *rand.Rand, numPoints int) (*Dataset, error) {
	return labeled(rng, numPoints, labelXor)
}

// Circle labels points outside the circle of squared radius 0.1 around
// (0.5, 0.5) with 1, points inside with 0.
func Circle(rng *rand.Rand, numPoints int) (*Dataset, error) {
	return labeled(rng, numPoints, labelCircle)
}

func spiralX(t float64) float64 { return t * math.Cos(t) / 20 }
func spiralY(t float64) float64 { return t * math.Sin(t) / 20 }

// Spiral builds two interleaved spiral arms around (0.5, 0.5): the first arm is
// labeled 0, the mirrored arm is labeled 1. The construction is deterministic, so
// rng is ignored.
//
// Each arm has `numPoints/2` points: an odd request produces one point less than
// asked, with `Dataset.Count` still recording the request. Downstream
// visualizations depend on this exact count, so it is kept as is.
func Spiral(_ *rand.Rand, numPoints int) (*Dataset, error) {
	if numPoints < 0 {
		return nil, errors.Errorf("cannot generate a spiral of %d points, count must be non-negative", numPoints)
	}
	half := numPoints / 2
	points := make([]Point, 0, 2*half)
	for ii := 5; ii < 5+half; ii++ {
		t := 10 * float64(ii) / float64(half)
		points = append(points, Point{X1: spiralX(t) + 0.5, X2: spiralY(t) + 0.5})
	}
	for ii := 5; ii < 5+half; ii++ {
		t := -10 * float64(ii) / float64(half)
		points = append(points, Point{X1: spiralY(t) + 0.5, X2: spiralX(t) + 0.5})
	}
	labels := make([]int, 2*half)
	for ii := half; ii < 2*half; ii++ {
		labels[ii] = 1
	}
	return &Dataset{Count: numPoints, Points: points, Labels: labels}, nil
}
