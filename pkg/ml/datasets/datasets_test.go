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

package datasets

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRNG() *rand.Rand {
	return rand.New(rand.NewPCG(0, 42))
}

func TestSamplePoints(t *testing.T) {
	rng := newTestRNG()
	points, err := SamplePoints(rng, 1000)
	require.NoError(t, err)
	require.Len(t, points, 1000)
	for ii, point := range points {
		assert.GreaterOrEqualf(t, point.X1, 0.0, "point #%d x1 out of range", ii)
		assert.Lessf(t, point.X1, 1.0, "point #%d x1 out of range", ii)
		assert.GreaterOrEqualf(t, point.X2, 0.0, "point #%d x2 out of range", ii)
		assert.Lessf(t, point.X2, 1.0, "point #%d x2 out of range", ii)
	}

	points, err = SamplePoints(rng, 0)
	require.NoError(t, err)
	require.Empty(t, points)

	_, err = SamplePoints(rng, -1)
	require.Error(t, err)

	// nil rng falls back to the package default source.
	points, err = SamplePoints(nil, 10)
	require.NoError(t, err)
	require.Len(t, points, 10)
}

func TestSamplePointsIsDeterministicGivenSeed(t *testing.T) {
	pointsA, err := SamplePoints(newTestRNG(), 100)
	require.NoError(t, err)
	pointsB, err := SamplePoints(newTestRNG(), 100)
	require.NoError(t, err)
	require.Equal(t, pointsA, pointsB)
}

func TestPredicateGenerators(t *testing.T) {
	generators := map[string]struct {
		generate Generator
		label    func(Point) int
	}{
		"Simple": {Simple, labelSimple},
		"Diag":   {Diag, labelDiag},
		"Split":  {Split, labelSplit},
		"Xor":    {Xor, labelXor},
		"Circle": {Circle, labelCircle},
	}
	rng := newTestRNG()
	for name, gen := range generators {
		ds, err := gen.generate(rng, 200)
		require.NoErrorf(t, err, "generator %q failed", name)
		require.Equalf(t, 200, ds.Count, "generator %q", name)
		require.Lenf(t, ds.Points, 200, "generator %q", name)
		require.Lenf(t, ds.Labels, 200, "generator %q", name)
		for ii, point := range ds.Points {
			label := ds.Labels[ii]
			assert.Containsf(t, []int{0, 1}, label, "generator %q, point #%d", name, ii)
			// Labels must be a pure function of the coordinates.
			assert.Equalf(t, gen.label(point), label, "generator %q, point #%d: label doesn't match predicate", name, ii)
			assert.Truef(t, point.X1 >= 0 && point.X1 < 1 && point.X2 >= 0 && point.X2 < 1,
				"generator %q, point #%d out of the unit square: %+v", name, ii, point)
		}

		ds, err = gen.generate(rng, 0)
		require.NoErrorf(t, err, "generator %q failed for an empty dataset", name)
		require.Emptyf(t, ds.Points, "generator %q", name)
		require.Emptyf(t, ds.Labels, "generator %q", name)

		_, err = gen.generate(rng, -3)
		require.Errorf(t, err, "generator %q should reject a negative count", name)
	}
}

func TestPredicates(t *testing.T) {
	testCases := []struct {
		label func(Point) int
		point Point
		want  int
	}{
		{labelSimple, Point{0.3, 0.9}, 1},
		{labelSimple, Point{0.7, 0.1}, 0},
		{labelDiag, Point{0.2, 0.8}, 1},
		{labelDiag, Point{0.8, 0.2}, 0},
		{labelSplit, Point{0.1, 0.5}, 1},
		{labelSplit, Point{0.9, 0.5}, 1},
		{labelSplit, Point{0.5, 0.5}, 0},
		{labelXor, Point{0.2, 0.8}, 1},
		{labelXor, Point{0.8, 0.2}, 1},
		{labelXor, Point{0.2, 0.2}, 0},
		{labelXor, Point{0.8, 0.8}, 0},
		{labelCircle, Point{0.5, 0.5}, 0},
		{labelCircle, Point{0.0, 0.0}, 1},
	}
	for _, testCase := range testCases {
		assert.Equalf(t, testCase.want, testCase.label(testCase.point), "point %+v", testCase.point)
	}
}

func TestSpiral(t *testing.T) {
	ds, err := Spiral(nil, 10)
	require.NoError(t, err)
	require.Equal(t, 10, ds.Count)
	require.Len(t, ds.Points, 10)
	require.Equal(t, []int{0, 0, 0, 0, 0, 1, 1, 1, 1, 1}, ds.Labels)

	// First point of each arm, from the spiral formula with half=5, i=5, t=±10.
	t0 := 10.0
	assert.InDelta(t, t0*math.Cos(t0)/20+0.5, ds.Points[0].X1, 1e-12)
	assert.InDelta(t, t0*math.Sin(t0)/20+0.5, ds.Points[0].X2, 1e-12)
	assert.InDelta(t, -t0*math.Sin(-t0)/20+0.5, ds.Points[5].X1, 1e-12)
	assert.InDelta(t, -t0*math.Cos(-t0)/20+0.5, ds.Points[5].X2, 1e-12)

	// An odd request drops the last point but keeps the requested count.
	ds, err = Spiral(nil, 11)
	require.NoError(t, err)
	require.Equal(t, 11, ds.Count)
	require.Len(t, ds.Points, 10)
	require.Equal(t, []int{0, 0, 0, 0, 0, 1, 1, 1, 1, 1}, ds.Labels)

	ds, err = Spiral(nil, 0)
	require.NoError(t, err)
	require.Empty(t, ds.Points)
	require.Empty(t, ds.Labels)

	_, err = Spiral(nil, -1)
	require.Error(t, err)
}

func TestSpiralIsDeterministic(t *testing.T) {
	dsA, err := Spiral(newTestRNG(), 40)
	require.NoError(t, err)
	dsB, err := Spiral(nil, 40)
	require.NoError(t, err)
	require.Equal(t, dsA, dsB)
}
