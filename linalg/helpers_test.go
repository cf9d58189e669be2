// SPDX-License-Identifier: MIT
// Package linalg_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures (seeded pseudo-random vectors and matrices).
//   • Keep all data finite and bounded so tolerance-based checks stay meaningful.

package linalg_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/smallmat/linalg"
	"github.com/stretchr/testify/require"
)

// fixtureRange bounds generated components to [-fixtureRange, fixtureRange).
const fixtureRange = 10.0

// assocEps is the tolerance for checks that chain several products.
const assocEps = 1e-8

// newRand returns a deterministic generator for the given seed.
func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// randFloats draws n values in [-fixtureRange, fixtureRange).
func randFloats(r *rand.Rand, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = (r.Float64()*2 - 1) * fixtureRange
	}

	return out
}

// randVector draws a Vector[D] or fails the test.
func randVector[D linalg.Dim](t testing.TB, r *rand.Rand) linalg.Vector[D] {
	t.Helper()
	n := linalg.Vector[D]{}.Dim()
	v, err := linalg.NewVector[D](randFloats(r, n)...)
	require.NoError(t, err)

	return v
}

// randMatrix draws a Matrix[D] or fails the test.
func randMatrix[D linalg.Dim](t testing.TB, r *rand.Rand) linalg.Matrix[D] {
	t.Helper()
	n := linalg.Matrix[D]{}.Dim()
	m, err := linalg.NewMatrix[D](randFloats(r, n*n)...)
	require.NoError(t, err)

	return m
}

// mustMatrix builds a Matrix[D] from row-major values or fails the test.
func mustMatrix[D linalg.Dim](t testing.TB, values ...float64) linalg.Matrix[D] {
	t.Helper()
	m, err := linalg.NewMatrix[D](values...)
	require.NoError(t, err)

	return m
}

// mustGet reads (i, j) or fails the test.
func mustGet[D linalg.Dim](t testing.TB, m linalg.Matrix[D], i, j int) float64 {
	t.Helper()
	v, err := m.Get(i, j)
	require.NoError(t, err)

	return v
}

// forEachDim runs fn once per supported dimension as a parallel subtest.
func forEachDim(t *testing.T, d2, d3, d4 func(t *testing.T)) {
	t.Helper()
	for _, tc := range []struct {
		name string
		fn   func(t *testing.T)
	}{
		{"2", d2},
		{"3", d3},
		{"4", d4},
	} {
		tc := tc
		t.Run("N="+tc.name, func(t *testing.T) {
			t.Parallel()
			tc.fn(t)
		})
	}
}
