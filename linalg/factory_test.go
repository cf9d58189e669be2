// SPDX-License-Identifier: MIT

package linalg_test

import (
	"testing"

	"github.com/katalvlaran/smallmat/linalg"
	"github.com/stretchr/testify/require"
)

// TestDiagBroadcast: Diag(N, 5) has 5 on the diagonal and 0 elsewhere, N ∈ {2,3,4}.
func TestDiagBroadcast(t *testing.T) {
	t.Parallel()

	for _, n := range []int{2, 3, 4} {
		sq, err := linalg.Diag(n, 5.0)
		require.NoError(t, err, "N=%d", n)
		require.Equal(t, n, sq.Dim())
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				v, err := sq.Get(i, j)
				require.NoError(t, err)
				if i == j {
					require.Equal(t, 5.0, v, "N=%d (%d,%d)", n, i, j)
				} else {
					require.Equal(t, 0.0, v, "N=%d (%d,%d)", n, i, j)
				}
			}
		}
	}
}

// TestDiagPerEntry fills the diagonal in order and returns the concrete type.
func TestDiagPerEntry(t *testing.T) {
	t.Parallel()

	sq, err := linalg.Diag(3, 1, 2, 3)
	require.NoError(t, err)
	m, ok := sq.(linalg.Matrix3x3)
	require.True(t, ok, "dynamic type %T", sq)
	require.Equal(t, []float64{1, 0, 0, 0, 2, 0, 0, 0, 3}, m.Values())

	sq, err = linalg.Diag(4, 1, 2, 3, 4)
	require.NoError(t, err)
	_, ok = sq.(linalg.Matrix4x4)
	require.True(t, ok)
	require.Equal(t, 4.0, sq.At(3, 3))

	typed, err := linalg.DiagOf[linalg.D2](8, 9)
	require.NoError(t, err)
	require.Equal(t, []float64{8, 0, 0, 9}, typed.Values())
}

// TestDiagErrors covers bad argument counts and unsupported dimensions.
func TestDiagErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		dim     int
		args    []float64
		wantErr error
	}{
		{"no scalars", 3, nil, linalg.ErrInvalidArgumentCount},
		{"two for 3", 3, []float64{1, 2}, linalg.ErrInvalidArgumentCount},
		{"three for 4", 4, []float64{1, 2, 3}, linalg.ErrInvalidArgumentCount},
		{"five for 4", 4, []float64{1, 2, 3, 4, 5}, linalg.ErrInvalidArgumentCount},
		{"dimension 1", 1, []float64{1}, linalg.ErrUnsupportedDimension},
		{"dimension 5", 5, []float64{1}, linalg.ErrUnsupportedDimension},
		{"dimension -2", -2, []float64{1}, linalg.ErrUnsupportedDimension},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			sq, err := linalg.Diag(tc.dim, tc.args...)
			require.ErrorIs(t, err, tc.wantErr)
			require.Nil(t, sq)
		})
	}
}

// TestNewSquare dispatches row-major construction by dimension.
func TestNewSquare(t *testing.T) {
	t.Parallel()

	sq, err := linalg.NewSquare(2, 1, 2, 3, 4)
	require.NoError(t, err)
	require.Equal(t, mustMatrix[linalg.D2](t, 1, 2, 3, 4), sq)
	require.Equal(t, "[1.000, 2.000]\n[3.000, 4.000]\n", sq.String())

	_, err = linalg.NewSquare(3, 1, 2, 3, 4)
	require.ErrorIs(t, err, linalg.ErrInvalidArgumentCount)

	_, err = linalg.NewSquare(6)
	require.ErrorIs(t, err, linalg.ErrUnsupportedDimension)
}

// TestIdentityOf dispatches identity construction by dimension.
func TestIdentityOf(t *testing.T) {
	t.Parallel()

	for _, n := range []int{2, 3, 4} {
		id, err := linalg.IdentityOf(n)
		require.NoError(t, err)
		want, err := linalg.Diag(n, 1)
		require.NoError(t, err)
		require.Equal(t, want, id)
	}

	_, err := linalg.IdentityOf(0)
	require.ErrorIs(t, err, linalg.ErrUnsupportedDimension)
}
