// SPDX-License-Identifier: MIT

package linalg_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/smallmat/linalg"
	"github.com/stretchr/testify/require"
)

// TestOptionsDefaults verifies the documented defaults.
func TestOptionsDefaults(t *testing.T) {
	t.Parallel()

	o := linalg.NewOptions()
	require.Equal(t, linalg.DefaultEpsilon, o.Epsilon())
	require.Equal(t, linalg.DefaultPrecision, o.Precision())
}

// TestOptionsOverride checks that later options win and nil options are ignored.
func TestOptionsOverride(t *testing.T) {
	t.Parallel()

	o := linalg.NewOptions(linalg.WithEpsilon(0.1), nil, linalg.WithPrecision(5), linalg.WithEpsilon(0))
	require.Equal(t, 0.0, o.Epsilon())
	require.Equal(t, 5, o.Precision())
}

// TestOptionsPanicOnNonsense ensures invalid parameters are treated as programmer errors.
func TestOptionsPanicOnNonsense(t *testing.T) {
	t.Parallel()

	const epsMsg = "linalg: WithEpsilon: eps must be finite, non-negative"
	const precMsg = "linalg: WithPrecision: digits must be in [0, 17]"

	require.PanicsWithValue(t, epsMsg, func() { linalg.WithEpsilon(-1) })
	require.PanicsWithValue(t, epsMsg, func() { linalg.WithEpsilon(math.NaN()) })
	require.PanicsWithValue(t, epsMsg, func() { linalg.WithEpsilon(math.Inf(1)) })
	require.PanicsWithValue(t, precMsg, func() { linalg.WithPrecision(-1) })
	require.PanicsWithValue(t, precMsg, func() { linalg.WithPrecision(18) })
	require.NotPanics(t, func() { linalg.WithPrecision(17) })
}
