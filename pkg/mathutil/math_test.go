package mathutil_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/duocurve-network/duocurve-daemon/pkg/mathutil"
)

func TestCheckedAdd(t *testing.T) {
	t.Parallel()

	res, err := mathutil.CheckedAdd(1, 2)
	require.NoError(t, err)
	require.Equal(t, uint64(3), res)

	_, err = mathutil.CheckedAdd(math.MaxUint64, 1)
	require.ErrorIs(t, err, mathutil.ErrOverflow)
}

func TestCheckedSub(t *testing.T) {
	t.Parallel()

	res, err := mathutil.CheckedSub(5, 2)
	require.NoError(t, err)
	require.Equal(t, uint64(3), res)

	_, err = mathutil.CheckedSub(2, 5)
	require.ErrorIs(t, err, mathutil.ErrOverflow)
}

func TestSaturatingSub(t *testing.T) {
	t.Parallel()

	require.Equal(t, uint64(3), mathutil.SaturatingSub(5, 2))
	require.Equal(t, uint64(0), mathutil.SaturatingSub(2, 5))
}

func TestMulDiv(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		x, y, z  uint64
		expected uint64
	}{
		{"exact", 10, 4, 2, 20},
		{"floored", 10, 3, 4, 7},
		{"wide_intermediate", math.MaxUint64, 2, 4, math.MaxUint64 / 2},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res, err := mathutil.MulDiv(tt.x, tt.y, tt.z)
			require.NoError(t, err)
			require.Equal(t, tt.expected, res)
		})
	}
}

func TestFailingMulDiv(t *testing.T) {
	t.Parallel()

	_, err := mathutil.MulDiv(1, 1, 0)
	require.ErrorIs(t, err, mathutil.ErrDivideByZero)

	_, err = mathutil.MulDiv(math.MaxUint64, math.MaxUint64, 1)
	require.ErrorIs(t, err, mathutil.ErrOverflow)
}

func TestRebase(t *testing.T) {
	t.Parallel()

	up, err := mathutil.Rebase(1_000_000, 6, 9)
	require.NoError(t, err)
	require.Equal(t, uint64(1_000_000_000), up)

	down, err := mathutil.Rebase(1_234_567_891, 9, 6)
	require.NoError(t, err)
	require.Equal(t, uint64(1_234_567), down)
}

func TestFloatConversions(t *testing.T) {
	t.Parallel()

	require.Equal(t, 1.5, mathutil.ToFloat(1_500_000_000, 9))
	require.Equal(t, uint64(1_500_000_000), mathutil.FromFloat(1.5, 9))
	require.Equal(t, uint64(0), mathutil.FromFloat(0, 9))
}

func TestRatio(t *testing.T) {
	t.Parallel()

	price := mathutil.Ratio(1, 3)
	require.Equal(t, "0.333333333", price.String())
}
