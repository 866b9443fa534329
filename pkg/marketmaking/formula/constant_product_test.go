package formula_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/duocurve-network/duocurve-daemon/pkg/marketmaking/formula"
)

func newTestOpts() formula.ConstantProductOpts {
	return formula.ConstantProductOpts{
		SolReserves:   20_000_000_000,
		TokenReserves: 1_000_000_000_000_000,
		TokenDecimals: 6,
		BasisDecimals: 9,
	}
}

func TestTokensOutGivenSolIn(t *testing.T) {
	t.Parallel()

	out, err := formula.ConstantProduct{}.TokensOutGivenSolIn(
		newTestOpts(), 985_000_000,
	)
	require.NoError(t, err)
	require.Equal(t, uint64(46_938_289_254_229), out)
}

func TestSolOutGivenTokensIn(t *testing.T) {
	t.Parallel()

	// reserves left by the buy of TestTokensOutGivenSolIn; unwinding the
	// whole position returns at most what was paid in.
	opts := formula.ConstantProductOpts{
		SolReserves:   20_985_000_000,
		TokenReserves: 953_061_710_745_771,
		TokenDecimals: 6,
		BasisDecimals: 9,
	}

	out, err := formula.ConstantProduct{}.SolOutGivenTokensIn(
		opts, 46_938_289_254_229,
	)
	require.NoError(t, err)
	require.Equal(t, uint64(985_000_000), out)
}

func TestQuotesAreMonotonic(t *testing.T) {
	t.Parallel()

	opts := newTestOpts()
	prev := uint64(0)
	for _, solIn := range []uint64{1_000, 1_000_000, 1_000_000_000, 5_000_000_000} {
		out, err := formula.ConstantProduct{}.TokensOutGivenSolIn(opts, solIn)
		require.NoError(t, err)
		require.Greater(t, out, prev)
		prev = out
	}
}

func TestSpotPrice(t *testing.T) {
	t.Parallel()

	price, err := formula.ConstantProduct{}.SpotPrice(newTestOpts())
	require.NoError(t, err)
	require.Equal(t, "0.00000002", price.String())
}

func TestFailingQuotes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		opts          interface{}
		amount        uint64
		expectedError error
	}{
		{
			name:          "wrong_opts_type",
			opts:          struct{}{},
			amount:        1,
			expectedError: formula.ErrInvalidOptsType,
		},
		{
			name:          "zero_amount",
			opts:          newTestOpts(),
			amount:        0,
			expectedError: formula.ErrAmountTooLow,
		},
		{
			name: "zero_reserves",
			opts: formula.ConstantProductOpts{
				SolReserves: 0, TokenReserves: 0,
				TokenDecimals: 6, BasisDecimals: 9,
			},
			amount:        1,
			expectedError: formula.ErrBalanceTooLow,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := formula.ConstantProduct{}.TokensOutGivenSolIn(tt.opts, tt.amount)
			require.ErrorIs(t, err, tt.expectedError)

			_, err = formula.ConstantProduct{}.SolOutGivenTokensIn(tt.opts, tt.amount)
			require.ErrorIs(t, err, tt.expectedError)
		})
	}
}
