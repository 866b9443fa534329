package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/duocurve-network/duocurve-daemon/internal/core/domain"
)

func TestStampFirstSwap(t *testing.T) {
	t.Parallel()

	wl := &domain.Whitelist{Address: "trader", IsAllow: true}

	require.True(t, wl.StampFirstSwap(1000))
	require.Equal(t, int64(1000), wl.FirstSwapTimestamp)

	// the stamp is written exactly once
	require.False(t, wl.StampFirstSwap(2000))
	require.Equal(t, int64(1000), wl.FirstSwapTimestamp)

	notAllowed := &domain.Whitelist{Address: "other"}
	require.False(t, notAllowed.StampFirstSwap(1000))
	require.Zero(t, notAllowed.FirstSwapTimestamp)
}

func TestIsDiscounted(t *testing.T) {
	t.Parallel()

	const limit = int64(3600)
	wl := &domain.Whitelist{Address: "trader", IsAllow: true}
	wl.StampFirstSwap(1000)

	tests := []struct {
		name     string
		now      int64
		expected bool
	}{
		{"inside_window", 1000 + limit - 1, true},
		{"window_boundary", 1000 + limit, true},
		{"past_window", 1000 + limit + 1, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.expected, wl.IsDiscounted(limit, tt.now))
		})
	}
}
