package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierForStaked(t *testing.T) {
	testCases := []struct {
		staked   float64
		expected Tier
	}{
		{0, TierBronze},
		{99.99, TierBronze},
		{100.00, TierSilver},
		{499.99, TierSilver},
		{500.00, TierGold},
		{999.99, TierGold},
		{1000.00, TierPlatinum},
		{1500000, TierPlatinum},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, TierForStaked(tc.staked), "staked=%v", tc.staked)
	}
}
