package types

// Enum values for staking tier
type Tier string

const (
	TierBronze   Tier = "bronze"
	TierSilver   Tier = "silver"
	TierGold     Tier = "gold"
	TierPlatinum Tier = "platinum"
)

func (t Tier) String() string {
	return string(t)
}

// Tier thresholds are inclusive lower bounds on total staked amount.
const (
	silverThreshold   = 100
	goldThreshold     = 500
	platinumThreshold = 1000
)

func TierForStaked(totalStaked float64) Tier {
	switch {
	case totalStaked >= platinumThreshold:
		return TierPlatinum
	case totalStaked >= goldThreshold:
		return TierGold
	case totalStaked >= silverThreshold:
		return TierSilver
	default:
		return TierBronze
	}
}
