package types

import "strings"

// Enum values for transaction semantic type
type TransactionType string

const (
	TypeTransfer TransactionType = "transfer"
	TypeStake    TransactionType = "stake"
	TypeUnstake  TransactionType = "unstake"
	TypeReward   TransactionType = "reward"
	TypeMining   TransactionType = "mining"
	TypeUnknown  TransactionType = "unknown"
)

func (t TransactionType) String() string {
	return string(t)
}

// ParseTransactionType maps a stored type string back to the enum.
// Unrecognized values become TypeUnknown rather than an error so that a
// corrupted row never aborts aggregation.
func ParseTransactionType(s string) TransactionType {
	switch TransactionType(s) {
	case TypeTransfer, TypeStake, TypeUnstake, TypeReward, TypeMining:
		return TransactionType(s)
	default:
		return TypeUnknown
	}
}

// Enum values for transaction status
type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusConfirmed TransactionStatus = "confirmed"
)

func (s TransactionStatus) String() string {
	return string(s)
}

// systemAddressRule classifies transactions touching a well-known system
// address. Outbound is the type when the user sends to the address, inbound
// when the user receives from it.
type systemAddressRule struct {
	prefix   string
	outbound TransactionType
	inbound  TransactionType
}

// The ledger names its system accounts with fixed prefixes
// (e.g. "staking_pool_001", "rewards_pool_001"). Sending coins to a reward
// or mining issuer has no defined meaning, hence TypeUnknown there.
var systemAddressRules = []systemAddressRule{
	{prefix: "staking_pool", outbound: TypeStake, inbound: TypeUnstake},
	{prefix: "rewards_pool", outbound: TypeUnknown, inbound: TypeReward},
	{prefix: "mining_pool", outbound: TypeUnknown, inbound: TypeMining},
	{prefix: "coinbase", outbound: TypeUnknown, inbound: TypeMining},
}

// IsSystemAddress reports whether addr belongs to the ledger itself
// (staking pools, reward issuers, coinbase). System addresses are never
// auto-created as user wallets.
func IsSystemAddress(addr string) bool {
	for _, rule := range systemAddressRules {
		if strings.HasPrefix(addr, rule.prefix) {
			return true
		}
	}
	return false
}

// Classify derives the semantic type of a transaction from the perspective
// of the user owning userAddrs. A transaction between two ordinary addresses
// is a transfer; only the rule table above produces the other types.
func Classify(from, to string, userAddrs map[string]bool) TransactionType {
	if userAddrs[from] {
		for _, rule := range systemAddressRules {
			if strings.HasPrefix(to, rule.prefix) {
				return rule.outbound
			}
		}
	}
	if userAddrs[to] {
		for _, rule := range systemAddressRules {
			if strings.HasPrefix(from, rule.prefix) {
				return rule.inbound
			}
		}
	}
	return TypeTransfer
}
