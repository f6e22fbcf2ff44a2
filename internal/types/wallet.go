package types

// Enum values for wallet kind
type WalletKind string

const (
	// WalletKindNative is a wallet created through this service against the
	// ledger node.
	WalletKindNative WalletKind = "native"
	// WalletKindImported is a wallet whose key material was imported by the
	// user.
	WalletKindImported WalletKind = "imported"
	// WalletKindExternal is a counterpart wallet discovered during
	// reconciliation; its keys are held elsewhere.
	WalletKindExternal WalletKind = "external"
)

func (k WalletKind) String() string {
	return string(k)
}
