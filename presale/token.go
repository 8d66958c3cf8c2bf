package presale

import "github.com/shopspring/decimal"

// Token is the narrow surface the engine consumes on the sale token. The token
// enforces its own transfer policy (blacklists and so on), so Transfer and Mint
// may reject an address; the engine surfaces that as the failure of the
// enclosing operation.
type Token interface {
	Mint(to string, amount decimal.Decimal) error
	Transfer(to string, amount decimal.Decimal) error
	BalanceOf(holder string) (decimal.Decimal, error)
}

// StableToken is the accounting asset rail with standard allowance semantics.
// The buyer must approve the engine before BuyWithUsdt can pull funds.
type StableToken interface {
	Token
	TransferFrom(from string, to string, amount decimal.Decimal) error
}

// TokenResolver maps a sale token handle to a deployed token. Resolve fails
// for the empty handle or one that doesnt point at a deployed contract.
type TokenResolver interface {
	Resolve(address string) (Token, error)
}

// Vault pays out collected base asset on operator withdrawals.
type Vault interface {
	Transfer(to string, amount decimal.Decimal) error
}
